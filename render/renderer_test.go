package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommonMark(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render("# Hello")
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hello</h1>\n", html)
}

func TestRenderStrikethrough(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render("~~mistake~~")
	require.NoError(t, err)
	assert.Contains(t, html, "<del>mistake</del>")
}

func TestRenderIsDeterministic(t *testing.T) {
	r := NewRenderer()
	source := "# Title\n\nSome *text* with a [link](https://example.com) and ~~more~~.\n"

	first, err := r.Render(source)
	require.NoError(t, err)
	second, err := r.Render(source)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderLinksOpenInNewTab(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render("[example](https://example.com)")
	require.NoError(t, err)
	assert.Contains(t, html, `<a href="https://example.com" target="_blank">example</a>`)
}

func TestRenderAutoLinksOpenInNewTab(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render("<https://example.com>")
	require.NoError(t, err)
	assert.Contains(t, html, `<a href="https://example.com" target="_blank">https://example.com</a>`)

	html, err = r.Render("<someone@example.com>")
	require.NoError(t, err)
	assert.Contains(t, html, `<a href="mailto:someone@example.com" target="_blank">someone@example.com</a>`)
}

func TestRenderEscapesRawHTML(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render("hello <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRenderPlainImage(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render("![a cat](https://example.com/cat.png)")
	require.NoError(t, err)
	assert.Contains(t, html, `<img src="https://example.com/cat.png" alt="a cat">`)
}

func TestRenderYouTubeEmbed(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render("![30 for 30](https://www.youtube.com/watch?v=Lgwlta7ccnI)")
	require.NoError(t, err)
	assert.Contains(t, html, `class="ratio ratio-16x9"`)
	assert.Contains(t, html, `src="https://www.youtube.com/embed/Lgwlta7ccnI"`)
	assert.NotContains(t, html, "<img")
}

func TestRenderPinterestPinEmbed(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render("![pin](https://www.pinterest.com/pin/99360735500167749/)")
	require.NoError(t, err)
	assert.Contains(t, html, `data-pin-do="embedPin"`)
	assert.Contains(t, html, `href="https://www.pinterest.com/pin/99360735500167749/"`)
}

func TestRenderPinterestBoardEmbed(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render("![board](https://www.pinterest.com/someone/recipes/)")
	require.NoError(t, err)
	assert.Contains(t, html, `data-pin-do="embedBoard"`)
}
