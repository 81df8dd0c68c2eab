package render

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

const youtubeWatchURL = "https://www.youtube.com/watch?v"

// Renderer converts post Markdown into HTML. It is CommonMark with
// strikethrough enabled, plus two output overrides: anchors open in a new
// tab, and image syntax pointing at YouTube or Pinterest URLs becomes the
// matching embed snippet. Raw HTML in the source stays escaped.
//
// All overrides are registered at construction; a Renderer holds no mutable
// state and is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough),
			goldmark.WithRendererOptions(
				renderer.WithNodeRenderers(
					util.Prioritized(&embedRenderer{}, 100),
				),
			),
		),
	}
}

func (r *Renderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// embedRenderer replaces the default link and image node renderers.
type embedRenderer struct{}

func (r *embedRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindAutoLink, r.renderAutoLink)
	reg.Register(ast.KindImage, r.renderImage)
}

// renderLink mirrors the default anchor output with target="_blank" appended.
func (r *embedRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Link)
	if entering {
		_, _ = w.WriteString(`<a href="`)
		if !html.IsDangerousURL(n.Destination) {
			_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
		}
		_ = w.WriteByte('"')
		if n.Title != nil {
			_, _ = w.WriteString(` title="`)
			_, _ = w.Write(util.EscapeHTML(n.Title))
			_ = w.WriteByte('"')
		}
		_, _ = w.WriteString(` target="_blank">`)
	} else {
		_, _ = w.WriteString("</a>")
	}
	return ast.WalkContinue, nil
}

// renderAutoLink covers the <https://example.com> form, which is a separate
// node kind and would otherwise miss the target="_blank" treatment.
func (r *embedRenderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.AutoLink)
	if !entering {
		return ast.WalkContinue, nil
	}

	dest := n.URL(source)
	label := n.Label(source)
	_, _ = w.WriteString(`<a href="`)
	if n.AutoLinkType == ast.AutoLinkEmail && !bytes.HasPrefix(bytes.ToLower(dest), []byte("mailto:")) {
		_, _ = w.WriteString("mailto:")
	}
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(dest, false)))
	_, _ = w.WriteString(`" target="_blank">`)
	_, _ = w.Write(util.EscapeHTML(label))
	_, _ = w.WriteString("</a>")
	return ast.WalkContinue, nil
}

func (r *embedRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)
	src := string(n.Destination)

	switch {
	case strings.Contains(src, youtubeWatchURL):
		_, _ = w.WriteString(youtubeEmbed(src))
	case isPinterestPin(src):
		_, _ = w.WriteString(fmt.Sprintf(`<a data-pin-do="embedPin" data-pin-width="medium" href="%s"></a>`, src))
	case isPinterest(src):
		_, _ = w.WriteString(fmt.Sprintf(`<a data-pin-do="embedBoard" data-pin-board-width="400" data-pin-scale-height="240" data-pin-scale-width="80" href="%s"></a>`, src))
	default:
		_, _ = w.WriteString(`<img src="`)
		if !html.IsDangerousURL(n.Destination) {
			_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
		}
		_, _ = w.WriteString(`" alt="`)
		_, _ = w.Write(util.EscapeHTML(n.Text(source)))
		_, _ = w.WriteString(`">`)
	}
	return ast.WalkSkipChildren, nil
}

// youtubeEmbed swaps a watch URL for a responsive iframe player. A watch URL
// without a v parameter produces an embed with an empty video id.
func youtubeEmbed(src string) string {
	var ident string
	if u, err := url.Parse(src); err == nil {
		ident = u.Query().Get("v")
	}
	return fmt.Sprintf(`<div class="ratio ratio-16x9">
<iframe width="560" height="315" src="https://www.youtube.com/embed/%s" title="YouTube video player"
frameborder="0" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"
 allowfullscreen></iframe>
</div>`, ident)
}

func isPinterest(src string) bool {
	u, err := url.Parse(src)
	if err != nil {
		return false
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	return host == "pinterest.com" || strings.HasSuffix(host, ".pinterest.com")
}

func isPinterestPin(src string) bool {
	if !isPinterest(src) {
		return false
	}
	u, _ := url.Parse(src)
	return strings.HasPrefix(u.Path, "/pin/")
}
