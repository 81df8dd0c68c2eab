package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/models"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret)

	token, err := svc.Generate("a-post-slug", TokenKindPreview)
	require.NoError(t, err)

	payload, err := svc.Validate(token, TokenKindPreview)
	require.NoError(t, err)
	assert.Equal(t, "a-post-slug", payload)
}

func TestTokenKindMismatch(t *testing.T) {
	svc := NewTokenService(testSecret)

	token, err := svc.Generate("42", TokenKindCommentToggle)
	require.NoError(t, err)

	_, err = svc.Validate(token, TokenKindPreview)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}

func TestTokenExpiry(t *testing.T) {
	base := time.Date(2021, time.November, 1, 12, 0, 0, 0, time.UTC)
	svc := &tokenService{secret: testSecret, now: func() time.Time { return base }}

	token, err := svc.Generate("a-post-slug", TokenKindPreview)
	require.NoError(t, err)

	// Still valid one second before the 30 minute mark.
	svc.now = func() time.Time { return base.Add(30*time.Minute - time.Second) }
	_, err = svc.Validate(token, TokenKindPreview)
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(30*time.Minute + time.Second) }
	_, err = svc.Validate(token, TokenKindPreview)
	assert.ErrorIs(t, err, models.ErrTokenExpired)
}

func TestCommentToggleTokenHasExpiry(t *testing.T) {
	base := time.Date(2021, time.November, 1, 12, 0, 0, 0, time.UTC)
	svc := &tokenService{secret: testSecret, now: func() time.Time { return base }}

	token, err := svc.Generate("42", TokenKindCommentToggle)
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(8 * 24 * time.Hour) }
	_, err = svc.Validate(token, TokenKindCommentToggle)
	assert.ErrorIs(t, err, models.ErrTokenExpired)
}

func TestTokenForged(t *testing.T) {
	svc := NewTokenService(testSecret)
	other := NewTokenService([]byte("some-other-secret"))

	token, err := other.Generate("a-post-slug", TokenKindPreview)
	require.NoError(t, err)

	_, err = svc.Validate(token, TokenKindPreview)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)

	_, err = svc.Validate("not-even-a-token", TokenKindPreview)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}

func TestTokenUnknownKind(t *testing.T) {
	svc := NewTokenService(testSecret)

	_, err := svc.Generate("payload", TokenKind("mystery"))
	assert.Error(t, err)
}
