package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"inkwell/models"
)

// TokenKind names a purpose a signed token can be minted for. Tokens of one
// kind never validate as another.
type TokenKind string

const (
	// TokenKindPreview grants unauthenticated viewing of a post by slug,
	// whatever its state.
	TokenKindPreview TokenKind = "preview"

	// TokenKindCommentToggle flips a comment's visibility from a link in the
	// moderation email.
	TokenKindCommentToggle TokenKind = "comment-toggle"
)

// tokenMaxAges holds the required expiry for every kind. An unknown kind is
// a programming error, not an unlimited token.
var tokenMaxAges = map[TokenKind]time.Duration{
	TokenKindPreview:       30 * time.Minute,
	TokenKindCommentToggle: 7 * 24 * time.Hour,
}

type TokenService interface {
	Generate(payload string, kind TokenKind) (string, error)
	Validate(token string, kind TokenKind) (string, error)
}

type tokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret []byte) TokenService {
	return &tokenService{secret: secret, now: time.Now}
}

type tokenClaims struct {
	Kind    TokenKind `json:"kind"`
	Payload string    `json:"payload"`
	jwt.RegisteredClaims
}

// Generate signs an URL-safe token carrying the payload, its kind and an
// embedded issue/expiry timestamp.
func (s *tokenService) Generate(payload string, kind TokenKind) (string, error) {
	maxAge, ok := tokenMaxAges[kind]
	if !ok {
		return "", fmt.Errorf("unknown token kind %q", kind)
	}

	now := s.now()
	claims := tokenClaims{
		Kind:    kind,
		Payload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(maxAge)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate returns the payload of a well-formed, unexpired token of the
// given kind. Expiry is the one recoverable failure; everything else is
// reported as an invalid token.
func (s *tokenService) Validate(token string, kind TokenKind) (string, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", models.ErrTokenExpired
		}
		return "", models.ErrTokenInvalid
	}

	if claims.Kind != kind {
		return "", models.ErrTokenInvalid
	}
	return claims.Payload, nil
}
