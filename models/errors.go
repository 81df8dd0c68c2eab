package models

import "errors"

var (
	// ErrInvalidCommentState means a stored comment is in a visibility state
	// outside {visible, hidden}. Not reachable through normal operations.
	ErrInvalidCommentState = errors.New("comment in unknown visibility state")

	// ErrTokenExpired is the recoverable "link expired" condition.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid covers malformed, forged or wrong-kind tokens.
	ErrTokenInvalid = errors.New("token invalid")

	ErrInvalidImage = errors.New("invalid image file")
	ErrImageExists  = errors.New("image already exists")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
