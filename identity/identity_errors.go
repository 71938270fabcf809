package identity

import "errors"

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrEmailRequired        = errors.New("email is required")
)
