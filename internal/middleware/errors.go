package middleware

import "errors"

var (
	errMissingHeader = errors.New("missing authorization header")
	errBadHeader     = errors.New("invalid authorization header format")
	errInvalidToken  = errors.New("invalid token")
)
