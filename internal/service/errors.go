package service

import "errors"

// Authentication failures. Handlers map each to a distinct error code.
var (
	ErrInvalidCredentials = errors.New("invalid username/email or password")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrMissingToken       = errors.New("access token is required")
	ErrInvalidToken       = errors.New("invalid access token")
	ErrTokenExpired       = errors.New("access token has expired")
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrMisconfigured = errors.New("auth config invalid")
)
