package entity

import "errors"

// Sentinel errors shared across layers. Handlers map these to HTTP status
// codes with errors.Is; infrastructure wraps transport failures around
// ErrUpstream so callers never depend on driver-specific error types.
var (
	ErrNotFound           = errors.New("identity not found")
	ErrNicknameTaken      = errors.New("nickname already taken")
	ErrInvalidCredentials = errors.New("nickname or password incorrect")
	ErrInvalidRole        = errors.New("invalid role")
	ErrForbidden          = errors.New("admin access required")
	ErrValidation         = errors.New("validation failed")
	ErrUpstream           = errors.New("identity directory unavailable")
)
