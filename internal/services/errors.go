// internal/services/errors.go
package services

import (
	"errors"
)

// The two failure kinds the storefront distinguishes at the HTTP layer.
// Handlers translate ErrAuthentication to a 401 login render and
// ErrPermissionDenied to a 403 login render; anything else is a
// generic server failure.
var (
	ErrAuthentication   = errors.New("authentication failed")
	ErrPermissionDenied = errors.New("permission denied")
)
