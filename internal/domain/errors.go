package domain

import "errors"

// Error kinds shared by every repository and service. Call sites wrap them
// with fmt.Errorf("...: %w", kind) so errors.Is sees the kind through the
// whole chain and the HTTP layer can map it to a status code.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
