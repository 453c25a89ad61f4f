package auth

import (
	"fmt"

	"tastebook/internal/domain"
)

var (
	ErrUsernameTaken = fmt.Errorf("username already registered: %w", domain.ErrConflict)
	ErrEmailTaken    = fmt.Errorf("email already registered: %w", domain.ErrConflict)

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password; callers cannot tell which factor failed.
	ErrInvalidCredentials = domain.ErrInvalidCredentials
)
