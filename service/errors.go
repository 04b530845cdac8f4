package service

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is the password-mismatch case on login, kept
// separate from NotFoundError so the handler can answer 401 vs 404.
var ErrInvalidCredentials = errors.New("invalid password")

// ValidationError is a field-level, user-correctable input failure. The
// message is shown to the end user as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError is a missing order/user/profile lookup.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// PreconditionError rejects an operation whose prerequisites do not hold,
// such as checking out with an empty cart or no delivery address.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return e.Message
}

// ConflictError is a persistence conflict, currently only duplicate
// registration.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
