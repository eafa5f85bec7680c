// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Entry errors.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrNilContext    = errors.New("context cannot be nil")

	// Storage errors.
	ErrStorageUnreadable = errors.New("storage unreadable")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// Unreadable wraps err so that errors.Is(err, ErrStorageUnreadable) holds while
// keeping the underlying cause in the message.
func Unreadable(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageUnreadable, path, err)
}
