package accounts

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidResetToken  = errors.New("invalid reset token")
	ErrResetTokenUsed     = errors.New("reset token has already been used")
	ErrResetTokenExpired  = errors.New("reset token has expired")
	ErrNothingToUpdate    = errors.New("no fields to update")
)

// FieldError is one failed input check.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every failed check of one request.
type ValidationError []FieldError

func (v ValidationError) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (v ValidationError) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// LockedError is returned while an email is locked out of login.
type LockedError struct {
	Remaining time.Duration
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("too many failed login attempts, locked for %s", e.Remaining)
}

// Minutes rounds the remaining lockout up to whole minutes.
func (e *LockedError) Minutes() int {
	return int((e.Remaining + time.Minute - 1) / time.Minute)
}
