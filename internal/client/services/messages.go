package services

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/luca/internal/client/client"
)

const (
	msgDuplicateAccount = "An account with this email already exists."
	msgInvalidEmail     = "Please enter a valid email address."
	msgCannotRegister   = "Unable to create account. Please try again."
)

// RegistrationErrorMessage turns a Register failure into the sentence the
// sign-up screen shows.
func RegistrationErrorMessage(err error) string {
	var e *client.Error
	if !errors.As(err, &e) || e.Kind != client.KindServerError {
		return msgCannotRegister
	}

	msg := strings.ToLower(e.Message)
	switch {
	case strings.Contains(msg, "already registered"):
		return msgDuplicateAccount
	case strings.Contains(msg, "invalid") && strings.Contains(msg, "email"),
		strings.Contains(msg, "unprocessable"),
		strings.Contains(msg, "422"):
		return msgInvalidEmail
	default:
		return msgCannotRegister
	}
}
