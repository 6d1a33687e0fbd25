package models

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// MinimumAge is the youngest age allowed to create an account.
const MinimumAge = 13

// MinPasswordLength applies to new passwords chosen during a reset.
const MinPasswordLength = 8

var (
	ErrNameRequired     = errors.New("please enter your full name")
	ErrInvalidEmail     = errors.New("please enter a valid email address")
	ErrInvalidPhone     = errors.New("please enter a valid 10-digit phone number")
	ErrTooYoung         = errors.New("you must be at least 13 years old to create an account")
	ErrPasswordRequired = errors.New("please enter a password")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrTermsNotAccepted = errors.New("you must agree to the terms to create an account")
)

var emailPattern = regexp.MustCompile(`^[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// SignUpForm is what the registration screen collects.
type SignUpForm struct {
	Name            string
	Email           string
	Phone           string
	DateOfBirth     time.Time
	Password        string
	ConfirmPassword string
	AgreedToTerms   bool
}

// Validate checks the form as of now and returns the normalised request:
// trimmed name, trimmed lower-case email and digits-only phone.
func (f SignUpForm) Validate(now time.Time) (RegisterRequest, error) {
	name := strings.TrimSpace(f.Name)
	email := strings.TrimSpace(f.Email)
	phone := PhoneDigits(f.Phone)

	switch {
	case name == "":
		return RegisterRequest{}, ErrNameRequired
	case !IsValidEmail(email):
		return RegisterRequest{}, ErrInvalidEmail
	case len(phone) != PhoneDigitCount:
		return RegisterRequest{}, ErrInvalidPhone
	case AgeOn(f.DateOfBirth, now) < MinimumAge:
		return RegisterRequest{}, ErrTooYoung
	case f.Password == "":
		return RegisterRequest{}, ErrPasswordRequired
	case f.Password != f.ConfirmPassword:
		return RegisterRequest{}, ErrPasswordMismatch
	case !f.AgreedToTerms:
		return RegisterRequest{}, ErrTermsNotAccepted
	}

	return RegisterRequest{
		Name:        name,
		Email:       strings.ToLower(email),
		Phone:       phone,
		DateOfBirth: NewDate(f.DateOfBirth.Date()),
		Password:    f.Password,
	}, nil
}

// AgeOn returns the number of whole years between dob and now.
func AgeOn(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}

// ValidateNewPassword checks a password chosen on the reset screen.
func ValidateNewPassword(password, confirm string) error {
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}
