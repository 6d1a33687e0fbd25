package accounts

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/luca/internal/client/models"
)

const (
	minNameLength  = 2
	maxNameLength  = 100
	minPhoneDigits = 10
)

func checkEmail(v *ValidationError, email string) {
	if !models.IsValidEmail(email) {
		*v = append(*v, FieldError{"email", "Invalid email address"})
	}
}

func checkName(v *ValidationError, name string) {
	switch n := utf8.RuneCountInString(name); {
	case n < minNameLength:
		*v = append(*v, FieldError{"name", "Name must be at least 2 characters long"})
	case n > maxNameLength:
		*v = append(*v, FieldError{"name", "Name must be less than 100 characters"})
	}
}

func checkPhone(v *ValidationError, phone string) {
	if len(models.PhoneDigits(phone)) < minPhoneDigits {
		*v = append(*v, FieldError{"phone", "Phone number must be at least 10 digits"})
	}
}

func checkPassword(v *ValidationError, field, pw string) {
	switch {
	case utf8.RuneCountInString(pw) < models.MinPasswordLength:
		*v = append(*v, FieldError{field, fmt.Sprintf("Password must be at least %d characters long", models.MinPasswordLength)})
	case !strings.ContainsFunc(pw, unicode.IsDigit):
		*v = append(*v, FieldError{field, "Password must contain at least one number"})
	case !strings.ContainsFunc(pw, unicode.IsLetter):
		*v = append(*v, FieldError{field, "Password must contain at least one letter"})
	}
}

// RegisterInput is the decoded register body. DateOfBirth stays raw so that
// a malformed date is reported as a field error.
type RegisterInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
	Password    string `json:"password"`
}

func (in RegisterInput) validate(now time.Time, minAge int) (models.Date, error) {
	var v ValidationError

	checkName(&v, strings.TrimSpace(in.Name))

	checkEmail(&v, in.Email)

	checkPhone(&v, in.Phone)

	dob, err := models.ParseDate(in.DateOfBirth)
	switch {
	case err != nil || strings.Contains(in.DateOfBirth, "T"):
		v = append(v, FieldError{"date_of_birth", "Date of birth must be in YYYY-MM-DD format"})
	case models.AgeOn(dob.Time, now) < minAge:
		v = append(v, FieldError{"date_of_birth", fmt.Sprintf("You must be at least %d years old to register", minAge)})
	}

	checkPassword(&v, "password", in.Password)

	return dob, v.orNil()
}
