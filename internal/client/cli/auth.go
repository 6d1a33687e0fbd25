package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/luca/internal/client/models"
	"github.com/dmitrijs2005/luca/internal/client/services"
	"github.com/dmitrijs2005/luca/internal/common"
)

// getSimpleText and getPassword point at the interactive input helpers and
// are swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) prompt(text string) (string, error) {
	return getSimpleText(a.reader, text, a.out)
}

func (a *App) secret(text string) (string, error) {
	pw, err := getPassword(a.reader, text, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// Register collects the sign-up form, checks it locally and creates the
// account. Server-side rejections are reported in sign-up screen wording.
func (a *App) Register(ctx context.Context) error {
	var (
		form models.SignUpForm
		err  error
	)
	if form.Name, err = a.prompt("Full name"); err != nil {
		return err
	}
	if form.Email, err = a.prompt("Email"); err != nil {
		return err
	}
	if form.Phone, err = a.prompt("Phone number"); err != nil {
		return err
	}
	fmt.Fprintln(a.out, models.FormatPhone(form.Phone))

	dob, err := a.prompt("Date of birth (YYYY-MM-DD)")
	if err != nil {
		return err
	}
	d, err := models.ParseDate(dob)
	if err != nil {
		return err
	}
	form.DateOfBirth = d.Time

	if form.Password, err = a.secret("Password"); err != nil {
		return err
	}
	if form.ConfirmPassword, err = a.secret("Confirm password"); err != nil {
		return err
	}
	if form.AgreedToTerms, err = GetYesNo(a.reader, "Do you agree to the Terms of Service and Privacy Policy?", a.out); err != nil {
		return err
	}

	req, err := form.Validate(a.now())
	if err != nil {
		return err
	}

	res, err := a.session.Register(ctx, req)
	if err != nil {
		return errors.New(services.RegistrationErrorMessage(err))
	}
	fmt.Fprintf(a.out, "%s. Welcome, %s!\n", res.Message, res.Account.Name)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	password, err := a.secret("Password")
	if err != nil {
		return err
	}

	// Same normalisation as sign-up, so an account is found however it is typed.
	email = strings.ToLower(strings.TrimSpace(email))

	res, err := a.session.Login(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s. Signed in as %s\n", res.Message, res.Account.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

// Forgot asks the backend to mail a reset link. The answer is the same
// whether or not the address is registered.
func (a *App) Forgot(ctx context.Context) error {
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	if !models.IsValidEmail(email) {
		return models.ErrInvalidEmail
	}
	if err := a.session.RequestPasswordReset(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "If this email exists, a reset link has been sent.")
	return nil
}

// Reset completes a password reset with the token from the emailed link.
func (a *App) Reset(ctx context.Context) error {
	token, err := a.prompt("Reset token")
	if err != nil {
		return err
	}
	if token == "" {
		return errors.New("reset token is required")
	}
	password, err := a.secret("New password")
	if err != nil {
		return err
	}
	confirm, err := a.secret("Confirm new password")
	if err != nil {
		return err
	}
	if err := models.ValidateNewPassword(password, confirm); err != nil {
		return err
	}

	if err := a.session.ResetPassword(ctx, token, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password reset successfully. Please log in with your new password.")
	return nil
}
