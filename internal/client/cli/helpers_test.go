package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/luca/internal/client/models"
	"github.com/dmitrijs2005/luca/internal/client/services"
	"github.com/dmitrijs2005/luca/internal/logging"
)

type fakeSession struct {
	calls []string

	regReq models.RegisterRequest
	regErr error

	loginEmail, loginPassword string
	loginErr                  error

	logoutErr error

	self    *models.Account
	selfErr error

	deleteErr error

	list    []models.Account
	listErr error

	forgotEmail string
	forgotErr   error

	resetToken, resetPassword string
	resetErr                  error

	health    map[string]string
	healthErr error

	authenticated bool
	current       *models.Account
}

func (f *fakeSession) Register(_ context.Context, req models.RegisterRequest) (*services.AuthResult, error) {
	f.calls = append(f.calls, "register")
	f.regReq = req
	if f.regErr != nil {
		return nil, f.regErr
	}
	return &services.AuthResult{
		Message: "Account created successfully",
		Account: models.Account{ID: 1, Name: req.Name, Email: req.Email},
	}, nil
}

func (f *fakeSession) Login(_ context.Context, email, password string) (*services.AuthResult, error) {
	f.calls = append(f.calls, "login")
	f.loginEmail, f.loginPassword = email, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &services.AuthResult{Message: "Login successful", Account: models.Account{ID: 1, Email: email}}, nil
}

func (f *fakeSession) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	return f.logoutErr
}

func (f *fakeSession) FetchSelf(context.Context) (*models.Account, error) {
	f.calls = append(f.calls, "fetch-self")
	return f.self, f.selfErr
}

func (f *fakeSession) DeleteSelf(context.Context) error {
	f.calls = append(f.calls, "delete-self")
	return f.deleteErr
}

func (f *fakeSession) ListAll(context.Context) ([]models.Account, error) {
	f.calls = append(f.calls, "list-all")
	return f.list, f.listErr
}

func (f *fakeSession) RequestPasswordReset(_ context.Context, email string) error {
	f.calls = append(f.calls, "forgot")
	f.forgotEmail = email
	return f.forgotErr
}

func (f *fakeSession) ResetPassword(_ context.Context, token, password string) error {
	f.calls = append(f.calls, "reset")
	f.resetToken, f.resetPassword = token, password
	return f.resetErr
}

func (f *fakeSession) IsAuthenticated(context.Context) bool { return f.authenticated }

func (f *fakeSession) Health(context.Context) (map[string]string, error) {
	f.calls = append(f.calls, "health")
	return f.health, f.healthErr
}

func (f *fakeSession) CurrentAccount() *models.Account { return f.current }

// newTestApp builds an App reading the given lines. Passwords are read from
// the same input because the terminal check is stubbed out.
func newTestApp(t *testing.T, f *fakeSession, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	origTerm := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })

	input := strings.Join(lines, "\n")
	if len(lines) > 0 {
		input += "\n"
	}
	out := &bytes.Buffer{}
	return &App{
		session: f,
		log:     logging.NewNopLogger(),
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     out,
		now:     func() time.Time { return time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC) },
	}, out
}
