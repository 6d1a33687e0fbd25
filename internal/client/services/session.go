// Package services contains the application services of the Luca client.
// This file defines the session service: it drives the backend transport
// and owns the lifecycle of the single auth token kept in the secret store.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/luca/internal/client/client"
	"github.com/dmitrijs2005/luca/internal/client/models"
	"github.com/dmitrijs2005/luca/internal/client/secrets"
	"github.com/dmitrijs2005/luca/internal/common"
	"github.com/dmitrijs2005/luca/internal/logging"
)

// SessionService is the authentication and account API used by the CLI.
//
// Contract:
//   - Register and Login persist the returned token, overwriting any previous one.
//   - Logout and DeleteSelf clear the token only after the server acknowledged.
//   - Any 401 from a protected call clears the token before returning ErrUnauthorized.
//   - Protected calls without a stored token fail with ErrUnauthorized and send nothing.
//   - Nothing is retried.
//
// Backend failures are *client.Error values. Failures of the secret store
// itself are returned wrapped and do not belong to that taxonomy.
type SessionService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context) error
	FetchSelf(ctx context.Context) (*models.Account, error)
	DeleteSelf(ctx context.Context) error
	ListAll(ctx context.Context) ([]models.Account, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	IsAuthenticated(ctx context.Context) bool
	Health(ctx context.Context) (map[string]string, error)
	CurrentAccount() *models.Account
}

// AuthResult is what a successful register or login hands back to the caller.
// The token itself stays inside the service.
type AuthResult struct {
	Message string
	Account models.Account
}

type sessionService struct {
	client client.Client
	store  secrets.Store
	log    logging.Logger

	mu      sync.Mutex
	current *models.Account
}

func NewSessionService(c client.Client, store secrets.Store, log logging.Logger) SessionService {
	return &sessionService{
		client: c,
		store:  store,
		log:    log.With("component", "session"),
	}
}

// token returns the stored token. A store that cannot be read is treated
// as holding no token.
func (s *sessionService) token(ctx context.Context) (string, bool) {
	tok, ok, err := s.store.Get(ctx, common.AuthTokenKey)
	if err != nil {
		s.log.Warn(ctx, "secret store unreadable, treating session as signed out", "error", err)
		return "", false
	}
	return tok, ok && tok != ""
}

func (s *sessionService) setCurrent(acc *models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = acc
}

func (s *sessionService) begin(ctx context.Context, op string, ar *models.AuthResponse) (*AuthResult, error) {
	if err := s.store.Set(ctx, common.AuthTokenKey, ar.Token); err != nil {
		return nil, fmt.Errorf("%s: persist token: %w", op, err)
	}
	acc := ar.Account
	s.setCurrent(&acc)
	s.log.Info(ctx, "session started", "op", op, "account_id", acc.ID)
	return &AuthResult{Message: ar.Message, Account: acc}, nil
}

func (s *sessionService) end(ctx context.Context, reason string) error {
	s.setCurrent(nil)
	if err := s.store.Delete(ctx, common.AuthTokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	s.log.Info(ctx, "session cleared", "reason", reason)
	return nil
}

// dropOnUnauthorized clears the session when err is a 401 and passes err through.
func (s *sessionService) dropOnUnauthorized(ctx context.Context, err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		if cerr := s.end(ctx, "unauthorized"); cerr != nil {
			s.log.Error(ctx, "failed to clear rejected token", "error", cerr)
		}
	}
	return err
}

func (s *sessionService) Register(ctx context.Context, req models.RegisterRequest) (*AuthResult, error) {
	ar, err := s.client.Register(ctx, req)
	if err != nil {
		s.log.Debug(ctx, "register failed", "kind", client.KindOf(err))
		return nil, err
	}
	return s.begin(ctx, "register", ar)
}

func (s *sessionService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	ar, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.log.Debug(ctx, "login failed", "kind", client.KindOf(err))
		return nil, err
	}
	return s.begin(ctx, "login", ar)
}

func (s *sessionService) Logout(ctx context.Context) error {
	tok, ok := s.token(ctx)
	if !ok {
		return nil
	}
	if err := s.client.Logout(ctx, tok); err != nil {
		return err
	}
	return s.end(ctx, "logout")
}

func (s *sessionService) FetchSelf(ctx context.Context) (*models.Account, error) {
	tok, ok := s.token(ctx)
	if !ok {
		return nil, client.ErrUnauthorized
	}
	acc, err := s.client.GetMyAccount(ctx, tok)
	if err != nil {
		return nil, s.dropOnUnauthorized(ctx, err)
	}
	cp := *acc
	s.setCurrent(&cp)
	return acc, nil
}

func (s *sessionService) DeleteSelf(ctx context.Context) error {
	acc, err := s.FetchSelf(ctx)
	if err != nil {
		return err
	}
	tok, ok := s.token(ctx)
	if !ok {
		return client.ErrUnauthorized
	}
	if err := s.client.DeleteAccount(ctx, tok, acc.ID); err != nil {
		return s.dropOnUnauthorized(ctx, err)
	}
	return s.end(ctx, "account deleted")
}

func (s *sessionService) ListAll(ctx context.Context) ([]models.Account, error) {
	tok, ok := s.token(ctx)
	if !ok {
		return nil, client.ErrUnauthorized
	}
	list, err := s.client.ListAccounts(ctx, tok)
	if err != nil {
		return nil, s.dropOnUnauthorized(ctx, err)
	}
	return list, nil
}

func (s *sessionService) RequestPasswordReset(ctx context.Context, email string) error {
	return s.client.RequestPasswordReset(ctx, email)
}

func (s *sessionService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	return s.client.ResetPassword(ctx, resetToken, newPassword)
}

func (s *sessionService) IsAuthenticated(ctx context.Context) bool {
	_, ok := s.token(ctx)
	return ok
}

func (s *sessionService) Health(ctx context.Context) (map[string]string, error) {
	return s.client.Health(ctx)
}

// CurrentAccount returns a copy of the account last seen by register, login
// or FetchSelf, or nil when signed out.
func (s *sessionService) CurrentAccount() *models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}
