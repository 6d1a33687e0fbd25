// Package accounts holds the stub backend's in-memory account state:
// registration, login with lockout, JWT sessions and password reset tokens.
package accounts

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/luca/internal/client/models"
	"github.com/dmitrijs2005/luca/internal/stubserver/auth"
	"github.com/dmitrijs2005/luca/internal/stubserver/config"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type account struct {
	models.Account
	passwordHash []byte
}

type resetToken struct {
	accountID int64
	expiresAt time.Time
	used      bool
}

// Session is a freshly issued login.
type Session struct {
	Token   string
	Account models.Account
}

type Service struct {
	secretKey     []byte
	tokenValidity time.Duration
	resetValidity time.Duration
	minimumAge    int
	hashCost      int
	now           func() time.Time
	lockout       *Lockout

	mu          sync.Mutex
	nextID      int64
	accounts    map[int64]*account
	byEmail     map[string]int64
	sessions    map[string]int64
	resets      map[string]*resetToken
	latestReset map[int64]string
}

// Option adjusts a Service at construction.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithHashCost sets the bcrypt cost; tests use bcrypt.MinCost.
func WithHashCost(cost int) Option {
	return func(s *Service) { s.hashCost = cost }
}

func NewService(cfg *config.Config, opts ...Option) *Service {
	s := &Service{
		secretKey:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
		resetValidity: cfg.ResetTokenValidity,
		minimumAge:    cfg.MinimumAge,
		hashCost:      bcrypt.DefaultCost,
		now:           time.Now,
		accounts:      make(map[int64]*account),
		byEmail:       make(map[string]int64),
		sessions:      make(map[string]int64),
		resets:        make(map[string]*resetToken),
		latestReset:   make(map[int64]string),
	}
	for _, o := range opts {
		o(s)
	}
	s.lockout = NewLockout(cfg.MaxLoginAttempts, cfg.LockoutDuration, s.now)
	return s
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// startSession must be called with s.mu held.
func (s *Service) startSession(a *account) (*Session, error) {
	now := s.now()
	token, sid, err := auth.GenerateToken(a.ID, s.secretKey, s.tokenValidity, now)
	if err != nil {
		return nil, err
	}
	s.sessions[sid] = a.ID
	last := models.Timestamp{Time: now}
	a.LastLogin = &last
	return &Session{Token: token, Account: a.Account}, nil
}

func (s *Service) Register(in RegisterInput) (*Session, error) {
	dob, err := in.validate(s.now(), s.minimumAge)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	email := normalizeEmail(in.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[email]; taken {
		return nil, ErrEmailTaken
	}

	s.nextID++
	created := models.Timestamp{Time: s.now()}
	a := &account{
		Account: models.Account{
			ID:          s.nextID,
			Name:        strings.TrimSpace(in.Name),
			Email:       email,
			Phone:       in.Phone,
			DateOfBirth: dob,
			CreatedAt:   &created,
		},
		passwordHash: hash,
	}
	s.accounts[a.ID] = a
	s.byEmail[email] = a.ID

	return s.startSession(a)
}

func (s *Service) Login(email, password string) (*Session, error) {
	var v ValidationError
	checkEmail(&v, strings.TrimSpace(email))
	if err := v.orNil(); err != nil {
		return nil, err
	}

	key := normalizeEmail(email)
	if remaining := s.lockout.Check(key); remaining > 0 {
		return nil, &LockedError{Remaining: remaining}
	}

	s.mu.Lock()
	id, ok := s.byEmail[key]
	var hash []byte
	if ok {
		hash = s.accounts[id].passwordHash
	}
	s.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		s.lockout.Fail(key)
		return nil, ErrInvalidCredentials
	}
	s.lockout.Reset(key)

	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return s.startSession(a)
}

// Authenticate resolves a bearer token to the account and session it names.
func (s *Service) Authenticate(token string) (accountID int64, sessionID string, err error) {
	claims, err := auth.ParseToken(token, s.secretKey)
	if err != nil {
		return 0, "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	owner, ok := s.sessions[claims.ID]
	if !ok || owner != claims.AccountID {
		return 0, "", ErrSessionNotFound
	}
	return owner, claims.ID, nil
}

// Logout ends the session named by token. Unknown or malformed tokens are
// ignored so that logout always succeeds.
func (s *Service) Logout(token string) {
	claims, err := auth.ParseToken(token, s.secretKey)
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, claims.ID)
}

// EndSession revokes one session by ID. Unknown IDs are ignored.
func (s *Service) EndSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Update changes the name and/or phone of an account. Empty values are left
// as they are; both empty is ErrNothingToUpdate.
func (s *Service) Update(id int64, name, phone string) (models.Account, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" && phone == "" {
		return models.Account{}, ErrNothingToUpdate
	}

	var v ValidationError
	if name != "" {
		checkName(&v, name)
	}
	if phone != "" {
		checkPhone(&v, phone)
	}
	if err := v.orNil(); err != nil {
		return models.Account{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	if name != "" {
		a.Name = name
	}
	if phone != "" {
		a.Phone = phone
	}
	return a.Account, nil
}

func (s *Service) Get(id int64) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	return a.Account, nil
}

// List returns every account ordered by ID.
func (s *Service) List() []models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a.Account)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Delete removes the account together with its sessions and reset tokens.
func (s *Service) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return ErrAccountNotFound
	}
	delete(s.accounts, id)
	delete(s.byEmail, a.Email)
	delete(s.latestReset, id)
	s.dropSessions(id)
	for tok, rt := range s.resets {
		if rt.accountID == id {
			delete(s.resets, tok)
		}
	}
	return nil
}

// dropSessions must be called with s.mu held.
func (s *Service) dropSessions(accountID int64) {
	for sid, owner := range s.sessions {
		if owner == accountID {
			delete(s.sessions, sid)
		}
	}
}

// RequestReset issues a reset token when email belongs to an account. The
// caller cannot tell whether it did.
func (s *Service) RequestReset(email string) error {
	var v ValidationError
	checkEmail(&v, strings.TrimSpace(email))
	if err := v.orNil(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return nil
	}
	tok := uuid.NewString()
	s.resets[tok] = &resetToken{accountID: id, expiresAt: s.now().Add(s.resetValidity)}
	s.latestReset[id] = tok
	return nil
}

// ResetTokenFor returns the newest reset token issued for email. It stands in
// for the email that would carry the token.
func (s *Service) ResetTokenFor(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return "", false
	}
	tok, ok := s.latestReset[id]
	return tok, ok
}

// ResetPassword consumes token, sets the new password and signs the account
// out everywhere.
func (s *Service) ResetPassword(token, newPassword string) error {
	var v ValidationError
	checkPassword(&v, "new_password", newPassword)
	if err := v.orNil(); err != nil {
		return err
	}

	s.mu.Lock()
	rt, ok := s.resets[token]
	switch {
	case !ok:
		s.mu.Unlock()
		return ErrInvalidResetToken
	case rt.used:
		s.mu.Unlock()
		return ErrResetTokenUsed
	case s.now().After(rt.expiresAt):
		s.mu.Unlock()
		return ErrResetTokenExpired
	}
	a, ok := s.accounts[rt.accountID]
	s.mu.Unlock()
	if !ok {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.hashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rt.used {
		return ErrResetTokenUsed
	}
	rt.used = true
	a.passwordHash = hash
	s.dropSessions(a.ID)
	return nil
}

// IsLocked reports whether err means the caller is locked out of login.
func IsLocked(err error) (*LockedError, bool) {
	var le *LockedError
	ok := errors.As(err, &le)
	return le, ok
}
