package accounts

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/luca/internal/stubserver/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, *fakeClock) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	clk := &fakeClock{t: time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)}
	return NewService(cfg, WithClock(clk.Now), WithHashCost(bcrypt.MinCost)), clk
}

func validInput() RegisterInput {
	return RegisterInput{
		Name:        "Ada Lovelace",
		Email:       "Ada@Example.com",
		Phone:       "(555) 123-4567",
		DateOfBirth: "1990-04-02",
		Password:    "s3cretpass",
	}
}

func TestRegister(t *testing.T) {
	s, _ := newTestService(t)

	sess, err := s.Register(validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, int64(1), sess.Account.ID)
	assert.Equal(t, "ada@example.com", sess.Account.Email)
	assert.Equal(t, "1990-04-02", sess.Account.DateOfBirth.String())
	require.NotNil(t, sess.Account.CreatedAt)

	id, _, err := s.Authenticate(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	in := validInput()
	in.Email = "ada@example.COM"
	_, err = s.Register(in)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, s.List(), 1)
}

func TestRegister_Validation(t *testing.T) {
	s, _ := newTestService(t)

	tests := []struct {
		name  string
		edit  func(*RegisterInput)
		field string
	}{
		{"short name", func(in *RegisterInput) { in.Name = " A " }, "name"},
		{"bad email", func(in *RegisterInput) { in.Email = "ada@" }, "email"},
		{"short phone", func(in *RegisterInput) { in.Phone = "555-1234" }, "phone"},
		{"bad date", func(in *RegisterInput) { in.DateOfBirth = "04/02/1990" }, "date_of_birth"},
		{"datetime", func(in *RegisterInput) { in.DateOfBirth = "1990-04-02T00:00:00" }, "date_of_birth"},
		{"too young", func(in *RegisterInput) { in.DateOfBirth = "2010-01-01" }, "date_of_birth"},
		{"short password", func(in *RegisterInput) { in.Password = "a1" }, "password"},
		{"no digit", func(in *RegisterInput) { in.Password = "onlyletters" }, "password"},
		{"no letter", func(in *RegisterInput) { in.Password = "1234567890" }, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.edit(&in)
			_, err := s.Register(in)

			var ve ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			require.Len(t, ve, 1)
			assert.Equal(t, tt.field, ve[0].Field)
		})
	}
	assert.Empty(t, s.List())
}

func TestLogin_AndLockout(t *testing.T) {
	s, clk := newTestService(t)
	_, err := s.Register(validInput())
	require.NoError(t, err)

	sess, err := s.Login("ADA@example.com", "s3cretpass")
	require.NoError(t, err)
	require.NotNil(t, sess.Account.LastLogin)

	for i := 0; i < 5; i++ {
		_, err = s.Login("ada@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}

	_, err = s.Login("ada@example.com", "s3cretpass")
	le, locked := IsLocked(err)
	require.True(t, locked, "got %v", err)
	assert.Equal(t, 5, le.Minutes())

	clk.Advance(5*time.Minute + time.Second)
	_, err = s.Login("ada@example.com", "s3cretpass")
	require.NoError(t, err)
}

func TestLogin_UnknownEmailCountsAsFailure(t *testing.T) {
	s, _ := newTestService(t)
	for i := 0; i < 5; i++ {
		_, err := s.Login("ghost@example.com", "whatever1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}
	_, err := s.Login("ghost@example.com", "whatever1")
	_, locked := IsLocked(err)
	assert.True(t, locked)
}

func TestLogout_RevokesSessionOnly(t *testing.T) {
	s, _ := newTestService(t)
	first, err := s.Register(validInput())
	require.NoError(t, err)
	second, err := s.Login("ada@example.com", "s3cretpass")
	require.NoError(t, err)

	s.Logout(first.Token)
	s.Logout("garbage")

	_, _, err = s.Authenticate(first.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, _, err = s.Authenticate(second.Token)
	assert.NoError(t, err)
}

func TestDelete(t *testing.T) {
	s, _ := newTestService(t)
	sess, err := s.Register(validInput())
	require.NoError(t, err)
	require.NoError(t, s.RequestReset("ada@example.com"))

	require.NoError(t, s.Delete(sess.Account.ID))
	assert.ErrorIs(t, s.Delete(sess.Account.ID), ErrAccountNotFound)

	_, _, err = s.Authenticate(sess.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = s.Get(sess.Account.ID)
	assert.ErrorIs(t, err, ErrAccountNotFound)
	_, ok := s.ResetTokenFor("ada@example.com")
	assert.False(t, ok)

	_, err = s.Register(validInput())
	assert.NoError(t, err, "email is free again")
}

func TestPasswordReset(t *testing.T) {
	s, clk := newTestService(t)
	sess, err := s.Register(validInput())
	require.NoError(t, err)

	require.NoError(t, s.RequestReset("nobody@example.com"), "unknown email is not revealed")
	_, ok := s.ResetTokenFor("nobody@example.com")
	assert.False(t, ok)

	require.NoError(t, s.RequestReset("ada@example.com"))
	tok, ok := s.ResetTokenFor("ada@example.com")
	require.True(t, ok)

	var ve ValidationError
	require.True(t, errors.As(s.ResetPassword(tok, "short"), &ve))

	require.NoError(t, s.ResetPassword(tok, "newpass123"))
	assert.ErrorIs(t, s.ResetPassword(tok, "newpass123"), ErrResetTokenUsed)
	assert.ErrorIs(t, s.ResetPassword("nope", "newpass123"), ErrInvalidResetToken)

	_, _, err = s.Authenticate(sess.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound, "reset signs out everywhere")

	_, err = s.Login("ada@example.com", "s3cretpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Login("ada@example.com", "newpass123")
	assert.NoError(t, err)

	require.NoError(t, s.RequestReset("ada@example.com"))
	tok, _ = s.ResetTokenFor("ada@example.com")
	clk.Advance(time.Hour + time.Second)
	assert.ErrorIs(t, s.ResetPassword(tok, "another123"), ErrResetTokenExpired)
}

func TestRequestReset_InvalidEmail(t *testing.T) {
	s, _ := newTestService(t)
	var ve ValidationError
	assert.True(t, errors.As(s.RequestReset("not-an-email"), &ve))
}

func TestUpdate(t *testing.T) {
	s, _ := newTestService(t)
	sess, err := s.Register(validInput())
	require.NoError(t, err)
	id := sess.Account.ID

	acc, err := s.Update(id, "  Ada King ", "")
	require.NoError(t, err)
	assert.Equal(t, "Ada King", acc.Name)
	assert.Equal(t, sess.Account.Phone, acc.Phone)

	acc, err = s.Update(id, "", "555 987 6543")
	require.NoError(t, err)
	assert.Equal(t, "555 987 6543", acc.Phone)
	assert.Equal(t, "Ada King", acc.Name)

	_, err = s.Update(id, " ", "")
	assert.ErrorIs(t, err, ErrNothingToUpdate)

	_, err = s.Update(id, "A", "12")
	var ve ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve, 2)

	_, err = s.Update(99, "Grace", "")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestEndSession(t *testing.T) {
	s, _ := newTestService(t)
	sess, err := s.Register(validInput())
	require.NoError(t, err)

	_, sid, err := s.Authenticate(sess.Token)
	require.NoError(t, err)
	s.EndSession(sid)
	s.EndSession("unknown")

	_, _, err = s.Authenticate(sess.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
