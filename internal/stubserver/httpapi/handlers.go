package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/luca/internal/client/models"
	"github.com/dmitrijs2005/luca/internal/stubserver/accounts"
	"github.com/go-chi/chi/v5"
)

type authResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	Account models.Account `json:"account"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to Luca App API",
		"version": s.version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":        "healthy",
		"email_service": "not_configured",
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in accounts.RegisterInput
	if !decodeBody(w, r, &in) {
		return
	}

	sess, err := s.accounts.Register(in)
	switch {
	case errors.Is(err, accounts.ErrEmailTaken):
		writeDetail(w, http.StatusBadRequest, "Email already registered")
	case err != nil:
		writeServiceError(w, err)
	default:
		s.log.Info(r.Context(), "account registered", "account_id", sess.Account.ID)
		writeJSON(w, http.StatusCreated, authResponse{
			Message: "Account created successfully",
			Token:   sess.Token,
			Account: sess.Account,
		})
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	sess, err := s.accounts.Login(in.Email, in.Password)
	if le, locked := accounts.IsLocked(err); locked {
		writeDetail(w, http.StatusTooManyRequests,
			fmt.Sprintf("Too many failed login attempts. Try again in %d minute(s).", le.Minutes()))
		return
	}
	switch {
	case errors.Is(err, accounts.ErrInvalidCredentials):
		writeDetail(w, http.StatusUnauthorized, "Invalid email or password")
	case err != nil:
		writeServiceError(w, err)
	default:
		writeJSON(w, http.StatusOK, authResponse{
			Message: "Login successful",
			Token:   sess.Token,
			Account: sess.Account,
		})
	}
}

func (s *Server) handleLogoutToken(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Token string `json:"token"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	s.accounts.Logout(in.Token)
	writeJSON(w, http.StatusOK, message{"Logout successful"})
}

// handleLogout ends the session that carried the request.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFrom(r.Context())
	s.accounts.EndSession(id.SessionID)
	writeJSON(w, http.StatusOK, message{"Logout successful"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFrom(r.Context())
	acc, err := s.accounts.Get(id.AccountID)
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Account not found")
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

// handleUpdateMe takes name and phone from the query string.
func (s *Server) handleUpdateMe(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFrom(r.Context())
	q := r.URL.Query()

	acc, err := s.accounts.Update(id.AccountID, q.Get("name"), q.Get("phone"))
	switch {
	case errors.Is(err, accounts.ErrNothingToUpdate):
		writeDetail(w, http.StatusBadRequest, "Provide at least one field to update (name or phone)")
	case errors.Is(err, accounts.ErrAccountNotFound):
		writeDetail(w, http.StatusNotFound, "Account not found")
	case err != nil:
		writeServiceError(w, err)
	default:
		writeJSON(w, http.StatusOK, struct {
			Message string         `json:"message"`
			Account models.Account `json:"account"`
		}{"Account updated successfully", acc})
	}
}

// ownAccountID parses {accountID} and checks that it names the caller.
func ownAccountID(w http.ResponseWriter, r *http.Request, verb string) (int64, bool) {
	target, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil {
		writeValidation(w, accounts.ValidationError{{Field: "account_id", Message: "Input should be a valid integer"}})
		return 0, false
	}
	id, _ := identityFrom(r.Context())
	if target != id.AccountID {
		writeDetail(w, http.StatusForbidden, "You can only "+verb+" your own account")
		return 0, false
	}
	return target, true
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := ownAccountID(w, r, "view")
	if !ok {
		return
	}
	acc, err := s.accounts.Get(id)
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Account not found")
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := ownAccountID(w, r, "delete")
	if !ok {
		return
	}
	if err := s.accounts.Delete(id); err != nil {
		writeDetail(w, http.StatusNotFound, "Account not found")
		return
	}
	s.log.Info(r.Context(), "account deleted", "account_id", id)
	writeJSON(w, http.StatusOK, message{"Account deleted successfully"})
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.accounts.List())
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email string `json:"email"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	if err := s.accounts.RequestReset(in.Email); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, message{"If this email exists, a reset link has been sent."})
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	err := s.accounts.ResetPassword(in.Token, in.NewPassword)
	switch {
	case errors.Is(err, accounts.ErrInvalidResetToken):
		writeDetail(w, http.StatusBadRequest, "Invalid reset token")
	case errors.Is(err, accounts.ErrResetTokenUsed):
		writeDetail(w, http.StatusBadRequest, "Reset token has already been used")
	case errors.Is(err, accounts.ErrResetTokenExpired):
		writeDetail(w, http.StatusBadRequest, "Reset token has expired. Please request a new reset link.")
	case err != nil:
		writeServiceError(w, err)
	default:
		writeJSON(w, http.StatusOK, message{"Password reset successfully. Please log in with your new password."})
	}
}
