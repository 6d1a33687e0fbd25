package client

import (
	"context"

	"github.com/dmitrijs2005/luca/internal/client/models"
)

// Client is the transport contract for the Luca backend. Each method is one
// HTTP exchange; none of them retries or touches local state. Protected calls
// take the bearer token explicitly.
type Client interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	GetMyAccount(ctx context.Context, token string) (*models.Account, error)
	DeleteAccount(ctx context.Context, token string, id int64) error
	ListAccounts(ctx context.Context, token string) ([]models.Account, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	Health(ctx context.Context) (map[string]string, error)
}
