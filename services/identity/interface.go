// File: services/identity/interface.go
package identity

import (
	"context"

	userRepo "roomdesk/database/repository/user"
	"roomdesk/models"

	"firebase.google.com/go/v4/auth"
	"github.com/go-redis/redis/v8"
)

// Service defines business logic for account and sign-in operations.
type Service interface {
	// Register creates a new email/password account and signs it in.
	Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error)
	// Authenticate verifies credentials and returns the user and a token.
	Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error)
	// AuthenticateGoogle verifies a Google ID token and signs the account
	// in, creating it on first use.
	AuthenticateGoogle(ctx context.Context, idToken string) (*models.AuthResponse, error)
	// Revoke invalidates the user's authentication token (sign-out).
	Revoke(ctx context.Context, userID string) error
	// GetUserByID retrieves a user by its unique ID.
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// DefaultIdentityService is the production implementation. Firebase stays
// nil when identity mirroring is not configured.
type DefaultIdentityService struct {
	Repo           userRepo.UserRepository
	Notifier       *Notifier
	AuthCache      *redis.Client
	Firebase       *auth.Client
	GoogleAudience string
}
