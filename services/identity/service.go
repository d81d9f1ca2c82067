// File: services/identity/service.go
package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"roomdesk/models"
	"roomdesk/utils"

	"firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// Register creates a new email/password account, signs it in, and notifies
// identity observers.
func (s *DefaultIdentityService) Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Register: Failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Provider:     models.ProviderPassword,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		utils.GetLogger().Error("Register: Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	s.mirrorToFirebase(ctx, user)
	return s.signIn(ctx, user)
}

// Authenticate verifies email/password credentials and signs the user in.
func (s *DefaultIdentityService) Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: Failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if user == nil || user.PasswordHash == "" {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.signIn(ctx, user)
}

// AuthenticateGoogle validates a Google ID token, creates the account on
// first use, and signs the user in.
func (s *DefaultIdentityService) AuthenticateGoogle(ctx context.Context, idToken string) (*models.AuthResponse, error) {
	info, err := ValidateGoogleToken(idToken, s.GoogleAudience)
	if err != nil {
		return nil, fmt.Errorf("google sign-in failed: %w", err)
	}

	user, err := s.Repo.GetByEmail(ctx, info.Email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateGoogle: Failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if user == nil {
		user = &models.User{
			ID:       uuid.New().String(),
			Name:     info.Name,
			Email:    info.Email,
			Provider: models.ProviderGoogle,
		}
		if err := s.Repo.Create(ctx, user); err != nil {
			utils.GetLogger().Error("AuthenticateGoogle: Failed to create user", zap.Error(err))
			return nil, fmt.Errorf("authentication failed, please try again")
		}
		s.mirrorToFirebase(ctx, user)
	}

	return s.signIn(ctx, user)
}

// Revoke invalidates the user's token and notifies observers that this
// user, and only this user, signed out.
func (s *DefaultIdentityService) Revoke(ctx context.Context, userID string) error {
	if err := s.AuthCache.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	s.Notifier.SignedOut(userID)
	return nil
}

// GetUserByID retrieves a user by its unique ID.
func (s *DefaultIdentityService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}

// signIn issues a token, caches its hash for the auth middleware, and
// notifies identity observers.
func (s *DefaultIdentityService) signIn(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + user.ID
	if err := s.AuthCache.Set(ctx, cacheKey, utils.HashToken(token), utils.AuthCacheTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to create auth session: %w", err)
	}

	s.Notifier.SignedIn(user)
	return &models.AuthResponse{User: *user, Token: token}, nil
}

// mirrorToFirebase creates the account in Firebase so dashboards built on
// the original Firebase project see the same identity pool. Mirroring
// failures are logged and never block sign-in.
func (s *DefaultIdentityService) mirrorToFirebase(ctx context.Context, user *models.User) {
	if s.Firebase == nil {
		return
	}
	if _, err := s.Firebase.GetUserByEmail(ctx, user.Email); err == nil {
		return
	} else if !auth.IsUserNotFound(err) {
		utils.GetLogger().Warn("Firebase lookup failed", zap.Error(err))
		return
	}

	params := (&auth.UserToCreate{}).
		Email(user.Email).
		DisplayName(user.Name).
		UID(user.ID)
	if _, err := s.Firebase.CreateUser(ctx, params); err != nil {
		utils.GetLogger().Warn("Firebase mirror failed", zap.Error(err))
	}
}
