package service

import (
	"autosallon/internal/common"
	"autosallon/internal/common/security"
	"autosallon/internal/domain/model"
	"autosallon/internal/domain/repository"
	"context"
	"errors"
	"fmt"
)

type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) *AuthService {
	return &AuthService{userRepo: userRepo, sessionRepo: sessionRepo}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies the credentials and establishes a new session. Unknown
// usernames and wrong passwords produce the same error so callers cannot
// probe for account existence.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*model.User, string, error) {
	if req.Username == "" || req.Password == "" {
		return nil, "", common.ErrUnauthorized
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrUnauthorized
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, "", common.ErrUnauthorized
	}

	token, err := s.sessionRepo.Create(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}
	user.HashedPassword = "" // Clear credential before returning
	return user, token, nil
}

// Logout destroys the session unconditionally; an absent or invalid token is
// not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.Delete(ctx, token)
}

// CurrentUser resolves a session token to its user. A missing session, an
// expired session, or a session pointing at a user that no longer exists all
// yield ErrUnauthorized.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, common.ErrUnauthorized
	}

	userID, err := s.sessionRepo.Get(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Stale session: the user behind it is gone.
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	user.HashedPassword = ""
	return user, nil
}

// RegisterUser creates a user with a hashed credential. There is no public
// signup route; seeding and tests go through this.
func (s *AuthService) RegisterUser(ctx context.Context, username, password string, isAdmin bool) (*model.User, error) {
	if username == "" || password == "" {
		return nil, common.ErrBadRequest
	}

	hashedPassword, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:       username,
		HashedPassword: hashedPassword,
		IsAdmin:        isAdmin,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo might return common.ErrConflict
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.HashedPassword = ""
	return user, nil
}
