// Package auth implements session login for the admin panel.
package auth

import (
	"context"
	"time"

	"vitalis/internal/domain/user"
	"vitalis/internal/infrastructure/auth"
	apperrors "vitalis/internal/shared/errors"
	"vitalis/internal/shared/logger"
)

// PasswordHasher verifies plaintext passwords against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// SessionUser is the authenticated identity returned to the admin UI.
type SessionUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type Service struct {
	users  user.Repository
	hasher PasswordHasher
	tokens *auth.TokenService
	logger logger.Interface
}

func NewService(users user.Repository, hasher PasswordHasher, tokens *auth.TokenService) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger.NewLogger().With("component", "auth.service"),
	}
}

// Login authenticates by email and password and returns a signed session
// token. Invalid email, wrong password and disabled account all produce the
// same unauthorized error.
func (s *Service) Login(ctx context.Context, email, password string) (string, *SessionUser, error) {
	start := time.Now()

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			s.logger.Warnw("login rejected: unknown email", "email", email)
			return "", nil, apperrors.NewUnauthorizedError("invalid credentials")
		}
		return "", nil, err
	}

	if !u.IsActive() {
		s.logger.Warnw("login rejected: account disabled", "user_id", u.ID())
		return "", nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	if err := s.hasher.Verify(password, u.PasswordHash()); err != nil {
		s.logger.Warnw("login rejected: password mismatch", "user_id", u.ID())
		return "", nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	token, err := s.tokens.Issue(u.ID(), u.Email(), u.Role())
	if err != nil {
		return "", nil, apperrors.NewInternalError("failed to issue session token")
	}

	s.logger.Infow("login succeeded",
		"user_id", u.ID(),
		"role", u.Role(),
		"duration", time.Since(start))

	return token, toSessionUser(u), nil
}

// Me resolves the current session user from the verified token claims.
func (s *Service) Me(ctx context.Context, userID uint) (*SessionUser, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !u.IsActive() {
		return nil, apperrors.NewUnauthorizedError("account disabled")
	}
	return toSessionUser(u), nil
}

// ChangePassword verifies the current password before replacing it.
func (s *Service) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return apperrors.NewValidationError("password must be at least 8 characters")
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.hasher.Verify(currentPassword, u.PasswordHash()); err != nil {
		return apperrors.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return apperrors.NewInternalError("failed to hash password")
	}

	if err := u.ChangePasswordHash(hash); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	if err := s.users.Update(ctx, u); err != nil {
		return err
	}

	s.logger.Infow("password changed", "user_id", userID)
	return nil
}

func toSessionUser(u *user.User) *SessionUser {
	return &SessionUser{
		ID:    u.ID(),
		Email: u.Email(),
		Name:  u.Name(),
		Role:  string(u.Role()),
	}
}
