package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// Login authenticates a user with username + password and records a login
// audit entry. Unknown users, wrong passwords and inactive accounts all
// yield ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = s.hasher.Check(s.dummyHash(), input.Password)
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := s.hasher.Check(user.PasswordHash, input.Password); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		s.log.WarnContext(ctx, "login by inactive user", slog.String("user_id", user.ID.String()))
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	if _, err := s.recorder.Record(ctx, user.ID, domain.AuditKindLogin, nil, nil); err != nil {
		return nil, fmt.Errorf("auth.Login audit: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))

	return result, nil
}

// ValidateToken checks an access token and returns the user ID it was
// issued for.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth.ValidateToken: %w: %w", domain.ErrUnauthorized, err)
	}
	return userID, nil
}
