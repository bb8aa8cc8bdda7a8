package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// Register creates an active user in the Viewer group and logs them in.
// It is disabled unless auth.allow_self_signup is set. Returns
// ErrAlreadyExists if the username is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if !s.cfg.AllowSelfSignup {
		return nil, domain.ErrForbidden
	}

	input.Normalize()
	if err := input.Validate(s.cfg.PasswordMinLen); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now().UTC()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			Username:     input.Username,
			Email:        input.Email,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			PasswordHash: hash,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if err := s.users.SetGroups(txCtx, user.ID, []string{domain.RoleViewer.String()}); err != nil {
			return fmt.Errorf("assign group: %w", err)
		}

		user.Groups = []string{domain.RoleViewer.String()}
		created = user
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueToken(created)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", created.ID.String()))

	return result, nil
}
