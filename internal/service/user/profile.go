package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/labsample-backend/internal/access"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	return access.Caller(ctx, s.users)
}

// UpdateProfile updates the authenticated user's email and name and records
// a profile_updated audit entry.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := access.Caller(ctx, s.users)
	if err != nil {
		return nil, err
	}

	user.Email = input.Email
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.UpdatedAt = s.now().UTC()

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.users.Update(ctx, user); err != nil {
			return err
		}
		_, err := s.recorder.Record(ctx, user.ID, domain.AuditKindProfileUpdated, nil, nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", user.ID.String()))

	return user, nil
}
