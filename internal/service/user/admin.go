package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/labsample-backend/internal/access"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// Account is a user as shown to administrators, with the derived role.
type Account struct {
	User domain.User
	Role domain.Role
}

// ListUsers returns a paginated list of all users with their roles (admin only).
func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]Account, int, error) {
	if _, err := s.admin(ctx); err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}

	users, total, err := s.users.List(ctx, domain.UserFilter{Limit: limit, Offset: max(offset, 0)})
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", err)
	}

	accounts := make([]Account, len(users))
	for i := range users {
		accounts[i] = Account{User: users[i], Role: access.RoleOf(&users[i])}
	}
	return accounts, total, nil
}

// CreateUser creates an account in exactly the group of the given role.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*Account, error) {
	caller, err := s.admin(ctx)
	if err != nil {
		return nil, err
	}

	input.Normalize()
	role, err := input.Validate(s.cfg.PasswordMinLen)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser hash password: %w", err)
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		now := s.now().UTC()
		u, err := s.users.Create(ctx, &domain.User{
			ID:           uuid.New(),
			Username:     input.Username,
			Email:        input.Email,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			PasswordHash: hash,
			IsActive:     !input.Inactive,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return err
		}

		if err := s.users.SetGroups(ctx, u.ID, []string{role.String()}); err != nil {
			return err
		}
		u.Groups = []string{role.String()}

		_, err = s.recorder.Record(ctx, caller.ID, domain.AuditKindUserCreated, map[string]string{
			domain.PayloadUsername: u.Username,
			domain.PayloadRole:     role.String(),
		}, nil)
		if err != nil {
			return err
		}

		created = u
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("admin_id", caller.ID.String()),
		slog.String("target_user_id", created.ID.String()),
		slog.String("role", role.String()),
	)

	return &Account{User: *created, Role: role}, nil
}

// UpdateUser applies administrative changes. One audit entry is written per
// changed aspect: details, active flag and role. Administrators cannot
// deactivate or demote themselves.
func (s *Service) UpdateUser(ctx context.Context, targetID uuid.UUID, input UpdateUserInput) (*Account, error) {
	caller, err := s.admin(ctx)
	if err != nil {
		return nil, err
	}

	role, err := input.Validate()
	if err != nil {
		return nil, err
	}

	if caller.ID == targetID {
		if input.IsActive != nil && !*input.IsActive {
			return nil, domain.NewValidationError("is_active", "cannot deactivate yourself")
		}
		if role != nil && *role != domain.RoleAdmin {
			return nil, domain.NewValidationError("role", "cannot demote yourself")
		}
	}

	var result *Account
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		u, err := s.users.GetByID(ctx, targetID)
		if err != nil {
			return err
		}
		now := s.now().UTC()
		payload := map[string]string{domain.PayloadUsername: u.Username}

		if input.apply(u) {
			u.UpdatedAt = now
			if err := s.users.Update(ctx, u); err != nil {
				return err
			}
			if err := s.record(ctx, caller.ID, domain.AuditKindUserUpdated, payload); err != nil {
				return err
			}
		}

		if input.IsActive != nil && *input.IsActive != u.IsActive {
			if err := s.setActive(ctx, caller.ID, u, *input.IsActive, now); err != nil {
				return err
			}
		}

		current := access.RoleOf(u)
		if role != nil && (*role != current || len(u.Groups) != 1) {
			if err := s.users.SetGroups(ctx, u.ID, []string{role.String()}); err != nil {
				return err
			}
			u.Groups = []string{role.String()}
			if *role != current {
				err := s.record(ctx, caller.ID, domain.AuditKindRoleChanged, map[string]string{
					domain.PayloadUsername: u.Username,
					domain.PayloadRole:     role.String(),
				})
				if err != nil {
					return err
				}
			}
		}

		result = &Account{User: *u, Role: access.RoleOf(u)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user updated",
		slog.String("admin_id", caller.ID.String()),
		slog.String("target_user_id", targetID.String()),
	)

	return result, nil
}

// ToggleActive flips the active flag of an account.
func (s *Service) ToggleActive(ctx context.Context, targetID uuid.UUID) (*Account, error) {
	caller, err := s.admin(ctx)
	if err != nil {
		return nil, err
	}
	if caller.ID == targetID {
		return nil, domain.NewValidationError("is_active", "cannot deactivate yourself")
	}

	var result *Account
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		u, err := s.users.GetByID(ctx, targetID)
		if err != nil {
			return err
		}
		if err := s.setActive(ctx, caller.ID, u, !u.IsActive, s.now().UTC()); err != nil {
			return err
		}
		result = &Account{User: *u, Role: access.RoleOf(u)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.ToggleActive: %w", err)
	}

	s.log.InfoContext(ctx, "user active flag toggled",
		slog.String("admin_id", caller.ID.String()),
		slog.String("target_user_id", targetID.String()),
		slog.Bool("active", result.User.IsActive),
	)

	return result, nil
}

// ResetPassword replaces the password of an account with a random one and
// returns it. The plain password is never stored or logged.
func (s *Service) ResetPassword(ctx context.Context, targetID uuid.UUID) (string, error) {
	caller, err := s.admin(ctx)
	if err != nil {
		return "", err
	}

	password, err := s.genSecret(resetPasswordBytes)
	if err != nil {
		return "", fmt.Errorf("user.ResetPassword: %w", err)
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("user.ResetPassword hash password: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		u, err := s.users.GetByID(ctx, targetID)
		if err != nil {
			return err
		}
		if err := s.users.SetPassword(ctx, u.ID, hash, s.now().UTC()); err != nil {
			return err
		}
		return s.record(ctx, caller.ID, domain.AuditKindPasswordReset,
			map[string]string{domain.PayloadUsername: u.Username})
	})
	if err != nil {
		return "", fmt.Errorf("user.ResetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password reset",
		slog.String("admin_id", caller.ID.String()),
		slog.String("target_user_id", targetID.String()),
	)

	return password, nil
}

func (s *Service) setActive(ctx context.Context, adminID uuid.UUID, u *domain.User, active bool, at time.Time) error {
	if err := s.users.SetActive(ctx, u.ID, active, at); err != nil {
		return err
	}
	u.IsActive = active
	u.UpdatedAt = at

	kind := domain.AuditKindUserDeactivated
	if active {
		kind = domain.AuditKindUserActivated
	}
	return s.record(ctx, adminID, kind, map[string]string{domain.PayloadUsername: u.Username})
}

func (s *Service) record(ctx context.Context, userID uuid.UUID, kind domain.AuditKind, payload map[string]string) error {
	_, err := s.recorder.Record(ctx, userID, kind, payload, nil)
	return err
}

func (s *Service) admin(ctx context.Context) (*domain.User, error) {
	caller, err := access.Caller(ctx, s.users)
	if err != nil {
		return nil, err
	}
	if err := access.Require(caller, "", access.CapManageUsers); err != nil {
		return nil, err
	}
	return caller, nil
}
