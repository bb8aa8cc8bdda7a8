// Package user implements profile editing and administrative account
// management.
package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/labsample-backend/internal/auth"
	"github.com/heartmarshall/labsample-backend/internal/config"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// resetPasswordBytes is the entropy of generated passwords.
const resetPasswordBytes = 9

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	SetActive(ctx context.Context, id uuid.UUID, active bool, at time.Time) error
	SetPassword(ctx context.Context, id uuid.UUID, hash string, at time.Time) error
	SetGroups(ctx context.Context, id uuid.UUID, groups []string) error
}

// auditRecorder appends audit entries.
type auditRecorder interface {
	Record(ctx context.Context, userID uuid.UUID, kind domain.AuditKind, payload map[string]string, sampleID *uuid.UUID) (domain.AuditEntry, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// passwordHasher hashes passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
}

// Service implements user profile and administration operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	recorder  auditRecorder
	tx        txManager
	hasher    passwordHasher
	cfg       config.AuthConfig
	now       func() time.Time
	genSecret func(n int) (string, error)
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	recorder auditRecorder,
	tx txManager,
	hasher passwordHasher,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "user"),
		users:     users,
		recorder:  recorder,
		tx:        tx,
		hasher:    hasher,
		cfg:       cfg,
		now:       time.Now,
		genSecret: auth.GeneratePassword,
	}
}
