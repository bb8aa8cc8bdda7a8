// Package auth implements password login, self-signup and access token
// validation.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/labsample-backend/internal/config"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// dummyPassword is hashed once at the configured cost for dummyHash.
const dummyPassword = "labsample-no-such-user"

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	SetGroups(ctx context.Context, id uuid.UUID, groups []string) error
}

// auditRecorder appends audit entries.
type auditRecorder interface {
	Record(ctx context.Context, userID uuid.UUID, kind domain.AuditKind, payload map[string]string, sampleID *uuid.UUID) (domain.AuditEntry, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, username string) (string, time.Time, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// passwordHasher hashes and verifies passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
	Check(hash, password string) error
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	recorder auditRecorder
	tx       txManager
	jwt      jwtManager
	hasher   passwordHasher
	cfg      config.AuthConfig

	// dummyHash is checked for unknown usernames so they cost as much as
	// a wrong password.
	dummyHash func() string
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	recorder auditRecorder,
	tx txManager,
	jwt jwtManager,
	hasher passwordHasher,
	cfg config.AuthConfig,
) *Service {
	s := &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		recorder: recorder,
		tx:       tx,
		jwt:      jwt,
		hasher:   hasher,
		cfg:      cfg,
	}
	s.dummyHash = sync.OnceValue(func() string {
		h, err := s.hasher.Hash(dummyPassword)
		if err != nil {
			s.log.Warn("dummy password hash", slog.String("error", err.Error()))
		}
		return h
	})
	return s
}

// issueToken generates an access token for the given user.
func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	token, expiresAt, err := s.jwt.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &AuthResult{AccessToken: token, ExpiresAt: expiresAt, User: user}, nil
}
