// Package tag manages the RFID tag registry.
package tag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/labsample-backend/internal/access"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
	maxUIDLen    = 64
)

// tagRepo defines the tag repository interface needed by tag service.
type tagRepo interface {
	Create(ctx context.Context, t *domain.RFIDTag) (*domain.RFIDTag, error)
	List(ctx context.Context, limit, offset int) ([]domain.RFIDTag, error)
	SetActive(ctx context.Context, uid string, active bool) (*domain.RFIDTag, error)
	Delete(ctx context.Context, uid string) error
}

// userRepo defines the user lookup needed to authorize requests.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// auditRecorder appends audit entries.
type auditRecorder interface {
	Record(ctx context.Context, userID uuid.UUID, kind domain.AuditKind, payload map[string]string, sampleID *uuid.UUID) (domain.AuditEntry, error)
}

// txManager defines the transaction manager interface needed by tag service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements tag operations.
type Service struct {
	log      *slog.Logger
	tags     tagRepo
	users    userRepo
	recorder auditRecorder
	tx       txManager
	now      func() time.Time
}

// NewService creates a new tag service instance.
func NewService(logger *slog.Logger, tags tagRepo, users userRepo, recorder auditRecorder, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "tag"),
		tags:     tags,
		users:    users,
		recorder: recorder,
		tx:       tx,
		now:      time.Now,
	}
}

// List returns registered tags, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.RFIDTag, error) {
	if err := s.require(ctx, domain.PermViewRFIDTag, access.CapViewSamples); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = defaultLimit
	case limit > maxLimit:
		limit = maxLimit
	}

	tags, err := s.tags.List(ctx, limit, max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("tag.List: %w", err)
	}
	return tags, nil
}

// Create registers an unbound tag.
func (s *Service) Create(ctx context.Context, uid string) (*domain.RFIDTag, error) {
	caller, err := access.Caller(ctx, s.users)
	if err != nil {
		return nil, err
	}
	if err := access.Require(caller, domain.PermAddRFIDTag, access.CapMutateSample); err != nil {
		return nil, err
	}

	uid = strings.TrimSpace(uid)
	switch {
	case uid == "":
		return nil, domain.NewValidationError("uid", "required")
	case len(uid) > maxUIDLen:
		return nil, domain.NewValidationError("uid", "too long")
	}

	var created *domain.RFIDTag
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.tags.Create(ctx, &domain.RFIDTag{
			ID:        uuid.New(),
			UID:       uid,
			IsActive:  true,
			CreatedAt: s.now().UTC(),
		})
		if err != nil {
			return err
		}

		_, err = s.recorder.Record(ctx, caller.ID, domain.AuditKindTagCreated,
			map[string]string{domain.PayloadUID: uid}, nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("tag.Create: %w", err)
	}

	s.log.InfoContext(ctx, "rfid tag created",
		slog.String("user_id", caller.ID.String()),
		slog.String("uid", uid),
	)

	return created, nil
}

// SetActive enables or disables a tag.
func (s *Service) SetActive(ctx context.Context, uid string, active bool) (*domain.RFIDTag, error) {
	if err := s.require(ctx, domain.PermChangeRFIDTag, access.CapMutateSample); err != nil {
		return nil, err
	}

	tag, err := s.tags.SetActive(ctx, uid, active)
	if err != nil {
		return nil, fmt.Errorf("tag.SetActive: %w", err)
	}

	s.log.InfoContext(ctx, "rfid tag updated",
		slog.String("uid", uid),
		slog.Bool("active", active),
	)

	return tag, nil
}

// Delete removes a tag that is not bound to a sample.
func (s *Service) Delete(ctx context.Context, uid string) error {
	if err := s.require(ctx, domain.PermDeleteRFIDTag, access.CapMutateSample); err != nil {
		return err
	}

	if err := s.tags.Delete(ctx, uid); err != nil {
		return fmt.Errorf("tag.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "rfid tag deleted", slog.String("uid", uid))
	return nil
}

func (s *Service) require(ctx context.Context, codename string, c access.Capability) error {
	caller, err := access.Caller(ctx, s.users)
	if err != nil {
		return err
	}
	return access.Require(caller, codename, c)
}
