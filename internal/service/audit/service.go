// Package audit appends entries to the audit trail and serves filtered reads.
package audit

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
	maxLimit     = 500
)

// auditRepo defines the audit repository interface needed by the recorder.
type auditRepo interface {
	Create(ctx context.Context, e domain.AuditEntry) error
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)
	Count(ctx context.Context, f domain.AuditFilter) (int, error)
}

// userRepo defines the user lookup needed to authorize reads.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service records and lists audit entries.
type Service struct {
	log   *slog.Logger
	audit auditRepo
	users userRepo
	now   func() time.Time
	newID func() (uuid.UUID, error)
}

// NewService creates a new audit service instance.
func NewService(logger *slog.Logger, audit auditRepo, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "audit"),
		audit: audit,
		users: users,
		now:   time.Now,
		newID: uuid.NewV7,
	}
}

// Record appends one entry. The display text is derived from kind and
// payload. When ctx carries a transaction the entry joins it, so the caller's
// state change and its audit trail commit or roll back together.
//
// IDs are UUIDv7, so entries sharing a created_at still list in the order
// they were recorded.
func (s *Service) Record(
	ctx context.Context,
	userID uuid.UUID,
	kind domain.AuditKind,
	payload map[string]string,
	sampleID *uuid.UUID,
) (domain.AuditEntry, error) {
	if !kind.IsValid() {
		return domain.AuditEntry{}, domain.NewValidationError("kind", "unknown audit kind")
	}

	id, err := s.newID()
	if err != nil {
		return domain.AuditEntry{}, fmt.Errorf("audit.Record: new id: %w", err)
	}

	entry := domain.AuditEntry{
		ID:        id,
		UserID:    userID,
		SampleID:  sampleID,
		Kind:      kind,
		Payload:   payload,
		Action:    domain.AuditText(kind, payload),
		CreatedAt: s.now().UTC(),
	}

	if err := s.audit.Create(ctx, entry); err != nil {
		return domain.AuditEntry{}, fmt.Errorf("audit.Record: %w", err)
	}

	s.log.DebugContext(ctx, "audit recorded",
		slog.String("user_id", userID.String()),
		slog.String("kind", kind.String()),
	)

	return entry, nil
}

// RecordText appends a free-form note.
func (s *Service) RecordText(ctx context.Context, userID uuid.UUID, text string, sampleID *uuid.UUID) (domain.AuditEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.AuditEntry{}, domain.NewValidationError("text", "required")
	}
	return s.Record(ctx, userID, domain.AuditKindNote, map[string]string{domain.PayloadText: text}, sampleID)
}

// List returns a page of entries matching the filter and the total number
// of matches. Callers need the view_auditlog permission.
func (s *Service) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, int, error) {
	caller, err := access.Caller(ctx, s.users)
	if err != nil {
		return nil, 0, err
	}
	if err := access.Require(caller, domain.PermViewAuditLog, access.CapViewAudit); err != nil {
		return nil, 0, err
	}

	switch {
	case f.Limit <= 0:
		f.Limit = defaultLimit
	case f.Limit > maxLimit:
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	entries, err := s.audit.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("audit.List: %w", err)
	}

	total, err := s.audit.Count(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("audit.Count: %w", err)
	}

	return entries, total, nil
}
