// Package sample implements registration, lookup and maintenance of samples.
// Status changes go through the workflow service only.
package sample

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/labsample-backend/internal/config"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// detailLogLimit is the number of audit entries shown with a sample.
const detailLogLimit = 10

// maxPageSize caps client supplied page sizes.
const maxPageSize = 200

// sampleRepo defines the sample repository interface needed by sample service.
type sampleRepo interface {
	GetByNumber(ctx context.Context, number string) (*domain.Sample, error)
	GetByNumberForUpdate(ctx context.Context, number string) (*domain.Sample, error)
	List(ctx context.Context, f domain.SampleFilter) ([]domain.Sample, int, error)
	Create(ctx context.Context, s *domain.Sample) (*domain.Sample, error)
	UpdateDetails(ctx context.Context, s *domain.Sample) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// tagRepo defines the tag repository interface needed by sample service.
type tagRepo interface {
	Create(ctx context.Context, t *domain.RFIDTag) (*domain.RFIDTag, error)
}

// userRepo defines the user lookup needed to authorize requests.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// auditRecorder appends audit entries.
type auditRecorder interface {
	Record(ctx context.Context, userID uuid.UUID, kind domain.AuditKind, payload map[string]string, sampleID *uuid.UUID) (domain.AuditEntry, error)
}

// auditReader reads the audit history of a sample.
type auditReader interface {
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)
}

// txManager defines the transaction manager interface needed by sample service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements sample operations.
type Service struct {
	log      *slog.Logger
	samples  sampleRepo
	tags     tagRepo
	users    userRepo
	recorder auditRecorder
	history  auditReader
	tx       txManager
	cfg      config.ReportConfig
	now      func() time.Time
}

// NewService creates a new sample service instance.
func NewService(
	logger *slog.Logger,
	samples sampleRepo,
	tags tagRepo,
	users userRepo,
	recorder auditRecorder,
	history auditReader,
	tx txManager,
	cfg config.ReportConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "sample"),
		samples:  samples,
		tags:     tags,
		users:    users,
		recorder: recorder,
		history:  history,
		tx:       tx,
		cfg:      cfg,
		now:      time.Now,
	}
}
