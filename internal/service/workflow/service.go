// Package workflow moves samples through the approval state machine.
package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

var actionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "labsample_workflow_actions_total",
		Help: "Workflow actions by action and outcome.",
	},
	[]string{"action", "result"},
)

// sampleRepo defines the sample repository interface needed by the workflow.
type sampleRepo interface {
	GetByNumberForUpdate(ctx context.Context, number string) (*domain.Sample, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SampleStatus, at time.Time) error
}

// userRepo defines the user lookup needed to authorize actions.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// auditRecorder appends audit entries inside the caller's transaction.
type auditRecorder interface {
	Record(ctx context.Context, userID uuid.UUID, kind domain.AuditKind, payload map[string]string, sampleID *uuid.UUID) (domain.AuditEntry, error)
}

// txManager defines the transaction manager interface needed by the workflow.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service applies workflow actions.
type Service struct {
	log     *slog.Logger
	samples sampleRepo
	users   userRepo
	audit   auditRecorder
	tx      txManager
	now     func() time.Time
}

// NewService creates a new workflow service instance.
func NewService(
	logger *slog.Logger,
	samples sampleRepo,
	users userRepo,
	audit auditRecorder,
	tx txManager,
) *Service {
	return &Service{
		log:     logger.With("service", "workflow"),
		samples: samples,
		users:   users,
		audit:   audit,
		tx:      tx,
		now:     time.Now,
	}
}
