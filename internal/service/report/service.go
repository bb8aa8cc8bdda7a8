// Package report builds the tabular report projections over samples and the
// audit trail. Reports never mutate state.
package report

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/labsample-backend/internal/access"
	"github.com/heartmarshall/labsample-backend/internal/config"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// timestampLayout is used for every audit timestamp cell.
const timestampLayout = "2006-01-02 15:04"

const dateLayout = "2006-01-02"

// missing fills cells that have no value.
const missing = "-"

// sampleRepo defines the sample listing needed by the samples report.
type sampleRepo interface {
	List(ctx context.Context, f domain.SampleFilter) ([]domain.Sample, int, error)
}

// auditRepo defines the audit reads needed by the reports.
type auditRepo interface {
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)
	LatestApprovals(ctx context.Context, userID *uuid.UUID) ([]domain.ApprovalRef, error)
}

// userRepo defines the user lookup needed to authorize requests.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service builds reports.
type Service struct {
	log     *slog.Logger
	samples sampleRepo
	audit   auditRepo
	users   userRepo
	cfg     config.ReportConfig
}

// NewService creates a new report service instance.
func NewService(
	logger *slog.Logger,
	samples sampleRepo,
	audit auditRepo,
	users userRepo,
	cfg config.ReportConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "report"),
		samples: samples,
		audit:   audit,
		users:   users,
		cfg:     cfg,
	}
}

// ParseRequest turns raw query parameters into a request. Dates are
// YYYY-MM-DD; malformed or empty dates and user IDs mean "no bound".
// Unknown kinds select the samples report.
func ParseRequest(kind, from, to, userID string) domain.ReportRequest {
	req := domain.ReportRequest{Kind: domain.ParseReportKind(kind)}
	req.From = parseDate(from)
	req.To = parseDate(to)
	if id, err := uuid.Parse(strings.TrimSpace(userID)); err == nil {
		req.UserID = &id
	}
	return req
}

func parseDate(s string) *time.Time {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &t
}

// Build returns the report selected by req. Callers need the view_auditlog
// permission.
func (s *Service) Build(ctx context.Context, req domain.ReportRequest) (*domain.Report, error) {
	caller, err := access.Caller(ctx, s.users)
	if err != nil {
		return nil, err
	}
	if err := access.Require(caller, domain.PermViewAuditLog, access.CapViewAudit); err != nil {
		return nil, err
	}
	return s.build(ctx, req)
}

// Export is Build for callers that may also download reports.
func (s *Service) Export(ctx context.Context, req domain.ReportRequest) (*domain.Report, error) {
	caller, err := access.Caller(ctx, s.users)
	if err != nil {
		return nil, err
	}
	if err := access.Require(caller, domain.PermViewAuditLog, access.CapExportReports); err != nil {
		return nil, err
	}

	rep, err := s.build(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "report exported",
		slog.String("user_id", caller.ID.String()),
		slog.String("kind", rep.Kind.String()),
		slog.Int("rows", len(rep.Rows)),
	)
	return rep, nil
}

func (s *Service) build(ctx context.Context, req domain.ReportRequest) (*domain.Report, error) {
	switch req.Kind {
	case domain.ReportKindRFID:
		return s.rfidReport(ctx, req)
	case domain.ReportKindApproval:
		return s.approvalReport(ctx, req)
	case domain.ReportKindAudit:
		return s.auditReport(ctx, req)
	default:
		return s.samplesReport(ctx, req)
	}
}

func columns(labels ...string) []domain.Column {
	out := make([]domain.Column, len(labels))
	for i, l := range labels {
		out[i] = domain.Column{Label: l, IsStatus: l == "Status" || l == "Final Status"}
	}
	return out
}

func orMissing(s string) string {
	if s == "" {
		return missing
	}
	return s
}

func (s *Service) auditFilter(req domain.ReportRequest, kinds ...domain.AuditKind) domain.AuditFilter {
	return domain.AuditFilter{
		Kinds:  kinds,
		UserID: req.UserID,
		From:   req.From,
		To:     req.To,
		Limit:  s.cfg.MaxRows + 1,
	}
}

// capRows trims entries fetched with auditFilter to the row cap. The extra
// row auditFilter asks for tells whether anything was cut.
func (s *Service) capRows(entries []domain.AuditEntry) ([]domain.AuditEntry, bool) {
	if len(entries) > s.cfg.MaxRows {
		return entries[:s.cfg.MaxRows], true
	}
	return entries, false
}
