package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

func (s *Service) samplesReport(ctx context.Context, req domain.ReportRequest) (*domain.Report, error) {
	var (
		samples   []domain.Sample
		total     int
		approvals []domain.ApprovalRef
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		samples, total, err = s.samples.List(gctx, domain.SampleFilter{
			CollectedFrom: req.From,
			CollectedTo:   req.To,
			Limit:         s.cfg.MaxRows,
		})
		return err
	})
	g.Go(func() error {
		var err error
		approvals, err = s.audit.LatestApprovals(gctx, req.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("report.samples: %w", err)
	}

	approvedBy := make(map[uuid.UUID]string, len(approvals))
	for _, a := range approvals {
		approvedBy[a.SampleID] = a.Username
	}

	rows := make([][]string, 0, len(samples))
	for _, sm := range samples {
		checked := "no"
		if sm.Status.IsRFIDChecked() {
			checked = "yes"
		}
		approver, ok := approvedBy[sm.ID]
		if !ok {
			approver = missing
		}
		rows = append(rows, []string{
			sm.SampleNumber,
			sm.SampleType,
			sm.Category,
			sm.CollectedDate.Format(dateLayout),
			sm.Status.Label(),
			checked,
			approver,
		})
	}

	return &domain.Report{
		Kind:  domain.ReportKindSamples,
		Title: "Samples Report",
		Columns: columns("Sample Number", "Sample Type", "Category", "Collected Date",
			"Status", "RFID Checked", "Approved By"),
		Rows:      rows,
		Truncated: total > len(samples),
	}, nil
}

func (s *Service) rfidReport(ctx context.Context, req domain.ReportRequest) (*domain.Report, error) {
	entries, err := s.audit.List(ctx, s.auditFilter(req, domain.AuditKindRFIDCheck))
	if err != nil {
		return nil, fmt.Errorf("report.rfid: %w", err)
	}
	entries, truncated := s.capRows(entries)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			orMissing(e.SampleNumber),
			e.Payload[domain.PayloadUID],
			e.CreatedAt.UTC().Format(timestampLayout),
			e.Username,
			"success",
		})
	}

	return &domain.Report{
		Kind:      domain.ReportKindRFID,
		Title:     "RFID Check Report",
		Columns:   columns("Sample Number", "UID", "Checked At", "User", "Result"),
		Rows:      rows,
		Truncated: truncated,
	}, nil
}

func (s *Service) approvalReport(ctx context.Context, req domain.ReportRequest) (*domain.Report, error) {
	entries, err := s.audit.List(ctx, s.auditFilter(req, domain.AuditKindApprove))
	if err != nil {
		return nil, fmt.Errorf("report.approval: %w", err)
	}
	entries, truncated := s.capRows(entries)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			orMissing(e.SampleNumber),
			e.CreatedAt.UTC().Format(timestampLayout),
			e.Username,
			"approved",
			"",
		})
	}

	return &domain.Report{
		Kind:      domain.ReportKindApproval,
		Title:     "Approval Report",
		Columns:   columns("Sample Number", "Approved At", "User", "Final Status", "Notes"),
		Rows:      rows,
		Truncated: truncated,
	}, nil
}

func (s *Service) auditReport(ctx context.Context, req domain.ReportRequest) (*domain.Report, error) {
	entries, err := s.audit.List(ctx, s.auditFilter(req))
	if err != nil {
		return nil, fmt.Errorf("report.audit: %w", err)
	}
	entries, truncated := s.capRows(entries)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Username,
			e.Action,
			orMissing(e.SampleNumber),
			e.CreatedAt.UTC().Format(timestampLayout),
		})
	}

	return &domain.Report{
		Kind:      domain.ReportKindAudit,
		Title:     "Activity Report",
		Columns:   columns("User", "Action", "Sample Number", "Timestamp"),
		Rows:      rows,
		Truncated: truncated,
	}, nil
}
