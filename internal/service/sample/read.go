package sample

import (
	"context"
	"fmt"

	"github.com/heartmarshall/labsample-backend/internal/access"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// Detail is a sample with its recent audit history.
type Detail struct {
	Sample domain.Sample
	Logs   []domain.AuditEntry
	// CanAct reports whether the caller may post workflow actions.
	CanAct bool
}

// Get returns a sample by number.
func (s *Service) Get(ctx context.Context, number string) (*domain.Sample, error) {
	if _, err := s.viewer(ctx); err != nil {
		return nil, err
	}

	sample, err := s.samples.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("sample.Get: %w", err)
	}
	return sample, nil
}

// Detail returns a sample, its ten most recent audit entries and whether the
// caller may act on it.
func (s *Service) Detail(ctx context.Context, number string) (*Detail, error) {
	caller, err := s.viewer(ctx)
	if err != nil {
		return nil, err
	}

	sample, err := s.samples.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("sample.Detail: %w", err)
	}

	logs, err := s.history.List(ctx, domain.AuditFilter{SampleID: &sample.ID, Limit: detailLogLimit})
	if err != nil {
		return nil, fmt.Errorf("sample.Detail history: %w", err)
	}

	return &Detail{
		Sample: *sample,
		Logs:   logs,
		CanAct: access.AuthorizeTransition(caller) == nil,
	}, nil
}

// List returns one page of samples matching the filter and the total count.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.Sample, int, error) {
	if _, err := s.viewer(ctx); err != nil {
		return nil, 0, err
	}

	f := in.filter()
	switch {
	case f.Limit <= 0:
		f.Limit = s.cfg.PageSize
	case f.Limit > maxPageSize:
		f.Limit = maxPageSize
	}

	samples, total, err := s.samples.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("sample.List: %w", err)
	}
	return samples, total, nil
}

// Export returns every sample matching the filter up to the configured row
// cap, ignoring paging, and the number of matches before the cap.
func (s *Service) Export(ctx context.Context, in ListInput) ([]domain.Sample, int, error) {
	if _, err := s.viewer(ctx); err != nil {
		return nil, 0, err
	}

	f := in.filter()
	f.Limit = s.cfg.MaxRows
	f.Offset = 0

	samples, total, err := s.samples.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("sample.Export: %w", err)
	}
	return samples, total, nil
}

func (s *Service) viewer(ctx context.Context) (*domain.User, error) {
	caller, err := access.Caller(ctx, s.users)
	if err != nil {
		return nil, err
	}
	if err := access.Require(caller, domain.PermViewSample, access.CapViewSamples); err != nil {
		return nil, err
	}
	return caller, nil
}
