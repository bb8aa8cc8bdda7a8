package sample

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/labsample-backend/internal/access"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// Update edits the descriptive attributes of a sample. Number, tag and
// status cannot be changed here.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*domain.Sample, error) {
	caller, err := access.Caller(ctx, s.users)
	if err != nil {
		return nil, err
	}
	if err := access.Require(caller, domain.PermChangeSample, access.CapMutateSample); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Sample
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sample, err := s.samples.GetByNumberForUpdate(ctx, in.SampleNumber)
		if err != nil {
			return err
		}

		in.apply(sample)
		sample.UpdatedAt = s.now().UTC()

		if err := s.samples.UpdateDetails(ctx, sample); err != nil {
			return err
		}

		if _, err := s.recorder.Record(ctx, caller.ID, domain.AuditKindSampleUpdated,
			map[string]string{domain.PayloadSampleNumber: sample.SampleNumber}, &sample.ID); err != nil {
			return err
		}

		updated = sample
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sample.Update: %w", err)
	}

	s.log.InfoContext(ctx, "sample updated",
		slog.String("user_id", caller.ID.String()),
		slog.String("sample", updated.SampleNumber),
	)

	return updated, nil
}
