package sample

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/labsample-backend/internal/access"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// Delete removes a sample that has no linked audit history. Samples that
// went through the workflow or were edited are kept and ErrConflict is
// returned. The tag stays registered.
func (s *Service) Delete(ctx context.Context, number string) error {
	caller, err := access.Caller(ctx, s.users)
	if err != nil {
		return err
	}
	if err := access.Require(caller, domain.PermDeleteSample, access.CapMutateSample); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sample, err := s.samples.GetByNumberForUpdate(ctx, number)
		if err != nil {
			return err
		}

		if err := s.samples.Delete(ctx, sample.ID); err != nil {
			return err
		}

		_, err = s.recorder.Record(ctx, caller.ID, domain.AuditKindSampleDeleted,
			map[string]string{domain.PayloadSampleNumber: sample.SampleNumber}, nil)
		return err
	})
	if err != nil {
		return fmt.Errorf("sample.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "sample deleted",
		slog.String("user_id", caller.ID.String()),
		slog.String("sample", number),
	)

	return nil
}
