package sample

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/labsample-backend/internal/access"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// Create registers a sample in status pending together with its new RFID
// tag. A taken sample number or tag UID yields ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Sample, error) {
	caller, err := access.Caller(ctx, s.users)
	if err != nil {
		return nil, err
	}
	if err := access.Require(caller, domain.PermAddSample, access.CapMutateSample); err != nil {
		return nil, err
	}
	if err := access.Require(caller, domain.PermAddRFIDTag, ""); err != nil {
		return nil, err
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	var created *domain.Sample

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		tag, err := s.tags.Create(ctx, &domain.RFIDTag{
			ID:        uuid.New(),
			UID:       in.RFIDUID,
			IsActive:  true,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		created, err = s.samples.Create(ctx, &domain.Sample{
			ID:            uuid.New(),
			SampleNumber:  in.SampleNumber,
			SampleType:    in.SampleType,
			Category:      in.Category,
			PersonName:    in.PersonName,
			CollectedDate: in.CollectedDate,
			Location:      in.Location,
			Status:        domain.SampleStatusPending,
			Tag:           *tag,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			return err
		}

		_, err = s.recorder.Record(ctx, caller.ID, domain.AuditKindSampleCreated,
			map[string]string{domain.PayloadSampleNumber: created.SampleNumber}, nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("sample.Create: %w", err)
	}

	s.log.InfoContext(ctx, "sample created",
		slog.String("user_id", caller.ID.String()),
		slog.String("sample", created.SampleNumber),
		slog.String("rfid_uid", created.Tag.UID),
	)

	return created, nil
}
