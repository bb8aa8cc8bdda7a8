package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/labsample-backend/internal/access"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// Transition is the outcome of an accepted action.
type Transition struct {
	Sample domain.Sample
	From   domain.SampleStatus
	Entry  domain.AuditEntry
}

// ApplyAction executes a workflow action against the sample identified by
// number on behalf of the user in ctx.
//
// The caller is authorized before the sample is read. Inside one transaction
// the sample row is locked, the transition table is consulted, the status is
// updated and exactly one audit entry is appended. A refused action returns
// *domain.TransitionError and leaves nothing changed.
func (s *Service) ApplyAction(ctx context.Context, number string, action domain.WorkflowAction) (*Transition, error) {
	if !action.IsValid() {
		return nil, domain.NewValidationError("action", "unknown action")
	}

	caller, err := access.Caller(ctx, s.users)
	if err != nil {
		return nil, err
	}
	if err := access.AuthorizeTransition(caller); err != nil {
		actionsTotal.WithLabelValues(action.String(), "denied").Inc()
		s.log.WarnContext(ctx, "workflow action denied",
			slog.String("user_id", caller.ID.String()),
			slog.String("sample", number),
			slog.String("action", action.String()),
		)
		return nil, err
	}

	var result *Transition
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sample, err := s.samples.GetByNumberForUpdate(ctx, number)
		if err != nil {
			return err
		}

		next, ok := domain.NextStatus(sample.Status, action)
		if !ok {
			return &domain.TransitionError{
				SampleNumber: sample.SampleNumber,
				Status:       sample.Status,
				Action:       action,
			}
		}

		now := s.now().UTC()
		if err := s.samples.UpdateStatus(ctx, sample.ID, next, now); err != nil {
			return err
		}

		var payload map[string]string
		if action == domain.ActionRFIDCheck {
			payload = map[string]string{domain.PayloadUID: sample.Tag.UID}
		}

		entry, err := s.audit.Record(ctx, caller.ID, domain.TransitionAuditKind(action), payload, &sample.ID)
		if err != nil {
			return err
		}

		from := sample.Status
		sample.Status = next
		sample.UpdatedAt = now
		result = &Transition{Sample: *sample, From: from, Entry: entry}
		return nil
	})
	if err != nil {
		var te *domain.TransitionError
		if errors.As(err, &te) {
			actionsTotal.WithLabelValues(action.String(), "refused").Inc()
			s.log.InfoContext(ctx, "workflow action refused",
				slog.String("sample", number),
				slog.String("status", te.Status.String()),
				slog.String("action", action.String()),
			)
			return nil, te
		}
		return nil, fmt.Errorf("workflow.ApplyAction: %w", err)
	}

	actionsTotal.WithLabelValues(action.String(), "applied").Inc()
	s.log.InfoContext(ctx, "workflow action applied",
		slog.String("user_id", caller.ID.String()),
		slog.String("sample", number),
		slog.String("from", result.From.String()),
		slog.String("to", result.Sample.Status.String()),
	)

	return result, nil
}
