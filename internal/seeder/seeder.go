// Package seeder inserts demo RFID tags and samples. Every insert skips rows
// that already exist, so running it twice is harmless.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/labsample-backend/internal/adapter/postgres"
)

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result counts what a run inserted and what it found already present.
type Result struct {
	TagsCreated    int
	TagsSkipped    int
	SamplesCreated int
	SamplesSkipped int
}

// Seeder writes Fixtures into the database.
type Seeder struct {
	log   *slog.Logger
	db    postgres.Querier
	tx    txManager
	now   func() time.Time
	newID func() uuid.UUID
}

// New creates a Seeder.
func New(logger *slog.Logger, db postgres.Querier, tx txManager) *Seeder {
	return &Seeder{
		log:   logger.With("component", "seeder"),
		db:    db,
		tx:    tx,
		now:   time.Now,
		newID: uuid.New,
	}
}

// Run validates the fixtures and inserts them in one transaction.
// With dryRun it only validates.
func (s *Seeder) Run(ctx context.Context, f Fixtures, dryRun bool) (Result, error) {
	if err := f.Validate(); err != nil {
		return Result{}, err
	}
	if dryRun {
		s.log.InfoContext(ctx, "dry run: fixtures valid",
			slog.Int("tags", len(f.Tags)), slog.Int("samples", len(f.Samples)))
		return Result{}, nil
	}

	var res Result
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		res = Result{}
		tagIDs := make(map[string]uuid.UUID, len(f.Tags))

		for _, uid := range f.Tags {
			id, created, err := s.ensureTag(ctx, uid)
			if err != nil {
				return err
			}
			tagIDs[uid] = id
			if created {
				res.TagsCreated++
				s.log.InfoContext(ctx, "created rfid tag", slog.String("uid", uid))
			} else {
				res.TagsSkipped++
			}
		}

		for _, sf := range f.Samples {
			created, err := s.insertSample(ctx, sf, tagIDs[sf.TagUID])
			if err != nil {
				return err
			}
			if created {
				res.SamplesCreated++
				s.log.InfoContext(ctx, "created sample", slog.String("sample_number", sf.SampleNumber))
			} else {
				res.SamplesSkipped++
				s.log.WarnContext(ctx, "sample already exists", slog.String("sample_number", sf.SampleNumber))
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("seeder.Run: %w", err)
	}
	return res, nil
}

// ensureTag inserts the tag if missing and returns its id either way.
func (s *Seeder) ensureTag(ctx context.Context, uid string) (uuid.UUID, bool, error) {
	q := postgres.QuerierFromCtx(ctx, s.db)

	query, args, err := postgres.Builder.
		Insert("rfid_tags").
		Columns("id", "uid", "is_active", "created_at").
		Values(s.newID(), uid, true, s.now()).
		Suffix("ON CONFLICT (uid) DO NOTHING").
		ToSql()
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("build insert rfid_tag: %w", err)
	}
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("insert rfid_tag %s: %w", uid, err)
	}

	query, args, err = postgres.Builder.
		Select("id").
		From("rfid_tags").
		Where("uid = ?", uid).
		ToSql()
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("build select rfid_tag: %w", err)
	}
	var id uuid.UUID
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, false, fmt.Errorf("select rfid_tag %s: %w", uid, err)
	}
	return id, tag.RowsAffected() > 0, nil
}

// insertSample skips the row on any unique conflict: an existing sample
// number or a tag already bound to another sample.
func (s *Seeder) insertSample(ctx context.Context, sf SampleFixture, tagID uuid.UUID) (bool, error) {
	collected, err := time.Parse(time.DateOnly, sf.CollectedDate)
	if err != nil {
		return false, fmt.Errorf("sample %s: %w", sf.SampleNumber, err)
	}

	now := s.now()
	query, args, err := postgres.Builder.
		Insert("samples").
		Columns("id", "sample_number", "sample_type", "category", "person_name",
			"collected_date", "location", "status", "rfid_tag_id", "created_at", "updated_at").
		Values(s.newID(), sf.SampleNumber, sf.SampleType, sf.Category, sf.PersonName,
			collected, sf.Location, sf.Status, tagID, now, now).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert sample: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, s.db).Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("insert sample %s: %w", sf.SampleNumber, err)
	}
	return tag.RowsAffected() > 0, nil
}
