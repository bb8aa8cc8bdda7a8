// Package sample implements the Sample repository using PostgreSQL.
// Every read joins the bound RFID tag.
package sample

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/labsample-backend/internal/adapter/postgres"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

const table = "samples"

var selectColumns = []string{
	"s.id", "s.sample_number", "s.sample_type", "s.category", "s.person_name",
	"s.collected_date", "s.location", "s.status", "s.created_at", "s.updated_at",
	"t.id AS tag_id", "t.uid AS tag_uid", "t.is_active AS tag_is_active", "t.created_at AS tag_created_at",
}

// Repo provides sample persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new sample repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID            uuid.UUID `db:"id"`
	SampleNumber  string    `db:"sample_number"`
	SampleType    string    `db:"sample_type"`
	Category      string    `db:"category"`
	PersonName    string    `db:"person_name"`
	CollectedDate time.Time `db:"collected_date"`
	Location      string    `db:"location"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	TagID         uuid.UUID `db:"tag_id"`
	TagUID        string    `db:"tag_uid"`
	TagIsActive   bool      `db:"tag_is_active"`
	TagCreatedAt  time.Time `db:"tag_created_at"`
}

func (r row) toDomain() domain.Sample {
	return domain.Sample{
		ID:            r.ID,
		SampleNumber:  r.SampleNumber,
		SampleType:    r.SampleType,
		Category:      r.Category,
		PersonName:    r.PersonName,
		CollectedDate: r.CollectedDate,
		Location:      r.Location,
		Status:        domain.SampleStatus(r.Status),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		Tag: domain.RFIDTag{
			ID:        r.TagID,
			UID:       r.TagUID,
			IsActive:  r.TagIsActive,
			CreatedAt: r.TagCreatedAt,
		},
	}
}

func baseSelect() squirrel.SelectBuilder {
	return postgres.Builder.
		Select(selectColumns...).
		From("samples s").
		Join("rfid_tags t ON t.id = s.rfid_tag_id")
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByNumber returns a sample by its sample number.
func (r *Repo) GetByNumber(ctx context.Context, number string) (*domain.Sample, error) {
	return r.getOne(ctx, baseSelect().Where("s.sample_number = ?", number), number)
}

// GetByNumberForUpdate is GetByNumber that also locks the sample row until
// the surrounding transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetByNumberForUpdate(ctx context.Context, number string) (*domain.Sample, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("sample %s: lock requires a transaction", number)
	}
	return r.getOne(ctx, baseSelect().Where("s.sample_number = ?", number).Suffix("FOR UPDATE OF s"), number)
}

func (r *Repo) getOne(ctx context.Context, b squirrel.SelectBuilder, number string) (*domain.Sample, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select sample: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "sample", number)
	}
	s := out.toDomain()
	return &s, nil
}

// List returns samples matching the filter ordered by collection date, newest
// first, together with the total number of matches ignoring pagination.
func (r *Repo) List(ctx context.Context, f domain.SampleFilter) ([]domain.Sample, int, error) {
	where := filterConditions(f)
	q := postgres.QuerierFromCtx(ctx, r.db)

	countQuery, countArgs, err := postgres.Builder.
		Select("count(*)").
		From("samples s").
		Join("rfid_tags t ON t.id = s.rfid_tag_id").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count samples: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count samples: %w", err)
	}

	b := baseSelect().Where(where).OrderBy("s.collected_date DESC", "s.created_at DESC")
	query, args, err := postgres.Paginate(b, f.Limit, f.Offset).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list samples: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list samples: %w", err)
	}

	samples := make([]domain.Sample, len(rows))
	for i, rw := range rows {
		samples[i] = rw.toDomain()
	}
	return samples, total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func filterConditions(f domain.SampleFilter) squirrel.And {
	where := squirrel.And{}

	if q := strings.TrimSpace(f.Query); q != "" {
		pattern := "%" + likeEscaper.Replace(q) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"s.sample_number": pattern},
			squirrel.ILike{"s.person_name": pattern},
		})
	}
	if f.SampleType != "" {
		where = append(where, squirrel.Eq{"s.sample_type": f.SampleType})
	}
	if f.Category != "" {
		where = append(where, squirrel.Eq{"s.category": f.Category})
	}
	if f.CollectedDate != nil {
		where = append(where, squirrel.Eq{"s.collected_date": *f.CollectedDate})
	}
	if f.CollectedFrom != nil {
		where = append(where, squirrel.GtOrEq{"s.collected_date": *f.CollectedFrom})
	}
	if f.CollectedTo != nil {
		where = append(where, squirrel.LtOrEq{"s.collected_date": *f.CollectedTo})
	}

	return where
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a sample bound to s.Tag.ID. A duplicate sample number or an
// already bound tag yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, s *domain.Sample) (*domain.Sample, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "sample_number", "sample_type", "category", "person_name",
			"collected_date", "location", "status", "rfid_tag_id", "created_at", "updated_at").
		Values(s.ID, s.SampleNumber, s.SampleType, s.Category, s.PersonName,
			s.CollectedDate, s.Location, string(s.Status), s.Tag.ID, s.CreatedAt, s.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert sample: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return nil, postgres.MapError(err, "sample", s.SampleNumber)
	}

	out := *s
	return &out, nil
}

// UpdateDetails rewrites the descriptive attributes of a sample. Number, tag
// and status are not touched.
func (r *Repo) UpdateDetails(ctx context.Context, s *domain.Sample) error {
	query, args, err := postgres.Builder.
		Update(table).
		Set("sample_type", s.SampleType).
		Set("category", s.Category).
		Set("person_name", s.PersonName).
		Set("collected_date", s.CollectedDate).
		Set("location", s.Location).
		Set("updated_at", s.UpdatedAt).
		Where("id = ?", s.ID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update sample: %w", err)
	}

	return r.execOne(ctx, query, args, s.SampleNumber)
}

// UpdateStatus sets the workflow status of a sample.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SampleStatus, at time.Time) error {
	query, args, err := postgres.Builder.
		Update(table).
		Set("status", string(status)).
		Set("updated_at", at).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update sample status: %w", err)
	}

	return r.execOne(ctx, query, args, id)
}

// Delete removes a sample. A sample referenced by audit entries yields
// ErrConflict.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete sample: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapDeleteError(err, "sample", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sample %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) execOne(ctx context.Context, query string, args []any, key any) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "sample", key)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sample %v: %w", key, domain.ErrNotFound)
	}
	return nil
}
