// Package tag implements the RFID tag repository using PostgreSQL.
package tag

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/labsample-backend/internal/adapter/postgres"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

const table = "rfid_tags"

var columns = []string{"id", "uid", "is_active", "created_at"}

// Repo provides RFID tag persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tag repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	UID       string    `db:"uid"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.RFIDTag {
	return &domain.RFIDTag{ID: r.ID, UID: r.UID, IsActive: r.IsActive, CreatedAt: r.CreatedAt}
}

// Create inserts a new tag and returns the persisted row.
func (r *Repo) Create(ctx context.Context, t *domain.RFIDTag) (*domain.RFIDTag, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(t.ID, t.UID, t.IsActive, t.CreatedAt).
		Suffix("RETURNING id, uid, is_active, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert rfid_tag: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "rfid_tag", t.UID)
	}
	return out.toDomain(), nil
}

// GetByUID returns a tag by its hardware UID.
func (r *Repo) GetByUID(ctx context.Context, uid string) (*domain.RFIDTag, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where("uid = ?", uid).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select rfid_tag: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "rfid_tag", uid)
	}
	return out.toDomain(), nil
}

// List returns tags newest first.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.RFIDTag, error) {
	b := postgres.Builder.
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "uid")

	query, args, err := postgres.Paginate(b, limit, offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list rfid_tags: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list rfid_tags: %w", err)
	}

	tags := make([]domain.RFIDTag, len(rows))
	for i, rw := range rows {
		tags[i] = *rw.toDomain()
	}
	return tags, nil
}

// SetActive changes the active flag of a tag.
func (r *Repo) SetActive(ctx context.Context, uid string, active bool) (*domain.RFIDTag, error) {
	query, args, err := postgres.Builder.
		Update(table).
		Set("is_active", active).
		Where("uid = ?", uid).
		Suffix("RETURNING id, uid, is_active, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update rfid_tag: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "rfid_tag", uid)
	}
	return out.toDomain(), nil
}

// Delete removes a tag. A tag still bound to a sample yields ErrConflict.
func (r *Repo) Delete(ctx context.Context, uid string) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where("uid = ?", uid).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete rfid_tag: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapDeleteError(err, "rfid_tag", uid)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("rfid_tag %s: %w", uid, domain.ErrNotFound)
	}
	return nil
}
