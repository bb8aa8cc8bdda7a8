// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log entries; the table
// rejects UPDATE and DELETE at the database level.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/labsample-backend/internal/adapter/postgres"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID  `db:"id"`
	UserID       uuid.UUID  `db:"user_id"`
	Username     string     `db:"username"`
	SampleID     *uuid.UUID `db:"sample_id"`
	SampleNumber *string    `db:"sample_number"`
	Kind         string     `db:"kind"`
	Payload      []byte     `db:"payload"`
	Action       string     `db:"action"`
	CreatedAt    time.Time  `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends an audit entry.
func (r *Repo) Create(ctx context.Context, e domain.AuditEntry) error {
	payload := e.Payload
	if payload == nil {
		payload = map[string]string{}
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("audit_entry marshal payload: %w", err)
	}

	query, args, err := postgres.Builder.
		Insert("audit_log").
		Columns("id", "user_id", "sample_id", "kind", "payload", "action", "created_at").
		Values(e.ID, e.UserID, e.SampleID, string(e.Kind), payloadJSON, e.Action, e.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert audit_entry: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "audit_entry", e.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns entries matching the filter, newest first, with the actor's
// username and the sample number joined in. Entries not linked to a sample
// fall back to the number kept in their payload.
func (r *Repo) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	b := postgres.Builder.
		Select("a.id", "a.user_id", "u.username", "a.sample_id",
			"COALESCE(s.sample_number, a.payload->>'sample_number') AS sample_number",
			"a.kind", "a.payload", "a.action", "a.created_at").
		From("audit_log a").
		Join("users u ON u.id = a.user_id").
		LeftJoin("samples s ON s.id = a.sample_id").
		Where(filterConditions(f)).
		OrderBy("a.created_at DESC", "a.id DESC")

	query, args, err := postgres.Paginate(b, f.Limit, f.Offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit_log: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list audit_log: %w", err)
	}

	entries := make([]domain.AuditEntry, len(rows))
	for i, rw := range rows {
		e, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}
	return entries, nil
}

// Count returns the number of entries matching the filter, ignoring pagination.
func (r *Repo) Count(ctx context.Context, f domain.AuditFilter) (int, error) {
	query, args, err := postgres.Builder.
		Select("count(*)").
		From("audit_log a").
		Where(filterConditions(f)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count audit_log: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count audit_log: %w", err)
	}
	return n, nil
}

// LatestApprovals returns, per sample, the actor and time of its most recent
// approve entry. A non-nil userID restricts the candidates to that actor.
func (r *Repo) LatestApprovals(ctx context.Context, userID *uuid.UUID) ([]domain.ApprovalRef, error) {
	where := squirrel.And{
		squirrel.Eq{"a.kind": string(domain.AuditKindApprove)},
		squirrel.NotEq{"a.sample_id": nil},
	}
	if userID != nil {
		where = append(where, squirrel.Eq{"a.user_id": *userID})
	}

	query, args, err := postgres.Builder.
		Select("a.sample_id", "u.username", "a.created_at").
		Options("DISTINCT ON (a.sample_id)").
		From("audit_log a").
		Join("users u ON u.id = a.user_id").
		Where(where).
		OrderBy("a.sample_id", "a.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest approvals: %w", err)
	}

	var rows []struct {
		SampleID  uuid.UUID `db:"sample_id"`
		Username  string    `db:"username"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("latest approvals: %w", err)
	}

	refs := make([]domain.ApprovalRef, len(rows))
	for i, rw := range rows {
		refs[i] = domain.ApprovalRef{SampleID: rw.SampleID, Username: rw.Username, CreatedAt: rw.CreatedAt}
	}
	return refs, nil
}

// filterConditions turns the filter into WHERE conditions on alias a.
// From and To are calendar dates; To includes the whole day.
func filterConditions(f domain.AuditFilter) squirrel.And {
	where := squirrel.And{}

	if len(f.Kinds) > 0 {
		kinds := make([]string, len(f.Kinds))
		for i, k := range f.Kinds {
			kinds[i] = string(k)
		}
		where = append(where, squirrel.Eq{"a.kind": kinds})
	}
	if f.UserID != nil {
		where = append(where, squirrel.Eq{"a.user_id": *f.UserID})
	}
	if f.SampleID != nil {
		where = append(where, squirrel.Eq{"a.sample_id": *f.SampleID})
	}
	if f.From != nil {
		where = append(where, squirrel.GtOrEq{"a.created_at": startOfDay(*f.From)})
	}
	if f.To != nil {
		where = append(where, squirrel.Lt{"a.created_at": startOfDay(*f.To).AddDate(0, 0, 1)})
	}

	return where
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomain(rw row) (domain.AuditEntry, error) {
	e := domain.AuditEntry{
		ID:        rw.ID,
		UserID:    rw.UserID,
		Username:  rw.Username,
		SampleID:  rw.SampleID,
		Kind:      domain.AuditKind(rw.Kind),
		Action:    rw.Action,
		CreatedAt: rw.CreatedAt,
	}
	if rw.SampleNumber != nil {
		e.SampleNumber = *rw.SampleNumber
	}

	if len(rw.Payload) > 0 {
		payload := make(map[string]string)
		if err := json.Unmarshal(rw.Payload, &payload); err != nil {
			return domain.AuditEntry{}, fmt.Errorf("audit_entry %s unmarshal payload: %w", rw.ID, err)
		}
		e.Payload = payload
	}

	return e, nil
}
