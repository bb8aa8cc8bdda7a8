// Package user implements the User repository using PostgreSQL.
// Users are read together with their group names and the union of group
// and direct permission codenames.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/labsample-backend/internal/adapter/postgres"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

var columns = []string{
	"id", "username", "email", "first_name", "last_name",
	"password_hash", "is_active", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	PasswordHash string    `db:"password_hash"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		PasswordHash: r.PasswordHash,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key with groups and permissions.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByUsername returns a user by exact username with groups and permissions.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username}, username)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, key any) (*domain.User, error) {
	query, args, err := postgres.Builder.Select(columns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	if err := pgxscan.Get(ctx, q, &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}

	u := out.toDomain()
	if u.Groups, err = r.groupNames(ctx, q, u.ID); err != nil {
		return nil, err
	}
	if u.Permissions, err = r.permissions(ctx, q, u.ID); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) groupNames(ctx context.Context, q postgres.Querier, userID uuid.UUID) ([]string, error) {
	var names []string
	err := pgxscan.Select(ctx, q, &names,
		`SELECT g.name FROM groups g
		 JOIN user_groups ug ON ug.group_id = g.id
		 WHERE ug.user_id = $1
		 ORDER BY g.name`, userID)
	if err != nil {
		return nil, fmt.Errorf("user %s groups: %w", userID, err)
	}
	return names, nil
}

func (r *Repo) permissions(ctx context.Context, q postgres.Querier, userID uuid.UUID) ([]string, error) {
	var codenames []string
	err := pgxscan.Select(ctx, q, &codenames,
		`SELECT gp.codename FROM group_permissions gp
		 JOIN user_groups ug ON ug.group_id = gp.group_id
		 WHERE ug.user_id = $1
		 UNION
		 SELECT codename FROM user_permissions WHERE user_id = $1
		 ORDER BY 1`, userID)
	if err != nil {
		return nil, fmt.Errorf("user %s permissions: %w", userID, err)
	}
	return codenames, nil
}

// List returns users ordered by username with their group names, and the
// total number of users.
func (r *Repo) List(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	b := postgres.Builder.Select(columns...).From("users").OrderBy("username")
	query, args, err := postgres.Paginate(b, f.Limit, f.Offset).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list users: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	if len(rows) == 0 {
		return []domain.User{}, total, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, rw := range rows {
		ids[i] = rw.ID
	}

	var memberships []struct {
		UserID uuid.UUID `db:"user_id"`
		Name   string    `db:"name"`
	}
	err = pgxscan.Select(ctx, q, &memberships,
		`SELECT ug.user_id, g.name FROM user_groups ug
		 JOIN groups g ON g.id = ug.group_id
		 WHERE ug.user_id = ANY($1)
		 ORDER BY g.name`, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("list user groups: %w", err)
	}

	groups := make(map[uuid.UUID][]string, len(rows))
	for _, m := range memberships {
		groups[m.UserID] = append(groups[m.UserID], m.Name)
	}

	users := make([]domain.User, len(rows))
	for i, rw := range rows {
		users[i] = rw.toDomain()
		users[i].Groups = groups[rw.ID]
	}
	return users, total, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new user. Groups are assigned separately with SetGroups.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Insert("users").
		Columns(columns...).
		Values(u.ID, u.Username, u.Email, u.FirstName, u.LastName,
			u.PasswordHash, u.IsActive, u.CreatedAt, u.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}

	out := *u
	return &out, nil
}

// Update rewrites the profile fields of a user.
func (r *Repo) Update(ctx context.Context, u *domain.User) error {
	return r.update(ctx, u.ID, map[string]any{
		"email":      u.Email,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"updated_at": u.UpdatedAt,
	})
}

// SetActive sets the active flag of a user.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool, at time.Time) error {
	return r.update(ctx, id, map[string]any{"is_active": active, "updated_at": at})
}

// SetPassword stores a new password hash.
func (r *Repo) SetPassword(ctx context.Context, id uuid.UUID, hash string, at time.Time) error {
	return r.update(ctx, id, map[string]any{"password_hash": hash, "updated_at": at})
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, set map[string]any) error {
	query, args, err := postgres.Builder.Update("users").SetMap(set).Where("id = ?", id).ToSql()
	if err != nil {
		return fmt.Errorf("build update user: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetGroups replaces the user's group memberships with the named groups.
// Unknown group names yield ErrValidation. Call inside a transaction.
func (r *Repo) SetGroups(ctx context.Context, id uuid.UUID, groups []string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM user_groups WHERE user_id = $1`, id); err != nil {
		return postgres.MapError(err, "user", id)
	}
	if len(groups) == 0 {
		return nil
	}

	tag, err := q.Exec(ctx,
		`INSERT INTO user_groups (user_id, group_id)
		 SELECT $1, id FROM groups WHERE name = ANY($2)`, id, groups)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if int(tag.RowsAffected()) != len(groups) {
		return fmt.Errorf("user %s groups %v: %w", id, groups, domain.ErrValidation)
	}
	return nil
}
