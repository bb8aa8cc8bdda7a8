package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user in the named groups. The password hash is
// a placeholder and cannot be used to log in.
func SeedUser(t *testing.T, pool *pgxpool.Pool, groups ...string) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + suffix,
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "x",
		IsActive:     true,
		Groups:       groups,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	for _, g := range groups {
		_, err = pool.Exec(ctx,
			`INSERT INTO user_groups (user_id, group_id) SELECT $1, id FROM groups WHERE name = $2`,
			user.ID, g,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedUser insert group %s: %v", g, err)
		}
	}

	return user
}

// SeedTag creates an active RFID tag with a unique UID.
func SeedTag(t *testing.T, pool *pgxpool.Pool) domain.RFIDTag {
	t.Helper()

	tag := domain.RFIDTag{
		ID:        uuid.New(),
		UID:       "RFID-TEST-" + uniqueSuffix(),
		IsActive:  true,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO rfid_tags (id, uid, is_active, created_at) VALUES ($1, $2, $3, $4)`,
		tag.ID, tag.UID, tag.IsActive, tag.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag: %v", err)
	}

	return tag
}

// SeedSample creates a sample in the given status bound to a fresh tag.
func SeedSample(t *testing.T, pool *pgxpool.Pool, status domain.SampleStatus) domain.Sample {
	t.Helper()

	tag := SeedTag(t, pool)
	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.Sample{
		ID:            uuid.New(),
		SampleNumber:  "S-" + uniqueSuffix(),
		SampleType:    "Blood",
		Category:      "Forensic",
		PersonName:    "Test Person",
		CollectedDate: time.Date(2023, 4, 22, 0, 0, 0, 0, time.UTC),
		Location:      "Lab A",
		Status:        status,
		Tag:           tag,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO samples (id, sample_number, sample_type, category, person_name, collected_date,
		                      location, status, rfid_tag_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		s.ID, s.SampleNumber, s.SampleType, s.Category, s.PersonName, s.CollectedDate,
		s.Location, string(s.Status), tag.ID, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSample: %v", err)
	}

	return s
}
