// Package testutil provides helpers for Postgres-backed tests. Tests that
// call OpenMigratedPool are skipped unless TEST_DATABASE_URL points at a
// disposable database.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uf-sase-hacks/registration-api/internal/adapters/postgres"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id                   uuid PRIMARY KEY,
	first_name           text NOT NULL DEFAULT '',
	last_name            text NOT NULL DEFAULT '',
	full_name            text NOT NULL DEFAULT '',
	email                text NOT NULL DEFAULT '',
	phone_number         text NOT NULL DEFAULT '',
	age                  text NOT NULL DEFAULT '',
	linkedin_url         text NOT NULL DEFAULT '',
	school               text NOT NULL DEFAULT '',
	major                text NOT NULL DEFAULT '',
	grad_year            text NOT NULL DEFAULT '',
	level_of_study       text NOT NULL DEFAULT '',
	engineering_skill    text NOT NULL DEFAULT '',
	hackathon_experience text NOT NULL DEFAULT '',
	address_line1        text NOT NULL DEFAULT '',
	address_line2        text NOT NULL DEFAULT '',
	city                 text NOT NULL DEFAULT '',
	state                text NOT NULL DEFAULT '',
	zip_code             text NOT NULL DEFAULT '',
	country              text NOT NULL DEFAULT '',
	tshirt               text NOT NULL DEFAULT '',
	dietary              text[] NOT NULL DEFAULT '{}',
	accessibility        text NOT NULL DEFAULT '',
	gender               text NOT NULL DEFAULT '',
	race                 text[] NOT NULL DEFAULT '{}',
	created_at           timestamptz NOT NULL,
	updated_at           timestamptz NOT NULL
);

CREATE TABLE IF NOT EXISTS registrations (
	user_id                     uuid PRIMARY KEY,
	status                      text NOT NULL DEFAULT 'pending',
	editing_locked              boolean NOT NULL DEFAULT false,
	accuracy_agreement          boolean NOT NULL DEFAULT false,
	terms_and_conditions        boolean NOT NULL DEFAULT false,
	code_of_conduct             boolean NOT NULL DEFAULT false,
	mlh_code_of_conduct         boolean NOT NULL DEFAULT false,
	mlh_data_sharing            boolean NOT NULL DEFAULT false,
	can_photograph              boolean NOT NULL DEFAULT false,
	share_resume_with_companies boolean NOT NULL DEFAULT false,
	mlh_communications          boolean NOT NULL DEFAULT false,
	resume_url                  text,
	resume_updated_at           timestamptz,
	created_at                  timestamptz NOT NULL,
	updated_at                  timestamptz NOT NULL
);

CREATE TABLE IF NOT EXISTS admins (
	user_id    uuid PRIMARY KEY,
	created_at timestamptz NOT NULL DEFAULT now()
);
`

// OpenMigratedPool opens a pool against TEST_DATABASE_URL, applies the
// schema, and truncates all tables so every test starts clean. The pool is
// closed when the test finishes.
func OpenMigratedPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, url, postgres.PoolOptions{})
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE profiles, registrations, admins`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return pool
}
