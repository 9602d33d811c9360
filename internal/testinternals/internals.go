// Package testinternals holds helpers shared by the repository integration tests.
package testinternals

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/2beens/workoutworks/internal/db"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const TestDBName = "workoutworks"

// NewTestDBPool connects to the test postgres (POSTGRES_HOST, default
// localhost) and brings the schema up to date.
func NewTestDBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}
	t.Logf("using postgres host: %s:%s", host, port)

	dbPool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		DBHost:         host,
		DBPort:         port,
		DBName:         TestDBName,
		TracingEnabled: false,
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(timeoutCtx, dbPool))

	t.Cleanup(dbPool.Close)
	return dbPool
}

// CreateUser inserts a user with a profile and removes both (with all owned
// records) when the test is done.
func CreateUser(t *testing.T, dbPool *pgxpool.Pool, approved bool) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	id := uuid.New()
	_, err := dbPool.Exec(
		ctx,
		`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, 'x');`,
		id, gofakeit.Email(),
	)
	require.NoError(t, err)
	_, err = dbPool.Exec(
		ctx,
		`INSERT INTO profiles (uid, display_name, is_approved) VALUES ($1, $2, $3);`,
		id, gofakeit.FirstName(), approved,
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if _, err := dbPool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id); err != nil {
			t.Logf("cleanup user %s: %s", id, err)
		}
	})
	return id
}
