package sqlstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"animal-shelter/internal/adapters/storage/storetest"
)

// setupTestStore crea una base SQLite nueva y migrada por test.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(context.Background(), Config{Path: dbPath})
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(), "Failed to migrate test database")
	return s
}

func TestSQLiteStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) storetest.Store {
		return setupTestStore(t)
	})
}

// Necesita una base real: SHELTER_TEST_POSTGRES_DSN=postgres://...
// Cada subtest parte de un esquema vacío.
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("SHELTER_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("SHELTER_TEST_POSTGRES_DSN not set")
	}

	storetest.Run(t, func(t *testing.T) storetest.Store {
		s, err := Open(context.Background(), Config{DSN: dsn})
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })

		_, err = s.db.Exec(`DROP TABLE IF EXISTS adoptions, animals, users, schema_migrations`)
		require.NoError(t, err)
		require.NoError(t, s.Migrate())
		return s
	})
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.Migrate())

	version, dirty, err := s.SchemaVersion()
	require.NoError(t, err)
	require.Equal(t, 1, version)
	require.False(t, dirty)
}

func TestOpenDefaultsToSQLite(t *testing.T) {
	s := setupTestStore(t)
	require.Equal(t, DialectSQLite, s.Dialect())

	_, err := Open(context.Background(), Config{Driver: "oracle"})
	require.Error(t, err)
}

func TestRebind(t *testing.T) {
	pg := &Store{dialect: DialectPostgres}
	require.Equal(t, "SELECT 1 WHERE a = $1 AND b = $2", pg.q("SELECT 1 WHERE a = ? AND b = ?"))

	lite := &Store{dialect: DialectSQLite}
	require.Equal(t, "a = ?", lite.q("a = ?"))
}

func TestParseTimeText(t *testing.T) {
	d, err := dateValue("2026-03-14")
	require.NoError(t, err)
	require.Equal(t, "2026-03-14", d.Format("2006-01-02"))

	ts, err := timeValue("2026-03-14T10:11:12.5Z")
	require.NoError(t, err)
	require.Equal(t, 10, ts.Hour())

	_, err = timeValue("not a date")
	require.Error(t, err)
}
