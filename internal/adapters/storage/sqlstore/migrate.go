package sqlstore

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate aplica las migraciones pendientes. Es idempotente.
func (s *Store) Migrate() error {
	src, err := iofs.New(migrationsFS, "migrations/"+string(s.dialect))
	if err != nil {
		return fmt.Errorf("migrations source: %w", err)
	}

	drv, err := s.migrationDriver()
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, string(s.dialect), drv)
	if err != nil {
		return fmt.Errorf("migrate init: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// SchemaVersion devuelve la versión aplicada (-1 si no hay ninguna).
func (s *Store) SchemaVersion() (int, bool, error) {
	drv, err := s.migrationDriver()
	if err != nil {
		return 0, false, err
	}
	defer drv.Close()
	return drv.Version()
}

func (s *Store) migrationDriver() (database.Driver, error) {
	switch s.dialect {
	case DialectSQLite:
		return newSQLiteMigrator(s.db)
	case DialectPostgres:
		// pool propio: el driver de migrate lo cierra en Close
		mdb, err := sql.Open("pgx", s.dsn)
		if err != nil {
			return nil, err
		}
		drv, err := pgxmigrate.WithInstance(mdb, &pgxmigrate.Config{})
		if err != nil {
			_ = mdb.Close()
			return nil, fmt.Errorf("migrate postgres driver: %w", err)
		}
		return drv, nil
	default:
		return nil, fmt.Errorf("sqlstore: no migrations for %q", s.dialect)
	}
}
