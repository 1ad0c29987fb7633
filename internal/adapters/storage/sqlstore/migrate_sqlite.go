package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/golang-migrate/migrate/v4/database"
)

const migrationsTable = "schema_migrations"

// sqliteMigrator implementa database.Driver de golang-migrate sobre el
// *sql.DB de ncruces. Close no cierra el pool: pertenece al Store.
type sqliteMigrator struct {
	db *sql.DB

	mu     sync.Mutex
	locked bool
}

var _ database.Driver = (*sqliteMigrator)(nil)

func newSQLiteMigrator(db *sql.DB) (*sqliteMigrator, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS ` + migrationsTable + ` (
		version INTEGER NOT NULL PRIMARY KEY,
		dirty   BOOLEAN NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", migrationsTable, err)
	}
	return &sqliteMigrator{db: db}, nil
}

func (m *sqliteMigrator) Open(url string) (database.Driver, error) {
	return nil, errors.New("sqlite migrator: only usable through an existing *sql.DB")
}

func (m *sqliteMigrator) Close() error { return nil }

func (m *sqliteMigrator) Lock() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locked {
		return database.ErrLocked
	}
	m.locked = true
	return nil
}

func (m *sqliteMigrator) Unlock() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.locked {
		return database.ErrNotLocked
	}
	m.locked = false
	return nil
}

func (m *sqliteMigrator) Run(migration io.Reader) error {
	script, err := io.ReadAll(migration)
	if err != nil {
		return err
	}

	tx, err := m.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(string(script)); err != nil {
		return database.Error{OrigErr: err, Err: "migration failed", Query: script}
	}
	return tx.Commit()
}

func (m *sqliteMigrator) SetVersion(version int, dirty bool) error {
	tx, err := m.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM ` + migrationsTable); err != nil {
		return err
	}
	// NilVersion limpio = sin fila
	if version >= 0 || (version == database.NilVersion && dirty) {
		if _, err := tx.Exec(`INSERT INTO `+migrationsTable+` (version, dirty) VALUES (?, ?)`, version, dirty); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (m *sqliteMigrator) Version() (int, bool, error) {
	var (
		version int
		dirty   bool
	)
	err := m.db.QueryRow(`SELECT version, dirty FROM ` + migrationsTable + ` LIMIT 1`).Scan(&version, &dirty)
	if errors.Is(err, sql.ErrNoRows) {
		return database.NilVersion, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return version, dirty, nil
}

func (m *sqliteMigrator) Drop() error {
	rows, err := m.db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`)
	if err != nil {
		return err
	}
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return err
		}
		tables = append(tables, name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, t := range tables {
		if _, err := m.db.Exec(`DROP TABLE IF EXISTS "` + t + `"`); err != nil {
			return err
		}
	}
	return nil
}
