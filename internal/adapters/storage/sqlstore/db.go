// Package sqlstore implementa los repositorios del refugio sobre database/sql.
// SQLite (ncruces/go-sqlite3, sin cgo) es el store local por defecto;
// PostgreSQL (pgx) se usa cuando se configura un DSN.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"animal-shelter/internal/domain/adoptions"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/users"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

type Config struct {
	Driver string // sqlite | postgres
	Path   string // archivo SQLite
	DSN    string // postgres://...
}

// Store es dueño del pool. Cada operación toma una conexión o transacción
// del pool y la devuelve al terminar.
type Store struct {
	db      *sql.DB
	dialect Dialect
	dsn     string
}

func Open(ctx context.Context, cfg Config) (*Store, error) {
	driver := Dialect(strings.ToLower(strings.TrimSpace(cfg.Driver)))
	if driver == "" {
		driver = DialectSQLite
		if strings.TrimSpace(cfg.DSN) != "" {
			driver = DialectPostgres
		}
	}

	switch driver {
	case DialectSQLite:
		db, err := openSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return &Store{db: db, dialect: DialectSQLite}, nil
	case DialectPostgres, "pgx":
		db, err := openPostgres(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &Store{db: db, dialect: DialectPostgres, dsn: cfg.DSN}, nil
	default:
		return nil, fmt.Errorf("sqlstore: unsupported driver %q", cfg.Driver)
	}
}

// sqliteDSN: escrituras serializadas (BEGIN IMMEDIATE) y espera ante bloqueos.
func sqliteDSN(path string) string {
	return "file:" + path + "?_pragma=busy_timeout(10000)&_pragma=foreign_keys(1)&_txlock=immediate"
}

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("sqlstore: sqlite path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("sqlstore: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		return nil, err
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlstore: ping sqlite: %w", err)
	}
	return db, nil
}

// openPostgres abre un pool a Postgres usando pgx (database/sql).
func openPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("sqlstore: postgres dsn required")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlstore: ping postgres: %w", err)
	}
	return db, nil
}

func (s *Store) Dialect() Dialect { return s.dialect }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Users() users.Repository         { return &usersRepo{s: s} }
func (s *Store) Animals() animals.Repository     { return &animalsRepo{s: s} }
func (s *Store) Adoptions() adoptions.Repository { return &adoptionsRepo{s: s} }

// q adapta los placeholders "?" al dialecto ($1, $2... en Postgres).
func (s *Store) q(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}

	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// withTx corre fn en una transacción; rollback en cualquier salida sin commit.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }
