package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect identifica el motor detrás de *sql.DB. Las queries se escriben con
// placeholders $N (Postgres) y se reescriben para SQLite.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// timestamps como TEXT de ancho fijo en UTC: ordena lexicográficamente igual
// en ambos motores y no depende del tipo de columna del driver.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

type DB struct {
	*sql.DB
	dialect Dialect
}

type Options struct {
	MaxOpenConns int
}

// Open abre el pool para el dialecto dado (pgx o modernc sqlite) y hace ping.
func Open(dialect Dialect, dsn string, opts Options) (*DB, error) {
	driver, err := driverName(dialect)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}

	switch dialect {
	case SQLite:
		// un solo writer: evita SQLITE_BUSY entre conexiones del pool
		db.SetMaxOpenConns(1)
	default:
		maxOpen := opts.MaxOpenConns
		if maxOpen <= 0 {
			maxOpen = 10
		}
		db.SetMaxOpenConns(maxOpen)
		db.SetMaxIdleConns(maxOpen / 2)
		db.SetConnMaxIdleTime(5 * time.Minute)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}

	return &DB{DB: db, dialect: dialect}, nil
}

func (d *DB) Dialect() Dialect { return d.dialect }

func driverName(d Dialect) (string, error) {
	switch d {
	case Postgres:
		return "pgx", nil
	case SQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported sql dialect %q", d)
	}
}

var positional = regexp.MustCompile(`\$(\d+)`)

// rebind pasa $N a ?N para SQLite. Postgres queda igual.
func (d *DB) rebind(query string) string {
	if d.dialect != SQLite {
		return query
	}
	return positional.ReplaceAllString(query, "?$1")
}

func (d *DB) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.ExecContext(ctx, d.rebind(query), args...)
}

func (d *DB) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.QueryContext(ctx, d.rebind(query), args...)
}

func (d *DB) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return d.QueryRowContext(ctx, d.rebind(query), args...)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timestampLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func toNullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func fromNullBool(nb sql.NullBool) *bool {
	if !nb.Valid {
		return nil
	}
	v := nb.Bool
	return &v
}
