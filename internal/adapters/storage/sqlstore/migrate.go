package sqlstore

import (
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func migrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}
}

// Migrate aplica las migraciones pendientes. Devuelve cuántas se aplicaron.
func Migrate(db *DB) (int, error) {
	n, err := migrate.Exec(db.DB, migrateDialect(db.dialect), migrationSource(), migrate.Up)
	if err != nil {
		return n, fmt.Errorf("migrate %s: %w", db.dialect, err)
	}
	return n, nil
}

// Rollback deshace hasta max migraciones (0 = todas).
func Rollback(db *DB, max int) (int, error) {
	n, err := migrate.ExecMax(db.DB, migrateDialect(db.dialect), migrationSource(), migrate.Down, max)
	if err != nil {
		return n, fmt.Errorf("rollback %s: %w", db.dialect, err)
	}
	return n, nil
}

func migrateDialect(d Dialect) string {
	if d == SQLite {
		return "sqlite3"
	}
	return "postgres"
}
