// Package migrations embeds the SQL schema shared by the SQLite and
// PostgreSQL storage backends.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Goose dialects accepted by Migrate.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "pgx"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies every pending migration to db using the given goose
// dialect.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
