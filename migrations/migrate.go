// Package migrations holds the schema of the SQL collection store.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrNilDB is returned by [Migrate] when no connection is supplied.
var ErrNilDB = errors.New("migration error: db is nil")

// Migrate applies the pending embedded migrations and returns how many ran.
// dialect is goose.DialectSQLite3 or goose.DialectPostgres.
func Migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect) (int, error) {
	if db == nil {
		return 0, ErrNilDB
	}

	provider, err := goose.NewProvider(dialect, db, embedMigrations)
	if err != nil {
		return 0, fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	return len(results), nil
}
