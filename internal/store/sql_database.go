package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-content-keeper/internal/logger"
	"github.com/MKhiriev/go-content-keeper/migrations"
)

// DB is an open SQL connection together with the dialect details the
// collection store needs to build queries and run migrations for it.
type DB struct {
	*sql.DB
	dialect     goose.Dialect
	placeholder sq.PlaceholderFormat
	logger      *logger.Logger
}

// Migrate brings the schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB, db.dialect)
	if err != nil {
		return err
	}

	db.logger.Debug().Str("dialect", string(db.dialect)).Int("applied", applied).Msg("migrations applied")
	return nil
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}
