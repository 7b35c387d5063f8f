package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-content-keeper/internal/config"
	"github.com/MKhiriev/go-content-keeper/internal/logger"
	"github.com/MKhiriev/go-content-keeper/models"
)

// Storages groups the collection stores of all four entities on one backend.
type Storages struct {
	Posts         CollectionStore[models.Post]
	Categories    CollectionStore[models.Category]
	SubCategories CollectionStore[models.SubCategory]
	Items         CollectionStore[models.Item]

	closer func() error
}

// NewStorages builds the stores for the backend selected in cfg.
//
// For sqlite and postgres it opens the connection and runs the embedded
// migrations; for redis it connects and pings. The memory backend needs
// neither.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	switch cfg.Backend {
	case "", config.BackendMemory:
		return &Storages{
			Posts:         NewMemoryCollectionStore[models.Post](),
			Categories:    NewMemoryCollectionStore[models.Category](),
			SubCategories: NewMemoryCollectionStore[models.SubCategory](),
			Items:         NewMemoryCollectionStore[models.Item](),
			closer:        func() error { return nil },
		}, nil

	case config.BackendSQLite, config.BackendPostgres:
		var db *DB
		var err error
		if cfg.Backend == config.BackendSQLite {
			db, err = NewConnectSQLite(ctx, cfg.DB, log)
		} else {
			db, err = NewConnectPostgres(ctx, cfg.DB, log)
		}
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", cfg.Backend, err)
		}

		if err := db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return newSQLStorages(db, log), nil

	case config.BackendRedis:
		client, err := NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		prefix := cfg.Redis.Prefix

		return &Storages{
			Posts:         NewRedisCollectionStore[models.Post](client, prefix, models.EntityPost.Plural()),
			Categories:    NewRedisCollectionStore[models.Category](client, prefix, models.EntityCategory.Plural()),
			SubCategories: NewRedisCollectionStore[models.SubCategory](client, prefix, models.EntitySubCategory.Plural()),
			Items:         NewRedisCollectionStore[models.Item](client, prefix, models.EntityItem.Plural()),
			closer:        client.Close,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}

func newSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Posts:         NewSQLCollectionStore[models.Post](db, models.EntityPost.Plural(), log),
		Categories:    NewSQLCollectionStore[models.Category](db, models.EntityCategory.Plural(), log),
		SubCategories: NewSQLCollectionStore[models.SubCategory](db, models.EntitySubCategory.Plural(), log),
		Items:         NewSQLCollectionStore[models.Item](db, models.EntityItem.Plural(), log),
		closer:        db.Close,
	}
}

// Close releases the backend connection.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
