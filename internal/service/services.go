package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-content-keeper/internal/adapter"
	"github.com/MKhiriev/go-content-keeper/internal/logger"
	"github.com/MKhiriev/go-content-keeper/internal/store"
	"github.com/MKhiriev/go-content-keeper/internal/utils"
	"github.com/MKhiriev/go-content-keeper/models"
)

// ContentServices holds one synchronizer per mirrored entity.
type ContentServices struct {
	Posts         Synchronizer[models.Post, models.PostInput]
	Categories    Synchronizer[models.Category, models.CategoryInput]
	SubCategories Synchronizer[models.SubCategory, models.SubCategoryInput]
	Items         Synchronizer[models.Item, models.ItemInput]
}

// NewContentServices wires each entity's remote to its collection store.
func NewContentServices(storages *store.Storages, remotes *adapter.Remotes, log *logger.Logger) *ContentServices {
	ids := utils.NewUUIDGenerator()

	return &ContentServices{
		Posts:         NewSynchronizer(models.EntityPost, remotes.Posts, storages.Posts, ids, log),
		Categories:    NewSynchronizer(models.EntityCategory, remotes.Categories, storages.Categories, ids, log),
		SubCategories: NewSynchronizer(models.EntitySubCategory, remotes.SubCategories, storages.SubCategories, ids, log),
		Items:         NewSynchronizer(models.EntityItem, remotes.Items, storages.Items, ids, log),
	}
}

// Loaders returns the four synchronizers as Loaders, in dependency order:
// categories first, items last.
func (s *ContentServices) Loaders() []Loader {
	return []Loader{s.Categories, s.SubCategories, s.Posts, s.Items}
}

// LoadAll loads every collection. It keeps going after a failure and returns
// all errors joined.
func (s *ContentServices) LoadAll(ctx context.Context) error {
	var errs []error
	for _, l := range s.Loaders() {
		if err := l.Load(ctx); err != nil {
			errs = append(errs, fmt.Errorf("load %s: %w", l.Entity().Plural(), err))
		}
	}
	return errors.Join(errs...)
}

// Reset drops every local collection. Failures are joined.
func (s *ContentServices) Reset(ctx context.Context) error {
	return errors.Join(
		s.Categories.Reset(ctx),
		s.SubCategories.Reset(ctx),
		s.Posts.Reset(ctx),
		s.Items.Reset(ctx),
	)
}

// Close stops every synchronizer.
func (s *ContentServices) Close() error {
	return errors.Join(
		s.Posts.Close(),
		s.Categories.Close(),
		s.SubCategories.Close(),
		s.Items.Close(),
	)
}
