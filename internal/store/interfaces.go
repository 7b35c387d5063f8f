package store

import (
	"context"

	"github.com/MKhiriev/go-content-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CollectionStore holds the local mirror of one remote entity set.
//
// Save replaces the whole collection, keeping the order of records. The
// synchronizer is the only writer and serializes Load/Save pairs itself, so
// implementations only need to make each call atomic.
type CollectionStore[T models.Record] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, records []T) error
	Drop(ctx context.Context) error
}
