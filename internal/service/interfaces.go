// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service keeps the local mirror of each remote entity set in step
// with the content API.
//
// Every mutation follows confirm-then-apply: the request is sent first and
// the local collection only changes once the server has answered with the
// stored record (or the deleted ids). A failed request leaves the collection
// untouched and is reported as a *MutationError.
package service

import (
	"context"

	"github.com/MKhiriev/go-content-keeper/internal/collection"
	"github.com/MKhiriev/go-content-keeper/models"
)

// Synchronizer mirrors one entity set.
type Synchronizer[T models.Record, I any] interface {
	// Entity returns the mirrored entity.
	Entity() models.Entity

	// Load fetches the full set from the server and replaces the local
	// collection with it. On failure the collection is left unchanged.
	Load(ctx context.Context) error

	// Records returns the current local collection.
	Records(ctx context.Context) ([]T, error)

	// Create submits input and, once the server confirms, prepends the
	// returned record to the collection.
	Create(ctx context.Context, input I) (T, error)

	// Update submits input for the record id and, once the server confirms,
	// replaces that record. Fails with ErrNotFound without contacting the
	// server when id is not in the collection.
	Update(ctx context.Context, id models.ID, input I) (T, error)

	// Toggle flips id in the selection and returns the new selection.
	Toggle(id models.ID) collection.Selection
	// ClearSelection empties the selection.
	ClearSelection()
	// Selection returns the current selection.
	Selection() collection.Selection

	// DeleteSelected deletes the selected ids that are still in the
	// collection and returns the ids the server confirmed. Fails with
	// ErrEmptySelection when no selected id is live.
	DeleteSelected(ctx context.Context) ([]models.ID, error)

	// Delete is DeleteSelected for an explicit list of ids.
	Delete(ctx context.Context, ids ...models.ID) ([]models.ID, error)

	// Reset drops the local collection and the selection without contacting
	// the server. The next Load repopulates it.
	Reset(ctx context.Context) error

	// Subscribe returns a channel of mutation events and a function that
	// cancels the subscription. The channel is closed on cancel or Close.
	Subscribe(buffer int) (<-chan Event[T], func())

	// Close stops the synchronizer. Responses arriving afterwards are
	// discarded and their calls fail with ErrClosed.
	Close() error
}

// Loader is the part of a synchronizer the refresh worker needs.
type Loader interface {
	Entity() models.Entity
	Load(ctx context.Context) error
}

// IDGenerator issues mutation ids.
type IDGenerator interface {
	Generate() string
}
