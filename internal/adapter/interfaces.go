// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the remote content API.
//
// The primary abstraction is [Remote], one per entity, which decouples the
// synchronizer from GraphQL. [NewRemotes] builds all four on top of a shared
// [GraphQLClient].
//
// Transport and server failures are mapped onto the sentinel values defined
// in errors.go so that callers can use [errors.Is] without knowing about
// HTTP status codes or GraphQL error extensions (e.g. [ErrNetwork] for a
// timeout, [ErrNotFound] for an update of a deleted record).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-content-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_mock.go -package=mock

// Remote is the server side of one entity set.
//
// Implementations must return the record exactly as the server stored it;
// the caller inserts that record into its local mirror.
type Remote[T models.Record, I any] interface {
	// List fetches the full set.
	List(ctx context.Context) ([]T, error)

	// Create submits input and returns the created record. Fails with
	// [ErrNetwork] or [ErrServer].
	Create(ctx context.Context, input I) (T, error)

	// Update replaces the record id with input and returns the stored
	// record. Fails with [ErrNetwork], [ErrServer] or [ErrNotFound].
	Update(ctx context.Context, id models.ID, input I) (T, error)

	// Delete removes ids and returns the ids the server confirmed. When the
	// server only acknowledges, the requested ids are returned. Fails with
	// [ErrNetwork] or [ErrServer].
	Delete(ctx context.Context, ids []models.ID) ([]models.ID, error)
}
