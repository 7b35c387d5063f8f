// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-content-keeper/internal/adapter"
	"github.com/MKhiriev/go-content-keeper/internal/collection"
	"github.com/MKhiriev/go-content-keeper/internal/logger"
	"github.com/MKhiriev/go-content-keeper/internal/store"
	"github.com/MKhiriev/go-content-keeper/internal/utils"
	"github.com/MKhiriev/go-content-keeper/models"
)

type synchronizer[T models.Record, I any] struct {
	entity models.Entity
	remote adapter.Remote[T, I]
	store  store.CollectionStore[T]
	ids    IDGenerator
	events *notifier[T]
	logger *logger.Logger
	now    func() time.Time

	// mu serializes load-transition-save on the store and guards selection.
	// Remote calls are made without it.
	mu        sync.Mutex
	selection collection.Selection
	closed    atomic.Bool
}

// mutation identifies one call for logs, events and errors.
type mutation struct {
	id     string
	entity models.Entity
	op     Op
}

// NewSynchronizer creates the synchronizer of entity on top of remote and
// collectionStore.
func NewSynchronizer[T models.Record, I any](
	entity models.Entity,
	remote adapter.Remote[T, I],
	collectionStore store.CollectionStore[T],
	ids IDGenerator,
	log *logger.Logger,
) Synchronizer[T, I] {
	if ids == nil {
		ids = utils.NewUUIDGenerator()
	}
	return &synchronizer[T, I]{
		entity: entity,
		remote: remote,
		store:  collectionStore,
		ids:    ids,
		events: newNotifier[T](log),
		logger: log,
		now:    time.Now,
	}
}

func (s *synchronizer[T, I]) Entity() models.Entity {
	return s.entity
}

func (s *synchronizer[T, I]) Load(ctx context.Context) error {
	m, ctx, log := s.begin(ctx, OpLoad)
	if s.closed.Load() {
		return mapError(ErrClosed, m)
	}

	s.emit(m, StateSubmitting, func(*Event[T]) {})

	records, err := s.remote.List(ctx)
	if err != nil {
		return s.fail(m, log, err)
	}

	err = s.apply(ctx, func([]T) ([]T, error) {
		return records, nil
	})
	if err != nil {
		return s.fail(m, log, err)
	}

	log.Info().Int("records", len(records)).Msg("collection loaded")
	s.emit(m, StateConfirmed, func(ev *Event[T]) { ev.IDs = collection.IDs(records) })
	s.emit(m, StateIdle, func(*Event[T]) {})
	return nil
}

func (s *synchronizer[T, I]) Records(ctx context.Context) ([]T, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %w", ErrStore, s.entity.Plural(), err)
	}
	return records, nil
}

func (s *synchronizer[T, I]) Create(ctx context.Context, input I) (T, error) {
	var zero T

	m, ctx, log := s.begin(ctx, OpCreate)
	if s.closed.Load() {
		return zero, mapError(ErrClosed, m)
	}

	s.emit(m, StateSubmitting, func(*Event[T]) {})

	created, err := s.remote.Create(ctx, input)
	if err != nil {
		return zero, s.fail(m, log, err)
	}

	err = s.apply(ctx, func(c []T) ([]T, error) {
		return collection.ApplyCreate(c, created)
	})
	if err != nil {
		return zero, s.fail(m, log, err)
	}

	log.Info().Str("record_id", created.RecordID().String()).Msg("create confirmed")
	s.emit(m, StateConfirmed, func(ev *Event[T]) { ev.Record = created })
	s.emit(m, StateIdle, func(*Event[T]) {})
	return created, nil
}

func (s *synchronizer[T, I]) Update(ctx context.Context, id models.ID, input I) (T, error) {
	var zero T

	m, ctx, log := s.begin(ctx, OpUpdate)
	if s.closed.Load() {
		return zero, mapError(ErrClosed, m)
	}

	s.mu.Lock()
	current, err := s.store.Load(ctx)
	s.mu.Unlock()
	if err != nil {
		return zero, s.reject(m, log, fmt.Errorf("%w: %w", ErrStore, err))
	}
	if !collection.Contains(current, id) {
		return zero, s.reject(m, log, fmt.Errorf("%w: id %s", collection.ErrNotFound, id))
	}

	s.emit(m, StateSubmitting, func(ev *Event[T]) { ev.IDs = []models.ID{id} })

	updated, err := s.remote.Update(ctx, id, input)
	if err != nil {
		return zero, s.fail(m, log, err)
	}
	if got := updated.RecordID(); !got.IsZero() && got != id {
		return zero, s.fail(m, log, fmt.Errorf("%w: updated %s, server returned %s", collection.ErrIDMismatch, id, got))
	}

	err = s.apply(ctx, func(c []T) ([]T, error) {
		return collection.ApplyUpdate(c, updated)
	})
	if err != nil {
		return zero, s.fail(m, log, err)
	}

	log.Info().Str("record_id", id.String()).Msg("update confirmed")
	s.emit(m, StateConfirmed, func(ev *Event[T]) { ev.Record = updated })
	s.emit(m, StateIdle, func(*Event[T]) {})
	return updated, nil
}

func (s *synchronizer[T, I]) Toggle(id models.ID) collection.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection = s.selection.Toggle(id)
	return s.selection
}

func (s *synchronizer[T, I]) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection = s.selection.Clear()
}

func (s *synchronizer[T, I]) Selection() collection.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selection
}

func (s *synchronizer[T, I]) DeleteSelected(ctx context.Context) ([]models.ID, error) {
	s.mu.Lock()
	selected := s.selection.IDs()
	s.mu.Unlock()

	return s.Delete(ctx, selected...)
}

func (s *synchronizer[T, I]) Delete(ctx context.Context, ids ...models.ID) ([]models.ID, error) {
	m, ctx, log := s.begin(ctx, OpDelete)
	if s.closed.Load() {
		return nil, mapError(ErrClosed, m)
	}

	s.mu.Lock()
	current, err := s.store.Load(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, s.reject(m, log, fmt.Errorf("%w: %w", ErrStore, err))
	}

	targets := collection.NewSelection(ids...).Intersect(collection.IDs(current))
	if len(targets) == 0 {
		return nil, s.reject(m, log, ErrEmptySelection)
	}

	s.emit(m, StateSubmitting, func(ev *Event[T]) { ev.IDs = slices.Clone(targets) })

	confirmed, err := s.remote.Delete(ctx, targets)
	if err != nil {
		return nil, s.fail(m, log, err)
	}

	err = s.apply(ctx, func(c []T) ([]T, error) {
		return collection.ApplyDelete(c, confirmed), nil
	})
	if err != nil {
		return nil, s.fail(m, log, err)
	}

	s.mu.Lock()
	s.selection = s.selection.Without(confirmed)
	s.mu.Unlock()

	log.Info().
		Int("requested", len(targets)).
		Int("confirmed", len(confirmed)).
		Msg("delete confirmed")
	s.emit(m, StateConfirmed, func(ev *Event[T]) { ev.IDs = slices.Clone(confirmed) })
	s.emit(m, StateIdle, func(*Event[T]) {})
	return confirmed, nil
}

func (s *synchronizer[T, I]) Reset(ctx context.Context) error {
	m, ctx, log := s.begin(ctx, OpReset)
	if s.closed.Load() {
		return mapError(ErrClosed, m)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Drop(ctx); err != nil {
		return s.reject(m, log, fmt.Errorf("%w: %w", ErrStore, err))
	}
	s.selection = s.selection.Clear()

	log.Info().Msg("local collection dropped")
	return nil
}

func (s *synchronizer[T, I]) Subscribe(buffer int) (<-chan Event[T], func()) {
	return s.events.subscribe(buffer)
}

func (s *synchronizer[T, I]) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.events.close()
	s.logger.Info().Str("entity", s.entity.String()).Msg("synchronizer closed")
	return nil
}

// begin issues a mutation id and returns the context and logger carrying it.
func (s *synchronizer[T, I]) begin(ctx context.Context, op Op) (mutation, context.Context, *logger.Logger) {
	m := mutation{id: s.ids.Generate(), entity: s.entity, op: op}
	log := s.logger.ForMutation(s.entity.String(), string(op), m.id)

	ctx = utils.WithMutationID(ctx, m.id)
	ctx = log.WithContext(ctx)
	return m, ctx, log
}

// apply runs transition against the stored collection and saves the result.
// Nothing is written once the synchronizer is closed.
func (s *synchronizer[T, I]) apply(ctx context.Context, transition func([]T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return ErrClosed
	}

	current, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStore, err)
	}

	next, err := transition(current)
	if err != nil {
		return err
	}

	if err = s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
	return nil
}

// reject reports a mutation that failed before anything was submitted.
func (s *synchronizer[T, I]) reject(m mutation, log *logger.Logger, err error) error {
	log.Warn().Err(err).Str("kind", classify(err).String()).Msg("mutation rejected")
	return mapError(err, m)
}

func (s *synchronizer[T, I]) fail(m mutation, log *logger.Logger, err error) error {
	mapped := mapError(err, m)
	log.Err(err).Str("kind", classify(err).String()).Msg("mutation failed")

	s.emit(m, StateFailed, func(ev *Event[T]) { ev.Err = mapped })
	s.emit(m, StateIdle, func(*Event[T]) {})
	return mapped
}

func (s *synchronizer[T, I]) emit(m mutation, state State, fill func(*Event[T])) {
	ev := Event[T]{
		MutationID: m.id,
		Entity:     m.entity,
		Op:         m.op,
		State:      state,
		At:         s.now(),
	}
	fill(&ev)
	s.events.publish(ev)
}
