// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-content-keeper/internal/logger"
	"github.com/MKhiriev/go-content-keeper/models"
)

// Op names a synchronizer operation.
type Op string

const (
	OpLoad   Op = "load"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpReset  Op = "reset"
)

// State is the position of a single mutation in its lifecycle:
// Idle, Submitting, then Confirmed or Failed, then Idle again.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateConfirmed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateSubmitting:
		return "submitting"
	case StateConfirmed:
		return "confirmed"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Event reports a state change of one mutation.
//
// Record is set on a confirmed create or update, IDs on a confirmed delete
// (the ids the server confirmed) and on a submitted delete (the ids sent).
// Err is set on Failed.
type Event[T models.Record] struct {
	MutationID string
	Entity     models.Entity
	Op         Op
	State      State
	Record     T
	IDs        []models.ID
	Err        error
	At         time.Time
}

// notifier fans events out to subscribers. Delivery never blocks: a
// subscriber whose buffer is full misses the event.
type notifier[T models.Record] struct {
	mu     sync.Mutex
	subs   map[int]chan Event[T]
	next   int
	closed bool
	log    *logger.Logger
}

func newNotifier[T models.Record](log *logger.Logger) *notifier[T] {
	return &notifier[T]{subs: make(map[int]chan Event[T]), log: log}
}

func (n *notifier[T]) subscribe(buffer int) (<-chan Event[T], func()) {
	if buffer < 0 {
		buffer = 0
	}
	ch := make(chan Event[T], buffer)

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		close(ch)
		return ch, func() {}
	}

	id := n.next
	n.next++
	n.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			if sub, ok := n.subs[id]; ok {
				delete(n.subs, id)
				close(sub)
			}
		})
	}
}

func (n *notifier[T]) publish(ev Event[T]) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}

	for _, ch := range n.subs {
		select {
		case ch <- ev:
		default:
			n.log.Warn().
				Str("mutation_id", ev.MutationID).
				Str("state", ev.State.String()).
				Msg("subscriber is not keeping up, event dropped")
		}
	}
}

func (n *notifier[T]) close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.closed = true
	for id, ch := range n.subs {
		delete(n.subs, id)
		close(ch)
	}
}
