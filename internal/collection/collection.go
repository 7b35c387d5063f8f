// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collection

import (
	"fmt"

	"github.com/MKhiriev/go-content-keeper/models"
)

// ApplyCreate returns [created, ...c].
//
// The created record is the server's representation; no client-side draft is
// consulted. A member that already carries the same id (for example one that
// arrived through a refetch while the create was in flight) is dropped so the
// collection keeps one record per id.
//
// If created has no id, ApplyCreate returns c unchanged and ErrMissingID.
func ApplyCreate[T models.Record](c []T, created T) ([]T, error) {
	id := created.RecordID()
	if id.IsZero() {
		return c, ErrMissingID
	}

	next := make([]T, 0, len(c)+1)
	next = append(next, created)
	for _, r := range c {
		if r.RecordID() != id {
			next = append(next, r)
		}
	}
	return next, nil
}

// ApplyUpdate returns a copy of c where the member whose id equals
// updated.RecordID() is replaced wholesale by updated. All other members keep
// their values and relative order.
//
// If no member has that id, c is returned unchanged together with an error
// wrapping ErrNotFound.
func ApplyUpdate[T models.Record](c []T, updated T) ([]T, error) {
	id := updated.RecordID()
	if id.IsZero() {
		return c, ErrMissingID
	}

	idx := indexOf(c, id)
	if idx < 0 {
		return c, fmt.Errorf("%w: id %s", ErrNotFound, id)
	}

	next := make([]T, len(c))
	copy(next, c)
	next[idx] = updated
	return next, nil
}

// ApplyDelete returns the members of c whose id is not in ids. Unknown ids are
// ignored, so applying the same delete twice yields the same collection.
func ApplyDelete[T models.Record](c []T, ids []models.ID) []T {
	drop := toSet(ids)

	next := make([]T, 0, len(c))
	for _, r := range c {
		if _, ok := drop[r.RecordID()]; !ok {
			next = append(next, r)
		}
	}
	return next
}

// IDs returns the ids of c in collection order.
func IDs[T models.Record](c []T) []models.ID {
	ids := make([]models.ID, 0, len(c))
	for _, r := range c {
		ids = append(ids, r.RecordID())
	}
	return ids
}

// Contains reports whether c has a member with the given id.
func Contains[T models.Record](c []T, id models.ID) bool {
	return indexOf(c, id) >= 0
}

// Find returns the member with the given id.
func Find[T models.Record](c []T, id models.ID) (T, bool) {
	idx := indexOf(c, id)
	if idx < 0 {
		var zero T
		return zero, false
	}
	return c[idx], true
}

func indexOf[T models.Record](c []T, id models.ID) int {
	for i, r := range c {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

func toSet(ids []models.ID) map[models.ID]struct{} {
	set := make(map[models.ID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
