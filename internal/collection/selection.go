// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collection

import (
	"slices"

	"github.com/MKhiriev/go-content-keeper/models"
)

// Selection is the set of ids currently marked for a bulk action. It behaves
// like a checkbox list: toggling an id that is present removes it, toggling an
// absent id adds it. IDs preserves the order in which ids were selected.
//
// Selection is a value type; every method returns a new Selection and leaves
// the receiver untouched. The zero value is an empty selection.
type Selection struct {
	ids []models.ID
}

// NewSelection returns a selection holding ids, duplicates removed.
func NewSelection(ids ...models.ID) Selection {
	var s Selection
	for _, id := range ids {
		if !s.Contains(id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

// Toggle returns the symmetric difference of s and {id}.
func (s Selection) Toggle(id models.ID) Selection {
	if s.Contains(id) {
		return Selection{ids: slices.DeleteFunc(slices.Clone(s.ids), func(v models.ID) bool {
			return v == id
		})}
	}

	next := make([]models.ID, len(s.ids), len(s.ids)+1)
	copy(next, s.ids)
	return Selection{ids: append(next, id)}
}

// Clear returns an empty selection.
func (s Selection) Clear() Selection {
	return Selection{}
}

// Contains reports whether id is selected.
func (s Selection) Contains(id models.ID) bool {
	return slices.Contains(s.ids, id)
}

// Len returns the number of selected ids.
func (s Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in selection order.
func (s Selection) IDs() []models.ID {
	return slices.Clone(s.ids)
}

// Equal reports whether s and other hold the same ids, ignoring order.
func (s Selection) Equal(other Selection) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}
	for _, id := range s.ids {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

// Intersect returns the selected ids that are present in live, in selection
// order. Stale ids, referring to records that no longer exist, are dropped.
func (s Selection) Intersect(live []models.ID) []models.ID {
	alive := toSet(live)

	out := make([]models.ID, 0, len(s.ids))
	for _, id := range s.ids {
		if _, ok := alive[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// Without returns s with every id in ids removed.
func (s Selection) Without(ids []models.ID) Selection {
	drop := toSet(ids)
	return Selection{ids: slices.DeleteFunc(slices.Clone(s.ids), func(v models.ID) bool {
		_, ok := drop[v]
		return ok
	})}
}
