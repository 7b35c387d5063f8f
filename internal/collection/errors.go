// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collection

import "errors"

var (
	// ErrMissingID is returned when a confirmed record carries no id. Such a
	// record can never be addressed again, so it is never inserted.
	ErrMissingID = errors.New("record has no id")

	// ErrNotFound is returned by ApplyUpdate when no member carries the id of
	// the updated record.
	ErrNotFound = errors.New("record not found in collection")

	// ErrIDMismatch is returned when the server answers an update with a
	// record other than the one that was updated.
	ErrIDMismatch = errors.New("confirmed record id does not match")
)
