// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-content-keeper/internal/adapter"
	"github.com/MKhiriev/go-content-keeper/internal/collection"
)

// classify maps an adapter, collection or store error onto an ErrorKind.
func classify(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrClosed), errors.Is(err, ErrStore), errors.Is(err, ErrEmptySelection):
		return KindLocal
	case errors.Is(err, adapter.ErrNetwork),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return KindNetwork
	case errors.Is(err, adapter.ErrNotFound), errors.Is(err, collection.ErrNotFound):
		return KindNotFound
	case errors.Is(err, collection.ErrMissingID), errors.Is(err, collection.ErrIDMismatch):
		return KindValidation
	}
	return KindServer
}

// mapError wraps err into a *MutationError for the given mutation. Server
// code and message are copied from an *adapter.ResponseError in the chain.
func mapError(err error, m mutation) error {
	if err == nil {
		return nil
	}

	var merr *MutationError
	if errors.As(err, &merr) {
		return merr
	}

	out := &MutationError{
		Kind:       classify(err),
		Entity:     m.entity,
		Op:         m.op,
		MutationID: m.id,
		Err:        err,
	}

	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) {
		out.Code = respErr.Code
		out.Message = respErr.Message
	}

	return out
}
