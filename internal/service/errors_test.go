package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-content-keeper/internal/adapter"
	"github.com/MKhiriev/go-content-keeper/internal/collection"
	"github.com/MKhiriev/go-content-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"adapter network", fmt.Errorf("%w: dial tcp", adapter.ErrNetwork), KindNetwork},
		{"context canceled", context.Canceled, KindNetwork},
		{"deadline", context.DeadlineExceeded, KindNetwork},
		{"adapter not found", adapter.NewResponseError(adapter.ErrNotFound, 404, "", "gone"), KindNotFound},
		{"collection not found", collection.ErrNotFound, KindNotFound},
		{"missing id", collection.ErrMissingID, KindValidation},
		{"id mismatch", fmt.Errorf("%w: 2 != 1", collection.ErrIDMismatch), KindValidation},
		{"empty selection", ErrEmptySelection, KindLocal},
		{"adapter server", adapter.NewResponseError(adapter.ErrServer, 500, "", "boom"), KindServer},
		{"unauthorized", adapter.NewResponseError(adapter.ErrUnauthorized, 403, "", "no"), KindServer},
		{"closed", ErrClosed, KindLocal},
		{"store", fmt.Errorf("%w: disk full", ErrStore), KindLocal},
		{"unknown", errors.New("???"), KindServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestMapError_CopiesServerDetails(t *testing.T) {
	m := mutation{id: "m-1", entity: models.EntityPost, op: OpUpdate}
	src := adapter.NewResponseError(adapter.ErrServer, 200, "BAD_USER_INPUT", "title is required")

	err := mapError(src, m)

	var merr *MutationError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, KindServer, merr.Kind)
	assert.Equal(t, models.EntityPost, merr.Entity)
	assert.Equal(t, OpUpdate, merr.Op)
	assert.Equal(t, "m-1", merr.MutationID)
	assert.Equal(t, "BAD_USER_INPUT", merr.Code)
	assert.Equal(t, "title is required", merr.Message)
	assert.ErrorIs(t, err, adapter.ErrServer)
	assert.ErrorIs(t, err, ErrServer)
	assert.NotErrorIs(t, err, ErrNetwork)
	assert.Equal(t, "update post failed (server): title is required", err.Error())
}

func TestMapError_KeepsExistingMutationError(t *testing.T) {
	inner := &MutationError{Kind: KindNotFound, Err: collection.ErrNotFound}

	err := mapError(fmt.Errorf("wrapped: %w", inner), mutation{id: "m-2"})

	assert.Same(t, inner, err)
}

func TestMapError_Nil(t *testing.T) {
	assert.NoError(t, mapError(nil, mutation{}))
}

func TestMutationError_LocalKindMatchesNoSentinel(t *testing.T) {
	err := &MutationError{Kind: KindLocal, Entity: models.EntityItem, Op: OpDelete, Err: ErrClosed}

	for _, s := range []error{ErrNetwork, ErrServer, ErrNotFound, ErrValidation} {
		assert.NotErrorIs(t, err, s)
	}
	assert.ErrorIs(t, err, ErrClosed)
	assert.Equal(t, "delete item failed (local): synchronizer is closed", err.Error())
}
