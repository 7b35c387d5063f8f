// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestMutationIDCtxKey(t *testing.T) {
	if MutationIDCtxKey.String() != "mutationID" {
		t.Errorf("expected 'mutationID', got '%s'", MutationIDCtxKey.String())
	}
}

func TestGetMutationIDFromContext_Success(t *testing.T) {
	ctx := WithMutationID(context.Background(), "0190-abc")

	id, ok := GetMutationIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if id != "0190-abc" {
		t.Errorf("expected id=0190-abc, got %s", id)
	}
}

func TestGetMutationIDFromContext_Missing(t *testing.T) {
	id, ok := GetMutationIDFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for missing key")
	}
	if id != "" {
		t.Errorf("expected empty id, got %s", id)
	}
}

func TestGetMutationIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), MutationIDCtxKey, 42)

	if _, ok := GetMutationIDFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestGetMutationIDFromContext_Empty(t *testing.T) {
	ctx := WithMutationID(context.Background(), "")

	if _, ok := GetMutationIDFromContext(ctx); ok {
		t.Error("expected ok=false for empty id")
	}
}
