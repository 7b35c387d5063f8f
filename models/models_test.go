// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ID
	}{
		{name: "string", in: `"42"`, want: "42"},
		{name: "number", in: `42`, want: "42"},
		{name: "null", in: `null`, want: ""},
		{name: "opaque", in: `"65f1c0ab"`, want: "65f1c0ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ID
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestID_MarshalJSON_AlwaysString(t *testing.T) {
	b, err := json.Marshal(struct {
		ID ID `json:"id"`
	}{ID: "7"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"7"}`, string(b))
}

func TestCategory_DecodesRemoteShape(t *testing.T) {
	raw := `{"id":3,"title":"News","cSlug":"news","SubCategories":[{"id":"9","title":"Local","sSlug":"local"}]}`

	var c Category
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	assert.Equal(t, ID("3"), c.RecordID())
	assert.Equal(t, "news", c.Slug)
	require.Len(t, c.SubCategories, 1)
	assert.Equal(t, ID("9"), c.SubCategories[0].ID)
}

func TestDeleteResult_Shapes(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    DeleteResult
		wantErr error
	}{
		{
			name: "records array",
			in:   `[{"id":"1","title":"A"},{"id":2}]`,
			want: DeleteResult{IDs: []ID{"1", "2"}, HasIDs: true, Success: true},
		},
		{
			name: "empty records array",
			in:   `[]`,
			want: DeleteResult{HasIDs: true, Success: true},
		},
		{
			name: "deletedIds object",
			in:   `{"deletedIds":["4","5"]}`,
			want: DeleteResult{IDs: []ID{"4", "5"}, HasIDs: true, Success: true},
		},
		{
			name: "success acknowledgement",
			in:   `{"success":true}`,
			want: DeleteResult{Success: true},
		},
		{
			name: "rejected acknowledgement",
			in:   `{"success":false}`,
			want: DeleteResult{},
		},
		{
			name:    "unknown object",
			in:      `{"count":3}`,
			wantErr: ErrUnknownDeleteShape,
		},
		{
			name:    "scalar",
			in:      `true`,
			wantErr: ErrUnknownDeleteShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got DeleteResult
			err := json.Unmarshal([]byte(tt.in), &got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEntity(t *testing.T) {
	for _, name := range []string{"posts", "post"} {
		e, ok := ParseEntity(name)
		assert.True(t, ok)
		assert.Equal(t, EntityPost, e)
	}

	e, ok := ParseEntity("sub-categories")
	assert.True(t, ok)
	assert.Equal(t, EntitySubCategory, e)
	assert.Equal(t, "subcategories", e.Plural())

	_, ok = ParseEntity("genres")
	assert.False(t, ok)
}

func TestAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Contains(t, info.String(), "Build commit: N/A")
}
