package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "content-keeper")

	l.Info().Msg("hello")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "content-keeper", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "hello", entry["message"])
}

func TestNew_GlobalSettings(t *testing.T) {
	New(&bytes.Buffer{}, "settings")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("stdout"))
}

func TestNewClientLogger_WritesToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keeper.log")

	l := NewClientLogger("client", path)
	l.Warn().Str("entity", "post").Msg("to file")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"entity":"post"`)
	assert.Contains(t, string(raw), `"role":"client"`)
}

func TestNewClientLogger_FallsBackWhenPathUnusable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "keeper.log")

	l := NewClientLogger("client", path)
	require.NotNil(t, l)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "levels").WithLevel("warn")
	require.NoError(t, err)

	l.Info().Msg("dropped")
	l.Warn().Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "kept")
}

func TestWithLevel_Unknown(t *testing.T) {
	base := New(&bytes.Buffer{}, "levels")

	l, err := base.WithLevel("loud")
	require.Error(t, err)
	assert.Same(t, base, l)
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "inherited-role")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")
	assert.Equal(t, "inherited-role", decodeLine(t, &buf)["role"])
}

func TestFromContext(t *testing.T) {
	t.Run("without logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := New(&buf, "ctx").ForMutation("item", "update", "m-9").
			WithContext(context.Background())

		FromContext(ctx).Info().Msg("from context")

		entry := decodeLine(t, &buf)
		assert.Equal(t, "m-9", entry["mutation_id"])
		assert.Equal(t, "item", entry["entity"])
	})
}

func TestForMutation(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "sync")

	parent.ForMutation("post", "create", "m-1").Info().Msg("confirmed")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "sync", entry["role"])
	assert.Equal(t, "post", entry["entity"])
	assert.Equal(t, "create", entry["op"])
	assert.Equal(t, "m-1", entry["mutation_id"])

	buf.Reset()
	parent.Info().Msg("plain")
	assert.NotContains(t, decodeLine(t, &buf), "mutation_id")
}
