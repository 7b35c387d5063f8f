package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-content-keeper/internal/adapter"
	"github.com/MKhiriev/go-content-keeper/internal/logger"
	"github.com/MKhiriev/go-content-keeper/internal/mock"
	"github.com/MKhiriev/go-content-keeper/internal/service"
	"github.com/MKhiriev/go-content-keeper/internal/store"
	"github.com/MKhiriev/go-content-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type categoryPanel = panelModel[models.Category, models.CategoryInput]

func newTestPanel(t *testing.T, records ...models.Category) (
	categoryPanel,
	*mock.MockRemote[models.Category, models.CategoryInput],
) {
	t.Helper()
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemote[models.Category, models.CategoryInput](ctrl)
	st := store.NewMemoryCollectionStore[models.Category]()
	require.NoError(t, st.Save(context.Background(), records))

	sync := service.NewSynchronizer[models.Category, models.CategoryInput](
		models.EntityCategory, remote, st, nil, logger.Nop(),
	)
	events, cancel := sync.Subscribe(eventBuffer)
	t.Cleanup(func() {
		cancel()
		_ = sync.Close()
	})

	m := newPanelModel(context.Background(), sync, events, categoryLabel, models.NewAppBuildInfo("1.0.0", "", ""))
	m.loading = false
	m = update(t, m, m.cmdLoadRecords()())
	return m, remote
}

func update(t *testing.T, m categoryPanel, msg tea.Msg) categoryPanel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(categoryPanel)
	require.True(t, ok)
	return out
}

func press(t *testing.T, m categoryPanel, k string) (categoryPanel, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, cmd := m.Update(msg)
	out, ok := next.(categoryPanel)
	require.True(t, ok)
	return out, cmd
}

func sample() []models.Category {
	return []models.Category{
		{ID: "1", Title: "News", Slug: "news"},
		{ID: "2", Title: "Music", Slug: "music"},
		{ID: "3", Title: "Film"},
	}
}

func TestPanel_RendersRecords(t *testing.T) {
	m, _ := newTestPanel(t, sample()...)

	view := m.View()

	assert.Contains(t, view, "CATEGORIES")
	assert.Contains(t, view, "News (news)")
	assert.Contains(t, view, "Film")
	assert.Contains(t, view, "#2")
	assert.Contains(t, view, "0 selected")
}

func TestPanel_EmptyCollection(t *testing.T) {
	m, _ := newTestPanel(t)

	assert.Contains(t, m.View(), "No records")
}

func TestPanel_ToggleSelection(t *testing.T) {
	m, _ := newTestPanel(t, sample()...)

	m, _ = press(t, m, "down")
	m, _ = press(t, m, "x")

	assert.True(t, m.selection.Contains("2"))
	assert.Equal(t, []models.ID{"2"}, m.sync.Selection().IDs())
	assert.Contains(t, m.View(), "[x]")
	assert.Contains(t, m.View(), "1 selected")

	m, _ = press(t, m, "x")
	assert.Equal(t, 0, m.selection.Len())

	m, _ = press(t, m, "x")
	m, _ = press(t, m, "c")
	assert.Equal(t, 0, m.sync.Selection().Len())
}

func TestPanel_DeleteSelected(t *testing.T) {
	m, remote := newTestPanel(t, sample()...)
	remote.EXPECT().Delete(gomock.Any(), []models.ID{"1", "3"}).Return([]models.ID{"1", "3"}, nil)

	m, _ = press(t, m, "x")
	m, _ = press(t, m, "down")
	m, _ = press(t, m, "down")
	m, _ = press(t, m, "x")

	m, cmd := press(t, m, "d")
	assert.Nil(t, cmd)
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), "Delete 2 selected categories?")

	m, cmd = press(t, m, "y")
	require.NotNil(t, cmd)
	assert.False(t, m.showConfirm)

	m = update(t, m, cmd())
	assert.Equal(t, "Deleted 2 categories.", m.status)

	m = update(t, m, m.cmdLoadRecords()())
	require.Len(t, m.records, 1)
	assert.Equal(t, models.ID("2"), m.records[0].ID)
	assert.Equal(t, 0, m.selection.Len())
	assert.Equal(t, 0, m.idx)
}

func TestPanel_DeleteCancelled(t *testing.T) {
	m, _ := newTestPanel(t, sample()...)

	m, _ = press(t, m, "x")
	m, _ = press(t, m, "d")
	m, cmd := press(t, m, "n")

	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Len(t, m.records, 3)
}

func TestPanel_DeleteWithoutSelectionShowsMessage(t *testing.T) {
	m, _ := newTestPanel(t, sample()...)

	m, cmd := press(t, m, "d")
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	require.True(t, m.showError)
	assert.Equal(t, "No valid categories selected for deletion.", m.errorOverlay.message)

	m, _ = press(t, m, "esc")
	assert.False(t, m.showError)
}

func TestPanel_ReloadFailureShowsNetworkMessage(t *testing.T) {
	m, remote := newTestPanel(t, sample()...)
	remote.EXPECT().List(gomock.Any()).Return(nil, fmt.Errorf("%w: connection refused", adapter.ErrNetwork))

	m, cmd := press(t, m, "r")
	require.NotNil(t, cmd)
	assert.True(t, m.loading)

	m = update(t, m, m.cmdReload()())

	assert.False(t, m.loading)
	require.True(t, m.showError)
	assert.Equal(t, "Network error occurred. Please try again later.", m.errorOverlay.message)
	assert.Len(t, m.records, 3)
}

func TestPanel_EventsUpdateStatus(t *testing.T) {
	m, _ := newTestPanel(t, sample()...)

	m = update(t, m, eventMsg[models.Category]{event: service.Event[models.Category]{
		MutationID: "m-1", Entity: models.EntityCategory, Op: service.OpCreate, State: service.StateSubmitting,
	}})
	assert.True(t, m.busy())
	assert.Equal(t, "create category: submitting", m.status)

	m = update(t, m, eventMsg[models.Category]{event: service.Event[models.Category]{
		MutationID: "m-1", Entity: models.EntityCategory, Op: service.OpCreate, State: service.StateFailed,
	}})
	assert.False(t, m.busy())
	assert.Equal(t, "create category: failed", m.status)

	m = update(t, m, eventMsg[models.Category]{event: service.Event[models.Category]{
		MutationID: "m-1", Entity: models.EntityCategory, Op: service.OpCreate, State: service.StateIdle,
	}})
	assert.Equal(t, "create category: failed", m.status)
}

func TestPanel_CopyID(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { copyToClipboard = orig })

	m, _ := newTestPanel(t, sample()...)
	m, _ = press(t, m, "down")

	m, cmd := press(t, m, "y")
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	assert.Equal(t, "2", copied)
	assert.Equal(t, "Copied!", m.status)
}

func TestPanel_CopyFailure(t *testing.T) {
	orig := copyToClipboard
	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { copyToClipboard = orig })

	m, _ := newTestPanel(t, sample()...)

	_, cmd := press(t, m, "y")
	m = update(t, m, cmd())

	require.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "no clipboard")
}

func TestPanel_BuildInfo(t *testing.T) {
	m, _ := newTestPanel(t, sample()...)

	m, _ = press(t, m, "v")
	assert.Contains(t, m.View(), "Version: 1.0.0")
	assert.Contains(t, m.View(), "Commit: N/A")

	m, _ = press(t, m, "esc")
	assert.Contains(t, m.View(), "CATEGORIES")
}

func TestPanel_Quit(t *testing.T) {
	m, _ := newTestPanel(t, sample()...)

	_, cmd := press(t, m, "q")

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmn", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "anything", fitText("anything", 0))
}
