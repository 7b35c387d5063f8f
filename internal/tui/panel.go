package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-content-keeper/internal/app"
	"github.com/MKhiriev/go-content-keeper/internal/collection"
	"github.com/MKhiriev/go-content-keeper/internal/service"
	"github.com/MKhiriev/go-content-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const labelWidth = 56

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type panelModel[T models.Record, I any] struct {
	ctx       context.Context
	sync      service.Synchronizer[T, I]
	events    <-chan service.Event[T]
	label     func(T) string
	buildInfo models.AppBuildInfo

	records   []T
	selection collection.Selection
	idx       int
	loading   bool
	inFlight  map[string]struct{}
	spinner   spinner.Model
	status    string
	statusSt  lipgloss.Style

	confirm       confirmModel
	showConfirm   bool
	errorOverlay  errorOverlayModel
	showError     bool
	showBuildInfo bool
}

func newPanelModel[T models.Record, I any](
	ctx context.Context,
	sync service.Synchronizer[T, I],
	events <-chan service.Event[T],
	label func(T) string,
	info models.AppBuildInfo,
) panelModel[T, I] {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return panelModel[T, I]{
		ctx:       ctx,
		sync:      sync,
		events:    events,
		label:     label,
		buildInfo: info,
		selection: sync.Selection(),
		loading:   true,
		inFlight:  make(map[string]struct{}),
		spinner:   s,
		statusSt:  helpStyle,
	}
}

func (m panelModel[T, I]) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadRecords(), m.cmdReload(), m.cmdWaitEvent())
}

func (m panelModel[T, I]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case recordsLoadedMsg[T]:
		if msg.err != nil {
			m.showErrorf(app.UserMessage(msg.err))
			return m, nil
		}
		m.records = msg.records
		m.selection = m.sync.Selection()
		m.clampCursor()
		return m, nil

	case reloadDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.showErrorf(app.UserMessage(msg.err))
		}
		return m, m.cmdLoadRecords()

	case deletedMsg:
		m.selection = m.sync.Selection()
		if msg.err != nil {
			m.showErrorf(app.UserMessage(msg.err))
			return m, nil
		}
		m.status = fmt.Sprintf("Deleted %d %s.", len(msg.ids), m.sync.Entity().Plural())
		m.statusSt = stateStyle(service.StateConfirmed)
		return m, tea.Batch(m.cmdLoadRecords(), cmdClearStatus())

	case eventMsg[T]:
		m.trackEvent(msg.event)
		cmds := []tea.Cmd{m.cmdWaitEvent()}
		if msg.event.State == service.StateConfirmed {
			cmds = append(cmds, m.cmdLoadRecords())
		}
		if msg.event.State == service.StateSubmitting {
			cmds = append(cmds, m.spinner.Tick)
		}
		return m, tea.Batch(cmds...)

	case eventsClosedMsg:
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(app.UserMessage(fmt.Errorf("copy to clipboard: %w", msg.err)))
			return m, nil
		}
		m.status = "Copied!"
		m.statusSt = helpStyle
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m panelModel[T, I]) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}
	if m.showConfirm {
		if key.Matches(msg, keys.yes) {
			m.showConfirm = false
			return m, m.cmdDeleteSelected()
		}
		if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
			m.showConfirm = false
		}
		return m, nil
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.records)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.toggle):
		if r, ok := m.current(); ok {
			m.selection = m.sync.Toggle(r.RecordID())
		}
	case key.Matches(msg, keys.clear):
		m.sync.ClearSelection()
		m.selection = m.sync.Selection()
	case key.Matches(msg, keys.delete):
		live := m.selection.Intersect(collection.IDs(m.records))
		if len(live) == 0 {
			// the synchronizer reports the empty selection
			return m, m.cmdDeleteSelected()
		}
		m.confirm = confirmModel{count: len(live), plural: m.sync.Entity().Plural()}
		m.showConfirm = true
	case key.Matches(msg, keys.reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdReload())
	case key.Matches(msg, keys.copy):
		if r, ok := m.current(); ok {
			return m, cmdCopyToClipboard(r.RecordID().String())
		}
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m panelModel[T, I]) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	title := strings.ToUpper(m.sync.Entity().Plural())
	if m.busy() {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	switch {
	case m.loading && len(m.records) == 0:
		b.WriteString("Loading...")
	case len(m.records) == 0:
		b.WriteString("No records")
	default:
		for i, r := range m.records {
			cursor := "  "
			if i == m.idx {
				cursor = cursorStyle.Render("> ")
			}
			box := "[ ]"
			if m.selection.Contains(r.RecordID()) {
				box = selectedStyle.Render("[x]")
			}
			fmt.Fprintf(&b, "%s%s %s %s\n", cursor, box,
				fitText(m.label(r), labelWidth), idStyle.Render("#"+r.RecordID().String()))
		}
		fmt.Fprintf(&b, "\n%d selected", m.selection.Len())
	}

	var status string
	if m.status != "" {
		status = m.statusSt.Render(m.status)
	}

	body := renderPage(title, b.String(), status,
		"space select  c clear  d delete  r reload  y copy id  v version  q quit")

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *panelModel[T, I]) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m panelModel[T, I]) current() (T, bool) {
	if len(m.records) == 0 || m.idx < 0 || m.idx >= len(m.records) {
		var zero T
		return zero, false
	}
	return m.records[m.idx], true
}

func (m *panelModel[T, I]) clampCursor() {
	if m.idx >= len(m.records) {
		m.idx = len(m.records) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m panelModel[T, I]) busy() bool {
	return m.loading || len(m.inFlight) > 0
}

// trackEvent keeps the status line and the set of in-flight mutations in
// step with the synchronizer. inFlight is shared between model copies; Update
// only runs on the program goroutine.
func (m *panelModel[T, I]) trackEvent(ev service.Event[T]) {
	switch ev.State {
	case service.StateSubmitting:
		m.inFlight[ev.MutationID] = struct{}{}
	case service.StateIdle:
		delete(m.inFlight, ev.MutationID)
		return
	default:
		delete(m.inFlight, ev.MutationID)
	}
	m.status = fmt.Sprintf("%s %s: %s", ev.Op, ev.Entity, ev.State)
	m.statusSt = stateStyle(ev.State)
}

func (m panelModel[T, I]) cmdLoadRecords() tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		records, err := sync.Records(ctx)
		return recordsLoadedMsg[T]{records: records, err: err}
	}
}

func (m panelModel[T, I]) cmdReload() tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		return reloadDoneMsg{err: sync.Load(ctx)}
	}
}

func (m panelModel[T, I]) cmdDeleteSelected() tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		ids, err := sync.DeleteSelected(ctx)
		return deletedMsg{ids: ids, err: err}
	}
}

func (m panelModel[T, I]) cmdWaitEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg[T]{event: ev}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
