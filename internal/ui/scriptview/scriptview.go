// Package scriptview renders a call script against the show clock: it
// highlights every element by classification and keeps the current element
// in view while the show runs.
package scriptview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbocquet/callsheet/internal/playback"
	"github.com/tbocquet/callsheet/internal/script"
	"github.com/tbocquet/callsheet/internal/ui"
	"github.com/tbocquet/callsheet/internal/ui/cursor"
)

// Provider is the subset of the playback service the script view consumes.
// Classify bundles phase, elapsed time and per-element state computed from
// one snapshot, so a render pass can never see two different instants.
type Provider interface {
	Script() *script.Script
	Elements() []script.Element
	Classify() playback.Classification
	Preferences() playback.Preferences
}

// Options are the display settings that do not affect classification.
type Options struct {
	ShowClockTimes      bool
	UseMilitaryTime     bool
	ColorizeDepartments bool
}

// Model holds the state for the script view panel.
type Model struct {
	ui.Base
	provider Provider
	opts     Options

	cursor cursor.Cursor
	follow bool

	cls       playback.Classification
	elements  []script.Element
	rows      []int // display row -> index into elements, honoring collapse
	collapsed map[string]bool
	scr       *script.Script // last seen script, to detect reloads
	loadedAt  time.Time

	lastEdges *cursor.EdgeState

	now func() time.Time
}

// New creates a script view backed by the given provider.
func New(provider Provider, opts Options) *Model {
	return &Model{
		provider:  provider,
		opts:      opts,
		cursor:    cursor.New(ui.ScrollMargin),
		follow:    true,
		collapsed: make(map[string]bool),
		now:       time.Now,
	}
}

// Following reports whether the view tracks the current element.
func (m *Model) Following() bool {
	return m.follow
}

// SetFollow enables or disables follow mode, recentering when enabled.
func (m *Model) SetFollow(follow bool) {
	m.follow = follow
}

// ToggleCollapsed folds or unfolds the members of a group.
func (m *Model) ToggleCollapsed(id string) {
	m.collapsed[id] = !m.collapsed[id]
}

// Options returns the current display options.
func (m *Model) Options() Options {
	return m.opts
}

// SetOptions replaces the display options.
func (m *Model) SetOptions(opts Options) {
	m.opts = opts
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.Sync()
}

// Sync recomputes classification from a fresh snapshot, follows the
// current element when appropriate, and reports edge changes. The whole
// pass is derived state: calling it again with nothing changed does
// nothing further. Call it on every clock tick and after any transport or
// preference change.
func (m *Model) Sync() tea.Cmd {
	m.refreshScript()

	m.elements = m.provider.Elements()
	m.cls = m.provider.Classify()
	m.rows = visibleRows(m.elements, m.collapsed)
	height := m.listHeight()
	m.cursor.ClampToBounds(len(m.rows), height)

	if row := m.currentRow(); m.shouldFollow() && row >= 0 {
		m.cursor.FollowTarget(row, ui.FollowLookback, len(m.rows), height)
		m.cursor.SyncTo(row, len(m.rows))
	}

	return m.emitEdges()
}

// visibleRows maps display rows to element indices. Members of a
// collapsed group are hidden until the next group header; headers
// themselves always show.
func visibleRows(elements []script.Element, collapsed map[string]bool) []int {
	rows := make([]int, 0, len(elements))
	hiding := false
	for i, el := range elements {
		if el.Kind == script.KindGroup {
			hiding = collapsed[el.ID]
			rows = append(rows, i)
			continue
		}
		if !hiding {
			rows = append(rows, i)
		}
	}
	return rows
}

// currentRow returns the display row of the current element, or the row
// of the group header hiding it, or -1 when nothing is current.
func (m *Model) currentRow() int {
	if m.cls.Current < 0 {
		return -1
	}
	row := -1
	for r, idx := range m.rows {
		if idx > m.cls.Current {
			break
		}
		row = r
	}
	return row
}

// refreshScript resets view state when a different script is loaded.
func (m *Model) refreshScript() {
	scr := m.provider.Script()
	if scr == m.scr {
		return
	}
	m.scr = scr
	m.loadedAt = m.now()
	m.cursor.Reset()
	m.follow = true
	m.collapsed = make(map[string]bool)
	m.lastEdges = nil
}

// shouldFollow gates auto-scroll: only during an active show (complete
// excluded), only while highlighting is on, and only in follow mode.
// Highlighting off disables following too; the two settings are coupled
// on purpose.
func (m *Model) shouldFollow() bool {
	return m.follow &&
		m.cls.Snapshot.Phase.IsActive() &&
		m.provider.Preferences().Highlighting
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.cursor.ClampToBounds(len(m.rows), m.listHeight())
		return m, m.emitEdges()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	key := msg.String()
	height := m.listHeight()

	switch key {
	case "c":
		// Re-enable follow and snap back to the current element
		m.follow = true
		if row := m.currentRow(); row >= 0 {
			m.cursor.SyncTo(row, len(m.rows))
			m.cursor.Move(0, len(m.rows), height)
		}
		return m, m.emitEdges()
	case "enter":
		if el, ok := m.selectedElement(); ok && el.Kind == script.KindGroup {
			return m, func() tea.Msg { return ActionMsg(ToggleGroupCollapse{ID: el.ID}) }
		}
		return m, nil
	}

	if m.cursor.HandleKey(key, len(m.rows), height) {
		// Manual scrolling takes over until the operator re-syncs
		m.follow = false
		return m, m.emitEdges()
	}
	return m, nil
}

func (m *Model) selectedElement() (script.Element, bool) {
	if pos := m.cursor.Pos(); pos >= 0 && pos < len(m.rows) {
		return m.elements[m.rows[pos]], true
	}
	return script.Element{}, false
}

// emitEdges reports the viewport edge state upward when it changes.
func (m *Model) emitEdges() tea.Cmd {
	edges := m.cursor.Edges(len(m.rows), m.listHeight())
	if m.lastEdges != nil && *m.lastEdges == edges {
		return nil
	}
	m.lastEdges = &edges
	return func() tea.Msg { return ActionMsg(EdgeChanged{State: edges}) }
}

// listHeight is the row budget after panel chrome and the footer line.
func (m *Model) listHeight() int {
	return max(m.ListHeight(ui.PanelOverhead+1), 0)
}
