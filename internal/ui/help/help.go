// Package help renders the key binding overlay.
package help

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbocquet/callsheet/internal/keymap"
	"github.com/tbocquet/callsheet/internal/ui/action"
	"github.com/tbocquet/callsheet/internal/ui/styles"
)

// Close asks the app to dismiss the help overlay.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "help.close" }

// ActionMsg wraps a help action with its source name.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "help", Action: a}
}

var contextLabels = []struct{ context, label string }{
	{"global", "Global"},
	{"transport", "Transport"},
	{"view", "Script View"},
}

// Model is the help overlay.
type Model struct {
	active bool
}

// New creates an inactive help overlay.
func New() Model {
	return Model{}
}

// Toggle flips visibility.
func (m *Model) Toggle() {
	m.active = !m.active
}

// Active reports whether the overlay is shown.
func (m Model) Active() bool {
	return m.active
}

// Update closes the overlay on any of its dismiss keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "?", "esc", "q", "enter":
			m.active = false
			return m, func() tea.Msg { return ActionMsg(Close{}) }
		}
	}
	return m, nil
}

// View renders the binding table, unbordered.
func (m Model) View() string {
	if !m.active {
		return ""
	}

	s := styles.T().S()

	keyWidth := 0
	for _, b := range keymap.All {
		if w := len(strings.Join(b.Keys, ", ")); w > keyWidth {
			keyWidth = w
		}
	}

	var sb strings.Builder
	sb.WriteString(s.Title.Render("Key Bindings"))
	for _, section := range contextLabels {
		bindings := keymap.ByContext(section.context)
		if len(bindings) == 0 {
			continue
		}
		sb.WriteString("\n\n")
		sb.WriteString(s.Upcoming.Render(section.label))
		for _, b := range bindings {
			keyStr := strings.Join(b.Keys, ", ")
			sb.WriteString("\n")
			sb.WriteString(s.Base.Bold(true).Render(keyStr))
			sb.WriteString(strings.Repeat(" ", keyWidth-len(keyStr)+2))
			sb.WriteString(s.Muted.Render(b.Description))
		}
	}
	sb.WriteString("\n\n")
	sb.WriteString(s.Subtle.Render("Esc to close"))

	return sb.String()
}
