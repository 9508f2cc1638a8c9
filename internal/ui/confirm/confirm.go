// Package confirm provides a yes/no confirmation dialog. The show clock
// is live state; destructive transport commands go through here first.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbocquet/callsheet/internal/ui/action"
	"github.com/tbocquet/callsheet/internal/ui/styles"
)

// Result is emitted when the dialog closes.
type Result struct {
	Confirmed bool
	Context   any // caller-provided, passed through untouched
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "confirm.result" }

// ActionMsg wraps a confirm action with its source name.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "confirm", Action: a}
}

// Model is a modal yes/no prompt.
type Model struct {
	title   string
	message string
	context any
	active  bool
}

// New creates an inactive dialog.
func New() Model {
	return Model{}
}

// Show arms the dialog with a question and a context value that comes
// back in the Result.
func (m *Model) Show(title, message string, context any) {
	m.title = title
	m.message = message
	m.context = context
	m.active = true
}

// Reset clears the dialog.
func (m *Model) Reset() {
	*m = Model{}
}

// Active reports whether the dialog is shown.
func (m Model) Active() bool {
	return m.active
}

// Update consumes keys while the dialog is active.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", "y", "Y":
		m.active = false
		ctx := m.context
		return m, func() tea.Msg {
			return ActionMsg(Result{Confirmed: true, Context: ctx})
		}
	case "esc", "n", "N":
		m.active = false
		ctx := m.context
		return m, func() tea.Msg {
			return ActionMsg(Result{Confirmed: false, Context: ctx})
		}
	}
	return m, nil
}

// View renders the dialog content, unbordered.
func (m Model) View() string {
	if !m.active {
		return ""
	}
	s := styles.T().S()
	title := s.Title.Render(m.title)
	message := s.Base.Render(m.message)
	hint := s.Subtle.Render("Enter/Y confirm · Esc/N cancel")
	return title + "\n\n" + message + "\n\n" + hint
}
