package help

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbocquet/callsheet/internal/ui/action"
	"github.com/tbocquet/callsheet/internal/ui/testutil"
)

func TestToggle(t *testing.T) {
	m := New()
	if m.Active() {
		t.Fatal("new overlay should start hidden")
	}
	m.Toggle()
	if !m.Active() {
		t.Fatal("toggle should show the overlay")
	}
}

func TestViewListsAllSections(t *testing.T) {
	m := New()
	m.Toggle()
	out := testutil.StripANSI(m.View())

	for _, want := range []string{"Global", "Transport", "Script View", "space", "Safety hold"} {
		if !strings.Contains(out, want) {
			t.Errorf("help view missing %q", want)
		}
	}
}

func TestDismissKeys(t *testing.T) {
	for _, key := range []string{"?", "esc", "q", "enter"} {
		m := New()
		m.Toggle()

		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		if key == "esc" {
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		}
		if key == "enter" {
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		}

		m, cmd := m.Update(msg)
		if m.Active() {
			t.Errorf("%q should close the overlay", key)
		}
		if cmd == nil {
			t.Errorf("%q should emit a close action", key)
			continue
		}
		if _, ok := cmd().(action.Msg); !ok {
			t.Errorf("%q emitted %T, want action.Msg", key, cmd())
		}
	}
}

func TestInactiveViewEmpty(t *testing.T) {
	if New().View() != "" {
		t.Error("hidden overlay should render nothing")
	}
}
