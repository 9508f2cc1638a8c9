package scriptview

import (
	"github.com/tbocquet/callsheet/internal/ui/action"
	"github.com/tbocquet/callsheet/internal/ui/cursor"
)

// EdgeChanged reports viewport edge contact for jump-to-top/bottom controls.
type EdgeChanged struct {
	State cursor.EdgeState
}

// ActionType implements action.Action.
func (a EdgeChanged) ActionType() string { return "scriptview.edges" }

// ToggleGroupCollapse asks the app to collapse or expand a group element.
// The app decides and calls ToggleCollapsed back on the view.
type ToggleGroupCollapse struct {
	ID string
}

// ActionType implements action.Action.
func (a ToggleGroupCollapse) ActionType() string { return "scriptview.collapse" }

// Verify interfaces at compile time.
var (
	_ action.Action = EdgeChanged{}
	_ action.Action = ToggleGroupCollapse{}
)

// ActionMsg creates an action.Msg for a script view action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "scriptview", Action: a}
}
