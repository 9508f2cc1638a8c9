package playback

import (
	"time"

	"github.com/tbocquet/callsheet/internal/script"
)

// PhaseChange is emitted when the show clock changes phase.
type PhaseChange struct {
	Previous Phase
	Current  Phase
}

// PositionChange is emitted when the clock position jumps (seek, reset,
// completion pin). Ordinary clock advancement does not emit; consumers
// poll Snapshot on their own render tick instead.
type PositionChange struct {
	Elapsed time.Duration
}

// ScriptChange is emitted when a different script is loaded.
type ScriptChange struct {
	Script *script.Script
}

// PreferencesChange is emitted when viewer preferences are replaced.
type PreferencesChange struct {
	Preferences Preferences
}
