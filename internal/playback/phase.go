package playback

// Phase represents the show clock state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhasePaused
	PhaseSafety
	PhaseComplete
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseSafety:
		return "Safety"
	case PhaseComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a show is underway: playing or held on an
// ordinary pause or a safety hold. Complete and idle are not active.
func (p Phase) IsActive() bool {
	return p == PhasePlaying || p == PhasePaused || p == PhaseSafety
}
