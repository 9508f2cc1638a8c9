package playback

import (
	"time"

	"github.com/tbocquet/callsheet/internal/script"
)

// HighlightState classifies one element against the show clock.
type HighlightState int

const (
	HighlightNone HighlightState = iota
	HighlightPast
	HighlightCurrent
	HighlightUpcoming
	HighlightFuture
)

// String returns the highlight state name.
func (h HighlightState) String() string {
	switch h {
	case HighlightNone:
		return "none"
	case HighlightPast:
		return "past"
	case HighlightCurrent:
		return "current"
	case HighlightUpcoming:
		return "upcoming"
	case HighlightFuture:
		return "future"
	default:
		return "unknown"
	}
}

// BorderState marks elements belonging to a live or completed run.
type BorderState int

const (
	BorderNone BorderState = iota
	BorderActive
)

// Lookahead window bounds. Values outside the range are clamped rather
// than trusted, so a preference written around the settings screen cannot
// push the window to nonsense.
const (
	MinLookahead     = 5 * time.Second
	MaxLookahead     = 60 * time.Second
	DefaultLookahead = 30 * time.Second
)

// ClampLookahead restricts a lookahead window to the supported range.
func ClampLookahead(d time.Duration) time.Duration {
	if d < MinLookahead {
		return MinLookahead
	}
	if d > MaxLookahead {
		return MaxLookahead
	}
	return d
}

// Preferences are the viewer settings the classifier consumes.
type Preferences struct {
	Lookahead    time.Duration
	Highlighting bool
	AutoSortCues bool
}

// DefaultPreferences returns the out-of-the-box viewer settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Lookahead:    DefaultLookahead,
		Highlighting: true,
	}
}

// Snapshot is one consistent observation of the show clock. All element
// classifications for a render pass must derive from the same snapshot.
type Snapshot struct {
	Phase   Phase
	Elapsed time.Duration
}

// BorderState returns the border classification for this snapshot. The
// border marks a live run: lit while playing and kept lit once the show
// completes, suppressed during pause and safety holds.
func (s Snapshot) BorderState() BorderState {
	if s.Phase == PhasePlaying || s.Phase == PhaseComplete {
		return BorderActive
	}
	return BorderNone
}

// CurrentIndex returns the index of the current element for this snapshot,
// or -1 when no element is current. Only an active show has a current
// element.
func (s Snapshot) CurrentIndex(elements []script.Element) int {
	if !s.Phase.IsActive() {
		return -1
	}
	return script.IndexAt(elements, s.Elapsed)
}

// Classify returns the highlight state of every element for this snapshot,
// aligned with the input slice. With highlighting disabled, or outside an
// active show, every element is HighlightNone.
func (s Snapshot) Classify(elements []script.Element, prefs Preferences) []HighlightState {
	states := make([]HighlightState, len(elements))
	if !prefs.Highlighting || !s.Phase.IsActive() {
		return states
	}

	lookahead := ClampLookahead(prefs.Lookahead)
	horizon := s.Elapsed + lookahead
	current := script.IndexAt(elements, s.Elapsed)

	for i, el := range elements {
		switch {
		case i < current:
			states[i] = HighlightPast
		case i == current:
			states[i] = HighlightCurrent
		case el.Offset <= horizon:
			states[i] = HighlightUpcoming
		default:
			states[i] = HighlightFuture
		}
	}
	return states
}

// Classification bundles everything a single render pass needs, computed
// from one snapshot so sibling elements can never disagree about "now".
type Classification struct {
	Snapshot Snapshot
	States   []HighlightState // aligned with the element slice it was built from
	Border   BorderState
	Current  int // index of the current element, -1 when none
}

// ClassifyAll computes a full Classification for one render pass.
func ClassifyAll(snap Snapshot, elements []script.Element, prefs Preferences) Classification {
	return Classification{
		Snapshot: snap,
		States:   snap.Classify(elements, prefs),
		Border:   snap.BorderState(),
		Current:  snap.CurrentIndex(elements),
	}
}
