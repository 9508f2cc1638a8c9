package playback

import (
	"errors"
	"time"

	"github.com/tbocquet/callsheet/internal/script"
)

// Transition errors returned by the service.
var (
	ErrNoScript   = errors.New("playback: no script loaded")
	ErrNotActive  = errors.New("playback: show is not active")
	ErrSafetyHold = errors.New("playback: safety hold in effect")
	ErrNotSafety  = errors.New("playback: no safety hold to release")
)

// Service drives the show clock and answers element classification
// queries. It is the single authority on (phase, elapsed) for a viewed
// script.
type Service interface {
	// Script control
	LoadScript(s *script.Script)
	Script() *script.Script
	Elements() []script.Element // display order per current preferences

	// Transport
	Start() error   // idle or paused -> playing; refused during a safety hold
	Pause() error   // playing -> paused
	Toggle() error  // start/pause convenience
	Hold() error    // playing or paused -> safety
	Release() error // safety -> playing
	Complete() error
	Reset()
	SeekTo(pos time.Duration) error

	// State queries
	Phase() Phase
	Elapsed() time.Duration
	Snapshot() Snapshot
	IsPlaying() bool
	IsPaused() bool
	IsSafety() bool
	IsComplete() bool

	// Classification. Classify computes all per-element state from one
	// snapshot and is what render passes should use; the per-element
	// queries answer one-off lookups with the same semantics.
	Classify() Classification
	HighlightFor(id string) HighlightState
	BorderFor(id string) BorderState
	CurrentIndex() int

	// Preferences
	Preferences() Preferences
	SetPreferences(p Preferences)

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
