package playback

import (
	"sync"
	"time"

	"github.com/tbocquet/callsheet/internal/script"
)

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	mu sync.RWMutex

	clock   *Clock
	scr     *script.Script
	display []script.Element // cached display order
	byID    map[string]int   // element id -> display index
	phase   Phase
	prefs   Preferences

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// New creates a new playback service with default preferences and no
// script loaded.
func New() Service {
	return &serviceImpl{
		clock: NewClock(),
		phase: PhaseIdle,
		prefs: DefaultPreferences(),
	}
}

// LoadScript replaces the viewed script and resets the show clock.
func (s *serviceImpl) LoadScript(scr *script.Script) {
	s.mu.Lock()
	s.scr = scr
	s.rebuildDisplayLocked()
	s.phase = PhaseIdle
	s.clock.Reset()
	s.mu.Unlock()

	s.broadcast(func(sub *Subscription) { sub.sendScript(ScriptChange{Script: scr}) })
}

func (s *serviceImpl) rebuildDisplayLocked() {
	if s.scr == nil {
		s.display = nil
		s.byID = nil
		return
	}
	s.display = script.DisplayOrder(s.scr.Elements, s.prefs.AutoSortCues)
	s.byID = make(map[string]int, len(s.display))
	for i, el := range s.display {
		s.byID[el.ID] = i
	}
}

func (s *serviceImpl) Script() *script.Script {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scr
}

func (s *serviceImpl) Elements() []script.Element {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.display
}

// Start begins or resumes the show. A safety hold must be released
// explicitly, never by the ordinary start key.
func (s *serviceImpl) Start() error {
	s.mu.Lock()
	switch s.phase {
	case PhaseSafety:
		s.mu.Unlock()
		return ErrSafetyHold
	case PhasePlaying, PhaseComplete:
		s.mu.Unlock()
		return nil
	case PhaseIdle:
		if s.scr == nil {
			s.mu.Unlock()
			return ErrNoScript
		}
		s.clock.Reset()
	case PhasePaused:
	}
	prev := s.phase
	s.phase = PhasePlaying
	s.clock.Start()
	s.mu.Unlock()

	s.emitPhase(prev, PhasePlaying)
	return nil
}

func (s *serviceImpl) Pause() error {
	s.mu.Lock()
	if s.phase != PhasePlaying {
		s.mu.Unlock()
		return ErrNotActive
	}
	s.phase = PhasePaused
	s.clock.Stop()
	s.mu.Unlock()

	s.emitPhase(PhasePlaying, PhasePaused)
	return nil
}

func (s *serviceImpl) Toggle() error {
	s.mu.RLock()
	phase := s.phase
	s.mu.RUnlock()

	if phase == PhasePlaying {
		return s.Pause()
	}
	return s.Start()
}

// Hold freezes the clock for a safety stop.
func (s *serviceImpl) Hold() error {
	s.mu.Lock()
	if s.phase != PhasePlaying && s.phase != PhasePaused {
		s.mu.Unlock()
		return ErrNotActive
	}
	prev := s.phase
	s.phase = PhaseSafety
	s.clock.Stop()
	s.mu.Unlock()

	s.emitPhase(prev, PhaseSafety)
	return nil
}

// Release lifts a safety hold and resumes the show.
func (s *serviceImpl) Release() error {
	s.mu.Lock()
	if s.phase != PhaseSafety {
		s.mu.Unlock()
		return ErrNotSafety
	}
	s.phase = PhasePlaying
	s.clock.Start()
	s.mu.Unlock()

	s.emitPhase(PhaseSafety, PhasePlaying)
	return nil
}

// Complete ends the show and pins the clock to the end of the script.
func (s *serviceImpl) Complete() error {
	s.mu.Lock()
	if !s.phase.IsActive() {
		s.mu.Unlock()
		return ErrNotActive
	}
	prev := s.phase
	s.phase = PhaseComplete
	s.clock.Stop()
	end := s.scr.Duration()
	s.clock.SeekTo(end)
	s.mu.Unlock()

	s.emitPhase(prev, PhaseComplete)
	s.broadcast(func(sub *Subscription) { sub.sendPosition(PositionChange{Elapsed: end}) })
	return nil
}

// Reset returns to idle with the clock at zero, keeping the script loaded.
func (s *serviceImpl) Reset() {
	s.mu.Lock()
	prev := s.phase
	s.phase = PhaseIdle
	s.clock.Reset()
	s.mu.Unlock()

	if prev != PhaseIdle {
		s.emitPhase(prev, PhaseIdle)
	}
	s.broadcast(func(sub *Subscription) { sub.sendPosition(PositionChange{Elapsed: 0}) })
}

// SeekTo jumps the clock to the given elapsed time.
func (s *serviceImpl) SeekTo(pos time.Duration) error {
	s.mu.Lock()
	if !s.phase.IsActive() {
		s.mu.Unlock()
		return ErrNotActive
	}
	if pos < 0 {
		pos = 0
	}
	s.clock.SeekTo(pos)
	s.mu.Unlock()

	s.broadcast(func(sub *Subscription) { sub.sendPosition(PositionChange{Elapsed: pos}) })
	return nil
}

func (s *serviceImpl) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

func (s *serviceImpl) Elapsed() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clock.Elapsed()
}

// Snapshot captures phase and elapsed time atomically.
func (s *serviceImpl) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Phase: s.phase, Elapsed: s.clock.Elapsed()}
}

func (s *serviceImpl) IsPlaying() bool  { return s.Phase() == PhasePlaying }
func (s *serviceImpl) IsPaused() bool   { return s.Phase() == PhasePaused }
func (s *serviceImpl) IsSafety() bool   { return s.Phase() == PhaseSafety }
func (s *serviceImpl) IsComplete() bool { return s.Phase() == PhaseComplete }

// Classify computes all per-element state from a single snapshot.
func (s *serviceImpl) Classify() Classification {
	s.mu.RLock()
	snap := Snapshot{Phase: s.phase, Elapsed: s.clock.Elapsed()}
	elements := s.display
	prefs := s.prefs
	s.mu.RUnlock()

	return ClassifyAll(snap, elements, prefs)
}

// HighlightFor answers a one-off highlight query for a single element.
func (s *serviceImpl) HighlightFor(id string) HighlightState {
	s.mu.RLock()
	snap := Snapshot{Phase: s.phase, Elapsed: s.clock.Elapsed()}
	elements := s.display
	prefs := s.prefs
	idx, ok := s.byID[id]
	s.mu.RUnlock()

	if !ok {
		return HighlightNone
	}
	return snap.Classify(elements, prefs)[idx]
}

// BorderFor answers a one-off border query for a single element.
func (s *serviceImpl) BorderFor(id string) BorderState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.byID[id]; !ok {
		return BorderNone
	}
	return Snapshot{Phase: s.phase}.BorderState()
}

// CurrentIndex returns the display index of the current element, -1 if none.
func (s *serviceImpl) CurrentIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{Phase: s.phase, Elapsed: s.clock.Elapsed()}
	return snap.CurrentIndex(s.display)
}

func (s *serviceImpl) Preferences() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// SetPreferences replaces the viewer preferences. Display order is
// rebuilt immediately so the next classification sees the new settings.
func (s *serviceImpl) SetPreferences(p Preferences) {
	p.Lookahead = ClampLookahead(p.Lookahead)

	s.mu.Lock()
	s.prefs = p
	s.rebuildDisplayLocked()
	s.mu.Unlock()

	s.broadcast(func(sub *Subscription) { sub.sendPreferences(PreferencesChange{Preferences: p}) })
}

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// Close shuts down the service.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.clock.Stop()
	s.mu.Unlock()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	return nil
}

func (s *serviceImpl) emitPhase(prev, cur Phase) {
	s.broadcast(func(sub *Subscription) {
		sub.sendPhase(PhaseChange{Previous: prev, Current: cur})
	})
}

func (s *serviceImpl) broadcast(send func(*Subscription)) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		send(sub)
	}
}
