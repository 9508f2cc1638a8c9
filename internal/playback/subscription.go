package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	PhaseChanged       <-chan PhaseChange
	PositionChanged    <-chan PositionChange
	ScriptChanged      <-chan ScriptChange
	PreferencesChanged <-chan PreferencesChange
	Done               <-chan struct{}

	// Internal write channels
	phaseCh    chan PhaseChange
	positionCh chan PositionChange
	scriptCh   chan ScriptChange
	prefsCh    chan PreferencesChange
	doneCh     chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		phaseCh:    make(chan PhaseChange, eventBufferSize),
		positionCh: make(chan PositionChange, eventBufferSize),
		scriptCh:   make(chan ScriptChange, eventBufferSize),
		prefsCh:    make(chan PreferencesChange, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.PhaseChanged = s.phaseCh
	s.PositionChanged = s.positionCh
	s.ScriptChanged = s.scriptCh
	s.PreferencesChanged = s.prefsCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendPhase sends a phase change event (non-blocking).
func (s *Subscription) sendPhase(e PhaseChange) {
	select {
	case s.phaseCh <- e:
	default:
		// Drop if buffer full
	}
}

// sendPosition sends a position change event (non-blocking).
func (s *Subscription) sendPosition(e PositionChange) {
	select {
	case s.positionCh <- e:
	default:
	}
}

// sendScript sends a script change event (non-blocking).
func (s *Subscription) sendScript(e ScriptChange) {
	select {
	case s.scriptCh <- e:
	default:
	}
}

// sendPreferences sends a preferences change event (non-blocking).
func (s *Subscription) sendPreferences(e PreferencesChange) {
	select {
	case s.prefsCh <- e:
	default:
	}
}
