package scriptview

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbocquet/callsheet/internal/playback"
	"github.com/tbocquet/callsheet/internal/script"
	"github.com/tbocquet/callsheet/internal/ui/action"
	"github.com/tbocquet/callsheet/internal/ui/cursor"
	"github.com/tbocquet/callsheet/internal/ui/testutil"
)

// fakeProvider implements Provider with a fixed snapshot, so tests control
// the clock exactly.
type fakeProvider struct {
	scr   *script.Script
	snap  playback.Snapshot
	prefs playback.Preferences
}

func (f *fakeProvider) Script() *script.Script { return f.scr }

func (f *fakeProvider) Elements() []script.Element {
	if f.scr == nil {
		return nil
	}
	return script.DisplayOrder(f.scr.Elements, f.prefs.AutoSortCues)
}

func (f *fakeProvider) Classify() playback.Classification {
	return playback.ClassifyAll(f.snap, f.Elements(), f.prefs)
}

func (f *fakeProvider) Preferences() playback.Preferences { return f.prefs }

func sec(n int) time.Duration { return time.Duration(n) * time.Second }

func elementsN(n int) []script.Element {
	out := make([]script.Element, n)
	for i := range out {
		out[i] = script.Element{
			ID:     string(rune('a' + i%26)),
			Offset: sec(i * 10),
			Label:  "cue",
		}
	}
	return out
}

func newTestView(p *fakeProvider) *Model {
	m := New(p, Options{})
	m.SetSize(60, 20)
	m.Sync()
	return m
}

func playingProvider(elements []script.Element, elapsed time.Duration) *fakeProvider {
	return &fakeProvider{
		scr:   &script.Script{Title: "Gala Night", Elements: elements},
		snap:  playback.Snapshot{Phase: playback.PhasePlaying, Elapsed: elapsed},
		prefs: playback.Preferences{Lookahead: 30 * time.Second, Highlighting: true},
	}
}

func TestViewShowsCurrentMarker(t *testing.T) {
	p := playingProvider([]script.Element{
		{ID: "A", Offset: 0, Label: "House to half"},
		{ID: "B", Offset: sec(5), Label: "House out"},
		{ID: "C", Offset: sec(15), Label: "Curtain up"},
	}, sec(6))
	m := newTestView(p)

	out := testutil.StripANSI(m.View())
	line := testutil.FindLine(out, "House out")
	if line == "" {
		t.Fatal("current element not rendered")
	}
	if !testutil.ContainsLine(line, currentSymbol) {
		t.Errorf("current row missing marker: %q", line)
	}
	if past := testutil.FindLine(out, "House to half"); testutil.ContainsLine(past, currentSymbol) {
		t.Errorf("past row should not carry the marker: %q", past)
	}
}

func TestViewBorderMarksWhilePlaying(t *testing.T) {
	p := playingProvider(elementsN(3), sec(0))
	m := newTestView(p)

	if !testutil.ContainsLine(testutil.StripANSI(m.View()), borderSymbol) {
		t.Error("live border marks missing while playing")
	}

	p.snap.Phase = playback.PhasePaused
	m.Sync()
	if testutil.ContainsLine(testutil.StripANSI(m.View()), borderSymbol) {
		t.Error("border marks should disappear while paused")
	}

	p.snap.Phase = playback.PhaseComplete
	m.Sync()
	if !testutil.ContainsLine(testutil.StripANSI(m.View()), borderSymbol) {
		t.Error("border marks should persist after completion")
	}
}

func TestFollowScrollsToCurrent(t *testing.T) {
	p := playingProvider(elementsN(100), sec(500)) // current index 50
	m := newTestView(p)

	if m.cursor.Offset() == 0 {
		t.Fatal("view did not scroll towards the current element")
	}
	start, end := m.cursor.VisibleRange(100, m.listHeight())
	if 50 < start || 50 >= end {
		t.Errorf("current element 50 not visible in [%d, %d)", start, end)
	}
}

func TestFollowDisabledWhenHighlightingOff(t *testing.T) {
	p := playingProvider(elementsN(100), sec(500))
	p.prefs.Highlighting = false
	m := newTestView(p)

	if m.cursor.Offset() != 0 {
		t.Error("auto-scroll must not run with highlighting disabled")
	}
}

func TestFollowStopsAfterCompletion(t *testing.T) {
	p := playingProvider(elementsN(100), sec(500))
	p.snap.Phase = playback.PhaseComplete
	m := newTestView(p)

	if m.cursor.Offset() != 0 {
		t.Error("auto-scroll must not run once the show is complete")
	}
}

func TestSyncIdempotent(t *testing.T) {
	p := playingProvider(elementsN(100), sec(500))
	m := newTestView(p)

	offset := m.cursor.Offset()
	m.Sync()
	m.Sync()
	if m.cursor.Offset() != offset {
		t.Errorf("offset drifted from %d to %d on repeated sync", offset, m.cursor.Offset())
	}
}

func TestManualScrollDisablesFollow(t *testing.T) {
	p := playingProvider(elementsN(100), sec(0))
	m := newTestView(p)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.Following() {
		t.Fatal("manual scroll should disable follow")
	}

	// c re-enables follow
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if !m.Following() {
		t.Error("c should re-enable follow")
	}
}

func TestEdgeActionEmittedOnce(t *testing.T) {
	p := playingProvider(elementsN(100), sec(0))
	m := New(p, Options{})
	m.SetSize(60, 20)

	cmd := m.Sync()
	if cmd == nil {
		t.Fatal("first sync should report edge state")
	}
	msg := cmd()
	actionMsg, ok := msg.(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msg)
	}
	edges, ok := actionMsg.Action.(EdgeChanged)
	if !ok {
		t.Fatalf("expected EdgeChanged, got %T", actionMsg.Action)
	}
	want := cursor.EdgeState{AtTop: true}
	if edges.State != want {
		t.Errorf("edge state = %+v, want %+v", edges.State, want)
	}

	if m.Sync() != nil {
		t.Error("unchanged edge state should not be re-reported")
	}
}

func TestEdgeStateAllFit(t *testing.T) {
	p := playingProvider(elementsN(3), sec(0))
	m := New(p, Options{})
	m.SetSize(60, 20)

	cmd := m.Sync()
	if cmd == nil {
		t.Fatal("expected edge report")
	}
	actionMsg := cmd().(action.Msg)
	edges := actionMsg.Action.(EdgeChanged)
	if !edges.State.AllFit || !edges.State.AtTop || !edges.State.AtBottom {
		t.Errorf("short list edge state = %+v, want all true", edges.State)
	}
}

func TestGroupCollapsePassthrough(t *testing.T) {
	p := playingProvider([]script.Element{
		{ID: "g1", Offset: 0, Kind: script.KindGroup, Label: "Act One"},
		{ID: "c1", Offset: sec(5), Label: "Curtain up"},
	}, sec(0))
	m := newTestView(p)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on a group row should emit an action")
	}
	actionMsg, ok := cmd().(action.Msg)
	if !ok {
		t.Fatal("expected action.Msg")
	}
	toggle, ok := actionMsg.Action.(ToggleGroupCollapse)
	if !ok {
		t.Fatalf("expected ToggleGroupCollapse, got %T", actionMsg.Action)
	}
	if toggle.ID != "g1" {
		t.Errorf("toggle ID = %q, want g1", toggle.ID)
	}
}

func TestEnterOnCueEmitsNothing(t *testing.T) {
	p := playingProvider(elementsN(5), sec(0))
	m := newTestView(p)

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("enter on a plain cue should not emit an action")
	}
}

func TestScriptReloadResetsView(t *testing.T) {
	p := playingProvider(elementsN(100), sec(500))
	m := newTestView(p)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.Following() {
		t.Fatal("setup: follow should be off")
	}

	p.scr = &script.Script{Title: "Matinee", Elements: elementsN(5)}
	m.Sync()

	if !m.Following() {
		t.Error("loading a new script should restore follow mode")
	}
	if m.cursor.Offset() != 0 {
		t.Error("loading a new script should reset scroll")
	}
}

func TestToggleCollapsedHidesGroupMembers(t *testing.T) {
	p := playingProvider([]script.Element{
		{ID: "g1", Offset: 0, Kind: script.KindGroup, Label: "Act One"},
		{ID: "c1", Offset: sec(5), Label: "Preset check"},
		{ID: "g2", Offset: sec(60), Kind: script.KindGroup, Label: "Act Two"},
		{ID: "c2", Offset: sec(65), Label: "Curtain up"},
	}, sec(0))
	m := newTestView(p)

	m.ToggleCollapsed("g1")
	m.Sync()

	out := testutil.StripANSI(m.View())
	if testutil.ContainsLine(out, "Preset check") {
		t.Error("collapsed group member still visible")
	}
	for _, want := range []string{"Act One", "Act Two", "Curtain up"} {
		if !testutil.ContainsLine(out, want) {
			t.Errorf("%q should stay visible", want)
		}
	}

	m.ToggleCollapsed("g1")
	m.Sync()
	if !testutil.ContainsLine(testutil.StripANSI(m.View()), "Preset check") {
		t.Error("expanding the group should restore its members")
	}
}

func TestViewEmptyScript(t *testing.T) {
	p := &fakeProvider{
		scr:   &script.Script{Title: "Empty"},
		snap:  playback.Snapshot{Phase: playback.PhaseIdle},
		prefs: playback.DefaultPreferences(),
	}
	m := newTestView(p)

	out := testutil.StripANSI(m.View())
	if !testutil.ContainsLine(out, "Empty") {
		t.Error("title missing for empty script")
	}
}

func TestViewZeroSize(t *testing.T) {
	p := playingProvider(elementsN(3), sec(0))
	m := New(p, Options{})
	m.Sync()
	if m.View() != "" {
		t.Error("zero-size view should render nothing")
	}
}
