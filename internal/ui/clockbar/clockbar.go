// Package clockbar renders the single-line show clock strip: phase
// glyph, elapsed over total, a progress bar, and the wall-clock time.
package clockbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tbocquet/callsheet/internal/playback"
	"github.com/tbocquet/callsheet/internal/ui/styles"
)

const (
	idleSymbol     = "■"
	playSymbol     = "▶"
	pauseSymbol    = "⏸"
	safetySymbol   = "⛑"
	completeSymbol = "✓"
)

// State holds everything needed to render the clock strip.
type State struct {
	Phase    playback.Phase
	Elapsed  time.Duration
	Total    time.Duration
	WallTime time.Time // zero value hides the wall clock
	Military bool
}

// NewState builds a State from the playback service.
func NewState(svc playback.Service, showWallClock, military bool) State {
	snap := svc.Snapshot()
	s := State{
		Phase:    snap.Phase,
		Elapsed:  snap.Elapsed,
		Military: military,
	}
	if scr := svc.Script(); scr != nil {
		s.Total = scr.Duration()
	}
	if showWallClock {
		s.WallTime = time.Now()
	}
	return s
}

// Render returns the clock strip for the given width, bordered.
func Render(s State, width int) string {
	innerWidth := max(width-2, 0)
	if innerWidth == 0 {
		return ""
	}

	t := styles.T()

	glyph, glyphStyle := phaseGlyph(s.Phase)
	left := glyphStyle.Render(glyph) + " " + t.S().Base.Render(timesLine(s))

	if s.Phase == playback.PhaseSafety {
		left += "  " + t.S().Warning.Bold(true).Render("SAFETY HOLD")
	}

	var right string
	if !s.WallTime.IsZero() {
		layout := "3:04:05PM"
		if s.Military {
			layout = "15:04:05"
		}
		right = t.S().Muted.Render(s.WallTime.Format(layout))
	}

	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if bar := progressBar(s, gap-4); bar != "" {
		left += "  " + bar
		gap = innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	}
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + right

	border := barStyle
	switch s.Phase {
	case playback.PhasePlaying, playback.PhaseComplete:
		border = liveBarStyle
	case playback.PhaseSafety:
		border = safetyBarStyle
	}
	return border.Width(innerWidth).Render(line)
}

func phaseGlyph(p playback.Phase) (string, lipgloss.Style) {
	t := styles.T()
	switch p {
	case playback.PhasePlaying:
		return playSymbol, t.S().Success
	case playback.PhasePaused:
		return pauseSymbol, t.S().Muted
	case playback.PhaseSafety:
		return safetySymbol, t.S().Warning
	case playback.PhaseComplete:
		return completeSymbol, t.S().Success
	default:
		return idleSymbol, t.S().Subtle
	}
}

func timesLine(s State) string {
	if s.Total > 0 {
		return fmt.Sprintf("%s / %s", formatDuration(s.Elapsed), formatDuration(s.Total))
	}
	return formatDuration(s.Elapsed)
}

// progressBar renders elapsed progress over the show's duration, or
// nothing when there is no duration or no room.
func progressBar(s State, width int) string {
	if s.Total <= 0 || width < 5 || s.Phase == playback.PhaseIdle {
		return ""
	}
	ratio := float64(s.Elapsed) / float64(s.Total)
	filled := min(int(float64(width)*ratio), width)
	if filled < 0 {
		filled = 0
	}
	t := styles.T()
	return t.S().Base.Render(strings.Repeat("━", filled)) +
		t.S().Subtle.Render(strings.Repeat("─", width-filled))
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	sec := (d % time.Minute) / time.Second
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}
