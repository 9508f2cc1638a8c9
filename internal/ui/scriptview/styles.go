package scriptview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tbocquet/callsheet/internal/playback"
	"github.com/tbocquet/callsheet/internal/ui/styles"
)

const (
	currentSymbol   = "▶"
	groupSymbol     = "▾"
	collapsedSymbol = "▸"
	noteSymbol      = "·"
	borderSymbol    = "┃"
)

// highlightStyle maps a classification to its row style.
func highlightStyle(state playback.HighlightState) lipgloss.Style {
	s := styles.T().S()
	switch state {
	case playback.HighlightPast:
		return s.Past
	case playback.HighlightCurrent:
		return s.Current
	case playback.HighlightUpcoming:
		return s.Upcoming
	case playback.HighlightFuture:
		return s.Future
	default:
		return s.Base
	}
}
