package scriptview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/tbocquet/callsheet/internal/playback"
	"github.com/tbocquet/callsheet/internal/script"
	"github.com/tbocquet/callsheet/internal/ui"
	"github.com/tbocquet/callsheet/internal/ui/render"
	"github.com/tbocquet/callsheet/internal/ui/styles"
)

// View renders the script panel.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight // border padding
	listHeight := m.listHeight()

	header := m.renderHeader(innerWidth)
	separator := render.Separator(innerWidth)
	rows := m.renderRows(innerWidth, listHeight)
	footer := styles.T().S().Subtle.Render(render.TruncateAndPad(m.footerLine(), innerWidth))

	content := header + "\n" + separator + "\n" + rows + "\n" + footer

	panel := styles.PanelStyle(m.IsFocused())
	if m.cls.Border == playback.BorderActive {
		panel = styles.LivePanelStyle()
	}
	return panel.Width(innerWidth).Render(content)
}

// renderHeader renders the script title with position info on the right.
func (m *Model) renderHeader(innerWidth int) string {
	title := "No script"
	if m.scr != nil && m.scr.Title != "" {
		title = m.scr.Title
	}

	var right string
	if n := len(m.elements); n > 0 {
		if m.cls.Current >= 0 {
			right = fmt.Sprintf("%d/%d", m.cls.Current+1, n)
		} else {
			right = fmt.Sprintf("%d cues", n)
		}
	}

	t := styles.T()
	left := styles.ApplyGradient(render.Truncate(title, max(innerWidth-len(right)-2, 0)), t.Primary, t.Secondary)
	return render.Row(left, t.S().Subtle.Render(right), innerWidth)
}

// renderRows renders the visible window of script elements.
func (m *Model) renderRows(innerWidth, listHeight int) string {
	start, end := m.cursor.VisibleRange(len(m.rows), listHeight)

	lines := make([]string, 0, listHeight)
	for r := start; r < end; r++ {
		idx := m.rows[r]
		lines = append(lines, m.renderRow(m.elements[idx], idx, innerWidth))
	}
	for len(lines) < listHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}
	return strings.Join(lines, "\n")
}

// renderRow renders one element: border mark, time, kind marker,
// department, label.
func (m *Model) renderRow(el script.Element, idx, width int) string {
	t := styles.T()
	state := playback.HighlightNone
	if idx < len(m.cls.States) {
		state = m.cls.States[idx]
	}
	style := highlightStyle(state)

	// Live-run border mark (phase-derived, same for every row)
	mark := "  "
	if m.cls.Border == playback.BorderActive {
		mark = t.S().Error.Render(borderSymbol) + " "
	}

	// Current element marker
	prefix := "  "
	if state == playback.HighlightCurrent {
		prefix = currentSymbol + " "
	}

	timeCol := m.formatTime(el.Offset)

	var kindCol string
	switch el.Kind {
	case script.KindGroup:
		kindCol = groupSymbol + " "
		if m.collapsed[el.ID] {
			kindCol = collapsedSymbol + " "
		}
	case script.KindNote:
		kindCol = noteSymbol + " "
	default:
		kindCol = "  "
	}
	_ = kindCol

	var dept string
	if el.Department != "" {
		padded := render.Pad(el.Department, 5)
		if m.opts.ColorizeDepartments {
			dept = styles.DepartmentStyle(el.Department).Render(padded)
		} else {
			dept = style.Render(padded)
		}
	} else {
		dept = render.EmptyLine(5)
	}

	used := 2 + 2 + lipgloss.Width(timeCol) + 5
	label := render.TruncateAndPad(el.Label, max(width-used-2, 0))

	// The pieces above already add up to exactly width cells
	return mark + prefix + style.Render(timeCol+" ") + dept + style.Render(" "+label)
}

// formatTime renders an element's offset, either as time from curtain or
// as wall-clock time when the sheet carries a curtain time.
func (m *Model) formatTime(offset time.Duration) string {
	if m.opts.ShowClockTimes && m.scr.HasClockTimes() {
		at := m.scr.Start.Add(offset)
		if m.opts.UseMilitaryTime {
			return at.Format("15:04:05")
		}
		return at.Format("3:04:05PM")
	}
	return "[" + formatOffset(offset) + "]"
}

// footerLine summarizes view state in the bottom row.
func (m *Model) footerLine() string {
	if len(m.elements) == 0 {
		return ""
	}

	parts := []string{fmt.Sprintf("%d cues", len(m.elements))}

	if next, ok := m.nextCue(); ok {
		parts = append(parts, fmt.Sprintf("next in %s", formatOffset(next)))
	}

	if m.cls.Snapshot.Phase.IsActive() {
		if m.follow {
			parts = append(parts, "following")
		} else {
			parts = append(parts, "c follow")
		}
	}

	if !m.loadedAt.IsZero() {
		parts = append(parts, "loaded "+humanize.Time(m.loadedAt))
	}

	return strings.Join(parts, " · ")
}

// nextCue returns the time until the first element still ahead of the
// clock, during an active show.
func (m *Model) nextCue() (time.Duration, bool) {
	if !m.cls.Snapshot.Phase.IsActive() {
		return 0, false
	}
	for _, el := range m.elements {
		if el.Offset > m.cls.Snapshot.Elapsed {
			return el.Offset - m.cls.Snapshot.Elapsed, true
		}
	}
	return 0, false
}

// formatOffset formats a duration as m:ss, or h:mm:ss past the hour.
func formatOffset(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	mi := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, mi, s)
	}
	return fmt.Sprintf("%d:%02d", mi, s)
}
