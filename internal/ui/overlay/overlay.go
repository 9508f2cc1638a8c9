// Package overlay composites a modal box over a base view without a
// renderer that understands layers. Everything is done on the final
// strings, ANSI-aware.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tbocquet/callsheet/internal/ui/styles"
)

// Compose lays overlay on top of base. Visible overlay cells replace the
// base cells at the same position; rows the overlay leaves blank show
// through.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		// Visible bounds of the overlay row, in display columns
		startCol := len(plain) - len(strings.TrimLeft(plain, " "))
		endCol := startCol + ansi.StringWidth(strings.TrimRight(plain, " ")[startCol:])

		baseLine := baseLines[i]
		if w := ansi.StringWidth(ansi.Strip(baseLine)); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		merged := ansi.Cut(baseLine, 0, startCol) + ansi.Cut(overlayLine, startCol, endCol)
		if endCol < width {
			merged += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[i] = merged
	}

	return strings.Join(baseLines, "\n")
}

// Center wraps content in a focused panel border and positions it in the
// middle of a width x height canvas, ready for Compose.
func Center(content string, width, height int) string {
	box := styles.PanelStyle(true).Padding(1, 2).Render(content)

	boxHeight := lipgloss.Height(box)
	boxWidth := lipgloss.Width(box)
	top := max((height-boxHeight)/2, 0)
	left := max((width-boxWidth)/2, 0)

	pad := strings.Repeat(" ", left)
	var b strings.Builder
	for range top {
		b.WriteByte('\n')
	}
	for i, line := range strings.Split(box, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(pad + line)
	}
	return b.String()
}
