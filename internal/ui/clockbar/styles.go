package clockbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tbocquet/callsheet/internal/ui/styles"
)

var (
	barStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.T().Border)

	liveBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(styles.T().Error)

	safetyBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(styles.T().Warning)
)
