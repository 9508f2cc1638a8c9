package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Amber - current element, live run
	Secondary lipgloss.Color // Blue - upcoming elements

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase    lipgloss.Color // Panel backgrounds
	BgCurrent lipgloss.Color // Current-element row highlight

	// Borders
	Border      lipgloss.Color // Unfocused panel borders
	BorderFocus lipgloss.Color // Focused panel borders

	// Status colors
	Success lipgloss.Color // Green - show complete
	Error   lipgloss.Color // Red - live-run border marks
	Warning lipgloss.Color // Orange - safety hold

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Element classification styles
	Past     lipgloss.Style // Already-called elements
	Current  lipgloss.Style // The element the clock has reached
	Upcoming lipgloss.Style // Inside the lookahead window
	Future   lipgloss.Style // Beyond the lookahead window
}

var defaultTheme = Theme{
	// Warm amber accent: the "you are here" color in a dark booth
	Primary:   lipgloss.Color("#f1a208"),
	Secondary: lipgloss.Color("#7aa2f7"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	// Backgrounds
	BgBase:    lipgloss.Color("#1a1a1a"),
	BgCurrent: lipgloss.Color("#303030"),

	// Borders
	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#f1a208"),

	// Status
	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#ff9e64"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),

		Past:   lipgloss.NewStyle().Foreground(t.FgSubtle),
		Current: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.BgCurrent).
			Bold(true),
		Upcoming: lipgloss.NewStyle().Foreground(t.Secondary),
		Future:   lipgloss.NewStyle().Foreground(t.FgMuted),
	}
}
