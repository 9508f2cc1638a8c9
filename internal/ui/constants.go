// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of rows to keep visible above/below the
	// cursor when the operator scrolls by hand.
	ScrollMargin = 3

	// FollowLookback is the number of rows of already-called context kept
	// above the current element when the view follows the show clock.
	FollowLookback = 3

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// HeaderHeight is the space for header + separator in panels.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead (border + header + separator).
	// Used to calculate available list height: listHeight = panelHeight - PanelOverhead
	PanelOverhead = BorderHeight + HeaderHeight

	// ClockBarHeight is the height of the clock strip including its border.
	ClockBarHeight = 3

	// MinTimeColumnWidth fits "[h:mm:ss]" plus a trailing space.
	MinTimeColumnWidth = 10
)
