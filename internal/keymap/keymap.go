// Package keymap documents the application's key bindings.
package keymap

// Binding describes a single key binding for help generation.
type Binding struct {
	Keys        []string
	Description string
	Context     string // "global", "transport", "view"
}

// All contains every key binding, in help display order.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, "Quit", "global"},
	{[]string{"?"}, "Show help", "global"},

	// Transport
	{[]string{"space"}, "Start / pause", "transport"},
	{[]string{"S"}, "Safety hold / release", "transport"},
	{[]string{"C"}, "Mark show complete", "transport"},
	{[]string{"R"}, "Reset show clock", "transport"},
	{[]string{"t"}, "Jump to time", "transport"},

	// Script view
	{[]string{"j", "k"}, "Scroll", "view"},
	{[]string{"g", "G"}, "Top / bottom", "view"},
	{[]string{"ctrl+d", "ctrl+u"}, "Half page", "view"},
	{[]string{"c"}, "Follow the show clock", "view"},
	{[]string{"enter"}, "Collapse / expand group", "view"},
	{[]string{"h"}, "Toggle highlighting", "view"},
	{[]string{"a"}, "Toggle cue auto-sort", "view"},
	{[]string{"+", "-"}, "Adjust lookahead window", "view"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
