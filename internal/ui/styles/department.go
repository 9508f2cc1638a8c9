package styles

import (
	"hash/fnv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Well-known department abbreviations keep stable hues so a sheet looks
// the same in every booth; anything else gets a hue hashed from its name.
var departmentHues = map[string]float64{
	"LX":    42,  // lighting, amber
	"SND":   210, // sound, blue
	"FLY":   275, // flys, purple
	"SM":    0,   // stage management, red
	"VID":   150, // video, green
	"PYRO":  20,  // pyrotechnics, orange
	"WARDS": 320, // wardrobe, magenta
}

// DepartmentStyle returns a deterministic colored style for a department
// name. The same name always maps to the same color within a run and
// across runs.
func DepartmentStyle(name string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(DepartmentColor(name)).Bold(true)
}

// DepartmentColor returns the color assigned to a department name.
func DepartmentColor(name string) lipgloss.Color {
	upper := strings.ToUpper(strings.TrimSpace(name))

	hue, ok := departmentHues[upper]
	if !ok {
		h := fnv.New32a()
		h.Write([]byte(upper))
		hue = float64(h.Sum32() % 360)
	}

	// Fixed chroma and lightness keep every department readable on the
	// dark background whatever hue the hash lands on.
	c := colorful.Hcl(hue, 0.5, 0.7).Clamped()
	return lipgloss.Color(c.Hex())
}

// ApplyGradient renders text with a horizontal color gradient, blending in
// HCL space for perceptually uniform transitions. Used for the header
// title strip.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Split into grapheme clusters for proper unicode handling
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}
	if len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	c1 := parseHex(from)
	c2 := parseHex(to)

	var b strings.Builder
	for i, cluster := range clusters {
		t := float64(i) / float64(len(clusters)-1)
		blended := c1.BlendHcl(c2, t).Clamped()
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(blended.Hex())).
			Render(cluster))
	}
	return b.String()
}

// parseHex converts a lipgloss hex color, falling back to neutral gray for
// ANSI palette values.
func parseHex(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
}
