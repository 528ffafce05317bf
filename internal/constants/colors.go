// Package constants defines the shared palette used by every component.
package constants

import "github.com/charmbracelet/lipgloss"

// Color is a palette entry. CSS is used in rendered HTML; Terminal is the
// closest opaque match for previews drawn with lipgloss.
type Color struct {
	CSS      string
	Terminal lipgloss.Color
}

// String returns the CSS value so a Color can be dropped into a declaration.
func (c Color) String() string {
	return c.CSS
}

// Colors is the library palette.
var Colors = struct {
	Black             Color
	Gray700           Color
	Gray500           Color
	Gray300           Color
	TransparentGray15 Color
	TransparentGray35 Color
	Primary           Color
	White             Color
}{
	Black:   Color{CSS: "hsl(0deg 0% 0%)", Terminal: lipgloss.Color("#000000")},
	Gray700: Color{CSS: "hsl(0deg 0% 40%)", Terminal: lipgloss.Color("#666666")},
	Gray500: Color{CSS: "hsl(0deg 0% 50%)", Terminal: lipgloss.Color("#808080")},
	Gray300: Color{CSS: "hsl(0deg 0% 75%)", Terminal: lipgloss.Color("#BFBFBF")},

	// Translucent greys are flattened onto a dark terminal background.
	TransparentGray15: Color{CSS: "hsl(0deg 0% 50% / 0.15)", Terminal: lipgloss.Color("#3A3A3A")},
	TransparentGray35: Color{CSS: "hsl(0deg 0% 50% / 0.35)", Terminal: lipgloss.Color("#595959")},

	Primary: Color{CSS: "hsl(240deg 80% 60%)", Terminal: lipgloss.Color("#4747EB")},
	White:   Color{CSS: "hsl(0deg 0% 100%)", Terminal: lipgloss.Color("#FFFFFF")},
}
