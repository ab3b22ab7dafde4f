// Package theme provides the color palette handed to widgets while drawing,
// plus a YAML palette loader for user-defined themes.
package theme

import "github.com/glacier-ui/glacier/pkg/graphics"

// Palette is the set of base colors a theme derives widget styles from.
type Palette struct {
	Background graphics.Color
	Text       graphics.Color
	Primary    graphics.Color
	Success    graphics.Color
	Danger     graphics.Color
}

// Theme is a named palette.
type Theme struct {
	Name    string
	Palette Palette
}

// Light is the default light theme.
var Light = Theme{
	Name: "light",
	Palette: Palette{
		Background: graphics.ColorWhite,
		Text:       graphics.RGB(0x21, 0x21, 0x21),
		Primary:    graphics.RGB(0x3f, 0x51, 0xb5),
		Success:    graphics.RGB(0x2e, 0x7d, 0x32),
		Danger:     graphics.RGB(0xc6, 0x28, 0x28),
	},
}

// Dark is the default dark theme.
var Dark = Theme{
	Name: "dark",
	Palette: Palette{
		Background: graphics.RGB(0x20, 0x22, 0x25),
		Text:       graphics.RGB(0xe0, 0xe0, 0xe0),
		Primary:    graphics.RGB(0x7a, 0x8a, 0xff),
		Success:    graphics.RGB(0x66, 0xbb, 0x6a),
		Danger:     graphics.RGB(0xef, 0x53, 0x50),
	},
}
