package overlay

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Theme colors for the page chrome.
var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorWhite       = Color{1, 1, 1, 1}

	ColorNavBg       = Color{0.06, 0.06, 0.08, 0.92}
	ColorMenuBg      = Color{0.1, 0.1, 0.13, 0.96}
	ColorMainBg      = Color{0.97, 0.96, 0.93, 1}
	ColorPanelBorder = Color{0.3, 0.3, 0.4, 1}
	ColorText        = Color{0.9, 0.9, 0.9, 1}
	ColorTextDark    = Color{0.12, 0.12, 0.14, 1}
	ColorTextDim     = Color{0.5, 0.5, 0.6, 1}
	ColorProgressBg  = Color{1, 1, 1, 0.15}
	ColorProgress    = Color{0.2, 0.6, 0.9, 1}
	ColorError       = Color{0.85, 0.25, 0.2, 1}
)

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1.0,
	}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Lighten returns a lighter version of the color.
func (c Color) Lighten(factor float32) Color {
	return Color{
		R: c.R + (1-c.R)*factor,
		G: c.G + (1-c.G)*factor,
		B: c.B + (1-c.B)*factor,
		A: c.A,
	}
}
