package chariot

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a straight-alpha 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 0xFF}
}

// Lerp interpolates from c toward to by t, clamped to [0, 1].
func (c Color) Lerp(to Color, t float64) Color {
	t = math.Min(math.Max(t, 0), 1)
	mix := func(a, b uint8) uint8 {
		return clampByte(float64(a)*(1-t) + float64(b)*t)
	}
	return Color{mix(c.R, to.R), mix(c.G, to.G), mix(c.B, to.B), mix(c.A, to.A)}
}

// Scale multiplies every channel, alpha included, by k.
func (c Color) Scale(k float64) Color {
	return Color{
		clampByte(float64(c.R) * k),
		clampByte(float64(c.G) * k),
		clampByte(float64(c.B) * k),
		clampByte(float64(c.A) * k),
	}
}

// NRGBA converts c for use with the image packages.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex formats the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func clampByte(v float64) uint8 {
	return uint8(math.Min(math.Max(math.Round(v), 0), 255))
}

// Palette. Names follow common color dictionaries.
var (
	ColorBlack      = RGB(0x00, 0x00, 0x00)
	ColorWhite      = RGB(0xFF, 0xFF, 0xFF)
	ColorGrey       = RGB(0x6F, 0x6F, 0x6F)
	ColorDarkGrey   = RGB(0x1F, 0x1F, 0x1F)
	ColorJade       = RGB(0x00, 0xA8, 0x6B)
	ColorMint       = RGB(0x3E, 0xB4, 0x89)
	ColorGold       = RGB(0xA5, 0x7C, 0x00)
	ColorIron       = RGB(0xA1, 0x9D, 0x94)
	ColorMistyRose  = RGB(0xFF, 0xE4, 0xE1)
	ColorRoseGarnet = RGB(0x96, 0x01, 0x45)
	ColorSapphire   = RGB(0x0F, 0x52, 0xBA)
	ColorSaffron    = RGB(0xF4, 0xC4, 0x30)
	ColorTangelo    = RGB(0xF9, 0x4D, 0x00)
	ColorLavender   = RGB(0xE6, 0xE6, 0xFA)
	ColorForest     = RGB(0x5F, 0xA7, 0x77)
)

// Glyph is a terminal-style cell: a rune with foreground and background
// colors. The zero Glyph is a blank cell on a transparent background.
type Glyph struct {
	Ch rune
	Fg Color
	Bg Color
}

// NewGlyph returns a Glyph.
func NewGlyph(ch rune, fg, bg Color) Glyph {
	return Glyph{Ch: ch, Fg: fg, Bg: bg}
}

// Rune returns the glyph's rune, with the zero rune shown as a space.
func (g Glyph) Rune() rune {
	if g.Ch == 0 {
		return ' '
	}
	return g.Ch
}

// String returns the glyph's rune. Dump uses it to draw a buffer as text.
func (g Glyph) String() string { return string(g.Rune()) }

// WriteString writes s into w's own buffer starting at p and moving right,
// one rune per cell. It returns the number of cells written; runes falling
// outside the window are dropped.
func WriteString(w Window[Glyph], p Point, s string, fg, bg Color) int {
	written := 0
	for _, r := range s {
		if w.Set(p, NewGlyph(r, fg, bg)) {
			written++
		}
		p.X++
	}
	return written
}

// DrawBorder writes c on every cell of the window's outer ring.
func DrawBorder[C comparable](w Window[C], c C) {
	for p := range w.Span().Boundary() {
		w.Set(p, c)
	}
}

// DrawLine writes c along the Bresenham line from a to b and returns the
// number of cells that landed inside the window.
func DrawLine[C comparable](w Window[C], a, b Point, c C) int {
	written := 0
	for p := range Line(a, b) {
		if w.Set(p, c) {
			written++
		}
	}
	return written
}
