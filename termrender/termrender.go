// Package termrender draws a composed Window[chariot.Glyph] onto a tcell
// screen and maps screen cells back to windows.
package termrender

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/chariot"
)

// Renderer copies a window's composed buffer onto a tcell screen. The
// window's span minimum lands on Origin; cells that fall off the screen are
// skipped.
type Renderer struct {
	screen tcell.Screen
	Origin chariot.Point
}

// New returns a renderer drawing to screen at the top-left corner.
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Screen returns the underlying tcell screen.
func (r *Renderer) Screen() tcell.Screen { return r.screen }

// Draw writes every composed cell of w to the screen and returns the number
// of cells written. Call Recompute on w first; Draw does not.
func (r *Renderer) Draw(w chariot.Window[chariot.Glyph]) int {
	sw, sh := r.screen.Size()
	span := w.Span()
	written := 0
	for p := range span.Points() {
		sp := p.Sub(span.Min).Add(r.Origin)
		if sp.X < 0 || sp.Y < 0 || sp.X >= sw || sp.Y >= sh {
			continue
		}
		g, _ := w.DataAt(p)
		r.screen.SetContent(sp.X, sp.Y, g.Rune(), nil, Style(g))
		written++
	}
	return written
}

// Print writes s directly to the screen starting at (x, y), bypassing the
// window tree. Used for overlays such as frame counters.
func (r *Renderer) Print(x, y int, s string, fg, bg chariot.Color) {
	style := tcell.StyleDefault.Foreground(Color(fg)).Background(Color(bg))
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// Show flushes pending changes to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// ScreenToWindow resolves the screen cell (x, y) to the window of root's
// subtree drawn there, and the point inside that window.
func (r *Renderer) ScreenToWindow(root chariot.Window[chariot.Glyph], x, y int) (chariot.Window[chariot.Glyph], chariot.Point, bool) {
	p := chariot.Pt(x, y).Sub(r.Origin).Add(root.Span().Min)
	return root.Select(p)
}

// Style converts a glyph's colors to a tcell style.
func Style(g chariot.Glyph) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(g.Fg)).Background(Color(g.Bg))
}

// Color converts c to a true-color tcell color. Fully transparent colors
// become the terminal default.
func Color(c chariot.Color) tcell.Color {
	if c.A == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
