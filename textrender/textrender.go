// Package textrender renders a composed Window[chariot.Glyph] as styled text
// using lipgloss. Runs of cells sharing the same colors are emitted as one
// styled segment. When the output has no color support the text comes out
// plain.
package textrender

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/phanxgames/chariot"
)

// Renderer turns windows into strings. The zero value is not usable; create
// one with New or NewWithRenderer.
type Renderer struct {
	out io.Writer
	lr  *lipgloss.Renderer
}

// New returns a renderer whose color profile is detected from out.
func New(out io.Writer) *Renderer {
	return &Renderer{out: out, lr: lipgloss.NewRenderer(out)}
}

// NewPlain returns a renderer that never emits escape sequences.
func NewPlain(out io.Writer) *Renderer {
	lr := lipgloss.NewRenderer(out)
	lr.SetColorProfile(termenv.Ascii)
	return &Renderer{out: out, lr: lr}
}

// NewWithRenderer returns a renderer writing to out with a caller-configured
// lipgloss renderer, e.g. one with a forced color profile.
func NewWithRenderer(out io.Writer, lr *lipgloss.Renderer) *Renderer {
	return &Renderer{out: out, lr: lr}
}

// Render returns the composed buffer of w, one line per row, top row first.
func (r *Renderer) Render(w chariot.Window[chariot.Glyph]) string {
	span := w.Span()
	var b strings.Builder
	var run strings.Builder
	for y := span.Min.Y; y < span.Max.Y; y++ {
		var cur chariot.Glyph
		for x := span.Min.X; x < span.Max.X; x++ {
			g, _ := w.DataAt(chariot.Pt(x, y))
			if run.Len() > 0 && (g.Fg != cur.Fg || g.Bg != cur.Bg) {
				b.WriteString(r.style(cur).Render(run.String()))
				run.Reset()
			}
			cur = g
			run.WriteRune(g.Rune())
		}
		if run.Len() > 0 {
			b.WriteString(r.style(cur).Render(run.String()))
			run.Reset()
		}
		if y < span.Max.Y-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Write renders w and writes it to the output followed by a newline.
func (r *Renderer) Write(w chariot.Window[chariot.Glyph]) error {
	_, err := io.WriteString(r.out, r.Render(w)+"\n")
	return err
}

func (r *Renderer) style(g chariot.Glyph) lipgloss.Style {
	s := r.lr.NewStyle()
	if g.Fg.A != 0 {
		s = s.Foreground(lipgloss.Color(g.Fg.Hex()))
	}
	if g.Bg.A != 0 {
		s = s.Background(lipgloss.Color(g.Bg.Hex()))
	}
	return s
}
