// Package imagerender rasterizes a composed Window[chariot.Glyph] into an
// image using a fixed-width bitmap font, and writes PNG snapshots.
package imagerender

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/phanxgames/chariot"
)

// Rasterizer draws each cell as a filled background rectangle with the
// cell's rune on top.
type Rasterizer struct {
	Face font.Face

	// Cell dimensions in pixels; the baseline sits Ascent pixels below the
	// top of the cell.
	CellW, CellH int
	Ascent       int
}

// New returns a rasterizer using the 7x13 basic font.
func New() *Rasterizer {
	f := basicfont.Face7x13
	return &Rasterizer{
		Face:   f,
		CellW:  f.Advance,
		CellH:  f.Height,
		Ascent: f.Ascent,
	}
}

// Bounds returns the pixel size needed to draw w.
func (r *Rasterizer) Bounds(w chariot.Window[chariot.Glyph]) image.Rectangle {
	s := w.Size()
	return image.Rect(0, 0, s.X*r.CellW, s.Y*r.CellH)
}

// Rasterize draws the composed buffer of w into a new image.
func (r *Rasterizer) Rasterize(w chariot.Window[chariot.Glyph]) *image.RGBA {
	img := image.NewRGBA(r.Bounds(w))
	r.Draw(img, w)
	return img
}

// RasterizeScaled rasterizes w and enlarges the result by an integer factor
// with nearest-neighbor sampling, keeping glyph pixels crisp.
func (r *Rasterizer) RasterizeScaled(w chariot.Window[chariot.Glyph], scale int) *image.RGBA {
	src := r.Rasterize(w)
	if scale <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// Draw renders w into dst with the window's span minimum at dst's origin.
// Transparent backgrounds leave dst untouched; transparent foregrounds skip
// the rune.
func (r *Rasterizer) Draw(dst draw.Image, w chariot.Window[chariot.Glyph]) {
	span := w.Span()
	origin := dst.Bounds().Min
	d := &font.Drawer{Dst: dst, Face: r.Face}
	for p := range span.Points() {
		g, _ := w.DataAt(p)
		lp := p.Sub(span.Min)
		x0 := origin.X + lp.X*r.CellW
		y0 := origin.Y + lp.Y*r.CellH
		cell := image.Rect(x0, y0, x0+r.CellW, y0+r.CellH)

		if g.Bg.A != 0 {
			draw.Draw(dst, cell, image.NewUniform(g.Bg.NRGBA()), image.Point{}, draw.Over)
		}
		if g.Ch == 0 || g.Ch == ' ' || g.Fg.A == 0 {
			continue
		}
		d.Src = image.NewUniform(g.Fg.NRGBA())
		d.Dot = fixed.P(x0, y0+r.Ascent)
		d.DrawString(string(g.Ch))
	}
}

var snapshotSeq atomic.Uint64

// SavePNG writes img to dir as "<timestamp>_<seq>_<label>.png" and returns
// the path. seq counts snapshots written by this process, so repeated labels
// within one second get distinct files. The directory is created if needed.
func SavePNG(dir, label string, img image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	stamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("%s_%04d_%s.png", stamp, snapshotSeq.Add(1), sanitizeLabel(label))
	path := filepath.Join(dir, name)
	if err := writePNG(path, img); err != nil {
		return "", err
	}
	chariot.Logger().Debug("imagerender: snapshot written", "path", path)
	return path, nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
