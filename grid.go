package chariot

import (
	"fmt"
	"iter"
)

// Grid is a dense row-major buffer of cells addressed through a Rect span.
// Point access outside the span reports absence instead of panicking.
type Grid[C any] struct {
	cells []C
	span  Rect
}

// NewGrid allocates a grid covering span with every cell set to fill.
func NewGrid[C any](span Rect, fill C) *Grid[C] {
	cells := make([]C, span.Area())
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[C]{cells: cells, span: span}
}

// Span returns the addressable region of the grid.
func (g *Grid[C]) Span() Rect { return g.span }

// Len returns the number of cells.
func (g *Grid[C]) Len() int { return len(g.cells) }

// Contains reports whether p is addressable.
func (g *Grid[C]) Contains(p Point) bool { return g.span.Contains(p) }

// Get returns the cell at p.
func (g *Grid[C]) Get(p Point) (C, bool) {
	i, ok := g.span.Index(p)
	if !ok {
		var zero C
		return zero, false
	}
	return g.cells[i], true
}

// Ptr returns a pointer to the cell at p, or nil when p is outside the span.
// The pointer is invalidated by anything that reallocates the grid.
func (g *Grid[C]) Ptr(p Point) *C {
	i, ok := g.span.Index(p)
	if !ok {
		return nil
	}
	return &g.cells[i]
}

// Set stores c at p and reports whether p was addressable.
func (g *Grid[C]) Set(p Point, c C) bool {
	i, ok := g.span.Index(p)
	if !ok {
		return false
	}
	g.cells[i] = c
	return true
}

// Fill sets every cell to c.
func (g *Grid[C]) Fill(c C) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// FillRect sets every cell of r that lies inside the span to c and returns the
// number of cells written.
func (g *Grid[C]) FillRect(r Rect, c C) int {
	clip, ok := g.span.Intersection(r)
	if !ok {
		return 0
	}
	w := g.span.Size().X
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		row := (y-g.span.Min.Y)*w - g.span.Min.X
		for x := clip.Min.X; x < clip.Max.X; x++ {
			g.cells[row+x] = c
		}
	}
	return clip.Area()
}

// CopyFrom overwrites g with the contents of src. Both grids must cover the
// same span; anything else is a programming error and panics.
func (g *Grid[C]) CopyFrom(src *Grid[C]) {
	if src.span != g.span || len(src.cells) != len(g.cells) {
		panic(fmt.Sprintf("chariot: grid copy between mismatched spans %v and %v", src.span, g.span))
	}
	copy(g.cells, src.cells)
}

// Blit copies the cells of src that lie inside region, src's span and g's
// span, keeping their coordinates. It returns the number of cells copied.
func (g *Grid[C]) Blit(src *Grid[C], region Rect) int {
	clip, ok := g.span.Intersection(src.span)
	if !ok {
		return 0
	}
	if clip, ok = clip.Intersection(region); !ok {
		return 0
	}
	dw, sw := g.span.Size().X, src.span.Size().X
	n := clip.Size().X
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		di := (y-g.span.Min.Y)*dw + clip.Min.X - g.span.Min.X
		si := (y-src.span.Min.Y)*sw + clip.Min.X - src.span.Min.X
		copy(g.cells[di:di+n], src.cells[si:si+n])
	}
	return clip.Area()
}

// Clone returns a deep copy of g.
func (g *Grid[C]) Clone() *Grid[C] {
	cells := make([]C, len(g.cells))
	copy(cells, g.cells)
	return &Grid[C]{cells: cells, span: g.span}
}

// All yields every point of the span with its cell, in row-major order.
func (g *Grid[C]) All() iter.Seq2[Point, C] {
	return func(yield func(Point, C) bool) {
		i := 0
		for p := range g.span.Points() {
			if !yield(p, g.cells[i]) {
				return
			}
			i++
		}
	}
}
