package chariot

import "iter"

// Rect is an axis-aligned, half-open integer rectangle: a point p is inside
// when Min.X <= p.X < Max.X and Min.Y <= p.Y < Max.Y. Min is the bottom-left
// corner and Max the exclusive top-right corner.
//
// Construct with NewRect or RectOfSize so that Min <= Max on both axes.
// A rectangle with zero width or height is legal and contains no points.
type Rect struct {
	Min, Max Point
}

// NewRect returns the rectangle spanned by two corners in any order.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{min(p1.X, p2.X), min(p1.Y, p2.Y)},
		Max: Point{max(p1.X, p2.X), max(p1.Y, p2.Y)},
	}
}

// RectOfSize returns the rectangle from the origin to size.
func RectOfSize(size Point) Rect {
	return NewRect(Point{}, size)
}

// Size returns Max-Min.
func (r Rect) Size() Point { return r.Max.Sub(r.Min) }

// Area returns the number of points inside r.
func (r Rect) Area() int {
	s := r.Size()
	return s.X * s.Y
}

// Empty reports whether r contains no points.
func (r Rect) Empty() bool { return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y }

// Add translates r by p.
func (r Rect) Add(p Point) Rect { return Rect{r.Min.Add(p), r.Max.Add(p)} }

// Sub translates r by -p.
func (r Rect) Sub(p Point) Rect { return Rect{r.Min.Sub(p), r.Max.Sub(p)} }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// OnBoundary reports whether p is inside r and on its outermost ring.
func (r Rect) OnBoundary(p Point) bool {
	if !r.Contains(p) {
		return false
	}
	return p.X == r.Min.X || p.X == r.Max.X-1 || p.Y == r.Min.Y || p.Y == r.Max.Y-1
}

// OnCorner reports whether p is one of the four corner points of r.
func (r Rect) OnCorner(p Point) bool {
	if !r.Contains(p) {
		return false
	}
	return (p.X == r.Min.X || p.X == r.Max.X-1) && (p.Y == r.Min.Y || p.Y == r.Max.Y-1)
}

// Intersects reports whether r and o share at least one point.
func (r Rect) Intersects(o Rect) bool {
	_, ok := r.Intersection(o)
	return ok
}

// Intersection returns the overlap of r and o. The boolean is false when the
// overlap contains no points.
func (r Rect) Intersection(o Rect) (Rect, bool) {
	out := Rect{
		Min: Point{max(r.Min.X, o.Min.X), max(r.Min.Y, o.Min.Y)},
		Max: Point{min(r.Max.X, o.Max.X), min(r.Max.Y, o.Max.Y)},
	}
	if out.Empty() {
		return Rect{}, false
	}
	return out, true
}

// Index converts a point inside r to its row-major buffer index.
func (r Rect) Index(p Point) (int, bool) {
	if !r.Contains(p) {
		return 0, false
	}
	return (p.X - r.Min.X) + (r.Max.X-r.Min.X)*(p.Y-r.Min.Y), true
}

// Point is the inverse of Index.
func (r Rect) Point(i int) (Point, bool) {
	if i < 0 || i >= r.Area() {
		return Point{}, false
	}
	w := r.Max.X - r.Min.X
	return Point{r.Min.X + i%w, r.Min.Y + i/w}, true
}

// Points yields every point of r in row-major order, matching Index.
func (r Rect) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if r.Empty() {
			return
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if !yield(Point{x, y}) {
					return
				}
			}
		}
	}
}

// Boundary yields the outer ring of r clockwise starting at Min: the bottom
// edge left to right, the right edge bottom to top, the top edge right to
// left and the left edge top to bottom. Every ring point is yielded once.
func (r Rect) Boundary() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if r.Empty() {
			return
		}
		l, b := r.Min.X, r.Min.Y
		rt, t := r.Max.X-1, r.Max.Y-1

		// Single row or column: walk it once.
		if b == t {
			for x := l; x <= rt; x++ {
				if !yield(Point{x, b}) {
					return
				}
			}
			return
		}
		if l == rt {
			for y := b; y <= t; y++ {
				if !yield(Point{l, y}) {
					return
				}
			}
			return
		}

		for x := l; x < rt; x++ {
			if !yield(Point{x, b}) {
				return
			}
		}
		for y := b; y < t; y++ {
			if !yield(Point{rt, y}) {
				return
			}
		}
		for x := rt; x > l; x-- {
			if !yield(Point{x, t}) {
				return
			}
		}
		for y := t; y > b; y-- {
			if !yield(Point{l, y}) {
				return
			}
		}
	}
}

// String formats r as "[(x0,y0):(x1,y1)]".
func (r Rect) String() string {
	return "[" + r.Min.String() + ":" + r.Max.String() + "]"
}
