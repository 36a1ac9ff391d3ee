package chariot

import (
	"iter"
	"strconv"
)

// Point is an integer 2D coordinate. It doubles as a vector for offsets and
// sizes throughout the API.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by k.
func (p Point) Mul(k int) Point { return Point{p.X * k, p.Y * k} }

// Div returns p divided by k, truncating toward zero.
func (p Point) Div(k int) Point { return Point{p.X / k, p.Y / k} }

// Neg returns -p.
func (p Point) Neg() Point { return Point{-p.X, -p.Y} }

// LessEq reports whether both coordinates of p are <= those of q.
func (p Point) LessEq(q Point) bool { return p.X <= q.X && p.Y <= q.Y }

// String formats the point as "(x,y)".
func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

var (
	dirs4 = [4]Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	dirs8 = [8]Point{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
)

// Neighbors4 returns the orthogonal neighbors of p, counter-clockwise from +X.
func Neighbors4(p Point) [4]Point {
	var out [4]Point
	for i, d := range dirs4 {
		out[i] = p.Add(d)
	}
	return out
}

// Neighbors8 returns all eight neighbors of p, counter-clockwise from +X.
func Neighbors8(p Point) [8]Point {
	var out [8]Point
	for i, d := range dirs8 {
		out[i] = p.Add(d)
	}
	return out
}

// Line yields the Bresenham line from a to b, both endpoints included.
func Line(a, b Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		dx := abs(b.X - a.X)
		dy := -abs(b.Y - a.Y)
		sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
		err := dx + dy
		p := a
		for {
			if !yield(p) {
				return
			}
			if p == b {
				return
			}
			e2 := 2 * err
			if e2 >= dy {
				err += dy
				p.X += sx
			}
			if e2 <= dx {
				err += dx
				p.Y += sy
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
