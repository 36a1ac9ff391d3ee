package chariot

import (
	"slices"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p, q := Pt(3, -2), Pt(1, 5)
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"Add", p.Add(q), Pt(4, 3)},
		{"Sub", p.Sub(q), Pt(2, -7)},
		{"Mul", p.Mul(3), Pt(9, -6)},
		{"Div", Pt(7, -7).Div(2), Pt(3, -3)},
		{"Neg", p.Neg(), Pt(-3, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPointLessEq(t *testing.T) {
	if !Pt(1, 2).LessEq(Pt(1, 2)) {
		t.Error("equal points should be LessEq")
	}
	if !Pt(0, 0).LessEq(Pt(5, 5)) {
		t.Error("(0,0) <= (5,5)")
	}
	if Pt(6, 0).LessEq(Pt(5, 5)) {
		t.Error("(6,0) is not <= (5,5)")
	}
	if Pt(0, 6).LessEq(Pt(5, 5)) {
		t.Error("(0,6) is not <= (5,5)")
	}
}

func TestPointString(t *testing.T) {
	if s := Pt(-1, 12).String(); s != "(-1,12)" {
		t.Errorf("String = %q, want %q", s, "(-1,12)")
	}
}

func TestNeighbors(t *testing.T) {
	n4 := Neighbors4(Pt(5, 5))
	want4 := [4]Point{{6, 5}, {5, 6}, {4, 5}, {5, 4}}
	if n4 != want4 {
		t.Errorf("Neighbors4 = %v, want %v", n4, want4)
	}

	n8 := Neighbors8(Pt(0, 0))
	seen := make(map[Point]bool)
	for _, p := range n8 {
		if p == (Point{}) {
			t.Error("Neighbors8 should not include the center")
		}
		if abs(p.X) > 1 || abs(p.Y) > 1 {
			t.Errorf("Neighbors8 yielded %v, not adjacent", p)
		}
		seen[p] = true
	}
	if len(seen) != 8 {
		t.Errorf("Neighbors8 yielded %d distinct points, want 8", len(seen))
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want []Point
	}{
		{"single", Pt(2, 2), Pt(2, 2), []Point{{2, 2}}},
		{"horizontal", Pt(0, 0), Pt(3, 0), []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical down", Pt(1, 2), Pt(1, 0), []Point{{1, 2}, {1, 1}, {1, 0}}},
		{"diagonal", Pt(0, 0), Pt(2, 2), []Point{{0, 0}, {1, 1}, {2, 2}}},
		{"shallow", Pt(0, 0), Pt(4, 2), []Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Line(tt.a, tt.b))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Line(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLineEndpointsAndContinuity(t *testing.T) {
	a, b := Pt(-3, 7), Pt(9, -4)
	pts := slices.Collect(Line(a, b))
	if pts[0] != a || pts[len(pts)-1] != b {
		t.Fatalf("endpoints = %v..%v, want %v..%v", pts[0], pts[len(pts)-1], a, b)
	}
	for i := 1; i < len(pts); i++ {
		d := pts[i].Sub(pts[i-1])
		if abs(d.X) > 1 || abs(d.Y) > 1 || d == (Point{}) {
			t.Fatalf("step %d: %v -> %v is not a single move", i, pts[i-1], pts[i])
		}
	}
}

func TestLineEarlyStop(t *testing.T) {
	n := 0
	for range Line(Pt(0, 0), Pt(100, 0)) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("visited %d points, want 3", n)
	}
}
