package chariot

import (
	"strings"
	"testing"
)

func TestNewGridFilled(t *testing.T) {
	g := NewGrid(NewRect(Pt(0, 0), Pt(4, 3)), 'x')
	if g.Len() != 12 {
		t.Fatalf("Len = %d, want 12", g.Len())
	}
	for p, c := range g.All() {
		if c != 'x' {
			t.Errorf("cell %v = %q, want 'x'", p, c)
		}
	}
}

func TestGridGetSet(t *testing.T) {
	g := NewGrid(NewRect(Pt(2, 2), Pt(5, 5)), 0)
	if !g.Set(Pt(3, 4), 7) {
		t.Fatal("Set inside should succeed")
	}
	if c, ok := g.Get(Pt(3, 4)); !ok || c != 7 {
		t.Errorf("Get = %d, %v; want 7, true", c, ok)
	}
	if g.Set(Pt(0, 0), 1) {
		t.Error("Set outside should fail")
	}
	if _, ok := g.Get(Pt(5, 5)); ok {
		t.Error("Get at Max should fail")
	}
	if g.Len() != 9 {
		t.Error("out-of-range Set must not resize")
	}
}

func TestGridPtr(t *testing.T) {
	g := NewGrid(RectOfSize(Pt(2, 2)), 1)
	p := g.Ptr(Pt(1, 1))
	if p == nil {
		t.Fatal("Ptr inside should not be nil")
	}
	*p = 9
	if c, _ := g.Get(Pt(1, 1)); c != 9 {
		t.Errorf("write through Ptr not visible, got %d", c)
	}
	if g.Ptr(Pt(2, 0)) != nil {
		t.Error("Ptr outside should be nil")
	}
}

func TestGridFillRectClipped(t *testing.T) {
	g := NewGrid(RectOfSize(Pt(4, 4)), '.')
	n := g.FillRect(NewRect(Pt(2, 2), Pt(10, 10)), '#')
	if n != 4 {
		t.Errorf("FillRect wrote %d, want 4", n)
	}
	for p, c := range g.All() {
		want := '.'
		if p.X >= 2 && p.Y >= 2 {
			want = '#'
		}
		if c != want {
			t.Errorf("cell %v = %q, want %q", p, c, want)
		}
	}
	if n := g.FillRect(NewRect(Pt(5, 5), Pt(6, 6)), '#'); n != 0 {
		t.Errorf("disjoint FillRect wrote %d, want 0", n)
	}
}

func TestGridFillRectOffsetSpan(t *testing.T) {
	g := NewGrid(NewRect(Pt(-2, -2), Pt(2, 2)), 0)
	g.FillRect(NewRect(Pt(-1, -1), Pt(1, 1)), 1)
	count := 0
	for p, c := range g.All() {
		if c == 1 {
			count++
			if p.X < -1 || p.X > 0 || p.Y < -1 || p.Y > 0 {
				t.Errorf("unexpected fill at %v", p)
			}
		}
	}
	if count != 4 {
		t.Errorf("filled %d cells, want 4", count)
	}
}

func TestGridCopyFrom(t *testing.T) {
	span := RectOfSize(Pt(3, 3))
	src := NewGrid(span, 'a')
	src.Set(Pt(1, 1), 'b')
	dst := NewGrid(span, 'z')
	dst.CopyFrom(src)
	if c, _ := dst.Get(Pt(1, 1)); c != 'b' {
		t.Errorf("copied cell = %q, want 'b'", c)
	}
	src.Set(Pt(0, 0), 'q')
	if c, _ := dst.Get(Pt(0, 0)); c != 'a' {
		t.Error("CopyFrom should not alias the source")
	}
}

func TestGridCopyFromMismatchPanics(t *testing.T) {
	dst := NewGrid(RectOfSize(Pt(3, 3)), 0)
	src := NewGrid(RectOfSize(Pt(3, 4)), 0)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for mismatched spans")
		}
		if msg, _ := r.(string); !strings.HasPrefix(msg, "chariot: grid copy") {
			t.Errorf("panic = %v", r)
		}
	}()
	dst.CopyFrom(src)
}

func TestGridBlit(t *testing.T) {
	src := NewGrid(NewRect(Pt(0, 0), Pt(3, 3)), 's')
	dst := NewGrid(NewRect(Pt(1, 1), Pt(5, 5)), 'd')
	n := dst.Blit(src, NewRect(Pt(0, 0), Pt(10, 10)))
	if n != 4 {
		t.Errorf("Blit copied %d, want 4", n)
	}
	for p, c := range dst.All() {
		want := 'd'
		if p.X < 3 && p.Y < 3 {
			want = 's'
		}
		if c != want {
			t.Errorf("cell %v = %q, want %q", p, c, want)
		}
	}
}

func TestGridBlitRegion(t *testing.T) {
	src := NewGrid(RectOfSize(Pt(4, 4)), 1)
	dst := NewGrid(RectOfSize(Pt(4, 4)), 0)
	if n := dst.Blit(src, NewRect(Pt(1, 1), Pt(2, 3))); n != 2 {
		t.Errorf("Blit copied %d, want 2", n)
	}
	if c, _ := dst.Get(Pt(1, 2)); c != 1 {
		t.Error("cell inside region should be copied")
	}
	if c, _ := dst.Get(Pt(2, 2)); c != 0 {
		t.Error("cell outside region should be untouched")
	}
}

func TestGridClone(t *testing.T) {
	g := NewGrid(RectOfSize(Pt(2, 2)), 5)
	c := g.Clone()
	c.Set(Pt(0, 0), 6)
	if v, _ := g.Get(Pt(0, 0)); v != 5 {
		t.Error("Clone should not share cells")
	}
	if c.Span() != g.Span() {
		t.Error("Clone should keep the span")
	}
}

func TestGridAllRowMajor(t *testing.T) {
	g := NewGrid(NewRect(Pt(0, 0), Pt(3, 2)), 0)
	i := 0
	for p := range g.All() {
		want, _ := g.Span().Point(i)
		if p != want {
			t.Errorf("All[%d] = %v, want %v", i, p, want)
		}
		i++
	}
	if i != 6 {
		t.Errorf("All yielded %d, want 6", i)
	}
}
