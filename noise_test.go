package chariot

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestPerlinRange(t *testing.T) {
	pn := NewPerlin()
	for y := -20; y < 20; y++ {
		for x := -20; x < 20; x++ {
			v := pn.Noise(float64(x)*0.37, float64(y)*0.41, 0.5)
			if v < 0 || v > 1 {
				t.Fatalf("Noise(%d,%d) = %v out of [0,1]", x, y, v)
			}
		}
	}
}

func TestPerlinLatticeIsMidpoint(t *testing.T) {
	pn := NewPerlin()
	for _, p := range [][3]float64{{0, 0, 0}, {3, 7, 1}, {-4, 2, 9}} {
		if v := pn.Noise(p[0], p[1], p[2]); v != 0.5 {
			t.Errorf("Noise%v = %v, want 0.5 at lattice points", p, v)
		}
	}
}

func TestPerlinDeterministic(t *testing.T) {
	a, b := NewPerlin(), NewPerlin()
	a.Permute(rand.New(rand.NewPCG(1, 2)))
	b.Permute(rand.New(rand.NewPCG(1, 2)))
	for i := range 50 {
		x, y := float64(i)*0.13, float64(i)*0.29
		if a.Noise(x, y, 0.3) != b.Noise(x, y, 0.3) {
			t.Fatal("same seed should give the same field")
		}
	}
}

func TestPerlinPermuteChangesField(t *testing.T) {
	a, b := NewPerlin(), NewPerlin()
	b.Permute(rand.New(rand.NewPCG(7, 7)))
	same := 0
	for i := range 50 {
		x, y := float64(i)*0.13+0.5, float64(i)*0.29+0.5
		if a.Noise(x, y, 0.3) == b.Noise(x, y, 0.3) {
			same++
		}
	}
	if same == 50 {
		t.Error("permuted field should differ from the reference field")
	}
}

func TestPerlinRepeat(t *testing.T) {
	pn := NewPerlin()
	pn.SetRepeat(4)
	for i := range 20 {
		x, y := float64(i)*0.21, float64(i)*0.17
		if math.Abs(pn.Noise(x, y, 0.5)-pn.Noise(x+4, y, 0.5)) > 1e-9 {
			t.Fatalf("noise should tile every 4 units at (%v,%v)", x, y)
		}
	}
}

func TestPerlinOctave(t *testing.T) {
	pn := NewPerlin()
	if v := pn.Octave(1.3, 2.7, 0.5, 1, 0.5); v != pn.Noise(1.3, 2.7, 0.5) {
		t.Errorf("one octave should equal Noise, got %v", v)
	}
	for i := range 100 {
		v := pn.Octave(float64(i)*0.1, float64(i)*0.07, 0.2, 4, 0.5)
		if v < 0 || v > 1 {
			t.Fatalf("Octave out of range: %v", v)
		}
	}
	if v := pn.Octave(1, 1, 1, 0, 0.5); v != 0 {
		t.Errorf("zero octaves = %v, want 0", v)
	}
}
