package chariot

import (
	"math"
	"math/rand/v2"
)

// permutation is Ken Perlin's reference table of 0..255.
var permutation = [256]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// Perlin is an improved-Perlin 3D noise generator. Output is in [0, 1].
type Perlin struct {
	p      [512]uint8 // permutation doubled to skip index wrapping
	repeat int        // tiling period in lattice units; 0 disables tiling
}

// NewPerlin returns a generator using the reference permutation.
func NewPerlin() *Perlin {
	pn := &Perlin{}
	for i := range 512 {
		pn.p[i] = permutation[i&255]
	}
	return pn
}

// Permute shuffles the permutation table with r, producing a different but
// reproducible noise field for the same seed.
func (pn *Perlin) Permute(r *rand.Rand) {
	var base [256]uint8
	copy(base[:], pn.p[:256])
	r.Shuffle(len(base), func(i, j int) { base[i], base[j] = base[j], base[i] })
	for i := range 512 {
		pn.p[i] = base[i&255]
	}
}

// SetRepeat makes the noise tile every repeat lattice units. 0 disables it.
func (pn *Perlin) SetRepeat(repeat int) {
	pn.repeat = max(repeat, 0)
}

// Octave sums octaves of noise, each at twice the frequency and persistence
// times the amplitude of the previous one, normalized back into [0, 1].
func (pn *Perlin) Octave(x, y, z float64, octaves int, persistence float64) float64 {
	total, frequency, amplitude, maxValue := 0.0, 1.0, 1.0, 0.0
	for range octaves {
		total += pn.Noise(x*frequency, y*frequency, z*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	if maxValue == 0 {
		return 0
	}
	return total / maxValue
}

// Noise samples the noise field at (x, y, z).
func (pn *Perlin) Noise(x, y, z float64) float64 {
	xi, xf := pn.lattice(x)
	yi, yf := pn.lattice(y)
	zi, zf := pn.lattice(z)
	xi2, yi2, zi2 := pn.inc(xi), pn.inc(yi), pn.inc(zi)
	u, v, w := fade(xf), fade(yf), fade(zf)

	p := &pn.p
	hash := func(a, b, c int) int { return int(p[int(p[int(p[a])+b])+c]) }
	aaa, aba := hash(xi, yi, zi), hash(xi, yi2, zi)
	aab, abb := hash(xi, yi, zi2), hash(xi, yi2, zi2)
	baa, bba := hash(xi2, yi, zi), hash(xi2, yi2, zi)
	bab, bbb := hash(xi2, yi, zi2), hash(xi2, yi2, zi2)

	x1 := lerp(u, grad(aaa, xf, yf, zf), grad(baa, xf-1, yf, zf))
	x2 := lerp(u, grad(aba, xf, yf-1, zf), grad(bba, xf-1, yf-1, zf))
	y1 := lerp(v, x1, x2)

	x1 = lerp(u, grad(aab, xf, yf, zf-1), grad(bab, xf-1, yf, zf-1))
	x2 = lerp(u, grad(abb, xf, yf-1, zf-1), grad(bbb, xf-1, yf-1, zf-1))
	y2 := lerp(v, x1, x2)

	return math.Min(math.Max((lerp(w, y1, y2)+1)/2, 0), 1)
}

// lattice splits v into its wrapped cell index and the offset inside the cell.
func (pn *Perlin) lattice(v float64) (int, float64) {
	fl := math.Floor(v)
	i := int(fl)
	if pn.repeat > 0 {
		i = ((i % pn.repeat) + pn.repeat) % pn.repeat
	}
	return i & 255, v - fl
}

func (pn *Perlin) inc(i int) int {
	i++
	if pn.repeat > 0 {
		i %= pn.repeat
	}
	return i & 255
}

// fade is 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }

func lerp(t, a, b float64) float64 { return a + t*(b-a) }

func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
