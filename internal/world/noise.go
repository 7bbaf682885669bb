package world

import (
	"math"
)

// Simplex is deterministic 2D/3D simplex noise. The seed only shuffles the
// permutation table, so identical seeds and coordinates reproduce identical values.
type Simplex struct {
	perm [512]uint8
}

var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

const (
	f2 = 0.36602540378443864676 // 0.5*(sqrt(3)-1)
	g2 = 0.21132486540518711775 // (3-sqrt(3))/6
	f3 = 1.0 / 3.0
	g3 = 1.0 / 6.0
)

// NewSimplex builds a permutation table from seed.
func NewSimplex(seed int64) *Simplex {
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	// Fisher-Yates driven by a SplitMix64 stream
	state := uint64(seed)
	for i := len(p) - 1; i > 0; i-- {
		state = splitmix64(state)
		j := int(state % uint64(i+1))
		p[i], p[j] = p[j], p[i]
	}

	s := &Simplex{}
	for i := range s.perm {
		s.perm[i] = p[i&255]
	}
	return s
}

func splitmix64(v uint64) uint64 {
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func fastFloor(x float64) int {
	return int(math.Floor(x))
}

// Noise2 returns simplex noise in roughly [-1, 1].
func (s *Simplex) Noise2(x, y float64) float64 {
	sk := (x + y) * f2
	i := fastFloor(x + sk)
	j := fastFloor(y + sk)
	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := i & 255
	jj := j & 255
	gi0 := s.perm[ii+int(s.perm[jj])] % 12
	gi1 := s.perm[ii+i1+int(s.perm[jj+j1])] % 12
	gi2 := s.perm[ii+1+int(s.perm[jj+1])] % 12

	return 70 * (corner2(gi0, x0, y0) + corner2(gi1, x1, y1) + corner2(gi2, x2, y2))
}

func corner2(gi uint8, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	g := grad3[gi]
	return t * t * (g[0]*x + g[1]*y)
}

// Noise3 returns simplex noise in roughly [-1, 1].
func (s *Simplex) Noise3(x, y, z float64) float64 {
	sk := (x + y + z) * f3
	i := fastFloor(x + sk)
	j := fastFloor(y + sk)
	k := fastFloor(z + sk)
	t := float64(i+j+k) * g3
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)

	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
		case x0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
		case x0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
		}
	}

	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3
	x2 := x0 - float64(i2) + 2*g3
	y2 := y0 - float64(j2) + 2*g3
	z2 := z0 - float64(k2) + 2*g3
	x3 := x0 - 1 + 3*g3
	y3 := y0 - 1 + 3*g3
	z3 := z0 - 1 + 3*g3

	ii := i & 255
	jj := j & 255
	kk := k & 255
	p := &s.perm
	gi0 := p[ii+int(p[jj+int(p[kk])])] % 12
	gi1 := p[ii+i1+int(p[jj+j1+int(p[kk+k1])])] % 12
	gi2 := p[ii+i2+int(p[jj+j2+int(p[kk+k2])])] % 12
	gi3 := p[ii+1+int(p[jj+1+int(p[kk+1])])] % 12

	return 32 * (corner3(gi0, x0, y0, z0) + corner3(gi1, x1, y1, z1) +
		corner3(gi2, x2, y2, z2) + corner3(gi3, x3, y3, z3))
}

func corner3(gi uint8, x, y, z float64) float64 {
	t := 0.6 - x*x - y*y - z*z
	if t < 0 {
		return 0
	}
	t *= t
	g := grad3[gi]
	return t * t * (g[0]*x + g[1]*y + g[2]*z)
}

// Octaves2 sums octaves of 2D noise, doubling the sample frequency each
// octave. Amplitudes are not attenuated.
func (s *Simplex) Octaves2(octaves int, x, y float64) float64 {
	sum := 0.0
	scale := 1.0
	for i := 0; i < octaves; i++ {
		sum += s.Noise2(x*scale, y*scale)
		scale *= 2
	}
	return sum
}

// Octaves3 is the 3D counterpart of Octaves2.
func (s *Simplex) Octaves3(octaves int, x, y, z float64) float64 {
	sum := 0.0
	scale := 1.0
	for i := 0; i < octaves; i++ {
		sum += s.Noise3(x*scale, y*scale, z*scale)
		scale *= 2
	}
	return sum
}
