package core

import (
	"math"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// seedHash is an avalanche integer hash used to derive path seeds.
// Mixing constants follow the classic Wang hash.
func seedHash(a uint32) uint32 {
	a = (a + 0x7ed55d16) + (a << 12)
	a = (a ^ 0xc761c23c) ^ (a >> 19)
	a = (a + 0x165667b1) + (a << 5)
	a = (a + 0xd3a2646c) ^ (a << 9)
	a = (a + 0xfd7046c5) + (a << 3)
	a = (a ^ 0xb55a4f09) ^ (a >> 16)
	return a
}

// SeededSampler is a deterministic pseudo-random source. Its seed is
// derived from (iteration, pixel index, bounce depth) so that every
// path owns an independent stream and re-running the same iteration
// reproduces bit-identical draws, regardless of scheduling order.
type SeededSampler struct {
	state uint64
}

// NewSeededSampler derives a sampler for one path at one bounce.
func NewSeededSampler(iteration, pixelIndex, depth int) *SeededSampler {
	h := seedHash(uint32((1<<31)|(depth<<22)|iteration)) ^ seedHash(uint32(pixelIndex))
	state := uint64(h)
	if state == 0 {
		state = 0x9e3779b97f4a7c15 // xorshift state must be non-zero
	}
	return &SeededSampler{state: state}
}

// next advances the internal xorshift64* state. The advancing state is
// the per-path call counter: successive draws are decorrelated without
// any shared generator.
func (s *SeededSampler) next() uint64 {
	x := s.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	s.state = x
	return x * 0x2545f4914f6cdd1d
}

// Get1D returns a random float64 in [0, 1)
func (s *SeededSampler) Get1D() float64 {
	return float64(s.next()>>11) / (1 << 53)
}

// Get2D returns two random float64 values in [0, 1)
func (s *SeededSampler) Get2D() Vec2 {
	return NewVec2(s.Get1D(), s.Get1D())
}

// SampleCosineHemisphere generates a cosine-weighted random direction in hemisphere around normal
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	// Generate point in unit disk using uniform random sampling
	a := 2.0 * math.Pi * sample.X
	z := sample.Y
	r := math.Sqrt(z)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	zCoord := math.Sqrt(1.0 - z)

	// Create local coordinate system around normal
	// Find a vector perpendicular to normal
	var nt Vec3
	if math.Abs(normal.X) > 0.1 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}

	// Create orthonormal basis
	tangent := nt.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	// Transform to world space
	return tangent.Multiply(x).Add(bitangent.Multiply(y)).Add(normal.Multiply(zCoord))
}
