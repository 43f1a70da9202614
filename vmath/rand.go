package vmath

import "math"

// Rand is a seedable xorshift64 source. Uniform and normal sampling only,
// which is everything map generation needs; injecting one instance per
// generation call keeps runs reproducible.
type Rand struct {
	state uint64
}

func NewRand(seed uint64) *Rand {
	// One splitmix64 round decorrelates small seeds before the
	// xorshift stream starts
	seed += 0x9e3779b97f4a7c15
	seed = (seed ^ (seed >> 30)) * 0xbf58476d1ce4e5b9
	seed = (seed ^ (seed >> 27)) * 0x94d049bb133111eb
	seed ^= seed >> 31
	if seed == 0 {
		seed = 1
	}
	return &Rand{state: seed}
}

func (r *Rand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a uniform sample in [0, 1)
func (r *Rand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// InRange returns a uniform sample in [min, max)
func (r *Rand) InRange(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Norm returns a sample from N(mean, stddev²) via Box-Muller.
// One uniform pair per sample, no cached spare, so the consumed
// stream length is a fixed function of the call sequence.
func (r *Rand) Norm(mean, stddev float64) float64 {
	u1 := r.Float64()
	for u1 == 0 {
		u1 = r.Float64()
	}
	u2 := r.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + stddev*z
}
