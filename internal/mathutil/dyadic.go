// Package mathutil provides the numeric helpers shared by the wavelet basis
// packages: dyadic scale factors and uniform sampling grids.
package mathutil

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Pow2 returns 2^level. Negative levels are exact.
func Pow2(level int) float64 {
	return math.Ldexp(1, level)
}

// LevelNorm returns the energy normalization 2^(j/2) of resolution level j.
func LevelNorm(j int) float64 {
	return math.Pow(2, float64(j)/halfDivisor)
}

// Linspace fills dst with len(dst) evenly spaced points from lo to hi,
// inclusive of both endpoints. A single point is placed at lo.
func Linspace(dst []float64, lo, hi float64) []float64 {
	switch len(dst) {
	case 0:
		return dst
	case 1:
		dst[0] = lo
		return dst
	}
	return floats.Span(dst, lo, hi)
}

// FloorInt returns floor(x) as an int. ok is false when the result lies
// outside ±MaxExactInt or x is NaN.
func FloorInt(x float64) (n int, ok bool) {
	return toInt(math.Floor(x))
}

// CeilInt returns ceil(x) as an int. ok is false when the result lies
// outside ±MaxExactInt or x is NaN.
func CeilInt(x float64) (n int, ok bool) {
	return toInt(math.Ceil(x))
}

func toInt(x float64) (int, bool) {
	// Negated form rejects NaN.
	if !(x >= -MaxExactInt && x <= MaxExactInt) {
		return 0, false
	}
	return int(x), true
}
