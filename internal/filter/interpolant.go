package filter

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Interpolant evaluates a sampled function by linear interpolation between
// samples. Arguments outside the sampled range evaluate to zero.
type Interpolant struct {
	pl interp.PiecewiseLinear
	lo float64
	hi float64
}

// NewInterpolant fits an interpolant to the samples ys at abscissas xs.
// xs must be strictly increasing and hold at least two values.
func NewInterpolant(xs, ys []float64) (*Interpolant, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d abscissas for %d samples", ErrInvalidTable, len(xs), len(ys))
	}
	if len(xs) < minTableSamples {
		return nil, fmt.Errorf("%w: need at least %d samples, got %d", ErrInvalidTable, minTableSamples, len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: abscissas not strictly increasing at %d", ErrInvalidTable, i)
		}
	}

	p := &Interpolant{lo: xs[0], hi: xs[len(xs)-1]}
	if err := p.pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	return p, nil
}

// At returns the interpolated value at x, or 0 outside [lo, hi].
func (p *Interpolant) At(x float64) float64 {
	// Written to also reject NaN.
	if !(x >= p.lo && x <= p.hi) {
		return 0
	}
	return p.pl.Predict(x)
}

// Fill writes the interpolated value of every argument into dst.
// dst must be at least as long as args.
func (p *Interpolant) Fill(dst, args []float64) []float64 {
	dst = dst[:len(args)]
	for i, x := range args {
		dst[i] = p.At(x)
	}
	return dst
}

// Bounds returns the sampled range.
func (p *Interpolant) Bounds() (lo, hi float64) {
	return p.lo, p.hi
}
