package filter

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/mat"
)

// Cascade builds a table for the orthogonal wavelet with the given lowpass
// filter coefficients h, normalized so that Σh = √2.
//
// The scaling function satisfies φ(x) = √2 Σ h[k] φ(2x − k) on [0, len(h)−1].
// Its values at the integers are the eigenvector of that relation for
// eigenvalue 1, scaled so they sum to one. Each iteration then halves the
// grid spacing, so the table holds (len(h)−1)·2^iterations + 1 samples.
// The wavelet uses g[k] = (−1)^k h[len(h)−1−k]. An iterations value of 0
// selects the default.
func Cascade(h []float64, iterations int) (*Table, error) {
	if len(h) < minCascadeTaps {
		return nil, fmt.Errorf("%w: cascade needs at least %d coefficients", ErrInvalidTable, minCascadeTaps)
	}
	if iterations == 0 {
		iterations = defaultCascadeIteration
	}
	if iterations < 1 || iterations > maxCascadeIterations {
		return nil, fmt.Errorf("%w: iterations must be 1-%d, got %d", ErrInvalidTable, maxCascadeIterations, iterations)
	}

	phi, err := integerValues(h)
	if err != nil {
		return nil, err
	}

	n := len(h) - 1
	for r := 1; r <= iterations; r++ {
		phi = refine(h, phi, n, 1<<(r-1))
	}

	steps := 1 << iterations
	psi := waveletValues(h, phi, n, steps)

	support := make([]float64, len(phi))
	dx := 1 / float64(steps)
	for k := range support {
		support[k] = float64(k) * dx
	}

	t := &Table{Support: support, Phi: phi, Psi: psi}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// integerValues solves φ(n) = √2 Σ h[2n−m] φ(m) for n = 0..len(h)−1 with
// Σφ(n) = 1. The relation's rows are linearly dependent, so the last one is
// replaced by the normalization.
func integerValues(h []float64) ([]float64, error) {
	size := len(h)
	a := mat.NewDense(size, size, nil)
	for n := range size {
		for m := range size {
			v := 0.0
			if k := 2*n - m; k >= 0 && k < size {
				v = math.Sqrt2 * h[k]
			}
			if n == m {
				v--
			}
			a.Set(n, m, v)
		}
	}
	for m := range size {
		a.Set(size-1, m, 1)
	}

	b := mat.NewVecDense(size, nil)
	b.SetVec(size-1, 1)

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("%w: cascade has no unique fixed point: %w", ErrInvalidTable, err)
	}

	phi := make([]float64, size)
	copy(phi, x.RawVector().Data)
	if sum := f64.Sum(phi); sum != 0 {
		f64.Scale(phi, phi, 1/sum)
	}
	return phi, nil
}

// refine maps samples on the grid of spacing 1/half to spacing 1/(2·half).
func refine(h, prev []float64, n, half int) []float64 {
	next := make([]float64, 2*n*half+1)
	for k := range next {
		var sum float64
		for j, hj := range h {
			idx := k - j*half
			if idx < 0 || idx >= len(prev) {
				continue
			}
			sum += hj * prev[idx]
		}
		next[k] = math.Sqrt2 * sum
	}
	return next
}

// waveletValues evaluates ψ(x) = √2 Σ g[j] φ(2x − j) on the grid of phi.
func waveletValues(h, phi []float64, n, steps int) []float64 {
	last := len(h) - 1
	psi := make([]float64, len(phi))
	for k := range psi {
		var sum float64
		for j := range h {
			idx := 2*k - j*steps
			if idx < 0 || idx > n*steps {
				continue
			}
			g := h[last-j]
			if j%2 == 1 {
				g = -g
			}
			sum += g * phi[idx]
		}
		psi[k] = math.Sqrt2 * sum
	}
	return psi
}
