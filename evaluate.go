package waveletbasis

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-wavelet-basis/internal/engine"
	"github.com/tphakala/go-wavelet-basis/internal/mathutil"
)

// Components holds the raw basis matrices of one evaluation.
type Components struct {
	// Grid holds the sample locations, one per matrix row.
	Grid []float64

	// Phi is M×K: scaling function k at grid point i.
	Phi *mat.Dense

	// Psi holds one M×Wj matrix per wavelet level, in ascending level
	// order. It is nil when wavelets are suppressed (stop level 0).
	Psi []*mat.Dense

	// Levels holds the level of each Psi matrix.
	Levels []int
}

// Components samples the scaling and wavelet functions for the given
// points without arranging them into basis order.
func (w *Wavelet) Components(points []float64) (*Components, error) {
	if err := validatePoints(points, w.config.SampleAtPoints); err != nil {
		return nil, err
	}

	grid := w.grid(points)

	set, err := w.translates()
	if err != nil {
		return nil, err
	}

	table, err := w.config.Tables.Table(w.config.Family)
	if err != nil {
		return nil, fmt.Errorf("family %q: %w", w.config.Family, err)
	}

	asm, err := engine.NewAssembler(table, engine.Options{
		Parallel:   w.config.EnableParallel,
		MaxWorkers: w.config.MaxWorkers,
	})
	if err != nil {
		return nil, fmt.Errorf("family %q: %w", w.config.Family, err)
	}

	r, err := asm.Assemble(grid, w.plan, set)
	if err != nil {
		return nil, err
	}

	return &Components{
		Grid:   grid,
		Phi:    r.Phi,
		Psi:    r.Psi,
		Levels: r.Levels,
	}, nil
}

// grid returns the sample locations for points.
func (w *Wavelet) grid(points []float64) []float64 {
	if w.config.SampleAtPoints {
		return slices.Clone(points)
	}
	return mathutil.Linspace(make([]float64, len(points)), w.config.Domain.Lo, w.config.Domain.Hi)
}

// EvaluateMatrix returns the basis functions as the rows of an
// NBasis()×len(points) matrix.
func (w *Wavelet) EvaluateMatrix(points []float64) (*mat.Dense, error) {
	c, err := w.Components(points)
	if err != nil {
		return nil, err
	}

	out, err := engine.Arrange(&engine.Result{Phi: c.Phi, Psi: c.Psi, Levels: c.Levels}, w.config.Layout)
	if err != nil {
		return nil, err
	}

	if n, _ := out.Dims(); n != w.nBasis {
		return nil, fmt.Errorf("%w: evaluated %d, declared %d", ErrBasisCountMismatch, n, w.nBasis)
	}

	w.logger.Debug("wavelet basis evaluated",
		"family", w.config.Family,
		"points", len(points),
		"basis_functions", w.nBasis,
		"sampled_at_points", w.config.SampleAtPoints)

	return out, nil
}

// Evaluate returns the value of every basis function at each point as an
// NBasis()×len(points)×1 tensor.
func (w *Wavelet) Evaluate(points []float64) ([][][]float64, error) {
	m, err := w.EvaluateMatrix(points)
	if err != nil {
		return nil, err
	}
	return engine.Tensor(m), nil
}
