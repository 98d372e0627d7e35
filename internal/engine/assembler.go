// Package engine assembles wavelet basis matrices by interpolating
// precomputed scaling and wavelet function tables on a sampling grid, and
// arranges the matrices into per-function evaluation rows.
package engine

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/tphakala/simd/f64"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-wavelet-basis/internal/filter"
	"github.com/tphakala/go-wavelet-basis/internal/mathutil"
	"github.com/tphakala/go-wavelet-basis/internal/pipeline"
	"github.com/tphakala/go-wavelet-basis/internal/translate"
)

// Errors returned by the assembler.
var (
	// ErrNoPoints indicates an empty sampling grid.
	ErrNoPoints = errors.New("no sample points")

	// ErrPlanMismatch indicates translations that do not match the plan.
	ErrPlanMismatch = errors.New("translations do not match level plan")
)

// Result holds the assembled basis matrices. Phi is M×K with one column
// per scaling translation. Psi holds one M×Wj matrix per wavelet level in
// ascending level order and is nil when the plan suppresses wavelets.
type Result struct {
	Phi    *mat.Dense
	Psi    []*mat.Dense
	Levels []int
}

// Options controls assembly.
type Options struct {
	// Parallel assembles blocks concurrently. Each block writes its own
	// matrix, so the result does not depend on scheduling.
	Parallel bool

	// MaxWorkers bounds concurrent blocks. Zero means GOMAXPROCS.
	MaxWorkers int
}

// Assembler samples one family's filter table.
type Assembler struct {
	phi  *filter.Interpolant
	psi  *filter.Interpolant
	opts Options
}

// NewAssembler creates an assembler for the given table.
func NewAssembler(table *filter.Table, opts Options) (*Assembler, error) {
	phi, psi, err := table.Interpolants()
	if err != nil {
		return nil, err
	}
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = runtime.GOMAXPROCS(0)
	}
	return &Assembler{phi: phi, psi: psi, opts: opts}, nil
}

// Assemble samples every block of plan on grid.
//
// Scaling entries are Phi[i][idx] = norm · φ(2^start·t[i] − Scale[idx]) and
// wavelet entries of level j are norm_j · ψ(2^j·t[i] − Wave[l][idx]), with
// the block multipliers taken from the plan.
func (a *Assembler) Assemble(grid []float64, plan *pipeline.Plan, set *translate.Set) (*Result, error) {
	if len(grid) == 0 {
		return nil, ErrNoPoints
	}
	if len(set.Scale) == 0 {
		return nil, fmt.Errorf("%w: no scaling translations", ErrPlanMismatch)
	}
	if plan.Wavelets && len(set.Wave) != plan.WaveletLevels() {
		return nil, fmt.Errorf("%w: %d wavelet levels planned, %d enumerated",
			ErrPlanMismatch, plan.WaveletLevels(), len(set.Wave))
	}

	blocks := plan.GetBlocks()
	mats := make([]*mat.Dense, len(blocks))
	jobs := make([]func(), len(blocks))

	for b, block := range blocks {
		translates, fn := set.Scale, a.phi
		if block.Type == pipeline.BlockWavelet {
			translates, fn = set.Wave[block.Index], a.psi
			if len(translates) == 0 {
				return nil, fmt.Errorf("%w: level %d has no translations", ErrPlanMismatch, block.Level)
			}
		}
		mats[b] = mat.NewDense(len(grid), len(translates), nil)
		jobs[b] = func() {
			fillBlock(mats[b], grid, block, translates, fn)
		}
	}

	if a.opts.Parallel && len(jobs) > 1 {
		var g errgroup.Group
		g.SetLimit(a.opts.MaxWorkers)
		for _, job := range jobs {
			g.Go(func() error {
				job()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for _, job := range jobs {
			job()
		}
	}

	r := &Result{Phi: mats[0]}
	if plan.Wavelets {
		r.Psi = mats[1:]
		r.Levels = set.Levels
	}
	return r, nil
}

// fillBlock writes one sampled block row by row.
func fillBlock(dst *mat.Dense, grid []float64, block pipeline.BlockSpec, translates []int, fn *filter.Interpolant) {
	scale := mathutil.Pow2(block.Level)
	args := make([]float64, len(translates))
	row := make([]float64, len(translates))

	for i, t := range grid {
		base := scale * t
		for idx, k := range translates {
			args[idx] = base - float64(k)
		}
		fn.Fill(row, args)
		f64.Scale(row, row, block.Norm)
		dst.SetRow(i, row)
	}
}
