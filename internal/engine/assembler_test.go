package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-wavelet-basis/internal/filter"
	"github.com/tphakala/go-wavelet-basis/internal/mathutil"
	"github.com/tphakala/go-wavelet-basis/internal/pipeline"
	"github.com/tphakala/go-wavelet-basis/internal/testutil"
	"github.com/tphakala/go-wavelet-basis/internal/translate"
)

const (
	testGridPoints = 15
	testFamily     = "db2"
)

var testDomain = translate.Interval{Lo: 0, Hi: 3}

// testTable is a coarse db2-shaped table on [0, 3].
func testTable() *filter.Table {
	return &filter.Table{
		Support: []float64{0, 0.5, 1, 1.5, 2, 2.5, 3},
		Phi:     []float64{0, 0.9, 1.4, 0.6, -0.4, -0.1, 0},
		Psi:     []float64{0, -0.2, -0.5, 1.6, -1.1, 0.2, 0},
	}
}

// linear is an independent reference for the table interpolation.
func linear(xs, ys []float64, x float64) float64 {
	if x < xs[0] || x > xs[len(xs)-1] {
		return 0
	}
	for i := 1; i < len(xs); i++ {
		if x <= xs[i] {
			f := (x - xs[i-1]) / (xs[i] - xs[i-1])
			return ys[i-1] + f*(ys[i]-ys[i-1])
		}
	}
	return ys[len(ys)-1]
}

func setup(t *testing.T, start, stop int, parallel bool) (*Result, *pipeline.Plan, *translate.Set, []float64) {
	t.Helper()

	plan, err := pipeline.BuildPlan(start, stop)
	require.NoError(t, err)

	set, err := translate.Enumerate(testDomain, testFamily, plan.StartLevel, plan.EffectiveStop,
		translate.Options{IncludeWavelets: plan.Wavelets})
	require.NoError(t, err)

	a, err := NewAssembler(testTable(), Options{Parallel: parallel})
	require.NoError(t, err)

	grid := mathutil.Linspace(make([]float64, testGridPoints), testDomain.Lo, testDomain.Hi)
	r, err := a.Assemble(grid, plan, set)
	require.NoError(t, err)
	return r, plan, set, grid
}

// =============================================================================
// Sample Values
// =============================================================================

func TestAssemble_ScalingValues(t *testing.T) {
	table := testTable()
	r, plan, set, grid := setup(t, 1, 2, false)

	testutil.AssertDims(t, r.Phi, testGridPoints, len(set.Scale))
	scale := math.Ldexp(1, plan.StartLevel)
	for i, x := range grid {
		for idx, k := range set.Scale {
			want := 2 * linear(table.Support, table.Phi, scale*x-float64(k))
			assert.InDelta(t, want, r.Phi.At(i, idx), testutil.DefaultTolerance, "t=%g k=%d", x, k)
		}
	}
}

func TestAssemble_WaveletValues(t *testing.T) {
	table := testTable()
	r, _, set, grid := setup(t, 1, 3, false)

	require.Len(t, r.Psi, 3)
	assert.Equal(t, []int{1, 2, 3}, r.Levels)

	for l, psi := range r.Psi {
		j := r.Levels[l]
		testutil.AssertDims(t, psi, testGridPoints, len(set.Wave[l]))
		scale := math.Ldexp(1, j)
		norm := math.Pow(2, float64(j)/2)
		for i, x := range grid {
			for idx, k := range set.Wave[l] {
				want := norm * linear(table.Support, table.Psi, scale*x-float64(k))
				assert.InDelta(t, want, psi.At(i, idx), testutil.DefaultTolerance, "j=%d t=%g k=%d", j, x, k)
			}
		}
	}
}

// Translations whose support misses the grid point contribute exact zeros.
func TestAssemble_OutsideSupportIsZero(t *testing.T) {
	r, plan, set, grid := setup(t, 0, 1, false)
	scale := math.Ldexp(1, plan.StartLevel)

	for i, x := range grid {
		for idx, k := range set.Scale {
			arg := scale*x - float64(k)
			if arg < 0 || arg > 3 {
				assert.Equal(t, 0.0, r.Phi.At(i, idx))
			}
		}
	}
}

func TestAssemble_DegenerateSuppressesWavelets(t *testing.T) {
	r, plan, set, _ := setup(t, 0, 0, false)

	assert.False(t, plan.Wavelets)
	assert.Nil(t, r.Psi)
	assert.Nil(t, r.Levels)
	testutil.AssertDims(t, r.Phi, testGridPoints, len(set.Scale))
}

func TestAssemble_ParallelMatchesSequential(t *testing.T) {
	seq, _, _, _ := setup(t, -1, 3, false)
	par, _, _, _ := setup(t, -1, 3, true)

	assert.True(t, mat.Equal(seq.Phi, par.Phi))
	require.Len(t, par.Psi, len(seq.Psi))
	for l := range seq.Psi {
		assert.True(t, mat.Equal(seq.Psi[l], par.Psi[l]), "level index %d", l)
	}
}

// =============================================================================
// Errors
// =============================================================================

func TestAssemble_Errors(t *testing.T) {
	a, err := NewAssembler(testTable(), Options{})
	require.NoError(t, err)

	plan, err := pipeline.BuildPlan(1, 2)
	require.NoError(t, err)
	set, err := translate.Enumerate(testDomain, testFamily, 1, 2, translate.Options{IncludeWavelets: true})
	require.NoError(t, err)

	_, err = a.Assemble(nil, plan, set)
	assert.True(t, errors.Is(err, ErrNoPoints))

	short := &translate.Set{Scale: set.Scale, Wave: set.Wave[:1], Levels: set.Levels[:1]}
	_, err = a.Assemble([]float64{0, 1}, plan, short)
	assert.True(t, errors.Is(err, ErrPlanMismatch))

	_, err = a.Assemble([]float64{0, 1}, plan, &translate.Set{})
	assert.True(t, errors.Is(err, ErrPlanMismatch))

	_, err = NewAssembler(&filter.Table{}, Options{})
	assert.True(t, errors.Is(err, filter.ErrInvalidTable))
}
