package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-wavelet-basis/internal/testutil"
)

// result builds a Result whose entries encode their block, row and column:
// block*100 + col + row/10.
func result(points, scale int, wave ...int) *Result {
	fill := func(block, cols int) *mat.Dense {
		m := mat.NewDense(points, cols, nil)
		for i := range points {
			for j := range cols {
				m.Set(i, j, float64(block*100+j)+float64(i)/10)
			}
		}
		return m
	}

	r := &Result{Phi: fill(0, scale)}
	for l, w := range wave {
		r.Psi = append(r.Psi, fill(l+1, w))
		r.Levels = append(r.Levels, l)
	}
	return r
}

func TestArrange_Interleaved(t *testing.T) {
	r := result(4, 3, 3, 3)
	out, err := Arrange(r, LayoutInterleaved)
	require.NoError(t, err)
	testutil.AssertDims(t, out, 9, 4)

	// phi0, psi1_0, psi2_0, phi1, psi1_1, ...
	want := []float64{0, 100, 200, 1, 101, 201, 2, 102, 202}
	for b, w := range want {
		for i := range 4 {
			assert.InDelta(t, w+float64(i)/10, out.At(b, i), testutil.DefaultTolerance, "basis %d", b)
		}
	}
}

func TestArrange_Leveled(t *testing.T) {
	r := result(2, 2, 3, 4)
	out, err := Arrange(r, LayoutLeveled)
	require.NoError(t, err)
	testutil.AssertDims(t, out, 2+3+4, 2)

	want := []float64{0, 1, 100, 101, 102, 200, 201, 202, 203}
	for b, w := range want {
		assert.InDelta(t, w, out.At(b, 0), testutil.DefaultTolerance, "basis %d", b)
	}
}

func TestArrange_ScalingOnly(t *testing.T) {
	for _, layout := range []Layout{LayoutInterleaved, LayoutLeveled} {
		out, err := Arrange(result(3, 5), layout)
		require.NoError(t, err)
		testutil.AssertDims(t, out, 5, 3)
	}
}

// Interleaving reuses the scaling index in every level, so a narrower level
// cannot be arranged.
func TestArrange_InterleavedMismatch(t *testing.T) {
	_, err := Arrange(result(2, 4, 4, 3), LayoutInterleaved)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLayoutMismatch))

	// A wider level only contributes its first columns.
	out, err := Arrange(result(2, 2, 5), LayoutInterleaved)
	require.NoError(t, err)
	testutil.AssertDims(t, out, 4, 2)
}

func TestCount(t *testing.T) {
	n, err := Count(LayoutInterleaved, 18, []int{18})
	require.NoError(t, err)
	assert.Equal(t, 36, n)

	n, err = Count(LayoutLeveled, 18, []int{18, 32, 60})
	require.NoError(t, err)
	assert.Equal(t, 128, n)

	n, err = Count(LayoutLeveled, 7, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = Count(Layout(7), 1, nil)
	require.Error(t, err)
}

func TestTensor(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	got := Tensor(m)

	require.Len(t, got, 2)
	for b := range got {
		require.Len(t, got[b], 3)
		for i := range got[b] {
			assert.Equal(t, []float64{m.At(b, i)}, got[b][i])
		}
	}
}

func TestLayout_String(t *testing.T) {
	assert.Equal(t, "interleaved", LayoutInterleaved.String())
	assert.Equal(t, "leveled", LayoutLeveled.String())
	assert.Equal(t, "Layout(5)", Layout(5).String())
	assert.True(t, LayoutLeveled.Valid())
	assert.False(t, Layout(-1).Valid())
}
