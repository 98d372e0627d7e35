// Package testutil provides reusable test helper functions for wavelet basis tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	TableTolerance   = 1e-12
	CascadeTolerance = 1e-9
	FitTolerance     = 1e-8
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically increasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertLengthEquals verifies that a slice has the expected length.
func AssertLengthEquals(t *testing.T, s []float64, expectedLen int, msgAndArgs ...any) bool {
	t.Helper()
	return assert.Len(t, s, expectedLen, msgAndArgs...)
}

// AssertDims verifies the dimensions of a matrix.
func AssertDims(t *testing.T, m mat.Matrix, rows, cols int, msgAndArgs ...any) bool {
	t.Helper()
	r, c := m.Dims()
	if r != rows || c != cols {
		return assert.Fail(t, "dimension mismatch",
			"got %dx%d, want %dx%d", r, c, rows, cols)
	}
	return true
}

// AssertMatrixInDelta verifies that two matrices have the same shape and
// element-wise agree within tolerance.
func AssertMatrixInDelta(t *testing.T, want, got mat.Matrix, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	r, c := want.Dims()
	if !AssertDims(t, got, r, c) {
		return false
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if math.Abs(want.At(i, j)-got.At(i, j)) > tolerance {
				return assert.Fail(t, "matrix element mismatch",
					"[%d,%d]: got %g, want %g", i, j, got.At(i, j), want.At(i, j))
			}
		}
	}
	return true
}

// HatTable returns abscissas and samples of the triangle function on
// [0, width] peaking at width/2, sampled at integer and half-integer points.
func HatTable(width int) (xs, ys []float64) {
	n := 2*width + 1
	xs = make([]float64, n)
	ys = make([]float64, n)
	half := float64(width) / 2
	for i := range n {
		x := float64(i) / 2
		xs[i] = x
		ys[i] = 1 - math.Abs(x-half)/half
	}
	return xs, ys
}
