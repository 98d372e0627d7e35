// Package filter provides the precomputed scaling and wavelet function
// tables a wavelet basis interpolates, the providers that resolve them by
// family name, and a cascade builder for tables from filter coefficients.
package filter

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Common errors returned by table providers.
var (
	// ErrTableNotFound indicates that no table exists for a family.
	ErrTableNotFound = errors.New("filter table not found")

	// ErrInvalidTable indicates a malformed table.
	ErrInvalidTable = errors.New("invalid filter table")
)

// Table holds samples of a family's scaling function (Phi) and wavelet
// function (Psi) at the shared abscissas Support. The three slices are
// paired by index.
type Table struct {
	Support []float64
	Phi     []float64
	Psi     []float64
}

// Validate checks that the slices have equal length, at least two samples,
// finite values and strictly increasing abscissas.
func (t *Table) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil table", ErrInvalidTable)
	}

	n := len(t.Support)
	if len(t.Phi) != n || len(t.Psi) != n {
		return fmt.Errorf("%w: length mismatch (supp=%d, phi=%d, psi=%d)",
			ErrInvalidTable, n, len(t.Phi), len(t.Psi))
	}
	if n < minTableSamples {
		return fmt.Errorf("%w: need at least %d samples, got %d", ErrInvalidTable, minTableSamples, n)
	}

	for i := range n {
		if !isFinite(t.Support[i]) || !isFinite(t.Phi[i]) || !isFinite(t.Psi[i]) {
			return fmt.Errorf("%w: non-finite value at row %d", ErrInvalidTable, i)
		}
		if i > 0 && t.Support[i] <= t.Support[i-1] {
			return fmt.Errorf("%w: abscissas not strictly increasing at row %d", ErrInvalidTable, i)
		}
	}

	return nil
}

// Len returns the number of samples.
func (t *Table) Len() int {
	return len(t.Support)
}

// Bounds returns the first and last abscissa.
func (t *Table) Bounds() (lo, hi float64) {
	return t.Support[0], t.Support[len(t.Support)-1]
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	return &Table{
		Support: slices.Clone(t.Support),
		Phi:     slices.Clone(t.Phi),
		Psi:     slices.Clone(t.Psi),
	}
}

// Interpolants returns piecewise-linear interpolants of Phi and Psi.
func (t *Table) Interpolants() (phi, psi *Interpolant, err error) {
	if err := t.Validate(); err != nil {
		return nil, nil, err
	}
	phi, err = NewInterpolant(t.Support, t.Phi)
	if err != nil {
		return nil, nil, err
	}
	psi, err = NewInterpolant(t.Support, t.Psi)
	if err != nil {
		return nil, nil, err
	}
	return phi, psi, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
