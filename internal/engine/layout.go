package engine

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrLayoutMismatch is returned when an interleaved layout meets a wavelet
// level with fewer translations than the scaling block.
var ErrLayoutMismatch = errors.New("wavelet level narrower than scaling block")

// Layout selects the order of basis functions in an evaluation.
type Layout int

const (
	// LayoutInterleaved emits, for each scaling translation idx, the
	// scaling function at idx followed by the wavelet of every level at
	// the same idx.
	LayoutInterleaved Layout = iota

	// LayoutLeveled emits every scaling function, then every wavelet of
	// each level in ascending order, each level indexed by its own
	// translations.
	LayoutLeveled
)

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case LayoutInterleaved:
		return "interleaved"
	case LayoutLeveled:
		return "leveled"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Valid reports whether l is a known layout.
func (l Layout) Valid() bool {
	return l == LayoutInterleaved || l == LayoutLeveled
}

// Count returns the number of basis functions a layout emits for scale
// scaling translations and the given per-level wavelet translation counts.
func Count(layout Layout, scale int, wave []int) (int, error) {
	switch layout {
	case LayoutInterleaved:
		for l, w := range wave {
			if w < scale {
				return 0, fmt.Errorf("%w: level index %d has %d translations, need %d",
					ErrLayoutMismatch, l, w, scale)
			}
		}
		return scale * (1 + len(wave)), nil

	case LayoutLeveled:
		n := scale
		for _, w := range wave {
			n += w
		}
		return n, nil

	default:
		return 0, fmt.Errorf("unknown layout %d", int(layout))
	}
}

// Arrange returns the basis functions of r as the rows of an nBasis×M
// matrix, ordered by layout.
func Arrange(r *Result, layout Layout) (*mat.Dense, error) {
	m, k := r.Phi.Dims()

	wave := make([]int, len(r.Psi))
	for l, psi := range r.Psi {
		_, wave[l] = psi.Dims()
	}

	n, err := Count(layout, k, wave)
	if err != nil {
		return nil, err
	}

	out := mat.NewDense(n, m, nil)
	col := make([]float64, m)
	row := 0
	emit := func(src *mat.Dense, j int) {
		out.SetRow(row, mat.Col(col, j, src))
		row++
	}

	switch layout {
	case LayoutInterleaved:
		for idx := range k {
			emit(r.Phi, idx)
			for _, psi := range r.Psi {
				emit(psi, idx)
			}
		}

	case LayoutLeveled:
		for idx := range k {
			emit(r.Phi, idx)
		}
		for l, psi := range r.Psi {
			for idx := range wave[l] {
				emit(psi, idx)
			}
		}
	}

	return out, nil
}

// Tensor reshapes an nBasis×M evaluation into nBasis×M×1.
func Tensor(m mat.Matrix) [][][]float64 {
	n, points := m.Dims()
	out := make([][][]float64, n)
	for b := range n {
		fn := make([][]float64, points)
		for i := range points {
			fn[i] = []float64{m.At(b, i)}
		}
		out[b] = fn
	}
	return out
}
