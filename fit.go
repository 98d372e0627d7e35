package waveletbasis

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Fit is the least-squares representation of a sampled signal in a basis.
type Fit struct {
	// Coefficients holds one weight per basis function, in basis order.
	// Among all least-squares solutions it has minimum norm.
	Coefficients []float64

	// Fitted is the approximation of the signal at the sample points.
	Fitted []float64

	// Residual is the Euclidean norm of the signal minus Fitted.
	Residual float64

	// Rank is the numerical rank of the sampled basis.
	Rank int
}

// Fit computes basis coefficients approximating values, where values[i] is
// the signal at points[i]. The points are interpreted as in Evaluate.
func (w *Wavelet) Fit(points, values []float64) (*Fit, error) {
	if len(values) != len(points) {
		return nil, fmt.Errorf("%w: %d values for %d points", ErrInvalidInput, len(values), len(points))
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: value %d is not finite", ErrInvalidInput, i)
		}
	}

	e, err := w.EvaluateMatrix(points)
	if err != nil {
		return nil, err
	}

	var svd mat.SVD
	if ok := svd.Factorize(e.T(), mat.SVDThin); !ok {
		return nil, fmt.Errorf("%w: singular value decomposition did not converge", ErrFitFailed)
	}

	coeffs := make([]float64, w.nBasis)
	rank := svd.Rank(fitRankTolerance)
	if rank > 0 {
		var c mat.VecDense
		svd.SolveVecTo(&c, mat.NewVecDense(len(values), values), rank)
		copy(coeffs, c.RawVector().Data)
	}

	fitted := synthesize(e, coeffs)
	return &Fit{
		Coefficients: coeffs,
		Fitted:       fitted,
		Residual:     floats.Distance(fitted, values, 2),
		Rank:         rank,
	}, nil
}

// Synthesize returns Σ coeffs[b]·f_b at each point, where f_b is basis
// function b. The points are interpreted as in Evaluate.
func (w *Wavelet) Synthesize(points, coeffs []float64) ([]float64, error) {
	if len(coeffs) != w.nBasis {
		return nil, fmt.Errorf("%w: %d coefficients for %d basis functions", ErrInvalidInput, len(coeffs), w.nBasis)
	}

	e, err := w.EvaluateMatrix(points)
	if err != nil {
		return nil, err
	}
	return synthesize(e, coeffs), nil
}

// synthesize combines the rows of the nBasis×M evaluation e.
func synthesize(e *mat.Dense, coeffs []float64) []float64 {
	n, m := e.Dims()
	out := make([]float64, m)
	col := make([]float64, n)
	for i := range m {
		mat.Col(col, i, e)
		out[i] = f64.DotProduct(col, coeffs)
	}
	return out
}
