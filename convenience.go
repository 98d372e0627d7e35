package waveletbasis

import (
	"github.com/tphakala/go-wavelet-basis/internal/family"
	"github.com/tphakala/go-wavelet-basis/internal/mathutil"
)

// NewDaubechies creates a basis of Daubechies wavelets of the given order
// (2-10) with the default interleaved layout.
func NewDaubechies(order, startLevel, stopLevel int, domain Interval, tables TableProvider) (*Wavelet, error) {
	return newFamily(family.Daubechies(order), startLevel, stopLevel, domain, tables)
}

// NewSymlet creates a basis of symlets of order 4, 5 or 10.
func NewSymlet(order, startLevel, stopLevel int, domain Interval, tables TableProvider) (*Wavelet, error) {
	return newFamily(family.Symlet(order), startLevel, stopLevel, domain, tables)
}

// NewCoiflet creates a basis of coiflets of order 1-5.
func NewCoiflet(order, startLevel, stopLevel int, domain Interval, tables TableProvider) (*Wavelet, error) {
	return newFamily(family.Coiflet(order), startLevel, stopLevel, domain, tables)
}

// NewMeyer creates a basis of discrete Meyer wavelets.
func NewMeyer(startLevel, stopLevel int, domain Interval, tables TableProvider) (*Wavelet, error) {
	return newFamily(family.Meyer(), startLevel, stopLevel, domain, tables)
}

func newFamily(name string, startLevel, stopLevel int, domain Interval, tables TableProvider) (*Wavelet, error) {
	return New(&Config{
		Family:     name,
		StartLevel: startLevel,
		StopLevel:  stopLevel,
		Domain:     domain,
		Tables:     tables,
	})
}

// EvaluateBasis is a one-shot helper that builds a basis from config and
// evaluates it at points.
func EvaluateBasis(config *Config, points []float64) ([][][]float64, error) {
	w, err := New(config)
	if err != nil {
		return nil, err
	}
	return w.Evaluate(points)
}

// NewGrid returns n evenly spaced points spanning domain, the grid the
// basis samples on by default.
func NewGrid(domain Interval, n int) []float64 {
	if n <= 0 {
		return nil
	}
	return mathutil.Linspace(make([]float64, n), domain.Lo, domain.Hi)
}
