// Package translate computes the integer translations needed for dilated
// scaling and wavelet functions to cover a sampling domain.
//
// A basis function φ(2^j·x − k) with support [a, b] covers
// [(k+a)/2^j, (k+b)/2^j]. It intersects the domain [lo, hi] exactly when
//
//	floor(2^j·lo − b) ≤ k ≤ ceil(2^j·hi − a)
//
// so translations at either bound touch the domain boundary.
package translate

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-wavelet-basis/internal/family"
	"github.com/tphakala/go-wavelet-basis/internal/mathutil"
)

var (
	// ErrInvalidInterval is returned for intervals that are not finite or have Lo > Hi.
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrRangeOverflow is returned when a translation bound does not fit an int.
	ErrRangeOverflow = errors.New("translation range overflows int")
)

// Interval is a closed real interval [Lo, Hi].
type Interval struct {
	Lo float64
	Hi float64
}

// Validate checks that both endpoints are finite and ordered.
func (iv Interval) Validate() error {
	if math.IsNaN(iv.Lo) || math.IsNaN(iv.Hi) || math.IsInf(iv.Lo, 0) || math.IsInf(iv.Hi, 0) {
		return fmt.Errorf("%w: endpoints must be finite, got %v", ErrInvalidInterval, iv)
	}
	if iv.Lo > iv.Hi {
		return fmt.Errorf("%w: lo %g > hi %g", ErrInvalidInterval, iv.Lo, iv.Hi)
	}
	return nil
}

// Width returns Hi - Lo.
func (iv Interval) Width() float64 {
	return iv.Hi - iv.Lo
}

// Contains reports whether x lies in the closed interval.
func (iv Interval) Contains(x float64) bool {
	return x >= iv.Lo && x <= iv.Hi
}

// String implements fmt.Stringer.
func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Lo, iv.Hi)
}

// Range is an inclusive range of integer translations.
type Range struct {
	Min int
	Max int
}

// Len returns the number of translations in the range.
func (r Range) Len() int {
	if r.Max < r.Min {
		return 0
	}
	return r.Max - r.Min + 1
}

// Indices returns every translation of the range in ascending order.
func (r Range) Indices() []int {
	out := make([]int, 0, r.Len())
	for k := r.Min; k <= r.Max; k++ {
		out = append(out, k)
	}
	return out
}

// TranslationRange returns the translations k for which the level-j
// dilation of the family's functions intersects domain. It fails with
// family.ErrUnsupported when the family has no known support.
func TranslationRange(domain Interval, name string, level int) (Range, error) {
	s, err := family.Resolve(name)
	if err != nil {
		return Range{}, err
	}
	return rangeFor(domain, s, level)
}

func rangeFor(domain Interval, s family.Support, level int) (Range, error) {
	scale := mathutil.Pow2(level)
	lo := scale*domain.Lo - float64(s.Hi)
	hi := scale*domain.Hi - float64(s.Lo)

	minK, okLo := mathutil.FloorInt(lo)
	maxK, okHi := mathutil.CeilInt(hi)
	if !okLo || !okHi {
		return Range{}, fmt.Errorf("%w: level %d on %v gives [%g, %g]", ErrRangeOverflow, level, domain, lo, hi)
	}
	return Range{Min: minK, Max: maxK}, nil
}
