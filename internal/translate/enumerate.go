package translate

import (
	"fmt"

	"github.com/tphakala/go-wavelet-basis/internal/family"
)

// Set holds the translations of one basis evaluation: the scaling
// translations and, when wavelets are included, one sequence per level.
// Wave[l] belongs to level Levels[l]; levels ascend.
type Set struct {
	Scale  []int
	Wave   [][]int
	Levels []int
}

// WaveletCount returns the total number of wavelet translations over all levels.
func (s *Set) WaveletCount() int {
	n := 0
	for _, w := range s.Wave {
		n += len(w)
	}
	return n
}

// Count returns the number of basis functions described by the set.
func (s *Set) Count() int {
	return len(s.Scale) + s.WaveletCount()
}

// Options controls Enumerate.
type Options struct {
	// IncludeWavelets adds one translation sequence per level in
	// [start, stop]. When false, Wave is empty.
	IncludeWavelets bool

	// PerLevel computes each wavelet level's range at its own level. By
	// default every level reuses the range of the start level.
	PerLevel bool
}

// Enumerate lists the translations for levels start through stop.
// The scaling translations are always computed at start.
func Enumerate(domain Interval, name string, start, stop int, opts Options) (*Set, error) {
	base, wave, err := ranges(domain, name, start, stop, opts)
	if err != nil {
		return nil, err
	}

	set := &Set{Scale: base.Indices()}
	if !opts.IncludeWavelets {
		return set, nil
	}

	set.Wave = make([][]int, len(wave))
	set.Levels = make([]int, len(wave))
	for l, r := range wave {
		set.Wave[l] = r.Indices()
		set.Levels[l] = start + l
	}
	return set, nil
}

// Sizes returns the number of scaling translations and the number of
// translations of each wavelet level that Enumerate would list, without
// listing them.
func Sizes(domain Interval, name string, start, stop int, opts Options) (scale int, wave []int, err error) {
	base, levels, err := ranges(domain, name, start, stop, opts)
	if err != nil {
		return 0, nil, err
	}

	wave = make([]int, len(levels))
	for l, r := range levels {
		wave[l] = r.Len()
	}
	return base.Len(), wave, nil
}

// ranges computes the scaling range and, when wavelets are included, one
// range per level in [start, stop].
func ranges(domain Interval, name string, start, stop int, opts Options) (Range, []Range, error) {
	if start > stop {
		return Range{}, nil, fmt.Errorf("start level %d exceeds stop level %d", start, stop)
	}

	s, err := family.Resolve(name)
	if err != nil {
		return Range{}, nil, err
	}

	base, err := rangeFor(domain, s, start)
	if err != nil {
		return Range{}, nil, err
	}
	if !opts.IncludeWavelets {
		return base, nil, nil
	}

	wave := make([]Range, 0, stop-start+1)
	for j := start; j <= stop; j++ {
		r := base
		if opts.PerLevel {
			if r, err = rangeFor(domain, s, j); err != nil {
				return Range{}, nil, err
			}
		}
		wave = append(wave, r)
	}
	return base, wave, nil
}
