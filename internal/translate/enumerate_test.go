package translate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-wavelet-basis/internal/family"
)

func TestEnumerate_ScalingOnly(t *testing.T) {
	set, err := Enumerate(testDomain, "db2", 1, 3, Options{})
	require.NoError(t, err)

	assert.Len(t, set.Scale, 18)
	assert.Equal(t, -3, set.Scale[0])
	assert.Equal(t, 14, set.Scale[len(set.Scale)-1])
	assert.Empty(t, set.Wave)
	assert.Empty(t, set.Levels)
	assert.Equal(t, 18, set.Count())
}

// Every wavelet level reuses the start level's range by default.
func TestEnumerate_WaveletsReuseStartRange(t *testing.T) {
	set, err := Enumerate(testDomain, "db2", 1, 3, Options{IncludeWavelets: true})
	require.NoError(t, err)

	require.Len(t, set.Wave, 3)
	assert.Equal(t, []int{1, 2, 3}, set.Levels)
	for l, w := range set.Wave {
		assert.Equal(t, set.Scale, w, "level index %d", l)
	}
	assert.Equal(t, 18*4, set.Count())
	assert.Equal(t, 18*3, set.WaveletCount())
}

func TestEnumerate_PerLevel(t *testing.T) {
	set, err := Enumerate(testDomain, "db2", 1, 3, Options{IncludeWavelets: true, PerLevel: true})
	require.NoError(t, err)

	require.Len(t, set.Wave, 3)
	for l, level := range set.Levels {
		r, err := TranslationRange(testDomain, "db2", level)
		require.NoError(t, err)
		assert.Equal(t, r.Indices(), set.Wave[l])
	}
	assert.Len(t, set.Wave[0], 18)
	assert.Len(t, set.Wave[1], 32)
	assert.Len(t, set.Wave[2], 60)
}

func TestEnumerate_SingleLevel(t *testing.T) {
	set, err := Enumerate(testDomain, "db2", 0, 0, Options{IncludeWavelets: true})
	require.NoError(t, err)
	require.Len(t, set.Wave, 1)
	assert.Equal(t, []int{0}, set.Levels)
}

func TestEnumerate_Errors(t *testing.T) {
	_, err := Enumerate(testDomain, "db2", 3, 1, Options{})
	require.Error(t, err)

	_, err = Enumerate(testDomain, "nope", 0, 1, Options{IncludeWavelets: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, family.ErrUnsupported))
}

// Sizes agrees with the lengths Enumerate produces.
func TestSizes_MatchesEnumerate(t *testing.T) {
	tests := []struct {
		name  string
		start int
		stop  int
		opts  Options
	}{
		{"scaling_only", 1, 3, Options{}},
		{"reuse", 1, 3, Options{IncludeWavelets: true}},
		{"per_level", -1, 3, Options{IncludeWavelets: true, PerLevel: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Enumerate(testDomain, "db2", tt.start, tt.stop, tt.opts)
			require.NoError(t, err)

			scale, wave, err := Sizes(testDomain, "db2", tt.start, tt.stop, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, len(set.Scale), scale)
			require.Len(t, wave, len(set.Wave))
			for l := range wave {
				assert.Equal(t, len(set.Wave[l]), wave[l], "level index %d", l)
			}
		})
	}
}

// Sizes never allocates the translations, so very wide domains are cheap.
func TestSizes_WideDomain(t *testing.T) {
	scale, _, err := Sizes(Interval{Lo: 0, Hi: 1e15}, "db2", 0, 0, Options{})
	require.NoError(t, err)
	assert.Equal(t, int(1e15)+4, scale)
}

func TestSizes_Overflow(t *testing.T) {
	tests := []struct {
		name   string
		domain Interval
		start  int
		stop   int
		opts   Options
	}{
		{"huge_hi", Interval{Lo: 0, Hi: 1e300}, 1, 1, Options{}},
		{"huge_lo", Interval{Lo: -1e300, Hi: 0}, 0, 0, Options{}},
		{"fine_level", Interval{Lo: 0, Hi: 1e6}, 0, 40, Options{IncludeWavelets: true, PerLevel: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Sizes(tt.domain, "db2", tt.start, tt.stop, tt.opts)
			assert.True(t, errors.Is(err, ErrRangeOverflow), "got %v", err)

			_, err = Enumerate(tt.domain, "db2", tt.start, tt.stop, tt.opts)
			assert.True(t, errors.Is(err, ErrRangeOverflow), "got %v", err)
		})
	}
}
