package family

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_KnownFamilies(t *testing.T) {
	tests := []struct {
		name string
		want Support
	}{
		{"db2", Support{0, 3}},
		{"db4", Support{0, 7}},
		{"db5", Support{0, 9}},
		{"db10", Support{0, 19}},
		{"sym4", Support{0, 7}},
		{"sym10", Support{0, 19}},
		{"coif1", Support{0, 5}},
		{"coif5", Support{0, 29}},
		{"dmey", Support{0, 101}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, name := range []string{"", "haar", "db1", "db11", "sym2", "coif6", "db04", "DB2", "db2x", "dmey1"} {
		t.Run(name, func(t *testing.T) {
			_, ok := Lookup(name)
			assert.False(t, ok)
		})
	}
}

// The coiflet and Daubechies branches use different support formulas.
func TestLookup_BranchesDiffer(t *testing.T) {
	coif, ok := Lookup("coif1")
	require.True(t, ok)
	db, ok := Lookup("db5")
	require.True(t, ok)

	assert.Equal(t, 5, coif.Hi)
	assert.Equal(t, 9, db.Hi)
	assert.NotEqual(t, coif, db)
}

func TestResolve(t *testing.T) {
	s, err := Resolve("db3")
	require.NoError(t, err)
	assert.Equal(t, Support{0, 5}, s)
	assert.Equal(t, 5, s.Len())

	_, err = Resolve("morlet")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupported))
	assert.Contains(t, err.Error(), "morlet")
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 9+3+5+1)
	assert.IsNonDecreasing(t, names)
	for _, name := range names {
		_, ok := Lookup(name)
		assert.True(t, ok, name)
	}
}

func TestNameHelpers(t *testing.T) {
	assert.Equal(t, "db4", Daubechies(4))
	assert.Equal(t, "sym5", Symlet(5))
	assert.Equal(t, "coif2", Coiflet(2))
	assert.Equal(t, "dmey", Meyer())
	assert.Equal(t, "[0, 3]", Support{0, 3}.String())
}
