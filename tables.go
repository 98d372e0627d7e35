package waveletbasis

import (
	"io"

	"github.com/tphakala/simd/cpu"

	"github.com/tphakala/go-wavelet-basis/internal/engine"
	"github.com/tphakala/go-wavelet-basis/internal/family"
	"github.com/tphakala/go-wavelet-basis/internal/filter"
	"github.com/tphakala/go-wavelet-basis/internal/translate"
)

// Types shared with the internal packages.
type (
	// Interval is a closed real interval [Lo, Hi].
	Interval = translate.Interval

	// Support is the compact support [Lo, Hi] of a family's functions.
	Support = family.Support

	// Layout selects the order of basis functions in an evaluation.
	Layout = engine.Layout

	// TableProvider resolves filter tables by family name.
	TableProvider = filter.Provider

	// FilterTable holds sampled scaling and wavelet functions.
	FilterTable = filter.Table

	// MemoryTables is an in-memory TableProvider.
	MemoryTables = filter.MemoryProvider

	// DirTables is a TableProvider reading "<family>Tables.csv" files.
	DirTables = filter.DirProvider
)

// Basis function orders.
const (
	// LayoutInterleaved emits each scaling function followed by the
	// wavelets of every level at the same translation index.
	LayoutInterleaved = engine.LayoutInterleaved

	// LayoutLeveled emits all scaling functions, then each level's wavelets.
	LayoutLeveled = engine.LayoutLeveled
)

// NewMemoryTables creates an empty in-memory table registry.
func NewMemoryTables() *MemoryTables {
	return filter.NewMemoryProvider()
}

// NewDirTables creates a provider reading table files from dir.
func NewDirTables(dir string) *DirTables {
	return filter.NewDirProvider(dir)
}

// CachedTables wraps p so that each family's table is loaded once.
func CachedTables(p TableProvider) TableProvider {
	return filter.Cached(p)
}

// CascadeTable builds a filter table from orthogonal lowpass filter
// coefficients with the cascade algorithm. See [filter.Cascade].
func CascadeTable(lowpass []float64, iterations int) (*FilterTable, error) {
	return filter.Cascade(lowpass, iterations)
}

// SupportOf returns the support of a family; false if unsupported.
func SupportOf(name string) (Support, bool) {
	return family.Lookup(name)
}

// Families returns every supported family name.
func Families() []string {
	return family.Names()
}

func simdInfo() string {
	return cpu.Info()
}

// ReadTableCSV parses a filter table in the "<family>Tables.csv" format.
func ReadTableCSV(r io.Reader) (*FilterTable, error) {
	return filter.ReadCSV(r)
}

// WriteTableCSV writes t in the "<family>Tables.csv" format.
func WriteTableCSV(w io.Writer, t *FilterTable) error {
	return filter.WriteCSV(w, t)
}
