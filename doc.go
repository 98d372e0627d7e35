// Package waveletbasis provides discretized wavelet bases for functional
// data analysis in pure Go.
//
// A basis is built from a wavelet family, a range of resolution levels and
// a domain. It holds the scaling functions of the start level and the
// wavelet functions of every level up to the stop level, each translated
// so that its support meets the domain. Function values come from
// precomputed filter tables that are linearly interpolated.
//
// # Features
//
//   - Daubechies (db2-db10), symlet (sym4, sym5, sym10), coiflet
//     (coif1-coif5) and discrete Meyer (dmey) families
//   - Basis size known at construction, before any evaluation
//   - Pluggable filter-table providers: in memory, CSV files, cached
//   - Filter tables generated from lowpass coefficients by the cascade
//     algorithm
//   - Least-squares fitting and synthesis of sampled signals
//   - Optional parallel assembly and SIMD normalization via
//     github.com/tphakala/simd
//
// # Quick Start
//
// Register or load filter tables, then build and evaluate a basis:
//
//	tables := waveletbasis.NewMemoryTables()
//	table, err := waveletbasis.CascadeTable(db2Lowpass, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := tables.Register("db2", table); err != nil {
//	    log.Fatal(err)
//	}
//
//	w, err := waveletbasis.New(&waveletbasis.Config{
//	    Family:     "db2",
//	    StartLevel: 1,
//	    StopLevel:  1,
//	    Domain:     waveletbasis.Interval{Lo: 0, Hi: 10},
//	    Tables:     tables,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	values, err := w.Evaluate(points) // NBasis()×len(points)×1
//
// Table files are read with [NewDirTables], which looks for
// "<family>Tables.csv" in a directory. Each row holds x, phi(x), psi(x).
//
// # Sampling
//
// By default only the number of points passed to [Wavelet.Evaluate] is
// used: the basis is sampled on that many evenly spaced points spanning
// the domain. Set [Config.SampleAtPoints] to sample at the points
// themselves. Outside a table's range function values are zero.
//
// # Layouts
//
// [LayoutInterleaved], the default, emits each scaling function followed
// by the wavelets of every level at the same translation index. Every
// level uses the translation range of the start level, and the count is
// K·(1+L) for K scaling translations and L wavelet levels.
//
// [LayoutLeveled] emits all scaling functions, then each level's wavelets
// in turn. Combined with [Config.PerLevelTranslates] each level covers the
// domain at its own resolution.
//
// A stop level of 0 yields scaling functions only.
//
// # Thread Safety
//
// A [Wavelet] is immutable after [New] returns and may be evaluated from
// multiple goroutines. Table providers returned by this package are safe
// for concurrent use.
package waveletbasis
