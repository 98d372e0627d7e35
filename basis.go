package waveletbasis

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/tphakala/go-wavelet-basis/internal/engine"
	"github.com/tphakala/go-wavelet-basis/internal/family"
	"github.com/tphakala/go-wavelet-basis/internal/filter"
	"github.com/tphakala/go-wavelet-basis/internal/pipeline"
	"github.com/tphakala/go-wavelet-basis/internal/translate"
)

// Basis is the capability a functional-data basis provides: a fixed number
// of basis functions and their values at a set of points.
type Basis interface {
	// NBasis returns the number of basis functions.
	NBasis() int

	// Evaluate returns the value of every basis function at each point as
	// an NBasis()×len(points)×1 tensor.
	Evaluate(points []float64) ([][][]float64, error)
}

// Config holds wavelet basis configuration.
type Config struct {
	// Family names the wavelet family, e.g. "db4", "sym5", "coif2", "dmey".
	// See [Families] for every supported name.
	Family string

	// StartLevel is the resolution level of the scaling functions.
	StartLevel int

	// StopLevel is the finest wavelet level. Must be >= StartLevel.
	// A stop level of 0 produces scaling functions only.
	StopLevel int

	// Domain is the interval the basis covers and is sampled on.
	Domain Interval

	// DomainRange optionally overrides the reported domain range. When set
	// it must hold exactly one interval. Defaults to Domain.
	DomainRange []Interval

	// Tables resolves the filter table of Family. Required.
	Tables TableProvider

	// Layout orders the basis functions in an evaluation.
	// The zero value is LayoutInterleaved.
	Layout Layout

	// PerLevelTranslates computes each wavelet level's translations at its
	// own level instead of reusing the start level's range. Level sizes then
	// differ, so it requires LayoutLeveled.
	PerLevelTranslates bool

	// SampleAtPoints evaluates the basis at the supplied points. By default
	// only the number of points is used and the basis is sampled on that
	// many evenly spaced points spanning Domain.
	SampleAtPoints bool

	// EnableParallel assembles the scaling block and the wavelet levels
	// concurrently. Results are identical to sequential assembly.
	EnableParallel bool

	// MaxWorkers bounds the blocks assembled at once when EnableParallel
	// is set. Zero means runtime.GOMAXPROCS(0).
	MaxWorkers int

	// Logger receives debug records. Defaults to slog.Default().
	Logger *slog.Logger
}

// Common errors returned by the wavelet basis.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid wavelet basis configuration")

	// ErrInvalidInput indicates invalid evaluation or fit input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFamily indicates a family name without a known support.
	ErrUnsupportedFamily = family.ErrUnsupported

	// ErrTableNotFound indicates that the provider has no table for the family.
	ErrTableNotFound = filter.ErrTableNotFound

	// ErrInvalidTable indicates a malformed filter table.
	ErrInvalidTable = filter.ErrInvalidTable

	// ErrLayoutMismatch indicates a wavelet level too narrow for the
	// interleaved layout.
	ErrLayoutMismatch = engine.ErrLayoutMismatch

	// ErrFitFailed indicates that the least-squares solve did not converge.
	ErrFitFailed = errors.New("least-squares fit failed")

	// ErrBasisCountMismatch indicates that an evaluation produced a
	// different number of basis functions than declared.
	ErrBasisCountMismatch = errors.New("evaluated basis count differs from declared count")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := family.Resolve(c.Family); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.StartLevel > c.StopLevel {
		return fmt.Errorf("%w: stop level must be higher than start level (%d > %d)",
			ErrInvalidConfig, c.StartLevel, c.StopLevel)
	}

	if c.StartLevel < minLevel || c.StopLevel > maxLevel {
		return fmt.Errorf("%w: levels must be within %d-%d", ErrInvalidConfig, minLevel, maxLevel)
	}

	if err := c.Domain.Validate(); err != nil {
		return fmt.Errorf("%w: domain: %w", ErrInvalidConfig, err)
	}

	if c.DomainRange != nil {
		if len(c.DomainRange) != 1 {
			return fmt.Errorf("%w: domain range should be unidimensional, got %d intervals",
				ErrInvalidConfig, len(c.DomainRange))
		}
		if err := c.DomainRange[0].Validate(); err != nil {
			return fmt.Errorf("%w: domain range: %w", ErrInvalidConfig, err)
		}
	}

	if c.MaxWorkers < 0 {
		return fmt.Errorf("%w: max workers must be non-negative, got %d", ErrInvalidConfig, c.MaxWorkers)
	}

	if c.Tables == nil {
		return fmt.Errorf("%w: table provider is nil", ErrInvalidConfig)
	}

	if !c.Layout.Valid() {
		return fmt.Errorf("%w: unknown layout %v", ErrInvalidConfig, c.Layout)
	}

	if c.PerLevelTranslates && c.Layout == LayoutInterleaved {
		return fmt.Errorf("%w: per-level translations require the leveled layout", ErrInvalidConfig)
	}

	return nil
}

// Wavelet is a discretized wavelet basis. It is immutable after
// construction and safe for concurrent use.
type Wavelet struct {
	config      Config
	support     Support
	plan        *pipeline.Plan
	domainRange Interval
	nScale      int
	nBasis      int
	logger      *slog.Logger
}

// Ensure Wavelet satisfies the basis contract.
var _ Basis = (*Wavelet)(nil)

// New creates a wavelet basis with the specified configuration. The basis
// count is computed here, before any evaluation.
func New(config *Config) (*Wavelet, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	w := &Wavelet{
		config:      *config,
		domainRange: config.Domain,
		logger:      config.Logger,
	}
	w.config.DomainRange = append([]Interval(nil), config.DomainRange...)
	if len(config.DomainRange) == 1 {
		w.domainRange = config.DomainRange[0]
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}

	w.support, _ = family.Lookup(config.Family)

	plan, err := pipeline.BuildPlan(config.StartLevel, config.StopLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	w.plan = plan

	scale, wave, err := translate.Sizes(config.Domain, config.Family,
		plan.StartLevel, plan.EffectiveStop, w.translateOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// Bound every factor first so the count below cannot overflow.
	for _, n := range append([]int{scale}, wave...) {
		if n > maxBasisFunctions {
			return nil, fmt.Errorf("%w: %d translations exceeds limit %d", ErrInvalidConfig, n, maxBasisFunctions)
		}
	}

	n, err := engine.Count(config.Layout, scale, wave)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if n > maxBasisFunctions {
		return nil, fmt.Errorf("%w: %d basis functions exceeds limit %d", ErrInvalidConfig, n, maxBasisFunctions)
	}
	w.nScale = scale
	w.nBasis = n

	w.logger.Debug("wavelet basis created",
		"family", config.Family,
		"start_level", config.StartLevel,
		"stop_level", config.StopLevel,
		"wavelets", plan.Wavelets,
		"scaling_functions", w.nScale,
		"basis_functions", n,
		"layout", config.Layout.String())

	return w, nil
}

// translates enumerates the translations of the configured plan.
func (w *Wavelet) translates() (*translate.Set, error) {
	return translate.Enumerate(w.config.Domain, w.config.Family,
		w.plan.StartLevel, w.plan.EffectiveStop, w.translateOptions())
}

func (w *Wavelet) translateOptions() translate.Options {
	return translate.Options{
		IncludeWavelets: w.plan.Wavelets,
		PerLevel:        w.config.PerLevelTranslates,
	}
}

// NBasis returns the number of basis functions.
func (w *Wavelet) NBasis() int {
	return w.nBasis
}

// Family returns the wavelet family name.
func (w *Wavelet) Family() string {
	return w.config.Family
}

// Support returns the compact support of the family's functions.
func (w *Wavelet) Support() Support {
	return w.support
}

// Domain returns the sampling domain.
func (w *Wavelet) Domain() Interval {
	return w.config.Domain
}

// DomainRange returns the domain range, which defaults to the domain.
func (w *Wavelet) DomainRange() Interval {
	return w.domainRange
}

// Levels returns the configured start and stop levels.
func (w *Wavelet) Levels() (start, stop int) {
	return w.config.StartLevel, w.config.StopLevel
}

// Info returns information about the basis.
type Info struct {
	// Family is the wavelet family name.
	Family string

	// Support is the family's compact support.
	Support Support

	// StartLevel and StopLevel are the configured levels.
	StartLevel int
	StopLevel  int

	// EffectiveStopLevel is the stop level used for translations.
	EffectiveStopLevel int

	// Wavelets reports whether wavelet functions are included.
	Wavelets bool

	// ScalingFunctions is the number of scaling translations.
	ScalingFunctions int

	// WaveletLevels is the number of wavelet levels.
	WaveletLevels int

	// NBasis is the total number of basis functions.
	NBasis int

	// Layout is the basis function order.
	Layout Layout

	// SIMDType describes the SIMD instruction set used for normalization.
	SIMDType string
}

// GetInfo returns information about the basis.
func (w *Wavelet) GetInfo() Info {
	return Info{
		Family:             w.config.Family,
		Support:            w.support,
		StartLevel:         w.config.StartLevel,
		StopLevel:          w.config.StopLevel,
		EffectiveStopLevel: w.plan.EffectiveStop,
		Wavelets:           w.plan.Wavelets,
		ScalingFunctions:   w.nScale,
		WaveletLevels:      w.plan.WaveletLevels(),
		NBasis:             w.nBasis,
		Layout:             w.config.Layout,
		SIMDType:           simdInfo(),
	}
}

// validatePoints checks the evaluation points. Their values matter only
// when the basis is sampled at them.
func validatePoints(points []float64, sampled bool) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: no evaluation points", ErrInvalidInput)
	}
	if !sampled {
		return nil
	}
	for i, p := range points {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: point %d is not finite", ErrInvalidInput, i)
		}
	}
	return nil
}
