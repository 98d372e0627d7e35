// Package pipeline plans the blocks of a wavelet basis evaluation.
// The plan decomposes a resolution range into one scaling block anchored at
// the start level followed by one wavelet block per level.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-wavelet-basis/internal/mathutil"
)

// ErrLevelRange is returned when the start level exceeds the stop level.
var ErrLevelRange = errors.New("start level exceeds stop level")

// BlockType identifies the function sampled by a block.
type BlockType int

const (
	// BlockScaling samples the scaling (father) function.
	BlockScaling BlockType = iota

	// BlockWavelet samples the mother wavelet at one resolution level.
	BlockWavelet
)

// String implements fmt.Stringer.
func (t BlockType) String() string {
	switch t {
	case BlockScaling:
		return "scaling"
	case BlockWavelet:
		return "wavelet"
	default:
		return "unknown"
	}
}

// BlockSpec specifies one matrix of the basis.
type BlockSpec struct {
	Type  BlockType
	Level int     // Dilation level: arguments are 2^Level·t − k
	Norm  float64 // Multiplier applied to every interpolated sample
	Index int     // Position among the wavelet blocks (0 for scaling)
}

// Plan describes the blocks of one basis evaluation.
type Plan struct {
	StartLevel int
	StopLevel  int

	// EffectiveStop is the stop level used to enumerate translations.
	// It differs from StopLevel only in the degenerate stop level 0 case.
	EffectiveStop int

	// Wavelets is false when only the scaling block is produced.
	Wavelets bool

	blocks []BlockSpec
}

// BuildPlan constructs the plan for levels start through stop.
//
// A stop level of 0 is degenerate: the effective stop level becomes 1 and
// wavelet blocks are suppressed, leaving the scaling block alone.
func BuildPlan(start, stop int) (*Plan, error) {
	if start > stop {
		return nil, fmt.Errorf("%w: %d > %d", ErrLevelRange, start, stop)
	}

	p := &Plan{
		StartLevel:    start,
		StopLevel:     stop,
		EffectiveStop: stop,
		Wavelets:      true,
		blocks:        make([]BlockSpec, 0, stop-start+defaultBlockOverhead),
	}

	if stop == degenerateStopLevel {
		p.EffectiveStop = degenerateEffectiveStop
		p.Wavelets = false
	}

	p.blocks = append(p.blocks, BlockSpec{
		Type:  BlockScaling,
		Level: start,
		Norm:  scalingNorm,
	})

	if !p.Wavelets {
		return p, nil
	}

	for j := start; j <= p.EffectiveStop; j++ {
		p.blocks = append(p.blocks, BlockSpec{
			Type:  BlockWavelet,
			Level: j,
			Norm:  mathutil.LevelNorm(j),
			Index: j - start,
		})
	}

	return p, nil
}

// GetBlocks returns the plan blocks, scaling first.
func (p *Plan) GetBlocks() []BlockSpec {
	return p.blocks
}

// WaveletLevels returns the number of wavelet blocks.
func (p *Plan) WaveletLevels() int {
	return len(p.blocks) - 1
}
