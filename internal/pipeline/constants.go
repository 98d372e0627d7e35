package pipeline

// Degenerate level handling: a stop level of 0 enumerates translations as
// if the stop level were 1 and drops the wavelet blocks.
const (
	degenerateStopLevel     = 0
	degenerateEffectiveStop = 1
)

// scalingNorm is the fixed multiplier 2^(2/2) of scaling samples. It does
// not depend on the start level.
const scalingNorm = 2.0

// defaultBlockOverhead sizes the block slice: one scaling block plus the
// closed level range.
const defaultBlockOverhead = 2
