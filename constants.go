package waveletbasis

// Level limits keep 2^level finite and translation counts addressable.
const (
	minLevel = -30
	maxLevel = 30
)

// maxBasisFunctions bounds the basis size accepted at construction.
const maxBasisFunctions = 1 << 22

// Fit constants
const (
	// fitRankTolerance is the relative singular value cutoff used to
	// determine the numerical rank of the design matrix.
	fitRankTolerance = 1e-10
)
