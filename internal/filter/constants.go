package filter

// Table layout constants.
const (
	minTableSamples = 2 // Linear interpolation needs two samples
	tableColumns    = 3 // supp, phi, psi
)

// CSV table files.
const (
	tableFileSuffix = "Tables.csv"
	columnSupport   = "supp"
	columnPhi       = "phi"
	columnPsi       = "psi"
)

// Cascade algorithm constants.
const (
	minCascadeTaps          = 2
	maxCascadeIterations    = 16
	defaultCascadeIteration = 8
)
