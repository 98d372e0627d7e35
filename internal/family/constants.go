package family

// Family name prefixes.
const (
	prefixDaubechies = "db"
	prefixSymlet     = "sym"
	prefixCoiflet    = "coif"
	nameMeyer        = "dmey"
)

// Support length multipliers: Daubechies and symlets of order N span 2N
// samples, coiflets span 6N.
const (
	orthogonalMultiplier = 2
	coifletMultiplier    = 6
)

// meyerSupportHi is the upper support bound of the discrete Meyer table.
const meyerSupportHi = 101
