package mathutil

// halfDivisor turns a level into the exponent of its square-root scale.
const halfDivisor = 2

// MaxExactInt is the largest magnitude at which every integer has an exact
// float64 representation (2^53).
const MaxExactInt = 1 << 53
