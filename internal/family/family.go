// Package family maps wavelet family names to the compact support of their
// scaling and wavelet functions.
package family

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
)

// ErrUnsupported is returned when a family name has no known support.
var ErrUnsupported = errors.New("unsupported wavelet family")

// Support is the closed integer interval [Lo, Hi], in normalized grid units,
// outside which the scaling and wavelet functions of a family are zero.
type Support struct {
	Lo int
	Hi int
}

// Len returns the width of the support interval.
func (s Support) Len() int {
	return s.Hi - s.Lo
}

// String implements fmt.Stringer.
func (s Support) String() string {
	return fmt.Sprintf("[%d, %d]", s.Lo, s.Hi)
}

// kind describes one parameterized family: the accepted orders and the
// multiplier of the order in the support length.
type kind struct {
	orders     []int
	multiplier int
}

var kinds = map[string]kind{
	prefixDaubechies: {orders: []int{2, 3, 4, 5, 6, 7, 8, 9, 10}, multiplier: orthogonalMultiplier},
	prefixSymlet:     {orders: []int{4, 5, 10}, multiplier: orthogonalMultiplier},
	prefixCoiflet:    {orders: []int{1, 2, 3, 4, 5}, multiplier: coifletMultiplier},
}

var namePattern = regexp.MustCompile(`^([a-z]+)(\d+)$`)

// Lookup returns the support of the named family. The second result is
// false when the name is not recognized.
func Lookup(name string) (Support, bool) {
	if name == nameMeyer {
		return Support{Lo: 0, Hi: meyerSupportHi}, true
	}

	m := namePattern.FindStringSubmatch(name)
	if m == nil {
		return Support{}, false
	}

	k, ok := kinds[m[1]]
	if !ok {
		return Support{}, false
	}

	order, err := strconv.Atoi(m[2])
	if err != nil || !slices.Contains(k.orders, order) {
		return Support{}, false
	}

	// Leading zeros ("db04") are not family names.
	if strconv.Itoa(order) != m[2] {
		return Support{}, false
	}

	return Support{Lo: 0, Hi: k.multiplier*order - 1}, true
}

// Resolve is like Lookup but reports an unknown family as ErrUnsupported.
func Resolve(name string) (Support, error) {
	s, ok := Lookup(name)
	if !ok {
		return Support{}, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
	return s, nil
}

// Names returns every recognized family name in sorted order.
func Names() []string {
	names := []string{nameMeyer}
	for prefix, k := range kinds {
		for _, order := range k.orders {
			names = append(names, prefix+strconv.Itoa(order))
		}
	}
	slices.Sort(names)
	return names
}

// Daubechies returns the family name of the Daubechies wavelet of order n.
func Daubechies(n int) string {
	return prefixDaubechies + strconv.Itoa(n)
}

// Symlet returns the family name of the symlet of order n.
func Symlet(n int) string {
	return prefixSymlet + strconv.Itoa(n)
}

// Coiflet returns the family name of the coiflet of order n.
func Coiflet(n int) string {
	return prefixCoiflet + strconv.Itoa(n)
}

// Meyer returns the family name of the discrete Meyer wavelet.
func Meyer() string {
	return nameMeyer
}
