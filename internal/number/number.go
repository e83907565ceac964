// Package number implements the constrained numeric sampling that every
// other fable module builds on.
//
// A Sampler turns raw [0,1) draws into uniformly distributed integers,
// floats, and arbitrary-precision integers within inclusive bounds,
// optionally constrained to multiples of a stride, plus thin encodings of
// those integers (binary/octal/hex strings, Roman numerals).
//
// # Determinism
//
// All randomness funnels through the RawSource the Sampler was created
// with. Each sampling call consumes a fixed number of draws for a given
// set of arguments: one per generated value, one per digit on the
// big-integer path, and zero when the constraints admit exactly one value.
// That accounting is part of the contract, since it decides what every
// subsequent call in a seeded session observes.
package number

import "errors"

// MaxSafeInt is the largest integer a float64 represents exactly (2^53-1).
// It is the default upper bound for Int, and the widest span for which the
// single-draw sampling path stays uniform.
const MaxSafeInt int64 = 1<<53 - 1

// ErrInvalidArgument indicates a malformed constraint, such as a
// non-positive stride or Roman-numeral bounds outside [1, 3999].
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidRange indicates max is less than min.
var ErrInvalidRange = errors.New("max must be greater than or equal to min")

// ErrRangeExhausted indicates max is at least min, but no stride-aligned
// value lies between them.
var ErrRangeExhausted = errors.New("no value in range satisfies the constraints")

// ErrConflictingOptions indicates mutually exclusive constraints were both
// supplied.
var ErrConflictingOptions = errors.New("conflicting options")

// RawSource is the narrow draw capability the samplers consume. It is
// deliberately smaller than any concrete source type: samplers never seed,
// reset, or otherwise reach into the source they share.
type RawSource interface {
	// Float64 returns the next real in [0,1).
	Float64() float64

	// Digits returns a string of length decimal digits, optionally
	// permitting a leading zero.
	Digits(length int, allowLeadingZeros bool) string
}

// Sampler draws constrained numeric values from a shared raw source.
type Sampler struct {
	src RawSource
}

// NewSampler creates a Sampler drawing from the given source.
func NewSampler(src RawSource) *Sampler {
	return &Sampler{src: src}
}

// sampleLattice draws a uniform integer from the inclusive lattice
// [effMin, effMax]. A collapsed lattice returns its single value without
// consuming a draw.
func (s *Sampler) sampleLattice(effMin, effMax int64) int64 {
	if effMin == effMax {
		return effMin
	}
	delta := effMax - effMin + 1
	return effMin + int64(s.src.Float64()*float64(delta))
}

// floorDiv divides a by b rounding toward negative infinity. b is always
// positive here.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// ceilDiv divides a by b rounding toward positive infinity. b is always
// positive here.
func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
