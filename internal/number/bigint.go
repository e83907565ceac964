package number

import (
	"fmt"
	"math/big"
)

// DefaultBigIntSpan is the default distance between Min and Max for BigInt
// when no upper bound is supplied.
var DefaultBigIntSpan = big.NewInt(999_999_999_999_999)

var bigOne = big.NewInt(1)

// BigIntOptions constrains BigInt. Nil fields take their documented
// defaults. Supplied values are never mutated.
type BigIntOptions struct {
	// Min is the inclusive lower bound. Defaults to 0.
	Min *big.Int

	// Max is the inclusive upper bound. Defaults to Min+DefaultBigIntSpan.
	Max *big.Int

	// MultipleOf restricts the result to multiples of a positive stride.
	// Defaults to 1.
	MultipleOf *big.Int
}

// BigInt returns a uniformly distributed arbitrary-precision integer in the
// inclusive range [Min, Max], aligned to MultipleOf.
//
// The offset into the aligned lattice is drawn as a decimal digit string
// spanning the lattice size, reduced modulo that size. Ranges wider than a
// float64 can resolve (~2^53) therefore stay uniform; collapsing the draw
// into a single real would bias them. A collapsed lattice returns its
// single value without consuming any draws; otherwise the call consumes
// one draw per decimal digit of the lattice size.
func (s *Sampler) BigInt(opts BigIntOptions) (*big.Int, error) {
	min := new(big.Int)
	if opts.Min != nil {
		min.Set(opts.Min)
	}
	max := new(big.Int)
	if opts.Max != nil {
		max.Set(opts.Max)
	} else {
		max.Add(min, DefaultBigIntSpan)
	}
	multipleOf := new(big.Int).Set(bigOne)
	if opts.MultipleOf != nil {
		multipleOf.Set(opts.MultipleOf)
	}

	if multipleOf.Sign() <= 0 {
		return nil, fmt.Errorf("%w: multipleOf must be a positive integer, got %s", ErrInvalidArgument, multipleOf)
	}

	// Truncated division corrected toward the interior of the range:
	// ceil for the lower bound, floor for the upper.
	effMin, rem := new(big.Int).QuoRem(min, multipleOf, new(big.Int))
	if rem.Sign() > 0 {
		effMin.Add(effMin, bigOne)
	}
	effMax, rem := new(big.Int).QuoRem(max, multipleOf, new(big.Int))
	if rem.Sign() < 0 {
		effMax.Sub(effMax, bigOne)
	}

	if effMin.Cmp(effMax) == 0 {
		return effMin.Mul(effMin, multipleOf), nil
	}
	if effMax.Cmp(effMin) < 0 {
		if max.Cmp(min) >= 0 {
			return nil, fmt.Errorf("%w: no multiple of %s in [%s, %s]", ErrRangeExhausted, multipleOf, min, max)
		}
		return nil, fmt.Errorf("%w: max %s is less than min %s", ErrInvalidRange, max, min)
	}

	delta := new(big.Int).Sub(effMax, effMin)
	delta.Add(delta, bigOne)

	digits := s.src.Digits(len(delta.String()), true)
	offset, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: digit source produced %q", ErrInvalidArgument, digits)
	}
	offset.Mod(offset, delta)

	return offset.Add(offset, effMin).Mul(offset, multipleOf), nil
}
