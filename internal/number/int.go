package number

import "fmt"

// IntOptions constrains Int. Nil fields take their documented defaults.
type IntOptions struct {
	// Min is the inclusive lower bound. Defaults to 0.
	Min *int64

	// Max is the inclusive upper bound. Defaults to MaxSafeInt.
	Max *int64

	// MultipleOf restricts the result to multiples of a positive stride.
	// Defaults to 1.
	MultipleOf *int64
}

// Int returns a uniformly distributed integer in the inclusive range
// [Min, Max], aligned to MultipleOf.
//
// When exactly one aligned value exists the call returns it without
// consuming a draw; otherwise it consumes exactly one. Every aligned value
// in range has equal probability.
func (s *Sampler) Int(opts IntOptions) (int64, error) {
	min, max, multipleOf := int64(0), MaxSafeInt, int64(1)
	if opts.Min != nil {
		min = *opts.Min
	}
	if opts.Max != nil {
		max = *opts.Max
	}
	if opts.MultipleOf != nil {
		multipleOf = *opts.MultipleOf
	}

	if multipleOf <= 0 {
		return 0, fmt.Errorf("%w: multipleOf must be a positive integer, got %d", ErrInvalidArgument, multipleOf)
	}

	effMin := ceilDiv(min, multipleOf)
	effMax := floorDiv(max, multipleOf)

	if effMax < effMin {
		if max >= min {
			return 0, fmt.Errorf("%w: no multiple of %d in [%d, %d]", ErrRangeExhausted, multipleOf, min, max)
		}
		return 0, fmt.Errorf("%w: max %d is less than min %d", ErrInvalidRange, max, min)
	}

	return s.sampleLattice(effMin, effMax) * multipleOf, nil
}

// IntN returns a uniformly distributed integer in [0, max], the shorthand
// for Int with only an upper bound.
func (s *Sampler) IntN(max int64) (int64, error) {
	return s.Int(IntOptions{Max: &max})
}
