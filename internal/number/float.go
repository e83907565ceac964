package number

import (
	"fmt"
	"math"
)

// FloatOptions constrains Float. Nil fields take their documented defaults.
// MultipleOf and FractionDigits are mutually exclusive.
type FloatOptions struct {
	// Min is the inclusive lower bound. Defaults to 0.
	Min *float64

	// Max is the upper bound, exclusive on the continuous path and
	// inclusive once a stride quantizes the range. Defaults to 1.
	Max *float64

	// MultipleOf restricts the result to multiples of a positive stride.
	MultipleOf *float64

	// FractionDigits quantizes the result to a fixed number of decimal
	// places, equivalent to a stride of 10^-FractionDigits.
	FractionDigits *int
}

// Float returns a uniformly distributed real in [Min, Max].
//
// Without a stride the value is continuous and the upper bound is
// exclusive, drawn as r*(max-min)+min from a single draw. With a stride
// (MultipleOf or FractionDigits) the range becomes an integer lattice
// scaled by the stride, making the nominal max reachable; equal bounds
// return min without consuming a draw.
func (s *Sampler) Float(opts FloatOptions) (float64, error) {
	min, max := 0.0, 1.0
	if opts.Min != nil {
		min = *opts.Min
	}
	if opts.Max != nil {
		max = *opts.Max
	}

	if opts.MultipleOf != nil && opts.FractionDigits != nil {
		return 0, fmt.Errorf("%w: multipleOf and fractionDigits cannot be set at the same time", ErrConflictingOptions)
	}

	multipleOf := 0.0
	switch {
	case opts.FractionDigits != nil:
		if *opts.FractionDigits < 0 {
			return 0, fmt.Errorf("%w: fractionDigits must be a non-negative integer, got %d", ErrInvalidArgument, *opts.FractionDigits)
		}
		multipleOf = math.Pow(10, -float64(*opts.FractionDigits))
	case opts.MultipleOf != nil:
		multipleOf = *opts.MultipleOf
		if multipleOf <= 0 {
			return 0, fmt.Errorf("%w: multipleOf must be greater than 0, got %v", ErrInvalidArgument, multipleOf)
		}
	}

	if max == min {
		return min, nil
	}
	if max < min {
		return 0, fmt.Errorf("%w: max %v is less than min %v", ErrInvalidRange, max, min)
	}

	if multipleOf == 0 {
		return s.src.Float64()*(max-min) + min, nil
	}

	// For power-of-ten strides below 1 the reciprocal is computed as an
	// exact power of ten, so quantized results survive the final division
	// without round-off.
	factor := 1 / multipleOf
	if multipleOf < 1 {
		logPrecision := math.Log10(multipleOf)
		if logPrecision == math.Trunc(logPrecision) {
			factor = math.Pow(10, -logPrecision)
		}
	}

	effMin := int64(math.Ceil(min * factor))
	effMax := int64(math.Floor(max * factor))
	if effMax < effMin {
		return 0, fmt.Errorf("%w: no multiple of %v in [%v, %v]", ErrRangeExhausted, multipleOf, min, max)
	}

	return float64(s.sampleLattice(effMin, effMax)) / factor, nil
}
