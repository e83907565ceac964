package number

import (
	"fmt"
	"strings"
)

// RomanNumeralMax is the largest value the classical Roman numeral system
// represents without extension notation.
const RomanNumeralMax int64 = 3999

// romanNumerals maps numeral symbols to their values, in the descending
// order the greedy encoder consumes them.
var romanNumerals = []struct {
	symbol string
	value  int64
}{
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
}

// RomanOptions constrains RomanNumeral. Nil fields take their documented
// defaults.
type RomanOptions struct {
	// Min is the inclusive lower bound. Defaults to 1.
	Min *int64

	// Max is the inclusive upper bound. Defaults to RomanNumeralMax.
	Max *int64
}

// RomanNumeral returns a sampled integer rendered as a Roman numeral.
// Bounds must lie within [1, RomanNumeralMax].
func (s *Sampler) RomanNumeral(opts RomanOptions) (string, error) {
	min, max := int64(1), RomanNumeralMax
	if opts.Min != nil {
		min = *opts.Min
	}
	if opts.Max != nil {
		max = *opts.Max
	}

	if min < 1 {
		return "", fmt.Errorf("%w: min should be 1 or greater, got %d", ErrInvalidArgument, min)
	}
	if max > RomanNumeralMax {
		return "", fmt.Errorf("%w: max should be %d or less, got %d", ErrInvalidArgument, RomanNumeralMax, max)
	}

	n, err := s.Int(IntOptions{Min: &min, Max: &max})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, numeral := range romanNumerals {
		for count := n / numeral.value; count > 0; count-- {
			b.WriteString(numeral.symbol)
		}
		n %= numeral.value
	}
	return b.String(), nil
}
