package number

import "strconv"

// Binary returns a sampled integer rendered in base 2, without a prefix.
// The default range is [0, 1], a single random bit.
func (s *Sampler) Binary(opts IntOptions) (string, error) {
	return s.radix(opts, 1, 2)
}

// Octal returns a sampled integer rendered in base 8, without a prefix.
// The default range is [0, 7], a single octal digit.
func (s *Sampler) Octal(opts IntOptions) (string, error) {
	return s.radix(opts, 7, 8)
}

// Hex returns a sampled integer rendered in lowercase base 16, without a
// prefix. The default range is [0, 15], a single hex digit.
func (s *Sampler) Hex(opts IntOptions) (string, error) {
	return s.radix(opts, 15, 16)
}

// radix draws one integer with a radix-specific default upper bound and
// renders it in the given base. All error conditions are Int's.
func (s *Sampler) radix(opts IntOptions, defaultMax int64, base int) (string, error) {
	if opts.Max == nil {
		opts.Max = &defaultMax
	}
	n, err := s.Int(opts)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n, base), nil
}
