// Package random provides the seeded randomness source every fable sampler
// draws from.
//
// A Source produces a deterministic sequence of reals in [0,1) for a given
// seed: the same seed yields the same sequence, and therefore the same
// generated values downstream. A Source is not safe for concurrent use;
// give each generation session its own.
package random

import (
	"math/rand"
	"strings"
)

// Source wraps a seeded pseudo-random number generator behind the narrow
// draw interface the samplers consume.
type Source struct {
	seed int64
	rng  *rand.Rand
}

// New creates a Source seeded with the given value.
func New(seed int64) *Source {
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the source was created with, so a session can be
// reported and replayed.
func (s *Source) Seed() int64 {
	return s.seed
}

// Float64 returns the next real in [0,1). Each call consumes exactly one
// draw from the underlying sequence.
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Digits returns a string of length decimal digits, consuming one draw per
// digit. When allowLeadingZeros is false the first digit is drawn from 1-9
// so the string never starts with zero.
//
// The big-integer sampler uses Digits instead of a single Float64 draw to
// keep very large ranges uniform: a float64 only carries ~53 bits of
// precision, while a digit string can cover any span exactly.
func (s *Source) Digits(length int, allowLeadingZeros bool) string {
	if length <= 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		if i == 0 && !allowLeadingZeros {
			b.WriteByte(byte('1' + int(s.Float64()*9)))
			continue
		}
		b.WriteByte(byte('0' + int(s.Float64()*10)))
	}
	return b.String()
}
