// Package person generates plausible people names from locale datasets.
package person

import (
	"fmt"
	"strings"

	"github.com/fablegen/fable/internal/dataset"
	"github.com/fablegen/fable/internal/number"
)

// Module samples person names from a resolved dataset. It shares one
// Sampler (and through it one randomness source) with every other module
// in a generation session.
type Module struct {
	numbers *number.Sampler
	data    dataset.Dataset
}

// New creates a person module over the given sampler and dataset.
func New(numbers *number.Sampler, data dataset.Dataset) *Module {
	return &Module{numbers: numbers, data: data}
}

// FirstName returns a locale-appropriate given name, consuming one draw.
func (m *Module) FirstName() (string, error) {
	return dataset.Pick(m.numbers, m.data.FirstNames)
}

// LastName returns a locale-appropriate family name, consuming one draw.
func (m *Module) LastName() (string, error) {
	return dataset.Pick(m.numbers, m.data.LastNames)
}

// FullName returns a composed name following a weighted locale pattern,
// such as "Mary Smith" or "Dr. Mary Smith".
func (m *Module) FullName() (string, error) {
	pattern, err := dataset.PickWeighted(m.numbers, m.data.FullNamePatterns)
	if err != nil {
		return "", fmt.Errorf("pick name pattern: %w", err)
	}
	return m.expand(pattern)
}

// expand replaces the placeholders of a name pattern, drawing each part
// only when the pattern references it.
func (m *Module) expand(pattern string) (string, error) {
	out := pattern
	for _, placeholder := range []struct {
		token string
		table []string
	}{
		{"{prefix}", m.data.NamePrefixes},
		{"{first}", m.data.FirstNames},
		{"{last}", m.data.LastNames},
		{"{suffix}", m.data.NameSuffixes},
	} {
		for strings.Contains(out, placeholder.token) {
			part, err := dataset.Pick(m.numbers, placeholder.table)
			if err != nil {
				return "", fmt.Errorf("expand %s: %w", placeholder.token, err)
			}
			out = strings.Replace(out, placeholder.token, part, 1)
		}
	}
	return out, nil
}
