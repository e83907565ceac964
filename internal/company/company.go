// Package company generates plausible company names and catch phrases from
// locale datasets.
package company

import (
	"fmt"
	"strings"

	"github.com/fablegen/fable/internal/dataset"
	"github.com/fablegen/fable/internal/number"
)

// Module samples company content from a resolved dataset.
type Module struct {
	numbers *number.Sampler
	data    dataset.Dataset
}

// New creates a company module over the given sampler and dataset.
func New(numbers *number.Sampler, data dataset.Dataset) *Module {
	return &Module{numbers: numbers, data: data}
}

// Name returns a company name following a weighted locale pattern, such as
// "Smith LLC" or "Patel, Chen and Garcia".
func (m *Module) Name() (string, error) {
	pattern, err := dataset.PickWeighted(m.numbers, m.data.CompanyPatterns)
	if err != nil {
		return "", fmt.Errorf("pick company pattern: %w", err)
	}

	out := pattern
	for strings.Contains(out, "{last}") {
		part, err := dataset.Pick(m.numbers, m.data.LastNames)
		if err != nil {
			return "", fmt.Errorf("expand {last}: %w", err)
		}
		out = strings.Replace(out, "{last}", part, 1)
	}
	for strings.Contains(out, "{suffix}") {
		part, err := dataset.Pick(m.numbers, m.data.CompanySuffixes)
		if err != nil {
			return "", fmt.Errorf("expand {suffix}: %w", err)
		}
		out = strings.Replace(out, "{suffix}", part, 1)
	}
	return out, nil
}

// CatchPhrase returns a two-word marketing phrase over a buzz noun, such as
// "streamlined middleware".
func (m *Module) CatchPhrase() (string, error) {
	adjective, err := dataset.Pick(m.numbers, m.data.BuzzAdjectives)
	if err != nil {
		return "", err
	}
	noun, err := dataset.Pick(m.numbers, m.data.BuzzNouns)
	if err != nil {
		return "", err
	}
	return adjective + " " + noun, nil
}
