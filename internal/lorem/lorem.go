// Package lorem generates filler words and sentences from locale datasets.
package lorem

import (
	"fmt"
	"strings"

	"github.com/fablegen/fable/internal/dataset"
	"github.com/fablegen/fable/internal/number"
)

// Module samples filler text from a resolved dataset.
type Module struct {
	numbers *number.Sampler
	data    dataset.Dataset
}

// New creates a lorem module over the given sampler and dataset.
func New(numbers *number.Sampler, data dataset.Dataset) *Module {
	return &Module{numbers: numbers, data: data}
}

// Word returns a single filler word, consuming one draw.
func (m *Module) Word() (string, error) {
	return dataset.Pick(m.numbers, m.data.Words)
}

// Words returns count filler words joined by spaces.
func (m *Module) Words(count int) (string, error) {
	if count <= 0 {
		return "", fmt.Errorf("%w: count must be positive, got %d", number.ErrInvalidArgument, count)
	}
	words := make([]string, count)
	for i := range words {
		word, err := m.Word()
		if err != nil {
			return "", err
		}
		words[i] = word
	}
	return strings.Join(words, " "), nil
}

// Sentence returns a capitalized sentence of between min and max words,
// ending with a period. The word count itself consumes one draw.
func (m *Module) Sentence(min, max int64) (string, error) {
	count, err := m.numbers.Int(number.IntOptions{Min: &min, Max: &max})
	if err != nil {
		return "", fmt.Errorf("sentence length: %w", err)
	}
	body, err := m.Words(int(count))
	if err != nil {
		return "", err
	}
	return strings.ToUpper(body[:1]) + body[1:] + ".", nil
}
