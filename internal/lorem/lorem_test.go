package lorem

import (
	"errors"
	"strings"
	"testing"

	"github.com/fablegen/fable/internal/dataset"
	"github.com/fablegen/fable/internal/number"
	"github.com/fablegen/fable/internal/random"
)

func newModule(t *testing.T, seed int64) *Module {
	t.Helper()
	data, err := dataset.Resolve("en")
	if err != nil {
		t.Fatalf("resolve dataset: %v", err)
	}
	return New(number.NewSampler(random.New(seed)), data)
}

// TestWordComesFromDataset ensures words are table members.
func TestWordComesFromDataset(t *testing.T) {
	data, err := dataset.Resolve("en")
	if err != nil {
		t.Fatalf("resolve dataset: %v", err)
	}
	m := newModule(t, 3)
	for i := 0; i < 100; i++ {
		word, err := m.Word()
		if err != nil {
			t.Fatalf("Word returned error: %v", err)
		}
		found := false
		for _, w := range data.Words {
			if w == word {
				found = true
			}
		}
		if !found {
			t.Fatalf("Word %q not in dataset", word)
		}
	}
}

// TestWordsCountAndDeterminism ensures the requested count and replayable
// output.
func TestWordsCountAndDeterminism(t *testing.T) {
	a := newModule(t, 5)
	b := newModule(t, 5)
	wa, err := a.Words(7)
	if err != nil {
		t.Fatalf("Words returned error: %v", err)
	}
	wb, err := b.Words(7)
	if err != nil {
		t.Fatalf("Words returned error: %v", err)
	}
	if wa != wb {
		t.Fatalf("words diverged: %q != %q", wa, wb)
	}
	if len(strings.Fields(wa)) != 7 {
		t.Fatalf("Words(7) = %q, want 7 words", wa)
	}
}

// TestWordsRejectsNonPositiveCount ensures degenerate counts error.
func TestWordsRejectsNonPositiveCount(t *testing.T) {
	m := newModule(t, 7)
	if _, err := m.Words(0); !errors.Is(err, number.ErrInvalidArgument) {
		t.Fatalf("Words(0) error = %v, want %v", err, number.ErrInvalidArgument)
	}
}

// TestSentenceShape ensures capitalization, terminal period, and word
// count bounds.
func TestSentenceShape(t *testing.T) {
	m := newModule(t, 9)
	for i := 0; i < 100; i++ {
		s, err := m.Sentence(3, 8)
		if err != nil {
			t.Fatalf("Sentence returned error: %v", err)
		}
		if !strings.HasSuffix(s, ".") {
			t.Fatalf("Sentence %q does not end with a period", s)
		}
		if s[0] < 'A' || s[0] > 'Z' {
			t.Fatalf("Sentence %q is not capitalized", s)
		}
		words := len(strings.Fields(s))
		if words < 3 || words > 8 {
			t.Fatalf("Sentence %q has %d words, want within [3, 8]", s, words)
		}
	}
}
