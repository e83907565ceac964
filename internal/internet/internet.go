// Package internet generates network identities: addresses within CIDR
// blocks, MAC addresses, ports, emails, usernames, and passwords.
package internet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fablegen/fable/internal/dataset"
	"github.com/fablegen/fable/internal/number"
)

// Module samples network identities. It shares one Sampler (and through it
// one randomness source) with every other module in a generation session.
type Module struct {
	numbers *number.Sampler
	data    dataset.Dataset
}

// New creates an internet module over the given sampler and dataset.
func New(numbers *number.Sampler, data dataset.Dataset) *Module {
	return &Module{numbers: numbers, data: data}
}

// Port returns a port number in [0, 65535].
func (m *Module) Port() (int64, error) {
	return m.numbers.IntN(65535)
}

// IPv6 returns an address of eight colon-separated groups of four
// lowercase hex digits.
func (m *Module) IPv6() (string, error) {
	groups := make([]string, 8)
	for i := range groups {
		var b strings.Builder
		for j := 0; j < 4; j++ {
			digit, err := m.numbers.Hex(number.IntOptions{})
			if err != nil {
				return "", err
			}
			b.WriteString(digit)
		}
		groups[i] = b.String()
	}
	return strings.Join(groups, ":"), nil
}

// MAC returns a hardware address of six colon-separated lowercase hex
// bytes.
func (m *Module) MAC() (string, error) {
	max := int64(255)
	bytes := make([]string, 6)
	for i := range bytes {
		value, err := m.numbers.Int(number.IntOptions{Max: &max})
		if err != nil {
			return "", err
		}
		bytes[i] = fmt.Sprintf("%02x", value)
	}
	return strings.Join(bytes, ":"), nil
}

// UserName composes a login handle from a first and last name, following
// one of the deterministic join patterns.
func (m *Module) UserName(first, last string) (string, error) {
	first = sanitizeHandle(first)
	last = sanitizeHandle(last)

	pattern, err := m.numbers.IntN(2)
	if err != nil {
		return "", err
	}
	switch pattern {
	case 0:
		return first + "." + last, nil
	case 1:
		return first + "_" + last, nil
	default:
		suffix, err := m.numbers.Int(number.IntOptions{Min: int64ptr(10), Max: int64ptr(99)})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s.%s%d", first, last, suffix), nil
	}
}

// Email composes an address from a first and last name and a provider
// drawn from the locale dataset.
func (m *Module) Email(first, last string) (string, error) {
	user, err := m.UserName(first, last)
	if err != nil {
		return "", err
	}
	provider, err := dataset.Pick(m.numbers, m.data.EmailProviders)
	if err != nil {
		return "", err
	}
	return user + "@" + provider, nil
}

// sanitizeHandle lowercases a name part and strips everything that is not
// a letter or digit.
func sanitizeHandle(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Password character classes. Memorable passwords alternate consonants and
// vowels; everything else defaults to word characters.
var (
	wordChar  = regexp.MustCompile(`\w`)
	consonant = regexp.MustCompile(`[bcdfghjklmnpqrstvwxyz]`)
	vowel     = regexp.MustCompile(`[aeiou]`)
)

// maxCharAttempts bounds how many candidate characters are drawn for a
// single password position before the pattern is declared unsatisfiable.
const maxCharAttempts = 100

// PasswordOptions constrains Password. Zero values take their documented
// defaults.
type PasswordOptions struct {
	// Length is the total length including the prefix. Defaults to 15.
	Length int

	// Memorable alternates consonant and vowel characters instead of
	// applying Pattern.
	Memorable bool

	// Pattern accepts or rejects each candidate character. Defaults to \w.
	Pattern *regexp.Regexp

	// Prefix seeds the password verbatim.
	Prefix string
}

// Password draws printable characters until the requested length is
// reached, keeping only those the active pattern accepts. Each position is
// a bounded rejection loop, so an unsatisfiable pattern fails with an
// error instead of recursing forever.
func (m *Module) Password(opts PasswordOptions) (string, error) {
	length := opts.Length
	if length == 0 {
		length = 15
	}
	if length < 0 {
		return "", fmt.Errorf("%w: length must be non-negative, got %d", number.ErrInvalidArgument, length)
	}
	pattern := opts.Pattern
	if pattern == nil {
		pattern = wordChar
	}

	var b strings.Builder
	b.WriteString(opts.Prefix)
	for b.Len() < length {
		active := pattern
		if opts.Memorable {
			if b.Len()%2 == 0 {
				active = consonant
			} else {
				active = vowel
			}
		}

		accepted := false
		for attempt := 0; attempt < maxCharAttempts; attempt++ {
			code, err := m.numbers.Int(number.IntOptions{Min: int64ptr(33), Max: int64ptr(126)})
			if err != nil {
				return "", err
			}
			char := byte(code)
			if opts.Memorable {
				char = lowerByte(char)
			}
			if active.Match([]byte{char}) {
				b.WriteByte(char)
				accepted = true
				break
			}
		}
		if !accepted {
			return "", fmt.Errorf("%w: pattern %q rejected %d successive candidates", number.ErrInvalidArgument, active, maxCharAttempts)
		}
	}
	return b.String(), nil
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func int64ptr(v int64) *int64 { return &v }
