package internet

import (
	"errors"
	"regexp"
	"strconv"
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

// octets parses a dotted quad into its numeric parts.
func octets(t *testing.T, ip string) [4]int {
	t.Helper()
	parts := strings.Split(ip, ".")
	if len(parts) != 4 {
		t.Fatalf("address %q does not have four octets", ip)
	}
	var out [4]int
	for i, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil || value < 0 || value > 255 {
			t.Fatalf("address %q has invalid octet %q", ip, part)
		}
		out[i] = value
	}
	return out
}

// TestIPv4IsDeterministic ensures equal seeds yield the same addresses.
func TestIPv4IsDeterministic(t *testing.T) {
	a := newModule(t, 31)
	b := newModule(t, 31)
	for i := 0; i < 50; i++ {
		va, err := a.IPv4(IPv4Options{})
		if err != nil {
			t.Fatalf("IPv4 returned error: %v", err)
		}
		vb, err := b.IPv4(IPv4Options{})
		if err != nil {
			t.Fatalf("IPv4 returned error: %v", err)
		}
		if va != vb {
			t.Fatalf("address %d diverged: %s != %s", i, va, vb)
		}
	}
}

// TestIPv4StaysWithinCIDR ensures every sampled address keeps the network
// bits of its block.
func TestIPv4StaysWithinCIDR(t *testing.T) {
	m := newModule(t, 37)
	for i := 0; i < 1000; i++ {
		ip, err := m.IPv4(IPv4Options{CIDRBlock: "198.51.100.0/24"})
		if err != nil {
			t.Fatalf("IPv4 returned error: %v", err)
		}
		got := octets(t, ip)
		if got[0] != 198 || got[1] != 51 || got[2] != 100 {
			t.Fatalf("address %s escaped 198.51.100.0/24", ip)
		}
	}
}

// TestIPv4NonOctetAlignedPrefix ensures masks that split an octet are
// honored.
func TestIPv4NonOctetAlignedPrefix(t *testing.T) {
	m := newModule(t, 41)
	for i := 0; i < 1000; i++ {
		ip, err := m.IPv4(IPv4Options{CIDRBlock: "172.16.0.0/12"})
		if err != nil {
			t.Fatalf("IPv4 returned error: %v", err)
		}
		got := octets(t, ip)
		if got[0] != 172 || got[1] < 16 || got[1] > 31 {
			t.Fatalf("address %s escaped 172.16.0.0/12", ip)
		}
	}
}

// TestIPv4NamedNetworks ensures aliases resolve to their blocks.
func TestIPv4NamedNetworks(t *testing.T) {
	m := newModule(t, 43)
	for i := 0; i < 200; i++ {
		ip, err := m.IPv4(IPv4Options{Network: NetworkPrivateA})
		if err != nil {
			t.Fatalf("IPv4 returned error: %v", err)
		}
		if got := octets(t, ip); got[0] != 10 {
			t.Fatalf("private-a address %s does not start with 10", ip)
		}
	}
	ip, err := m.IPv4(IPv4Options{Network: NetworkLoopback})
	if err != nil {
		t.Fatalf("IPv4 returned error: %v", err)
	}
	if got := octets(t, ip); got[0] != 127 {
		t.Fatalf("loopback address %s does not start with 127", ip)
	}
}

// TestIPv4FullPrefixCollapses ensures a /32 returns the block's single
// address without consuming a draw.
func TestIPv4FullPrefixCollapses(t *testing.T) {
	m := newModule(t, 47)
	ip, err := m.IPv4(IPv4Options{CIDRBlock: "203.0.113.7/32"})
	if err != nil {
		t.Fatalf("IPv4 returned error: %v", err)
	}
	if ip != "203.0.113.7" {
		t.Fatalf("IPv4 = %s, want 203.0.113.7", ip)
	}
	after, err := m.numbers.IntN(1000)
	if err != nil {
		t.Fatalf("IntN returned error: %v", err)
	}

	fresh := newModule(t, 47)
	want, err := fresh.numbers.IntN(1000)
	if err != nil {
		t.Fatalf("IntN returned error: %v", err)
	}
	if after != want {
		t.Fatalf("/32 sample consumed a draw: next sample %d, want %d", after, want)
	}
}

// TestIPv4RejectsMalformedCIDR ensures syntactic validation errors out.
func TestIPv4RejectsMalformedCIDR(t *testing.T) {
	m := newModule(t, 53)
	blocks := []string{
		"10.0.0.0",
		"10.0.0/8",
		"10.0.0.0.0/8",
		"10.0.0.256/8",
		"10.0.0.0/33",
		"10.0.0.0/x",
		"a.b.c.d/8",
		"10.0.0.-1/8",
		"",
	}
	for _, block := range blocks {
		if _, err := m.IPv4(IPv4Options{CIDRBlock: block}); !errors.Is(err, number.ErrInvalidArgument) {
			t.Fatalf("CIDR %q error = %v, want %v", block, err, number.ErrInvalidArgument)
		}
	}
}

// TestIPv4RejectsUnknownAlias ensures unknown network names error out.
func TestIPv4RejectsUnknownAlias(t *testing.T) {
	m := newModule(t, 59)
	if _, err := m.IPv4(IPv4Options{Network: "public-z"}); !errors.Is(err, number.ErrInvalidArgument) {
		t.Fatalf("unknown alias error = %v, want %v", err, number.ErrInvalidArgument)
	}
}

// TestPortRange ensures ports stay within [0, 65535].
func TestPortRange(t *testing.T) {
	m := newModule(t, 61)
	for i := 0; i < 500; i++ {
		port, err := m.Port()
		if err != nil {
			t.Fatalf("Port returned error: %v", err)
		}
		if port < 0 || port > 65535 {
			t.Fatalf("Port returned %d", port)
		}
	}
}

// TestIPv6Shape ensures eight groups of four lowercase hex digits.
func TestIPv6Shape(t *testing.T) {
	m := newModule(t, 67)
	shape := regexp.MustCompile(`^([0-9a-f]{4}:){7}[0-9a-f]{4}$`)
	for i := 0; i < 50; i++ {
		ip, err := m.IPv6()
		if err != nil {
			t.Fatalf("IPv6 returned error: %v", err)
		}
		if !shape.MatchString(ip) {
			t.Fatalf("IPv6 returned %q", ip)
		}
	}
}

// TestMACShape ensures six colon-separated lowercase hex bytes.
func TestMACShape(t *testing.T) {
	m := newModule(t, 71)
	shape := regexp.MustCompile(`^([0-9a-f]{2}:){5}[0-9a-f]{2}$`)
	for i := 0; i < 50; i++ {
		mac, err := m.MAC()
		if err != nil {
			t.Fatalf("MAC returned error: %v", err)
		}
		if !shape.MatchString(mac) {
			t.Fatalf("MAC returned %q", mac)
		}
	}
}

// TestUserNameShape ensures handles are built from the sanitized names.
func TestUserNameShape(t *testing.T) {
	m := newModule(t, 73)
	for i := 0; i < 100; i++ {
		handle, err := m.UserName("Mary", "O'Neil")
		if err != nil {
			t.Fatalf("UserName returned error: %v", err)
		}
		if !strings.HasPrefix(handle, "mary.") && !strings.HasPrefix(handle, "mary_") {
			t.Fatalf("UserName returned %q", handle)
		}
		if strings.Contains(handle, "'") {
			t.Fatalf("UserName %q was not sanitized", handle)
		}
	}
}

// TestEmailShape ensures addresses end with a dataset provider.
func TestEmailShape(t *testing.T) {
	data, err := dataset.Resolve("en")
	if err != nil {
		t.Fatalf("resolve dataset: %v", err)
	}
	m := newModule(t, 79)
	for i := 0; i < 100; i++ {
		email, err := m.Email("James", "Chen")
		if err != nil {
			t.Fatalf("Email returned error: %v", err)
		}
		at := strings.LastIndex(email, "@")
		if at <= 0 {
			t.Fatalf("Email returned %q", email)
		}
		provider := email[at+1:]
		found := false
		for _, p := range data.EmailProviders {
			if p == provider {
				found = true
			}
		}
		if !found {
			t.Fatalf("Email provider %q not in dataset", provider)
		}
	}
}

// TestPasswordLengthAndPattern ensures passwords meet length and the
// default word-character pattern.
func TestPasswordLengthAndPattern(t *testing.T) {
	m := newModule(t, 83)
	word := regexp.MustCompile(`^\w+$`)
	pw, err := m.Password(PasswordOptions{})
	if err != nil {
		t.Fatalf("Password returned error: %v", err)
	}
	if len(pw) != 15 {
		t.Fatalf("default password length = %d, want 15", len(pw))
	}
	if !word.MatchString(pw) {
		t.Fatalf("password %q violates the default pattern", pw)
	}

	pw, err = m.Password(PasswordOptions{Length: 8, Prefix: "x!"})
	if err != nil {
		t.Fatalf("Password returned error: %v", err)
	}
	if len(pw) != 8 || !strings.HasPrefix(pw, "x!") {
		t.Fatalf("prefixed password = %q, want length 8 with prefix x!", pw)
	}
}

// TestPasswordMemorable ensures memorable passwords alternate consonants
// and vowels.
func TestPasswordMemorable(t *testing.T) {
	m := newModule(t, 89)
	pw, err := m.Password(PasswordOptions{Length: 10, Memorable: true})
	if err != nil {
		t.Fatalf("Password returned error: %v", err)
	}
	for i, c := range pw {
		isVowel := strings.ContainsRune("aeiou", c)
		if i%2 == 0 && isVowel {
			t.Fatalf("position %d of %q should be a consonant", i, pw)
		}
		if i%2 == 1 && !isVowel {
			t.Fatalf("position %d of %q should be a vowel", i, pw)
		}
	}
}

// TestPasswordUnsatisfiablePattern ensures the bounded rejection loop
// errors instead of spinning forever.
func TestPasswordUnsatisfiablePattern(t *testing.T) {
	m := newModule(t, 97)
	never := regexp.MustCompile(`[^\x21-\x7e]`)
	if _, err := m.Password(PasswordOptions{Length: 4, Pattern: never}); !errors.Is(err, number.ErrInvalidArgument) {
		t.Fatalf("unsatisfiable pattern error = %v, want %v", err, number.ErrInvalidArgument)
	}
}
