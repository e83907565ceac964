package internet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fablegen/fable/internal/number"
)

// Named network aliases resolvable by IPv4.
const (
	NetworkAny       = "any"
	NetworkLoopback  = "loopback"
	NetworkPrivateA  = "private-a"
	NetworkPrivateB  = "private-b"
	NetworkPrivateC  = "private-c"
	NetworkTestNet1  = "testnet-1"
	NetworkTestNet2  = "testnet-2"
	NetworkTestNet3  = "testnet-3"
	NetworkLinkLocal = "link-local"
	NetworkMulticast = "multicast"
)

// networks maps the named aliases to their canonical CIDR blocks: the full
// address space, loopback, the three RFC 1918 private ranges, the three
// documentation test-nets, link-local, and multicast.
var networks = map[string]string{
	NetworkAny:       "0.0.0.0/0",
	NetworkLoopback:  "127.0.0.0/8",
	NetworkPrivateA:  "10.0.0.0/8",
	NetworkPrivateB:  "172.16.0.0/12",
	NetworkPrivateC:  "192.168.0.0/16",
	NetworkTestNet1:  "192.0.2.0/24",
	NetworkTestNet2:  "198.51.100.0/24",
	NetworkTestNet3:  "203.0.113.0/24",
	NetworkLinkLocal: "169.254.0.0/16",
	NetworkMulticast: "224.0.0.0/4",
}

// IPv4Options selects the subnet an address is drawn from. CIDRBlock takes
// precedence over Network; with neither set, the full address space is
// used.
type IPv4Options struct {
	// CIDRBlock is a dotted-quad-slash-length subnet, e.g. "192.168.0.0/16".
	CIDRBlock string

	// Network is one of the named aliases, e.g. NetworkPrivateA.
	Network string
}

// IPv4 returns a uniformly distributed address within the selected subnet,
// rendered as four dot-separated unsigned bytes.
//
// Every host offset in the subnet is eligible, including the network and
// broadcast addresses. The draw accounting is the Integer Sampler's: one
// draw, or none for a /32 block.
func (m *Module) IPv4(opts IPv4Options) (string, error) {
	cidr := opts.CIDRBlock
	if cidr == "" {
		name := opts.Network
		if name == "" {
			name = NetworkAny
		}
		resolved, ok := networks[name]
		if !ok {
			return "", fmt.Errorf("%w: unknown network %q", number.ErrInvalidArgument, name)
		}
		cidr = resolved
	}

	rawIP, prefixLen, err := parseCIDR(cidr)
	if err != nil {
		return "", err
	}

	// Host bits are everything beyond the prefix; a /32 leaves none.
	subnetMask := uint32(0xFFFFFFFF) >> prefixLen
	networkIP := rawIP &^ subnetMask

	offset, err := m.numbers.IntN(int64(subnetMask))
	if err != nil {
		return "", err
	}

	ip := networkIP | uint32(offset)
	return formatIPv4(ip), nil
}

// parseCIDR validates and parses a canonical dotted-quad-slash-length
// string into a 32-bit address and prefix length.
func parseCIDR(cidr string) (uint32, int, error) {
	address, prefix, ok := strings.Cut(cidr, "/")
	if !ok {
		return 0, 0, fmt.Errorf("%w: CIDR block %q must be in the form x.x.x.x/y", number.ErrInvalidArgument, cidr)
	}

	octets := strings.Split(address, ".")
	if len(octets) != 4 {
		return 0, 0, fmt.Errorf("%w: CIDR block %q must have four octets", number.ErrInvalidArgument, cidr)
	}

	var rawIP uint32
	for _, octet := range octets {
		value, err := parseBounded(octet, 255)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: CIDR block %q has invalid octet %q", number.ErrInvalidArgument, cidr, octet)
		}
		rawIP = rawIP<<8 | uint32(value)
	}

	prefixLen, err := parseBounded(prefix, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: CIDR block %q has invalid prefix length %q", number.ErrInvalidArgument, cidr, prefix)
	}

	return rawIP, prefixLen, nil
}

// parseBounded parses a plain decimal between 0 and max inclusive.
func parseBounded(s string, max int) (int, error) {
	if s == "" || len(s) > 3 {
		return 0, fmt.Errorf("value %q out of range", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("value %q is not a decimal number", s)
		}
	}
	value, err := strconv.Atoi(s)
	if err != nil || value > max {
		return 0, fmt.Errorf("value %q out of range", s)
	}
	return value, nil
}

// formatIPv4 renders a 32-bit address as dotted unsigned bytes.
func formatIPv4(ip uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(ip>>24), byte(ip>>16), byte(ip>>8), byte(ip))
}
