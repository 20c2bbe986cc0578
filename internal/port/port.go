package port

import (
	"fmt"
	"strconv"
	"strings"
)

// Valid TCP port bounds.
const (
	MinPort = 1
	MaxPort = 65535
)

// DefaultRange is the IANA dynamic/private port block.
var DefaultRange = Range{Min: 49152, Max: 65535}

// tlsSuffix is appended to a service name to form the hash input of its TLS key.
const tlsSuffix = "-tls"

// Range is an inclusive port interval.
type Range struct {
	Min int `toml:"min" yaml:"min" json:"min"`
	Max int `toml:"max" yaml:"max" json:"max"`
}

// Size returns the number of ports in the range.
func (r Range) Size() int {
	return r.Max - r.Min + 1
}

// Contains reports whether p lies within the range.
func (r Range) Contains(p int) bool {
	return p >= r.Min && p <= r.Max
}

// Validate checks that the range is non-empty and holds only valid TCP ports.
func (r Range) Validate() error {
	if r.Min < MinPort {
		return fmt.Errorf("port range minimum must be at least %d (got %d)", MinPort, r.Min)
	}
	if r.Max > MaxPort {
		return fmt.Errorf("port range maximum must be at most %d (got %d)", MaxPort, r.Max)
	}
	if r.Min > r.Max {
		return fmt.Errorf("port range minimum %d is greater than maximum %d", r.Min, r.Max)
	}
	return nil
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// ParseRange parses a range written as "min-max". A single number yields a
// one-port range.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, fmt.Errorf("empty port range")
	}

	lo, hi, found := strings.Cut(s, "-")
	if !found {
		hi = lo
	}

	minPort, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return Range{}, fmt.Errorf("invalid port range %q: %w", s, err)
	}
	maxPort, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return Range{}, fmt.Errorf("invalid port range %q: %w", s, err)
	}

	r := Range{Min: minPort, Max: maxPort}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Identifier names a service. Equality and hashing use its exact text.
type Identifier string

// Plain returns the key of the service's primary port.
func (id Identifier) Plain() Key {
	return Key{Project: id}
}

// TLS returns the key of the service's TLS port.
func (id Identifier) TLS() Key {
	return Key{Project: id, TLS: true}
}

// Key is the unit a port is assigned to.
type Key struct {
	Project Identifier
	TLS     bool
}

// HashInput returns the text whose hash picks the key's preferred slot.
func (k Key) HashInput() string {
	if k.TLS {
		return string(k.Project) + tlsSuffix
	}
	return string(k.Project)
}

func (k Key) String() string {
	return k.HashInput()
}

// ExpandKeys turns services into allocation keys, keeping service order. With
// secure set, each plain key is immediately followed by its TLS key.
func ExpandKeys(projects []Identifier, secure bool) []Key {
	n := len(projects)
	if secure {
		n *= 2
	}

	keys := make([]Key, 0, n)
	for _, id := range projects {
		keys = append(keys, id.Plain())
		if secure {
			keys = append(keys, id.TLS())
		}
	}
	return keys
}

// KeyCount returns how many keys ExpandKeys would produce.
func KeyCount(projects int, secure bool) int {
	if secure {
		return projects * 2
	}
	return projects
}
