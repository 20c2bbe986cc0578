package port

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"
)

// Assignment maps every allocation key of a run to its port. No two keys share
// a port.
type Assignment struct {
	Range  Range
	Secure bool

	placements []Placement
	ports      map[Key]int
}

func newAssignment(r Range, secure bool, placements []Placement) *Assignment {
	ports := make(map[Key]int, len(placements))
	for _, p := range placements {
		ports[p.Key] = p.Port
	}
	return &Assignment{
		Range:      r,
		Secure:     secure,
		placements: placements,
		ports:      ports,
	}
}

// Port returns the port assigned to k.
func (a *Assignment) Port(k Key) (int, bool) {
	p, ok := a.ports[k]
	return p, ok
}

// PlainPort returns the primary port of a service.
func (a *Assignment) PlainPort(id Identifier) (int, bool) {
	return a.Port(id.Plain())
}

// TLSPort returns the TLS port of a service. It is absent when the
// assignment was computed without secure ports.
func (a *Assignment) TLSPort(id Identifier) (int, bool) {
	return a.Port(id.TLS())
}

// Keys returns the keys in expansion order.
func (a *Assignment) Keys() []Key {
	keys := make([]Key, len(a.placements))
	for i, p := range a.placements {
		keys[i] = p.Key
	}
	return keys
}

// Placements returns a copy of the per-key placements in expansion order.
func (a *Assignment) Placements() []Placement {
	out := make([]Placement, len(a.placements))
	copy(out, a.placements)
	return out
}

// Len returns the number of assigned keys.
func (a *Assignment) Len() int {
	return len(a.placements)
}

// Fingerprint returns a short digest of the range and every key's port. Two
// runs that produce the same ports for the same services share a fingerprint.
func (a *Assignment) Fingerprint() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", a.Range)
	for _, p := range a.placements {
		fmt.Fprintf(&sb, "%s\x00%t=%d\n", p.Key.Project, p.Key.TLS, p.Port)
	}
	return fmt.Sprintf("%016x", xxh3.HashString(sb.String()))
}
