// Package port provides deterministic port allocation for workspace services.
//
// Every service in a workspace needs an HTTP port and, when secure endpoints
// are enabled, a second TLS port. Ports are derived from a stable hash of the
// service name so the same service lands on the same port across runs and
// across workspaces that contain different sibling services. Nothing is
// persisted: assignments are recomputed from the hash every time.
//
// # Allocation
//
// Ports are drawn from an inclusive range:
//
//	r := port.Range{Min: 49152, Max: 65535}
//	a, err := port.ComputeProjectsPort(r, []port.Identifier{"users", "orders"}, true)
//	httpPort, _ := a.PlainPort("users")
//	tlsPort, _ := a.TLSPort("users")
//
// # Keys
//
// Each service expands into one or two allocation keys. The plain key is the
// service itself; the TLS key is a tagged variant whose hash input is the
// service name followed by "-tls". Keys compare by tag, so a service that is
// literally named "users-tls" never aliases the TLS key of "users", although
// the two do share a preferred slot.
//
// # Preferred Slots
//
// The preferred slot of a key is derived from the 32-bit polynomial string hash
// (h = 31*h + c over UTF-16 code units) run through a MurmurHash3 product
// finalizer, taken as an absolute value modulo the range size. The finalizer is
// a bijection, so two keys collide on the full hash exactly when their
// polynomial hashes are equal.
//
// # Collision Resolution
//
// Allocation runs in two phases:
//
//  1. Solo keys, whose preferred slot no other key wants, take that slot.
//  2. Contested keys are placed in expansion order, each probing forward from
//     its preferred slot (wrapping at the end of the range) to the first free
//     slot.
//
// A key that stays solo therefore keeps its port no matter how many colliding
// services are added to or removed from the workspace.
package port
