package port

import "fmt"

// Placement records how a single key was placed.
type Placement struct {
	Key       Key
	Preferred int
	Port      int
	Contested bool
}

// ComputeProjectsPort assigns a unique port in r to every key derived from
// projects. It fails with a RangeTooSmallError, before assigning anything,
// when r cannot hold every key.
func ComputeProjectsPort(r Range, projects []Identifier, secure bool) (*Assignment, error) {
	placements, err := Explain(r, projects, secure)
	if err != nil {
		return nil, err
	}
	return newAssignment(r, secure, placements), nil
}

// Explain runs the allocation and returns one Placement per key in expansion
// order.
func Explain(r Range, projects []Identifier, secure bool) ([]Placement, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := checkDistinct(projects); err != nil {
		return nil, err
	}

	required := KeyCount(len(projects), secure)
	if required > r.Size() {
		return nil, &RangeTooSmallError{
			Range:     r,
			Required:  required,
			Available: r.Size(),
			Secure:    secure,
		}
	}

	return resolve(r, ExpandKeys(projects, secure)), nil
}

// checkDistinct rejects empty and repeated service names.
func checkDistinct(projects []Identifier) error {
	seen := make(map[Identifier]bool, len(projects))
	for _, id := range projects {
		if id == "" {
			return &InvalidProjectError{Project: id, Reason: "name is empty"}
		}
		if seen[id] {
			return &InvalidProjectError{Project: id, Reason: "listed more than once"}
		}
		seen[id] = true
	}
	return nil
}

// resolve places keys in two phases: keys alone on their preferred slot take
// it outright, then contested keys probe forward in key order.
func resolve(r Range, keys []Key) []Placement {
	size := r.Size()

	slots := make([]int, len(keys))
	wanted := make(map[int]int, len(keys))
	for i, k := range keys {
		slots[i] = PreferredSlot(k, size)
		wanted[slots[i]]++
	}

	occupied := make([]bool, size)
	placements := make([]Placement, len(keys))

	for i, k := range keys {
		placements[i] = Placement{
			Key:       k,
			Preferred: r.Min + slots[i],
			Contested: wanted[slots[i]] > 1,
		}
		if !placements[i].Contested {
			occupied[slots[i]] = true
			placements[i].Port = r.Min + slots[i]
		}
	}

	for i := range placements {
		if !placements[i].Contested {
			continue
		}
		slot := firstFree(occupied, slots[i])
		occupied[slot] = true
		placements[i].Port = r.Min + slot
	}

	return placements
}

// firstFree scans forward from start, wrapping once, for an unoccupied slot.
func firstFree(occupied []bool, start int) int {
	size := len(occupied)
	for i := 0; i < size; i++ {
		slot := (start + i) % size
		if !occupied[slot] {
			return slot
		}
	}
	// Unreachable: callers reject key counts larger than the range.
	panic(fmt.Sprintf("port: no free slot among %d", size))
}
