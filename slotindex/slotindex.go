package slotindex

import (
	"sort"

	"github.com/wdmcore/osmcore/netmodel"
)

// SlotIndex maintains a bidirectional occupation map between resources of
// type E and lightpaths, per slot id. E must be comparable so it can be used
// as a map key (fibers and directionless modules both satisfy this).
type SlotIndex[E comparable] struct {
	forward map[E]map[int][]netmodel.Lightpath // resource -> slot -> lightpaths (ID-sorted)
	inverse map[string]map[E][]int             // lightpath ID -> resource -> slots (ascending)
}

// New returns an empty SlotIndex for resource type E.
func New[E comparable]() *SlotIndex[E] {
	return &SlotIndex[E]{
		forward: make(map[E]map[int][]netmodel.Lightpath),
		inverse: make(map[string]map[E][]int),
	}
}

// Allocate unions slots into forward[e][s] for every s, recording lp as an
// occupant, and records inverse[lp][e] = slots. A clash (more than one
// lightpath at the same (e, s)) is recorded, not rejected: detecting and
// reporting clashes is the caller's job (occupation.Manager). An empty
// slots argument is a no-op.
func (s *SlotIndex[E]) Allocate(e E, lp netmodel.Lightpath, slots []int) {
	if len(slots) == 0 {
		return
	}

	bucket, ok := s.forward[e]
	if !ok {
		bucket = make(map[int][]netmodel.Lightpath)
		s.forward[e] = bucket
	}
	for _, slot := range slots {
		bucket[slot] = insertSorted(bucket[slot], lp)
	}

	perResource, ok := s.inverse[lp.ID()]
	if !ok {
		perResource = make(map[E][]int)
		s.inverse[lp.ID()] = perResource
	}
	perResource[e] = sortedCopy(slots)
}

// Release removes lp from every resource it occupies, pruning empty leaves
// (I2). Releasing an lp that is not present is a no-op (P2: idempotent).
func (s *SlotIndex[E]) Release(lp netmodel.Lightpath) {
	perResource, ok := s.inverse[lp.ID()]
	if !ok {
		return
	}

	for e, slots := range perResource {
		bucket := s.forward[e]
		for _, slot := range slots {
			occupants := removeLightpath(bucket[slot], lp.ID())
			if len(occupants) == 0 {
				delete(bucket, slot)
			} else {
				bucket[slot] = occupants
			}
		}
		if len(bucket) == 0 {
			delete(s.forward, e)
		}
	}

	delete(s.inverse, lp.ID())
}

// Clear empties both the forward and inverse maps.
func (s *SlotIndex[E]) Clear() {
	s.forward = make(map[E]map[int][]netmodel.Lightpath)
	s.inverse = make(map[string]map[E][]int)
}

// OccupiedSlots returns the slot-id -> lightpaths map for e, or an empty map
// if e has no occupation. The returned map and slices must not be mutated.
func (s *SlotIndex[E]) OccupiedSlots(e E) map[int][]netmodel.Lightpath {
	bucket, ok := s.forward[e]
	if !ok {
		return map[int][]netmodel.Lightpath{}
	}

	return bucket
}

// OccupiedSlotIDs returns a sorted copy of the slot ids occupied on e. Safe
// for the caller to mutate.
func (s *SlotIndex[E]) OccupiedSlotIDs(e E) []int {
	bucket, ok := s.forward[e]
	if !ok {
		return []int{}
	}

	ids := make([]int, 0, len(bucket))
	for slot := range bucket {
		ids = append(ids, slot)
	}
	sort.Ints(ids)

	return ids
}

// ElementsWithAnyOccupation returns every resource with at least one
// occupied slot.
func (s *SlotIndex[E]) ElementsWithAnyOccupation() []E {
	out := make([]E, 0, len(s.forward))
	for e := range s.forward {
		out = append(out, e)
	}

	return out
}

// FullMap returns a read-only view of the forward index. Callers must not
// mutate the returned maps or slices.
func (s *SlotIndex[E]) FullMap() map[E]map[int][]netmodel.Lightpath {
	return s.forward
}

// sortedCopy returns a sorted copy of slots.
func sortedCopy(slots []int) []int {
	out := append([]int(nil), slots...)
	sort.Ints(out)

	return out
}

// insertSorted inserts lp into occupants keeping ascending Lightpath.ID()
// order (I1's "deterministic, totally ordered by lightpath identity").
func insertSorted(occupants []netmodel.Lightpath, lp netmodel.Lightpath) []netmodel.Lightpath {
	i := sort.Search(len(occupants), func(i int) bool { return occupants[i].ID() >= lp.ID() })
	if i < len(occupants) && occupants[i].ID() == lp.ID() {
		return occupants // already present; Allocate is idempotent per (e, slot, lp)
	}
	occupants = append(occupants, nil)
	copy(occupants[i+1:], occupants[i:])
	occupants[i] = lp

	return occupants
}

// removeLightpath returns occupants with the entry matching id removed.
func removeLightpath(occupants []netmodel.Lightpath, id string) []netmodel.Lightpath {
	for i, lp := range occupants {
		if lp.ID() == id {
			out := append([]netmodel.Lightpath(nil), occupants[:i]...)
			return append(out, occupants[i+1:]...)
		}
	}

	return occupants
}
