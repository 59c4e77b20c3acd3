// Package slotindex implements SlotIndex[E], a generic bidirectional
// occupation index between a resource of type E (a fiber or a directionless
// module) and the lightpaths occupying its optical slots.
//
// SlotIndex keeps two maps, the same way the teacher's core.Graph keeps a
// forward adjacency list alongside per-vertex bookkeeping so that removal
// doesn't require a full scan:
//
//   - forward: resource -> slot id -> lightpaths occupying that slot
//   - inverse: lightpath -> resource -> slots that lightpath occupies there
//
// The inverse map is what makes Release(lp) an O(lp's own footprint)
// operation instead of an O(everything) scan. Index mutation never
// self-validates (I4 clash-freedom is the caller's job, checked by
// occupation.Manager.IsSpectrumOccupationOk); SlotIndex faithfully records
// whatever it is told, including overlaps.
package slotindex
