// Package occupation implements the bidirectional occupation index between
// network resources (fibers and directionless add/drop modules) and
// lightpaths, separated by signal kind (legitimate vs. waste).
//
// It builds directly on slotindex.SlotIndex, the same way the teacher's
// core.Graph composes smaller adjacency primitives into a richer structure:
// Manager holds six independent SlotIndex instances (one per signal kind ×
// resource kind) rather than a single tagged index, trading a small amount
// of duplication for branch-free lookups.
package occupation
