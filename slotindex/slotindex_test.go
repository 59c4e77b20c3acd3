package slotindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdmcore/osmcore/netmodel"
	"github.com/wdmcore/osmcore/slotindex"
)

// fakeLightpath is the minimal netmodel.Lightpath stand-in used to exercise
// SlotIndex in isolation, without pulling in netmodel/toy.
type fakeLightpath struct{ id string }

func (f fakeLightpath) ID() string        { return f.id }
func (f fakeLightpath) NetworkID() string { return "n" }
func (f fakeLightpath) SeqFibers() []netmodel.Fiber {
	return nil
}
func (f fakeLightpath) OpticalSlotIDs() []int { return nil }
func (f fakeLightpath) DirectionlessAddModuleIndexInOrigin() (int, bool) {
	return 0, false
}
func (f fakeLightpath) DirectionlessDropModuleIndexInDestination() (int, bool) {
	return 0, false
}
func (f fakeLightpath) ResourcesWithWasteSignal() ([]netmodel.Fiber, []netmodel.DirectionlessModule, []netmodel.DirectionlessModule) {
	return nil, nil, nil
}
func (f fakeLightpath) A() netmodel.Node { return nil }
func (f fakeLightpath) B() netmodel.Node { return nil }

// TestAllocateAndRelease covers P1 (index consistency), P2 (idempotent
// release) and P3 (allocate/release round-trips to the empty state).
func TestAllocateAndRelease(t *testing.T) {
	idx := slotindex.New[string]()
	lp1 := fakeLightpath{id: "lp1"}

	idx.Allocate("F1", lp1, []int{3, 4, 5})
	assert.Equal(t, []int{3, 4, 5}, idx.OccupiedSlotIDs("F1"))
	assert.ElementsMatch(t, []string{"F1"}, idx.ElementsWithAnyOccupation())

	idx.Release(lp1)
	assert.Empty(t, idx.OccupiedSlotIDs("F1"))
	assert.Empty(t, idx.ElementsWithAnyOccupation(), "releasing the only lightpath prunes the empty leaf (I2)")

	// Releasing again is a no-op (P2).
	idx.Release(lp1)
	assert.Empty(t, idx.OccupiedSlotIDs("F1"))
}

// TestAllocateEmptySlotsIsNoOp matches spec.md 4.1: an empty slots argument
// must not create any bookkeeping.
func TestAllocateEmptySlotsIsNoOp(t *testing.T) {
	idx := slotindex.New[string]()
	idx.Allocate("F1", fakeLightpath{id: "lp1"}, nil)
	assert.Empty(t, idx.ElementsWithAnyOccupation())
}

// TestClashRecordedNotRejected: SlotIndex does not fail on overlap; it
// simply records both lightpaths as occupants of the same slot.
func TestClashRecordedNotRejected(t *testing.T) {
	idx := slotindex.New[string]()
	lp1 := fakeLightpath{id: "lp1"}
	lp2 := fakeLightpath{id: "lp2"}

	idx.Allocate("F1", lp1, []int{5, 6})
	idx.Allocate("F1", lp2, []int{6, 7})

	occupants := idx.OccupiedSlots("F1")
	require.Len(t, occupants[6], 2, "slot 6 is occupied by both lightpaths")
	assert.Equal(t, "lp1", occupants[6][0].ID(), "occupants are ordered by lightpath ID")
	assert.Equal(t, "lp2", occupants[6][1].ID())
	assert.Len(t, occupants[5], 1)
	assert.Len(t, occupants[7], 1)
}

// TestClear empties both maps regardless of prior allocations.
func TestClear(t *testing.T) {
	idx := slotindex.New[string]()
	idx.Allocate("F1", fakeLightpath{id: "lp1"}, []int{1})
	idx.Clear()
	assert.Empty(t, idx.ElementsWithAnyOccupation())
	assert.Empty(t, idx.FullMap())
}

// TestOccupiedSlotIDsIsACopy ensures callers can mutate the returned slice
// freely without corrupting internal state.
func TestOccupiedSlotIDsIsACopy(t *testing.T) {
	idx := slotindex.New[string]()
	idx.Allocate("F1", fakeLightpath{id: "lp1"}, []int{1, 2, 3})

	ids := idx.OccupiedSlotIDs("F1")
	ids[0] = 999
	assert.Equal(t, []int{1, 2, 3}, idx.OccupiedSlotIDs("F1"))
}

// TestReleasePrunesOnlyAffectedResource: releasing one lightpath must not
// disturb another lightpath's occupation on the same resource.
func TestReleasePrunesOnlyAffectedResource(t *testing.T) {
	idx := slotindex.New[string]()
	lp1 := fakeLightpath{id: "lp1"}
	lp2 := fakeLightpath{id: "lp2"}

	idx.Allocate("F1", lp1, []int{1, 2})
	idx.Allocate("F1", lp2, []int{2, 3})

	idx.Release(lp1)

	assert.Equal(t, []int{2, 3}, idx.OccupiedSlotIDs("F1"))
	occupants := idx.OccupiedSlots("F1")
	assert.Len(t, occupants[2], 1)
	assert.Equal(t, "lp2", occupants[2][0].ID())
}
