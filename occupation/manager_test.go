package occupation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdmcore/osmcore/netmodel"
	"github.com/wdmcore/osmcore/netmodel/toy"
)

func rangeInts(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}

	return out
}

// Scenario 1: single-hop allocate/release.
func TestSingleHopAllocateRelease(t *testing.T) {
	net := toy.NewNetwork("net1")
	a := net.AddNode("A", toy.NewWSSArch())
	b := net.AddNode("B", toy.NewWSSArch())
	f := net.AddUnidirectionalFiber("F", a, b, rangeInts(0, 100), 10)

	mgr := NewManager("net1")
	assert.Equal(t, rangeInts(0, 100), mgr.IdleSlotIDs(f))

	lp := net.AddLightpath("lp1", []netmodel.Fiber{f}, []int{3, 4, 5}, nil, nil)
	require.NoError(t, mgr.AllocateLegitimate(lp, nil, nil, lp.SeqFibers(), lp.OpticalSlotIDs()))

	assert.Equal(t, []int{3, 4, 5}, mgr.OccupiedSlotIDs(f))
	expectedIdle := append(rangeInts(0, 2), rangeInts(6, 100)...)
	assert.Equal(t, expectedIdle, mgr.IdleSlotIDs(f))

	mgr.Release(lp)
	assert.Empty(t, mgr.OccupiedSlotIDs(f))
	assert.Equal(t, rangeInts(0, 100), mgr.IdleSlotIDs(f))
}

// P2: release is idempotent.
func TestReleaseIdempotent(t *testing.T) {
	net := toy.NewNetwork("net1")
	a := net.AddNode("A", toy.NewWSSArch())
	b := net.AddNode("B", toy.NewWSSArch())
	f := net.AddUnidirectionalFiber("F", a, b, rangeInts(0, 10), 10)
	lp := net.AddLightpath("lp1", []netmodel.Fiber{f}, []int{1, 2}, nil, nil)

	mgr := NewManager("net1")
	require.NoError(t, mgr.AllocateLegitimate(lp, nil, nil, lp.SeqFibers(), lp.OpticalSlotIDs()))

	mgr.Release(lp)
	mgr.Release(lp)
	assert.Empty(t, mgr.OccupiedSlotIDs(f))
}

// P3: allocate followed by release restores idle state exactly.
func TestAllocateReleaseRestoresState(t *testing.T) {
	net := toy.NewNetwork("net1")
	a := net.AddNode("A", toy.NewWSSArch())
	b := net.AddNode("B", toy.NewWSSArch())
	f := net.AddUnidirectionalFiber("F", a, b, rangeInts(0, 10), 10)
	lp := net.AddLightpath("lp1", []netmodel.Fiber{f}, []int{2, 3}, nil, nil)

	mgr := NewManager("net1")
	before := mgr.IdleSlotIDs(f)
	require.NoError(t, mgr.AllocateLegitimate(lp, nil, nil, lp.SeqFibers(), lp.OpticalSlotIDs()))
	mgr.Release(lp)
	after := mgr.IdleSlotIDs(f)

	assert.Equal(t, before, after)
}

// P5: idle ∪ occupied = validSlotIds, disjoint.
func TestIdleAndOccupiedPartitionValidSlots(t *testing.T) {
	net := toy.NewNetwork("net1")
	a := net.AddNode("A", toy.NewWSSArch())
	b := net.AddNode("B", toy.NewWSSArch())
	f := net.AddUnidirectionalFiber("F", a, b, rangeInts(0, 10), 10)
	lp := net.AddLightpath("lp1", []netmodel.Fiber{f}, []int{0, 1, 4, 5, 8}, nil, nil)

	mgr := NewManager("net1")
	require.NoError(t, mgr.AllocateLegitimate(lp, nil, nil, lp.SeqFibers(), lp.OpticalSlotIDs()))

	idle := setOf(mgr.IdleSlotIDs(f))
	occupied := setOf(mgr.OccupiedSlotIDs(f))

	for _, s := range f.ValidSlotIDs() {
		_, inIdle := idle[s]
		_, inOccupied := occupied[s]
		assert.True(t, inIdle != inOccupied, "slot %d must be in exactly one of idle/occupied", s)
	}
}

// Scenario 2: first-fit inputs via availability/idle range helpers.
func TestIdleRangeInitialSlotsMatchesScenario(t *testing.T) {
	net := toy.NewNetwork("net1")
	a := net.AddNode("A", toy.NewWSSArch())
	b := net.AddNode("B", toy.NewWSSArch())
	f := net.AddUnidirectionalFiber("F", a, b, rangeInts(0, 10), 10)
	lp := net.AddLightpath("lp1", []netmodel.Fiber{f}, []int{0, 1, 4, 5, 8}, nil, nil)

	mgr := NewManager("net1")
	require.NoError(t, mgr.AllocateLegitimate(lp, nil, nil, lp.SeqFibers(), lp.OpticalSlotIDs()))

	assert.Equal(t, []int{2, 3, 6, 7, 9, 10}, mgr.IdleSlotIDs(f))
	assert.Empty(t, mgr.IdleRangeInitialSlots(f, 3))
	assert.Equal(t, []int{2, 6, 9}, mgr.IdleRangeInitialSlots(f, 2))
}

// Scenario 3: clash detection.
func TestClashDetection(t *testing.T) {
	net := toy.NewNetwork("net1")
	a := net.AddNode("A", toy.NewWSSArch())
	b := net.AddNode("B", toy.NewWSSArch())
	f := net.AddUnidirectionalFiber("F", a, b, rangeInts(0, 10), 10)
	lp1 := net.AddLightpath("lp1", []netmodel.Fiber{f}, []int{5, 6}, nil, nil)
	lp2 := net.AddLightpath("lp2", []netmodel.Fiber{f}, []int{6, 7}, nil, nil)

	mgr := NewManager("net1")
	require.NoError(t, mgr.AllocateLegitimate(lp1, nil, nil, lp1.SeqFibers(), lp1.OpticalSlotIDs()))
	require.NoError(t, mgr.AllocateLegitimate(lp2, nil, nil, lp2.SeqFibers(), lp2.OpticalSlotIDs()))

	assert.False(t, mgr.IsSpectrumOccupationOk())
	assert.Equal(t, []int{6}, mgr.ClashingSlotsInFiber(f))

	mgr.Release(lp2)
	assert.True(t, mgr.IsSpectrumOccupationOk())
}

// P6: isAllocatable true before a clash-free allocation implies validity
// is preserved.
func TestIsAllocatablePreservesValidity(t *testing.T) {
	net := toy.NewNetwork("net1")
	a := net.AddNode("A", toy.NewWSSArch())
	b := net.AddNode("B", toy.NewWSSArch())
	f := net.AddUnidirectionalFiber("F", a, b, rangeInts(0, 10), 10)
	lp := net.AddLightpath("lp1", []netmodel.Fiber{f}, []int{3, 4}, nil, nil)

	mgr := NewManager("net1")
	require.True(t, mgr.IsAllocatable([]netmodel.Fiber{f}, nil, nil, []int{3, 4}))
	require.NoError(t, mgr.AllocateLegitimate(lp, nil, nil, lp.SeqFibers(), lp.OpticalSlotIDs()))
	assert.True(t, mgr.IsSpectrumOccupationOk())
}

func TestIsAllocatableRejectsDuplicateFiber(t *testing.T) {
	net := toy.NewNetwork("net1")
	a := net.AddNode("A", toy.NewWSSArch())
	b := net.AddNode("B", toy.NewWSSArch())
	f := net.AddUnidirectionalFiber("F", a, b, rangeInts(0, 10), 10)

	mgr := NewManager("net1")
	assert.False(t, mgr.IsAllocatable([]netmodel.Fiber{f, f}, nil, nil, []int{1}))
}

func TestAvailableSlotIDsEmptyFiberSet(t *testing.T) {
	mgr := NewManager("net1")
	_, err := mgr.AvailableSlotIDs(nil, nil, nil)
	assert.ErrorIs(t, err, netmodel.ErrEmptyFiberSet)
}

func TestCrossNetworkRejected(t *testing.T) {
	net := toy.NewNetwork("other")
	a := net.AddNode("A", toy.NewWSSArch())
	b := net.AddNode("B", toy.NewWSSArch())
	f := net.AddUnidirectionalFiber("F", a, b, rangeInts(0, 10), 10)
	lp := net.AddLightpath("lp1", []netmodel.Fiber{f}, []int{1}, nil, nil)

	mgr := NewManager("net1")
	err := mgr.AllocateLegitimate(lp, nil, nil, lp.SeqFibers(), lp.OpticalSlotIDs())
	assert.ErrorIs(t, err, netmodel.ErrCrossNetwork)
}

// P4: resetFromLightpaths is deterministic regardless of lightpath order.
func TestResetFromLightpathsDeterministic(t *testing.T) {
	build := func(order []int) *Manager {
		net := toy.NewNetwork("net1")
		a := net.AddNode("A", toy.NewWSSArch())
		b := net.AddNode("B", toy.NewWSSArch())
		f := net.AddUnidirectionalFiber("F", a, b, rangeInts(0, 10), 10)

		specs := []struct {
			id    string
			slots []int
		}{
			{"lp1", []int{1, 2}},
			{"lp2", []int{4, 5}},
			{"lp3", []int{7, 8}},
		}
		for _, i := range order {
			s := specs[i]
			net.AddLightpath(s.id, []netmodel.Fiber{f}, s.slots, nil, nil)
		}

		mgr := NewManager("net1")
		require.NoError(t, mgr.ResetFromLightpaths(net))

		return mgr
	}

	mgrA := build([]int{0, 1, 2})
	mgrB := build([]int{2, 1, 0})

	fA := mgrA.legitimateFiber.ElementsWithAnyOccupation()
	fB := mgrB.legitimateFiber.ElementsWithAnyOccupation()
	require.Len(t, fA, 1)
	require.Len(t, fB, 1)
	assert.Equal(t, mgrA.OccupiedSlotIDs(fA[0]), mgrB.OccupiedSlotIDs(fB[0]))
}
