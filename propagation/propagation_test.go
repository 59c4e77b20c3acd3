package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdmcore/osmcore/netmodel"
	"github.com/wdmcore/osmcore/netmodel/toy"
)

func TestPropagationOfEmptyPath(t *testing.T) {
	_, err := PropagationOf(nil)
	assert.ErrorIs(t, err, netmodel.ErrEmptyPath)
}

// P10 / shortcut: every node non-wasting => propagated == path, no cycles,
// multipath-free.
func TestPropagationOfNeverWastingShortcut(t *testing.T) {
	net := toy.NewNetwork("net1")
	a := net.AddNode("A", toy.NewWSSArch())
	b := net.AddNode("B", toy.NewWSSArch())
	c := net.AddNode("C", toy.NewWSSArch())
	f1 := net.AddUnidirectionalFiber("F1", a, b, []int{0}, 1)
	f2 := net.AddUnidirectionalFiber("F2", b, c, []int{0}, 1)

	result, err := PropagationOf([]netmodel.Fiber{f1, f2})
	require.NoError(t, err)
	assert.Equal(t, []netmodel.Fiber{f1, f2}, result.Propagated)
	assert.Empty(t, result.Cycles)
	assert.True(t, result.MultipathOk)
}

// Scenario 5: propagation through a filterless node.
func TestPropagationThroughFilterlessNode(t *testing.T) {
	net := toy.NewNetwork("net1")
	origin := net.AddNode("origin", toy.NewWSSArch())
	mid := net.AddNode("mid", toy.NewBroadcastArch())
	drop := net.AddNode("drop", toy.NewWSSArch())
	leak := net.AddNode("leak", toy.NewWSSArch())

	f1 := net.AddUnidirectionalFiber("F1", origin, mid, []int{0}, 1)
	f2 := net.AddUnidirectionalFiber("F2", mid, drop, []int{0}, 1)
	f3 := net.AddUnidirectionalFiber("F3", mid, leak, []int{0}, 1)

	mid.OpticalSwitchingArchitecture().(*toy.BroadcastArch).SetDegree([]netmodel.Fiber{f1, f2, f3})

	result, err := PropagationOf([]netmodel.Fiber{f1, f2})
	require.NoError(t, err)
	assert.ElementsMatch(t, []netmodel.Fiber{f1, f2, f3}, result.Propagated)
	assert.Empty(t, result.Cycles)
	assert.True(t, result.MultipathOk)
}

// Scenario 6: lasing loop in a filterless ring.
func TestUnavoidableLasingLoopsInRing(t *testing.T) {
	net := toy.NewNetwork("net1")
	a := net.AddNode("A", toy.NewBroadcastArch())
	b := net.AddNode("B", toy.NewBroadcastArch())
	c := net.AddNode("C", toy.NewBroadcastArch())

	ab := net.AddUnidirectionalFiber("AB", a, b, []int{0}, 1)
	bc := net.AddUnidirectionalFiber("BC", b, c, []int{0}, 1)
	ca := net.AddUnidirectionalFiber("CA", c, a, []int{0}, 1)

	a.OpticalSwitchingArchitecture().(*toy.BroadcastArch).SetDegree([]netmodel.Fiber{ca, ab})
	b.OpticalSwitchingArchitecture().(*toy.BroadcastArch).SetDegree([]netmodel.Fiber{ab, bc})
	c.OpticalSwitchingArchitecture().(*toy.BroadcastArch).SetDegree([]netmodel.Fiber{bc, ca})

	cycles := UnavoidableLasingLoops(net)
	require.Len(t, cycles, 1)
	assert.ElementsMatch(t, []netmodel.Fiber{ab, bc, ca}, cycles[0])
}

// A filterless node with an empty broadcast degree absorbs the signal
// entirely: it never reaches the drop sentinel.
func TestPropagationSignalNotReachingDrop(t *testing.T) {
	net := toy.NewNetwork("net1")
	origin := net.AddNode("origin", toy.NewWSSArch())
	mid := net.AddNode("mid", toy.NewBroadcastArch())
	drop := net.AddNode("drop", toy.NewWSSArch())

	f1 := net.AddUnidirectionalFiber("F1", origin, mid, []int{0}, 1)
	f2 := net.AddUnidirectionalFiber("F2", mid, drop, []int{0}, 1)
	mid.OpticalSwitchingArchitecture().(*toy.BroadcastArch).SetDegree(nil)

	_, err := PropagationOf([]netmodel.Fiber{f1, f2})
	assert.ErrorIs(t, err, netmodel.ErrSignalNotReachingDrop)
}
