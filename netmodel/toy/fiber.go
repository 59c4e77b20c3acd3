package toy

import "github.com/wdmcore/osmcore/netmodel"

// Fiber is a concrete netmodel.Fiber. Use *Fiber as the map-key-comparable
// handle; Network.AddFiberPair / AddUnidirectionalFiber return one.
type Fiber struct {
	id         string
	networkID  string
	validSlots []int
	lengthKm   float64
	a, b       *Node
	pair       *Fiber // bidirectional partner, nil if unidirectional
}

var _ netmodel.Fiber = (*Fiber)(nil)

func (f *Fiber) ID() string        { return f.id }
func (f *Fiber) NetworkID() string { return f.networkID }

func (f *Fiber) ValidSlotIDs() []int {
	return append([]int(nil), f.validSlots...)
}

func (f *Fiber) MinMaxValidSlotID() (int, int) {
	min, max := f.validSlots[0], f.validSlots[0]
	for _, s := range f.validSlots[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}

	return min, max
}

func (f *Fiber) LengthKm() float64 { return f.lengthKm }

func (f *Fiber) IsBidirectional() bool { return f.pair != nil }

func (f *Fiber) BidirectionalPair() netmodel.Fiber {
	if f.pair == nil {
		return nil
	}

	return f.pair
}

func (f *Fiber) A() netmodel.Node { return f.a }
func (f *Fiber) B() netmodel.Node { return f.b }

// LinkBidirectional marks ab and ba as each other's bidirectional partner.
// Network.AddFiberPair does this automatically for fibers it creates
// together; LinkBidirectional exists for callers (such as a topology
// loader) that construct the two directions independently and need to
// join them afterwards.
func LinkBidirectional(ab, ba *Fiber) {
	ab.pair = ba
	ba.pair = ab
}
