package toy

import (
	"github.com/google/uuid"

	"github.com/wdmcore/osmcore/netmodel"
)

// Network is a concrete netmodel.Network, built incrementally via Add*
// calls the same way the teacher's builder package assembles a core.Graph
// through a small chainable API instead of exposing its internal maps.
type Network struct {
	id         string
	nodes      []*Node
	fibers     []*Fiber
	lightpaths []*Lightpath
}

var _ netmodel.Network = (*Network)(nil)

// NewNetwork returns an empty network. If id is empty, a fresh google/uuid
// value is used, matching the id-generation convention cmd/osmctl uses when a
// topology file names no network id.
func NewNetwork(id string) *Network {
	if id == "" {
		id = uuid.NewString()
	}

	return &Network{id: id}
}

func (n *Network) ID() string { return n.id }

func (n *Network) Fibers() []netmodel.Fiber {
	out := make([]netmodel.Fiber, len(n.fibers))
	for i, f := range n.fibers {
		out[i] = f
	}

	return out
}

func (n *Network) Nodes() []netmodel.Node {
	out := make([]netmodel.Node, len(n.nodes))
	for i, nd := range n.nodes {
		out[i] = nd
	}

	return out
}

func (n *Network) Lightpaths() []netmodel.Lightpath {
	out := make([]netmodel.Lightpath, len(n.lightpaths))
	for i, lp := range n.lightpaths {
		out[i] = lp
	}

	return out
}

func (n *Network) NodePairFibers(a, b netmodel.Node) []netmodel.Fiber {
	var out []netmodel.Fiber
	for _, f := range n.fibers {
		if f.a == a && f.b == b {
			out = append(out, f)
		}
	}

	return out
}

// AddNode creates a node with the given switching architecture. If id is
// empty, a google/uuid value is assigned.
func (n *Network) AddNode(id string, arch netmodel.Arch) *Node {
	if id == "" {
		id = uuid.NewString()
	}
	node := &Node{id: id, networkID: n.id, arch: arch}
	n.nodes = append(n.nodes, node)

	return node
}

// AddUnidirectionalFiber adds a single fiber a->b with the given valid slot
// ids and length, and registers it as incoming on b.
func (n *Network) AddUnidirectionalFiber(id string, a, b *Node, validSlots []int, lengthKm float64) *Fiber {
	if id == "" {
		id = uuid.NewString()
	}
	f := &Fiber{id: id, networkID: n.id, a: a, b: b, validSlots: validSlots, lengthKm: lengthKm}
	n.fibers = append(n.fibers, f)
	b.incoming = append(b.incoming, f)

	return f
}

// AddFiberPair adds two fibers a->b and b->a, each other's bidirectional
// partner (I5), sharing the same valid slot range and length.
func (n *Network) AddFiberPair(idAB, idBA string, a, b *Node, validSlots []int, lengthKm float64) (ab, ba *Fiber) {
	ab = n.AddUnidirectionalFiber(idAB, a, b, validSlots, lengthKm)
	ba = n.AddUnidirectionalFiber(idBA, b, a, validSlots, lengthKm)
	ab.pair = ba
	ba.pair = ab

	return ab, ba
}

// AddLightpath registers a lightpath over seqFibers occupying slots, with
// optional add/drop directionless module indices. Waste resources default
// to empty; call (*Lightpath).SetWasteResources once a propagation analysis
// has computed them, if the architecture requires it.
func (n *Network) AddLightpath(id string, seqFibers []netmodel.Fiber, slots []int, addModule, dropModule *int) *Lightpath {
	if id == "" {
		id = uuid.NewString()
	}
	lp := &Lightpath{
		id:         id,
		networkID:  n.id,
		seqFibers:  seqFibers,
		slots:      slots,
		addModule:  addModule,
		dropModule: dropModule,
	}
	n.lightpaths = append(n.lightpaths, lp)

	return lp
}
