package toy

import "github.com/wdmcore/osmcore/netmodel"

// Node is a concrete netmodel.Node. Use *Node as the map-key-comparable
// handle; Network.AddNode returns one.
type Node struct {
	id        string
	networkID string
	arch      netmodel.Arch
	incoming  []netmodel.Fiber // populated as fibers are wired into the network
}

var _ netmodel.Node = (*Node)(nil)

func (n *Node) ID() string        { return n.id }
func (n *Node) NetworkID() string { return n.networkID }

func (n *Node) OpticalSwitchingArchitecture() netmodel.Arch { return n.arch }

func (n *Node) IncomingFibers() []netmodel.Fiber {
	return append([]netmodel.Fiber(nil), n.incoming...)
}
