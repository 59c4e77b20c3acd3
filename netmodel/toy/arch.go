package toy

import "github.com/wdmcore/osmcore/netmodel"

// WSSArch models a wavelength-selective switch: a "never creating wasted
// spectrum" architecture. It only ever propagates a signal to the single
// fiber it was explicitly told to, via Route.
type WSSArch struct {
	// routes maps an input fiber to the single output fiber it is currently
	// cross-connected to (set by whoever provisions a lightpath through
	// this node). A fiber with no entry has no established express route.
	routes map[netmodel.Fiber]netmodel.Fiber
}

// NewWSSArch returns an empty wavelength-selective switch architecture.
// Use Route to provision express cross-connections as lightpaths are added.
func NewWSSArch() *WSSArch {
	return &WSSArch{routes: make(map[netmodel.Fiber]netmodel.Fiber)}
}

// Route records that, at this node, signal entering on in currently departs
// on out. Call this once per lightpath that expresses through the node.
func (a *WSSArch) Route(in, out netmodel.Fiber) {
	a.routes[in] = out
}

// IsNeverCreatingWastedSpectrum always reports true for a WSS: it never
// broadcasts outside the requested output.
func (a *WSSArch) IsNeverCreatingWastedSpectrum() bool { return true }

// OutFibersIfAddToOutputFiber is selective: adding to out reaches only out.
func (a *WSSArch) OutFibersIfAddToOutputFiber(out netmodel.Fiber) []netmodel.Fiber {
	return []netmodel.Fiber{out}
}

// OutFibersIfExpressFromInputToOutputFiber is selective: expressing in to
// out reaches only out.
func (a *WSSArch) OutFibersIfExpressFromInputToOutputFiber(_, out netmodel.Fiber) []netmodel.Fiber {
	return []netmodel.Fiber{out}
}

// OutFibersUnavoidablePropagationFromInputFiber returns the currently
// provisioned express route for in, if any.
func (a *WSSArch) OutFibersUnavoidablePropagationFromInputFiber(in netmodel.Fiber) []netmodel.Fiber {
	if out, ok := a.routes[in]; ok {
		return []netmodel.Fiber{out}
	}

	return nil
}

// BroadcastArch models a filterless broadcast node (e.g. a passive splitter
// or combiner bank): every signal entering the node is broadcast to every
// other fiber in its broadcast set, creating waste signal on the fibers
// that were not the intended egress.
type BroadcastArch struct {
	// degree is the full set of fibers this node can broadcast to/from. It
	// must be populated with every fiber incident to the node, including
	// the ones added after construction (SetDegree supports this, since a
	// toy.Network typically wires fibers after creating nodes).
	degree []netmodel.Fiber
}

// NewBroadcastArch returns a broadcast architecture with an empty degree;
// call SetDegree once the node's fibers are known.
func NewBroadcastArch() *BroadcastArch {
	return &BroadcastArch{}
}

// SetDegree replaces the full broadcast set for this node.
func (a *BroadcastArch) SetDegree(fibers []netmodel.Fiber) {
	a.degree = fibers
}

// IsNeverCreatingWastedSpectrum always reports false: broadcast nodes are
// exactly the filterless architectures that create waste signal.
func (a *BroadcastArch) IsNeverCreatingWastedSpectrum() bool { return false }

// OutFibersIfAddToOutputFiber broadcasts the added signal to every fiber in
// the degree, not just the intended out — the rest receive waste signal.
func (a *BroadcastArch) OutFibersIfAddToOutputFiber(_ netmodel.Fiber) []netmodel.Fiber {
	return append([]netmodel.Fiber(nil), a.degree...)
}

// OutFibersIfExpressFromInputToOutputFiber broadcasts an expressed signal to
// every fiber in the degree except the one it arrived on.
func (a *BroadcastArch) OutFibersIfExpressFromInputToOutputFiber(in, _ netmodel.Fiber) []netmodel.Fiber {
	return excluding(a.degree, in)
}

// OutFibersUnavoidablePropagationFromInputFiber broadcasts to every fiber in
// the degree except the one the signal arrived on — this is the source of
// unavoidable lasing loops in filterless rings.
func (a *BroadcastArch) OutFibersUnavoidablePropagationFromInputFiber(in netmodel.Fiber) []netmodel.Fiber {
	return excluding(a.degree, in)
}

func excluding(fibers []netmodel.Fiber, skip netmodel.Fiber) []netmodel.Fiber {
	out := make([]netmodel.Fiber, 0, len(fibers))
	for _, f := range fibers {
		if f != skip {
			out = append(out, f)
		}
	}

	return out
}
