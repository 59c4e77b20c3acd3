package netmodel

// Fiber is an opaque handle to a unidirectional optical fiber owned by the
// surrounding network. Implementations must be comparable (usable as a map
// key) so the OSM can index occupation per fiber; netmodel/toy implements
// Fiber with pointers, which are comparable by identity.
type Fiber interface {
	// ID returns a stable, human-readable identifier (for logs and ordering
	// lightpaths deterministically; it is not used as the map key itself).
	ID() string

	// NetworkID identifies the owning Network, so the OSM can reject
	// entities from a different network (ErrCrossNetwork).
	NetworkID() string

	// ValidSlotIDs returns the ascending set of optical slot ids this fiber
	// can carry. Callers must not mutate the returned slice.
	ValidSlotIDs() []int

	// MinMaxValidSlotID returns the minimum and maximum valid slot id.
	MinMaxValidSlotID() (min, max int)

	// LengthKm returns the physical length of the fiber in kilometers.
	LengthKm() float64

	// IsBidirectional reports whether this fiber has a defined bidirectional
	// partner distinct from itself (I5).
	IsBidirectional() bool

	// BidirectionalPair returns the reverse-direction fiber. Only valid when
	// IsBidirectional() is true.
	BidirectionalPair() Fiber

	// A returns the origin node of this fiber.
	A() Node

	// B returns the destination node of this fiber.
	B() Node
}

// Node is an opaque handle to a network node owned by the surrounding
// network.
type Node interface {
	// ID returns a stable, human-readable identifier.
	ID() string

	// NetworkID identifies the owning Network, so the OSM can reject
	// entities from a different network (ErrCrossNetwork).
	NetworkID() string

	// OpticalSwitchingArchitecture returns the node's switching behavior.
	OpticalSwitchingArchitecture() Arch

	// IncomingFibers returns every fiber whose B() is this node.
	IncomingFibers() []Fiber
}

// Arch describes how a node's optical switching fabric propagates signal
// from an input fiber to candidate output fibers.
type Arch interface {
	// IsNeverCreatingWastedSpectrum reports whether this architecture always
	// filters cleanly: a signal added, expressed, or dropped here never
	// leaks onto fibers outside the intended legitimate path.
	IsNeverCreatingWastedSpectrum() bool

	// OutFibersIfAddToOutputFiber returns the fibers the signal would reach
	// when added (originated) at this node with out as the intended output.
	OutFibersIfAddToOutputFiber(out Fiber) []Fiber

	// OutFibersIfExpressFromInputToOutputFiber returns the fibers the signal
	// would reach when expressed (passed through) from in to the intended
	// output out.
	OutFibersIfExpressFromInputToOutputFiber(in, out Fiber) []Fiber

	// OutFibersUnavoidablePropagationFromInputFiber returns every fiber the
	// signal unavoidably reaches given only an input fiber, regardless of
	// the intended egress — this is the source of waste-signal propagation
	// in filterless architectures.
	OutFibersUnavoidablePropagationFromInputFiber(in Fiber) []Fiber
}

// DirectionlessModule identifies an add- or drop-side transceiver bank at a
// node, shared across directions, identified by the pair (Node, Index).
type DirectionlessModule struct {
	Node  Node
	Index int
}

// FiberPair is a chosen bidirectional fiber option: ab is the forward fiber,
// ba is its bidirectional partner.
type FiberPair struct {
	AB Fiber
	BA Fiber
}

// Lightpath is an opaque handle to a one-directional optical circuit with a
// fixed fiber sequence and slot set, owned by the surrounding network.
type Lightpath interface {
	// ID returns a stable identifier, used to totally order lightpaths
	// sharing a slot bucket.
	ID() string

	// NetworkID identifies the owning Network, so the OSM can reject
	// entities from a different network (ErrCrossNetwork).
	NetworkID() string

	// SeqFibers returns the ordered sequence of fibers making up the
	// lightpath's legitimate path.
	SeqFibers() []Fiber

	// OpticalSlotIDs returns the set of slot ids occupied by this lightpath.
	OpticalSlotIDs() []int

	// DirectionlessAddModuleIndexInOrigin returns the add-module index at
	// A(), if the lightpath originates in a directionless module.
	DirectionlessAddModuleIndexInOrigin() (index int, ok bool)

	// DirectionlessDropModuleIndexInDestination returns the drop-module
	// index at B(), if the lightpath terminates in a directionless module.
	DirectionlessDropModuleIndexInDestination() (index int, ok bool)

	// ResourcesWithWasteSignal returns the fibers and directionless modules
	// that carry this lightpath's unintended waste signal, as computed by
	// the surrounding network from its switching architectures.
	ResourcesWithWasteSignal() (fibers []Fiber, addModules, dropModules []DirectionlessModule)

	// A returns the origin node.
	A() Node

	// B returns the destination node.
	B() Node
}

// Network is the surrounding topology model the OSM borrows references
// from. Its lifetime must exceed the OSM's.
type Network interface {
	// ID is an identity handle used for cross-network checks: two entities
	// from different Network.ID() values must never be mixed in one query.
	ID() string

	Fibers() []Fiber
	Nodes() []Node
	Lightpaths() []Lightpath

	// NodePairFibers returns every fiber with A() == a and B() == b.
	NodePairFibers(a, b Node) []Fiber
}
