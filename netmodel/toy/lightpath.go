package toy

import "github.com/wdmcore/osmcore/netmodel"

// Lightpath is a concrete netmodel.Lightpath.
type Lightpath struct {
	id        string
	networkID string
	seqFibers []netmodel.Fiber
	slots     []int
	addModule *int // index into A()'s directionless add bank, if present
	dropModule *int // index into B()'s directionless drop bank, if present

	wasteFibers []netmodel.Fiber
	wasteAdd    []netmodel.DirectionlessModule
	wasteDrop   []netmodel.DirectionlessModule
}

var _ netmodel.Lightpath = (*Lightpath)(nil)

func (l *Lightpath) ID() string        { return l.id }
func (l *Lightpath) NetworkID() string { return l.networkID }

func (l *Lightpath) SeqFibers() []netmodel.Fiber {
	return append([]netmodel.Fiber(nil), l.seqFibers...)
}

func (l *Lightpath) OpticalSlotIDs() []int {
	return append([]int(nil), l.slots...)
}

func (l *Lightpath) DirectionlessAddModuleIndexInOrigin() (int, bool) {
	if l.addModule == nil {
		return 0, false
	}

	return *l.addModule, true
}

func (l *Lightpath) DirectionlessDropModuleIndexInDestination() (int, bool) {
	if l.dropModule == nil {
		return 0, false
	}

	return *l.dropModule, true
}

func (l *Lightpath) ResourcesWithWasteSignal() ([]netmodel.Fiber, []netmodel.DirectionlessModule, []netmodel.DirectionlessModule) {
	return append([]netmodel.Fiber(nil), l.wasteFibers...),
		append([]netmodel.DirectionlessModule(nil), l.wasteAdd...),
		append([]netmodel.DirectionlessModule(nil), l.wasteDrop...)
}

// SetWasteResources lets the network (or a propagation-analysis step)
// populate the waste-signal triple once it has been computed. In the real
// topology model this is derived from the switching architectures of the
// traversed nodes; here it is simply assigned by whoever builds the toy
// network, since computing it is the propagation package's job, not
// netmodel/toy's.
func (l *Lightpath) SetWasteResources(fibers []netmodel.Fiber, addModules, dropModules []netmodel.DirectionlessModule) {
	l.wasteFibers = fibers
	l.wasteAdd = addModules
	l.wasteDrop = dropModules
}

func (l *Lightpath) A() netmodel.Node {
	if len(l.seqFibers) == 0 {
		return nil
	}

	return l.seqFibers[0].A()
}

func (l *Lightpath) B() netmodel.Node {
	if len(l.seqFibers) == 0 {
		return nil
	}

	return l.seqFibers[len(l.seqFibers)-1].B()
}
