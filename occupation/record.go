package occupation

import "github.com/wdmcore/osmcore/netmodel"

// Record is the per-lightpath memo of its legitimate-signal placement and
// the waste-signal resources derived from it. The manager creates one on
// allocation and discards it on release; it never outlives the Manager
// that owns it.
type Record struct {
	Lightpath netmodel.Lightpath

	LegitimateFibers     []netmodel.Fiber
	LegitimateAddModule  *netmodel.DirectionlessModule
	LegitimateDropModule *netmodel.DirectionlessModule
	Slots                []int

	WasteFibers      []netmodel.Fiber
	WasteAddModules  []netmodel.DirectionlessModule
	WasteDropModules []netmodel.DirectionlessModule
}

// HasFiberCycle reports whether the legitimate path revisits a fiber,
// violating I6. The manager never constructs such a record through
// ResetFromLightpaths (the source network is responsible for I6), but a
// caller assembling a design by hand can ask this as a diagnostic.
func (r *Record) HasFiberCycle() bool {
	seen := make(map[netmodel.Fiber]struct{}, len(r.LegitimateFibers))
	for _, f := range r.LegitimateFibers {
		if _, ok := seen[f]; ok {
			return true
		}
		seen[f] = struct{}{}
	}

	return false
}

// IsSelfClashing reports whether this lightpath's own waste signal lands on
// a fiber its own legitimate signal already occupies — a node misconfigured
// so badly it interferes with the very lightpath it carries.
func (r *Record) IsSelfClashing() bool {
	legit := make(map[netmodel.Fiber]struct{}, len(r.LegitimateFibers))
	for _, f := range r.LegitimateFibers {
		legit[f] = struct{}{}
	}
	for _, f := range r.WasteFibers {
		if _, ok := legit[f]; ok {
			return true
		}
	}

	return false
}
