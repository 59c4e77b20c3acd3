package occupation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wdmcore/osmcore/netmodel"
	"github.com/wdmcore/osmcore/slotindex"
)

// Manager is the Optical Spectrum Manager core: six independent SlotIndex
// instances (legitimate/waste × fiber/add-module/drop-module) plus a
// per-lightpath Record, exposing allocation, release, availability queries,
// validity predicates and clash diagnostics.
//
// A Manager is single-threaded and performs no I/O; callers must serialise
// access externally (see §5 of the design notes carried in SPEC_FULL.md).
type Manager struct {
	networkID string

	legitimateFiber *slotindex.SlotIndex[netmodel.Fiber]
	legitimateAdd   *slotindex.SlotIndex[netmodel.DirectionlessModule]
	legitimateDrop  *slotindex.SlotIndex[netmodel.DirectionlessModule]

	wasteFiber *slotindex.SlotIndex[netmodel.Fiber]
	wasteAdd   *slotindex.SlotIndex[netmodel.DirectionlessModule]
	wasteDrop  *slotindex.SlotIndex[netmodel.DirectionlessModule]

	records map[string]*Record
}

// NewManager returns an empty manager bound to networkID. Every entity
// passed to a subsequent call must report this id from NetworkID(), or the
// call fails with netmodel.ErrCrossNetwork.
func NewManager(networkID string) *Manager {
	return &Manager{
		networkID:       networkID,
		legitimateFiber: slotindex.New[netmodel.Fiber](),
		legitimateAdd:   slotindex.New[netmodel.DirectionlessModule](),
		legitimateDrop:  slotindex.New[netmodel.DirectionlessModule](),
		wasteFiber:      slotindex.New[netmodel.Fiber](),
		wasteAdd:        slotindex.New[netmodel.DirectionlessModule](),
		wasteDrop:       slotindex.New[netmodel.DirectionlessModule](),
		records:         make(map[string]*Record),
	}
}

// ResetFromLightpaths clears all six indices and rebuilds them from every
// lightpath currently registered in net, using each lightpath's own waste
// triple (netmodel.Lightpath.ResourcesWithWasteSignal) for the waste side.
// The result is independent of net.Lightpaths() iteration order (P4).
func (m *Manager) ResetFromLightpaths(net netmodel.Network) error {
	if net.ID() != m.networkID {
		return netmodel.ErrCrossNetwork
	}

	m.legitimateFiber.Clear()
	m.legitimateAdd.Clear()
	m.legitimateDrop.Clear()
	m.wasteFiber.Clear()
	m.wasteAdd.Clear()
	m.wasteDrop.Clear()
	m.records = make(map[string]*Record)

	for _, lp := range net.Lightpaths() {
		var addMod, dropMod *netmodel.DirectionlessModule
		if idx, ok := lp.DirectionlessAddModuleIndexInOrigin(); ok {
			mod := netmodel.DirectionlessModule{Node: lp.A(), Index: idx}
			addMod = &mod
		}
		if idx, ok := lp.DirectionlessDropModuleIndexInDestination(); ok {
			mod := netmodel.DirectionlessModule{Node: lp.B(), Index: idx}
			dropMod = &mod
		}

		if err := m.AllocateLegitimate(lp, addMod, dropMod, lp.SeqFibers(), lp.OpticalSlotIDs()); err != nil {
			return err
		}

		wasteFibers, wasteAdd, wasteDrop := lp.ResourcesWithWasteSignal()
		if err := m.AllocateWaste(lp, wasteAdd, wasteDrop, wasteFibers, lp.OpticalSlotIDs()); err != nil {
			return err
		}
	}

	return nil
}

// AllocateLegitimate records lp's intended signal: every fiber in fibers
// gets slots allocated in the legitimate×fiber index, and addMod/dropMod
// (when present) get it in the legitimate×module indices. A nil or empty
// slots is a no-op, matching SlotIndex.Allocate.
func (m *Manager) AllocateLegitimate(lp netmodel.Lightpath, addMod, dropMod *netmodel.DirectionlessModule, fibers []netmodel.Fiber, slots []int) error {
	if err := m.checkNetwork(lp, fibers, addMod, dropMod); err != nil {
		return err
	}
	if len(slots) == 0 {
		return nil
	}

	rec := m.recordFor(lp)
	rec.LegitimateFibers = append([]netmodel.Fiber(nil), fibers...)
	rec.LegitimateAddModule = addMod
	rec.LegitimateDropModule = dropMod
	rec.Slots = append([]int(nil), slots...)

	for _, f := range fibers {
		m.legitimateFiber.Allocate(f, lp, slots)
	}
	if addMod != nil {
		m.legitimateAdd.Allocate(*addMod, lp, slots)
	}
	if dropMod != nil {
		m.legitimateDrop.Allocate(*dropMod, lp, slots)
	}

	return nil
}

// AllocateWaste records lp's unintended signal spillover on fibers and the
// directionless modules it reaches, using the same slot set as its
// legitimate signal.
func (m *Manager) AllocateWaste(lp netmodel.Lightpath, addMods, dropMods []netmodel.DirectionlessModule, fibers []netmodel.Fiber, slots []int) error {
	if err := m.checkNetwork(lp, fibers, nil, nil); err != nil {
		return err
	}
	for _, mod := range addMods {
		if mod.Node.NetworkID() != m.networkID {
			return netmodel.ErrCrossNetwork
		}
	}
	for _, mod := range dropMods {
		if mod.Node.NetworkID() != m.networkID {
			return netmodel.ErrCrossNetwork
		}
	}

	rec := m.recordFor(lp)
	rec.WasteFibers = append([]netmodel.Fiber(nil), fibers...)
	rec.WasteAddModules = append([]netmodel.DirectionlessModule(nil), addMods...)
	rec.WasteDropModules = append([]netmodel.DirectionlessModule(nil), dropMods...)

	for _, f := range fibers {
		m.wasteFiber.Allocate(f, lp, slots)
	}
	for _, mod := range addMods {
		m.wasteAdd.Allocate(mod, lp, slots)
	}
	for _, mod := range dropMods {
		m.wasteDrop.Allocate(mod, lp, slots)
	}

	return nil
}

// Release removes lp from all six indices and discards its record. A
// second call is a no-op (P2).
func (m *Manager) Release(lp netmodel.Lightpath) {
	m.legitimateFiber.Release(lp)
	m.legitimateAdd.Release(lp)
	m.legitimateDrop.Release(lp)
	m.wasteFiber.Release(lp)
	m.wasteAdd.Release(lp)
	m.wasteDrop.Release(lp)
	delete(m.records, lp.ID())
}

func (m *Manager) recordFor(lp netmodel.Lightpath) *Record {
	rec, ok := m.records[lp.ID()]
	if !ok {
		rec = &Record{Lightpath: lp}
		m.records[lp.ID()] = rec
	}

	return rec
}

func (m *Manager) checkNetwork(lp netmodel.Lightpath, fibers []netmodel.Fiber, addMod, dropMod *netmodel.DirectionlessModule) error {
	if lp.NetworkID() != m.networkID {
		return netmodel.ErrCrossNetwork
	}
	for _, f := range fibers {
		if f.NetworkID() != m.networkID {
			return netmodel.ErrCrossNetwork
		}
	}
	if addMod != nil && addMod.Node.NetworkID() != m.networkID {
		return netmodel.ErrCrossNetwork
	}
	if dropMod != nil && dropMod.Node.NetworkID() != m.networkID {
		return netmodel.ErrCrossNetwork
	}

	return nil
}

// OccupiedResources returns the slot->lightpaths map for fiber under the
// given signal kind.
func (m *Manager) OccupiedResources(fiber netmodel.Fiber, kind SignalKind) map[int][]netmodel.Lightpath {
	if kind == Waste {
		return m.wasteFiber.OccupiedSlots(fiber)
	}

	return m.legitimateFiber.OccupiedSlots(fiber)
}

// OccupiedResourcesInAddModule returns the slot->lightpaths map for mod
// under the given signal kind.
func (m *Manager) OccupiedResourcesInAddModule(mod netmodel.DirectionlessModule, kind SignalKind) map[int][]netmodel.Lightpath {
	if kind == Waste {
		return m.wasteAdd.OccupiedSlots(mod)
	}

	return m.legitimateAdd.OccupiedSlots(mod)
}

// OccupiedResourcesInDropModule returns the slot->lightpaths map for mod
// under the given signal kind.
func (m *Manager) OccupiedResourcesInDropModule(mod netmodel.DirectionlessModule, kind SignalKind) map[int][]netmodel.Lightpath {
	if kind == Waste {
		return m.wasteDrop.OccupiedSlots(mod)
	}

	return m.legitimateDrop.OccupiedSlots(mod)
}

// OccupiedSlotIDs returns the union of legitimate and waste slot ids
// occupied on fiber.
func (m *Manager) OccupiedSlotIDs(fiber netmodel.Fiber) []int {
	return unionInts(m.legitimateFiber.OccupiedSlotIDs(fiber), m.wasteFiber.OccupiedSlotIDs(fiber))
}

// OccupiedSlotIDsInAddModule returns the union of legitimate and waste
// slot ids occupied on mod.
func (m *Manager) OccupiedSlotIDsInAddModule(mod netmodel.DirectionlessModule) []int {
	return unionInts(m.legitimateAdd.OccupiedSlotIDs(mod), m.wasteAdd.OccupiedSlotIDs(mod))
}

// OccupiedSlotIDsInDropModule returns the union of legitimate and waste
// slot ids occupied on mod.
func (m *Manager) OccupiedSlotIDsInDropModule(mod netmodel.DirectionlessModule) []int {
	return unionInts(m.legitimateDrop.OccupiedSlotIDs(mod), m.wasteDrop.OccupiedSlotIDs(mod))
}

// IdleSlotIDs returns fiber.ValidSlotIDs() minus OccupiedSlotIDs(fiber)
// (P5).
func (m *Manager) IdleSlotIDs(fiber netmodel.Fiber) []int {
	occupied := setOf(m.OccupiedSlotIDs(fiber))
	var idle []int
	for _, s := range fiber.ValidSlotIDs() {
		if _, ok := occupied[s]; !ok {
			idle = append(idle, s)
		}
	}
	sort.Ints(idle)

	return idle
}

// AvailableSlotIDs returns the intersection of IdleSlotIDs over fibers,
// minus any slots occupied (either signal kind) in addMod/dropMod when
// given. fibers must be non-empty.
func (m *Manager) AvailableSlotIDs(fibers []netmodel.Fiber, addMod, dropMod *netmodel.DirectionlessModule) ([]int, error) {
	if len(fibers) == 0 {
		return nil, netmodel.ErrEmptyFiberSet
	}

	result := setOf(m.IdleSlotIDs(fibers[0]))
	for _, f := range fibers[1:] {
		result = intersect(result, setOf(m.IdleSlotIDs(f)))
	}

	if addMod != nil {
		result = subtract(result, setOf(m.OccupiedSlotIDsInAddModule(*addMod)))
	}
	if dropMod != nil {
		result = subtract(result, setOf(m.OccupiedSlotIDsInDropModule(*dropMod)))
	}

	return sortedKeys(result), nil
}

// IsAllocatable reports whether slots can be allocated on path (and the
// optional modules) without landing on an already-occupied slot, and that
// path does not repeat a fiber.
func (m *Manager) IsAllocatable(path []netmodel.Fiber, addMod, dropMod *netmodel.DirectionlessModule, slots []int) bool {
	if hasDuplicateFiber(path) {
		return false
	}

	available, err := m.AvailableSlotIDs(path, addMod, dropMod)
	if err != nil {
		return false
	}
	avail := setOf(available)
	for _, s := range slots {
		if _, ok := avail[s]; !ok {
			return false
		}
	}

	return true
}

// IdleRangeInitialSlots returns every initial slot id s such that
// [s, s+n-1] is entirely idle on fiber.
func (m *Manager) IdleRangeInitialSlots(fiber netmodel.Fiber, n int) []int {
	idle := setOf(m.IdleSlotIDs(fiber))

	return contiguousStarts(idle, n)
}

// MinMaxValidSlotAcrossFibers returns the intersection of each fiber's
// valid slot range: the max of their minimums and the min of their
// maximums. fibers must be non-empty.
func (m *Manager) MinMaxValidSlotAcrossFibers(fibers []netmodel.Fiber) (int, int, error) {
	if len(fibers) == 0 {
		return 0, 0, netmodel.ErrEmptyFiberSet
	}

	min, max := fibers[0].MinMaxValidSlotID()
	for _, f := range fibers[1:] {
		fMin, fMax := f.MinMaxValidSlotID()
		if fMin > min {
			min = fMin
		}
		if fMax < max {
			max = fMax
		}
	}

	return min, max, nil
}

// ClashingSlotsInFiber returns every slot s on fiber such that the
// legitimate index has more than one lightpath at s, or exactly one and
// the waste index is non-empty at s too.
func (m *Manager) ClashingSlotsInFiber(fiber netmodel.Fiber) []int {
	return clashingSlots(m.legitimateFiber.OccupiedSlots(fiber), m.wasteFiber.OccupiedSlots(fiber))
}

// ClashingSlotsInAddModule is the add-module analogue of
// ClashingSlotsInFiber.
func (m *Manager) ClashingSlotsInAddModule(mod netmodel.DirectionlessModule) []int {
	return clashingSlots(m.legitimateAdd.OccupiedSlots(mod), m.wasteAdd.OccupiedSlots(mod))
}

// ClashingSlotsInDropModule is the drop-module analogue of
// ClashingSlotsInFiber.
func (m *Manager) ClashingSlotsInDropModule(mod netmodel.DirectionlessModule) []int {
	return clashingSlots(m.legitimateDrop.OccupiedSlots(mod), m.wasteDrop.OccupiedSlots(mod))
}

// ClashingSlotCount returns the total number of clashing (fiber, slot)
// pairs across every fiber with any occupation — a single scalar health
// metric for reports.
func (m *Manager) ClashingSlotCount() int {
	count := 0
	for _, f := range m.legitimateFiber.ElementsWithAnyOccupation() {
		count += len(m.ClashingSlotsInFiber(f))
	}

	return count
}

// IsSpectrumOccupationOk reports whether, across every occupied resource
// and both signal kinds, no slot is held by more than one lightpath.
func (m *Manager) IsSpectrumOccupationOk() bool {
	indices := []*slotindex.SlotIndex[netmodel.Fiber]{m.legitimateFiber, m.wasteFiber}
	for _, idx := range indices {
		for _, f := range idx.ElementsWithAnyOccupation() {
			for slot, occupants := range idx.OccupiedSlots(f) {
				if len(occupants) != 1 {
					return false
				}
				if !validSlot(f, slot) {
					return false
				}
			}
		}
	}

	moduleIndices := []*slotindex.SlotIndex[netmodel.DirectionlessModule]{m.legitimateAdd, m.legitimateDrop, m.wasteAdd, m.wasteDrop}
	for _, idx := range moduleIndices {
		for _, mod := range idx.ElementsWithAnyOccupation() {
			for _, occupants := range idx.OccupiedSlots(mod) {
				if len(occupants) != 1 {
					return false
				}
			}
		}
	}

	return true
}

// IsSpectrumOccupationOkForLightpath reports whether lp's own legitimate
// placement is clash-free: every fiber/module slot lp occupies is valid
// and held exactly by lp.
func (m *Manager) IsSpectrumOccupationOkForLightpath(lp netmodel.Lightpath) bool {
	rec, ok := m.records[lp.ID()]
	if !ok {
		return true
	}

	for _, f := range rec.LegitimateFibers {
		for _, s := range rec.Slots {
			if !validSlot(f, s) {
				return false
			}
			if !exactlyLightpath(m.legitimateFiber.OccupiedSlots(f)[s], lp) {
				return false
			}
		}
	}
	if rec.LegitimateAddModule != nil {
		for _, s := range rec.Slots {
			if !exactlyLightpath(m.legitimateAdd.OccupiedSlots(*rec.LegitimateAddModule)[s], lp) {
				return false
			}
		}
	}
	if rec.LegitimateDropModule != nil {
		for _, s := range rec.Slots {
			if !exactlyLightpath(m.legitimateDrop.OccupiedSlots(*rec.LegitimateDropModule)[s], lp) {
				return false
			}
		}
	}

	return true
}

// Report renders a human-readable summary of occupation health: the number
// of tracked lightpaths, the total clashing-slot count, the overall
// clash-free flag, the clashing slots of each fiber that has any, and the
// lightpaths whose records revisit a fiber or clash with their own waste
// signal. It prints no per-fiber idle or occupied counts. It is a diagnostic convenience, not
// part of the programmatic API surface other components depend on.
func (m *Manager) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "spectrum occupation report (network %q)\n", m.networkID)
	fmt.Fprintf(&b, "  lightpaths tracked: %d\n", len(m.records))
	fmt.Fprintf(&b, "  clashing slots:     %d\n", m.ClashingSlotCount())
	fmt.Fprintf(&b, "  occupation ok:      %t\n", m.IsSpectrumOccupationOk())

	for _, f := range m.legitimateFiber.ElementsWithAnyOccupation() {
		clashes := m.ClashingSlotsInFiber(f)
		if len(clashes) > 0 {
			fmt.Fprintf(&b, "  fiber %q clashing at slots %v\n", f.ID(), clashes)
		}
	}

	var ids []string
	for id := range m.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		rec := m.records[id]
		if rec.HasFiberCycle() {
			fmt.Fprintf(&b, "  lightpath %q revisits a fiber on its legitimate path\n", id)
		}
		if rec.IsSelfClashing() {
			fmt.Fprintf(&b, "  lightpath %q clashes with its own waste signal\n", id)
		}
	}

	return b.String()
}

func exactlyLightpath(occupants []netmodel.Lightpath, lp netmodel.Lightpath) bool {
	return len(occupants) == 1 && occupants[0].ID() == lp.ID()
}

func validSlot(f netmodel.Fiber, slot int) bool {
	for _, s := range f.ValidSlotIDs() {
		if s == slot {
			return true
		}
	}

	return false
}

func clashingSlots(legit, waste map[int][]netmodel.Lightpath) []int {
	var out []int
	for slot, occupants := range legit {
		if len(occupants) > 1 {
			out = append(out, slot)

			continue
		}
		if len(occupants) == 1 {
			if w, ok := waste[slot]; ok && len(w) > 0 {
				out = append(out, slot)
			}
		}
	}
	sort.Ints(out)

	return out
}

func hasDuplicateFiber(path []netmodel.Fiber) bool {
	seen := make(map[netmodel.Fiber]struct{}, len(path))
	for _, f := range path {
		if _, ok := seen[f]; ok {
			return true
		}
		seen[f] = struct{}{}
	}

	return false
}
