package assign

import (
	"github.com/wdmcore/osmcore/netmodel"
	"github.com/wdmcore/osmcore/occupation"
)

type hopOptions struct {
	pairs      []netmodel.FiberPair
	candidates map[int]struct{}
}

// FirstFitForAdjacenciesBidi finds a slot range of size n usable across
// every hop of a node sequence, choosing one bidirectional fiber pair per
// hop. nodes must list at least two nodes; each consecutive pair (A, B) is
// resolved via net.NodePairFibers(A, B). Every candidate fiber must be
// bidirectional (ErrRequiresBidirectional) and distinct from every fiber,
// or its partner, already chosen as a candidate on any other hop
// (ErrDuplicateFiberOption).
//
// Slots listed in unusable are excluded from consideration up front. The
// optional add/drop modules at the sequence's two ends are checked last:
// a candidate slot range is rejected if any of them already carries signal
// (of either kind) in that range.
func FirstFitForAdjacenciesBidi(
	mgr *occupation.Manager,
	net netmodel.Network,
	nodes []netmodel.Node,
	addModAB, dropModAB, addModBA, dropModBA *netmodel.DirectionlessModule,
	n int,
	unusable []int,
) ([]netmodel.FiberPair, []int, error) {
	if len(nodes) < 2 {
		return nil, nil, netmodel.ErrEmptyPath
	}

	unusableSet := make(map[int]struct{}, len(unusable))
	for _, s := range unusable {
		unusableSet[s] = struct{}{}
	}

	seen := make(map[netmodel.Fiber]bool)
	hops := make([]hopOptions, 0, len(nodes)-1)

	for i := 0; i < len(nodes)-1; i++ {
		a, b := nodes[i], nodes[i+1]

		h := hopOptions{candidates: make(map[int]struct{})}
		for _, ab := range net.NodePairFibers(a, b) {
			if !ab.IsBidirectional() {
				return nil, nil, netmodel.ErrRequiresBidirectional
			}
			ba := ab.BidirectionalPair()
			if seen[ab] || seen[ba] {
				return nil, nil, netmodel.ErrDuplicateFiberOption
			}
			seen[ab] = true
			seen[ba] = true

			h.pairs = append(h.pairs, netmodel.FiberPair{AB: ab, BA: ba})

			for _, s := range intersectSorted(mgr.IdleRangeInitialSlots(ab, n), mgr.IdleRangeInitialSlots(ba, n)) {
				if _, skip := unusableSet[s]; skip {
					continue
				}
				h.candidates[s] = struct{}{}
			}
		}
		hops = append(hops, h)
	}

	common := hops[0].candidates
	for _, h := range hops[1:] {
		common = intersectSet(common, h.candidates)
	}

	for _, s := range sortedSetKeys(common) {
		if moduleBlocksRange(mgr, addModAB, true, s, n) || moduleBlocksRange(mgr, dropModAB, false, s, n) ||
			moduleBlocksRange(mgr, addModBA, true, s, n) || moduleBlocksRange(mgr, dropModBA, false, s, n) {
			continue
		}

		chosen, ok := chooseHopPairs(mgr, hops, s, n)
		if !ok {
			continue
		}

		return chosen, rangeSlots(s, n), nil
	}

	return nil, nil, nil
}

func chooseHopPairs(mgr *occupation.Manager, hops []hopOptions, s, n int) ([]netmodel.FiberPair, bool) {
	chosen := make([]netmodel.FiberPair, 0, len(hops))
	for _, h := range hops {
		pair, ok := firstIdlePair(mgr, h.pairs, s, n)
		if !ok {
			return nil, false
		}
		chosen = append(chosen, pair)
	}

	return chosen, true
}

func firstIdlePair(mgr *occupation.Manager, pairs []netmodel.FiberPair, s, n int) (netmodel.FiberPair, bool) {
	for _, p := range pairs {
		if rangeIdle(mgr, p.AB, s, n) && rangeIdle(mgr, p.BA, s, n) {
			return p, true
		}
	}

	return netmodel.FiberPair{}, false
}

func rangeIdle(mgr *occupation.Manager, f netmodel.Fiber, s, n int) bool {
	idle := make(map[int]struct{})
	for _, slot := range mgr.IdleSlotIDs(f) {
		idle[slot] = struct{}{}
	}
	for off := 0; off < n; off++ {
		if _, ok := idle[s+off]; !ok {
			return false
		}
	}

	return true
}

func moduleBlocksRange(mgr *occupation.Manager, mod *netmodel.DirectionlessModule, isAdd bool, s, n int) bool {
	if mod == nil {
		return false
	}

	var occupiedSlots []int
	if isAdd {
		occupiedSlots = mgr.OccupiedSlotIDsInAddModule(*mod)
	} else {
		occupiedSlots = mgr.OccupiedSlotIDsInDropModule(*mod)
	}

	occupied := make(map[int]struct{}, len(occupiedSlots))
	for _, slot := range occupiedSlots {
		occupied[slot] = struct{}{}
	}
	for off := 0; off < n; off++ {
		if _, ok := occupied[s+off]; ok {
			return true
		}
	}

	return false
}

func intersectSorted(a, b []int) []int {
	bSet := make(map[int]struct{}, len(b))
	for _, x := range b {
		bSet[x] = struct{}{}
	}

	var out []int
	for _, x := range a {
		if _, ok := bSet[x]; ok {
			out = append(out, x)
		}
	}

	return out
}

func intersectSet(a, b map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{})
	for k := range a {
		if _, ok := b[k]; ok {
			out[k] = struct{}{}
		}
	}

	return out
}

func sortedSetKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sortInts(out)

	return out
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
