package assign

import (
	"github.com/wdmcore/osmcore/netmodel"
	"github.com/wdmcore/osmcore/occupation"
)

// FirstFit returns the lowest-initial-slot contiguous range of size n that
// is idle on every fiber in path and, when given, in addMod/dropMod. It
// reports ok=false if path repeats a fiber, no such range exists, or the
// manager rejects the query (e.g. an empty path).
func FirstFit(mgr *occupation.Manager, path []netmodel.Fiber, addMod, dropMod *netmodel.DirectionlessModule, n int, minSlot *int) ([]int, bool) {
	if hasDuplicateFiber(path) {
		return nil, false
	}

	valid, err := mgr.AvailableSlotIDs(path, addMod, dropMod)
	if err != nil {
		return nil, false
	}

	if minSlot != nil {
		filtered := valid[:0]
		for _, s := range valid {
			if s >= *minSlot {
				filtered = append(filtered, s)
			}
		}
		valid = filtered
	}

	start, ok := firstContiguousStart(valid, n)
	if !ok {
		return nil, false
	}

	return rangeSlots(start, n), true
}

// FirstFitTwoRoutes returns a contiguous range of size n for each of path1
// and path2. If the paths share no fiber the two ranges are found
// independently via FirstFit. If they do, the ranges are additionally
// required to be disjoint (|s1-s2| >= n guarantees this for equal-length
// runs) and the returned pair is the first in ascending (s1, s2) order.
func FirstFitTwoRoutes(mgr *occupation.Manager, path1, path2 []netmodel.Fiber, addMod1, dropMod1, addMod2, dropMod2 *netmodel.DirectionlessModule, n int) (slots1, slots2 []int, ok bool) {
	if hasDuplicateFiber(path1) || hasDuplicateFiber(path2) {
		return nil, nil, false
	}

	if !sharesFiber(path1, path2) {
		s1, ok1 := FirstFit(mgr, path1, addMod1, dropMod1, n, nil)
		if !ok1 {
			return nil, nil, false
		}
		s2, ok2 := FirstFit(mgr, path2, addMod2, dropMod2, n, nil)
		if !ok2 {
			return nil, nil, false
		}

		return s1, s2, true
	}

	valid1, err := mgr.AvailableSlotIDs(path1, addMod1, dropMod1)
	if err != nil {
		return nil, nil, false
	}
	valid2, err := mgr.AvailableSlotIDs(path2, addMod2, dropMod2)
	if err != nil {
		return nil, nil, false
	}

	starts1 := allContiguousStarts(valid1, n)
	starts2 := allContiguousStarts(valid2, n)

	for _, s1 := range starts1 {
		for _, s2 := range starts2 {
			if absInt(s1-s2) >= n {
				return rangeSlots(s1, n), rangeSlots(s2, n), true
			}
		}
	}

	return nil, nil, false
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

func sharesFiber(path1, path2 []netmodel.Fiber) bool {
	seen := make(map[netmodel.Fiber]struct{}, len(path1))
	for _, f := range path1 {
		seen[f] = struct{}{}
	}
	for _, f := range path2 {
		if _, ok := seen[f]; ok {
			return true
		}
	}

	return false
}

// firstContiguousStart scans ascending-sorted slots for the first run of n
// consecutive integers and returns its starting value.
func firstContiguousStart(slots []int, n int) (int, bool) {
	if n <= 0 || len(slots) == 0 {
		return 0, false
	}

	runStart := 0
	for i := range slots {
		if i > runStart && slots[i] != slots[i-1]+1 {
			runStart = i
		}
		if i-runStart+1 == n {
			return slots[runStart], true
		}
	}

	return 0, false
}

// allContiguousStarts returns every starting value, in ascending order, of
// a run of n consecutive integers within the ascending-sorted slots.
func allContiguousStarts(slots []int, n int) []int {
	if n <= 0 {
		return nil
	}

	set := make(map[int]struct{}, len(slots))
	for _, s := range slots {
		set[s] = struct{}{}
	}

	var starts []int
	for _, s := range slots {
		ok := true
		for off := 1; off < n; off++ {
			if _, present := set[s+off]; !present {
				ok = false

				break
			}
		}
		if ok {
			starts = append(starts, s)
		}
	}

	return starts
}

func rangeSlots(start, n int) []int {
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = start + i
	}

	return out
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
