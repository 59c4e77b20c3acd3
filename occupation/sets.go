package occupation

import "sort"

func setOf(ints []int) map[int]struct{} {
	set := make(map[int]struct{}, len(ints))
	for _, i := range ints {
		set[i] = struct{}{}
	}

	return set
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

func intersect(a, b map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{})
	for k := range a {
		if _, ok := b[k]; ok {
			out[k] = struct{}{}
		}
	}

	return out
}

func subtract(a, b map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(a))
	for k := range a {
		if _, ok := b[k]; !ok {
			out[k] = struct{}{}
		}
	}

	return out
}

func unionInts(a, b []int) []int {
	set := setOf(a)
	for _, i := range b {
		set[i] = struct{}{}
	}

	return sortedKeys(set)
}

// contiguousStarts returns, in ascending order, every initial slot id s
// such that s, s+1, ..., s+n-1 all belong to idle.
func contiguousStarts(idle map[int]struct{}, n int) []int {
	if n <= 0 {
		return nil
	}

	starts := sortedKeys(idle)
	var out []int
	for _, s := range starts {
		ok := true
		for off := 1; off < n; off++ {
			if _, present := idle[s+off]; !present {
				ok = false

				break
			}
		}
		if ok {
			out = append(out, s)
		}
	}

	return out
}
