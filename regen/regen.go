// Package regen implements a length-based partitioning helper: splitting
// an ordered fiber sequence into the fewest contiguous segments whose
// total length never exceeds a regeneration distance.
package regen

import "github.com/wdmcore/osmcore/netmodel"

// RegenerationPoints packs fibers left-to-right into segments whose total
// length never exceeds maxKm, starting a new segment whenever the next
// fiber would push the running total over the limit. A single fiber
// longer than maxKm is a fatal configuration error.
func RegenerationPoints(fibers []netmodel.Fiber, maxKm float64) ([][]netmodel.Fiber, error) {
	var segments [][]netmodel.Fiber
	var current []netmodel.Fiber
	var total float64

	for _, f := range fibers {
		if f.LengthKm() > maxKm {
			return nil, netmodel.ErrFiberTooLong
		}

		if len(current) > 0 && total+f.LengthKm() > maxKm {
			segments = append(segments, current)
			current = nil
			total = 0
		}

		current = append(current, f)
		total += f.LengthKm()
	}

	if len(current) > 0 {
		segments = append(segments, current)
	}

	return segments, nil
}
