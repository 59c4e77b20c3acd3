package propagation

import "github.com/wdmcore/osmcore/netmodel"

// Result is the outcome of PropagationOf.
type Result struct {
	// Propagated is every fiber the signal reaches, always a superset of
	// the requested path (P9) unless the never-wasting shortcut applies,
	// in which case it equals the path exactly.
	Propagated []netmodel.Fiber
	// Cycles lists every simple lasing loop found in the propagation
	// graph, up to rotation.
	Cycles [][]netmodel.Fiber
	// MultipathOk is true iff every fiber on the requested path, and the
	// synthetic drop sentinel, is reached via exactly one route.
	MultipathOk bool
}

// PropagationOf analyses how the signal entering links[0] at its origin
// node spreads through the switching architecture of every node the path
// touches, given links forms a contiguous unicast path (B(links[i]) ==
// A(links[i+1])).
func PropagationOf(links []netmodel.Fiber) (Result, error) {
	if len(links) == 0 {
		return Result{}, netmodel.ErrEmptyPath
	}

	if allNeverWasting(links) {
		return Result{
			Propagated:  append([]netmodel.Fiber(nil), links...),
			MultipathOk: true,
		}, nil
	}

	indexOf := make(map[netmodel.Fiber]int, len(links))
	for i, f := range links {
		indexOf[f] = i
	}

	g := newGraph()
	g.addVertex(dummyAdd)

	worklist := []vertex{dummyAdd}
	processed := make(map[vertex]bool)

	enqueue := func(w vertex) {
		if !processed[w] {
			worklist = append(worklist, w)
		}
	}

	for len(worklist) > 0 {
		f := worklist[0]
		worklist = worklist[1:]
		if processed[f] {
			continue
		}
		processed[f] = true

		if f == dummyAdd {
			origin := links[0].A()
			for _, p := range origin.OpticalSwitchingArchitecture().OutFibersIfAddToOutputFiber(links[0]) {
				g.addEdge(dummyAdd, p)
				enqueue(p)
			}

			continue
		}

		if f == dummyDrop {
			continue
		}

		fiber, ok := f.(netmodel.Fiber)
		if !ok {
			continue
		}

		node := fiber.B()
		for _, p := range node.OpticalSwitchingArchitecture().OutFibersUnavoidablePropagationFromInputFiber(fiber) {
			g.addEdge(fiber, p)
			enqueue(p)
		}

		if i, onPath := indexOf[fiber]; onPath {
			if i < len(links)-1 {
				out := links[i+1]
				for _, p := range node.OpticalSwitchingArchitecture().OutFibersIfExpressFromInputToOutputFiber(fiber, out) {
					g.addEdge(fiber, p)
					enqueue(p)
				}
			} else {
				g.addEdge(fiber, dummyDrop)
				enqueue(dummyDrop)
			}
		}
	}

	if !processed[dummyDrop] {
		return Result{}, netmodel.ErrSignalNotReachingDrop
	}

	var propagated []netmodel.Fiber
	for _, v := range g.order {
		if v == dummyAdd || v == dummyDrop {
			continue
		}
		if f, ok := v.(netmodel.Fiber); ok {
			propagated = append(propagated, f)
		}
	}

	multipathOk := g.inDegree[dummyDrop] == 1
	if multipathOk {
		for _, f := range links {
			if g.inDegree[f] != 1 {
				multipathOk = false

				break
			}
		}
	}

	return Result{
		Propagated:  propagated,
		Cycles:      toFiberCycles(simpleCycles(g)),
		MultipathOk: multipathOk,
	}, nil
}

// UnavoidableLasingLoops builds the global fiber-to-fiber propagation
// graph for net — using every node's
// OutFibersUnavoidablePropagationFromInputFiber for each of its incoming
// fibers — and returns every simple cycle found, the lasing loops that
// exist independent of any particular lightpath's path.
func UnavoidableLasingLoops(net netmodel.Network) [][]netmodel.Fiber {
	g := newGraph()
	for _, f := range net.Fibers() {
		g.addVertex(f)
	}
	for _, node := range net.Nodes() {
		arch := node.OpticalSwitchingArchitecture()
		for _, in := range node.IncomingFibers() {
			for _, out := range arch.OutFibersUnavoidablePropagationFromInputFiber(in) {
				g.addEdge(in, out)
			}
		}
	}

	return toFiberCycles(simpleCycles(g))
}

func allNeverWasting(links []netmodel.Fiber) bool {
	if !links[0].A().OpticalSwitchingArchitecture().IsNeverCreatingWastedSpectrum() {
		return false
	}
	for _, f := range links {
		if !f.B().OpticalSwitchingArchitecture().IsNeverCreatingWastedSpectrum() {
			return false
		}
	}

	return true
}

func toFiberCycles(cycles [][]vertex) [][]netmodel.Fiber {
	if len(cycles) == 0 {
		return nil
	}

	out := make([][]netmodel.Fiber, 0, len(cycles))
	for _, cyc := range cycles {
		fibers := make([]netmodel.Fiber, 0, len(cyc))
		for _, v := range cyc {
			if f, ok := v.(netmodel.Fiber); ok {
				fibers = append(fibers, f)
			}
		}
		out = append(out, fibers)
	}

	return out
}
