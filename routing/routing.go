// Package routing proposes candidate physical paths between two nodes,
// ranked by cumulative fiber length. It sits upstream of assign: a caller
// first asks routing for a path, then hands the resulting fiber sequence to
// assign.FirstFit to find usable spectrum along it. routing never looks at
// slot occupation — that split mirrors the teacher's own dijkstra package,
// which only ever sees a core.Graph of vertices and weighted edges and knows
// nothing about what a caller intends to route over those edges.
package routing

import (
	"errors"
	"fmt"

	"github.com/wdmcore/osmcore/dijkstra"

	"github.com/wdmcore/osmcore/netmodel"
	"github.com/wdmcore/osmcore/topocheck"
)

// ErrNoPath indicates toID is not reachable from fromID over the fiber plant.
var ErrNoPath = errors.New("routing: no physical path between nodes")

// ShortestPath returns the minimum-length (by cumulative LengthKm) sequence
// of fibers from fromID to toID. When more than one fiber connects the same
// node pair (a bidirectional pair, or parallel routes), the shortest of the
// candidates for that hop is chosen.
func ShortestPath(net netmodel.Network, fromID, toID string) ([]netmodel.Fiber, error) {
	g, err := topocheck.BuildGraph(net)
	if err != nil {
		return nil, err
	}

	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(fromID), dijkstra.WithReturnPath())
	if err != nil {
		return nil, fmt.Errorf("routing: %w", err)
	}

	nodeIDs, err := reconstructPath(prev, fromID, toID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]netmodel.Node, len(net.Nodes()))
	for _, n := range net.Nodes() {
		byID[n.ID()] = n
	}

	fibers := make([]netmodel.Fiber, 0, len(nodeIDs)-1)
	for i := 0; i+1 < len(nodeIDs); i++ {
		a, b := byID[nodeIDs[i]], byID[nodeIDs[i+1]]
		hop := net.NodePairFibers(a, b)
		if len(hop) == 0 {
			return nil, fmt.Errorf("routing: %w: no fiber from %s to %s", ErrNoPath, nodeIDs[i], nodeIDs[i+1])
		}
		fibers = append(fibers, shortestOf(hop))
	}

	return fibers, nil
}

func reconstructPath(prev map[string]string, fromID, toID string) ([]string, error) {
	if fromID == toID {
		return []string{fromID}, nil
	}

	var path []string
	cur := toID
	for {
		path = append(path, cur)
		if cur == fromID {
			break
		}
		parent, ok := prev[cur]
		if !ok || parent == "" {
			return nil, fmt.Errorf("%w: %s to %s", ErrNoPath, fromID, toID)
		}
		cur = parent
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

func shortestOf(candidates []netmodel.Fiber) netmodel.Fiber {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.LengthKm() < best.LengthKm() {
			best = c
		}
	}

	return best
}
