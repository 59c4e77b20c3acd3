// Package topocheck answers physical-layer questions about a network's
// fiber plant — is node A even physically reachable from node B, does the
// fiber plant itself contain a cycle (a ring, a protection loop) — as
// opposed to the propagation package's signal-layer analysis of what a
// given lightpath actually lights up. It is a thin netmodel-to-core.Graph
// adapter: vertices are node IDs, edges are fibers, and the actual
// traversal/cycle-detection work is delegated to core.Graph, bfs and dfs.
package topocheck

import (
	"fmt"

	"github.com/wdmcore/osmcore/bfs"
	"github.com/wdmcore/osmcore/core"
	"github.com/wdmcore/osmcore/dfs"

	"github.com/wdmcore/osmcore/netmodel"
)

// BuildGraph renders net's nodes and fibers into a core.Graph keyed by node
// ID. Parallel fibers between the same node pair (common over bidirectional
// pairs and protection routes) require WithMultiEdges; fiber length in
// kilometers becomes the edge weight so shortest-physical-path queries are
// possible without re-deriving it.
func BuildGraph(net netmodel.Network) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())

	for _, n := range net.Nodes() {
		if err := g.AddVertex(n.ID()); err != nil {
			return nil, fmt.Errorf("topocheck: adding vertex %s: %w", n.ID(), err)
		}
	}
	for _, f := range net.Fibers() {
		if _, err := g.AddEdge(f.A().ID(), f.B().ID(), int64(f.LengthKm())); err != nil {
			return nil, fmt.Errorf("topocheck: adding edge %s: %w", f.ID(), err)
		}
	}

	return g, nil
}

// Reachable reports whether toID is reachable from fromID over the fiber
// plant alone, ignoring slot occupation and switching architecture. It is a
// cheap sanity check to run before attempting RSA on a path that traverses
// fiber that was never actually spliced end to end.
func Reachable(net netmodel.Network, fromID, toID string) (bool, error) {
	g, err := BuildGraph(net)
	if err != nil {
		return false, err
	}

	result, err := bfs.BFS(g, fromID)
	if err != nil {
		return false, fmt.Errorf("topocheck: bfs from %s: %w", fromID, err)
	}
	_, ok := result.Depth[toID]

	return ok, nil
}

// PhysicalCycles reports the cycles dfs.DetectCycles finds in the raw fiber
// plant (node IDs, not fiber identities); a cycle that no DFS back edge
// closes is not listed. A ring topology or a protection loop
// shows up here even when no lightpath currently traverses it; compare
// against propagation.UnavoidableLasingLoops, which only reports cycles a
// filterless node will actually re-broadcast signal around.
func PhysicalCycles(net netmodel.Network) ([][]string, error) {
	g, err := BuildGraph(net)
	if err != nil {
		return nil, err
	}

	_, cycles, err := dfs.DetectCycles(g)
	if err != nil {
		return nil, fmt.Errorf("topocheck: detecting cycles: %w", err)
	}

	return cycles, nil
}
