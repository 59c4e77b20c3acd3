// Package topogen synthesizes toy networks for load-testing and examples.
// It reuses the teacher's builder package — previously exercised only through
// RandomSparse — to sample a chosen topology Shape (ring, mesh, star, wheel,
// grid, bipartite pairing, random-regular, Platonic shell, or a hexagram
// protection overlay), then dresses each generated vertex/edge pair as a WSS
// node and a bidirectional fiber pair with a uniform slot grid: the same
// toy-network shape netmodel/toy builds by hand, just generated instead of
// hand-wired.
package topogen

import (
	"fmt"

	"github.com/wdmcore/osmcore/builder"
	"github.com/wdmcore/osmcore/core"

	"github.com/wdmcore/osmcore/netmodel/toy"
)

// Shape selects which builder constructor samples the underlying topology.
type Shape string

const (
	// ShapeRandom samples an Erdős–Rényi-like sparse graph (builder.RandomSparse).
	// Params.N is the node count, Params.P the edge probability.
	ShapeRandom Shape = "random"
	// ShapeRing arranges N nodes in a single fiber ring (builder.Cycle) — the
	// classic protected metro topology.
	ShapeRing Shape = "ring"
	// ShapePath arranges N nodes in a linear chain (builder.Path).
	ShapePath Shape = "path"
	// ShapeMesh fully meshes N nodes (builder.Complete) — worst-case fan-in
	// for exercising RSA contention at a node.
	ShapeMesh Shape = "mesh"
	// ShapeStar arranges N-1 leaf nodes around a single hub (builder.Star) —
	// models a hub-and-spoke access network.
	ShapeStar Shape = "star"
	// ShapeWheel is a ring plus a hub spoked to every ring node (builder.Wheel).
	ShapeWheel Shape = "wheel"
	// ShapeGrid lays out an N x M orthogonal mesh (builder.Grid) — a metro
	// grid with both a Params.N (rows) and Params.M (cols).
	ShapeGrid Shape = "grid"
	// ShapeBipartite splits Params.N "add" nodes from Params.M "drop" nodes,
	// fully cross-connected (builder.CompleteBipartite) — models a ROADM's
	// add/drop fan-in separately from its express ring.
	ShapeBipartite Shape = "bipartite"
	// ShapeRegular samples a random Params.M-regular graph over Params.N
	// nodes (builder.RandomRegular) — a symmetric-degree topology for
	// comparing RSA fairness across equally-connected nodes.
	ShapeRegular Shape = "regular"
	// ShapePlatonic builds one of the five Platonic solids with a center hub
	// (builder.PlatonicSolid) — small, maximally symmetric fixtures for
	// exercising propagation's cycle/lasing-loop analysis by hand.
	ShapePlatonic Shape = "platonic"
	// ShapeProtectionRing overlays chord fibers across a base ring or wheel
	// (builder.Hexagram) — models a protection-chord topology where a
	// fiber cut still leaves an alternate physical path.
	ShapeProtectionRing Shape = "protection-ring"
)

// Params bundles every shape-specific sizing knob. Only the fields relevant
// to the chosen Shape are read; see each Shape's doc comment.
type Params struct {
	N int     // primary node count, or bipartite/grid first dimension
	M int     // grid column count, bipartite second partition, or regular degree
	P float64 // ShapeRandom edge probability, ignored otherwise

	Solid   builder.PlatonicName   // ShapePlatonic only
	Variant builder.HexagramVariant // ShapeProtectionRing only
}

// Topology samples a core.Graph of the requested Shape. seed makes stochastic
// shapes (ShapeRandom, ShapeRegular) reproducible; deterministic shapes ignore
// it.
func Topology(shape Shape, params Params, seed int64) (*core.Graph, error) {
	cons, err := constructorFor(shape, params)
	if err != nil {
		return nil, err
	}

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(seed)},
		cons,
	)
	if err != nil {
		return nil, fmt.Errorf("topogen: sampling %s topology: %w", shape, err)
	}

	return g, nil
}

func constructorFor(shape Shape, params Params) (builder.Constructor, error) {
	switch shape {
	case ShapeRandom:
		return builder.RandomSparse(params.N, params.P), nil
	case ShapeRing:
		return builder.Cycle(params.N), nil
	case ShapePath:
		return builder.Path(params.N), nil
	case ShapeMesh:
		return builder.Complete(params.N), nil
	case ShapeStar:
		return builder.Star(params.N), nil
	case ShapeWheel:
		return builder.Wheel(params.N), nil
	case ShapeGrid:
		return builder.Grid(params.N, params.M), nil
	case ShapeBipartite:
		return builder.CompleteBipartite(params.N, params.M), nil
	case ShapeRegular:
		return builder.RandomRegular(params.N, params.M), nil
	case ShapePlatonic:
		return builder.PlatonicSolid(params.Solid, true), nil
	case ShapeProtectionRing:
		return builder.Hexagram(params.Variant), nil
	default:
		return nil, fmt.Errorf("topogen: unknown shape %q", shape)
	}
}

// RandomNetwork samples an Erdős–Rényi-like topology over n nodes with edge
// probability p, then renders it as a toy.Network whose fibers each carry
// slotCount contiguous slots and lengthKm length. seed makes the sample
// reproducible. It is a convenience wrapper over Network(ShapeRandom, ...).
func RandomNetwork(id string, n int, p float64, slotCount int, lengthKm float64, seed int64) (*toy.Network, error) {
	return Network(id, ShapeRandom, Params{N: n, P: p}, slotCount, lengthKm, seed)
}

// Network samples shape per params and renders it as a toy.Network: every
// sampled vertex becomes a WSS node, and every sampled edge becomes a
// bidirectional fiber pair carrying slotCount contiguous slots over
// lengthKm of fiber.
func Network(id string, shape Shape, params Params, slotCount int, lengthKm float64, seed int64) (*toy.Network, error) {
	g, err := Topology(shape, params, seed)
	if err != nil {
		return nil, err
	}

	return render(id, g, slotCount, lengthKm), nil
}

func render(id string, g *core.Graph, slotCount int, lengthKm float64) *toy.Network {
	slots := make([]int, slotCount)
	for i := range slots {
		slots[i] = i
	}

	net := toy.NewNetwork(id)
	nodes := make(map[string]*toy.Node, len(g.Vertices()))
	for _, vID := range g.Vertices() {
		nodes[vID] = net.AddNode(vID, toy.NewWSSArch())
	}

	for _, e := range g.Edges() {
		abID := fmt.Sprintf("%s->%s", e.From, e.To)
		baID := fmt.Sprintf("%s->%s", e.To, e.From)
		net.AddFiberPair(abID, baID, nodes[e.From], nodes[e.To], slots, lengthKm)
	}

	return net
}
