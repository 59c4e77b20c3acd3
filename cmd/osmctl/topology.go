package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"

	"github.com/wdmcore/osmcore/netmodel"
	"github.com/wdmcore/osmcore/netmodel/toy"
)

type topologyFile struct {
	NetworkID string           `yaml:"network_id"`
	Nodes     []nodeSpec       `yaml:"nodes"`
	Fibers    []fiberSpec      `yaml:"fibers"`
	Lightpaths []lightpathSpec `yaml:"lightpaths"`
}

type nodeSpec struct {
	ID   string `yaml:"id"`
	Arch string `yaml:"arch"` // "wss" or "broadcast"
}

type fiberSpec struct {
	ID        string `yaml:"id"`
	From      string `yaml:"from"`
	To        string `yaml:"to"`
	MinSlot   int    `yaml:"min_slot"`
	MaxSlot   int    `yaml:"max_slot"`
	LengthKm  float64 `yaml:"length_km"`
	Bidirectional string `yaml:"bidirectional_pair"`
}

type lightpathSpec struct {
	ID     string   `yaml:"id"`
	Fibers []string `yaml:"fibers"`
	Slots  []int    `yaml:"slots"`
}

// loadTopology reads a YAML topology description and assembles it into a
// toy.Network, wiring each node's switching architecture and every fiber's
// bidirectional pairing from the config.
func loadTopology(path string) (*toy.Network, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("osmctl: reading topology %q: %w", path, err)
	}

	var doc topologyFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("osmctl: parsing topology %q: %w", path, err)
	}

	if doc.NetworkID == "" {
		doc.NetworkID = uuid.NewString()
	}

	net := toy.NewNetwork(doc.NetworkID)

	nodes := make(map[string]*toy.Node, len(doc.Nodes))
	for _, n := range doc.Nodes {
		var arch netmodel.Arch
		switch n.Arch {
		case "broadcast":
			arch = toy.NewBroadcastArch()
		default:
			arch = toy.NewWSSArch()
		}
		nodes[n.ID] = net.AddNode(n.ID, arch)
	}

	fibers := make(map[string]*toy.Fiber, len(doc.Fibers))
	for _, f := range doc.Fibers {
		from, ok := nodes[f.From]
		if !ok {
			return nil, fmt.Errorf("osmctl: fiber %q references unknown node %q", f.ID, f.From)
		}
		to, ok := nodes[f.To]
		if !ok {
			return nil, fmt.Errorf("osmctl: fiber %q references unknown node %q", f.ID, f.To)
		}

		validSlots := make([]int, 0, f.MaxSlot-f.MinSlot+1)
		for s := f.MinSlot; s <= f.MaxSlot; s++ {
			validSlots = append(validSlots, s)
		}

		fibers[f.ID] = net.AddUnidirectionalFiber(f.ID, from, to, validSlots, f.LengthKm)
	}

	for _, f := range doc.Fibers {
		if f.Bidirectional == "" {
			continue
		}
		ab, ok1 := fibers[f.ID]
		ba, ok2 := fibers[f.Bidirectional]
		if !ok1 || !ok2 {
			continue
		}
		toy.LinkBidirectional(ab, ba)
	}

	// Wire each broadcast-architecture node's degree from every fiber it
	// touches, now that all fibers exist.
	for _, n := range doc.Nodes {
		arch, ok := nodes[n.ID].OpticalSwitchingArchitecture().(*toy.BroadcastArch)
		if !ok {
			continue
		}
		var degree []netmodel.Fiber
		for _, f := range doc.Fibers {
			if f.From == n.ID || f.To == n.ID {
				degree = append(degree, fibers[f.ID])
			}
		}
		arch.SetDegree(degree)
	}

	for _, lp := range doc.Lightpaths {
		seq := make([]netmodel.Fiber, 0, len(lp.Fibers))
		for _, id := range lp.Fibers {
			f, ok := fibers[id]
			if !ok {
				return nil, fmt.Errorf("osmctl: lightpath %q references unknown fiber %q", lp.ID, id)
			}
			seq = append(seq, f)
		}
		net.AddLightpath(lp.ID, seq, lp.Slots, nil, nil)
	}

	return net, nil
}
