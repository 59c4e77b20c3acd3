package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wdmcore/osmcore/builder"
	"github.com/wdmcore/osmcore/topogen"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a toy topology and print its node/fiber counts",
	Long: "Generate a toy topology of the requested --shape (random, ring, path, mesh,\n" +
		"star, wheel, grid, bipartite, regular, platonic, protection-ring) and print\n" +
		"its node and fiber counts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("nodes")
		m, _ := cmd.Flags().GetInt("cols")
		prob, _ := cmd.Flags().GetFloat64("prob")
		slots, _ := cmd.Flags().GetInt("slots")
		seed, _ := cmd.Flags().GetInt64("seed")
		shapeFlag, _ := cmd.Flags().GetString("shape")
		solidFlag, _ := cmd.Flags().GetString("solid")

		shape := topogen.Shape(shapeFlag)
		params := topogen.Params{N: n, M: m, P: prob}
		if shape == topogen.ShapePlatonic {
			solid, err := platonicSolidByName(solidFlag)
			if err != nil {
				return fmt.Errorf("osmctl: %w", err)
			}
			params.Solid = solid
		}

		net, err := topogen.Network("generated", shape, params, slots, 80, seed)
		if err != nil {
			return fmt.Errorf("osmctl: %w", err)
		}

		fmt.Printf("generated network %q (%s): %d nodes, %d fibers\n", net.ID(), shape, len(net.Nodes()), len(net.Fibers()))

		return nil
	},
}

func platonicSolidByName(name string) (builder.PlatonicName, error) {
	switch name {
	case "tetrahedron":
		return builder.Tetrahedron, nil
	case "cube":
		return builder.Cube, nil
	case "octahedron":
		return builder.Octahedron, nil
	case "dodecahedron":
		return builder.Dodecahedron, nil
	case "icosahedron":
		return builder.Icosahedron, nil
	default:
		return 0, fmt.Errorf("gen: unknown --solid %q", name)
	}
}

func init() {
	genCmd.Flags().String("shape", "random", "topology shape: random, ring, path, mesh, star, wheel, grid, bipartite, regular, platonic, protection-ring")
	genCmd.Flags().Int("nodes", 8, "primary node count (or bipartite/grid first dimension)")
	genCmd.Flags().Int("cols", 0, "grid column count, bipartite second partition, or regular degree")
	genCmd.Flags().Float64("prob", 0.3, "edge inclusion probability (shape=random only)")
	genCmd.Flags().String("solid", "tetrahedron", "Platonic solid name (shape=platonic only)")
	genCmd.Flags().Int("slots", 80, "slot count per fiber")
	genCmd.Flags().Int64("seed", 1, "random seed")
}
