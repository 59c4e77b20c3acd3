package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wdmcore/osmcore/routing"
)

var routeCmd = &cobra.Command{
	Use:   "route <from-node-id> <to-node-id>",
	Short: "Propose the shortest fiber path between two nodes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		topoPath := viper.GetString("topology")
		if topoPath == "" {
			topoPath = "topology.yaml"
		}

		net, err := loadTopology(topoPath)
		if err != nil {
			return err
		}

		path, err := routing.ShortestPath(net, args[0], args[1])
		if err != nil {
			return fmt.Errorf("osmctl: %w", err)
		}

		if len(path) == 0 {
			fmt.Println("source and destination are the same node")

			return nil
		}

		total := 0.0
		for _, f := range path {
			fmt.Printf("  %s (%.1f km)\n", f.ID(), f.LengthKm())
			total += f.LengthKm()
		}
		fmt.Printf("total: %.1f km over %d hops\n", total, len(path))

		return nil
	},
}
