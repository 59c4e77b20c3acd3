package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wdmcore/osmcore/occupation"
	"github.com/wdmcore/osmcore/propagation"
	"github.com/wdmcore/osmcore/topocheck"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Rebuild the occupation index from a topology file and print a health report",
	RunE: func(cmd *cobra.Command, args []string) error {
		topoPath := viper.GetString("topology")
		if topoPath == "" {
			topoPath = "topology.yaml"
		}

		net, err := loadTopology(topoPath)
		if err != nil {
			return err
		}
		slog.Debug("topology loaded", "network", net.ID(), "fibers", len(net.Fibers()), "lightpaths", len(net.Lightpaths()))

		mgr := occupation.NewManager(net.ID())
		if err := mgr.ResetFromLightpaths(net); err != nil {
			return fmt.Errorf("osmctl: rebuilding occupation: %w", err)
		}

		fmt.Print(mgr.Report())

		loops := propagation.UnavoidableLasingLoops(net)
		fmt.Printf("  unavoidable lasing loops: %d\n", len(loops))
		for i, cyc := range loops {
			ids := make([]string, len(cyc))
			for j, f := range cyc {
				ids[j] = f.ID()
			}
			fmt.Printf("    loop %d: %v\n", i+1, ids)
		}

		rings, err := topocheck.PhysicalCycles(net)
		if err != nil {
			return fmt.Errorf("osmctl: checking physical topology: %w", err)
		}
		fmt.Printf("  physical fiber-plant cycles: %d\n", len(rings))
		for i, cyc := range rings {
			fmt.Printf("    ring %d: %v\n", i+1, cyc)
		}

		return nil
	},
}

func init() {
	reportCmd.Flags().String("topology", "topology.yaml", "path to the topology YAML file")
	viper.BindPFlag("topology", reportCmd.Flags().Lookup("topology"))
}
