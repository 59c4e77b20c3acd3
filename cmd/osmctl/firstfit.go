package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wdmcore/osmcore/assign"
	"github.com/wdmcore/osmcore/netmodel"
	"github.com/wdmcore/osmcore/occupation"
)

var firstFitCmd = &cobra.Command{
	Use:   "firstfit <fiber-id>...",
	Short: "Find the first-fit slot range across the given fiber path",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topoPath := viper.GetString("topology")
		if topoPath == "" {
			topoPath = "topology.yaml"
		}
		width, _ := cmd.Flags().GetInt("width")

		net, err := loadTopology(topoPath)
		if err != nil {
			return err
		}

		byID := make(map[string]netmodel.Fiber, len(net.Fibers()))
		for _, f := range net.Fibers() {
			byID[f.ID()] = f
		}

		path := make([]netmodel.Fiber, 0, len(args))
		for _, id := range args {
			f, ok := byID[id]
			if !ok {
				return fmt.Errorf("osmctl: unknown fiber %q", id)
			}
			path = append(path, f)
		}

		mgr := occupation.NewManager(net.ID())
		if err := mgr.ResetFromLightpaths(net); err != nil {
			return fmt.Errorf("osmctl: rebuilding occupation: %w", err)
		}

		slots, ok := assign.FirstFit(mgr, path, nil, nil, width, nil)
		if !ok {
			fmt.Println("no contiguous range available")
			slog.Debug("first-fit exhausted", "path", args, "width", width)

			return nil
		}

		fmt.Printf("slots: %v\n", slots)

		return nil
	},
}

func init() {
	firstFitCmd.Flags().Int("width", 1, "number of contiguous slots required")
}
