package cli

import "github.com/spf13/cobra"

// NewRootCmd creates the root cobra command for the powersched CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "powersched",
		Short:        "powersched — power-aware non-preemptive CPU scheduling simulator",
		Long:         "powersched computes a non-preemptive schedule, its Gantt chart, and per-process timing and energy metrics for a fixed process set.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(),
		newServeCmd(),
	)
	return root
}
