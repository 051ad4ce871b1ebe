package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"powersched/config"
	"powersched/internal/input"
	"powersched/internal/report"
	"powersched/internal/schedulers"
)

func newRunCmd() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Read a process list from stdin and print the schedule",
		Long: "run reads a textual feed from stdin (a count line, then one\n" +
			"\"AT BT PR PH\" row per process), computes the schedule, and prints\n" +
			"the Gantt chart, the timing table, and the total energy to stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := input.Read(cmd.InOrStdin())
			if err != nil {
				return err
			}
			response, err := schedulers.Run(algorithm, request)
			if err != nil {
				return err
			}
			report.Write(cmd.OutOrStdout(), response)
			return nil
		},
	}

	cmd.Flags().StringVar(&algorithm, "algorithm", config.GetSchedulerConfig().DefaultAlgorithm,
		"scheduling algorithm ("+strings.Join(schedulers.Algorithms(), ", ")+")")
	return cmd
}
