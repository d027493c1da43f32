package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "measure",
	Short:   "Concurrent statistics over synthetic workloads",
	Version: version,
	Long: `Measure drives synthetic value streams through a lock-free statistics
accumulator and reports count, sum, mean, extrema, standard deviation,
and reservoir-estimated percentiles.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute runs the root command. Colors are disabled automatically when
// stdout is not a terminal.
func Execute() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(queryCmd)
}
