package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/measure/pkg/jsonpath"
)

var queryCmd = &cobra.Command{
	Use:   "query <report.json> <path>",
	Short: "Extract a value from a JSON report",
	Long: `Extract a single value from a JSON report produced by 'measure run'.

Examples:
  measure query report.json count
  measure query report.json '$.percentiles.p99'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read report: %w", err)
		}

		value, err := jsonpath.Extract(string(data), args[1])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}
