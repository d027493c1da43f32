package cli

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/measure/internal/config"
	"github.com/wesleyorama2/measure/internal/output"
	"github.com/wesleyorama2/measure/internal/workload"
	"github.com/wesleyorama2/measure/stats"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a synthetic workload and report its statistics",
	Long: `Run a synthetic workload through a shared statistics accumulator.

Config file mode:
  measure run --config run.yaml

Quick CLI mode:
  measure run --workers 8 --iterations 100000 \
    --distribution normal --mean 500 --stddev 150 --seed 42

JSON report:
  measure run --config run.yaml --json --output report.json`,
	RunE: runWorkload,
}

func init() {
	runCmd.Flags().StringP("config", "c", "", "Path to a run configuration file (YAML or JSON)")
	runCmd.Flags().Int("workers", 4, "Number of concurrent recording goroutines")
	runCmd.Flags().Int("iterations", 10000, "Values recorded per worker")
	runCmd.Flags().String("distribution", "normal", "Value distribution: uniform, normal, exponential")
	runCmd.Flags().Float64("mean", 500, "Distribution mean")
	runCmd.Flags().Float64("stddev", 150, "Distribution standard deviation (normal)")
	runCmd.Flags().Int64("min", 0, "Smallest generated value")
	runCmd.Flags().Int64("max", 10000, "Largest generated value")
	runCmd.Flags().Int64("seed", 0, "Seed for reproducible runs")
	runCmd.Flags().String("reservoir", config.ReservoirHDR, "Reservoir strategy: hdr, hdr-highres")
	runCmd.Flags().Bool("json", false, "Print the report as JSON instead of text")
	runCmd.Flags().StringP("output", "o", "", "Write the JSON report to a file")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
	runCmd.Flags().Bool("quiet", false, "Suppress terminal output")
}

func runWorkload(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")

	var runCfg *config.RunConfig
	var err error
	if configFile != "" {
		runCfg, err = config.LoadConfig(configFile)
	} else {
		runCfg, err = buildConfigFromFlags(cmd)
	}
	if err != nil {
		return err
	}

	report, err := executeRun(runCfg)
	if err != nil {
		return err
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	outputPath, _ := cmd.Flags().GetString("output")
	noColor, _ := cmd.Flags().GetBool("no-color")
	quiet, _ := cmd.Flags().GetBool("quiet")

	formatter := output.NewFormatter(noColor)

	if outputPath != "" {
		doc, err := formatter.FormatJSON(report)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outputPath, []byte(doc+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if quiet {
		return nil
	}

	if jsonOut {
		doc, err := formatter.FormatJSON(report)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), doc)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(report))
	return nil
}

// buildConfigFromFlags assembles a RunConfig in quick CLI mode, applying
// the same defaults and validation as the file path.
func buildConfigFromFlags(cmd *cobra.Command) (*config.RunConfig, error) {
	workers, _ := cmd.Flags().GetInt("workers")
	iterations, _ := cmd.Flags().GetInt("iterations")
	distribution, _ := cmd.Flags().GetString("distribution")
	mean, _ := cmd.Flags().GetFloat64("mean")
	stddev, _ := cmd.Flags().GetFloat64("stddev")
	minValue, _ := cmd.Flags().GetInt64("min")
	maxValue, _ := cmd.Flags().GetInt64("max")
	seed, _ := cmd.Flags().GetInt64("seed")
	reservoir, _ := cmd.Flags().GetString("reservoir")

	cfg := &config.RunConfig{
		Workload: config.WorkloadConfig{
			Workers:      workers,
			Iterations:   iterations,
			Distribution: distribution,
			Mean:         mean,
			StdDev:       stddev,
			Min:          minValue,
			Max:          maxValue,
			Seed:         seed,
		},
		Reservoir: config.ReservoirConfig{Type: reservoir},
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// executeRun drives the configured workload through one shared histogram,
// one goroutine per worker, and builds the report from its accessors.
func executeRun(cfg *config.RunConfig) (*output.Report, error) {
	sampleType := stats.SampleHDR
	if cfg.Reservoir.Type == config.ReservoirHDRHighRes {
		sampleType = stats.SampleHDRHighRes
	}
	h := stats.NewHistogramWithType(sampleType)

	wlCfg := cfg.ToWorkload()
	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workload.Workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			gen := workload.NewGenerator(wlCfg, worker)
			for i := 0; i < cfg.Workload.Iterations; i++ {
				h.Update(gen.Next())
			}
		}(w)
	}
	wg.Wait()

	report := output.BuildReport(cfg.Name, h, cfg.Report.Percentiles)
	report.Workers = cfg.Workload.Workers
	report.Iterations = cfg.Workload.Iterations
	report.Elapsed = time.Since(start)
	return report, nil
}
