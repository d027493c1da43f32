package config

import (
	"fmt"

	"github.com/wesleyorama2/measure/internal/workload"
)

// RunConfig is the root configuration for a measurement run.
//
// Example YAML:
//
//	name: "payload sizes"
//	workload:
//	  workers: 8
//	  iterations: 100000
//	  distribution: normal
//	  mean: 500
//	  stddev: 150
//	  min: 0
//	  max: 10000
//	  seed: 42
//	reservoir:
//	  type: hdr
//	report:
//	  percentiles: [50, 90, 95, 99]
type RunConfig struct {
	// Name of the run (for reporting)
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Workload describes the synthetic value stream
	Workload WorkloadConfig `json:"workload" yaml:"workload"`

	// Reservoir selects the quantile reservoir strategy
	Reservoir ReservoirConfig `json:"reservoir,omitempty" yaml:"reservoir,omitempty"`

	// Report controls what the run reports
	Report ReportConfig `json:"report,omitempty" yaml:"report,omitempty"`
}

// WorkloadConfig describes the synthetic workload to drive.
type WorkloadConfig struct {
	// Workers is the number of concurrent recording goroutines
	Workers int `json:"workers" yaml:"workers"`

	// Iterations is the number of values each worker records
	Iterations int `json:"iterations" yaml:"iterations"`

	// Distribution is one of "uniform", "normal", "exponential"
	Distribution string `json:"distribution,omitempty" yaml:"distribution,omitempty"`

	// Mean of the distribution (normal, exponential)
	Mean float64 `json:"mean,omitempty" yaml:"mean,omitempty"`

	// StdDev of the distribution (normal)
	StdDev float64 `json:"stddev,omitempty" yaml:"stddev,omitempty"`

	// Min and Max bound generated values
	Min int64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max int64 `json:"max,omitempty" yaml:"max,omitempty"`

	// Seed makes the run reproducible
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// ReservoirConfig selects the reservoir strategy.
type ReservoirConfig struct {
	// Type is one of "hdr", "hdr-highres"
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// ReportConfig controls report contents.
type ReportConfig struct {
	// Percentiles to include, each in (0, 100]
	Percentiles []float64 `json:"percentiles,omitempty" yaml:"percentiles,omitempty"`
}

// Reservoir type names accepted in configuration.
const (
	ReservoirHDR        = "hdr"
	ReservoirHDRHighRes = "hdr-highres"
)

// ApplyDefaults fills unset fields with usable defaults.
func (c *RunConfig) ApplyDefaults() {
	if c.Workload.Distribution == "" {
		c.Workload.Distribution = string(workload.DistNormal)
	}
	if c.Workload.Mean == 0 {
		c.Workload.Mean = 500
	}
	if c.Workload.StdDev == 0 {
		c.Workload.StdDev = 150
	}
	if c.Workload.Max == 0 {
		c.Workload.Max = 10_000
	}
	if c.Reservoir.Type == "" {
		c.Reservoir.Type = ReservoirHDR
	}
	if len(c.Report.Percentiles) == 0 {
		c.Report.Percentiles = []float64{50, 90, 95, 99}
	}
}

// Validate checks semantic constraints the JSON Schema cannot express.
func (c *RunConfig) Validate() error {
	if c.Workload.Workers < 1 {
		return fmt.Errorf("workload.workers must be at least 1, got %d", c.Workload.Workers)
	}
	if c.Workload.Iterations < 1 {
		return fmt.Errorf("workload.iterations must be at least 1, got %d", c.Workload.Iterations)
	}
	if err := c.ToWorkload().Validate(); err != nil {
		return fmt.Errorf("workload: %w", err)
	}

	switch c.Reservoir.Type {
	case ReservoirHDR, ReservoirHDRHighRes:
	default:
		return fmt.Errorf("unknown reservoir type %q", c.Reservoir.Type)
	}

	for _, p := range c.Report.Percentiles {
		if p <= 0 || p > 100 {
			return fmt.Errorf("report percentile %v out of range (0, 100]", p)
		}
	}
	return nil
}

// ToWorkload converts the workload section into a generator config.
func (c *RunConfig) ToWorkload() workload.Config {
	return workload.Config{
		Distribution: workload.Distribution(c.Workload.Distribution),
		Mean:         c.Workload.Mean,
		StdDev:       c.Workload.StdDev,
		Min:          c.Workload.Min,
		Max:          c.Workload.Max,
		Seed:         c.Workload.Seed,
	}
}
