// Package workload generates deterministic synthetic value streams for
// driving statistics collection.
package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// Distribution names a supported value distribution.
type Distribution string

const (
	DistUniform     Distribution = "uniform"
	DistNormal      Distribution = "normal"
	DistExponential Distribution = "exponential"
)

// Distributions lists the supported distribution names.
func Distributions() []Distribution {
	return []Distribution{DistUniform, DistNormal, DistExponential}
}

// Config describes a synthetic value stream.
type Config struct {
	// Distribution selects the value distribution.
	Distribution Distribution

	// Mean is the distribution mean (normal, exponential).
	Mean float64

	// StdDev is the distribution standard deviation (normal).
	StdDev float64

	// Min and Max bound the generated values. For uniform they define the
	// range; for the others they clamp the tails.
	Min int64
	Max int64

	// Seed makes runs reproducible. Workers derive their own sources from
	// it, so the stream is deterministic per worker regardless of
	// scheduling.
	Seed int64
}

// Validate reports the first problem with the config, if any.
func (c Config) Validate() error {
	switch c.Distribution {
	case DistUniform, DistNormal, DistExponential:
	default:
		return fmt.Errorf("unknown distribution %q", c.Distribution)
	}
	if c.Max < c.Min {
		return fmt.Errorf("max (%d) must not be less than min (%d)", c.Max, c.Min)
	}
	if c.Distribution == DistNormal && c.StdDev < 0 {
		return fmt.Errorf("stddev must not be negative, got %v", c.StdDev)
	}
	if c.Distribution == DistExponential && c.Mean <= 0 {
		return fmt.Errorf("exponential distribution needs a positive mean, got %v", c.Mean)
	}
	return nil
}

// Generator produces values for a single worker. It is not safe for
// concurrent use; create one per goroutine with NewGenerator.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// NewGenerator creates the generator for the given worker index. Each
// worker gets an independent deterministic source.
func NewGenerator(cfg Config, worker int) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed + int64(worker)*0x9E3779B9)),
	}
}

// Next returns the next value of the stream.
func (g *Generator) Next() int64 {
	var v float64
	switch g.cfg.Distribution {
	case DistNormal:
		v = g.rng.NormFloat64()*g.cfg.StdDev + g.cfg.Mean
	case DistExponential:
		v = g.rng.ExpFloat64() * g.cfg.Mean
	default: // uniform
		span := g.cfg.Max - g.cfg.Min
		if span <= 0 {
			return g.cfg.Min
		}
		return g.cfg.Min + g.rng.Int63n(span+1)
	}

	value := int64(math.Round(v))
	if value < g.cfg.Min {
		value = g.cfg.Min
	}
	if value > g.cfg.Max {
		value = g.cfg.Max
	}
	return value
}
