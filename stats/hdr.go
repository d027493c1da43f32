package stats

import (
	"sync"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// HDRConfig configures the recordable range of an HDRSample.
type HDRConfig struct {
	// MinValue is the lowest recordable value (default: 1).
	MinValue int64

	// MaxValue is the highest recordable value (default: 3600000000).
	MaxValue int64

	// SigFigs is the number of significant figures retained per value
	// (default: 3).
	SigFigs int
}

// DefaultHDRConfig returns the default reservoir configuration.
func DefaultHDRConfig() HDRConfig {
	return HDRConfig{
		MinValue: 1,
		MaxValue: 3600000000,
		SigFigs:  3,
	}
}

// HDRSample is a Sample backed by an HDR histogram, giving O(1) quantile
// queries over the full stream rather than a sampled subset.
//
// Values outside the configured recordable range are clamped to it.
// NOTE: HDR histogram mutation is not goroutine-safe, so all access goes
// through a mutex.
type HDRSample struct {
	mu   sync.Mutex
	hist *hdrhistogram.Histogram
	cfg  HDRConfig
}

// NewHDRSample creates an HDR-histogram-backed reservoir.
func NewHDRSample(cfg HDRConfig) *HDRSample {
	return &HDRSample{
		hist: hdrhistogram.New(cfg.MinValue, cfg.MaxValue, cfg.SigFigs),
		cfg:  cfg,
	}
}

// Clear discards all retained values.
func (s *HDRSample) Clear() {
	s.mu.Lock()
	s.hist.Reset()
	s.mu.Unlock()
}

// Update records a value, clamped to the recordable range.
func (s *HDRSample) Update(value int64) {
	if value < s.cfg.MinValue {
		value = s.cfg.MinValue
	}
	if value > s.cfg.MaxValue {
		value = s.cfg.MaxValue
	}

	s.mu.Lock()
	s.hist.RecordValue(value)
	s.mu.Unlock()
}

// Snapshot returns an immutable quantile view over a copy of the histogram.
func (s *HDRSample) Snapshot() Snapshot {
	s.mu.Lock()
	exported := s.hist.Export()
	s.mu.Unlock()

	return &hdrSnapshot{hist: hdrhistogram.Import(exported)}
}

// hdrSnapshot is a read-only view over a detached histogram copy.
type hdrSnapshot struct {
	hist *hdrhistogram.Histogram
}

func (s *hdrSnapshot) Size() int {
	return int(s.hist.TotalCount())
}

func (s *hdrSnapshot) Percentile(q float64) float64 {
	return float64(s.hist.ValueAtQuantile(q))
}

func (s *hdrSnapshot) Percentiles(qs []float64) []float64 {
	values := make([]float64, len(qs))
	for i, q := range qs {
		values[i] = s.Percentile(q)
	}
	return values
}
