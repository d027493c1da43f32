package stats

// Sample is a reservoir of recorded values used for quantile estimation.
//
// Implementations retain a bounded, representative view of the stream and
// must be safe for concurrent use. The Histogram forwards every recorded
// value to its Sample unchanged and never inspects reservoir internals, so
// a strategy can be swapped without touching the engine.
type Sample interface {
	// Clear discards all retained values.
	Clear()

	// Update offers a recorded value to the reservoir.
	Update(value int64)

	// Snapshot returns an immutable point-in-time quantile view.
	Snapshot() Snapshot
}

// Snapshot is a read-only view of a reservoir at a point in time.
type Snapshot interface {
	// Size returns the number of values the view was computed from.
	Size() int

	// Percentile returns the value at quantile q, where q is a percentage
	// in (0, 100].
	Percentile(q float64) float64

	// Percentiles returns the value at each quantile in qs.
	Percentiles(qs []float64) []float64
}

// SampleType selects one of the reservoir strategies shipped with this
// package. Arbitrary strategies can be plugged in directly through
// NewHistogram.
type SampleType int

const (
	// SampleHDR retains values in an HDR histogram with three significant
	// figures of quantile precision.
	SampleHDR SampleType = iota

	// SampleHDRHighRes uses five significant figures for tighter quantile
	// error at the cost of more memory.
	SampleHDRHighRes
)

// NewSample constructs a reservoir of this type.
func (t SampleType) NewSample() Sample {
	cfg := DefaultHDRConfig()
	if t == SampleHDRHighRes {
		cfg.SigFigs = 5
	}
	return NewHDRSample(cfg)
}
