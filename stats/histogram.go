package stats

import (
	"math"
	"sync/atomic"
)

// uninitializedMean marks the running-mean slot of a welfordPair before the
// first value is recorded.
const uninitializedMean = -1

// welfordPair holds the running mean estimate M and the running sum of
// squared deviations S for Welford's online variance algorithm. A pair is
// immutable once published; updates swap in a freshly allocated pair so M
// and S are never observed out of sync with each other.
type welfordPair struct {
	m, s float64
}

// Histogram accumulates summary statistics over a stream of int64 values.
//
// All methods are safe for concurrent use without external synchronization.
// Each statistic is maintained independently through its own atomic CAS
// loop, so under concurrent updates two accessors may reflect slightly
// different points in the stream, but each individual statistic is exact.
type Histogram struct {
	sample Sample

	count atomic.Int64
	sum   atomic.Int64
	min   atomic.Int64
	max   atomic.Int64

	// Running variance without floating-point doom: Welford's algorithm,
	// with the (M, S) pair published as a single atomic unit.
	variance atomic.Pointer[welfordPair]
}

// NewHistogram creates a Histogram that forwards recorded values to the
// given reservoir.
func NewHistogram(sample Sample) *Histogram {
	h := &Histogram{sample: sample}
	h.Clear()
	return h
}

// NewHistogramWithType creates a Histogram with a reservoir of the given
// type.
func NewHistogramWithType(t SampleType) *Histogram {
	return NewHistogram(t.NewSample())
}

// Clear resets all statistics and the reservoir to their construction-time
// state.
//
// The reset is per-field, not transactional: a reader or writer racing a
// Clear may observe a mix of pre- and post-clear values.
func (h *Histogram) Clear() {
	h.sample.Clear()
	h.count.Store(0)
	h.sum.Store(0)
	h.max.Store(math.MinInt64)
	h.min.Store(math.MaxInt64)
	h.variance.Store(&welfordPair{m: uninitializedMean})
}

// Update records a value.
//
// The value fans out to the count, reservoir, extrema, sum, and variance
// trackers independently; no ordering is enforced between them.
func (h *Histogram) Update(value int64) {
	h.count.Add(1)
	h.sample.Update(value)
	h.setMax(value)
	h.setMin(value)
	h.sum.Add(value)
	h.updateVariance(value)
}

// Count returns the number of values recorded since construction or the
// last Clear.
func (h *Histogram) Count() int64 {
	return h.count.Load()
}

// Max returns the largest recorded value, or 0 when nothing has been
// recorded.
func (h *Histogram) Max() float64 {
	if h.Count() > 0 {
		return float64(h.max.Load())
	}
	return 0.0
}

// Min returns the smallest recorded value, or 0 when nothing has been
// recorded.
func (h *Histogram) Min() float64 {
	if h.Count() > 0 {
		return float64(h.min.Load())
	}
	return 0.0
}

// Mean returns the arithmetic mean of all recorded values, or 0 when
// nothing has been recorded.
func (h *Histogram) Mean() float64 {
	if count := h.Count(); count > 0 {
		return float64(h.sum.Load()) / float64(count)
	}
	return 0.0
}

// StdDev returns the sample standard deviation of all recorded values, or 0
// when nothing has been recorded.
func (h *Histogram) StdDev() float64 {
	if h.Count() > 0 {
		return math.Sqrt(h.Variance())
	}
	return 0.0
}

// Sum returns the running total of all recorded values. Integer overflow is
// not guarded; sums past the int64 range wrap silently.
func (h *Histogram) Sum() float64 {
	return float64(h.sum.Load())
}

// Variance returns the Bessel-corrected sample variance of all recorded
// values, or 0 when fewer than two values have been recorded.
func (h *Histogram) Variance() float64 {
	count := h.Count()
	if count <= 1 {
		return 0.0
	}
	return h.variance.Load().s / float64(count-1)
}

// Snapshot returns the reservoir's current quantile view.
func (h *Histogram) Snapshot() Snapshot {
	return h.sample.Snapshot()
}

// setMax raises the high-water mark to value. Once a maximum is published
// no concurrent update can regress it.
func (h *Histogram) setMax(value int64) {
	for {
		current := h.max.Load()
		if current >= value || h.max.CompareAndSwap(current, value) {
			return
		}
	}
}

// setMin lowers the low-water mark to value.
func (h *Histogram) setMin(value int64) {
	for {
		current := h.min.Load()
		if current <= value || h.min.CompareAndSwap(current, value) {
			return
		}
	}
}

func (h *Histogram) updateVariance(v int64) {
	value := float64(v)
	for {
		oldPair := h.variance.Load()
		newPair := &welfordPair{}
		if oldPair.m == uninitializedMean {
			newPair.m = value
			newPair.s = 0
		} else {
			// The divisor is the shared count, which concurrent updates may
			// have advanced past this update's own increment. A retry then
			// computes one valid interleaving of Welford's recurrence, not
			// a uniquely determined one. Accepted behavior.
			count := float64(h.count.Load())
			newM := oldPair.m + (value-oldPair.m)/count
			newS := oldPair.s + (value-oldPair.m)*(value-newM)
			newPair.m = newM
			newPair.s = newS
		}
		if h.variance.CompareAndSwap(oldPair, newPair) {
			return
		}
	}
}
