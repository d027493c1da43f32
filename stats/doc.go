// Package stats provides a concurrent, lock-free statistics accumulator
// for in-process instrumentation.
//
// A Histogram summarizes a stream of int64 observations (request latencies,
// payload sizes) recorded from any number of goroutines with no external
// synchronization. It maintains a running count, sum, mean, min, max, and a
// numerically stable variance via Welford's online algorithm, all updated
// through compare-and-swap retry loops rather than locks.
//
// # Basic Usage
//
//	h := stats.NewHistogramWithType(stats.SampleHDR)
//
//	h.Update(42)
//	h.Update(97)
//
//	fmt.Printf("count=%d mean=%.2f stddev=%.2f\n",
//	    h.Count(), h.Mean(), h.StdDev())
//
//	snap := h.Snapshot()
//	fmt.Printf("p99=%.0f\n", snap.Percentile(99))
//
// # Concurrency
//
// All Histogram methods are safe for concurrent use. Updates are lock-free:
// a goroutine may retry its CAS loop under contention, but no goroutine can
// block another and the process as a whole always makes progress. Reads are
// lock-free snapshots of the current atomic state.
//
// Quantile estimation is delegated to a pluggable Sample reservoir; the
// shipped reservoirs are backed by HDR histograms and guard their own
// internal state.
package stats
