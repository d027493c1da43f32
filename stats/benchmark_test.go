package stats

import (
	"testing"
)

// BenchmarkHistogram_Update measures single-goroutine recording through the
// full fan-out (count, reservoir, extrema, sum, variance).
func BenchmarkHistogram_Update(b *testing.B) {
	h := NewHistogramWithType(SampleHDR)

	values := []int64{1, 50, 100, 500, 1000}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		h.Update(values[i%len(values)])
	}
}

// BenchmarkHistogram_Update_Parallel is the primary use case: many
// goroutines recording into one shared instance.
func BenchmarkHistogram_Update_Parallel(b *testing.B) {
	h := NewHistogramWithType(SampleHDR)

	values := []int64{1, 50, 100, 500, 1000}

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			h.Update(values[i%len(values)])
			i++
		}
	})
}

// BenchmarkHistogram_UpdateCore isolates the CAS loops from reservoir cost.
func BenchmarkHistogram_UpdateCore(b *testing.B) {
	h := NewHistogram(nopSample{})

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		h.Update(int64(i % 1000))
	}
}

func BenchmarkHistogram_Accessors(b *testing.B) {
	h := NewHistogram(nopSample{})
	for i := int64(0); i < 10_000; i++ {
		h.Update(i)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = h.Mean()
		_ = h.StdDev()
		_ = h.Min()
		_ = h.Max()
	}
}

func BenchmarkHistogram_Snapshot(b *testing.B) {
	h := NewHistogramWithType(SampleHDR)
	for i := int64(1); i <= 10_000; i++ {
		h.Update(i)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = h.Snapshot()
	}
}
