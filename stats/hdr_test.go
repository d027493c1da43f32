package stats

import (
	"testing"
)

func TestHDRSample_Percentiles(t *testing.T) {
	s := NewHDRSample(DefaultHDRConfig())

	for v := int64(1); v <= 1000; v++ {
		s.Update(v)
	}

	snap := s.Snapshot()

	if snap.Size() != 1000 {
		t.Errorf("Size() = %d, want 1000", snap.Size())
	}

	// Three significant figures leave ~0.1% binning error; allow 1%.
	checks := map[float64]float64{
		50: 500,
		90: 900,
		99: 990,
	}
	for q, want := range checks {
		got := snap.Percentile(q)
		if got < want*0.99 || got > want*1.01 {
			t.Errorf("Percentile(%v) = %v, want ~%v (±1%%)", q, got, want)
		}
	}

	ps := snap.Percentiles([]float64{50, 90, 99})
	if len(ps) != 3 {
		t.Fatalf("Percentiles() returned %d values, want 3", len(ps))
	}
	if ps[0] > ps[1] || ps[1] > ps[2] {
		t.Errorf("Percentiles() = %v, want non-decreasing", ps)
	}
}

func TestHDRSample_ClampsToRecordableRange(t *testing.T) {
	cfg := HDRConfig{MinValue: 1, MaxValue: 1000, SigFigs: 3}
	s := NewHDRSample(cfg)

	s.Update(-50)   // below floor, clamps to 1
	s.Update(99999) // above ceiling, clamps to 1000

	snap := s.Snapshot()
	if snap.Size() != 2 {
		t.Errorf("Size() = %d, want 2 (out-of-range values clamp, not drop)", snap.Size())
	}
	if min := snap.Percentile(1); min != 1 {
		t.Errorf("Percentile(1) = %v, want 1", min)
	}
	if max := snap.Percentile(100); max < 999 || max > 1001 {
		t.Errorf("Percentile(100) = %v, want ~1000", max)
	}
}

func TestHDRSample_Clear(t *testing.T) {
	s := NewHDRSample(DefaultHDRConfig())
	for v := int64(1); v <= 100; v++ {
		s.Update(v)
	}
	s.Clear()

	if size := s.Snapshot().Size(); size != 0 {
		t.Errorf("Size() after Clear = %d, want 0", size)
	}
}

func TestHDRSample_SnapshotIsDetached(t *testing.T) {
	s := NewHDRSample(DefaultHDRConfig())
	s.Update(10)

	snap := s.Snapshot()
	s.Update(20)
	s.Update(30)

	if snap.Size() != 1 {
		t.Errorf("Size() of earlier snapshot = %d, want 1 (snapshots must be immutable)", snap.Size())
	}
}

func TestSampleType_NewSample(t *testing.T) {
	for _, st := range []SampleType{SampleHDR, SampleHDRHighRes} {
		s := st.NewSample()
		if s == nil {
			t.Fatalf("SampleType(%d).NewSample() returned nil", st)
		}
		s.Update(7)
		if size := s.Snapshot().Size(); size != 1 {
			t.Errorf("SampleType(%d): Size() = %d, want 1", st, size)
		}
	}
}
