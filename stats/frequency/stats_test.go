package frequency

import (
	"math"
	"testing"
)

func TestCalculateKnownSpectrum(t *testing.T) {
	// Four one-sided bins imply a 6-point FFT; with sampleRate 6 each bin is
	// exactly i Hz.
	mag := []float64{1, 2, 4, 1}

	st := Calculate(mag, 6)

	if st.BinCount != 4 {
		t.Fatalf("bin count mismatch: got %d want 4", st.BinCount)
	}

	if st.DC != 1 {
		t.Fatalf("DC mismatch: got %v want 1", st.DC)
	}

	if st.Max != 4 || st.MaxBin != 2 {
		t.Fatalf("max mismatch: got %v at bin %d want 4 at bin 2", st.Max, st.MaxBin)
	}

	if math.Abs(st.Average-2) > 1e-12 {
		t.Fatalf("average mismatch: got %v want 2", st.Average)
	}

	if math.Abs(st.Energy-22) > 1e-12 {
		t.Fatalf("energy mismatch: got %v want 22", st.Energy)
	}

	if math.Abs(st.Centroid-13.0/8.0) > 1e-12 {
		t.Fatalf("centroid mismatch: got %v want %v", st.Centroid, 13.0/8.0)
	}

	wantFlatness := math.Pow(8, 0.25) / 2
	if math.Abs(st.Flatness-wantFlatness) > 1e-12 {
		t.Fatalf("flatness mismatch: got %v want %v", st.Flatness, wantFlatness)
	}
}

func TestCalculateFlatSpectrum(t *testing.T) {
	mag := []float64{3, 3, 3, 3, 3}

	st := Calculate(mag, 8000)

	// A flat spectrum has flatness exactly 1.
	if math.Abs(st.Flatness-1) > 1e-12 {
		t.Fatalf("flatness mismatch: got %v want 1", st.Flatness)
	}

	if st.MaxBin != 0 {
		t.Fatalf("max bin mismatch: got %d want 0", st.MaxBin)
	}
}

func TestCalculateZeroBinCollapsesFlatness(t *testing.T) {
	st := Calculate([]float64{1, 0, 1, 1}, 8000)

	if st.Flatness != 0 {
		t.Fatalf("flatness mismatch: got %v want 0", st.Flatness)
	}
}

func TestCalculateEmpty(t *testing.T) {
	st := Calculate(nil, 48000)

	if st.BinCount != 0 || st.Max != 0 || st.Energy != 0 {
		t.Fatalf("empty spectrum should yield zero stats, got %+v", st)
	}
}
