// Package frequency computes summary statistics of a magnitude spectrum.
package frequency

import "math"

// Stats holds frequency-domain statistics computed from a one-sided magnitude
// spectrum (bins 0..Nyquist, linear scale).
type Stats struct {
	BinCount int
	DC       float64 // bin 0 magnitude
	Max      float64
	MaxBin   int
	Average  float64
	Energy   float64 // sum of squared magnitudes
	Centroid float64 // spectral centroid in Hz
	Flatness float64 // Wiener entropy, 0..1
}

// binFreq returns the frequency in Hz of bin i for a one-sided spectrum of
// binCount bins: fftSize = 2 * (binCount - 1).
func binFreq(i int, sampleRate float64, binCount int) float64 {
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Calculate computes statistics from a one-sided linear magnitude spectrum.
func Calculate(magnitude []float64, sampleRate float64) Stats {
	n := len(magnitude)
	if n == 0 {
		return Stats{}
	}

	st := Stats{
		BinCount: n,
		DC:       magnitude[0],
		Max:      magnitude[0],
	}

	sum := 0.0
	weighted := 0.0
	logSum := 0.0
	nonZero := 0

	for i, v := range magnitude {
		sum += v
		st.Energy += v * v

		if v > st.Max {
			st.Max = v
			st.MaxBin = i
		}

		if n > 1 {
			weighted += v * binFreq(i, sampleRate, n)
		}

		if v > 0 {
			logSum += math.Log(v)
			nonZero++
		}
	}

	st.Average = sum / float64(n)

	if sum > 0 && n > 1 {
		st.Centroid = weighted / sum
	}

	// Flatness is the geometric over arithmetic mean. Zero bins collapse the
	// geometric mean to zero.
	if nonZero == n && st.Average > 0 {
		geoMean := math.Exp(logSum / float64(n))
		st.Flatness = geoMean / st.Average
	}

	return st
}
