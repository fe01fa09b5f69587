// Package window generates and applies analysis window functions.
//
// Only the windows needed for leakage control ahead of the harmonic analyzer
// are provided. Coefficients are computed in their symmetric form.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

// String returns the window name.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	default:
		return "unknown"
	}
}

// Generate returns n symmetric window coefficients for the given type.
// Unknown types fall back to rectangular. Returns nil for n <= 0.
func Generate(t Type, n int) []float64 {
	if n <= 0 {
		return nil
	}

	coeffs := make([]float64, n)

	if n == 1 {
		coeffs[0] = 1
		return coeffs
	}

	den := float64(n - 1)

	for i := range coeffs {
		x := float64(i) / den

		switch t {
		case TypeHann:
			coeffs[i] = 0.5 - 0.5*math.Cos(2*math.Pi*x)
		case TypeHamming:
			coeffs[i] = 0.54 - 0.46*math.Cos(2*math.Pi*x)
		case TypeBlackman:
			coeffs[i] = 0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x)
		default:
			coeffs[i] = 1
		}
	}

	return coeffs
}

// Apply multiplies samples by coeffs into out. All slices must have the same
// length. Panics on length mismatch.
func Apply(out, samples, coeffs []float64) {
	vecmath.MulBlock(out, samples, coeffs)
}

// ApplyInPlace multiplies samples by coeffs in place.
// Both slices must have the same length. Panics on length mismatch.
func ApplyInPlace(samples, coeffs []float64) {
	vecmath.MulBlockInPlace(samples, coeffs)
}

// CoherentGain returns the mean of the coefficients. Dividing measured
// magnitudes by this value compensates the window's amplitude loss.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs))
}
