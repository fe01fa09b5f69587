package harmonics

import (
	"fmt"

	"github.com/cwbudde/algo-harmonic/dsp/window"
)

const (
	// DefaultCaptureBins is the half-width of the symmetric bin window summed
	// around each harmonic to tolerate spectral leakage. Empirically chosen;
	// tune against real signal corpora rather than assuming it is optimal.
	DefaultCaptureBins = 3

	// DefaultHarmonicDepth is the number of harmonics reported, fundamental
	// included.
	DefaultHarmonicDepth = 4

	// DefaultResonanceThreshold is a permissive resonance bound. A lone pure
	// tone scores just under this value at the default harmonic depth; any
	// meaningfully inharmonic content pushes the score past it. Like
	// DefaultCaptureBins this is an empirical constant, not a calibrated one.
	DefaultResonanceThreshold = 10.0
)

// Config holds the analyzer's numeric parameters. It is treated as immutable
// after construction.
type Config struct {
	// SampleRate is the sample rate represented by analyzed buffers, in Hz.
	// Must be > 0.
	SampleRate float64

	// HarmonicDepth is the number of harmonics to report, fundamental
	// included. Must be >= 1. Zero selects DefaultHarmonicDepth.
	HarmonicDepth int

	// ResonanceThreshold is the maximum cumulative deviation of harmonic
	// ratios from their integer targets for a spectrum to classify as
	// resonant. Must be >= 0. Zero selects DefaultResonanceThreshold.
	ResonanceThreshold float64

	// PhaseAlignment is the rotation angle in radians applied by AlignPhase.
	PhaseAlignment float64

	// CaptureBins is the half-width of the per-harmonic summation window.
	// Zero selects DefaultCaptureBins; negative disables widening entirely.
	CaptureBins int

	// WindowType is applied by AnalyzeSignal before the transform.
	WindowType window.Type
}

// normalize fills zero-value fields with defaults and validates the rest.
func (cfg Config) normalize() (Config, error) {
	if cfg.SampleRate <= 0 {
		return cfg, fmt.Errorf("harmonics: sample rate must be > 0: %v", cfg.SampleRate)
	}

	if cfg.HarmonicDepth == 0 {
		cfg.HarmonicDepth = DefaultHarmonicDepth
	}

	if cfg.HarmonicDepth < 1 {
		return cfg, fmt.Errorf("harmonics: harmonic depth must be >= 1: %d", cfg.HarmonicDepth)
	}

	if cfg.ResonanceThreshold == 0 {
		cfg.ResonanceThreshold = DefaultResonanceThreshold
	}

	if cfg.ResonanceThreshold < 0 {
		return cfg, fmt.Errorf("harmonics: resonance threshold must be >= 0: %v", cfg.ResonanceThreshold)
	}

	if cfg.CaptureBins == 0 {
		cfg.CaptureBins = DefaultCaptureBins
	}

	if cfg.CaptureBins < 0 {
		cfg.CaptureBins = 0
	}

	return cfg, nil
}
