package harmonics

import (
	"math"

	"github.com/cwbudde/algo-harmonic/dsp/core"
	"github.com/cwbudde/algo-harmonic/dsp/window"
)

// Result holds a one-shot harmonic analysis of a time-domain signal.
type Result struct {
	FFTSize        int
	Fundamental    Fundamental
	FundamentalDB  float64
	Harmonics      []float64
	ResonanceScore float64
	Resonant       bool
}

// AnalyzeSignal windows a real-valued time-domain signal, transforms it, and
// evaluates the harmonic measures in one shot.
//
// The FFT size is the next power of two at or above len(signal); the tail is
// zero-padded. The window configured in cfg is applied over the signal's
// length before padding.
func AnalyzeSignal(signal []float64, cfg Config) (Result, error) {
	fftSize := nextPowerOfTwo(len(signal))
	if fftSize < 2 {
		fftSize = 2
	}

	a, err := New(fftSize, cfg)
	if err != nil {
		return Result{}, err
	}

	coeffs := window.Generate(a.cfg.WindowType, len(signal))

	data := make([]complex128, fftSize)
	for i, s := range signal {
		data[i] = complex(s*coeffs[i], 0)
	}

	if err := a.Forward(data); err != nil {
		return Result{}, err
	}

	fund, err := a.FindFundamental(data)
	if err != nil {
		return Result{}, err
	}

	h, err := a.Harmonics(data)
	if err != nil {
		return Result{}, err
	}

	score := resonanceScore(h)

	return Result{
		FFTSize:        fftSize,
		Fundamental:    fund,
		FundamentalDB:  core.LinearToDB(fund.Magnitude),
		Harmonics:      h,
		ResonanceScore: score,
		Resonant:       !math.IsInf(score, 1) && score < a.cfg.ResonanceThreshold,
	}, nil
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
