package harmonics

import (
	"math"

	"github.com/cwbudde/algo-harmonic/dsp/spectrum"
	"github.com/cwbudde/algo-harmonic/dsp/transform"
)

// Fundamental describes the strongest spectral component found below Nyquist.
type Fundamental struct {
	// Bin is the spectrum bin index of the peak.
	Bin int

	// Frequency is Bin converted to Hz: Bin * SampleRate / Size.
	Frequency float64

	// Magnitude is the peak's linear magnitude.
	Magnitude float64
}

// Analyzer measures harmonic structure on fixed-size complex buffers.
type Analyzer struct {
	cfg  Config
	plan *transform.Transform
	mag  []float64 // magnitude scratch, reused across calls
}

// New creates an Analyzer for power-of-two transform size.
// Fails with [transform.ErrNotPowerOfTwo] for invalid sizes and with a
// descriptive error for invalid configuration values.
func New(size int, cfg Config) (*Analyzer, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}

	plan, err := transform.New(size)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		cfg:  cfg,
		plan: plan,
		mag:  make([]float64, size),
	}, nil
}

// Size returns the transform length.
func (a *Analyzer) Size() int {
	return a.plan.Size()
}

// Config returns the normalized configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Forward converts the time-domain buffer to its frequency-domain
// representation in place. See [transform.Transform.Forward].
func (a *Analyzer) Forward(data []complex128) error {
	return a.plan.Forward(data)
}

// AlignPhase rotates every sample by the configured phase-alignment angle.
func (a *Analyzer) AlignPhase(data []complex128) error {
	return a.plan.AlignPhase(data, a.cfg.PhaseAlignment)
}

// FindFundamental scans bins 1..Size/2-1 of the magnitude spectrum and
// returns the strongest one. Bin 0 (DC) and the mirrored upper half are
// excluded. On exact magnitude ties the lowest bin wins.
//
// data must already hold the output of Forward.
func (a *Analyzer) FindFundamental(data []complex128) (Fundamental, error) {
	if len(data) != a.plan.Size() {
		return Fundamental{}, transform.ErrInvalidDimensions
	}

	spectrum.MagnitudeInto(a.mag, data)

	half := a.plan.Size() / 2
	if half < 2 {
		// Size 2 leaves no bins between DC and Nyquist.
		return Fundamental{}, nil
	}

	bestBin := 1
	bestVal := a.mag[1]

	for i := 2; i < half; i++ {
		if a.mag[i] > bestVal {
			bestVal = a.mag[i]
			bestBin = i
		}
	}

	return Fundamental{
		Bin:       bestBin,
		Frequency: float64(bestBin) * a.cfg.SampleRate / float64(a.plan.Size()),
		Magnitude: bestVal,
	}, nil
}

// Harmonics returns HarmonicDepth strengths: index 0 is the fundamental,
// index 1 the second harmonic, and so on. Each strength sums the magnitude of
// the bins within CaptureBins of the harmonic's bin; harmonics at or above
// Nyquist report zero.
//
// data must already hold the output of Forward. The returned slice is owned
// by the caller.
func (a *Analyzer) Harmonics(data []complex128) ([]float64, error) {
	fund, err := a.FindFundamental(data)
	if err != nil {
		return nil, err
	}

	out := make([]float64, a.cfg.HarmonicDepth)
	if fund.Magnitude == 0 {
		return out, nil
	}

	for h := range out {
		out[h] = a.strengthAt(fund.Frequency * float64(h+1))
	}

	return out, nil
}

// strengthAt sums the magnitude window around the bin closest to freq.
// Relies on a.mag being current (filled by FindFundamental).
func (a *Analyzer) strengthAt(freq float64) float64 {
	n := a.plan.Size()
	half := n / 2

	bin := int(math.Round(freq * float64(n) / a.cfg.SampleRate))
	if bin < 0 || bin >= half {
		return 0
	}

	lo := bin - a.cfg.CaptureBins
	if lo < 0 {
		lo = 0
	}

	hi := bin + a.cfg.CaptureBins
	if hi >= half {
		hi = half - 1
	}

	sum := 0.0
	for i := lo; i <= hi; i++ {
		sum += a.mag[i]
	}

	return sum
}

// ResonanceScore accumulates the deviation of each harmonic ratio from its
// integer target: sum over i >= 1 of |harmonics[i]/harmonics[0] - (i+1)|.
//
// A spectrum with no measurable fundamental returns +Inf rather than a NaN
// from the zero division.
func (a *Analyzer) ResonanceScore(data []complex128) (float64, error) {
	h, err := a.Harmonics(data)
	if err != nil {
		return 0, err
	}

	return resonanceScore(h), nil
}

// DetectResonance reports whether the spectrum's harmonic ratios stay within
// the configured threshold of their integer targets. A spectrum with no
// measurable fundamental is never resonant.
func (a *Analyzer) DetectResonance(data []complex128) (bool, error) {
	score, err := a.ResonanceScore(data)
	if err != nil {
		return false, err
	}

	return score < a.cfg.ResonanceThreshold, nil
}

func resonanceScore(harmonics []float64) float64 {
	if len(harmonics) == 0 || harmonics[0] == 0 {
		return math.Inf(1)
	}

	score := 0.0
	for i := 1; i < len(harmonics); i++ {
		ratio := harmonics[i] / harmonics[0]
		expected := float64(i + 1)
		score += math.Abs(ratio - expected)
	}

	return score
}
