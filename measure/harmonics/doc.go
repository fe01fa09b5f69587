// Package harmonics measures the harmonic structure of a signal from its
// complex spectrum: fundamental-frequency detection, per-harmonic strength,
// and a resonance classification based on harmonic magnitude ratios.
//
// An [Analyzer] wraps a fixed-size forward FFT plan (dsp/transform) together
// with the numeric configuration. The caller runs Forward on a time-domain
// buffer and then queries the frequency-domain result, or uses
// [AnalyzeSignal] for the one-shot window-transform-analyze path.
//
// An Analyzer is not safe for concurrent use of a single instance: the
// magnitude scratch buffer is shared between calls. Create one Analyzer per
// goroutine or serialize calls externally.
package harmonics
