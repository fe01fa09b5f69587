// Command harmonics analyzes the harmonic structure of a WAV file.
//
// Usage:
//
//	harmonics [flags] input.wav
//
// It reports the fundamental frequency, per-harmonic strengths, and whether
// the signal classifies as resonant.
//
// Examples:
//
//	harmonics tone.wav
//	harmonics -size 8192 -depth 6 tone.wav
//	harmonics -window blackman -stats tone.wav
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-harmonic/dsp/core"
	"github.com/cwbudde/algo-harmonic/dsp/spectrum"
	"github.com/cwbudde/algo-harmonic/dsp/window"
	"github.com/cwbudde/algo-harmonic/measure/harmonics"
	"github.com/cwbudde/algo-harmonic/stats/frequency"
)

var windowNames = map[string]window.Type{
	"rectangular": window.TypeRectangular,
	"hann":        window.TypeHann,
	"hamming":     window.TypeHamming,
	"blackman":    window.TypeBlackman,
}

func main() {
	size := flag.Int("size", 4096, "FFT size (power of two)")
	depth := flag.Int("depth", harmonics.DefaultHarmonicDepth, "number of harmonics to report, fundamental included")
	threshold := flag.Float64("threshold", harmonics.DefaultResonanceThreshold, "resonance score threshold")
	capture := flag.Int("capture", harmonics.DefaultCaptureBins, "half-width of the per-harmonic bin window")
	winName := flag.String("window", "hann", "analysis window: rectangular, hann, hamming, blackman")
	stats := flag.Bool("stats", false, "print spectral statistics")
	verify := flag.Bool("verify", false, "cross-check the fundamental with a Goertzel tone probe")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: harmonics [flags] input.wav\n\n")
		fmt.Fprintf(os.Stderr, "Analyzes the harmonic structure of a WAV file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	winType, ok := windowNames[*winName]
	if !ok {
		fmt.Fprintf(os.Stderr, "harmonics: unknown window %q\n", *winName)
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *size, *depth, *threshold, *capture, winType, *stats, *verify); err != nil {
		fmt.Fprintf(os.Stderr, "harmonics: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, size, depth int, threshold float64, capture int, winType window.Type, printStats, verify bool) error {
	sig, err := loadWAV(path, size)
	if err != nil {
		return err
	}

	analyzer, err := harmonics.New(size, harmonics.Config{
		SampleRate:         sig.sampleRate,
		HarmonicDepth:      depth,
		ResonanceThreshold: threshold,
		CaptureBins:        capture,
		WindowType:         winType,
	})
	if err != nil {
		return err
	}

	coeffs := window.Generate(winType, len(sig.samples))
	window.ApplyInPlace(sig.samples, coeffs)

	data := make([]complex128, size)
	for i, s := range sig.samples {
		data[i] = complex(s, 0)
	}

	if err := analyzer.Forward(data); err != nil {
		return err
	}

	fund, err := analyzer.FindFundamental(data)
	if err != nil {
		return err
	}

	strengths, err := analyzer.Harmonics(data)
	if err != nil {
		return err
	}

	score, err := analyzer.ResonanceScore(data)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "file\t%s\n", path)
	fmt.Fprintf(w, "format\t%.0f Hz, %d ch, %d-bit\n", sig.sampleRate, sig.channels, sig.bitDepth)
	fmt.Fprintf(w, "fft size\t%d\n", size)
	fmt.Fprintf(w, "fundamental\t%.2f Hz (bin %d, %.2f dB)\n", fund.Frequency, fund.Bin, core.LinearToDB(fund.Magnitude))

	for i, s := range strengths {
		ratio := 0.0
		if strengths[0] > 0 {
			ratio = s / strengths[0]
		}

		fmt.Fprintf(w, "harmonic %d\t%.2f Hz\tstrength %.4g\tratio %.3f\n",
			i+1, fund.Frequency*float64(i+1), s, ratio)
	}

	fmt.Fprintf(w, "resonance score\t%.4f\n", score)
	fmt.Fprintf(w, "resonant\t%v\n", score < threshold)

	if printStats {
		mag := spectrum.Magnitude(data[:size/2+1])
		st := frequency.Calculate(mag, sig.sampleRate)

		fmt.Fprintf(w, "spectral centroid\t%.2f Hz\n", st.Centroid)
		fmt.Fprintf(w, "spectral flatness\t%.4f\n", st.Flatness)
		fmt.Fprintf(w, "spectral energy\t%.4g\n", st.Energy)
	}

	if verify {
		power, err := spectrum.TonePower(sig.samples, fund.Frequency, sig.sampleRate)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "goertzel power\t%.4g\n", power)
	}

	return w.Flush()
}
