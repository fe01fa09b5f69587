package main

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// wavSignal holds a decoded, mono-mixed WAV signal.
type wavSignal struct {
	samples    []float64
	sampleRate float64
	channels   int
	bitDepth   int
}

// loadWAV decodes up to maxSamples frames of a WAV file, mixing all channels
// down to mono and normalizing to [-1, 1].
func loadWAV(path string, maxSamples int) (*wavSignal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	channels := format.NumChannels
	bitDepth := int(decoder.BitDepth)

	buf := &audio.IntBuffer{
		Format: format,
		Data:   make([]int, maxSamples*channels),
	}

	n, err := decoder.PCMBuffer(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}

	frames := n / channels
	samples := mixdown(buf.Data[:frames*channels], channels, sampleScale(bitDepth))

	return &wavSignal{
		samples:    samples,
		sampleRate: float64(format.SampleRate),
		channels:   channels,
		bitDepth:   bitDepth,
	}, nil
}

// sampleScale returns the normalization factor for a PCM bit depth.
func sampleScale(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 1.0 / 127.0
	case 16:
		return 1.0 / 32767.0
	case 24:
		return 1.0 / 8388607.0
	case 32:
		return 1.0 / 2147483647.0
	default:
		return 1.0 / 32767.0
	}
}

// mixdown averages interleaved integer channels into normalized mono floats.
func mixdown(data []int, channels int, scale float64) []float64 {
	if channels < 1 {
		return nil
	}

	frames := len(data) / channels
	out := make([]float64, frames)

	for i := range frames {
		sum := 0.0
		for ch := range channels {
			sum += float64(data[i*channels+ch])
		}

		out[i] = sum * scale / float64(channels)
	}

	return out
}
