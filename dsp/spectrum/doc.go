// Package spectrum provides helpers over complex frequency-domain buffers:
// magnitude and power extraction (SIMD-accelerated) and single-bin tone
// evaluation via the Goertzel algorithm.
//
// The package does not implement the FFT itself; it operates on the bins
// produced by the dsp/transform package or any other FFT backend.
package spectrum
