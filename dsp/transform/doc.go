// Package transform implements a fixed-size, in-place radix-2
// decimation-in-time FFT for power-of-two lengths.
//
// A [Transform] is created once for a given size and precomputes its twiddle
// factors and bit-reversal permutation. The forward transform runs fully in
// place on the caller's buffer, produces the unnormalized DFT in natural
// order, and performs no allocation.
//
// A Transform is not safe for concurrent use of a single instance: Forward
// stages per-pass twiddle factors in the plan's scratch buffer. Create one
// Transform per goroutine or serialize calls externally.
package transform
