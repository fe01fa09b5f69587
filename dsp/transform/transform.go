package transform

import (
	"math"

	"github.com/cwbudde/algo-harmonic/internal/cvec"
)

// vectorMinStep is the smallest butterfly half-width worth routing through the
// batched complex multiply. Below this the gather overhead dominates.
const vectorMinStep = 4

// Transform is a fixed-size radix-2 DIT FFT plan.
//
// The twiddle and bit-reversal tables are computed once by [New] and never
// mutated afterwards. Only the scratch buffer is written during Forward.
type Transform struct {
	size    int
	twiddle []complex128 // exp(-2*pi*i*k/size) for k = 0..size-1
	bitrev  []int        // bitrev[i] = reverseBits(i, log2(size))
	scratch []complex128 // per-stage twiddle gather and butterfly products
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// New creates a Transform for the given power-of-two size.
// Sizes below 2 or non-powers-of-two fail with [ErrNotPowerOfTwo].
func New(size int) (*Transform, error) {
	if size < 2 || !IsPowerOfTwo(size) {
		return nil, ErrNotPowerOfTwo
	}

	t := &Transform{
		size:    size,
		twiddle: computeTwiddleFactors(size),
		bitrev:  computeBitReversalIndices(size),
		scratch: make([]complex128, size),
	}

	return t, nil
}

// Size returns the transform length.
func (t *Transform) Size() int {
	return t.size
}

// Forward computes the unnormalized forward DFT of data in place.
//
// data must have exactly Size() elements; otherwise [ErrInvalidDimensions] is
// returned and data is not mutated. The result is in natural bin order with
// no 1/N scaling applied.
func (t *Transform) Forward(data []complex128) error {
	if len(data) != t.size {
		return ErrInvalidDimensions
	}

	// Bit-reversal permutation. Swapping only when the partner index is
	// larger visits each pair exactly once.
	for i, j := range t.bitrev {
		if j > i {
			data[i], data[j] = data[j], data[i]
		}
	}

	n := t.size
	for step := 1; step < n; step <<= 1 {
		jump := step << 1
		twStride := n / jump

		if step >= vectorMinStep {
			t.forwardStageVector(data, step, jump, twStride)
			continue
		}

		for group := 0; group < n; group += jump {
			for pair := 0; pair < step; pair++ {
				w := t.twiddle[pair*twStride]
				lo := group + pair
				hi := lo + step

				product := data[hi] * w
				data[hi] = data[lo] - product
				data[lo] += product
			}
		}
	}

	return nil
}

// forwardStageVector runs one butterfly stage through the batched complex
// multiply. The stage's twiddle factors are gathered once into scratch; the
// per-group products land in the upper half of scratch. The read-before-write
// ordering of the scalar path is preserved exactly.
func (t *Transform) forwardStageVector(data []complex128, step, jump, twStride int) {
	stageTw := t.scratch[:step]
	product := t.scratch[step : 2*step]

	for pair := range step {
		stageTw[pair] = t.twiddle[pair*twStride]
	}

	for group := 0; group < t.size; group += jump {
		lo := data[group : group+step]
		hi := data[group+step : group+jump]

		cvec.MulBlock(product, hi, stageTw)

		for pair := range step {
			hi[pair] = lo[pair] - product[pair]
			lo[pair] += product[pair]
		}
	}
}

// ForwardCopy computes the forward DFT of src into dst, leaving src intact.
// Both slices must have exactly Size() elements.
func (t *Transform) ForwardCopy(dst, src []complex128) error {
	if len(dst) != t.size || len(src) != t.size {
		return ErrInvalidDimensions
	}

	copy(dst, src)

	return t.Forward(dst)
}

// AlignPhase rotates every sample of data by angle radians, multiplying each
// element by (cos(angle), sin(angle)) in place. The rotation is meaningful in
// either domain: before Forward it rotates the time-domain signal, after
// Forward it rotates the spectrum.
func (t *Transform) AlignPhase(data []complex128, angle float64) error {
	if len(data) != t.size {
		return ErrInvalidDimensions
	}

	w := complex(math.Cos(angle), math.Sin(angle))
	cvec.RotateBlock(data, w)

	return nil
}

// computeTwiddleFactors returns the roots of unity for a size-n FFT:
// W_n^k = exp(-2*pi*i*k/n) for k = 0..n-1.
func computeTwiddleFactors(n int) []complex128 {
	twiddle := make([]complex128, n)
	theta := -2.0 * math.Pi / float64(n)

	for k := range n {
		angle := theta * float64(k)
		twiddle[k] = complex(math.Cos(angle), math.Sin(angle))
	}

	return twiddle
}

// computeBitReversalIndices returns the bit-reversal permutation indices for a
// size-n radix-2 FFT.
func computeBitReversalIndices(n int) []int {
	bitrev := make([]int, n)
	bits := log2(n)

	for i := range n {
		bitrev[i] = reverseBits(i, bits)
	}

	return bitrev
}

// log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// reverseBits reverses the lower 'bits' bits of x.
// Example: reverseBits(6, 3) = reverseBits(0b110, 3) = 0b011 = 3.
func reverseBits(x, bits int) int {
	result := 0
	for range bits {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}
