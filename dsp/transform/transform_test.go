package transform

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

func TestNewRejectsInvalidSizes(t *testing.T) {
	for _, size := range []int{-4, -1, 0, 1, 3, 6, 100, 1023} {
		_, err := New(size)
		if !errors.Is(err, ErrNotPowerOfTwo) {
			t.Fatalf("size %d: got %v want ErrNotPowerOfTwo", size, err)
		}
	}

	for _, size := range []int{2, 4, 8, 256, 1024} {
		tr, err := New(size)
		if err != nil {
			t.Fatalf("size %d: unexpected error: %v", size, err)
		}

		if tr.Size() != size {
			t.Fatalf("size mismatch: got %d want %d", tr.Size(), size)
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	cases := map[int]bool{
		-2: false, 0: false, 1: true, 2: true, 3: false,
		4: true, 1023: false, 1024: true,
	}

	for n, want := range cases {
		if got := IsPowerOfTwo(n); got != want {
			t.Fatalf("IsPowerOfTwo(%d) = %v want %v", n, got, want)
		}
	}
}

func TestBitReversalIndicesSize8(t *testing.T) {
	tr, err := New(8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := []int{0, 4, 2, 6, 1, 5, 3, 7}
	for i, w := range want {
		if tr.bitrev[i] != w {
			t.Fatalf("bitrev[%d] mismatch: got %d want %d", i, tr.bitrev[i], w)
		}
	}
}

func TestTwiddleFactorsUnitCircle(t *testing.T) {
	tr, err := New(16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for k, w := range tr.twiddle {
		want := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/16))
		if cmplx.Abs(w-want) > 1e-12 {
			t.Fatalf("twiddle[%d] mismatch: got %v want %v", k, w, want)
		}
	}
}

func TestForwardWrongLengthLeavesDataUntouched(t *testing.T) {
	tr, err := New(8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	data := []complex128{1, 2, 3, 4}
	orig := append([]complex128(nil), data...)

	if err := tr.Forward(data); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("got %v want ErrInvalidDimensions", err)
	}

	for i := range data {
		if data[i] != orig[i] {
			t.Fatalf("data[%d] mutated on error: got %v want %v", i, data[i], orig[i])
		}
	}
}

func TestForwardImpulse(t *testing.T) {
	const size = 16

	tr, err := New(size)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	data := make([]complex128, size)
	data[0] = 1

	if err := tr.Forward(data); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	// The DFT of a unit impulse is flat.
	for k, v := range data {
		if cmplx.Abs(v-1) > 1e-12 {
			t.Fatalf("bin %d mismatch: got %v want 1", k, v)
		}
	}
}

func TestForwardDC(t *testing.T) {
	const size = 32

	tr, err := New(size)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	data := make([]complex128, size)
	for i := range data {
		data[i] = 1
	}

	if err := tr.Forward(data); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	if cmplx.Abs(data[0]-complex(size, 0)) > 1e-9 {
		t.Fatalf("DC bin mismatch: got %v want %v", data[0], size)
	}

	for k := 1; k < size; k++ {
		if cmplx.Abs(data[k]) > 1e-9 {
			t.Fatalf("bin %d should be zero: got %v", k, data[k])
		}
	}
}

func TestForwardSine440At1024(t *testing.T) {
	const (
		size       = 1024
		sampleRate = 44100.0
		freq       = 440.0
	)

	tr, err := New(size)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	data := make([]complex128, size)
	for i := range data {
		data[i] = complex(math.Sin(2*math.Pi*freq*float64(i)/sampleRate), 0)
	}

	if err := tr.Forward(data); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	// 440 Hz maps to bin 440*1024/44100 = 10.21, so the peak of the
	// positive-frequency half must land on bin 10.
	peakBin := 1
	peakMag := cmplx.Abs(data[1])

	for k := 2; k < size/2; k++ {
		if mag := cmplx.Abs(data[k]); mag > peakMag {
			peakMag = mag
			peakBin = k
		}
	}

	if peakBin != 10 {
		t.Fatalf("peak bin mismatch: got %d want 10", peakBin)
	}
}

func TestForwardLinearity(t *testing.T) {
	const size = 256

	tr, err := New(size)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rng := rand.New(rand.NewSource(42))

	a := make([]complex128, size)
	b := make([]complex128, size)
	sum := make([]complex128, size)

	for i := range a {
		a[i] = complex(rng.NormFloat64(), rng.NormFloat64())
		b[i] = complex(rng.NormFloat64(), rng.NormFloat64())
		sum[i] = a[i] + b[i]
	}

	if err := tr.Forward(a); err != nil {
		t.Fatalf("Forward(a): %v", err)
	}

	if err := tr.Forward(b); err != nil {
		t.Fatalf("Forward(b): %v", err)
	}

	if err := tr.Forward(sum); err != nil {
		t.Fatalf("Forward(a+b): %v", err)
	}

	for k := range sum {
		if cmplx.Abs(sum[k]-(a[k]+b[k])) > 1e-9 {
			t.Fatalf("linearity violated at bin %d: got %v want %v", k, sum[k], a[k]+b[k])
		}
	}
}

func TestForwardMatchesNaiveDFT(t *testing.T) {
	for _, size := range []int{2, 4, 8, 16, 64} {
		tr, err := New(size)
		if err != nil {
			t.Fatalf("New(%d): %v", size, err)
		}

		rng := rand.New(rand.NewSource(int64(size)))

		data := make([]complex128, size)
		for i := range data {
			data[i] = complex(rng.NormFloat64(), rng.NormFloat64())
		}

		want := naiveDFT(data)

		if err := tr.Forward(data); err != nil {
			t.Fatalf("Forward: %v", err)
		}

		for k := range data {
			if cmplx.Abs(data[k]-want[k]) > 1e-9*float64(size) {
				t.Fatalf("size %d bin %d mismatch: got %v want %v", size, k, data[k], want[k])
			}
		}
	}
}

func TestForwardMatchesReferencePlan(t *testing.T) {
	for _, size := range []int{8, 64, 512, 2048} {
		tr, err := New(size)
		if err != nil {
			t.Fatalf("New(%d): %v", size, err)
		}

		plan, err := algofft.NewPlan64(size)
		if err != nil {
			t.Fatalf("NewPlan64(%d): %v", size, err)
		}

		rng := rand.New(rand.NewSource(int64(size)))

		data := make([]complex128, size)
		for i := range data {
			data[i] = complex(rng.NormFloat64(), rng.NormFloat64())
		}

		want := make([]complex128, size)
		if err := plan.Forward(want, data); err != nil {
			t.Fatalf("reference Forward: %v", err)
		}

		if err := tr.Forward(data); err != nil {
			t.Fatalf("Forward: %v", err)
		}

		for k := range data {
			if cmplx.Abs(data[k]-want[k]) > 1e-9*float64(size) {
				t.Fatalf("size %d bin %d mismatch: got %v want %v", size, k, data[k], want[k])
			}
		}
	}
}

func TestForwardMatchesGonumRealFFT(t *testing.T) {
	const size = 256

	tr, err := New(size)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rng := rand.New(rand.NewSource(7))

	signal := make([]float64, size)
	data := make([]complex128, size)

	for i := range signal {
		signal[i] = rng.NormFloat64()
		data[i] = complex(signal[i], 0)
	}

	fft := fourier.NewFFT(size)
	want := fft.Coefficients(nil, signal)

	if err := tr.Forward(data); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	for k := 0; k <= size/2; k++ {
		if cmplx.Abs(data[k]-want[k]) > 1e-9 {
			t.Fatalf("bin %d mismatch: got %v want %v", k, data[k], want[k])
		}
	}
}

func TestForwardCopyLeavesSourceIntact(t *testing.T) {
	const size = 64

	tr, err := New(size)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rng := rand.New(rand.NewSource(3))

	src := make([]complex128, size)
	for i := range src {
		src[i] = complex(rng.NormFloat64(), 0)
	}

	orig := append([]complex128(nil), src...)
	inplace := append([]complex128(nil), src...)

	dst := make([]complex128, size)
	if err := tr.ForwardCopy(dst, src); err != nil {
		t.Fatalf("ForwardCopy: %v", err)
	}

	for i := range src {
		if src[i] != orig[i] {
			t.Fatalf("src[%d] mutated: got %v want %v", i, src[i], orig[i])
		}
	}

	if err := tr.Forward(inplace); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	for k := range dst {
		if dst[k] != inplace[k] {
			t.Fatalf("bin %d mismatch: got %v want %v", k, dst[k], inplace[k])
		}
	}
}

func TestAlignPhaseRoundTrip(t *testing.T) {
	const size = 128

	tr, err := New(size)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rng := rand.New(rand.NewSource(11))

	data := make([]complex128, size)
	for i := range data {
		data[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}

	orig := append([]complex128(nil), data...)

	const angle = 0.73

	if err := tr.AlignPhase(data, angle); err != nil {
		t.Fatalf("AlignPhase: %v", err)
	}

	// Rotating by angle must preserve magnitudes.
	for i := range data {
		if math.Abs(cmplx.Abs(data[i])-cmplx.Abs(orig[i])) > 1e-12 {
			t.Fatalf("magnitude changed at %d: got %v want %v", i, cmplx.Abs(data[i]), cmplx.Abs(orig[i]))
		}
	}

	if err := tr.AlignPhase(data, -angle); err != nil {
		t.Fatalf("AlignPhase: %v", err)
	}

	for i := range data {
		if cmplx.Abs(data[i]-orig[i]) > 1e-12 {
			t.Fatalf("round trip mismatch at %d: got %v want %v", i, data[i], orig[i])
		}
	}
}

func TestAlignPhaseWrongLength(t *testing.T) {
	tr, err := New(8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := tr.AlignPhase(make([]complex128, 4), 1.0); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("got %v want ErrInvalidDimensions", err)
	}
}

// naiveDFT evaluates the DFT definition directly, O(n^2).
func naiveDFT(data []complex128) []complex128 {
	n := len(data)
	out := make([]complex128, n)

	for k := range out {
		for t := range data {
			angle := -2 * math.Pi * float64(k) * float64(t) / float64(n)
			out[k] += data[t] * cmplx.Exp(complex(0, angle))
		}
	}

	return out
}
