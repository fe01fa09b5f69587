package generic

// MulBlock performs elementwise complex multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
//
// The main loop handles four lanes per iteration with the real/imaginary
// parts expanded into explicit multiply-subtract/multiply-add form, matching
// the data layout a SIMD kernel would consume. The arithmetic is identical to
// the scalar complex product.
func MulBlock(dst, a, b []complex128) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("cvec: slice length mismatch")
	}

	n := len(dst)

	i := 0
	for ; i+4 <= n; i += 4 {
		ar0, ai0 := real(a[i]), imag(a[i])
		ar1, ai1 := real(a[i+1]), imag(a[i+1])
		ar2, ai2 := real(a[i+2]), imag(a[i+2])
		ar3, ai3 := real(a[i+3]), imag(a[i+3])

		br0, bi0 := real(b[i]), imag(b[i])
		br1, bi1 := real(b[i+1]), imag(b[i+1])
		br2, bi2 := real(b[i+2]), imag(b[i+2])
		br3, bi3 := real(b[i+3]), imag(b[i+3])

		dst[i] = complex(ar0*br0-ai0*bi0, ar0*bi0+ai0*br0)
		dst[i+1] = complex(ar1*br1-ai1*bi1, ar1*bi1+ai1*br1)
		dst[i+2] = complex(ar2*br2-ai2*bi2, ar2*bi2+ai2*br2)
		dst[i+3] = complex(ar3*br3-ai3*bi3, ar3*bi3+ai3*br3)
	}

	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

// RotateBlock multiplies every element of data by w in place.
func RotateBlock(data []complex128, w complex128) {
	wr, wi := real(w), imag(w)

	n := len(data)

	i := 0
	for ; i+4 <= n; i += 4 {
		r0, m0 := real(data[i]), imag(data[i])
		r1, m1 := real(data[i+1]), imag(data[i+1])
		r2, m2 := real(data[i+2]), imag(data[i+2])
		r3, m3 := real(data[i+3]), imag(data[i+3])

		data[i] = complex(r0*wr-m0*wi, r0*wi+m0*wr)
		data[i+1] = complex(r1*wr-m1*wi, r1*wi+m1*wr)
		data[i+2] = complex(r2*wr-m2*wi, r2*wi+m2*wr)
		data[i+3] = complex(r3*wr-m3*wi, r3*wi+m3*wr)
	}

	for ; i < n; i++ {
		r, m := real(data[i]), imag(data[i])
		data[i] = complex(r*wr-m*wi, r*wi+m*wr)
	}
}
