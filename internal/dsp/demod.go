package dsp

import "math"

// BPSKDemod makes hard 1-bit decisions and reports a Costas-style phase
// error, used while the synchronizer is in SEEK_PN (spec.md §4.4 step 5b,
// invariant in §3: "the demodulator used to estimate phase error is the
// BPSK demod" while searching).
type BPSKDemod struct{}

func NewBPSKDemod() *BPSKDemod { return &BPSKDemod{} }

func (BPSKDemod) Demodulate(z Sample) (int, float32) {
	decision := 0
	if real(z) > 0 {
		decision = 1
	}
	phaseError := clampPi(float32(math.Atan2(float64(imag(z))*sign(real(z)), float64(real(z))*sign(real(z)))))
	return decision, phaseError
}

func sign(x float32) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// IdealPoint returns the unit-amplitude BPSK constellation point for a
// decision: +1 or -1 on the real axis.
func (BPSKDemod) IdealPoint(decision int) Sample {
	if decision == 1 {
		return Sample(complex(1, 0))
	}
	return Sample(complex(-1, 0))
}

// QPSKDemod makes hard 2-bit decisions (quadrants numbered 0..3
// counterclockwise from the first quadrant; not Gray-coded) and reports a
// fourth-power Costas phase error, used for header/payload reception.
type QPSKDemod struct{}

func NewQPSKDemod() *QPSKDemod { return &QPSKDemod{} }

func (QPSKDemod) Demodulate(z Sample) (int, float32) {
	i, q := real(z), imag(z)

	var decision int
	switch {
	case i >= 0 && q >= 0:
		decision = 0
	case i < 0 && q >= 0:
		decision = 1
	case i < 0 && q < 0:
		decision = 2
	default:
		decision = 3
	}

	// Fourth-power phase-error estimator: raise to the 4th power to strip
	// the QPSK constellation's 4-fold symmetry, then take the angle. The
	// ideal points (±1±j)/sqrt(2) raise to the negative real axis, so the
	// result is negated to make them report zero error.
	z4 := -(complex128(z) * complex128(z) * complex128(z) * complex128(z))
	phaseError := clampPi(float32(math.Atan2(imag(z4), real(z4)) / 4))
	return decision, phaseError
}

// IdealPoint returns the unit-amplitude QPSK constellation point
// (±1±j)/sqrt(2) for a decision in {0,1,2,3}.
func (QPSKDemod) IdealPoint(decision int) Sample {
	const s = float32(0.70710678) // 1/sqrt(2)
	switch decision {
	case 0:
		return Sample(complex(s, s))
	case 1:
		return Sample(complex(-s, s))
	case 2:
		return Sample(complex(-s, -s))
	default:
		return Sample(complex(s, -s))
	}
}
