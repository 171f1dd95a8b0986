package dsp

import "math"

// SecondOrderPLL is a standard second-order proportional-integral loop
// filter: bandwidth sets the natural frequency, with damping factor
// zeta=0.707, the conventional choice for carrier-recovery loops. No
// component in the retrieval pack carries a ready-made PLL loop filter
// (the teacher's carrier recovery for PSK instead derives phase from
// self-correlation, src/demod_psk.go) so this is built from the textbook
// PI-loop formulas rather than adapted from a pack file; see DESIGN.md.
type SecondOrderPLL struct {
	alpha, beta float32
	integrator  float32
}

func NewSecondOrderPLL(bandwidth float32) *SecondOrderPLL {
	p := &SecondOrderPLL{}
	p.SetBandwidth(bandwidth)
	return p
}

func (p *SecondOrderPLL) SetBandwidth(bw float32) {
	const zeta = 0.707
	wn := float64(bw)
	p.alpha = float32(2 * zeta * wn)
	p.beta = float32(wn * wn)
}

func (p *SecondOrderPLL) Reset() {
	p.integrator = 0
}

// Step consumes a phase-error estimate and returns the per-sample
// frequency adjustment to hand to the NCO.
func (p *SecondOrderPLL) Step(phaseError float32) float32 {
	p.integrator += p.beta * phaseError
	return p.alpha*phaseError + p.integrator
}

// clampPi wraps a phase error estimate into (-pi, pi], the convention the
// demod facades use when reporting phaseError.
func clampPi(x float32) float32 {
	for x > math.Pi {
		x -= 2 * math.Pi
	}
	for x <= -math.Pi {
		x += 2 * math.Pi
	}
	return x
}
