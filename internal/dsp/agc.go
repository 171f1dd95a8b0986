package dsp

import "math"

// EnvelopeAGC is an automatic gain control loop tracking a peak/valley
// envelope with a fast-attack, slow-decay IIR pair, directly grounded on
// the agc() function in the teacher's 9600bps demodulator
// (src/demod_9600.go). Output settles to unit magnitude.
type EnvelopeAGC struct {
	bandwidth float32
	peak      float32
	valley    float32
}

// NewEnvelopeAGC constructs an AGC with the given initial loop bandwidth.
func NewEnvelopeAGC(bandwidth float32) *EnvelopeAGC {
	return &EnvelopeAGC{bandwidth: bandwidth, peak: 1, valley: -1}
}

func (a *EnvelopeAGC) SetBandwidth(bw float32) { a.bandwidth = bw }

func (a *EnvelopeAGC) Reset() {
	a.peak = 1
	a.valley = -1
}

// Step normalizes x by the tracked peak-to-peak envelope and reports the
// instantaneous signal level (peak-to-peak magnitude) used to derive RSSI.
func (a *EnvelopeAGC) Step(x Sample) (Sample, float32) {
	mag := float32(math.Hypot(float64(real(x)), float64(imag(x))))

	fastAttack := a.bandwidth
	slowDecay := a.bandwidth * 0.1

	if mag >= a.peak {
		a.peak = mag*fastAttack + a.peak*(1-fastAttack)
	} else {
		a.peak = mag*slowDecay + a.peak*(1-slowDecay)
	}

	if mag <= a.valley {
		a.valley = mag*fastAttack + a.valley*(1-fastAttack)
	} else {
		a.valley = mag*slowDecay + a.valley*(1-slowDecay)
	}

	level := a.peak - a.valley
	if level <= 0 {
		level = 1e-9
	}

	gain := 1 / level
	y := Sample(complex(real(x)*gain, imag(x)*gain))

	return y, level
}
