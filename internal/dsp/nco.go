package dsp

import "math"

// PhaseAccumNCO is a numerically controlled oscillator built around a
// running phase accumulator, the same technique the teacher's tone
// generator uses to index a sine table from the upper bits of a phase
// counter (src/gen_tone.go, tone_phase / sine_table). flexsync mixes
// complex baseband directly rather than indexing a table, since the
// pipeline is single-precision throughout and a table lookup would just
// reintroduce quantization error the AGC/PLL chain has to fight.
type PhaseAccumNCO struct {
	phase float32 // radians, wrapped to (-pi, pi]
	freq  float32 // radians/sample
}

func NewPhaseAccumNCO() *PhaseAccumNCO {
	return &PhaseAccumNCO{}
}

func wrapPhase(p float32) float32 {
	for p > math.Pi {
		p -= 2 * math.Pi
	}
	for p <= -math.Pi {
		p += 2 * math.Pi
	}
	return p
}

// Mix rotates x by -phase, i.e. down-converts it by the oscillator's
// current carrier estimate.
func (n *PhaseAccumNCO) Mix(x Sample) Sample {
	s, c := math.Sincos(float64(-n.phase))
	rot := complex(float32(c), float32(s))
	return x * Sample(rot)
}

// Step advances the phase by the current frequency plus a one-shot
// adjustment from the PLL, then accumulates that adjustment into the
// tracked frequency.
func (n *PhaseAccumNCO) Step(freqAdjust float32) {
	n.freq = wrapPhase(n.freq + freqAdjust)
	n.phase = wrapPhase(n.phase + n.freq)
}

func (n *PhaseAccumNCO) SetPhase(phase float32)     { n.phase = wrapPhase(phase) }
func (n *PhaseAccumNCO) SetFrequency(freq float32)  { n.freq = freq }
func (n *PhaseAccumNCO) Phase() float32             { return n.phase }
func (n *PhaseAccumNCO) Frequency() float32         { return n.freq }
