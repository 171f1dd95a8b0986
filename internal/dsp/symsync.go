package dsp

import "math"

// RRC filter parameters fixed per spec.md §9 "Conditional on-the-wire
// constants": oversampling k=2, 32-slot polyphase bank, span m=3 symbols,
// excess bandwidth alpha=0.7. These must stay bit-exact for interoperability.
const (
	RRCOversample    = 2
	RRCPolyphaseBank = 32
	RRCSpan          = 3
	RRCExcessBW      = 0.7
)

// rrcTaps builds the root-raised-cosine matched-filter prototype sampled at
// k*npfb times the symbol rate, the standard construction liquid-dsp's
// firdes_rrcos uses. Only the raised-cosine prototype is built here; the
// elliptic kernel (internal/elliptic) is not used by this package.
func rrcTaps(k, npfb, m int, beta float32) []float32 {
	n := 2*k*npfb*m + 1
	taps := make([]float32, n)
	samplesPerSymbol := float64(k * npfb)

	for i := 0; i < n; i++ {
		t := (float64(i) - float64(n-1)/2) / samplesPerSymbol
		taps[i] = float32(rrcSample(t, float64(beta)))
	}
	return taps
}

func rrcSample(t, beta float64) float64 {
	if t == 0 {
		return 1 - beta + 4*beta/math.Pi
	}
	if beta != 0 && math.Abs(math.Abs(4*beta*t)-1) < 1e-8 {
		return (beta / math.Sqrt2) * ((1+2/math.Pi)*math.Sin(math.Pi/(4*beta)) + (1-2/math.Pi)*math.Cos(math.Pi/(4*beta)))
	}
	num := math.Sin(math.Pi*t*(1-beta)) + 4*beta*t*math.Cos(math.Pi*t*(1+beta))
	den := math.Pi * t * (1 - math.Pow(4*beta*t, 2))
	return num / den
}

// GardnerSymSync is a polyphase-matched-filter symbol synchronizer using a
// Gardner timing-error detector to steer a fractional interpolator. This is
// the one DSP primitive spec.md names no teacher or pack file implements
// directly (direwolf's symbol timing is DPLL/bit-clock based, not
// polyphase-matched-filter based); the polyphase bank and Gardner loop are
// standard SDR constructions, kept deterministic. Step returns a newly
// allocated one-element slice for each emitted symbol. See DESIGN.md.
type GardnerSymSync struct {
	taps  []float32 // flattened [npfb][tapsPerPhase]
	npfb  int
	ktaps int // taps per polyphase branch

	line []Sample // FIR delay line, most recent first
	mu   float32  // fractional symbol timing offset, [0,1)
	bw   float32  // loop bandwidth (gain on timing correction)

	samplesSinceSymbol int
	lastSymbol         Sample
	haveLast           bool
}

func NewGardnerSymSync(bandwidth float32) *GardnerSymSync {
	full := rrcTaps(RRCOversample, RRCPolyphaseBank, RRCSpan, RRCExcessBW)
	ktaps := len(full) / RRCPolyphaseBank
	if ktaps == 0 {
		ktaps = 1
	}

	// Rearrange the time-ordered prototype into [npfb][ktaps]: branch p
	// takes every npfb-th tap starting at p.
	taps := make([]float32, RRCPolyphaseBank*ktaps)
	for p := 0; p < RRCPolyphaseBank; p++ {
		for i := 0; i < ktaps; i++ {
			if idx := i*RRCPolyphaseBank + p; idx < len(full) {
				taps[p*ktaps+i] = full[idx]
			}
		}
	}

	s := &GardnerSymSync{
		taps:  taps,
		npfb:  RRCPolyphaseBank,
		ktaps: ktaps,
		bw:    bandwidth,
	}
	s.line = make([]Sample, ktaps)
	return s
}

func (s *GardnerSymSync) SetBandwidth(bw float32) { s.bw = bw }

func (s *GardnerSymSync) Clear() {
	for i := range s.line {
		s.line[i] = 0
	}
	s.mu = 0
	s.samplesSinceSymbol = 0
	s.haveLast = false
}

// filterAtPhase convolves the delay line against the polyphase branch
// nearest to the current fractional offset mu.
func (s *GardnerSymSync) filterAtPhase() Sample {
	phase := int(s.mu * float32(s.npfb))
	if phase >= s.npfb {
		phase = s.npfb - 1
	}
	branch := s.taps[phase*s.ktaps : (phase+1)*s.ktaps]

	var acc Sample
	for i, x := range s.line {
		if i < len(branch) {
			acc += x * Sample(complex(branch[i], 0))
		}
	}
	return acc
}

// Step pushes one oversampled input sample through the matched filter and
// emits an interpolated output symbol every RRCOversample input samples,
// nudging the fractional phase with a Gardner timing-error estimate.
func (s *GardnerSymSync) Step(x Sample) []Sample {
	copy(s.line[1:], s.line[:len(s.line)-1])
	s.line[0] = x

	s.samplesSinceSymbol++
	if s.samplesSinceSymbol < RRCOversample {
		return nil
	}
	s.samplesSinceSymbol = 0

	out := s.filterAtPhase()

	if s.haveLast {
		// Gardner TED: error ~ Re{(prev - cur) * conj(mid)}; approximate the
		// mid-sample with the midpoint of prev/cur since we don't retain a
		// half-symbol-delayed tap here.
		mid := (s.lastSymbol + out) / 2
		err := real(mid) * (real(s.lastSymbol) - real(out))
		s.mu += s.bw * err
		for s.mu >= 1 {
			s.mu -= 1
		}
		for s.mu < 0 {
			s.mu += 1
		}
	}
	s.lastSymbol = out
	s.haveLast = true

	return []Sample{out}
}
