package flexsync

import (
	"math/cmplx"

	"github.com/doismellburning/flexsync/internal/dsp"
)

// Execute consumes a block of complex baseband samples (spec.md §6), at
// the configured k=2 oversampling rate. It may be called repeatedly with
// arbitrary block sizes; state persists between calls. It must not be
// called concurrently on the same instance (spec.md §5).
func (s *Synchronizer) Execute(samples []complex64) {
	for _, x := range samples {
		s.stepSample(x)
	}
}

// stepSample is the per-sample data flow of spec.md §4.4.
func (s *Synchronizer) stepSample(x complex64) {
	y, level := s.agc.Step(x)

	if s.debug != nil {
		s.debug.rawInput.push(x)
		s.debug.rssi.push(rssiFromLevel(level))
		s.debug.agcOut.push(y)
	}

	if s.gate(level) {
		return
	}

	symbols := s.symsync.Step(y)
	for _, sym := range symbols {
		s.stepSymbol(sym)
	}
}

// stepSymbol is spec.md §4.4 step 5: mixdown, demod, PLL/NCO step, then
// (gated on RSSI) dispatch to the frame state machine.
func (s *Synchronizer) stepSymbol(sym complex64) {
	z := s.nco.Mix(sym)

	demod := s.activeDemod()
	decision, phaseError := demod.Demodulate(z)

	if s.debug != nil {
		evm := cmplx.Abs(complex128(z) - complex128(demod.IdealPoint(decision)))
		s.debug.evm.push(float32(evm))
	}

	freqAdjust := s.pll.Step(phaseError)
	s.nco.Step(freqAdjust)

	if s.rssi < s.squelch.thresholdDB {
		return
	}

	s.dispatchSymbol(symbolEvent{z: z, decision: decision})
}

// activeDemod picks BPSK while seeking the preamble and QPSK otherwise
// (spec.md §3 invariant, resolved against SPEC_FULL.md's reading of
// flexframesync.c: QPSK is used for the header AND the payload, not just
// the payload).
func (s *Synchronizer) activeDemod() dsp.Demod {
	if s.state == StateSeekPN {
		return s.bpskDemod
	}
	return s.qpskDemod
}
