package flexsync

import "math"

// squelch is the sole source of sample-level backpressure (spec.md §4.3,
// §4.4): while in SEEK_PN with low RSSI it drops samples for `timeout`
// samples, then performs a soft reset, then keeps dropping until the
// signal recovers.
type squelch struct {
	thresholdDB float32
	timeout     int
	timer       int
}

func newSquelch(thresholdDB float32, timeout int) *squelch {
	return &squelch{thresholdDB: thresholdDB, timeout: timeout}
}

func rssiFromLevel(level float32) float32 {
	if level <= 0 {
		return float32(math.Inf(-1))
	}
	return 10 * float32(math.Log10(float64(level)))
}

// gate reports whether the current sample should be dropped, and performs
// the soft reset itself when the timeout expires so the caller doesn't
// need to know about that side effect.
func (s *Synchronizer) gate(level float32) (drop bool) {
	s.rssi = rssiFromLevel(level)

	lowSignal := s.state == StateSeekPN && s.rssi < s.squelch.thresholdDB
	if !lowSignal {
		s.squelch.timer = s.squelch.timeout
		return false
	}

	switch {
	case s.squelch.timer > 1:
		s.squelch.timer--
		return true
	case s.squelch.timer == 1:
		s.squelch.timer = 0
		s.softReset()
		return true
	default:
		return true
	}
}

// softReset is triggered by squelch timeout while in SEEK_PN (spec.md
// §4.5 "Soft reset"). It does not change the acquisition state.
func (s *Synchronizer) softReset() {
	s.symsync.Clear()
	s.pll.Reset()
	s.openBandwidth()
	s.nco.SetPhase(0)
	s.nco.SetFrequency(0)
	s.logger.Debugf("soft reset (squelch timeout)")
}
