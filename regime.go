package flexsync

// regime tracks which of the two bandwidth presets (acquisition/tracking)
// is active. openBandwidth and closeBandwidth (spec.md §4.2) are the only
// path that may mutate loop bandwidths once the instance is constructed —
// this is what guarantees "exactly one regime is active" (spec.md §3).
type regime struct {
	acquiring bool

	agcBandwidths [2]float32
	symBandwidths [2]float32
	pllBandwidths [2]float32
}

func newRegime(agc, sym, pll [2]float32) *regime {
	return &regime{acquiring: true, agcBandwidths: agc, symBandwidths: sym, pllBandwidths: pll}
}

// openBandwidth switches to the wide acquisition preset.
func (s *Synchronizer) openBandwidth() {
	s.regime.acquiring = true
	s.agc.SetBandwidth(s.regime.agcBandwidths[0])
	s.symsync.SetBandwidth(s.regime.symBandwidths[0])
	s.pll.SetBandwidth(s.regime.pllBandwidths[0])
}

// closeBandwidth switches to the narrow tracking preset.
func (s *Synchronizer) closeBandwidth() {
	s.regime.acquiring = false
	s.agc.SetBandwidth(s.regime.agcBandwidths[1])
	s.symsync.SetBandwidth(s.regime.symBandwidths[1])
	s.pll.SetBandwidth(s.regime.pllBandwidths[1])
}
