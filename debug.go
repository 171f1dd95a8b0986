package flexsync

import "fmt"

// DefaultRingCapacity is the default size of each debug trace ring
// (spec.md §4.8).
const DefaultRingCapacity = 4096

// ring is a fixed-capacity, lock-free (single-producer) circular buffer
// used by the debug trace facility. Always compiled in, and allocated only
// when debug rings are enabled (spec.md §9 "Debug rings... best expressed
// as a compile-time feature flag"); flexsync expresses that as a nil
// *debugRings rather than a build tag, since the hot-path cost of a nil
// check is already what the rest of the pipeline pays for every optional
// feature.
type ring[T any] struct {
	buf  []T
	pos  int
	full bool
}

func newRing[T any](capacity int) *ring[T] {
	return &ring[T]{buf: make([]T, capacity)}
}

func (r *ring[T]) push(v T) {
	r.buf[r.pos] = v
	r.pos++
	if r.pos == len(r.buf) {
		r.pos = 0
		r.full = true
	}
}

// ordered returns the ring's contents oldest-first.
func (r *ring[T]) ordered() []T {
	if !r.full {
		return append([]T(nil), r.buf[:r.pos]...)
	}
	out := make([]T, 0, len(r.buf))
	out = append(out, r.buf[r.pos:]...)
	out = append(out, r.buf[:r.pos]...)
	return out
}

// debugRings is the seven-ring set spec.md §4.8 names, supplemented with an
// EVM ring per SPEC_FULL.md's reading of flexframesync.c's diagnostics.
type debugRings struct {
	rssi        *ring[float32]
	agcOut      *ring[complex64]
	rawInput    *ring[complex64]
	correlator  *ring[float32]
	ncoOutput   *ring[complex64]
	ncoPhase    *ring[float32]
	ncoFreq     *ring[float32]
	evm         *ring[float32]
}

func newDebugRings(capacity int) *debugRings {
	return &debugRings{
		rssi:       newRing[float32](capacity),
		agcOut:     newRing[complex64](capacity),
		rawInput:   newRing[complex64](capacity),
		correlator: newRing[float32](capacity),
		ncoOutput:  newRing[complex64](capacity),
		ncoPhase:   newRing[float32](capacity),
		ncoFreq:    newRing[float32](capacity),
		evm:        newRing[float32](capacity),
	}
}

// Dump renders the rings as a human-readable gnuplot-style script for
// offline plotting (spec.md §4.8 "dumped as a human-readable script").
func (d *debugRings) Dump() string {
	if d == nil {
		return ""
	}

	out := "# flexsync debug trace dump\n"
	out += dumpSeries("rssi_db", d.rssi.ordered())
	out += dumpSeries("correlator_rxy", d.correlator.ordered())
	out += dumpSeries("nco_phase", d.ncoPhase.ordered())
	out += dumpSeries("nco_freq", d.ncoFreq.ordered())
	out += dumpSeries("evm", d.evm.ordered())
	out += dumpComplexSeries("raw_input", d.rawInput.ordered())
	out += dumpComplexSeries("agc_out", d.agcOut.ordered())
	out += dumpComplexSeries("nco_output", d.ncoOutput.ordered())
	return out
}

func dumpSeries(name string, vals []float32) string {
	out := fmt.Sprintf("# %s\n", name)
	for i, v := range vals {
		out += fmt.Sprintf("%d %g\n", i, v)
	}
	return out
}

func dumpComplexSeries(name string, vals []complex64) string {
	out := fmt.Sprintf("# %s (I Q)\n", name)
	for i, v := range vals {
		out += fmt.Sprintf("%d %g %g\n", i, real(v), imag(v))
	}
	return out
}
