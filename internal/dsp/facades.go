// Package dsp defines the capability contracts for the synchronizer's
// out-of-scope DSP primitives (spec.md component C2: AGC, symbol
// synchronizer, PLL, NCO, binary-sequence correlator, demodulator, FEC,
// interleaver, CRC32, scrambler) plus one concrete, deterministic
// implementation of each, grounded in the teacher's 9600bps baseband
// demodulator (src/demod_9600.go), its tone generator (src/gen_tone.go) and
// its IL2P Hamming/scrambler pair (src/il2p_crc.go, src/il2p_scramble.go).
//
// Every facade is owned by value inside the synchronizer (spec.md §5,
// §9 "Polymorphic DSP blocks") — there is no shared global state. The
// implementations are not allocation-free: SymSync.Step and the FEC,
// Interleaver and Scrambler methods return newly allocated slices.
package dsp

// Sample is a single-precision complex baseband sample (spec.md §3).
type Sample = complex64

// AGC normalizes sample amplitude and reports instantaneous signal level.
type AGC interface {
	Step(x Sample) (y Sample, level float32)
	SetBandwidth(bw float32)
	Reset()
}

// SymSync recovers symbol timing from an oversampled input stream, emitting
// zero or more interpolated symbols per input sample.
type SymSync interface {
	Step(x Sample) []Sample
	SetBandwidth(bw float32)
	Clear()
}

// PLL is a second-order loop filter driving an NCO from a phase-error
// estimate.
type PLL interface {
	Step(phaseError float32) (freqAdjust float32)
	SetBandwidth(bw float32)
	Reset()
}

// NCO is a numerically controlled oscillator: a phase accumulator that
// mixes an input sample down (or up) by its current phase/frequency.
type NCO interface {
	Mix(x Sample) Sample
	Step(freqAdjust float32)
	SetPhase(phase float32)
	SetFrequency(freq float32)
	Phase() float32
	Frequency() float32
}

// BSync cross-correlates a stream of +/-1 decisions against a fixed binary
// sequence, producing a real-valued correlation each call.
type BSync interface {
	Step(bit int) (rxy float32)
	Reset()
}

// Demod maps a mixed-down complex symbol to a hard decision and a
// phase-error estimate suitable for driving a PLL.
type Demod interface {
	Demodulate(z Sample) (decision int, phaseError float32)

	// IdealPoint returns the noiseless constellation point a given
	// decision corresponds to, used to compute error-vector magnitude.
	IdealPoint(decision int) Sample
}

// FEC decodes (and, for test symmetry, encodes) a byte buffer using a
// fixed-rate forward error-correcting code.
type FEC interface {
	Encode(raw []byte) []byte
	Decode(encoded []byte) []byte
}

// Interleaver permutes a byte buffer to spread burst errors.
type Interleaver interface {
	Interleave(in []byte) []byte
	Deinterleave(in []byte) []byte
}

// CRC32 computes a checksum over a byte buffer.
type CRC32 interface {
	Checksum(data []byte) uint32
}

// Scrambler whitens/de-whitens a data block by XORing it with a linear
// feedback shift register keystream.
type Scrambler interface {
	Scramble(data []byte) []byte
	Descramble(data []byte) []byte
}
