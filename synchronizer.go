// Package flexsync implements the flexible frame synchronizer core: a
// streaming receiver that recovers digitally modulated, framed packets
// from a complex baseband sample stream under amplitude drift,
// carrier-frequency/phase offset, symbol-timing offset, and additive
// noise.
//
// The synchronizer owns its DSP primitives exclusively (spec.md §5); one
// instance serves one sample stream from the caller's goroutine. Distinct
// instances share no state and may run concurrently; a single instance
// must not have Execute called concurrently from multiple goroutines.
package flexsync

import (
	"fmt"

	"github.com/doismellburning/flexsync/config"
	"github.com/doismellburning/flexsync/internal/dsp"
	"github.com/doismellburning/flexsync/internal/logging"
)

// Callback is invoked exactly once per frame reaching RX_PAYLOAD
// completion, synchronously inside Execute (spec.md §6).
type Callback func(header [UserHeaderBytes]byte, headerValid bool, payload [PayloadBytes]byte, payloadValid bool, userdata any)

// Synchronizer is the frame synchronizer instance (spec.md §3 "Synchronizer
// state"). Construct with New, feed samples with Execute, and call Close
// when done.
type Synchronizer struct {
	// Owned DSP primitives (C2).
	agc         dsp.AGC
	symsync     dsp.SymSync
	pll         dsp.PLL
	nco         dsp.NCO
	bsync       dsp.BSync
	bpskDemod   dsp.Demod
	qpskDemod   dsp.Demod
	fec         dsp.FEC
	interleaver dsp.Interleaver
	crc         dsp.CRC32
	scrambler   dsp.Scrambler

	regime  *regime
	squelch *squelch

	state FrameState
	rssi  float32

	headerSyms       [HeaderSymbols]byte
	headerCollected  int
	payloadSyms      [PayloadSymbols]byte
	payloadCollected int

	lastHeader   [HeaderBytes]byte
	lastPayload  [PayloadBytes]byte
	headerValid  bool
	payloadValid bool

	callback Callback
	userdata any

	logger *logging.Logger
	debug  *debugRings
}

// Option configures a Synchronizer at construction time.
type Option func(*Synchronizer)

// WithLogger overrides the default no-op logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Synchronizer) { s.logger = l }
}

// WithDebugRings enables the C8 debug trace rings at the given capacity
// (0 uses DefaultRingCapacity).
func WithDebugRings(capacity int) Option {
	return func(s *Synchronizer) {
		if capacity <= 0 {
			capacity = DefaultRingCapacity
		}
		s.debug = newDebugRings(capacity)
	}
}

// New creates a synchronizer instance (spec.md §6 "create"), allocating its
// symbol buffers and DSP objects. callback is invoked once per completed
// frame; userdata is passed through verbatim.
func New(props config.Properties, callback Callback, userdata any, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		agc:         dsp.NewEnvelopeAGC(props.AGCBandwidth0),
		symsync:     dsp.NewGardnerSymSync(props.SymBandwidth0),
		pll:         dsp.NewSecondOrderPLL(props.PLLBandwidth0),
		nco:         dsp.NewPhaseAccumNCO(),
		bsync:       dsp.NewPNCorrelator(),
		bpskDemod:   dsp.NewBPSKDemod(),
		qpskDemod:   dsp.NewQPSKDemod(),
		fec:         dsp.NewHammingFEC(),
		interleaver: dsp.NewBlockInterleaver(8, PayloadEncodedBytes/8),
		crc:         dsp.NewIEEECRC32(),
		scrambler:   dsp.NewLFSRScrambler(),

		regime: newRegime(
			[2]float32{props.AGCBandwidth0, props.AGCBandwidth1},
			[2]float32{props.SymBandwidth0, props.SymBandwidth1},
			[2]float32{props.PLLBandwidth0, props.PLLBandwidth1},
		),
		squelch: newSquelch(props.SquelchThreshold, props.SquelchTimeout),

		state: StateSeekPN,

		callback: callback,
		userdata: userdata,

		logger: logging.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Reset is equivalent to a soft reset plus state <- SEEK_PN (spec.md §6).
func (s *Synchronizer) Reset() {
	s.softReset()
	s.state = StateSeekPN
	s.headerCollected = 0
	s.payloadCollected = 0
	s.bsync.Reset()
}

// Close releases owned resources. Ownership is transitive: all owned DSP
// objects go out of scope with the instance (spec.md §5); Close's only
// remaining job is flushing the debug rings if enabled, and returns that
// dump so the caller can persist it (spec.md §4.8 "dumped ... for offline
// plotting").
func (s *Synchronizer) Close() string {
	if s.debug == nil {
		return ""
	}
	return s.debug.Dump()
}

// Print emits a diagnostic summary of the instance's current state
// (spec.md §6 "print").
func (s *Synchronizer) Print() string {
	return fmt.Sprintf(
		"flexsync: state=%s rssi=%.1fdB acquiring=%v header_collected=%d/%d payload_collected=%d/%d nco_freq=%.5f",
		s.state, s.rssi, s.regime.acquiring,
		s.headerCollected, HeaderSymbols, s.payloadCollected, PayloadSymbols,
		s.nco.Frequency(),
	)
}
