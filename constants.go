package flexsync

// On-the-wire constants from spec.md §9, hardcoded and bit-exact for
// interoperability.
const (
	PNSymbols      = 64  // preamble length in BPSK symbols
	HeaderSymbols  = 256 // QPSK symbols carrying the 32-byte header
	PayloadSymbols = 512 // QPSK symbols carrying the 64-byte payload

	HeaderEncodedBytes  = HeaderSymbols / 4  // 64 bytes after 4-symbols-per-byte packing
	HeaderBytes         = 32                 // 28 user bytes + 4 CRC bytes, after Hamming decode
	PayloadEncodedBytes = PayloadSymbols / 4 // 128 interleaved bytes after packing
	PayloadBytes        = 64                 // after deinterleave + Hamming decode

	UserHeaderBytes = 28

	// HeaderPayloadKeyOffset is where the payload's CRC32 key is carried
	// within the decoded 32-byte header. Resolves spec.md §9's Open
	// Question (b): the header's own CRC is unambiguously at [28:32]; the
	// payload key is carried earlier, at [24:28], within the 28
	// user-visible bytes (see SPEC_FULL.md "SUPPLEMENTED FEATURES").
	HeaderPayloadKeyOffset = 24
	HeaderCRCOffset        = 28

	// CorrelatorPeakThreshold is the strict (not >=) threshold on |rxy| at
	// which a PN correlation peak is accepted, spec.md §4.5. Both
	// polarities lock: a receiver may converge to either phase of the
	// BPSK preamble, which is exactly what the post-lock pi-phase
	// rotation in handleSeekPN corrects for.
	CorrelatorPeakThreshold = 0.7

	// Packed-symbol masks, MSB-first packing of four 2-bit QPSK symbols
	// into one byte (spec.md §3).
	packMaskS0 = 0xc0
	packMaskS1 = 0x30
	packMaskS2 = 0x0c
	packMaskS3 = 0x03
)
