package flexsync

// packSymbols groups each run of four 2-bit QPSK symbols into one byte,
// MSB-first (spec.md §3): b = (s0<<6)|(s1<<4)|(s2<<2)|s3.
func packSymbols(syms []byte) []byte {
	out := make([]byte, len(syms)/4)
	for i := range out {
		s0, s1, s2, s3 := syms[4*i], syms[4*i+1], syms[4*i+2], syms[4*i+3]
		out[i] = (s0<<6)&packMaskS0 | (s1<<4)&packMaskS1 | (s2<<2)&packMaskS2 | s3&packMaskS3
	}
	return out
}

// decodeHeader implements spec.md §4.6.
func (s *Synchronizer) decodeHeader() {
	encoded := packSymbols(s.headerSyms[:])
	raw := s.fec.Decode(encoded)
	raw = s.scrambler.Descramble(raw)

	copy(s.lastHeader[:], raw)

	key := uint32(s.lastHeader[HeaderCRCOffset])<<24 |
		uint32(s.lastHeader[HeaderCRCOffset+1])<<16 |
		uint32(s.lastHeader[HeaderCRCOffset+2])<<8 |
		uint32(s.lastHeader[HeaderCRCOffset+3])

	s.headerValid = s.crc.Checksum(s.lastHeader[:HeaderCRCOffset]) == key

	if !s.headerValid {
		s.logger.Errorf("header CRC mismatch")
	}
}

// payloadKey extracts the payload's CRC32 key, carried inside the decoded
// header at HeaderPayloadKeyOffset (spec.md §9 Open Question (b), resolved
// in SPEC_FULL.md).
func (s *Synchronizer) payloadKey() uint32 {
	h := s.lastHeader[HeaderPayloadKeyOffset : HeaderPayloadKeyOffset+4]
	return uint32(h[0])<<24 | uint32(h[1])<<16 | uint32(h[2])<<8 | uint32(h[3])
}

// decodePayload implements spec.md §4.7.
func (s *Synchronizer) decodePayload() {
	encoded := packSymbols(s.payloadSyms[:])
	deinterleaved := s.interleaver.Deinterleave(encoded)
	raw := s.fec.Decode(deinterleaved)
	raw = s.scrambler.Descramble(raw)

	copy(s.lastPayload[:], raw)

	s.payloadValid = s.crc.Checksum(s.lastPayload[:]) == s.payloadKey()

	if !s.payloadValid {
		s.logger.Errorf("payload CRC mismatch")
	}
}
