package dsp

// hammingEncode and hammingDecode are the IL2P specification's Hamming
// (7,4) tables, carried over verbatim from the teacher's
// src/il2p_crc.go (il2p_hamming_encode / il2p_hamming_decode), which
// implements the same systematic (7,4) code spec.md names in §4.6/§4.7.
// Each table entry packs one 7-bit codeword into the low bits of a byte.
var hammingEncode = [16]byte{
	0x00, 0x71, 0x62, 0x13, 0x54, 0x25, 0x36, 0x47,
	0x38, 0x49, 0x5a, 0x2b, 0x6c, 0x1d, 0x0e, 0x7f,
}

var hammingDecode = [128]byte{
	0x00, 0x00, 0x00, 0x03, 0x00, 0x05, 0x0e, 0x07,
	0x00, 0x09, 0x0e, 0x0b, 0x0e, 0x0d, 0x0e, 0x0e,
	0x00, 0x03, 0x03, 0x03, 0x04, 0x0d, 0x06, 0x03,
	0x08, 0x0d, 0x0a, 0x03, 0x0d, 0x0d, 0x0e, 0x0d,
	0x00, 0x05, 0x02, 0x0b, 0x05, 0x05, 0x06, 0x05,
	0x08, 0x0b, 0x0b, 0x0b, 0x0c, 0x05, 0x0e, 0x0b,
	0x08, 0x01, 0x06, 0x03, 0x06, 0x05, 0x06, 0x06,
	0x08, 0x08, 0x08, 0x0b, 0x08, 0x0d, 0x06, 0x0f,
	0x00, 0x09, 0x02, 0x07, 0x04, 0x07, 0x07, 0x07,
	0x09, 0x09, 0x0a, 0x09, 0x0c, 0x09, 0x0e, 0x07,
	0x04, 0x01, 0x0a, 0x03, 0x04, 0x04, 0x04, 0x07,
	0x0a, 0x09, 0x0a, 0x0a, 0x04, 0x0d, 0x0a, 0x0f,
	0x02, 0x01, 0x02, 0x02, 0x0c, 0x05, 0x02, 0x07,
	0x0c, 0x09, 0x02, 0x0b, 0x0c, 0x0c, 0x0c, 0x0f,
	0x01, 0x01, 0x02, 0x01, 0x04, 0x01, 0x06, 0x0f,
	0x08, 0x01, 0x0a, 0x0f, 0x0c, 0x0f, 0x0f, 0x0f,
}

// HammingFEC implements FEC by packing each raw nibble into one encoded
// byte (low 7 bits) and correcting single-bit errors on decode, so two
// encoded bytes decode to one raw byte — matching spec.md's 2:1 ratios
// (64 encoded header bytes -> 32 raw, 128 encoded payload bytes -> 64 raw).
type HammingFEC struct{}

func NewHammingFEC() *HammingFEC { return &HammingFEC{} }

func (HammingFEC) Encode(raw []byte) []byte {
	out := make([]byte, 0, len(raw)*2)
	for _, b := range raw {
		out = append(out, hammingEncode[b>>4], hammingEncode[b&0x0f])
	}
	return out
}

func (HammingFEC) Decode(encoded []byte) []byte {
	n := len(encoded) / 2
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		hi := hammingDecode[encoded[2*i]&0x7f]
		lo := hammingDecode[encoded[2*i+1]&0x7f]
		out[i] = hi<<4 | lo
	}
	return out
}
