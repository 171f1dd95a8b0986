package dsp

import "hash/crc32"

// IEEECRC32 wraps the standard library's CRC-32/IEEE implementation. Unlike
// every other facade in this package, no pack repository carries a
// from-scratch CRC32 — hash/crc32 in the standard library already is the
// idiomatic Go way to compute this exact checksum (it's what the
// ecosystem itself reaches for), so wrapping it rather than hand-rolling
// the polynomial table is the grounded choice here; see DESIGN.md.
type IEEECRC32 struct{}

func NewIEEECRC32() *IEEECRC32 { return &IEEECRC32{} }

func (IEEECRC32) Checksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}
