package flexsync

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanFrameRoundTrip(t *testing.T) {
	userHeader, payload := testHeaderAndPayload()

	var gotHeader [UserHeaderBytes]byte
	var gotHeaderValid bool
	var gotPayload [PayloadBytes]byte
	var gotPayloadValid bool
	called := 0

	s := newTestSynchronizer(func(h [UserHeaderBytes]byte, hv bool, p [PayloadBytes]byte, pv bool, _ any) {
		called++
		gotHeader, gotHeaderValid, gotPayload, gotPayloadValid = h, hv, p, pv
	})

	payloadKey := s.crc.Checksum(payload[:])
	copy(userHeader[HeaderPayloadKeyOffset:HeaderPayloadKeyOffset+4], be32(payloadKey)[:])

	driveFrame(s, userHeader, payload, false)

	require.Equal(t, 1, called)
	assert.True(t, gotHeaderValid)
	assert.True(t, gotPayloadValid)
	assert.Equal(t, userHeader, gotHeader)
	assert.Equal(t, payload, gotPayload)
	assert.Equal(t, StateReset, s.state)
}

func TestCorruptedPayloadFailsCRCOnly(t *testing.T) {
	userHeader, payload := testHeaderAndPayload()

	var gotHeaderValid, gotPayloadValid bool
	s := newTestSynchronizer(func(_ [UserHeaderBytes]byte, hv bool, _ [PayloadBytes]byte, pv bool, _ any) {
		gotHeaderValid, gotPayloadValid = hv, pv
	})

	payloadKey := s.crc.Checksum(payload[:])
	copy(userHeader[HeaderPayloadKeyOffset:HeaderPayloadKeyOffset+4], be32(payloadKey)[:])

	driveFrame(s, userHeader, payload, true)

	assert.True(t, gotHeaderValid, "header CRC is independent of payload corruption")
	assert.False(t, gotPayloadValid, "flipped payload bit should fail CRC")
}

func TestTwoBackToBackFrames(t *testing.T) {
	h1, p1 := testHeaderAndPayload()
	h2, p2 := testHeaderAndPayload()
	for i := range p2 {
		p2[i] = byte(255 - i)
	}

	var payloads [][PayloadBytes]byte
	s := newTestSynchronizer(func(_ [UserHeaderBytes]byte, _ bool, p [PayloadBytes]byte, _ bool, _ any) {
		payloads = append(payloads, p)
	})

	k1 := s.crc.Checksum(p1[:])
	copy(h1[HeaderPayloadKeyOffset:HeaderPayloadKeyOffset+4], be32(k1)[:])
	k2 := s.crc.Checksum(p2[:])
	copy(h2[HeaderPayloadKeyOffset:HeaderPayloadKeyOffset+4], be32(k2)[:])

	driveFrame(s, h1, p1, false)
	// RESET -> SEEK_PN consumes one symbol; drive it explicitly before the
	// next frame's preamble.
	s.dispatchSymbol(symbolEvent{})
	driveFrame(s, h2, p2, false)

	require.Len(t, payloads, 2)
	assert.Equal(t, p1, payloads[0])
	assert.Equal(t, p2, payloads[1])
}

func TestSeekPNLocksOnPositiveCorrelationPolarity(t *testing.T) {
	s := newTestSynchronizer(nil)

	for _, v := range pnBitsForLock() {
		s.dispatchSymbol(symbolEvent{decision: v})
	}

	require.Equal(t, StateRXHeader, s.state)
	assert.InDelta(t, float32(math.Pi), s.nco.Phase(), 1e-4)
}

func TestSeekPNLocksOnNegativeCorrelationPolarity(t *testing.T) {
	s := newTestSynchronizer(nil)

	for _, v := range invertedPNBitsForLock() {
		s.dispatchSymbol(symbolEvent{decision: v})
	}

	require.Equal(t, StateRXHeader, s.state, "a phase-inverted correlation peak must still lock")
	assert.InDelta(t, float32(0), s.nco.Phase(), 1e-4)
}

func TestCapacityInvariantHolds(t *testing.T) {
	s := newTestSynchronizer(nil)

	s.state = StateRXHeader
	for i := 0; i < HeaderSymbols+5; i++ {
		s.dispatchSymbol(symbolEvent{decision: 1})
		assert.LessOrEqual(t, s.headerCollected, s.state.capacity())
	}
}

func TestRegimeExactlyOneActive(t *testing.T) {
	s := newTestSynchronizer(nil)

	assert.True(t, s.regime.acquiring)
	s.closeBandwidth()
	assert.False(t, s.regime.acquiring)
	s.openBandwidth()
	assert.True(t, s.regime.acquiring)
}

func TestResetReturnsToSeekPNWithZeroedCounters(t *testing.T) {
	s := newTestSynchronizer(nil)
	s.state = StateRXHeader
	s.headerCollected = 10

	s.Reset()

	assert.Equal(t, StateSeekPN, s.state)
	assert.Equal(t, 0, s.headerCollected)
	assert.Equal(t, 0, s.payloadCollected)
}
