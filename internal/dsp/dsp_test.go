package dsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestHammingFECRoundTrip(t *testing.T) {
	fec := NewHammingFEC()

	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOfN(rapid.Byte(), 1, 64).Draw(t, "raw")

		encoded := fec.Encode(raw)
		assert.Equal(t, len(raw)*2, len(encoded))

		decoded := fec.Decode(encoded)
		assert.Equal(t, raw, decoded)
	})
}

func TestHammingFECCorrectsSingleBitError(t *testing.T) {
	fec := NewHammingFEC()
	raw := []byte{0x5A}
	encoded := fec.Encode(raw)

	for bit := 0; bit < 7; bit++ {
		corrupted := append([]byte(nil), encoded...)
		corrupted[0] ^= 1 << uint(bit)
		decoded := fec.Decode(corrupted)
		assert.Equal(t, raw, decoded, "failed to correct bit %d of byte 0", bit)
	}
}

func TestBlockInterleaverRoundTrip(t *testing.T) {
	bi := NewBlockInterleaver(8, 16)

	rapid.Check(t, func(t *rapid.T) {
		in := rapid.SliceOfN(rapid.Byte(), 128, 128).Draw(t, "in")

		out := bi.Deinterleave(bi.Interleave(in))
		assert.Equal(t, in, out)
	})
}

func TestLFSRScramblerRoundTrip(t *testing.T) {
	s := NewLFSRScrambler()

	rapid.Check(t, func(t *rapid.T) {
		in := rapid.SliceOf(rapid.Byte()).Draw(t, "in")

		scrambled := s.Scramble(in)
		assert.Equal(t, in, s.Descramble(scrambled))
	})
}

func TestScramblerChangesData(t *testing.T) {
	s := NewLFSRScrambler()
	in := make([]byte, 16)
	out := s.Scramble(in)
	assert.NotEqual(t, in, out, "scrambling all-zero data should not be a no-op")
}

func TestIEEECRC32KnownValue(t *testing.T) {
	c := NewIEEECRC32()
	assert.Equal(t, uint32(0xcbf43926), c.Checksum([]byte("123456789")))
}

func TestGeneratePNLength(t *testing.T) {
	pn := GeneratePN()
	assert.Len(t, pn, PNLength)
	for _, v := range pn {
		assert.True(t, v == 1 || v == -1)
	}
}

func TestPNCorrelatorPeaksOnMatch(t *testing.T) {
	pn := GeneratePN()
	c := NewPNCorrelator()

	var rxy float32
	for _, v := range pn {
		bit := 0
		if v > 0 {
			bit = 1
		}
		rxy = c.Step(bit)
	}

	assert.InDelta(t, 1.0, rxy, 1e-6)
}

func TestPNCorrelatorLowBeforeMatch(t *testing.T) {
	c := NewPNCorrelator()
	rxy := c.Step(1)
	assert.Equal(t, float32(0), rxy, "correlator should report 0 until its buffer fills")
}

func TestEnvelopeAGCNormalizesAmplitude(t *testing.T) {
	agc := NewEnvelopeAGC(0.1)
	var lastLevel float32
	for i := 0; i < 2000; i++ {
		_, level := agc.Step(Sample(complex(5.0, 0)))
		lastLevel = level
	}
	assert.Greater(t, lastLevel, float32(0))
}

func TestSecondOrderPLLIntegratesError(t *testing.T) {
	pll := NewSecondOrderPLL(0.01)
	adj1 := pll.Step(0.1)
	adj2 := pll.Step(0.1)
	assert.Greater(t, adj2, adj1, "constant positive error should grow the correction via the integrator")
}

func TestPhaseAccumNCOMixDownUnwindsRotation(t *testing.T) {
	nco := NewPhaseAccumNCO()
	nco.SetFrequency(0.1)

	// Input rotating at the NCO's frequency mixes down to a constant 1.
	for i := 0; i < 50; i++ {
		s, c := math.Sincos(0.1 * float64(i))
		y := nco.Mix(Sample(complex(float32(c), float32(s))))
		assert.InDelta(t, 1, real(y), 1e-4)
		assert.InDelta(t, 0, imag(y), 1e-4)
		nco.Step(0)
	}
	require.NotZero(t, nco.Frequency())
}

func TestBPSKDemodDecision(t *testing.T) {
	d := NewBPSKDemod()
	dec, _ := d.Demodulate(Sample(complex(1, 0)))
	assert.Equal(t, 1, dec)

	dec, _ = d.Demodulate(Sample(complex(-1, 0)))
	assert.Equal(t, 0, dec)
}

func TestQPSKDemodQuadrants(t *testing.T) {
	d := NewQPSKDemod()
	cases := []struct {
		z    Sample
		want int
	}{
		{Sample(complex(1, 1)), 0},
		{Sample(complex(-1, 1)), 1},
		{Sample(complex(-1, -1)), 2},
		{Sample(complex(1, -1)), 3},
	}
	for _, c := range cases {
		dec, _ := d.Demodulate(c.z)
		assert.Equal(t, c.want, dec)
	}
}
