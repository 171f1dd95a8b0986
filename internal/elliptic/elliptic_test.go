package elliptic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLandenBoundedBelowK(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.Float32Range(0.0001, 0.99).Draw(t, "k")

		lam, err := Landen(k)
		require.NoError(t, err)

		assert.GreaterOrEqualf(t, lam, float32(0), "landen(%v) = %v should be >= 0", k, lam)
		assert.Lessf(t, lam, k, "landen(%v) = %v should be < k", k, lam)
	})
}

func TestLandenDomainError(t *testing.T) {
	_, err := Landen(1)
	require.Error(t, err)

	_, err = Landen(-0.1)
	require.Error(t, err)
}

func TestKAtZero(t *testing.T) {
	Kk, Kpk, err := K(0, 5)
	require.NoError(t, err)

	assert.InDelta(t, math.Pi/2, Kk, 1e-4)
	// K'(0) diverges: each Landen step maps k'=1 to 1, doubling K'.
	assert.InDelta(t, math.Pi/2*32, Kpk, 1e-4)
}

func TestKIncreasing(t *testing.T) {
	var prev float32
	for _, k := range []float32{0.1, 0.3, 0.5, 0.7, 0.9} {
		Kk, _, err := K(k, 8)
		require.NoError(t, err)
		assert.Greaterf(t, Kk, prev, "K(%v)=%v should exceed K of smaller modulus", k, Kk)
		prev = Kk
	}
}

func TestKAtHalf(t *testing.T) {
	Kk, _, err := K(0.5, 5)
	require.NoError(t, err)
	assert.InDelta(t, 1.6858, Kk, 1e-3)
}

func TestCdRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.Float32Range(0.0001, 0.99).Draw(t, "k")
		n := rapid.IntRange(1, 10).Draw(t, "n")

		cd0, err := Cd(0, k, n)
		require.NoError(t, err)
		assert.InDelta(t, 1, cd0, 1e-4)
	})
}

func TestCdAtOneConverges(t *testing.T) {
	for _, k := range []float32{0.1, 0.3, 0.5, 0.7, 0.9} {
		cd1, err := Cd(1, k, 8)
		require.NoError(t, err)
		assert.InDelta(t, 0, cd1, 1e-5, "cd(1, %v) should converge to 0 for n>=5", k)
	}
}

func TestDegreeReproducible(t *testing.T) {
	k1, err1 := Degree(5, 0.1, 7)
	k2, err2 := Degree(5, 0.1, 7)
	require.NoError(t, err1)
	require.NoError(t, err2)

	assert.Equal(t, k1, k2, "ellipdeg should be bit-exact across runs")
}

func TestOrderRejectsBadBand(t *testing.T) {
	_, err := Order(0.3, 0.2, 0.1, 40)
	require.Error(t, err)
}
