// Package elliptic implements the elliptic-integral kernel used to design
// the analog prototype of an elliptic (Cauer) matched filter: the complete
// elliptic integrals K/K', the elliptic modulus from a filter's selectivity
// factor, and the Jacobi cd() function, all via Landen's descending
// transformation.
//
// Ported from the design in liquid-dsp's src/filter/src/ellip.c, kept
// single-precision throughout to match the rest of the synchronizer.
package elliptic

import (
	"fmt"
	"math"
)

// DomainError reports an out-of-domain argument to one of the kernel
// functions (e.g. |k| >= 1).
type DomainError struct {
	Func string
	Arg  string
	Val  float32
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("elliptic: %s: %s=%v out of domain", e.Func, e.Arg, e.Val)
}

// Landen computes one step of Landen's descending transformation,
//
//	λ(k) = (1 - sqrt(1-k^2)) / (1 + sqrt(1-k^2))
//
// k must satisfy 0 <= k < 1.
func Landen(k float32) (float32, error) {
	if k < 0 || k >= 1 {
		return 0, &DomainError{Func: "Landen", Arg: "k", Val: k}
	}
	kp := float32(math.Sqrt(float64(1 - k*k)))
	return (1 - kp) / (1 + kp), nil
}

// K computes the complete elliptic integrals K(k) and K'(k) to n Landen
// iterations.
func K(k float32, n int) (Kk, Kpk float32, err error) {
	if k < 0 || k >= 1 {
		return 0, 0, &DomainError{Func: "K", Arg: "k", Val: k}
	}

	ki := k
	kpi := float32(math.Sqrt(float64(1 - k*k)))
	Kk = math.Pi / 2
	Kpk = math.Pi / 2

	// At k = 0, k' = 1 and λ(1) = 1 (K' diverges), so these steps skip
	// Landen's k < 1 domain check.
	step := func(x float32) float32 {
		xp := float32(math.Sqrt(float64(1 - x*x)))
		return (1 - xp) / (1 + xp)
	}

	for i := 0; i < n; i++ {
		ki = step(ki)
		kpi = step(kpi)
		Kk *= 1 + ki
		Kpk *= 1 + kpi
	}

	return Kk, Kpk, nil
}

// Degree computes the elliptic modulus k for a filter of selectivity order N
// given the passband-to-stopband modulus k1, via n Landen iterations.
//
//	k = ellipdeg(N, k1, n)
func Degree(N int, k1 float32, n int) (float32, error) {
	K1, Kp1, err := K(k1, n)
	if err != nil {
		return 0, err
	}

	q1 := math.Exp(-math.Pi * float64(Kp1) / float64(K1))
	q := math.Pow(q1, 1/float64(N))

	var b, a float64
	for m := 0; m < n; m++ {
		b += math.Pow(q, float64(m*(m+1)))
	}
	for m := 1; m < n; m++ {
		a += math.Pow(q, float64(m*m))
	}

	k := 4 * math.Sqrt(q) * math.Pow(b/(1+2*a), 2)
	return float32(k), nil
}

// Cd evaluates the Jacobi elliptic function cd(u, k) to n Landen iterations.
func Cd(u, k float32, n int) (float32, error) {
	if k < 0 || k >= 1 {
		return 0, &DomainError{Func: "Cd", Arg: "k", Val: k}
	}

	w := float32(math.Cos(float64(u) * math.Pi / 2))
	winv := 1 / w

	for i := n; i >= 1; i-- {
		ki := k
		for j := 0; j < i; j++ {
			var err error
			ki, err = Landen(ki)
			if err != nil {
				return 0, err
			}
		}
		oldW, oldWinv := w, winv
		w = 1 / oldWinv
		winv = (oldWinv + ki*oldW) / (1 + ki)
	}

	return 1 / winv, nil
}

// Order estimates the minimum elliptic filter order needed to meet a
// passband edge fp, stopband edge fs (both normalized to [0, 0.5)), a
// passband ripple (dB) and a stopband attenuation (dB). Grounded on
// liquid-dsp's ellipord(); flexsync exposes it as a library capability for
// redesigning the matched filter, not on the synchronizer's hot path (the
// RRC matched-filter parameters are fixed, see the package-level constants
// in the dsp package).
func Order(fp, fs, ripple, atten float32) (int, error) {
	if fp <= 0 || fp >= fs || fs >= 0.5 {
		return 0, &DomainError{Func: "Order", Arg: "fp,fs", Val: fp}
	}

	ep := math.Sqrt(math.Pow(10, float64(ripple)/10) - 1)
	es := math.Sqrt(math.Pow(10, float64(atten)/10) - 1)

	k := float64(fp) / float64(fs)
	k1 := ep / es

	// n ~= K(k) K'(k1) / (K'(k) K(k1)); approximate via asymptotic formula
	// to avoid a second Landen pass keyed on k1's own K'.
	num := math.Log(16 / (k1 * k1))
	den := math.Log(1 / k)
	n := int(math.Ceil(num / den))
	if n < 1 {
		n = 1
	}
	return n, nil
}
