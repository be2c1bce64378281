package ring

import (
	"errors"
)

// ErrNotInvertible is returned when a polynomial has no inverse in the ring.
var ErrNotInvertible = errors.New("polynomial is not invertible in the ring")

// Inverse computes the inverse of p1 in the ring, i.e. the polynomial pInv
// such that p1 * pInv = 1 mod (x^N - 1, modulus). Power-of-two moduli are
// inverted modulo 2 and then Hensel-lifted; any other modulus is assumed to
// be prime and inverted with the almost-inverse algorithm over GF(p)[x].
// Returns ErrNotInvertible if no inverse exists.
func (r *Ring) Inverse(p1 Poly) (Poly, error) {
	r.checkDegree(p1)
	if r.modulus&(r.modulus-1) == 0 {
		return r.inverseModPowerOfTwo(p1)
	}
	return r.inverseModPrime(p1)
}

// inverseModPrime inverts p1 over GF(modulus)[x]/(x^N - 1).
func (r *Ring) inverseModPrime(p1 Poly) (Poly, error) {
	coeffs, err := almostInverse(p1.Coeffs, r.modulus)
	if err != nil {
		return Poly{}, err
	}
	pInv := Poly{Coeffs: coeffs}
	r.Reduce(pInv, pInv)
	return pInv, nil
}

// inverseModPowerOfTwo inverts p1 modulo a power-of-two modulus q. The
// inverse is first computed modulo 2 and then refined by Hensel lifting,
// b <- b*(2 - p1*b), which doubles the number of correct low bits per pass.
// A polynomial is invertible mod q exactly when it is invertible mod 2.
func (r *Ring) inverseModPowerOfTwo(p1 Poly) (Poly, error) {
	coeffs, err := almostInverse(p1.Coeffs, 2)
	if err != nil {
		return Poly{}, err
	}

	pInv := Poly{Coeffs: coeffs}
	t := r.NewPoly()
	for v := int64(2); v < int64(r.modulus); v *= v {
		// t = 2 - p1*pInv mod q
		r.MulCoeffs(p1, pInv, t)
		r.Neg(t, t)
		t.Coeffs[0] = r.CRed(int64(t.Coeffs[0]) + 2)
		r.MulCoeffs(pInv, t, pInv)
	}
	r.Reduce(pInv, pInv)
	return pInv, nil
}

// almostInverse runs the almost-inverse algorithm on the coefficients of a
// over GF(p)[x]/(x^N - 1) for a prime p, maintaining the invariants
// b*a = f*x^k and c*a = g*x^k. When f reaches a nonzero constant f0, the
// inverse is f0^-1 * b * x^(N-k). Coefficients are handled in [0, p).
func almostInverse(a []int32, p int32) ([]int32, error) {
	n := len(a)

	f := make([]int32, n+1)
	g := make([]int32, n+1)
	b := make([]int32, 2*n+2)
	c := make([]int32, 2*n+2)

	for i, v := range a {
		f[i] = umod(v, p)
	}
	g[0] = p - 1
	g[n] = 1
	b[0] = 1

	degF, degG := polyDeg(f, n), n
	if degF < 0 {
		return nil, ErrNotInvertible
	}

	k := 0
	for {
		for f[0] == 0 {
			// f /= x, c *= x
			copy(f, f[1:])
			f[n] = 0
			copy(c[1:], c[:len(c)-1])
			c[0] = 0
			degF--
			k++
			if k > 2*n {
				// f vanished without reaching a constant: a and x^N-1
				// share a common factor.
				return nil, ErrNotInvertible
			}
		}

		if degF == 0 {
			f0Inv := scalarInverse(f[0], p)
			pInv := make([]int32, n)
			shift := (n - k%n) % n
			for i, v := range b {
				if v == 0 {
					continue
				}
				pos := (i + shift) % n
				pInv[pos] = umod(pInv[pos]+f0Inv*v, p)
			}
			return pInv, nil
		}

		if degF < degG {
			f, g = g, f
			b, c = c, b
			degF, degG = degG, degF
		}

		u := umod(f[0]*scalarInverse(g[0], p), p)
		for i := 0; i <= degG; i++ {
			f[i] = umod(f[i]-u*g[i], p)
		}
		for i := range c {
			b[i] = umod(b[i]-u*c[i], p)
		}
		degF = polyDeg(f, degF)
	}
}

// polyDeg returns the degree of f scanning down from the given bound, or -1
// for the zero polynomial.
func polyDeg(f []int32, bound int) int {
	for i := bound; i >= 0; i-- {
		if f[i] != 0 {
			return i
		}
	}
	return -1
}

// scalarInverse returns x^-1 mod p for x in [1, p). The moduli used here are
// tiny, so a linear scan beats carrying an extended-Euclid for integers.
func scalarInverse(x, p int32) int32 {
	for i := int32(1); i < p; i++ {
		if umod(x*i, p) == 1 {
			return i
		}
	}
	return 0
}

// umod reduces x into [0, p).
func umod(x, p int32) int32 {
	x %= p
	if x < 0 {
		x += p
	}
	return x
}
