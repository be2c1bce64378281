// Package ring implements arithmetic in the truncated polynomial ring
// Z[x]/(x^N - 1) with coefficients reduced modulo a fixed integer modulus.
// Multiplication is the cyclic convolution of the coefficient vectors, and
// every operation writes coefficients in the symmetric representative range
// (-modulus/2, modulus/2].
package ring

import (
	"fmt"
)

// Ring is a structure that keeps the degree and the modulus of the quotient
// ring Z[x]/(x^N - 1). It holds no mutable state: a single Ring can be used
// concurrently by any number of operations.
type Ring struct {
	n       int
	modulus int32
}

// NewRing creates a new Ring of degree n with the given coefficient modulus.
// Returns an error if n < 1 or if the modulus is smaller than 2.
func NewRing(n int, modulus int32) (*Ring, error) {
	if n < 1 {
		return nil, fmt.Errorf("invalid ring degree (n=%d): must be at least 1", n)
	}
	if modulus < 2 {
		return nil, fmt.Errorf("invalid modulus (m=%d): must be at least 2", modulus)
	}
	return &Ring{n: n, modulus: modulus}, nil
}

// N returns the ring degree.
func (r *Ring) N() int {
	return r.n
}

// Modulus returns the coefficient modulus of the ring.
func (r *Ring) Modulus() int32 {
	return r.modulus
}

// NewPoly creates a new polynomial of the ring degree with all coefficients set to 0.
func (r *Ring) NewPoly() Poly {
	return NewPoly(r.n)
}

// CRed reduces x modulo the ring modulus into the symmetric representative
// range (-modulus/2, modulus/2].
func (r *Ring) CRed(x int64) int32 {
	m := int64(r.modulus)
	v := x % m
	if v < 0 {
		v += m
	}
	if v > m>>1 {
		v -= m
	}
	return int32(v)
}

func (r *Ring) checkDegree(ops ...Poly) {
	for _, op := range ops {
		if op.N() != r.n {
			panic(fmt.Errorf("polynomial degree %d does not match ring degree %d", op.N(), r.n))
		}
	}
}

// Add evaluates p3 = p1 + p2 coefficient-wise modulo the ring modulus.
func (r *Ring) Add(p1, p2, p3 Poly) {
	r.checkDegree(p1, p2, p3)
	for i := 0; i < r.n; i++ {
		p3.Coeffs[i] = r.CRed(int64(p1.Coeffs[i]) + int64(p2.Coeffs[i]))
	}
}

// Sub evaluates p3 = p1 - p2 coefficient-wise modulo the ring modulus.
func (r *Ring) Sub(p1, p2, p3 Poly) {
	r.checkDegree(p1, p2, p3)
	for i := 0; i < r.n; i++ {
		p3.Coeffs[i] = r.CRed(int64(p1.Coeffs[i]) - int64(p2.Coeffs[i]))
	}
}

// Neg evaluates p2 = -p1 modulo the ring modulus.
func (r *Ring) Neg(p1, p2 Poly) {
	r.checkDegree(p1, p2)
	for i := 0; i < r.n; i++ {
		p2.Coeffs[i] = r.CRed(-int64(p1.Coeffs[i]))
	}
}

// MulCoeffs evaluates p3 = p1 * p2 in the ring, i.e. the cyclic convolution
// p3[k] = sum_j p1[j]*p2[(k-j) mod N], each coefficient reduced modulo the
// ring modulus. The schoolbook convolution is quadratic in N, which is
// acceptable for the small degrees used here; the contract only fixes the
// result, so a transform-based multiplication can be substituted.
func (r *Ring) MulCoeffs(p1, p2, p3 Poly) {
	r.checkDegree(p1, p2, p3)
	n := r.n
	acc := make([]int64, n)
	for i := 0; i < n; i++ {
		c := int64(p1.Coeffs[i])
		if c == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			k := i + j
			if k >= n {
				k -= n
			}
			acc[k] += c * int64(p2.Coeffs[j])
		}
	}
	for i := 0; i < n; i++ {
		p3.Coeffs[i] = r.CRed(acc[i])
	}
}

// MulScalar evaluates p2 = p1 * scalar modulo the ring modulus.
func (r *Ring) MulScalar(p1 Poly, scalar int32, p2 Poly) {
	r.checkDegree(p1, p2)
	for i := 0; i < r.n; i++ {
		p2.Coeffs[i] = r.CRed(int64(p1.Coeffs[i]) * int64(scalar))
	}
}

// Reduce maps every coefficient of p1 into the symmetric representative
// range of the ring modulus and writes the result on p2. It is the entry
// point for re-interpreting a polynomial of a larger ring modulo a smaller
// modulus, so it only requires matching degrees.
func (r *Ring) Reduce(p1, p2 Poly) {
	r.checkDegree(p1, p2)
	for i := 0; i < r.n; i++ {
		p2.Coeffs[i] = r.CRed(int64(p1.Coeffs[i]))
	}
}
