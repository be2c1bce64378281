package ring

// Poly is the structure that contains the coefficients of a polynomial.
// Coefficient i is the coefficient of x^i; the length is always the ring
// degree N and never changes after allocation.
type Poly struct {
	Coeffs []int32
}

// NewPoly creates a new polynomial with n coefficients set to zero.
func NewPoly(n int) Poly {
	return Poly{Coeffs: make([]int32, n)}
}

// N returns the number of coefficients of the polynomial.
func (pol Poly) N() int {
	return len(pol.Coeffs)
}

// Zero sets all coefficients of the target polynomial to 0.
func (pol Poly) Zero() {
	for i := range pol.Coeffs {
		pol.Coeffs[i] = 0
	}
}

// CopyNew creates an exact copy of the target polynomial.
func (pol Poly) CopyNew() Poly {
	p1 := NewPoly(pol.N())
	copy(p1.Coeffs, pol.Coeffs)
	return p1
}

// Copy copies the coefficients of p1 on the target polynomial.
// Expects the degree of both polynomials to be identical.
func (pol Poly) Copy(p1 Poly) {
	copy(pol.Coeffs, p1.Coeffs)
}

// Equal returns true if the receiver Poly is equal to the provided other Poly.
// This checks for strict coefficient equality, not congruence within a ring.
func (pol Poly) Equal(other Poly) bool {
	if len(pol.Coeffs) != len(other.Coeffs) {
		return false
	}
	for i := range pol.Coeffs {
		if pol.Coeffs[i] != other.Coeffs[i] {
			return false
		}
	}
	return true
}
