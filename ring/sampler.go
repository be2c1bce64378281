package ring

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/sv512/ntru/utils"
	"github.com/sv512/ntru/utils/sampling"
)

// TernarySampler keeps the state of a polynomial sampler for the fixed-weight
// trinary distribution: exactly `ones` coefficients equal to 1 and
// `minusOnes` coefficients equal to -1, at positions chosen uniformly at
// random without replacement, every other coefficient zero.
type TernarySampler struct {
	prng      sampling.PRNG
	baseRing  *Ring
	ones      int
	minusOnes int
}

// NewTernarySampler creates a new instance of TernarySampler from a PRNG, the
// ring definition and the weight of each sign.
func NewTernarySampler(prng sampling.PRNG, baseRing *Ring, ones, minusOnes int) (*TernarySampler, error) {
	if ones < 0 || minusOnes < 0 {
		return nil, fmt.Errorf("invalid weight (+1:%d, -1:%d): counts cannot be negative", ones, minusOnes)
	}
	if ones+minusOnes > baseRing.N() {
		return nil, fmt.Errorf("invalid weight (+1:%d, -1:%d): exceeds ring degree %d", ones, minusOnes, baseRing.N())
	}
	return &TernarySampler{
		prng:      prng,
		baseRing:  baseRing,
		ones:      ones,
		minusOnes: minusOnes,
	}, nil
}

// Read samples a polynomial into pol, overwriting every coefficient.
func (ts *TernarySampler) Read(pol Poly) {
	n := ts.baseRing.N()
	hw := utils.Min(ts.ones+ts.minusOnes, n)

	index := make([]int, n)
	for i := range index {
		index[i] = i
	}

	for i := 0; i < hw; i++ {
		// rejection sampling of a random position in [0, len(index))
		mask := uint64(1)<<bits.Len64(uint64(n-i)) - 1
		j := randInt32(ts.prng, mask)
		for j >= uint64(n-i) {
			j = randInt32(ts.prng, mask)
		}

		coeff := int32(1)
		if i >= ts.ones {
			coeff = -1
		}
		pol.Coeffs[index[j]] = coeff

		// Remove the element in position j of the slice (order not preserved)
		index[j] = index[len(index)-1]
		index = index[:len(index)-1]
	}

	for _, i := range index {
		pol.Coeffs[i] = 0
	}
}

// ReadNew allocates and samples a new polynomial.
func (ts *TernarySampler) ReadNew() Poly {
	pol := ts.baseRing.NewPoly()
	ts.Read(pol)
	return pol
}

func randInt32(prng sampling.PRNG, mask uint64) uint64 {
	var b [4]byte
	if _, err := prng.Read(b[:]); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return mask & uint64(binary.BigEndian.Uint32(b[:]))
}
