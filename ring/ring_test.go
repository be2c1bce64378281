package ring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sv512/ntru/utils/sampling"
)

func testString(opname string, r *Ring) string {
	return fmt.Sprintf("%s/N=%d/modulus=%d", opname, r.N(), r.Modulus())
}

func testPRNG(t *testing.T, seed string) sampling.PRNG {
	prng, err := sampling.NewKeyedPRNG([]byte(seed))
	require.NoError(t, err)
	return prng
}

func TestNewRing(t *testing.T) {

	t.Run("InvalidDegree", func(t *testing.T) {
		_, err := NewRing(0, 7)
		require.Error(t, err)
	})

	t.Run("InvalidModulus", func(t *testing.T) {
		_, err := NewRing(11, 1)
		require.Error(t, err)
	})

	t.Run("Valid", func(t *testing.T) {
		r, err := NewRing(11, 32)
		require.NoError(t, err)
		require.Equal(t, 11, r.N())
		require.Equal(t, int32(32), r.Modulus())
	})
}

func TestRingOperations(t *testing.T) {

	r, err := NewRing(3, 7)
	require.NoError(t, err)

	a := Poly{Coeffs: []int32{1, 2, 0}}
	b := Poly{Coeffs: []int32{3, 1, 0}}

	t.Run(testString("Add", r), func(t *testing.T) {
		out := r.NewPoly()
		r.Add(a, b, out)
		require.Equal(t, []int32{-3, 3, 0}, out.Coeffs)
	})

	t.Run(testString("Sub", r), func(t *testing.T) {
		out := r.NewPoly()
		r.Sub(a, b, out)
		require.Equal(t, []int32{-2, 1, 0}, out.Coeffs)
	})

	t.Run(testString("Neg", r), func(t *testing.T) {
		out := r.NewPoly()
		r.Neg(a, out)
		require.Equal(t, []int32{-1, -2, 0}, out.Coeffs)
	})

	t.Run(testString("MulCoeffs", r), func(t *testing.T) {
		// (1+2x)(3+x) = 3 + 7x + 2x^2 = 3 + 2x^2 mod 7
		out := r.NewPoly()
		r.MulCoeffs(a, b, out)
		require.Equal(t, []int32{3, 0, 2}, out.Coeffs)
	})

	t.Run(testString("MulCoeffsWrapAround", r), func(t *testing.T) {
		// x^2 * x^2 = x^4 = x mod (x^3 - 1)
		x2 := Poly{Coeffs: []int32{0, 0, 1}}
		out := r.NewPoly()
		r.MulCoeffs(x2, x2, out)
		require.Equal(t, []int32{0, 1, 0}, out.Coeffs)
	})

	t.Run(testString("MulCoeffsZero", r), func(t *testing.T) {
		out := r.NewPoly()
		r.MulCoeffs(a, r.NewPoly(), out)
		require.Equal(t, []int32{0, 0, 0}, out.Coeffs)
	})

	t.Run(testString("MulScalar", r), func(t *testing.T) {
		c := Poly{Coeffs: []int32{1, -1, 2}}
		out := r.NewPoly()
		r.MulScalar(c, 5, out)
		require.Equal(t, []int32{-2, 2, 3}, out.Coeffs)
	})
}

func TestReduceSymmetricRange(t *testing.T) {

	r, err := NewRing(4, 32)
	require.NoError(t, err)

	p := Poly{Coeffs: []int32{31, -17, 16, -16}}
	out := r.NewPoly()
	r.Reduce(p, out)
	// symmetric representative range of 32 is (-16, 16]
	require.Equal(t, []int32{-1, 15, 16, 16}, out.Coeffs)

	r3, err := NewRing(4, 3)
	require.NoError(t, err)
	p = Poly{Coeffs: []int32{2, -2, 4, -4}}
	out = r3.NewPoly()
	r3.Reduce(p, out)
	require.Equal(t, []int32{-1, 1, 1, -1}, out.Coeffs)
}

func TestMulDeterminism(t *testing.T) {

	r, err := NewRing(107, 64)
	require.NoError(t, err)

	ts, err := NewTernarySampler(testPRNG(t, "determinism"), r, 15, 14)
	require.NoError(t, err)

	a, b := ts.ReadNew(), ts.ReadNew()
	out0, out1 := r.NewPoly(), r.NewPoly()
	r.MulCoeffs(a, b, out0)
	r.MulCoeffs(a, b, out1)
	require.True(t, out0.Equal(out1))
}

func TestTernarySampler(t *testing.T) {

	r, err := NewRing(107, 64)
	require.NoError(t, err)

	t.Run(testString("FixedWeight", r), func(t *testing.T) {
		ts, err := NewTernarySampler(testPRNG(t, "weight"), r, 15, 14)
		require.NoError(t, err)

		for i := 0; i < 16; i++ {
			pol := ts.ReadNew()
			var ones, minusOnes int
			for _, c := range pol.Coeffs {
				switch c {
				case 1:
					ones++
				case -1:
					minusOnes++
				case 0:
				default:
					t.Fatalf("coefficient %d outside trinary range", c)
				}
			}
			require.Equal(t, 15, ones)
			require.Equal(t, 14, minusOnes)
		}
	})

	t.Run(testString("Deterministic", r), func(t *testing.T) {
		ts0, err := NewTernarySampler(testPRNG(t, "same-seed"), r, 15, 14)
		require.NoError(t, err)
		ts1, err := NewTernarySampler(testPRNG(t, "same-seed"), r, 15, 14)
		require.NoError(t, err)
		require.True(t, ts0.ReadNew().Equal(ts1.ReadNew()))

		ts2, err := NewTernarySampler(testPRNG(t, "other-seed"), r, 15, 14)
		require.NoError(t, err)
		require.False(t, ts0.ReadNew().Equal(ts2.ReadNew()))
	})

	t.Run(testString("InvalidWeight", r), func(t *testing.T) {
		_, err := NewTernarySampler(testPRNG(t, "invalid"), r, 60, 60)
		require.Error(t, err)
		_, err = NewTernarySampler(testPRNG(t, "invalid"), r, -1, 0)
		require.Error(t, err)
	})
}

func TestInverse(t *testing.T) {

	n := 107

	// f(1) = 1 keeps f free of the x-1 factor of x^N-1, which would make it
	// singular under every modulus.
	sampleCandidate := func(t *testing.T, r *Ring, seed string) Poly {
		ts, err := NewTernarySampler(testPRNG(t, seed), r, 15, 14)
		require.NoError(t, err)
		return ts.ReadNew()
	}

	identity := func(n int) Poly {
		p := NewPoly(n)
		p.Coeffs[0] = 1
		return p
	}

	for _, modulus := range []int32{2, 3, 32, 2048} {

		r, err := NewRing(n, modulus)
		require.NoError(t, err)

		t.Run(testString("Inverse", r), func(t *testing.T) {

			var f, fInv Poly
			var errInv error
			for i := 0; i < 32; i++ {
				f = sampleCandidate(t, r, fmt.Sprintf("inverse-%d-%d", modulus, i))
				if fInv, errInv = r.Inverse(f); errInv == nil {
					break
				}
			}
			require.NoError(t, errInv)

			out := r.NewPoly()
			r.MulCoeffs(f, fInv, out)
			require.True(t, out.Equal(identity(n)), "f * f^-1 != 1 mod %d", modulus)
		})

		t.Run(testString("NotInvertible", r), func(t *testing.T) {
			// x - 1 divides x^N - 1, so it can never be a unit.
			f := NewPoly(n)
			f.Coeffs[0] = -1
			f.Coeffs[1] = 1
			_, err := r.Inverse(f)
			require.ErrorIs(t, err, ErrNotInvertible)

			_, err = r.Inverse(NewPoly(n))
			require.ErrorIs(t, err, ErrNotInvertible)
		})
	}
}
