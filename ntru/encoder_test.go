package ntru

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {

	params := testParameters(t, NTRU107)
	ecd := NewEncoder(params)
	prng := testPRNG(t, "codec-roundtrip")

	for msgLen := 0; msgLen <= params.MaxMessageBytes(); msgLen++ {
		msg := make([]byte, msgLen)
		_, err := prng.Read(msg)
		require.NoError(t, err)

		pol, err := ecd.EncodeNew(msg)
		require.NoError(t, err)
		for _, c := range pol.Coeffs {
			require.True(t, c >= -1 && c <= 1)
		}

		out, err := ecd.Decode(pol)
		require.NoError(t, err)
		if d := cmp.Diff(msg, out); d != "" {
			t.Fatalf("round trip mismatch at length %d (-want +got):\n%s", msgLen, d)
		}
	}
}

func TestEncodeOversize(t *testing.T) {

	params := testParameters(t, NTRU107)
	ecd := NewEncoder(params)

	msg := make([]byte, params.MaxMessageBytes()+1)
	_, err := ecd.EncodeNew(msg)
	require.ErrorIs(t, err, ErrMessageTooLong)
}

func TestDecodeRejectsMalformed(t *testing.T) {

	params := testParameters(t, NTRU107)
	ecd := NewEncoder(params)

	t.Run("CoefficientOutOfRange", func(t *testing.T) {
		pol, err := ecd.EncodeNew([]byte("abc"))
		require.NoError(t, err)
		pol.Coeffs[0] = 2
		_, err = ecd.Decode(pol)
		require.ErrorIs(t, err, ErrDecryption)
	})

	t.Run("GroupNotAByte", func(t *testing.T) {
		pol, err := ecd.EncodeNew(nil)
		require.NoError(t, err)
		// base-3 value 300: digits 0,1,0,2,0,1 -> trits -1,0,-1,1,-1,0
		copy(pol.Coeffs, []int32{-1, 0, -1, 1, -1, 0})
		_, err = ecd.Decode(pol)
		require.ErrorIs(t, err, ErrDecryption)
	})

	t.Run("PayloadAfterPadding", func(t *testing.T) {
		pol, err := ecd.EncodeNew([]byte{7})
		require.NoError(t, err)
		// second group stays zero padding, third carries a byte again
		for i := 0; i < tritsPerByte; i++ {
			pol.Coeffs[2*tritsPerByte+i] = pol.Coeffs[i]
		}
		_, err = ecd.Decode(pol)
		require.ErrorIs(t, err, ErrDecryption)
	})

	t.Run("NonZeroTail", func(t *testing.T) {
		pol, err := ecd.EncodeNew([]byte{7})
		require.NoError(t, err)
		pol.Coeffs[params.N()-1] = 1
		_, err = ecd.Decode(pol)
		require.ErrorIs(t, err, ErrDecryption)
	})
}

func TestCapacityPerParameterSet(t *testing.T) {

	for _, lit := range []ParametersLiteral{NTRU107, NTRU167, NTRU263, NTRU503} {
		params := testParameters(t, lit)
		t.Run(params.Name(), func(t *testing.T) {
			require.Equal(t, params.N()/tritsPerByte, params.MaxMessageBytes())
		})
	}
}
