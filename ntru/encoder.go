package ntru

import (
	"fmt"

	"github.com/sv512/ntru/ring"
)

// tritsPerByte is the number of trinary coefficients used to encode one byte:
// 3^6 = 729 covers the 256 byte values.
const tritsPerByte = 6

// padGroupValue is the base-3 value of an all-zero coefficient group
// (every digit equal to 1, i.e. (3^6-1)/2). It is larger than any byte
// value, so zero padding is unambiguously distinguishable from payload and
// the true message length needs no separate length field.
const padGroupValue = 364

// Encoder maps raw bytes to and from trinary polynomials. Each byte becomes
// the six base-3 digits of its value, shifted from {0,1,2} to {-1,0,1};
// coefficients past the payload stay zero. Decode is an exact left inverse
// of Encode for every message within the capacity of the parameter set.
type Encoder struct {
	params Parameters
}

// NewEncoder creates a new Encoder for the given parameters.
func NewEncoder(params Parameters) *Encoder {
	return &Encoder{params: params}
}

// Encode writes the encoding of msg on pol. Returns ErrMessageTooLong if msg
// exceeds the capacity of the parameter set; pol is left untouched in that
// case.
func (ecd Encoder) Encode(msg []byte, pol ring.Poly) error {
	if capacity := ecd.params.MaxMessageBytes(); len(msg) > capacity {
		return fmt.Errorf("%w: %d bytes exceeds the %d byte capacity of %s", ErrMessageTooLong, len(msg), capacity, ecd.params.Name())
	}

	for k, b := range msg {
		v := int32(b)
		for i := 0; i < tritsPerByte; i++ {
			pol.Coeffs[k*tritsPerByte+i] = v%3 - 1
			v /= 3
		}
	}
	for i := len(msg) * tritsPerByte; i < ecd.params.N(); i++ {
		pol.Coeffs[i] = 0
	}
	return nil
}

// EncodeNew allocates a new polynomial and encodes msg on it.
func (ecd Encoder) EncodeNew(msg []byte) (ring.Poly, error) {
	pol := ring.NewPoly(ecd.params.N())
	if err := ecd.Encode(msg, pol); err != nil {
		return ring.Poly{}, err
	}
	return pol, nil
}

// Decode recovers the byte sequence encoded in pol. Returns ErrDecryption if
// any coefficient lies outside {-1, 0, 1}, if a group is neither a byte value
// nor the padding pattern, or if anything follows the first padding group.
func (ecd Encoder) Decode(pol ring.Poly) ([]byte, error) {
	n := ecd.params.N()
	groups := n / tritsPerByte

	msg := make([]byte, 0, groups)
	padding := false
	for k := 0; k < groups; k++ {
		v := int32(0)
		pow := int32(1)
		for i := 0; i < tritsPerByte; i++ {
			t := pol.Coeffs[k*tritsPerByte+i]
			if t < -1 || t > 1 {
				return nil, ErrDecryption
			}
			v += (t + 1) * pow
			pow *= 3
		}
		switch {
		case v == padGroupValue:
			padding = true
		case padding || v > 255:
			return nil, ErrDecryption
		default:
			msg = append(msg, byte(v))
		}
	}

	// The tail that cannot hold a full group must be zero padding.
	for i := groups * tritsPerByte; i < n; i++ {
		if pol.Coeffs[i] != 0 {
			return nil, ErrDecryption
		}
	}
	return msg, nil
}
