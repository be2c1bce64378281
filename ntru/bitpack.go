package ntru

import (
	"fmt"
)

// Coefficient packing for persisted key material and ciphertexts. Mod-q
// polynomials are packed big-endian at QBits bits per coefficient; trinary
// polynomials are packed five coefficients per byte as base-3 digits
// (3^5 = 243 fits a byte).

// packedLength returns the number of bytes held by n coefficients of the
// given bit width.
func packedLength(n, bitWidth int) int {
	return (n*bitWidth + 7) >> 3
}

// packCoeffs packs the centered mod-q coefficients into out, mapping each
// into [0, q) first. out must have packedLength(len(coeffs), bitWidth) bytes.
func packCoeffs(coeffs []int32, q int32, bitWidth int, out []byte) {
	var acc uint64
	var nbits uint
	idx := 0
	for _, c := range coeffs {
		if c < 0 {
			c += q
		}
		acc = acc<<uint(bitWidth) | uint64(c)
		nbits += uint(bitWidth)
		for nbits >= 8 {
			nbits -= 8
			out[idx] = byte(acc >> nbits)
			idx++
		}
	}
	if nbits > 0 {
		out[idx] = byte(acc << (8 - nbits))
	}
}

// unpackCoeffs reverses packCoeffs, writing centered coefficients on coeffs.
// q is a power of two of exactly bitWidth bits, so every bit pattern is a
// valid coefficient.
func unpackCoeffs(data []byte, q int32, bitWidth int, coeffs []int32) {
	var acc uint64
	var nbits uint
	idx := 0
	mask := uint64(1)<<uint(bitWidth) - 1
	for i := range coeffs {
		for nbits < uint(bitWidth) {
			acc = acc<<8 | uint64(data[idx])
			idx++
			nbits += 8
		}
		nbits -= uint(bitWidth)
		c := int32((acc >> nbits) & mask)
		if c > q>>1 {
			c -= q
		}
		coeffs[i] = c
	}
}

// packedTritsLength returns the number of bytes held by n trinary
// coefficients.
func packedTritsLength(n int) int {
	return (n + 4) / 5
}

// packTrits packs trinary coefficients into out, five per byte. out must
// have packedTritsLength(len(trits)) bytes.
func packTrits(trits []int32, out []byte) error {
	for i := range out {
		out[i] = 0
	}
	pow := [5]int32{1, 3, 9, 27, 81}
	for i, t := range trits {
		if t < -1 || t > 1 {
			return fmt.Errorf("coefficient %d out of trinary range: %d", i, t)
		}
		out[i/5] += byte((t + 1) * pow[i%5])
	}
	return nil
}

// unpackTrits reverses packTrits for n coefficients, rejecting byte values
// that are not valid base-3 packings.
func unpackTrits(data []byte, n int) ([]int32, error) {
	trits := make([]int32, n)
	for i := 0; i < len(data); i++ {
		v := int32(data[i])
		group := 5
		if rem := n - i*5; rem < 5 {
			group = rem
		}
		for j := 0; j < group; j++ {
			trits[i*5+j] = v%3 - 1
			v /= 3
		}
		if v != 0 {
			return nil, fmt.Errorf("invalid trinary packing at byte %d", i)
		}
	}
	return trits, nil
}
