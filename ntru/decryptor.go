package ntru

import (
	"fmt"
)

// Decryptor is a structure used to decrypt ciphertexts. It stores the
// private key and is safe for concurrent use: every call works on freshly
// allocated polynomials.
type Decryptor struct {
	params  Parameters
	sk      *PrivateKey
	encoder *Encoder
}

// NewDecryptor instantiates a new Decryptor for the given private key.
func NewDecryptor(params Parameters, sk *PrivateKey) *Decryptor {
	if sk.F.N() != params.N() {
		panic(fmt.Errorf("cannot NewDecryptor: private key degree %d does not match parameters ring degree %d", sk.F.N(), params.N()))
	}
	return &Decryptor{
		params:  params,
		sk:      sk,
		encoder: NewEncoder(params),
	}
}

// Decrypt recovers the plaintext bytes of ct. It evaluates a = f*c with
// coefficients centered modulo q, recenters a modulo p, multiplies by f_p
// modulo p and decodes the resulting trinary polynomial. The centering
// steps are where correctness lives: a coefficient of f*c taken in [0, q)
// instead of (-q/2, q/2] decodes to garbage without any arithmetic error.
// Returns ErrDecryption if the recovered polynomial is not a valid encoding.
func (dec *Decryptor) Decrypt(ct *Ciphertext) ([]byte, error) {
	if ct == nil || ct.Value.N() != dec.params.N() {
		return nil, fmt.Errorf("ntru: ciphertext degree does not match parameters ring degree %d", dec.params.N())
	}

	ringQ := dec.params.RingQ()
	ringP := dec.params.RingP()

	a := ringQ.NewPoly()
	ringQ.MulCoeffs(dec.sk.F, ct.Value, a)
	ringP.Reduce(a, a)

	m := ringP.NewPoly()
	ringP.MulCoeffs(dec.sk.Fp, a, m)

	return dec.encoder.Decode(m)
}
