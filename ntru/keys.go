package ntru

import (
	"fmt"

	"github.com/sv512/ntru/ring"
)

// PrivateKey is the NTRUEncrypt secret key: the trinary polynomial f and its
// inverses modulo p and modulo q. The invariants f*Fp = 1 mod p and
// f*Fq = 1 mod q hold for every key produced by the KeyGenerator or by
// ImportPrivateKey.
type PrivateKey struct {
	F  ring.Poly
	Fp ring.Poly
	Fq ring.Poly
}

// PublicKey is the NTRUEncrypt public key h = p*f_q*g mod q, centered.
type PublicKey struct {
	H ring.Poly
}

// Ciphertext is an encrypted message, a polynomial modulo q.
type Ciphertext struct {
	Value ring.Poly
}

// Export serializes the private key. Only f is persisted, trit-packed;
// the inverses are recomputed on import.
func (sk *PrivateKey) Export(params Parameters) ([]byte, error) {
	if sk.F.N() != params.N() {
		return nil, fmt.Errorf("ntru: private key degree %d does not match parameters ring degree %d", sk.F.N(), params.N())
	}
	out := make([]byte, params.PrivateKeyLen())
	if err := packTrits(sk.F.Coeffs, out); err != nil {
		return nil, fmt.Errorf("ntru: invalid private key: %w", err)
	}
	return out, nil
}

// ImportPrivateKey deserializes a private key and recomputes the inverses
// f_p and f_q. Returns an error on a malformed blob or a non-invertible f.
func ImportPrivateKey(params Parameters, data []byte) (*PrivateKey, error) {
	if len(data) != params.PrivateKeyLen() {
		return nil, fmt.Errorf("ntru: invalid private key length %d: expected %d", len(data), params.PrivateKeyLen())
	}
	coeffs, err := unpackTrits(data, params.N())
	if err != nil {
		return nil, fmt.Errorf("ntru: invalid private key: %w", err)
	}
	f := ring.Poly{Coeffs: coeffs}

	fp, err := params.RingP().Inverse(f)
	if err != nil {
		return nil, fmt.Errorf("ntru: invalid private key: %w", err)
	}
	fq, err := params.RingQ().Inverse(f)
	if err != nil {
		return nil, fmt.Errorf("ntru: invalid private key: %w", err)
	}
	return &PrivateKey{F: f, Fp: fp, Fq: fq}, nil
}

// Export serializes the public key, log2(q) bits per coefficient.
func (pk *PublicKey) Export(params Parameters) ([]byte, error) {
	if pk.H.N() != params.N() {
		return nil, fmt.Errorf("ntru: public key degree %d does not match parameters ring degree %d", pk.H.N(), params.N())
	}
	out := make([]byte, params.PublicKeyLen())
	packCoeffs(pk.H.Coeffs, params.Q(), params.QBits(), out)
	return out, nil
}

// ImportPublicKey deserializes a public key.
func ImportPublicKey(params Parameters, data []byte) (*PublicKey, error) {
	if len(data) != params.PublicKeyLen() {
		return nil, fmt.Errorf("ntru: invalid public key length %d: expected %d", len(data), params.PublicKeyLen())
	}
	h := ring.NewPoly(params.N())
	unpackCoeffs(data, params.Q(), params.QBits(), h.Coeffs)
	return &PublicKey{H: h}, nil
}

// Export serializes the ciphertext, log2(q) bits per coefficient.
func (ct *Ciphertext) Export(params Parameters) ([]byte, error) {
	if ct.Value.N() != params.N() {
		return nil, fmt.Errorf("ntru: ciphertext degree %d does not match parameters ring degree %d", ct.Value.N(), params.N())
	}
	out := make([]byte, params.CiphertextLen())
	packCoeffs(ct.Value.Coeffs, params.Q(), params.QBits(), out)
	return out, nil
}

// ImportCiphertext deserializes a ciphertext.
func ImportCiphertext(params Parameters, data []byte) (*Ciphertext, error) {
	if len(data) != params.CiphertextLen() {
		return nil, fmt.Errorf("ntru: invalid ciphertext length %d: expected %d", len(data), params.CiphertextLen())
	}
	c := ring.NewPoly(params.N())
	unpackCoeffs(data, params.Q(), params.QBits(), c.Coeffs)
	return &Ciphertext{Value: c}, nil
}
