package ntru

import (
	"fmt"

	"github.com/sv512/ntru/ring"
	"github.com/sv512/ntru/utils/sampling"
)

// Encryptor is a structure used to encrypt messages under a public key. It
// holds no mutable state besides the stream position of its PRNG, so
// distinct Encryptor instances can run concurrently.
type Encryptor struct {
	params   Parameters
	pk       *PublicKey
	encoder  *Encoder
	rSampler *ring.TernarySampler
}

// NewEncryptor instantiates a new Encryptor for the given public key,
// drawing the per-message blinding polynomials from prng.
func NewEncryptor(params Parameters, pk *PublicKey, prng sampling.PRNG) *Encryptor {
	if pk.H.N() != params.N() {
		panic(fmt.Errorf("cannot NewEncryptor: public key degree %d does not match parameters ring degree %d", pk.H.N(), params.N()))
	}
	rSampler, err := ring.NewTernarySampler(prng, params.RingQ(), params.Dr().Ones, params.Dr().MinusOnes)
	if err != nil {
		// Sanity check, the weights were validated with the parameters.
		panic(err)
	}
	return &Encryptor{
		params:   params,
		pk:       pk,
		encoder:  NewEncoder(params),
		rSampler: rSampler,
	}
}

// Encrypt encodes msg and returns the ciphertext c = r*h + m mod q, with r a
// fresh trinary blinding polynomial of weight dr. The blinding polynomial is
// discarded after use. Returns ErrMessageTooLong if msg exceeds the capacity
// of the parameter set.
func (enc *Encryptor) Encrypt(msg []byte) (*Ciphertext, error) {
	m, err := enc.encoder.EncodeNew(msg)
	if err != nil {
		return nil, err
	}

	ringQ := enc.params.RingQ()
	r := enc.rSampler.ReadNew()
	c := ringQ.NewPoly()
	ringQ.MulCoeffs(r, enc.pk.H, c)
	ringQ.Add(c, m, c)
	return &Ciphertext{Value: c}, nil
}
