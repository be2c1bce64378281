package ntru

import (
	"fmt"

	"github.com/sv512/ntru/ring"
	"github.com/sv512/ntru/utils/sampling"
)

// maxKeyGenAttempts bounds the resampling loop of GenSecretKey. For a
// well-formed parameter set an invertible f is found within a handful of
// draws; exhausting the budget means the weights make f structurally
// non-invertible (for instance equal counts of +1 and -1, which force
// f(1) = 0 so that x-1 divides f).
const maxKeyGenAttempts = 100

// KeyGenerator is a structure that stores the samplers required to generate
// new key pairs under a fixed set of parameters.
type KeyGenerator struct {
	params   Parameters
	fSampler *ring.TernarySampler
	gSampler *ring.TernarySampler
}

// NewKeyGenerator creates a new KeyGenerator for the given parameters,
// drawing randomness from prng.
func NewKeyGenerator(params Parameters, prng sampling.PRNG) *KeyGenerator {
	fSampler, err := ring.NewTernarySampler(prng, params.RingQ(), params.Df().Ones, params.Df().MinusOnes)
	if err != nil {
		// Sanity check, the weights were validated with the parameters.
		panic(err)
	}
	gSampler, err := ring.NewTernarySampler(prng, params.RingQ(), params.Dg().Ones, params.Dg().MinusOnes)
	if err != nil {
		panic(err)
	}
	return &KeyGenerator{
		params:   params,
		fSampler: fSampler,
		gSampler: gSampler,
	}
}

// GenKeyPair generates a new private key and a public key derived from it.
func (kgen *KeyGenerator) GenKeyPair() (*PrivateKey, *PublicKey, error) {
	sk, err := kgen.GenSecretKey()
	if err != nil {
		return nil, nil, err
	}
	pk, err := kgen.GenPublicKey(sk)
	if err != nil {
		return nil, nil, err
	}
	return sk, pk, nil
}

// GenSecretKey samples trinary polynomials of weight df until one is
// invertible both modulo p and modulo q, then returns it together with its
// two inverses. Returns ErrKeyGenExhausted after maxKeyGenAttempts failed
// draws.
func (kgen *KeyGenerator) GenSecretKey() (*PrivateKey, error) {
	ringP := kgen.params.RingP()
	ringQ := kgen.params.RingQ()

	for i := 0; i < maxKeyGenAttempts; i++ {
		f := kgen.fSampler.ReadNew()

		fp, err := ringP.Inverse(f)
		if err != nil {
			continue
		}
		fq, err := ringQ.Inverse(f)
		if err != nil {
			continue
		}
		return &PrivateKey{F: f, Fp: fp, Fq: fq}, nil
	}
	return nil, fmt.Errorf("%w: no invertible f after %d attempts with df=(%d,%d)",
		ErrKeyGenExhausted, maxKeyGenAttempts, kgen.params.Df().Ones, kgen.params.Df().MinusOnes)
}

// GenPublicKey derives a public key h = p*f_q*g mod q from sk, sampling a
// fresh g of weight dg. g does not need to be invertible, so no retry is
// involved.
func (kgen *KeyGenerator) GenPublicKey(sk *PrivateKey) (*PublicKey, error) {
	if sk.Fq.N() != kgen.params.N() {
		return nil, fmt.Errorf("ntru: private key degree %d does not match parameters ring degree %d", sk.Fq.N(), kgen.params.N())
	}
	ringQ := kgen.params.RingQ()

	g := kgen.gSampler.ReadNew()
	h := ringQ.NewPoly()
	ringQ.MulCoeffs(sk.Fq, g, h)
	ringQ.MulScalar(h, kgen.params.P(), h)
	return &PublicKey{H: h}, nil
}
