package ntru

import (
	"fmt"
	"math/bits"

	"github.com/sv512/ntru/ring"
)

// Weight fixes the number of +1 and -1 coefficients of a sampled trinary
// polynomial; the remaining coefficients are zero.
type Weight struct {
	Ones      int
	MinusOnes int
}

// ParametersLiteral is a literal representation of NTRUEncrypt parameters. It
// has public fields and is used to express sets of parameters in code, to be
// validated and compiled into a Parameters struct with
// NewParametersFromLiteral.
type ParametersLiteral struct {
	Name string
	N    int   // ring degree
	P    int32 // small modulus, coprime with Q
	Q    int32 // large modulus, a power of two
	Df   Weight
	Dg   Weight
	Dr   Weight
}

// Predefined parameter sets. N, q and the weights follow the classic
// NTRUEncrypt instantiations with a trinary private key f.
var (
	NTRU107 = ParametersLiteral{Name: "ntru-107", N: 107, P: 3, Q: 64,
		Df: Weight{15, 14}, Dg: Weight{12, 12}, Dr: Weight{5, 5}}

	NTRU167 = ParametersLiteral{Name: "ntru-167", N: 167, P: 3, Q: 128,
		Df: Weight{61, 60}, Dg: Weight{20, 20}, Dr: Weight{18, 18}}

	NTRU263 = ParametersLiteral{Name: "ntru-263", N: 263, P: 3, Q: 128,
		Df: Weight{50, 49}, Dg: Weight{24, 24}, Dr: Weight{16, 16}}

	NTRU503 = ParametersLiteral{Name: "ntru-503", N: 503, P: 3, Q: 256,
		Df: Weight{216, 215}, Dg: Weight{72, 72}, Dr: Weight{55, 55}}

	// DefaultParameters is the set used by the command line tool.
	DefaultParameters = NTRU503
)

// Parameters represents a validated, immutable set of NTRUEncrypt parameters.
// It is constructed once and passed by value into every component; nothing in
// the engine mutates it afterwards.
type Parameters struct {
	name       string
	n          int
	p, q       int32
	df, dg, dr Weight
	ringP      *ring.Ring
	ringQ      *ring.Ring
}

// NewParametersFromLiteral instantiates a set of Parameters from a
// ParametersLiteral, checking its consistency: q must be a power of two, p an
// odd modulus coprime with q, and no weight may exceed the ring degree.
func NewParametersFromLiteral(lit ParametersLiteral) (Parameters, error) {
	if lit.N < 1 {
		return Parameters{}, fmt.Errorf("invalid ring degree (N=%d): must be at least 1", lit.N)
	}
	if lit.Q < 4 || lit.Q&(lit.Q-1) != 0 {
		return Parameters{}, fmt.Errorf("invalid modulus (q=%d): must be a power of two, at least 4", lit.Q)
	}
	if lit.P < 3 || lit.P&1 == 0 {
		return Parameters{}, fmt.Errorf("invalid modulus (p=%d): must be odd and at least 3 to be coprime with q", lit.P)
	}
	for _, w := range []struct {
		name string
		w    Weight
	}{{"df", lit.Df}, {"dg", lit.Dg}, {"dr", lit.Dr}} {
		if w.w.Ones < 0 || w.w.MinusOnes < 0 || w.w.Ones+w.w.MinusOnes > lit.N {
			return Parameters{}, fmt.Errorf("invalid weight %s=(%d,%d) for ring degree %d", w.name, w.w.Ones, w.w.MinusOnes, lit.N)
		}
	}

	ringP, err := ring.NewRing(lit.N, lit.P)
	if err != nil {
		return Parameters{}, err
	}
	ringQ, err := ring.NewRing(lit.N, lit.Q)
	if err != nil {
		return Parameters{}, err
	}

	return Parameters{
		name:  lit.Name,
		n:     lit.N,
		p:     lit.P,
		q:     lit.Q,
		df:    lit.Df,
		dg:    lit.Dg,
		dr:    lit.Dr,
		ringP: ringP,
		ringQ: ringQ,
	}, nil
}

// Name returns the name of the parameter set.
func (p Parameters) Name() string {
	return p.name
}

// N returns the ring degree.
func (p Parameters) N() int {
	return p.n
}

// P returns the small modulus.
func (p Parameters) P() int32 {
	return p.p
}

// Q returns the large modulus.
func (p Parameters) Q() int32 {
	return p.q
}

// QBits returns the number of bits of a coefficient modulo q.
func (p Parameters) QBits() int {
	return bits.Len32(uint32(p.q - 1))
}

// Df returns the weight of the private polynomial f.
func (p Parameters) Df() Weight {
	return p.df
}

// Dg returns the weight of the key generation polynomial g.
func (p Parameters) Dg() Weight {
	return p.dg
}

// Dr returns the weight of the per-message blinding polynomial r.
func (p Parameters) Dr() Weight {
	return p.dr
}

// RingP returns the ring of degree N modulo p.
func (p Parameters) RingP() *ring.Ring {
	return p.ringP
}

// RingQ returns the ring of degree N modulo q.
func (p Parameters) RingQ() *ring.Ring {
	return p.ringQ
}

// MaxMessageBytes returns the plaintext byte capacity of the parameter set.
func (p Parameters) MaxMessageBytes() int {
	return p.n / tritsPerByte
}

// PublicKeyLen returns the byte length of an exported public key.
func (p Parameters) PublicKeyLen() int {
	return packedLength(p.n, p.QBits())
}

// PrivateKeyLen returns the byte length of an exported private key.
func (p Parameters) PrivateKeyLen() int {
	return packedTritsLength(p.n)
}

// CiphertextLen returns the byte length of an exported ciphertext.
func (p Parameters) CiphertextLen() int {
	return packedLength(p.n, p.QBits())
}

// Description is the informational report of a parameter set.
type Description struct {
	Name            string
	N               int
	P               int32
	Q               int32
	MaxMessageBytes int
	Df, Dg, Dr      Weight
	PublicKeyLen    int
	PrivateKeyLen   int
	CiphertextLen   int
}

// Describe reports the fixed values of the parameter set.
func (p Parameters) Describe() Description {
	return Description{
		Name:            p.name,
		N:               p.n,
		P:               p.p,
		Q:               p.q,
		MaxMessageBytes: p.MaxMessageBytes(),
		Df:              p.df,
		Dg:              p.dg,
		Dr:              p.dr,
		PublicKeyLen:    p.PublicKeyLen(),
		PrivateKeyLen:   p.PrivateKeyLen(),
		CiphertextLen:   p.CiphertextLen(),
	}
}
