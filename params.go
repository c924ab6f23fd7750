// params.go - Kyber parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	// SymSize is the size of the shared key (and certain internal parameters
	// such as hashes and seeds) in bytes.
	SymSize = 32

	kyberN = 256

	// polySize is the size in bytes of a serialized (12-bit packed)
	// polynomial.
	polySize = 384
)

var (
	// Kyber512 is the Kyber-512 parameter set, which aims to provide
	// security equivalent to AES-128.
	Kyber512 = newParameterSet("Kyber-512", 2, 3, 2, 10, 4, shakeSymmetric{})

	// Kyber768 is the Kyber-768 parameter set, which aims to provide
	// security equivalent to AES-192.
	Kyber768 = newParameterSet("Kyber-768", 3, 2, 2, 10, 4, shakeSymmetric{})

	// Kyber1024 is the Kyber-1024 parameter set, which aims to provide
	// security equivalent to AES-256.
	Kyber1024 = newParameterSet("Kyber-1024", 4, 2, 2, 11, 5, shakeSymmetric{})

	// Kyber512_90s, Kyber768_90s and Kyber1024_90s are variants of the
	// above three parameter sets that replace SHA-3/SHAKE with the "90s"
	// SHA-2/AES-256-CTR symmetric primitives, for use on platforms with
	// AES-NI but no dedicated Keccak support.
	Kyber512_90s  = newParameterSet("Kyber-512-90s", 2, 3, 2, 10, 4, aes90sSymmetric{})
	Kyber768_90s  = newParameterSet("Kyber-768-90s", 3, 2, 2, 10, 4, aes90sSymmetric{})
	Kyber1024_90s = newParameterSet("Kyber-1024-90s", 4, 2, 2, 11, 5, aes90sSymmetric{})
)

// ParameterSet is a Kyber parameter set.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	du   int
	dv   int

	sym symmetric

	polyVecSize           int
	polyVecCompressedSize int
	polyCompressedSize    int

	indcpaPublicKeySize int
	indcpaSecretKeySize int
	indcpaSize          int

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// PublicKeySize returns the size of a public key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.publicKeySize
}

// PrivateKeySize returns the size of a private key in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.secretKeySize
}

// CipherTextSize returns the size of a cipher text in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

func newParameterSet(name string, k, eta1, eta2, du, dv int, sym symmetric) *ParameterSet {
	var p ParameterSet

	p.name = name
	p.k = k
	p.eta1 = eta1
	p.eta2 = eta2
	p.du = du
	p.dv = dv
	p.sym = sym

	p.polyVecSize = k * polySize
	p.polyVecCompressedSize = k * (kyberN * du / 8)
	p.polyCompressedSize = kyberN * dv / 8

	p.indcpaPublicKeySize = p.polyVecSize + SymSize
	p.indcpaSecretKeySize = p.polyVecSize
	p.indcpaSize = p.polyVecCompressedSize + p.polyCompressedSize

	p.publicKeySize = p.indcpaPublicKeySize
	p.secretKeySize = p.indcpaSecretKeySize + p.indcpaPublicKeySize + 2*SymSize // hash of pk + z
	p.cipherTextSize = p.indcpaSize

	return &p
}

func (p *ParameterSet) allocMatrix() []polyVec {
	m := make([]polyVec, 0, p.k)
	for i := 0; i < p.k; i++ {
		m = append(m, p.allocPolyVec())
	}
	return m
}

func (p *ParameterSet) allocPolyVec() polyVec {
	vec := make([]*poly, 0, p.k)
	for i := 0; i < p.k; i++ {
		vec = append(vec, new(poly))
	}

	return polyVec{vec}
}
