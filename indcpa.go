// indcpa.go - Kyber IND-CPA encryption.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "io"

// packPublicKey serializes the public key as the concatenation of the
// (uncompressed, 12-bit packed) polynomial vector t-hat and the public
// seed used to generate the matrix A.
func packPublicKey(r []byte, t *polyVec, seed []byte) {
	t.toBytes(r)
	copy(r[len(t.vec)*polySize:], seed[:SymSize])
}

// unpackPublicKey deserializes a public key; approximate inverse of
// packPublicKey.
func unpackPublicKey(t *polyVec, seed, packedPk []byte) {
	t.fromBytes(packedPk)

	off := len(t.vec) * polySize
	copy(seed, packedPk[off:off+SymSize])
}

// packCiphertext serializes the ciphertext as the concatenation of the
// compressed vector b and the compressed polynomial v.
func packCiphertext(r []byte, b *polyVec, v *poly, du, dv int) {
	b.compress(r, du)
	v.compress(r[b.compressedSize(du):], dv)
}

// unpackCiphertext deserializes a ciphertext; approximate inverse of
// packCiphertext.
func unpackCiphertext(b *polyVec, v *poly, c []byte, du, dv int) {
	b.decompress(c, du)
	v.decompress(c[b.compressedSize(du):], dv)
}

func (v *polyVec) compressedSize(d int) int {
	return len(v.vec) * (kyberN * d / 8)
}

// indcpaPublicKey is the deserialized form of a Kyber public key, plus the
// cached H(pk) used by the KEM's multitarget countermeasure.
type indcpaPublicKey struct {
	packed []byte
	h      [SymSize]byte
}

func (pk *indcpaPublicKey) toBytes() []byte {
	return pk.packed
}

func (pk *indcpaPublicKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaPublicKeySize {
		return ErrInvalidKeySize
	}

	pk.packed = make([]byte, len(b))
	copy(pk.packed, b)
	p.sym.hashH(pk.h[:], b)

	return nil
}

type indcpaSecretKey struct {
	packed []byte
}

func (sk *indcpaSecretKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaSecretKeySize {
		return ErrInvalidKeySize
	}

	sk.packed = make([]byte, len(b))
	copy(sk.packed, b)

	return nil
}

// indcpaKeyPair generates a public/private key pair for the CPA-secure
// public-key encryption scheme underlying Kyber.
func (p *ParameterSet) indcpaKeyPair(rng io.Reader) (*indcpaPublicKey, *indcpaSecretKey, error) {
	var d [SymSize]byte
	if _, err := io.ReadFull(rng, d[:]); err != nil {
		return nil, nil, ErrRandomBytesGeneration
	}

	// The module rank k is mixed into the seed expansion, matching the
	// primary algorithm description (and ML-KEM compatibility); see
	// DESIGN.md for the rationale.
	seedIn := append(d[:0:0], d[:]...)
	seedIn = append(seedIn, byte(p.k))

	var seedOut [2 * SymSize]byte
	p.sym.hashG(seedOut[:], seedIn)
	publicSeed, noiseSeed := seedOut[:SymSize], seedOut[SymSize:]

	a := p.allocMatrix()
	genMatrix(p.sym, a, publicSeed, false)

	var nonce byte
	skpv := p.allocPolyVec()
	for _, pv := range skpv.vec {
		pv.getNoise(p.sym, noiseSeed, nonce, p.eta1)
		nonce++
	}
	skpv.ntt()
	for _, pv := range skpv.vec {
		pv.reduce()
	}

	e := p.allocPolyVec()
	for _, pv := range e.vec {
		pv.getNoise(p.sym, noiseSeed, nonce, p.eta1)
		nonce++
	}
	e.ntt()

	// Matrix-vector multiplication in NTT domain: t-hat = A*s-hat + e-hat.
	//
	// basemulAcc's result carries an implicit R^-1 scaling that invntt
	// would normally cancel; since t-hat is never inverse-transformed
	// (it's serialized directly, staying in NTT domain), that scaling
	// must be corrected explicitly before adding e-hat.
	tpv := p.allocPolyVec()
	for i, pv := range tpv.vec {
		pv.basemulAcc(&a[i], &skpv)
		pv.toMontF()
	}
	tpv.add(&tpv, &e)

	sk := &indcpaSecretKey{packed: make([]byte, p.indcpaSecretKeySize)}
	pk := &indcpaPublicKey{packed: make([]byte, p.indcpaPublicKeySize)}

	skpv.toBytes(sk.packed)
	packPublicKey(pk.packed, &tpv, publicSeed)
	p.sym.hashH(pk.h[:], pk.packed)

	return pk, sk, nil
}

// indcpaEncrypt is the encryption function of the CPA-secure public-key
// encryption scheme underlying Kyber.
func (p *ParameterSet) indcpaEncrypt(c, m []byte, pk *indcpaPublicKey, coins []byte) {
	var k poly
	var seed [SymSize]byte

	tpv := p.allocPolyVec()
	unpackPublicKey(&tpv, seed[:], pk.packed)

	k.fromMsg(m)

	at := p.allocMatrix()
	genMatrix(p.sym, at, seed[:], true)

	var nonce byte
	sp := p.allocPolyVec()
	for _, pv := range sp.vec {
		pv.getNoise(p.sym, coins, nonce, p.eta1)
		nonce++
	}
	sp.ntt()
	for _, pv := range sp.vec {
		pv.reduce()
	}

	ep := p.allocPolyVec()
	for _, pv := range ep.vec {
		pv.getNoise(p.sym, coins, nonce, p.eta2)
		nonce++
	}

	// Matrix-vector multiplication: bp = A^T*r, brought back to plain
	// domain by invntt before adding the plain-domain error vector.
	bp := p.allocPolyVec()
	for i, pv := range bp.vec {
		pv.basemulAcc(&at[i], &sp)
		pv.invntt()
	}
	bp.add(&bp, &ep)

	var v poly
	v.basemulAcc(&tpv, &sp)
	v.invntt()

	var epp poly
	epp.getNoise(p.sym, coins, nonce, p.eta2) // Don't need to increment nonce.

	v.add(&v, &epp)
	v.add(&v, &k)
	v.reduce()

	packCiphertext(c, &bp, &v, p.du, p.dv)
}

// indcpaDecrypt is the decryption function of the CPA-secure public-key
// encryption scheme underlying Kyber.
func (p *ParameterSet) indcpaDecrypt(m, c []byte, sk *indcpaSecretKey) {
	var v, mp poly

	skpv, bp := p.allocPolyVec(), p.allocPolyVec()
	unpackCiphertext(&bp, &v, c, p.du, p.dv)
	skpv.fromBytes(sk.packed)

	bp.ntt()

	mp.basemulAcc(&skpv, &bp)
	mp.invntt()

	mp.sub(&v, &mp)
	mp.reduce()

	mp.toMsg(m)
}
