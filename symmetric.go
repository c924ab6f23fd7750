// symmetric.go - Pluggable symmetric primitives (SHAKE/SHA-3 vs. "90s").
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/sha512"
	"io"

	"golang.org/x/crypto/sha3"
)

// symmetric bundles every hash/XOF/PRF/KDF primitive used above the
// arithmetic layer, so that the "90s" parameter sets can swap SHA-3/SHAKE
// for SHA-2/AES-256-CTR without touching INDCPA or KEM logic.
type symmetric interface {
	// hashH is the 32-byte collision-resistant hash used over public keys
	// and ciphertexts.
	hashH(out, in []byte)

	// hashG is the 64-byte hash used to derive (publicSeed, noiseSeed) at
	// keygen and (K-bar, coins) at encapsulation/decapsulation.
	hashG(out, in []byte)

	// newXOF returns a stream absorbing seed||x||y, from which matrix
	// generation squeezes 12-bit rejection-sampling candidates until the
	// polynomial is full; the stream is read incrementally since the
	// number of candidates needed to fill 256 coefficients isn't known in
	// advance.
	newXOF(seed []byte, x, y byte) io.Reader

	// prf deterministically expands seed||nonce into len(out) bytes, for
	// CBD noise sampling.
	prf(out, seed []byte, nonce byte)

	// kdf derives the final SymSize-byte shared secret/key material from
	// an arbitrary-length input.
	kdf(out, in []byte)
}

// shakeSymmetric is the default symmetric primitive set: SHA3-256 (H),
// SHA3-512 (G), SHAKE-128 (XOF) and SHAKE-256 (PRF, KDF), exactly as used
// by the teacher's kem.go/indcpa.go.
type shakeSymmetric struct{}

func (shakeSymmetric) hashH(out, in []byte) {
	h := sha3.Sum256(in)
	copy(out, h[:])
}

func (shakeSymmetric) hashG(out, in []byte) {
	h := sha3.Sum512(in)
	copy(out, h[:])
}

func (shakeSymmetric) newXOF(seed []byte, x, y byte) io.Reader {
	var extSeed [SymSize + 2]byte
	copy(extSeed[:SymSize], seed)
	extSeed[SymSize], extSeed[SymSize+1] = x, y

	xof := sha3.NewShake128()
	xof.Write(extSeed[:])
	return xof
}

func (shakeSymmetric) prf(out, seed []byte, nonce byte) {
	var extSeed [SymSize + 1]byte
	copy(extSeed[:SymSize], seed)
	extSeed[SymSize] = nonce

	sha3.ShakeSum256(out, extSeed[:])
}

func (shakeSymmetric) kdf(out, in []byte) {
	sha3.ShakeSum256(out, in)
}

// aes90sSymmetric replaces SHA-3/SHAKE with the "90s" NIST-standard
// primitives: SHA-256 (H, KDF), SHA-512 (G), and AES-256-CTR used as an XOF/PRF
// by encrypting an all-zero stream under a key derived from the seed. No
// third-party AES or SHA-2 implementation is referenced anywhere in the
// example pack, so this is built directly on the standard library.
type aes90sSymmetric struct{}

func (aes90sSymmetric) hashH(out, in []byte) {
	h := sha256.Sum256(in)
	copy(out, h[:])
}

func (aes90sSymmetric) hashG(out, in []byte) {
	h := sha512.Sum512(in)
	copy(out, h[:])
}

// aesCtrStream fills out with AES-256-CTR keystream bytes, using key as
// the AES-256 key and a 12-byte nonce padded to a full IV block.
func aesCtrStream(out, key []byte, nonce [12]byte) {
	r := newAesCtrReader(key, nonce)
	if _, err := io.ReadFull(r, out); err != nil {
		panic(err)
	}
}

// aesCtrReader is an io.Reader squeezing an AES-256-CTR keystream, used to
// give the 90s symmetric profile the same incremental-read XOF shape as
// SHAKE-128 provides natively.
type aesCtrReader struct {
	stream cipher.Stream
}

func newAesCtrReader(key []byte, nonce [12]byte) *aesCtrReader {
	block, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}

	var iv [aes.BlockSize]byte
	copy(iv[:12], nonce[:])

	return &aesCtrReader{stream: cipher.NewCTR(block, iv[:])}
}

func (r *aesCtrReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.stream.XORKeyStream(p, p)
	return len(p), nil
}

func (aes90sSymmetric) newXOF(seed []byte, x, y byte) io.Reader {
	var key [32]byte
	copy(key[:], seed)
	var nonce [12]byte
	nonce[0], nonce[1] = x, y
	return newAesCtrReader(key[:], nonce)
}

func (aes90sSymmetric) prf(out, seed []byte, nonce byte) {
	var key [32]byte
	copy(key[:], seed)
	var iv [12]byte
	iv[0] = nonce
	aesCtrStream(out, key[:], iv)
}

func (aes90sSymmetric) kdf(out, in []byte) {
	// The 90s KDF is SHA-256, whose 32-byte digest is exactly SymSize.
	h := sha256.Sum256(in)
	copy(out, h[:])
}
