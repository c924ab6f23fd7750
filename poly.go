// poly.go - Kyber polynomial.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// Elements of R_q = Z_q[X]/(X^n + 1). Represents polynomial coeffs[0] +
// X*coeffs[1] + X^2*coeffs[2] + ... + X^{n-1}*coeffs[n-1].
//
// Coefficients are not always fully reduced; see normalize(). While in NTT
// domain, adjacent coefficient pairs instead represent the two coefficients
// of a degree-1 polynomial modulo x²-ζ for some ζ; see ntt.go.
type poly struct {
	coeffs [kyberN]int16
}

// add sets p to a + b. Does not reduce coefficients.
func (p *poly) add(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i] + b.coeffs[i]
	}
}

// sub sets p to a - b. Does not reduce coefficients.
func (p *poly) sub(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i] - b.coeffs[i]
	}
}

// reduce applies Barrett reduction to every coefficient, bringing each into
// (-q, q).
func (p *poly) reduce() {
	for i := range p.coeffs {
		p.coeffs[i] = barrettReduce(p.coeffs[i])
	}
}

// normalize fully reduces every coefficient into [0, q).
func (p *poly) normalize() {
	for i := range p.coeffs {
		p.coeffs[i] = csubq(barrettReduce(p.coeffs[i]))
	}
}

// toMontF corrects the scale of a basemul-accumulated value that stays in
// NTT domain instead of passing through invntt (which would otherwise
// supply the matching correction itself): the product from
// indcpaKeyPair's computation of the public key t-hat needs this explicit
// fixup, since t-hat is serialized directly without ever being
// inverse-transformed.
func (p *poly) toMontF() {
	for i := range p.coeffs {
		p.coeffs[i] = toMontF(p.coeffs[i])
	}
}

// ntt computes the in-place forward NTT of p.
func (p *poly) ntt() {
	hardwareAccelImpl.nttFn(&p.coeffs)
}

// invntt computes the in-place inverse NTT of p.
func (p *poly) invntt() {
	hardwareAccelImpl.invnttFn(&p.coeffs)
}

// basemul sets p to the pointwise (NTT-domain) product of a and b: if
// invntt(a) and invntt(b) are the plain-domain polynomials represented by
// a and b, then invntt(p) = invntt(a) * invntt(b). Requires a and b to be
// in Montgomery form; p will be in Montgomery form as well, left-scaled by
// an implicit R^-1 that invntt's built-in Montgomery factor normally
// cancels.
func (p *poly) basemul(a, b *poly) {
	k := 64
	for i := 0; i < kyberN; i += 4 {
		zeta := zetas[k]
		k++

		p0 := fqMul(a.coeffs[i+1], b.coeffs[i+1])
		p0 = fqMul(p0, zeta)
		p0 += fqMul(a.coeffs[i], b.coeffs[i])

		p1 := fqMul(a.coeffs[i], b.coeffs[i+1])
		p1 += fqMul(a.coeffs[i+1], b.coeffs[i])

		p.coeffs[i] = p0
		p.coeffs[i+1] = p1

		p2 := fqMul(a.coeffs[i+3], b.coeffs[i+3])
		p2 = -fqMul(p2, zeta)
		p2 += fqMul(a.coeffs[i+2], b.coeffs[i+2])

		p3 := fqMul(a.coeffs[i+2], b.coeffs[i+3])
		p3 += fqMul(a.coeffs[i+3], b.coeffs[i+2])

		p.coeffs[i+2] = p2
		p.coeffs[i+3] = p3
	}
}

// toBytes serializes a normalized polynomial into 384 bytes, 12 bits per
// coefficient.
func (p *poly) toBytes(r []byte) {
	t := *p
	t.normalize()
	for i := 0; i < kyberN/2; i++ {
		t0 := uint16(t.coeffs[2*i])
		t1 := uint16(t.coeffs[2*i+1])
		r[3*i] = byte(t0)
		r[3*i+1] = byte(t0>>8) | byte(t1<<4)
		r[3*i+2] = byte(t1 >> 4)
	}
}

// fromBytes deserializes a polynomial from 384 bytes; inverse of toBytes.
// Coefficients will be in [0, 4096).
func (p *poly) fromBytes(a []byte) {
	for i := 0; i < kyberN/2; i++ {
		p.coeffs[2*i] = int16(a[3*i]) | ((int16(a[3*i+1]) << 8) & 0xfff)
		p.coeffs[2*i+1] = int16(a[3*i+1]>>4) | (int16(a[3*i+2]) << 4)
	}
}

// fromMsg converts a SymSize-byte message into a polynomial whose
// coefficients each encode one message bit as 0 or (q+1)/2.
func (p *poly) fromMsg(msg []byte) {
	for i := 0; i < SymSize; i++ {
		for j := 0; j < 8; j++ {
			bit := int16((msg[i] >> uint(j)) & 1)
			p.coeffs[8*i+j] = -bit & ((kyberQ + 1) / 2)
		}
	}
}

// toMsg converts a normalized polynomial back into a SymSize-byte message.
func (p *poly) toMsg(msg []byte) {
	t := *p
	t.normalize()
	for i := 0; i < SymSize; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			x := (uint32(t.coeffs[8*i+j]) << 1) + kyberQ/2
			bit := byte((x / kyberQ) & 1)
			msg[i] |= bit << uint(j)
		}
	}
}

// compress writes Compress_q(p, d) to r, packing d bits per coefficient.
// Assumes p is normalized and d is in {1, 4, 5, 10, 11}.
func (p *poly) compress(r []byte, d int) {
	t := *p
	t.normalize()

	switch d {
	case 1:
		for i := 0; i < SymSize; i++ {
			var b byte
			for j := 0; j < 8; j++ {
				x := (uint32(t.coeffs[8*i+j]) << 1) + kyberQ/2
				b |= byte((x/kyberQ)&1) << uint(j)
			}
			r[i] = b
		}
	case 4:
		var v [8]uint16
		idx := 0
		for i := 0; i < kyberN/8; i++ {
			for j := 0; j < 8; j++ {
				v[j] = uint16((uint32(t.coeffs[8*i+j])<<4+kyberQ/2)/kyberQ) & 0xf
			}
			r[idx] = byte(v[0]) | byte(v[1]<<4)
			r[idx+1] = byte(v[2]) | byte(v[3]<<4)
			r[idx+2] = byte(v[4]) | byte(v[5]<<4)
			r[idx+3] = byte(v[6]) | byte(v[7]<<4)
			idx += 4
		}
	case 5:
		var v [8]uint16
		idx := 0
		for i := 0; i < kyberN/8; i++ {
			for j := 0; j < 8; j++ {
				v[j] = uint16((uint32(t.coeffs[8*i+j])<<5+kyberQ/2)/kyberQ) & 0x1f
			}
			r[idx] = byte(v[0]) | byte(v[1]<<5)
			r[idx+1] = byte(v[1]>>3) | byte(v[2]<<2) | byte(v[3]<<7)
			r[idx+2] = byte(v[3]>>1) | byte(v[4]<<4)
			r[idx+3] = byte(v[4]>>4) | byte(v[5]<<1) | byte(v[6]<<6)
			r[idx+4] = byte(v[6]>>2) | byte(v[7]<<3)
			idx += 5
		}
	case 10:
		var v [4]uint16
		idx := 0
		for i := 0; i < kyberN/4; i++ {
			for j := 0; j < 4; j++ {
				v[j] = uint16((uint32(t.coeffs[4*i+j])<<10+kyberQ/2)/kyberQ) & 0x3ff
			}
			r[idx] = byte(v[0])
			r[idx+1] = byte(v[0]>>8) | byte(v[1]<<2)
			r[idx+2] = byte(v[1]>>6) | byte(v[2]<<4)
			r[idx+3] = byte(v[2]>>4) | byte(v[3]<<6)
			r[idx+4] = byte(v[3] >> 2)
			idx += 5
		}
	case 11:
		var v [8]uint16
		idx := 0
		for i := 0; i < kyberN/8; i++ {
			for j := 0; j < 8; j++ {
				v[j] = uint16((uint32(t.coeffs[8*i+j])<<11+kyberQ/2)/kyberQ) & 0x7ff
			}
			r[idx] = byte(v[0])
			r[idx+1] = byte(v[0]>>8) | byte(v[1]<<3)
			r[idx+2] = byte(v[1]>>5) | byte(v[2]<<6)
			r[idx+3] = byte(v[2] >> 2)
			r[idx+4] = byte(v[2]>>10) | byte(v[3]<<1)
			r[idx+5] = byte(v[3]>>7) | byte(v[4]<<4)
			r[idx+6] = byte(v[4]>>4) | byte(v[5]<<7)
			r[idx+7] = byte(v[5] >> 1)
			r[idx+8] = byte(v[5]>>9) | byte(v[6]<<2)
			r[idx+9] = byte(v[6]>>6) | byte(v[7]<<5)
			r[idx+10] = byte(v[7] >> 3)
			idx += 11
		}
	default:
		panic("kyber: unsupported compression depth")
	}
}

// decompress sets p to Decompress_q(a, d); approximate inverse of compress.
// p will be normalized. Assumes d is in {1, 4, 5, 10, 11}.
func (p *poly) decompress(a []byte, d int) {
	switch d {
	case 1:
		for i := 0; i < SymSize; i++ {
			for j := 0; j < 8; j++ {
				bit := int16((a[i] >> uint(j)) & 1)
				p.coeffs[8*i+j] = -bit & ((kyberQ + 1) / 2)
			}
		}
	case 4:
		for i := 0; i < kyberN/2; i++ {
			p.coeffs[2*i] = int16((uint32(a[i]&0xf)*kyberQ + 8) >> 4)
			p.coeffs[2*i+1] = int16((uint32(a[i]>>4)*kyberQ + 8) >> 4)
		}
	case 5:
		var t [8]uint16
		idx := 0
		for i := 0; i < kyberN/8; i++ {
			t[0] = uint16(a[idx])
			t[1] = uint16(a[idx]>>5) | uint16(a[idx+1])<<3
			t[2] = uint16(a[idx+1]) >> 2
			t[3] = uint16(a[idx+1]>>7) | uint16(a[idx+2])<<1
			t[4] = uint16(a[idx+2]>>4) | uint16(a[idx+3])<<4
			t[5] = uint16(a[idx+3]) >> 1
			t[6] = uint16(a[idx+3]>>6) | uint16(a[idx+4])<<2
			t[7] = uint16(a[idx+4]) >> 3
			for j := 0; j < 8; j++ {
				p.coeffs[8*i+j] = int16((uint32(t[j]&0x1f)*kyberQ + 16) >> 5)
			}
			idx += 5
		}
	case 10:
		var t [4]uint16
		idx := 0
		for i := 0; i < kyberN/4; i++ {
			t[0] = uint16(a[idx]) | uint16(a[idx+1])<<8
			t[1] = uint16(a[idx+1]>>2) | uint16(a[idx+2])<<6
			t[2] = uint16(a[idx+2]>>4) | uint16(a[idx+3])<<4
			t[3] = uint16(a[idx+3]>>6) | uint16(a[idx+4])<<2
			for j := 0; j < 4; j++ {
				p.coeffs[4*i+j] = int16((uint32(t[j]&0x3ff)*kyberQ + 512) >> 10)
			}
			idx += 5
		}
	case 11:
		var t [8]uint16
		idx := 0
		for i := 0; i < kyberN/8; i++ {
			t[0] = uint16(a[idx]) | uint16(a[idx+1])<<8
			t[1] = uint16(a[idx+1]>>3) | uint16(a[idx+2])<<5
			t[2] = uint16(a[idx+2]>>6) | uint16(a[idx+3])<<2 | uint16(a[idx+4])<<10
			t[3] = uint16(a[idx+4]>>1) | uint16(a[idx+5])<<7
			t[4] = uint16(a[idx+5]>>4) | uint16(a[idx+6])<<4
			t[5] = uint16(a[idx+6]>>7) | uint16(a[idx+7])<<1 | uint16(a[idx+8])<<9
			t[6] = uint16(a[idx+8]>>2) | uint16(a[idx+9])<<6
			t[7] = uint16(a[idx+9]>>5) | uint16(a[idx+10])<<3
			for j := 0; j < 8; j++ {
				p.coeffs[8*i+j] = int16((uint32(t[j]&0x7ff)*kyberQ + 1024) >> 11)
			}
			idx += 11
		}
	default:
		panic("kyber: unsupported compression depth")
	}
}

// getNoise samples p deterministically from a seed and nonce via the
// centered binomial distribution CBD_eta(PRF(seed, nonce)).
func (p *poly) getNoise(sym symmetric, seed []byte, nonce byte, eta int) {
	buf := make([]byte, eta*kyberN/4)
	sym.prf(buf, seed, nonce)
	p.cbd(buf, eta)
}
