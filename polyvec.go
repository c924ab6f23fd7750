// polyvec.go - Vector of Kyber polynomials.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

type polyVec struct {
	vec []*poly
}

// add sets v to a + b, reducing each resulting coefficient.
func (v *polyVec) add(a, b *polyVec) {
	for i, p := range v.vec {
		p.add(a.vec[i], b.vec[i])
		p.reduce()
	}
}

// ntt applies the forward NTT to every element of v.
func (v *polyVec) ntt() {
	for _, p := range v.vec {
		p.ntt()
	}
}

// invntt applies the inverse NTT to every element of v.
func (v *polyVec) invntt() {
	for _, p := range v.vec {
		p.invntt()
	}
}

// toBytes serializes v.
func (v *polyVec) toBytes(r []byte) {
	for i, p := range v.vec {
		p.toBytes(r[i*polySize:])
	}
}

// fromBytes deserializes v; inverse of toBytes.
func (v *polyVec) fromBytes(a []byte) {
	for i, p := range v.vec {
		p.fromBytes(a[i*polySize:])
	}
}

// compress writes Compress_q(v, d) to r, d bits per coefficient.
func (v *polyVec) compress(r []byte, d int) {
	coeffBytes := (kyberN * d) / 8
	for i, p := range v.vec {
		p.compress(r[i*coeffBytes:], d)
	}
}

// decompress sets v to Decompress_q(a, d); approximate inverse of
// compress.
func (v *polyVec) decompress(a []byte, d int) {
	coeffBytes := (kyberN * d) / 8
	for i, p := range v.vec {
		p.decompress(a[i*coeffBytes:], d)
	}
}

// basemulAcc sets p to the Barrett-reduced sum over i of basemul(a[i],
// b[i]), the NTT-domain inner product of two polynomial vectors.
func (p *poly) basemulAcc(a, b *polyVec) {
	var t poly
	p.basemul(a.vec[0], b.vec[0])
	for i := 1; i < len(a.vec); i++ {
		t.basemul(a.vec[i], b.vec[i])
		p.add(p, &t)
	}
	p.reduce()
}
