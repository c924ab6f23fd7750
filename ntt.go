// ntt.go - Number-Theoretic Transform.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// zetas holds precomputed powers of the primitive 256th root of unity
// ζ=17 in Montgomery representation, indexed by the 7-bit bitreversal of
// their exponent:
//
//	zetas[i] = ζ^brv(i) * R mod q
//
// Computed at init() time rather than hardcoded, so the derivation is
// visible and auditable alongside the rest of the arithmetic it feeds.
var zetas [128]int16

func brv7(x int) int {
	var r int
	for i := 0; i < 7; i++ {
		r |= ((x >> uint(i)) & 1) << uint(6-i)
	}
	return r
}

func init() {
	const primitiveRoot = 17
	for i := range zetas {
		e := brv7(i)
		v := int64(1)
		base := int64(primitiveRoot)
		for e > 0 {
			if e&1 == 1 {
				v = (v * base) % kyberQ
			}
			base = (base * base) % kyberQ
			e >>= 1
		}
		zetas[i] = toMont(int16(v))
	}
}

// nttRef computes the in-place forward negacyclic NTT of p.
//
// Input coefficients must be bounded in absolute value by q; the output is
// bounded by 7q and is held in "tangled" order: pairs of adjacent
// coefficients represent a degree-1 polynomial modulo x²-ζ for the
// corresponding ζ, rather than a single ℤ_q element. This is the order
// consumed directly by basemul.
func nttRef(p *[kyberN]int16) {
	k := 0
	for l := kyberN / 2; l > 1; l >>= 1 {
		for offset := 0; offset < kyberN-l; offset += 2 * l {
			k++
			zeta := zetas[k]
			for j := offset; j < offset+l; j++ {
				t := fqMul(zeta, p[j+l])
				p[j+l] = p[j] - t
				p[j] = p[j] + t
			}
		}
	}
}

// invnttRef computes the in-place inverse negacyclic NTT of p, additionally
// multiplying the result by the Montgomery factor R.
//
// This extra factor of R is intentional: it is designed to exactly cancel
// the R^-1 left behind by a preceding basemul pointwise multiplication, so
// that invnttRef(basemul(ntt(a), ntt(b))) recovers the plain-domain product
// a*b with no extra bookkeeping at the call site. A bare ntt/invntt round
// trip with no intervening basemul therefore returns R times the original
// value, not the original value itself.
func invnttRef(p *[kyberN]int16) {
	k := 127
	for l := 2; l < kyberN; l <<= 1 {
		for offset := 0; offset < kyberN-l; offset += 2 * l {
			minZeta := zetas[k]
			k--
			for j := offset; j < offset+l; j++ {
				t := p[j+l] - p[j]
				p[j] = barrettReduce(p[j] + p[j+l])
				p[j+l] = fqMul(minZeta, t)
			}
		}
	}

	const final = 1441 // 128^-1 * R^2 mod q
	for j := range p {
		p[j] = fqMul(final, p[j])
	}
}
