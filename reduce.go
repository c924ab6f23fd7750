// reduce.go - Montgomery, Barrett, and full reduction.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	kyberQ = 3329

	qinv = 62209 // q^-1 mod 2^16
	mont = 2285  // 2^16 mod q, in {-q+1,...,q-1}

	// barrettV is 2^26 / q rounded to the nearest integer, used by
	// barrettReduce.
	barrettV = 20159

	// tomontF is 2^32 mod q, used to bring a plain-domain polynomial into
	// Montgomery domain via a single fqMul.
	tomontF = 1353
)

// montgomeryReduce computes a 16-bit integer congruent to a*R^-1 mod q,
// where R=2^16, for |a| <= q*2^15. The result satisfies |r| < q.
func montgomeryReduce(a int32) int16 {
	t := int16(a * qinv)
	return int16((a - int32(t)*kyberQ) >> 16)
}

// fqMul computes montgomeryReduce(a*b), i.e. a Montgomery-domain product.
func fqMul(a, b int16) int16 {
	return montgomeryReduce(int32(a) * int32(b))
}

// barrettReduce computes a 16-bit integer congruent to a mod q, for any
// int16 a, with result in (-q, q).
func barrettReduce(a int16) int16 {
	t := int32(barrettV)*int32(a) + (1 << 25)
	t >>= 26
	return a - int16(t)*kyberQ
}

// csubq conditionally subtracts q, mapping a from (-q, 2q) down into
// [0, q). Relies on Go's defined two's-complement arithmetic right shift
// on signed integers.
func csubq(a int16) int16 {
	a += (a >> 15) & kyberQ
	a -= kyberQ
	a += (a >> 15) & kyberQ
	return a
}

// toMont multiplies a by the Montgomery factor R=2^16, producing a value
// in Montgomery domain bounded in absolute value by q.
func toMont(a int16) int16 {
	return int16(int32(a) * mont % kyberQ)
}

// toMontF multiplies a by 2^32 mod q, bringing a once-Montgomery-reduced
// basemul accumulation (which carries an implicit R^-1 factor) back up to
// proper Montgomery scale in a single fqMul, the correction invntt would
// otherwise have supplied.
func toMontF(a int16) int16 {
	return fqMul(a, tomontF)
}
