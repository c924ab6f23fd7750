// poly_test.go - Polynomial arithmetic tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomNormalizedPoly(t *testing.T) *poly {
	var p poly
	var buf [2 * kyberN]byte
	_, err := rand.Read(buf[:])
	require.NoError(t, err)
	for i := range p.coeffs {
		v := int16(buf[2*i]) | (int16(buf[2*i+1]&0xf) << 8)
		p.coeffs[i] = v % kyberQ
	}
	return &p
}

func TestPolyToBytesRoundTrip(t *testing.T) {
	require := require.New(t)

	for trial := 0; trial < 16; trial++ {
		p := randomNormalizedPoly(t)
		want := *p
		want.normalize()

		var buf [polySize]byte
		p.toBytes(buf[:])

		var got poly
		got.fromBytes(buf[:])

		require.Equal(want.coeffs, got.coeffs, "toBytes/fromBytes round trip")
	}
}

func TestPolyMessageRoundTrip(t *testing.T) {
	require := require.New(t)

	var msg [SymSize]byte
	_, err := rand.Read(msg[:])
	require.NoError(err)

	var p poly
	p.fromMsg(msg[:])

	var got [SymSize]byte
	p.toMsg(got[:])

	require.Equal(msg, got, "fromMsg/toMsg round trip")
}

func TestPolyCompressDecompressApproximate(t *testing.T) {
	require := require.New(t)

	for _, d := range []int{1, 4, 5, 10, 11} {
		p := randomNormalizedPoly(t)
		p.normalize()

		buf := make([]byte, kyberN*d/8)
		p.compress(buf, d)

		var dec poly
		dec.decompress(buf, d)

		// Compression is lossy; re-compressing the decompressed value must
		// round-trip exactly, since decompress always produces the
		// representative that compress would again map to the same
		// quantization bucket.
		buf2 := make([]byte, kyberN*d/8)
		dec.compress(buf2, d)
		require.Equal(buf, buf2, "compress(decompress(compress(p))) == compress(p), d=%d", d)
	}
}

func TestPolyAddSub(t *testing.T) {
	require := require.New(t)

	a := randomNormalizedPoly(t)
	b := randomNormalizedPoly(t)

	var sum, diff poly
	sum.add(a, b)
	diff.sub(&sum, b)

	aNorm := *a
	aNorm.normalize()
	diffNorm := diff
	diffNorm.normalize()

	require.Equal(aNorm.coeffs, diffNorm.coeffs, "(a+b)-b == a mod q")
}
