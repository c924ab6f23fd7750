// ntt_test.go - NTT tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNTTInvolution checks that invntt(ntt(p)) == R*p mod q (R=2^16), the
// documented extra scale factor invnttRef leaves behind to cancel a
// basemul's R^-1 at typical call sites.
func TestNTTInvolution(t *testing.T) {
	require := require.New(t)

	p := randomNormalizedPoly(t)
	want := *p
	want.normalize()

	got := *p
	got.ntt()
	got.invntt()
	got.normalize()

	// invntt's R scaling means got == R*want (mod q), i.e. toMont(want) ==
	// got once both are normalized.
	wantScaled := want
	for i := range wantScaled.coeffs {
		wantScaled.coeffs[i] = toMont(wantScaled.coeffs[i])
	}
	wantScaled.normalize()

	require.Equal(wantScaled.coeffs, got.coeffs, "invntt(ntt(p)) == toMont(p)")
}

// TestBasemulMatchesSchoolbook checks basemul's NTT-domain pointwise
// product against plain schoolbook polynomial multiplication mod (X^256+1),
// after bringing both operands and the result out of NTT/Montgomery domain.
func TestBasemulMatchesSchoolbook(t *testing.T) {
	require := require.New(t)

	a := randomNormalizedPoly(t)
	b := randomNormalizedPoly(t)

	// Schoolbook convolution mod (X^n+1), mod q, in plain domain.
	var want [kyberN]int32
	for i := 0; i < kyberN; i++ {
		for j := 0; j < kyberN; j++ {
			c := int32(a.coeffs[i]) * int32(b.coeffs[j])
			k := i + j
			if k >= kyberN {
				k -= kyberN
				c = -c
			}
			want[k] += c
		}
	}
	var wantPoly poly
	for i := range wantPoly.coeffs {
		wantPoly.coeffs[i] = int16(((want[i] % kyberQ) + kyberQ) % kyberQ)
	}

	// NTT-domain basemul, then invntt to recover the plain-domain product
	// (scaled by invntt's built-in R factor cancelling basemul's R^-1).
	aHat := *a
	aHat.ntt()
	bHat := *b
	bHat.ntt()

	var prodHat poly
	prodHat.basemul(&aHat, &bHat)
	prodHat.invntt()
	prodHat.normalize()

	require.Equal(wantPoly.coeffs, prodHat.coeffs, "basemul/invntt == schoolbook convolution")
}
