// cbd_test.go - Centered binomial distribution tests.
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

func TestCBD2Bounds(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 2*kyberN/4)
	_, err := rand.Read(buf)
	require.NoError(err)

	var p poly
	cbd2(&p, buf)

	for i, c := range p.coeffs {
		require.GreaterOrEqual(int(c), -2, "coefficient %d", i)
		require.LessOrEqual(int(c), 2, "coefficient %d", i)
	}
}

func TestCBD3Bounds(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 3*kyberN/4)
	_, err := rand.Read(buf)
	require.NoError(err)

	var p poly
	cbd3(&p, buf)

	for i, c := range p.coeffs {
		require.GreaterOrEqual(int(c), -3, "coefficient %d", i)
		require.LessOrEqual(int(c), 3, "coefficient %d", i)
	}
}

func TestCBDAllZeroEntropyIsZero(t *testing.T) {
	require := require.New(t)

	buf2 := make([]byte, 2*kyberN/4)
	var p2 poly
	cbd2(&p2, buf2)
	require.Equal([kyberN]int16{}, p2.coeffs, "cbd2 of all-zero entropy is the zero polynomial")

	buf3 := make([]byte, 3*kyberN/4)
	var p3 poly
	cbd3(&p3, buf3)
	require.Equal([kyberN]int16{}, p3.coeffs, "cbd3 of all-zero entropy is the zero polynomial")
}

func TestCBDRefDispatch(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 3*kyberN/4)
	var direct, viaRef poly
	cbd3(&direct, buf)
	cbdRef(&viaRef, buf, 3)
	require.Equal(direct.coeffs, viaRef.coeffs, "cbdRef(eta=3) matches cbd3 directly")

	require.Panics(func() { cbdRef(&viaRef, buf, 5) }, "cbdRef panics on an unsupported eta")
}
