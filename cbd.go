// cbd.go - Centered binomial distribution.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "encoding/binary"

// cbd samples p from a centered binomial distribution with the given eta,
// using buf as the entropy source; eta*kyberN/4 bytes of buf are consumed.
func (p *poly) cbd(buf []byte, eta int) {
	hardwareAccelImpl.cbdFn(p, buf, eta)
}

func cbdRef(p *poly, buf []byte, eta int) {
	switch eta {
	case 2:
		cbd2(p, buf)
	case 3:
		cbd3(p, buf)
	default:
		panic("kyber: eta must be in {2,3}")
	}
}

// cbd2 samples a centered binomial distribution with n=4, p=½: coefficients
// in {-2,...,2}. Needs 128 bytes of entropy, interpreted 8 bytes at a time
// as a+2a'+4b+8b'+....
func cbd2(p *poly, buf []byte) {
	for i := 0; i < kyberN/16; i++ {
		t := binary.LittleEndian.Uint64(buf[8*i:])

		d := t & 0x5555555555555555
		d += (t >> 1) & 0x5555555555555555

		for j := 0; j < 16; j++ {
			a := int16(d) & 0x3
			d >>= 2
			b := int16(d) & 0x3
			d >>= 2
			p.coeffs[16*i+j] = a - b
		}
	}
}

// cbd3 samples a centered binomial distribution with n=6, p=½: coefficients
// in {-3,...,3}. Needs 192 bytes of entropy, interpreted 6 bytes at a time.
func cbd3(p *poly, buf []byte) {
	var chunk [8]byte
	for i := 0; i < kyberN/8; i++ {
		copy(chunk[:6], buf[6*i:6*i+6])
		chunk[6], chunk[7] = 0, 0
		t := binary.LittleEndian.Uint64(chunk[:])

		d := t & 0x249249249249
		d += (t >> 1) & 0x249249249249
		d += (t >> 2) & 0x249249249249

		for j := 0; j < 8; j++ {
			a := int16(d) & 0x7
			d >>= 3
			b := int16(d) & 0x7
			d >>= 3
			p.coeffs[8*i+j] = a - b
		}
	}
}
