// sample.go - Uniform rejection sampling for matrix generation.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	xofBlockBytes      = 168 // SHAKE-128 rate, in bytes.
	genMatrixMaxBlocks = 4
)

// genMatrix deterministically generates the matrix A (or its transpose)
// from a seed, via rejection sampling on the symmetric primitive's XOF:
// every 3 bytes of XOF output yield two little-endian 12-bit candidates,
// each accepted as a coefficient iff it is less than q.
func genMatrix(sym symmetric, a []polyVec, seed []byte, transposed bool) {
	var buf [xofBlockBytes * genMatrixMaxBlocks]byte

	for i, v := range a {
		for j, p := range v.vec {
			var x, y byte
			if transposed {
				x, y = byte(i), byte(j)
			} else {
				x, y = byte(j), byte(i)
			}

			xof := sym.newXOF(seed, x, y)
			xof.Read(buf[:])

			ctr, pos, maxPos := 0, 0, len(buf)
			for ctr < kyberN {
				if maxPos-pos < 3 {
					// On the unlikely chance 4 blocks is insufficient,
					// incrementally squeeze out 1 block at a time from the
					// same absorbed stream.
					xof.Read(buf[:xofBlockBytes])
					pos, maxPos = 0, xofBlockBytes
				}

				b0, b1, b2 := buf[pos], buf[pos+1], buf[pos+2]
				d1 := uint16(b0) | (uint16(b1&0x0f) << 8)
				d2 := uint16(b1>>4) | (uint16(b2) << 4)
				pos += 3

				if d1 < kyberQ && ctr < kyberN {
					p.coeffs[ctr] = int16(d1)
					ctr++
				}
				if d2 < kyberQ && ctr < kyberN {
					p.coeffs[ctr] = int16(d2)
					ctr++
				}
			}
		}
	}
}
