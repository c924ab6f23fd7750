// hwaccel.go - Hardware acceleration hooks.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const implReference = "Reference"

// hwaccel is the indirection point for a vectorized (eg: AVX2) backend;
// only the portable reference implementation is wired up here, since no
// such backend's assembly is available to adapt.
type hwaccel struct {
	name string

	nttFn    func(*[kyberN]int16)
	invnttFn func(*[kyberN]int16)
	cbdFn    func(*poly, []byte, int)
}

var (
	isHardwareAccelerated = false

	refImpl = &hwaccel{
		name:     implReference,
		nttFn:    nttRef,
		invnttFn: invnttRef,
		cbdFn:    cbdRef,
	}

	hardwareAccelImpl = refImpl
)

func forceDisableHardwareAcceleration() {
	// This is for the benefit of testing, so that it's possible to test
	// all versions that are supported by the host.
	isHardwareAccelerated = false
	hardwareAccelImpl = refImpl
}

// IsHardwareAccelerated returns true iff the Kyber implementation will use
// hardware acceleration (eg: AVX2).
func IsHardwareAccelerated() bool {
	return isHardwareAccelerated
}

func init() {
	initHardwareAcceleration()
}
