// hwaccel_amd64.go - amd64 hardware acceleration stub.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// +build amd64,!gccgo,!noasm,go1.10

package kyber

// No AVX2 assembly is adapted into this tree, so the amd64 entry point
// falls back to the portable reference implementation; this file only
// exists to pair with hwaccel_ref.go's build constraint so the package
// builds on amd64 too.
func initHardwareAcceleration() {
	forceDisableHardwareAcceleration()
}
