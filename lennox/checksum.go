package lennox

import "math/bits"

// checksum computes the 8-bit frame checksum.
//
// The remote sums the bit-reversed value of each of the six frame bytes
// (with the checksum field zeroed), takes the two's complement of the sum,
// and bit-reverses the result. frame must already have its checksum byte
// cleared.
func checksum(frame uint64) byte {
	var sum byte
	for i := 0; i < frameBytes; i++ {
		sum += bits.Reverse8(byte(frame >> (8 * i)))
	}
	return bits.Reverse8(-sum)
}
