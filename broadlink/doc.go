// Package broadlink reads and writes the learned-code container format
// used by Broadlink RM-series transceivers.
//
// # Container Format
//
// A learned code is a byte stream:
//
//	[TRANSPORT(1)][REPEAT(1)][LENGTH(2, little-endian)][DURATIONS...]
//
// Where:
//   - TRANSPORT = 0x26 for IR, 0xB2 for 433 MHz RF, 0xD7 for 315 MHz RF
//   - REPEAT = extra transmissions (0 = send once)
//   - LENGTH = byte length of the duration list
//   - DURATIONS = pulse lengths in ticks of 2^-15 s (8192/269 µs, about
//     30.45 µs); values below 256 occupy one byte, larger values are an
//     0x00 escape byte followed by a big-endian uint16 tick count
//
// Durations alternate carrier-on and carrier-off, on first. The length
// field delimits the list exactly; radio packets may pad the tail with
// zeros, which the parser ignores. A list with an odd duration count is
// completed with a 100 ms trailing gap, matching device behaviour.
//
// # Usage
//
// Parse a capture:
//
//	recording, err := broadlink.DecodeHex(captureHex)
//
// Serialize for transmission:
//
//	payload := recording.Bytes()
//	fmt.Println(broadlink.EncodeHex(recording))
//
// Encoding a recording and parsing it back always yields the same pulse
// ticks; re-encoding a parsed capture reproduces it byte for byte.
package broadlink
