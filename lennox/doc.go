// Package lennox implements the infrared remote protocol spoken by Lennox
// mini-split heat pumps (remote model RG57A6/BGEFU1, units such as the
// MWMA018S4-2P).
//
// # Frame Format
//
// A command is a single 48-bit frame, transmitted most significant bit first:
//
//	[CMD(8)][POWER(1)][SLEEP(1)][FAN(3)][MODE(3)][FIXED(3)][TEMP(5)][ONES(16)][CHECKSUM(8)]
//
// Where:
//   - CMD = command type marker (0xA1)
//   - POWER = 1 when the unit is on
//   - FAN = fan speed code (see Fan)
//   - MODE = operating mode code (see Mode)
//   - FIXED = constant 0b010
//   - TEMP = target temperature minus 17, or 0b1110 when the mode has no setpoint
//   - ONES = sixteen 1-bits
//   - CHECKSUM = see checksum.go
//
// The remote always sends the frame twice: the second copy carries the
// bitwise complement of the 48 data bits, which the decoder verifies.
//
// # Timing
//
// Frames use space-distance coding: each bit is a 550 µs mark followed by a
// 550 µs space for 0 or a 1550 µs space for 1. A frame starts with a
// 4000/4000 µs preamble pair and ends with a 550 µs mark and an inter-frame
// gap. See phy.go for the tolerance bands applied when decoding captures.
//
// # Usage
//
// Build a frame from a command:
//
//	temp := 24
//	packet, err := lennox.NewPacket(lennox.ControlState{
//	    Power:       true,
//	    Mode:        lennox.ModeHeat,
//	    Temperature: &temp,
//	    Fan:         lennox.FanAuto,
//	})
//
// Recover a command from a received frame:
//
//	state, err := packet.ControlState()
//
// Convert between frames and pulse durations:
//
//	phy := lennox.NewPhy()
//	pulses := phy.Encode(packet)
//	packet, err := phy.Decode(pulses)
//
// # Error Handling
//
// Decoding returns typed errors identifying exactly what failed: fixed-field
// mismatches (FrameSyncError), checksum failures (ChecksumMismatchError),
// unmapped field codes (UnknownFieldCodeError), truncated pulse streams
// (TruncatedCaptureError) and repeat-frame mismatches (RepeatMismatchError).
// Invalid commands are rejected before encoding with InvalidTemperatureError.
package lennox
