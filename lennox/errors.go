package lennox

import (
	"fmt"
	"time"
)

// InvalidTemperatureError indicates a command whose temperature is out of
// range or inconsistent with the operating mode.
type InvalidTemperatureError struct {
	// Temperature is the rejected setpoint, or nil when one was required
	Temperature *int

	// Mode is the operating mode the setpoint was checked against
	Mode Mode
}

func (e *InvalidTemperatureError) Error() string {
	if e.Temperature == nil {
		return fmt.Sprintf("mode %s requires a temperature between %dC and %dC",
			e.Mode, MinTemperature, MaxTemperature)
	}
	if e.Mode == ModeFan {
		return fmt.Sprintf("mode %s does not accept a temperature, got %dC", e.Mode, *e.Temperature)
	}
	return fmt.Sprintf("temperature out of range: got %dC, must be between %dC and %dC",
		*e.Temperature, MinTemperature, MaxTemperature)
}

// FrameSyncError indicates that a fixed frame field or a structural pulse
// (preamble, trailer) did not match the protocol pattern.
type FrameSyncError struct {
	// Field names the fixed field or structural element that mismatched
	Field string

	// Got and Want are the observed and expected values
	Got  uint64
	Want uint64
}

func (e *FrameSyncError) Error() string {
	return fmt.Sprintf("frame sync: %s mismatch: got 0x%X, expected 0x%X", e.Field, e.Got, e.Want)
}

// ChecksumMismatchError indicates that the frame checksum did not match the
// value recomputed over the data fields.
type ChecksumMismatchError struct {
	// Got is the checksum stored in the frame
	Got byte

	// Want is the checksum recomputed from the data fields
	Want byte
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: got 0x%02X, expected 0x%02X", e.Got, e.Want)
}

// UnknownFieldCodeError indicates a decoded field value with no defined
// mapping in the protocol tables.
type UnknownFieldCodeError struct {
	// Field names the frame field ("mode", "fan", "temperature")
	Field string

	// Code is the unmapped raw value
	Code byte
}

func (e *UnknownFieldCodeError) Error() string {
	return fmt.Sprintf("unknown %s code 0x%02X", e.Field, e.Code)
}

// TruncatedCaptureError indicates that a pulse stream ended before a
// complete frame could be read.
type TruncatedCaptureError struct {
	// Pulses is the number of pulses present
	Pulses int

	// Expected is the minimum number of pulses a complete frame needs
	Expected int
}

func (e *TruncatedCaptureError) Error() string {
	return fmt.Sprintf("truncated capture: got %d pulses, a complete frame needs at least %d",
		e.Pulses, e.Expected)
}

// PulseCombinationError indicates a mark/space pair that has no meaning in
// the protocol, such as a long mark in the data section.
type PulseCombinationError struct {
	// Index is the position of the pair within the capture
	Index int

	// Mark and Space are the durations of the offending pair
	Mark  time.Duration
	Space time.Duration
}

func (e *PulseCombinationError) Error() string {
	return fmt.Sprintf("invalid pulse combination at pair %d: mark %s, space %s",
		e.Index, e.Mark, e.Space)
}

// RepeatMismatchError indicates that the second frame of a transmission was
// not the bitwise complement of the first.
type RepeatMismatchError struct {
	// First is the data of the first frame
	First uint64

	// Repeat is the data of the repeated frame
	Repeat uint64
}

func (e *RepeatMismatchError) Error() string {
	return fmt.Sprintf("repeat frame mismatch: first frame 0x%012X, repeat 0x%012X", e.First, e.Repeat)
}
