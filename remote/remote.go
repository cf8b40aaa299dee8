package remote

import (
	"fmt"

	"github.com/mrene/heatpump/broadlink"
	"github.com/mrene/heatpump/lennox"
)

// phy is shared across calls; it is stateless and safe for concurrent use.
var phy = lennox.NewPhy()

// Encode converts a command into a Broadlink learned code.
//
// The command is validated first; once validation passes the remaining
// stages cannot fail.
func Encode(state lennox.ControlState, opts ...Option) (*broadlink.Recording, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	packet, err := lennox.NewPacket(state)
	if err != nil {
		return nil, fmt.Errorf("command: %w", err)
	}

	recording := broadlink.NewIR(phy.Encode(packet))
	recording.RepeatCount = cfg.RepeatCount
	return recording, nil
}

// EncodeHex is Encode rendered as a hex capture string.
func EncodeHex(state lennox.ControlState, opts ...Option) (string, error) {
	recording, err := Encode(state, opts...)
	if err != nil {
		return "", err
	}
	return broadlink.EncodeHex(recording), nil
}

// EncodeBase64 is Encode rendered as a base64 capture string.
func EncodeBase64(state lennox.ControlState, opts ...Option) (string, error) {
	recording, err := Encode(state, opts...)
	if err != nil {
		return "", err
	}
	return broadlink.EncodeBase64(recording), nil
}

// Decode extracts the command carried by a learned code.
//
// Errors are wrapped with the failing stage: "pulse" for timing
// classification and frame structure, "frame" for field and checksum
// validation.
func Decode(recording *broadlink.Recording) (lennox.ControlState, error) {
	packet, err := phy.Decode(recording.Pulses)
	if err != nil {
		return lennox.ControlState{}, fmt.Errorf("pulse: %w", err)
	}

	state, err := packet.ControlState()
	if err != nil {
		return lennox.ControlState{}, fmt.Errorf("frame: %w", err)
	}
	return state, nil
}

// DecodeBytes decodes a raw container byte stream.
func DecodeBytes(data []byte) (lennox.ControlState, error) {
	recording, err := broadlink.ParseRecording(data)
	if err != nil {
		return lennox.ControlState{}, fmt.Errorf("container: %w", err)
	}
	return Decode(recording)
}

// DecodeHex decodes a hex capture string.
func DecodeHex(capture string) (lennox.ControlState, error) {
	recording, err := broadlink.DecodeHex(capture)
	if err != nil {
		return lennox.ControlState{}, fmt.Errorf("container: %w", err)
	}
	return Decode(recording)
}

// DecodeBase64 decodes a base64 capture string.
func DecodeBase64(capture string) (lennox.ControlState, error) {
	recording, err := broadlink.DecodeBase64(capture)
	if err != nil {
		return lennox.ControlState{}, fmt.Errorf("container: %w", err)
	}
	return Decode(recording)
}
