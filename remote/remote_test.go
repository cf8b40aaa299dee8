package remote

import (
	"errors"
	"testing"
	"time"

	"github.com/mrene/heatpump/broadlink"
	"github.com/mrene/heatpump/lennox"
	"github.com/mrene/heatpump/pwm"
)

func intPtr(v int) *int { return &v }

// realCapture is a genuine capture of the remote's off command
// (power off, heat, 24C, fan auto) recorded with a Broadlink RM4.
const realCapture = "2600ca008b8f1035101211341013101210121112103510121112103510121112101211340f360f121134111210121112103510351035103510341134113411341134113410351035103510351035103510351035103510341134113411121035101210350f3510a88c8e11121035101211341134113410351012113411341112103510351035101210121134111210351035103510121013101210121112101210130f13101210131012101211121012101310121013101210121112101211121035101211341112101210000d05"

// Canonical encodings, one per field combination of interest. Unlike
// captures these are deterministic, so they are compared verbatim.
var encodeVectors = []struct {
	name  string
	state lennox.ControlState
	hex   string
}{
	{
		name:  "off heat 24 fan auto",
		state: lennox.ControlState{Power: false, Mode: lennox.ModeHeat, Temperature: intPtr(24), Fan: lennox.FanAuto},
		hex:   "2600c800838312331212123312121212121212121233121212121233121212121212123312331212123312121212121212331233123312331233123312331233123312331233123312331233123312331233123312331233123312331212123312121233123312a9838312121233121212331233123312331212123312331212123312331233121212121233121212331233123312121212121212121212121212121212121212121212121212121212121212121212121212121212121212121233121212331212121212a9",
	},
	{
		name:  "on heat 24 fan auto",
		state: lennox.ControlState{Power: true, Mode: lennox.ModeHeat, Temperature: intPtr(24), Fan: lennox.FanAuto},
		hex:   "2600c800838312331212123312121212121212121233123312121233121212121212123312331212123312121212121212331233123312331233123312331233123312331233123312331233123312331233123312331212123312331212123312121233123312a9838312121233121212331233123312331212121212331212123312331233121212121233121212331233123312121212121212121212121212121212121212121212121212121212121212121212121212121233121212121233121212331212121212a9",
	},
	{
		name:  "on cool 25 fan high",
		state: lennox.ControlState{Power: true, Mode: lennox.ModeCool, Temperature: intPtr(25), Fan: lennox.FanHigh},
		hex:   "2600c800838312331212123312121212121212121233123312121212123312331212121212121212123312121212123312121212121212331233123312331233123312331233123312331233123312331233123312331212123312121212123312121233121212a9838312121233121212331233123312331212121212331233121212121233123312331233121212331233121212331233123312121212121212121212121212121212121212121212121212121212121212121233121212331233121212331212123312a9",
	},
	{
		name:  "on fan-only fan low",
		state: lennox.ControlState{Power: true, Mode: lennox.ModeFan, Fan: lennox.FanLow},
		hex:   "2600c800838312331212123312121212121212121233123312121212121212331233121212121212123312121212123312331233121212331233123312331233123312331233123312331233123312331233123312331212123312121233123312121233123312a9838312121233121212331233123312331212121212331233123312121212123312331233121212331233121212121212123312121212121212121212121212121212121212121212121212121212121212121233121212331212121212331212121212a9",
	},
}

func TestEncodeHexVectors(t *testing.T) {
	for _, tt := range encodeVectors {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeHex(tt.state)
			if err != nil {
				t.Fatalf("EncodeHex() error: %v", err)
			}
			if got != tt.hex {
				t.Errorf("EncodeHex() mismatch:\n got %s\nwant %s", got, tt.hex)
			}
		})
	}
}

func TestDecodeHexVectors(t *testing.T) {
	for _, tt := range encodeVectors {
		t.Run(tt.name, func(t *testing.T) {
			state, err := DecodeHex(tt.hex)
			if err != nil {
				t.Fatalf("DecodeHex() error: %v", err)
			}
			assertStateEqual(t, state, tt.state)
		})
	}
}

func TestDecodeRealCapture(t *testing.T) {
	state, err := DecodeHex(realCapture)
	if err != nil {
		t.Fatalf("DecodeHex() error: %v", err)
	}
	assertStateEqual(t, state, lennox.ControlState{
		Power:       false,
		Mode:        lennox.ModeHeat,
		Temperature: intPtr(24),
		Fan:         lennox.FanAuto,
	})
}

func TestRoundTripAllStates(t *testing.T) {
	// Every valid command must survive the full chain.
	for _, power := range []bool{false, true} {
		for _, mode := range lennox.Modes {
			for _, fan := range lennox.Fans {
				states := []lennox.ControlState{}
				if mode == lennox.ModeFan || mode == lennox.ModeAuto {
					states = append(states, lennox.ControlState{Power: power, Mode: mode, Fan: fan})
				}
				if mode != lennox.ModeFan {
					for temp := lennox.MinTemperature; temp <= lennox.MaxTemperature; temp++ {
						states = append(states, lennox.ControlState{
							Power: power, Mode: mode, Temperature: intPtr(temp), Fan: fan,
						})
					}
				}

				for _, state := range states {
					capture, err := EncodeHex(state)
					if err != nil {
						t.Fatalf("EncodeHex(%s) error: %v", state, err)
					}
					decoded, err := DecodeHex(capture)
					if err != nil {
						t.Fatalf("DecodeHex() error for %s: %v", state, err)
					}
					assertStateEqual(t, decoded, state)
				}
			}
		}
	}
}

func TestEncodeBase64RoundTrip(t *testing.T) {
	state := lennox.ControlState{Power: true, Mode: lennox.ModeDry, Temperature: intPtr(22), Fan: lennox.FanMedium}

	capture, err := EncodeBase64(state, WithRepeatCount(1))
	if err != nil {
		t.Fatalf("EncodeBase64() error: %v", err)
	}
	decoded, err := DecodeBase64(capture)
	if err != nil {
		t.Fatalf("DecodeBase64() error: %v", err)
	}
	assertStateEqual(t, decoded, state)
}

func TestEncodeRepeatCount(t *testing.T) {
	recording, err := Encode(
		lennox.ControlState{Power: true, Mode: lennox.ModeHeat, Temperature: intPtr(24), Fan: lennox.FanAuto},
		WithRepeatCount(3),
	)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if recording.RepeatCount != 3 {
		t.Errorf("repeat count = %d, want 3", recording.RepeatCount)
	}
	if recording.Transport != broadlink.TransportIR {
		t.Errorf("transport = %s, want ir", recording.Transport)
	}
}

func TestEncodeRejectsInvalidState(t *testing.T) {
	_, err := Encode(lennox.ControlState{Power: true, Mode: lennox.ModeFan, Temperature: intPtr(24), Fan: lennox.FanAuto})
	var invalid *lennox.InvalidTemperatureError
	if !errors.As(err, &invalid) {
		t.Errorf("got %v, want InvalidTemperatureError", err)
	}
}

func TestDecodeStageAttribution(t *testing.T) {
	valid, err := EncodeHex(lennox.ControlState{
		Power: true, Mode: lennox.ModeHeat, Temperature: intPtr(24), Fan: lennox.FanAuto,
	})
	if err != nil {
		t.Fatalf("EncodeHex() error: %v", err)
	}

	t.Run("container truncation", func(t *testing.T) {
		_, err := DecodeHex(valid[:len(valid)-2])
		var truncated *broadlink.TruncatedContainerError
		if !errors.As(err, &truncated) {
			t.Errorf("got %v, want TruncatedContainerError", err)
		}
	})

	t.Run("unsupported transport", func(t *testing.T) {
		_, err := DecodeHex("27" + valid[2:])
		var unsupported *broadlink.UnsupportedContainerFormatError
		if !errors.As(err, &unsupported) {
			t.Errorf("got %v, want UnsupportedContainerFormatError", err)
		}
	})

	t.Run("ambiguous pulse", func(t *testing.T) {
		recording, err := broadlink.DecodeHex(valid)
		if err != nil {
			t.Fatalf("DecodeHex() error: %v", err)
		}
		recording.Pulses[9] = 900 * time.Microsecond // between the bit bands

		_, err = Decode(recording)
		var ambiguous *pwm.AmbiguousDurationError
		if !errors.As(err, &ambiguous) {
			t.Errorf("got %v, want AmbiguousDurationError", err)
		}
	})

	t.Run("frame checksum", func(t *testing.T) {
		// Flip one data bit in both frames consistently so the pulse and
		// repeat checks pass and the corruption reaches the checksum.
		recording, err := broadlink.DecodeHex(valid)
		if err != nil {
			t.Fatalf("DecodeHex() error: %v", err)
		}
		// Pulse 19 is the space of the power bit (set for this command);
		// pulse 119 is the same bit's space in the complement frame.
		recording.Pulses[19] = 550 * time.Microsecond
		recording.Pulses[119] = 1550 * time.Microsecond

		_, err = Decode(recording)
		var mismatch *lennox.ChecksumMismatchError
		if !errors.As(err, &mismatch) {
			t.Errorf("got %v, want ChecksumMismatchError", err)
		}
	})
}

func assertStateEqual(t *testing.T, got, want lennox.ControlState) {
	t.Helper()
	if got.Power != want.Power || got.Mode != want.Mode || got.Fan != want.Fan {
		t.Errorf("state = %s, want %s", got, want)
	}
	switch {
	case want.Temperature == nil:
		if got.Temperature != nil {
			t.Errorf("unexpected temperature %d", *got.Temperature)
		}
	case got.Temperature == nil:
		t.Error("temperature missing")
	default:
		if *got.Temperature != *want.Temperature {
			t.Errorf("temperature = %d, want %d", *got.Temperature, *want.Temperature)
		}
	}
}
