package broadlink

import (
	"strings"
	"testing"
	"time"
)

func TestDecodeHexTolerance(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "clean", input: "260002001212"},
		{name: "surrounding whitespace", input: "  260002001212\n"},
		{name: "odd length padded", input: "26000200121"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recording, err := DecodeHex(tt.input)
			if err != nil {
				t.Fatalf("DecodeHex() error: %v", err)
			}
			if recording.Transport != TransportIR {
				t.Errorf("transport = %s, want ir", recording.Transport)
			}
		})
	}
}

func TestDecodeHexInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "not hex", input: "zz00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeHex(tt.input); err == nil {
				t.Error("DecodeHex() accepted invalid input")
			}
		})
	}
}

func TestBase64RoundTrip(t *testing.T) {
	original := NewIR([]time.Duration{us(4000), us(4000), us(550), us(1550)})

	parsed, err := DecodeBase64(EncodeBase64(original))
	if err != nil {
		t.Fatalf("DecodeBase64() error: %v", err)
	}
	if len(parsed.Pulses) != len(original.Pulses) {
		t.Errorf("pulse count = %d, want %d", len(parsed.Pulses), len(original.Pulses))
	}
}

func TestDecodeBase64Invalid(t *testing.T) {
	if _, err := DecodeBase64("not base64!!"); err == nil {
		t.Error("DecodeBase64() accepted invalid input")
	}
}

func TestRawFormat(t *testing.T) {
	recording := NewIR([]time.Duration{us(4000), us(4000), us(550), us(1550)})

	got := RawFormat(recording)
	want := "+4000 -4000 +550 -1550"
	if got != want {
		t.Errorf("RawFormat() = %q, want %q", got, want)
	}
	if strings.HasSuffix(got, " ") {
		t.Error("RawFormat() has a trailing separator")
	}
}
