package broadlink

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHex parses a hex-encoded container, as produced by capture tools.
// Surrounding whitespace is tolerated; an odd-length string is padded with
// a trailing zero nibble, matching capture dumps that drop it.
func DecodeHex(s string) (*Recording, error) {
	s = strings.TrimSpace(s)
	if len(s)%2 != 0 {
		s += "0"
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex capture: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty capture")
	}
	return ParseRecording(data)
}

// EncodeHex serializes a recording as a hex string.
func EncodeHex(r *Recording) string {
	return hex.EncodeToString(r.Bytes())
}

// DecodeBase64 parses a base64-encoded container, the encoding used by
// SmartIR code files.
func DecodeBase64(s string) (*Recording, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid base64 capture: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty capture")
	}
	return ParseRecording(data)
}

// EncodeBase64 serializes a recording as a base64 string.
func EncodeBase64(r *Recording) string {
	return base64.StdEncoding.EncodeToString(r.Bytes())
}

// RawFormat renders the pulse list as signed microsecond counts
// ("+4000 -4000 +550 ..."), the conventional view for eyeballing captures.
func RawFormat(r *Recording) string {
	var b strings.Builder
	for i, pulse := range r.Pulses {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i%2 == 0 {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
		fmt.Fprintf(&b, "%d", pulse.Microseconds())
	}
	return b.String()
}
