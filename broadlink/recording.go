package broadlink

import (
	"encoding/binary"
	"math"
	"time"
)

// Transport identifies the radio a learned code targets.
type Transport byte

const (
	// TransportIR is infrared
	TransportIR Transport = 0x26

	// TransportRF433 is 433 MHz radio
	TransportRF433 Transport = 0xB2

	// TransportRF315 is 315 MHz radio
	TransportRF315 Transport = 0xD7
)

// String returns a short transport name.
func (t Transport) String() string {
	switch t {
	case TransportIR:
		return "ir"
	case TransportRF433:
		return "rf433"
	case TransportRF315:
		return "rf315"
	default:
		return "unknown"
	}
}

// Container layout constants.
const (
	// headerSize covers the transport, repeat and length fields
	headerSize = 4

	// escapeByte introduces a two-byte big-endian tick count
	escapeByte = 0x00

	// tickNanos is the duration of one device tick (2^-15 s) in
	// nanoseconds: 8192000/269 µs-scaled, i.e. ~30.45 µs
	tickNumerator   = 8192000.0
	tickDenominator = 269.0

	// oddGap completes a duration list with an odd pulse count
	oddGap = 100 * time.Millisecond
)

// Recording is one learned code: a transport, a repeat count, and the
// alternating on/off pulse durations.
type Recording struct {
	// Transport selects the radio
	Transport Transport

	// RepeatCount is the number of extra transmissions (0 = send once)
	RepeatCount uint8

	// Pulses holds the carrier on/off durations, on first
	Pulses []time.Duration
}

// NewIR returns an IR recording with no repeats.
func NewIR(pulses []time.Duration) *Recording {
	return &Recording{Transport: TransportIR, Pulses: pulses}
}

// Bytes serializes the recording into the container format.
func (r *Recording) Bytes() []byte {
	durations := make([]byte, 0, len(r.Pulses))
	for _, pulse := range r.Pulses {
		ticks := durationToTicks(pulse)
		if ticks < 256 {
			durations = append(durations, byte(ticks))
		} else {
			durations = append(durations, escapeByte, byte(ticks>>8), byte(ticks))
		}
	}

	out := make([]byte, 0, headerSize+len(durations))
	out = append(out, byte(r.Transport), r.RepeatCount)
	out = binary.LittleEndian.AppendUint16(out, uint16(len(durations)))
	return append(out, durations...)
}

// ParseRecording decodes a container byte stream.
//
// The transport byte must be a known Transport. The duration list must be
// complete per the length field; an escape byte must be followed by its
// two tick bytes. Bytes past the counted length (outer-packet padding) are
// ignored.
func ParseRecording(data []byte) (*Recording, error) {
	if len(data) < headerSize {
		return nil, &TruncatedContainerError{Offset: len(data), Needed: headerSize - len(data)}
	}

	transport := Transport(data[0])
	switch transport {
	case TransportIR, TransportRF433, TransportRF315:
	default:
		return nil, &UnsupportedContainerFormatError{Transport: data[0]}
	}

	repeat := data[1]
	length := int(binary.LittleEndian.Uint16(data[2:4]))
	if len(data) < headerSize+length {
		return nil, &TruncatedContainerError{
			Offset: len(data),
			Needed: headerSize + length - len(data),
		}
	}

	durations := data[headerSize : headerSize+length]
	pulses := make([]time.Duration, 0, length)
	for i := 0; i < len(durations); {
		ticks := uint16(durations[i])
		i++
		if ticks == escapeByte {
			if len(durations)-i < 2 {
				return nil, &TruncatedContainerError{Offset: headerSize + i, Needed: 2 - (len(durations) - i)}
			}
			ticks = binary.BigEndian.Uint16(durations[i : i+2])
			i += 2
		}
		pulses = append(pulses, ticksToDuration(ticks))
	}

	// Captures routinely drop the final off gap; restore it so pulses
	// pair up as on/off.
	if len(pulses)%2 != 0 {
		pulses = append(pulses, oddGap)
	}

	return &Recording{
		Transport:   transport,
		RepeatCount: repeat,
		Pulses:      pulses,
	}, nil
}

// durationToTicks converts a pulse duration to device ticks, rounding
// through float64 to avoid accumulating conversion error.
func durationToTicks(d time.Duration) uint16 {
	return uint16(math.Round(float64(d.Microseconds()) * 1000.0 * tickDenominator / tickNumerator))
}

// ticksToDuration is the inverse scaling; durationToTicks(ticksToDuration(t))
// returns t for every representable tick count.
func ticksToDuration(ticks uint16) time.Duration {
	return time.Duration(math.Round(float64(ticks) * tickNumerator / tickDenominator))
}
