package lennox

import (
	"time"

	"github.com/mrene/heatpump/pwm"
)

// PulseType is one canonical pulse duration of the Lennox protocol.
type PulseType uint8

const (
	// PulseShort is the data mark and the 0-bit space (550 µs)
	PulseShort PulseType = iota

	// PulseLong is the 1-bit space (1550 µs)
	PulseLong

	// PulsePreamble is a preamble mark or space (4000 µs)
	PulsePreamble

	// PulseFrameGap is the gap between the frame and its repeat (5150 µs)
	PulseFrameGap

	// PulseHuge is the trailing gap after the last frame. Capture
	// hardware reports it anywhere between ~36 ms and ~101 ms, so its
	// band is deliberately wide.
	PulseHuge
)

// Canonical pulse durations and their decode tolerances.
const (
	shortDuration    = 550 * time.Microsecond
	longDuration     = 1550 * time.Microsecond
	preambleDuration = 4000 * time.Microsecond
	frameGapDuration = 5150 * time.Microsecond
	hugeDuration     = 100 * time.Millisecond

	shortTolerance = 200 * time.Microsecond
	wideTolerance  = 500 * time.Microsecond
	hugeTolerance  = 70 * time.Millisecond
)

// framePulses is the pulse count of one frame: preamble pair, a mark/space
// pair per bit, and the trailer pair.
const framePulses = 2 + 2*FrameBits + 2

// MinCapturePulses is the fewest pulses a decodable transmission can have:
// the frame and its complement repeat.
const MinCapturePulses = 2 * framePulses

// Phy converts between frames and mark/space pulse durations.
//
// Phy is stateless and safe for concurrent use.
type Phy struct {
	codec *pwm.Codec[PulseType]
}

// NewPhy returns a Phy with the protocol's timing rules.
func NewPhy() *Phy {
	codec, err := pwm.NewCodec(map[PulseType]pwm.Rule{
		PulseShort:    {Duration: shortDuration, Tolerance: shortTolerance},
		PulseLong:     {Duration: longDuration, Tolerance: wideTolerance},
		PulsePreamble: {Duration: preambleDuration, Tolerance: wideTolerance},
		PulseFrameGap: {Duration: frameGapDuration, Tolerance: wideTolerance},
		PulseHuge:     {Duration: hugeDuration, Tolerance: hugeTolerance},
	})
	if err != nil {
		// The rule table is a compile-time constant with disjoint bands.
		panic("lennox: invalid timing rules: " + err.Error())
	}
	return &Phy{codec: codec}
}

// Encode emits the pulse durations for one transmission: the frame followed
// by its bitwise complement, each with preamble and trailer. The result
// alternates mark and space durations, mark first.
func (phy *Phy) Encode(p Packet) []time.Duration {
	pulses := make([]time.Duration, 0, MinCapturePulses)
	pulses = phy.appendFrame(pulses, uint64(p))
	pulses = phy.appendFrame(pulses, uint64(p)^frameMask)
	return pulses
}

// frameMask selects the 48 frame bits.
const frameMask = 1<<FrameBits - 1

// appendFrame emits one frame: preamble, the bits most significant first
// (a constant mark, then a short space for 0 or a long space for 1), and
// the trailer mark/gap pair.
func (phy *Phy) appendFrame(pulses []time.Duration, bits uint64) []time.Duration {
	pulses = append(pulses, preambleDuration, preambleDuration)
	for i := FrameBits - 1; i >= 0; i-- {
		pulses = append(pulses, shortDuration)
		if bits&(1<<uint(i)) != 0 {
			pulses = append(pulses, longDuration)
		} else {
			pulses = append(pulses, shortDuration)
		}
	}
	return append(pulses, shortDuration, frameGapDuration)
}

// Decode classifies a captured pulse sequence and reassembles the frame.
//
// Both frames of the transmission are decoded and the second is required to
// be the bitwise complement of the first. Classification failures surface
// as *pwm.AmbiguousDurationError with the pulse index; structural failures
// as *FrameSyncError, *TruncatedCaptureError, *PulseCombinationError or
// *RepeatMismatchError.
func (phy *Phy) Decode(durations []time.Duration) (Packet, error) {
	if len(durations) < MinCapturePulses {
		return 0, &TruncatedCaptureError{Pulses: len(durations), Expected: MinCapturePulses}
	}

	symbols, err := phy.codec.ClassifyAll(durations)
	if err != nil {
		return 0, err
	}

	pairs := make([][2]PulseType, 0, len(symbols)/2)
	for i := 0; i+1 < len(symbols); i += 2 {
		pairs = append(pairs, [2]PulseType{symbols[i], symbols[i+1]})
	}

	first, rest, err := decodeFrame(pairs)
	if err != nil {
		return 0, err
	}
	repeat, _, err := decodeFrame(rest)
	if err != nil {
		return 0, err
	}

	if first^repeat != frameMask {
		return 0, &RepeatMismatchError{First: first, Repeat: repeat}
	}
	return Packet(first), nil
}

// decodeFrame consumes one frame from the pair stream and returns its bits
// and the remaining pairs.
func decodeFrame(pairs [][2]PulseType) (uint64, [][2]PulseType, error) {
	if len(pairs) == 0 {
		return 0, nil, &TruncatedCaptureError{Pulses: 0, Expected: framePulses}
	}
	if pairs[0] != [2]PulseType{PulsePreamble, PulsePreamble} {
		return 0, nil, &FrameSyncError{
			Field: "preamble",
			Got:   uint64(pairs[0][0])<<8 | uint64(pairs[0][1]),
			Want:  uint64(PulsePreamble)<<8 | uint64(PulsePreamble),
		}
	}

	var bits uint64
	count := 0
	for i, pair := range pairs[1:] {
		switch {
		case pair == [2]PulseType{PulseShort, PulseShort}:
			bits <<= 1
			count++
		case pair == [2]PulseType{PulseShort, PulseLong}:
			bits = bits<<1 | 1
			count++
		case pair[0] == PulseShort && (pair[1] == PulseFrameGap || pair[1] == PulseHuge):
			if count < FrameBits {
				return 0, nil, &TruncatedCaptureError{
					Pulses:   2 + 2*count + 2,
					Expected: framePulses,
				}
			}
			if count > FrameBits {
				return 0, nil, &FrameSyncError{Field: "frame bit count", Got: uint64(count), Want: FrameBits}
			}
			return bits, pairs[i+2:], nil
		default:
			return 0, nil, &PulseCombinationError{
				Index: i + 1,
				Mark:  pairDuration(pair[0]),
				Space: pairDuration(pair[1]),
			}
		}
	}

	return 0, nil, &TruncatedCaptureError{Pulses: 2 + 2*count, Expected: framePulses}
}

// pairDuration reports the canonical duration of a symbol, for error text.
func pairDuration(p PulseType) time.Duration {
	switch p {
	case PulseShort:
		return shortDuration
	case PulseLong:
		return longDuration
	case PulsePreamble:
		return preambleDuration
	case PulseFrameGap:
		return frameGapDuration
	default:
		return hugeDuration
	}
}
