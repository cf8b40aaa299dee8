package lennox

// Packet is one 48-bit command frame, stored in the low bits of a uint64
// with the command type marker in bits 47:40.
type Packet uint64

// Frame structure constants.
const (
	// FrameBits is the number of data bits in one frame
	FrameBits = 48

	// frameBytes is the frame length in bytes
	frameBytes = FrameBits / 8

	// cmdType is the fixed command type marker in bits 47:40
	cmdType = 0xA1

	// fixedBits is the constant field in bits 31:29
	fixedBits = 0b010

	// onesBits is the constant all-ones field in bits 23:8
	onesBits = 0xFFFF

	// tempNone is the temperature code meaning "no setpoint"
	tempNone = 0b1110
)

// Field positions within the frame, bit offset of each field's LSB.
const (
	shiftChecksum = 0
	shiftOnes     = 8
	shiftTemp     = 24
	shiftFixed    = 29
	shiftMode     = 32
	shiftFan      = 35
	shiftSleep    = 38
	shiftPower    = 39
	shiftCmdType  = 40
)

// Mode field codes. The table is exact; unlisted codes are rejected.
const (
	modeCodeCool = 0b000
	modeCodeDry  = 0b001
	modeCodeAuto = 0b010
	modeCodeHeat = 0b011
	modeCodeFan  = 0b100
)

// Fan field codes. The table is exact; unlisted codes are rejected.
const (
	fanCodeZero   = 0b000
	fanCodeLow    = 0b001
	fanCodeMedium = 0b010
	fanCodeHigh   = 0b011
	fanCodeAuto   = 0b100
)

// NewPacket builds the frame for a command, validating it first and
// applying the checksum. Validation is the only failure point: any state
// accepted by ControlState.Validate encodes successfully.
func NewPacket(state ControlState) (Packet, error) {
	if err := state.Validate(); err != nil {
		return 0, err
	}

	var p uint64
	p |= cmdType << shiftCmdType
	p |= fixedBits << shiftFixed
	p |= onesBits << shiftOnes

	if state.Power {
		p |= 1 << shiftPower
	}
	p |= uint64(modeCode(state.Mode)) << shiftMode
	p |= uint64(fanCode(state.Fan)) << shiftFan
	p |= uint64(temperatureCode(state.Temperature)) << shiftTemp

	p |= uint64(checksum(p))
	return Packet(p), nil
}

// ControlState decodes the frame back into a command.
//
// Fixed fields are compared exactly, the checksum is recomputed over the
// data fields, and each code is mapped through the inverse field table.
// The reconstructed state is re-validated so that a decoded command is
// always one that NewPacket would have produced.
func (p Packet) ControlState() (ControlState, error) {
	if got := p.field(shiftCmdType, 0xFF); got != cmdType {
		return ControlState{}, &FrameSyncError{Field: "command type", Got: got, Want: cmdType}
	}
	if got := p.field(shiftFixed, 0b111); got != fixedBits {
		return ControlState{}, &FrameSyncError{Field: "fixed field", Got: got, Want: fixedBits}
	}
	if got := p.field(shiftOnes, 0xFFFF); got != onesBits {
		return ControlState{}, &FrameSyncError{Field: "ones field", Got: got, Want: onesBits}
	}

	stored := byte(p.field(shiftChecksum, 0xFF))
	want := checksum(uint64(p) &^ 0xFF)
	if stored != want {
		return ControlState{}, &ChecksumMismatchError{Got: stored, Want: want}
	}

	mode, err := modeFromCode(byte(p.field(shiftMode, 0b111)))
	if err != nil {
		return ControlState{}, err
	}
	fan, err := fanFromCode(byte(p.field(shiftFan, 0b111)))
	if err != nil {
		return ControlState{}, err
	}
	temp, err := temperatureFromCode(byte(p.field(shiftTemp, 0b11111)))
	if err != nil {
		return ControlState{}, err
	}

	state := ControlState{
		Power:       p.field(shiftPower, 1) == 1,
		Mode:        mode,
		Temperature: temp,
		Fan:         fan,
	}
	if err := state.Validate(); err != nil {
		return ControlState{}, err
	}
	return state, nil
}

// field extracts a masked field at the given bit offset.
func (p Packet) field(shift uint, mask uint64) uint64 {
	return (uint64(p) >> shift) & mask
}

func modeCode(m Mode) byte {
	switch m {
	case ModeCool:
		return modeCodeCool
	case ModeDry:
		return modeCodeDry
	case ModeAuto:
		return modeCodeAuto
	case ModeHeat:
		return modeCodeHeat
	case ModeFan:
		return modeCodeFan
	default:
		// Mode values are closed by construction; Validate has run.
		return modeCodeAuto
	}
}

func modeFromCode(code byte) (Mode, error) {
	switch code {
	case modeCodeCool:
		return ModeCool, nil
	case modeCodeDry:
		return ModeDry, nil
	case modeCodeAuto:
		return ModeAuto, nil
	case modeCodeHeat:
		return ModeHeat, nil
	case modeCodeFan:
		return ModeFan, nil
	default:
		return 0, &UnknownFieldCodeError{Field: "mode", Code: code}
	}
}

func fanCode(f Fan) byte {
	switch f {
	case FanZero:
		return fanCodeZero
	case FanLow:
		return fanCodeLow
	case FanMedium:
		return fanCodeMedium
	case FanHigh:
		return fanCodeHigh
	case FanAuto:
		return fanCodeAuto
	default:
		return fanCodeAuto
	}
}

func fanFromCode(code byte) (Fan, error) {
	switch code {
	case fanCodeZero:
		return FanZero, nil
	case fanCodeLow:
		return FanLow, nil
	case fanCodeMedium:
		return FanMedium, nil
	case fanCodeHigh:
		return FanHigh, nil
	case fanCodeAuto:
		return FanAuto, nil
	default:
		return 0, &UnknownFieldCodeError{Field: "fan", Code: code}
	}
}

// temperatureCode encodes a setpoint as an offset from MinTemperature, or
// tempNone when absent. The caller has already validated the range.
func temperatureCode(temp *int) byte {
	if temp == nil {
		return tempNone
	}
	return byte(*temp - MinTemperature)
}

// temperatureFromCode is the exact inverse of temperatureCode. Codes above
// the supported range (other than tempNone) are rejected rather than mapped
// to an out-of-range Celsius value.
func temperatureFromCode(code byte) (*int, error) {
	if code == tempNone {
		return nil, nil
	}
	if code > MaxTemperature-MinTemperature {
		return nil, &UnknownFieldCodeError{Field: "temperature", Code: code}
	}
	t := int(code) + MinTemperature
	return &t, nil
}
