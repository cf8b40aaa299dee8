package lennox

import "fmt"

// Temperature limits supported by the remote, in whole degrees Celsius.
const (
	// MinTemperature is the lowest settable target temperature
	MinTemperature = 17

	// MaxTemperature is the highest settable target temperature
	MaxTemperature = 30
)

// Mode is the operating mode selected on the remote.
type Mode uint8

const (
	// ModeCool runs the compressor for cooling
	ModeCool Mode = iota

	// ModeDry dehumidifies
	ModeDry

	// ModeAuto lets the unit choose between heating and cooling
	ModeAuto

	// ModeHeat runs the compressor for heating
	ModeHeat

	// ModeFan circulates air without the compressor
	ModeFan
)

// Modes lists every operating mode, in protocol code order.
var Modes = []Mode{ModeCool, ModeDry, ModeAuto, ModeHeat, ModeFan}

// String returns the lowercase name used in SmartIR code files.
func (m Mode) String() string {
	switch m {
	case ModeCool:
		return "cool"
	case ModeDry:
		return "dry"
	case ModeAuto:
		return "auto"
	case ModeHeat:
		return "heat"
	case ModeFan:
		return "fan"
	default:
		return "unknown"
	}
}

// Fan is the fan speed selected on the remote.
type Fan uint8

const (
	// FanZero is sent in modes where the unit manages the fan itself
	FanZero Fan = iota

	// FanLow is the lowest fan speed
	FanLow

	// FanMedium is the middle fan speed
	FanMedium

	// FanHigh is the highest fan speed
	FanHigh

	// FanAuto lets the unit pick the fan speed
	FanAuto
)

// Fans lists every fan setting, in protocol code order.
var Fans = []Fan{FanZero, FanLow, FanMedium, FanHigh, FanAuto}

// String returns the lowercase name used in SmartIR code files.
func (f Fan) String() string {
	switch f {
	case FanZero:
		return "zero"
	case FanLow:
		return "low"
	case FanMedium:
		return "medium"
	case FanHigh:
		return "high"
	case FanAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseMode maps a lowercase mode name back to its Mode.
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", name)
}

// ParseFan maps a lowercase fan name back to its Fan.
func ParseFan(name string) (Fan, error) {
	for _, f := range Fans {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown fan setting %q", name)
}

// ControlState is the complete command sent to the heat pump.
type ControlState struct {
	// Power is true when the unit should be on
	Power bool

	// Mode is the operating mode
	Mode Mode

	// Temperature is the target temperature in whole degrees Celsius,
	// or nil when the mode has no setpoint (fan-only operation)
	Temperature *int

	// Fan is the fan speed setting
	Fan Fan
}

// String renders the state in a compact human-readable form, e.g.
// "power=on mode=heat temp=24C fan=auto".
func (s ControlState) String() string {
	power := "off"
	if s.Power {
		power = "on"
	}
	temp := "none"
	if s.Temperature != nil {
		temp = fmt.Sprintf("%dC", *s.Temperature)
	}
	return fmt.Sprintf("power=%s mode=%s temp=%s fan=%s", power, s.Mode, temp, s.Fan)
}

// Validate checks that the state can be encoded into a frame.
//
// The temperature must lie within MinTemperature..MaxTemperature when
// present. ModeFan never carries a setpoint; ModeHeat, ModeCool and ModeDry
// always do. ModeAuto accepts either (the remote's canonical "off" command
// is ModeAuto with no setpoint).
func (s ControlState) Validate() error {
	if s.Temperature != nil {
		if *s.Temperature < MinTemperature || *s.Temperature > MaxTemperature {
			return &InvalidTemperatureError{Temperature: s.Temperature, Mode: s.Mode}
		}
		if s.Mode == ModeFan {
			return &InvalidTemperatureError{Temperature: s.Temperature, Mode: s.Mode}
		}
		return nil
	}

	switch s.Mode {
	case ModeHeat, ModeCool, ModeDry:
		return &InvalidTemperatureError{Temperature: nil, Mode: s.Mode}
	}

	return nil
}
