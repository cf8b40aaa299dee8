// Package remote composes the full Lennox codec chain behind two entry
// points: encoding a thermostat command into a Broadlink learned code, and
// decoding a captured learned code back into the command it carries.
//
// Encode:
//
//	temp := 24
//	capture, err := remote.EncodeHex(lennox.ControlState{
//	    Power:       true,
//	    Mode:        lennox.ModeHeat,
//	    Temperature: &temp,
//	    Fan:         lennox.FanAuto,
//	}, remote.WithRepeatCount(1))
//
// Decode:
//
//	state, err := remote.DecodeHex(capture)
//
// Encoding fails only when the command itself is invalid; every later stage
// is total over validated input. Decode errors wrap the failing stage's
// typed error ("container: ...", "pulse: ...", "frame: ..."), so callers can
// both present a stage-tagged message and unwrap the underlying cause with
// errors.As.
package remote
