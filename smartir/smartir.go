// Package smartir generates SmartIR code files for the Lennox remote.
//
// SmartIR (a Home Assistant integration) drives climate devices from a JSON
// code file holding one pre-encoded command per reachable state, nested as
// mode -> fan mode -> temperature. This package enumerates every state the
// remote can express and encodes each one as a base64 Broadlink learned
// code.
package smartir

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ghodss/yaml"

	"github.com/mrene/heatpump/lennox"
	"github.com/mrene/heatpump/remote"
)

// Device identification reported in generated code files.
const (
	// Manufacturer is the device brand
	Manufacturer = "Lennox"

	// SupportedController is the blaster family the codes target
	SupportedController = "Broadlink"

	// CommandsEncoding is the encoding of each command string
	CommandsEncoding = "Base64"
)

// SupportedModels lists the heat pump and remote the codes were built for.
var SupportedModels = []string{"MWMA018S4-2P", "RG57A6/BGEFU1"}

// CodeFile is the SmartIR climate code file structure.
type CodeFile struct {
	Manufacturer        string   `json:"manufacturer"`
	SupportedModels     []string `json:"supportedModels"`
	SupportedController string   `json:"supportedController"`
	CommandsEncoding    string   `json:"commandsEncoding"`
	MinTemperature      float64  `json:"minTemperature"`
	MaxTemperature      float64  `json:"maxTemperature"`
	Precision           float64  `json:"precision"`
	OperationModes      []string `json:"operationModes"`
	FanModes            []string `json:"fanModes"`
	Commands            any      `json:"commands"`
}

// Generate builds the complete code file: every operating mode, fan mode
// and temperature, plus the canonical off command.
//
// Commands nest as mode -> fan -> temperature. Fan-only operation has no
// setpoint, so its commands nest one level less. FanZero is omitted: it is
// something the unit selects, not a setting a user picks.
func Generate() (*CodeFile, error) {
	commands := make(map[string]any)

	for _, mode := range lennox.Modes {
		modeMap := make(map[string]any)

		for _, fan := range lennox.Fans {
			if fan == lennox.FanZero {
				continue
			}

			if mode == lennox.ModeFan {
				cmd, err := encodeState(lennox.ControlState{
					Power: true,
					Mode:  mode,
					Fan:   fan,
				})
				if err != nil {
					return nil, err
				}
				modeMap[fan.String()] = cmd
				continue
			}

			fanMap := make(map[string]any)
			for temp := lennox.MinTemperature; temp <= lennox.MaxTemperature; temp++ {
				temp := temp
				cmd, err := encodeState(lennox.ControlState{
					Power:       true,
					Mode:        mode,
					Temperature: &temp,
					Fan:         fan,
				})
				if err != nil {
					return nil, err
				}
				fanMap[strconv.Itoa(temp)] = cmd
			}
			modeMap[fan.String()] = fanMap
		}

		commands[mode.String()] = modeMap
	}

	off, err := encodeState(lennox.ControlState{
		Power: false,
		Mode:  lennox.ModeAuto,
		Fan:   lennox.FanAuto,
	})
	if err != nil {
		return nil, err
	}
	commands["off"] = off

	modes := make([]string, 0, len(lennox.Modes))
	for _, mode := range lennox.Modes {
		modes = append(modes, mode.String())
	}
	fans := make([]string, 0, len(lennox.Fans)-1)
	for _, fan := range lennox.Fans {
		if fan != lennox.FanZero {
			fans = append(fans, fan.String())
		}
	}

	return &CodeFile{
		Manufacturer:        Manufacturer,
		SupportedModels:     SupportedModels,
		SupportedController: SupportedController,
		CommandsEncoding:    CommandsEncoding,
		MinTemperature:      lennox.MinTemperature,
		MaxTemperature:      lennox.MaxTemperature,
		Precision:           1,
		OperationModes:      modes,
		FanModes:            fans,
		Commands:            commands,
	}, nil
}

// JSON renders the code file as indented JSON, the format SmartIR reads.
func (c *CodeFile) JSON() ([]byte, error) {
	out, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal code file: %w", err)
	}
	return out, nil
}

// YAML renders the code file as YAML, for configurations kept in YAML form.
func (c *CodeFile) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal code file: %w", err)
	}
	return out, nil
}

func encodeState(state lennox.ControlState) (string, error) {
	cmd, err := remote.EncodeBase64(state)
	if err != nil {
		return "", fmt.Errorf("encode %s/%s: %w", state.Mode, state.Fan, err)
	}
	return cmd, nil
}
