package smartir

import (
	"encoding/json"
	"testing"

	"github.com/ghodss/yaml"

	"github.com/mrene/heatpump/lennox"
	"github.com/mrene/heatpump/remote"
)

func TestGenerateMetadata(t *testing.T) {
	file, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if file.Manufacturer != "Lennox" {
		t.Errorf("manufacturer = %q", file.Manufacturer)
	}
	if file.SupportedController != "Broadlink" {
		t.Errorf("controller = %q", file.SupportedController)
	}
	if file.CommandsEncoding != "Base64" {
		t.Errorf("encoding = %q", file.CommandsEncoding)
	}
	if file.MinTemperature != 17 || file.MaxTemperature != 30 {
		t.Errorf("temperature range = %v..%v", file.MinTemperature, file.MaxTemperature)
	}
	if file.Precision != 1 {
		t.Errorf("precision = %v", file.Precision)
	}

	wantModes := []string{"cool", "dry", "auto", "heat", "fan"}
	if len(file.OperationModes) != len(wantModes) {
		t.Fatalf("operation modes = %v", file.OperationModes)
	}
	for i, m := range wantModes {
		if file.OperationModes[i] != m {
			t.Errorf("operation mode %d = %q, want %q", i, file.OperationModes[i], m)
		}
	}

	wantFans := []string{"low", "medium", "high", "auto"}
	if len(file.FanModes) != len(wantFans) {
		t.Fatalf("fan modes = %v", file.FanModes)
	}
	for i, f := range wantFans {
		if file.FanModes[i] != f {
			t.Errorf("fan mode %d = %q, want %q", i, file.FanModes[i], f)
		}
	}
}

func TestGenerateCommandNesting(t *testing.T) {
	file, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	commands := file.Commands.(map[string]any)

	for _, mode := range []string{"cool", "dry", "auto", "heat"} {
		modeMap, ok := commands[mode].(map[string]any)
		if !ok {
			t.Fatalf("commands[%q] is %T, want map", mode, commands[mode])
		}
		for _, fan := range []string{"low", "medium", "high", "auto"} {
			fanMap, ok := modeMap[fan].(map[string]any)
			if !ok {
				t.Fatalf("commands[%q][%q] is %T, want map", mode, fan, modeMap[fan])
			}
			if len(fanMap) != 14 {
				t.Errorf("commands[%q][%q] has %d setpoints, want 14", mode, fan, len(fanMap))
			}
			if _, ok := fanMap["17"].(string); !ok {
				t.Errorf("commands[%q][%q][\"17\"] missing", mode, fan)
			}
			if _, ok := fanMap["30"].(string); !ok {
				t.Errorf("commands[%q][%q][\"30\"] missing", mode, fan)
			}
		}
	}

	// Fan-only operation has no setpoint level.
	fanMap, ok := commands["fan"].(map[string]any)
	if !ok {
		t.Fatalf("commands[\"fan\"] is %T, want map", commands["fan"])
	}
	for _, fan := range []string{"low", "medium", "high", "auto"} {
		if _, ok := fanMap[fan].(string); !ok {
			t.Errorf("commands[\"fan\"][%q] is %T, want string", fan, fanMap[fan])
		}
	}
	if _, ok := fanMap["zero"]; ok {
		t.Error("commands[\"fan\"] includes the automatic-only zero speed")
	}
}

func TestGeneratedCommandsDecode(t *testing.T) {
	file, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	commands := file.Commands.(map[string]any)

	heat := commands["heat"].(map[string]any)["auto"].(map[string]any)["24"].(string)
	state, err := remote.DecodeBase64(heat)
	if err != nil {
		t.Fatalf("DecodeBase64(heat/auto/24) error: %v", err)
	}
	if !state.Power || state.Mode != lennox.ModeHeat || state.Fan != lennox.FanAuto {
		t.Errorf("heat/auto/24 decodes to %s", state)
	}
	if state.Temperature == nil || *state.Temperature != 24 {
		t.Errorf("heat/auto/24 temperature = %v", state.Temperature)
	}

	off, ok := commands["off"].(string)
	if !ok {
		t.Fatalf("commands[\"off\"] is %T, want string", commands["off"])
	}
	state, err = remote.DecodeBase64(off)
	if err != nil {
		t.Fatalf("DecodeBase64(off) error: %v", err)
	}
	if state.Power {
		t.Errorf("off decodes to %s", state)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	file, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	out, err := file.JSON()
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var parsed CodeFile
	if err := json.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if parsed.Manufacturer != file.Manufacturer {
		t.Errorf("manufacturer = %q, want %q", parsed.Manufacturer, file.Manufacturer)
	}
	commands := parsed.Commands.(map[string]any)
	if _, ok := commands["off"].(string); !ok {
		t.Error("off command lost in JSON round trip")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	file, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	out, err := file.YAML()
	if err != nil {
		t.Fatalf("YAML() error: %v", err)
	}

	var parsed CodeFile
	if err := yaml.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if parsed.CommandsEncoding != "Base64" {
		t.Errorf("encoding = %q", parsed.CommandsEncoding)
	}
}
