// Command lennoxir converts between Lennox heat pump commands and Broadlink
// learned-code captures.
//
//	lennoxir decode [-in capture.ir] [-base64] [-raw]
//	lennoxir encode -mode heat -temp 24 [-fan auto] [-power] [-repeat n] [-base64]
//	lennoxir smartir [-out codes.json] [-format json|yaml]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mrene/heatpump/broadlink"
	"github.com/mrene/heatpump/internal/logger"
	"github.com/mrene/heatpump/lennox"
	"github.com/mrene/heatpump/remote"
	"github.com/mrene/heatpump/smartir"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "decode":
		err = runDecode(os.Args[2:])
	case "encode":
		err = runEncode(os.Args[2:])
	case "smartir":
		err = runSmartIR(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		logger.Get(logger.InfoLevel).Errorf("%s: %v", os.Args[1], err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: lennoxir <decode|encode|smartir> [flags]")
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	in := fs.String("in", "", "capture file (default: stdin)")
	useBase64 := fs.Bool("base64", false, "capture is base64 instead of hex")
	raw := fs.Bool("raw", false, "also print the raw pulse view")
	level := fs.String("log", logger.InfoLevel, "log level")
	_ = fs.Parse(args)

	log := logger.Get(*level)

	capture, err := readInput(*in)
	if err != nil {
		return err
	}

	// Capture tools emit one code per line; decode them all.
	for _, line := range strings.Split(strings.TrimSpace(capture), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var recording *broadlink.Recording
		if *useBase64 {
			recording, err = broadlink.DecodeBase64(line)
		} else {
			recording, err = broadlink.DecodeHex(line)
		}
		if err != nil {
			return fmt.Errorf("container: %w", err)
		}
		log.Debugf("parsed %s recording: %d pulses, repeat=%d",
			recording.Transport, len(recording.Pulses), recording.RepeatCount)

		if *raw {
			fmt.Println(broadlink.RawFormat(recording))
		}

		state, err := remote.Decode(recording)
		if err != nil {
			return err
		}
		fmt.Println(state)
	}
	return nil
}

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	power := fs.Bool("power", true, "power state")
	mode := fs.String("mode", "auto", "operating mode: cool|dry|auto|heat|fan")
	temp := fs.Int("temp", 0, "target temperature in C (omit for no setpoint)")
	fan := fs.String("fan", "auto", "fan speed: low|medium|high|auto")
	repeat := fs.Uint("repeat", 0, "container repeat count")
	useBase64 := fs.Bool("base64", false, "emit base64 instead of hex")
	_ = fs.Parse(args)

	m, err := lennox.ParseMode(*mode)
	if err != nil {
		return err
	}
	f, err := lennox.ParseFan(*fan)
	if err != nil {
		return err
	}

	state := lennox.ControlState{Power: *power, Mode: m, Fan: f}
	if *temp != 0 {
		state.Temperature = temp
	}

	var out string
	if *useBase64 {
		out, err = remote.EncodeBase64(state, remote.WithRepeatCount(uint8(*repeat)))
	} else {
		out, err = remote.EncodeHex(state, remote.WithRepeatCount(uint8(*repeat)))
	}
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}

func runSmartIR(args []string) error {
	fs := flag.NewFlagSet("smartir", flag.ExitOnError)
	out := fs.String("out", "", "output file (default: stdout)")
	format := fs.String("format", "json", "output format: json|yaml")
	_ = fs.Parse(args)

	codeFile, err := smartir.Generate()
	if err != nil {
		return err
	}

	var data []byte
	switch *format {
	case "json":
		data, err = codeFile.JSON()
	case "yaml":
		data, err = codeFile.YAML()
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
	if err != nil {
		return err
	}

	if *out == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(*out, append(data, '\n'), 0o644)
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
