package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/sibexico/PageSim/sim"
	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd/pagesim <command> <flags>

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "load engine configuration from a JSON file",
		Value: "",
	}
)

func main() {
	app := &cli.App{
		Name:  "pagesim",
		Usage: "page replacement simulation toolbox",
		Flags: []cli.Flag{
			&configFlag,
		},
		Commands: []*cli.Command{
			&RunCmd,
			&CompareCmd,
			&PackCmd,
			&UnpackCmd,
			&InfoCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the engine configuration for a command invocation
func loadConfig(context *cli.Context) (*sim.Config, error) {
	if path := context.String(configFlag.Name); path != "" {
		return sim.LoadConfigFromFile(path)
	}
	return sim.LoadConfigFromEnv(), nil
}

// loadReferences resolves the reference sequence from --refs or --trace
func loadReferences(context *cli.Context) ([]int, error) {
	refs := context.String(refsFlag.Name)
	trace := context.String(traceFlag.Name)

	if refs != "" && trace != "" {
		return nil, fmt.Errorf("--refs and --trace are mutually exclusive")
	}
	if refs == "" && trace == "" {
		return nil, fmt.Errorf("a reference sequence is required (--refs or --trace)")
	}

	if refs != "" {
		return sim.ParseReferences(refs)
	}
	return readTraceAuto(trace)
}

// readTraceAuto reads a trace file, detecting the binary format by magic
func readTraceAuto(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	header := make([]byte, 2)
	n, _ := file.Read(header)
	file.Close()

	if n == 2 && binary.LittleEndian.Uint16(header) == sim.TraceMagic {
		reader, err := sim.OpenMmapTrace(path)
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		return reader.References(), nil
	}

	return sim.ReadTextTrace(path)
}
