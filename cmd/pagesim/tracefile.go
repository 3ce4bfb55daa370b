package main

import (
	"fmt"

	"github.com/sibexico/PageSim/sim"
	"github.com/urfave/cli/v2"
)

var (
	compressionFlag = cli.StringFlag{
		Name:  "compression",
		Usage: "compression for the binary trace (none, lz4, snappy)",
		Value: "",
	}
)

var PackCmd = cli.Command{
	Action:    doPack,
	Name:      "pack",
	Usage:     "converts a text trace into a compressed binary trace",
	ArgsUsage: "<text-trace> <binary-trace>",
	Flags: []cli.Flag{
		&compressionFlag,
	},
}

var UnpackCmd = cli.Command{
	Action:    doUnpack,
	Name:      "unpack",
	Usage:     "converts a binary trace back into a text trace",
	ArgsUsage: "<binary-trace> <text-trace>",
}

var InfoCmd = cli.Command{
	Action:    doInfo,
	Name:      "info",
	Usage:     "prints summary statistics for a trace file",
	ArgsUsage: "<trace>",
}

func doPack(context *cli.Context) error {
	if context.Args().Len() != 2 {
		return fmt.Errorf("missing input and/or output trace parameter")
	}
	src := context.Args().Get(0)
	trg := context.Args().Get(1)

	config, err := loadConfig(context)
	if err != nil {
		return err
	}

	compressionName := config.TraceCompression
	if context.IsSet(compressionFlag.Name) {
		compressionName = context.String(compressionFlag.Name)
	}
	compression, err := sim.ParseCompression(compressionName)
	if err != nil {
		return err
	}

	references, err := sim.ReadTextTrace(src)
	if err != nil {
		return err
	}

	if err := sim.WriteBinaryTrace(trg, references, compression); err != nil {
		return err
	}

	fmt.Printf("packed %d references into %s\n", len(references), trg)
	return nil
}

func doUnpack(context *cli.Context) error {
	if context.Args().Len() != 2 {
		return fmt.Errorf("missing input and/or output trace parameter")
	}
	src := context.Args().Get(0)
	trg := context.Args().Get(1)

	references, err := sim.ReadBinaryTrace(src)
	if err != nil {
		return err
	}

	if err := sim.WriteTextTrace(trg, references); err != nil {
		return err
	}

	fmt.Printf("unpacked %d references into %s\n", len(references), trg)
	return nil
}

func doInfo(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing trace parameter")
	}

	references, err := readTraceAuto(context.Args().Get(0))
	if err != nil {
		return err
	}

	stats := sim.ComputeTraceStats(references)
	fmt.Printf("references=%d distinct=%d\n", stats.Count, stats.Distinct)
	if stats.Count > 0 {
		fmt.Printf("page range: %d..%d\n", stats.MinPage, stats.MaxPage)
	}

	return nil
}
