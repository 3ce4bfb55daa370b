package main

import (
	"fmt"

	"github.com/sibexico/PageSim/sim"
	"github.com/urfave/cli/v2"
)

var CompareCmd = cli.Command{
	Action: doCompare,
	Name:   "compare",
	Usage:  "runs every policy over the same inputs and compares fault counts",
	Flags: []cli.Flag{
		&framesFlag,
		&refsFlag,
		&traceFlag,
		&seedFlag,
	},
}

func doCompare(context *cli.Context) error {
	config, err := loadConfig(context)
	if err != nil {
		return err
	}

	seed := config.Seed
	if context.IsSet(seedFlag.Name) {
		seed = context.Int64(seedFlag.Name)
	}

	frameCount := config.FrameCount
	if context.IsSet(framesFlag.Name) {
		frameCount = context.Int(framesFlag.Name)
	}

	references, err := loadReferences(context)
	if err != nil {
		return err
	}

	comparison, err := sim.ComparePolicies(frameCount, references, seed)
	if err != nil {
		return err
	}

	fmt.Printf("frames=%d references=%d\n", comparison.FrameCount, len(comparison.References))
	fmt.Printf("%-8s %8s %8s %12s\n", "policy", "faults", "hits", "fault-rate")
	for _, result := range comparison.Results {
		fmt.Printf("%-8s %8d %8d %11.1f%%\n", result.Policy, result.Faults, result.Hits, result.FaultRate()*100)
	}
	fmt.Printf("best: %s\n", comparison.Best().Policy)

	return nil
}
