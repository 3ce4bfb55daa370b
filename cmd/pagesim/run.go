package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sibexico/PageSim/sim"
	"github.com/urfave/cli/v2"
)

var (
	policyFlag = cli.StringFlag{
		Name:  "policy",
		Usage: "replacement policy (fifo, lru, lfu, optimal, clock, random)",
		Value: "",
	}
	framesFlag = cli.IntFlag{
		Name:  "frames",
		Usage: "number of memory frames",
		Value: 0,
	}
	refsFlag = cli.StringFlag{
		Name:  "refs",
		Usage: "comma-separated reference sequence, e.g. 1,2,3,4,1,2,5",
		Value: "",
	}
	traceFlag = cli.StringFlag{
		Name:  "trace",
		Usage: "read the reference sequence from a trace file (text or binary)",
		Value: "",
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed for the random policy",
		Value: 0,
	}
	stepsFlag = cli.BoolFlag{
		Name:  "steps",
		Usage: "print the per-reference history",
	}
)

var RunCmd = cli.Command{
	Action: doRun,
	Name:   "run",
	Usage:  "runs a single simulation and prints its summary",
	Flags: []cli.Flag{
		&policyFlag,
		&framesFlag,
		&refsFlag,
		&traceFlag,
		&seedFlag,
		&stepsFlag,
	},
}

func doRun(context *cli.Context) error {
	config, err := loadConfig(context)
	if err != nil {
		return err
	}

	if context.IsSet(seedFlag.Name) {
		config.Seed = context.Int64(seedFlag.Name)
	}

	policyName := config.DefaultPolicy
	if context.IsSet(policyFlag.Name) {
		policyName = context.String(policyFlag.Name)
	}
	policy, err := sim.ParsePolicy(policyName)
	if err != nil {
		return err
	}

	frameCount := config.FrameCount
	if context.IsSet(framesFlag.Name) {
		frameCount = context.Int(framesFlag.Name)
	}

	references, err := loadReferences(context)
	if err != nil {
		return err
	}

	engine, err := sim.NewEngine(config)
	if err != nil {
		return err
	}

	result, err := engine.Simulate(policy, frameCount, references)
	if err != nil {
		return err
	}

	if context.Bool(stepsFlag.Name) {
		printSteps(result)
	}

	fmt.Printf("policy=%s frames=%d references=%d\n", result.Policy, result.FrameCount, len(result.References))
	fmt.Printf("faults=%d hits=%d fault-rate=%.1f%%\n", result.Faults, result.Hits, result.FaultRate()*100)

	return nil
}

// printSteps renders the per-reference history as a table
func printSteps(result *sim.SimulationResult) {
	for _, step := range result.Steps {
		outcome := "hit  "
		if step.Fault {
			outcome = "FAULT"
		}

		evicted := ""
		if step.DidEvict {
			evicted = fmt.Sprintf(" evicted %d", step.Evicted)
		}

		fmt.Printf("%4d ref %-6d %s %s%s\n", step.Index, step.Page, outcome, renderFrames(step.Frames), evicted)
	}
}

// renderFrames formats a frame snapshot like "[ 1 2 - ]"
func renderFrames(frames []sim.Frame) string {
	var sb strings.Builder
	sb.WriteString("[")
	for _, frame := range frames {
		sb.WriteString(" ")
		if frame.Occupied {
			sb.WriteString(strconv.Itoa(frame.Page))
		} else {
			sb.WriteString("-")
		}
	}
	sb.WriteString(" ]")
	return sb.String()
}
