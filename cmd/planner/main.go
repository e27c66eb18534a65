package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/RaunaqR66996/finplan/pkg/infrastructure/scenario"
	"github.com/RaunaqR66996/finplan/pkg/planner"
)

func main() {
	var (
		scenarioDir = flag.String(
			"scenario",
			"",
			"Path to scenario directory containing scenario.yaml and CSV files",
		)
		outputDir    = flag.String("output", "", "Output directory for results (optional)")
		format       = flag.String("format", "text", "Output format: text, json, csv")
		verbose      = flag.Bool("verbose", false, "Enable verbose output")
		validateOnly = flag.Bool("validate", false, "Validate the scenario and exit without planning")
	)

	flag.Parse()

	if *scenarioDir == "" {
		fmt.Fprintln(os.Stderr, "Error: -scenario is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*scenarioDir, *outputDir, *format, *verbose, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(scenarioDir, outputDir, format string, verbose, validateOnly bool) error {
	in, err := scenario.Load(scenarioDir)
	if err != nil {
		return err
	}

	engine, err := planner.NewEngine(in)
	if err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	if validateOnly {
		fmt.Printf("Scenario %s is valid: %d orders, %d items, %d calendar entries\n",
			in.PlanID, len(in.Orders), len(in.Items), len(in.Calendars))
		return nil
	}

	started := time.Now()
	out := engine.Run()
	elapsed := time.Since(started)

	if verbose {
		fmt.Printf("Planned %d orders in %v: %d plan lines, %d alerts\n",
			len(in.Orders), elapsed, len(out.Lines), len(out.Alerts))
	}

	return generateOutput(in, out, OutputConfig{
		Format:    format,
		OutputDir: outputDir,
		Verbose:   verbose,
		PlanTime:  elapsed,
	})
}
