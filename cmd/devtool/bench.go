package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const baselineFile = "baseline.txt"

type BenchCommand struct{}

func (c *BenchCommand) Name() string {
	return "bench"
}

func (c *BenchCommand) Description() string {
	return "Run benchmark suites: bench [run|save|baseline|compare] [suite...]"
}

func (c *BenchCommand) Run(args []string) error {
	action := "run"
	if len(args) > 0 {
		action, args = args[0], args[1:]
	}

	suites, ok := findSuites(args)
	if !ok {
		return fmt.Errorf("unknown suite in %v (known: %s)", args, suiteNames())
	}

	switch action {
	case "run":
		printHeader("Running benchmarks...")
		return runSuites(os.Stdout, suites)
	case "save":
		return saveSuites(time.Now().Format("20060102-150405")+".txt", suites)
	case "baseline":
		return saveSuites(baselineFile, suites)
	case "compare":
		return compareSuites(suites)
	default:
		return fmt.Errorf("unknown subcommand: %s", action)
	}
}

func suiteNames() string {
	names := make([]string, len(benchSuites))
	for i, suite := range benchSuites {
		names[i] = suite.name
	}
	return strings.Join(names, ", ")
}

func suiteArgs(suite benchSuite) []string {
	return []string{"test", "-run=^$", "-bench=" + suite.pattern, "-benchmem", "-count=5", suite.pkg}
}

// runSuites runs each suite in turn, writing all output to out
func runSuites(out io.Writer, suites []benchSuite) error {
	var errs []error
	for _, suite := range suites {
		printInfo("Suite %s (%s)", suite.name, suite.pkg)
		//nolint:forbidigo
		if err := runTool(out, "go", suiteArgs(suite)...); err != nil {
			errs = append(errs, fmt.Errorf("suite %s: %w", suite.name, err))
		}
	}
	return errors.Join(errs...)
}

func saveSuites(filename string, suites []benchSuite) error {
	printHeader("Running benchmarks and saving results...")
	if err := os.MkdirAll(resultsDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", resultsDir, err)
	}

	path := filepath.Join(resultsDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := runSuites(io.MultiWriter(os.Stdout, f), suites); err != nil {
		return err
	}

	printSuccess("Results saved to %s", path)
	return nil
}

// compareSuites runs the suites into current.txt and diffs it against the
// baseline with benchstat when it is installed.
func compareSuites(suites []benchSuite) error {
	baseline := filepath.Join(resultsDir, baselineFile)
	if _, err := os.Stat(baseline); err != nil {
		return fmt.Errorf("no baseline at %s, run 'devtool bench baseline' first", baseline)
	}

	printHeader("Comparing benchmarks to baseline...")

	current := filepath.Join(resultsDir, "current.txt")
	f, err := os.Create(current)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", current, err)
	}
	if err := runSuites(f, suites); err != nil {
		printWarning("Some benchmarks failed: %v", err)
	}
	f.Close()

	if _, err := exec.LookPath("benchstat"); err != nil {
		printWarning("benchstat not installed: go install golang.org/x/perf/cmd/benchstat@latest")
		return nil
	}
	return runTool(os.Stdout, "benchstat", baseline, current)
}
