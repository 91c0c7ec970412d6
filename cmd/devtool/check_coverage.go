package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const defaultCoverageThreshold = 80.0

var defaultCoverageFile = filepath.Join(coverDir, "coverage.out")

type CheckCoverageCommand struct{}

type coverageOptions struct {
	file      string
	threshold float64
	runTests  bool
	html      bool
	packages  []string
}

func (c *CheckCoverageCommand) Name() string {
	return "check-coverage"
}

func (c *CheckCoverageCommand) Description() string {
	return "Check total test coverage against a threshold: [-run] [-html] [-pkgs a,b] [file] [threshold] [pkg...]"
}

func (c *CheckCoverageCommand) Run(args []string) error {
	opts, err := parseCoverageOptions(args)
	if err != nil {
		return err
	}

	printHeader(fmt.Sprintf("Coverage threshold %.1f%%", opts.threshold))

	if opts.needsRun() {
		if err := runCoverage(opts); err != nil {
			return err
		}
	}

	//nolint:forbidigo // file is validated in parseCoverageOptions
	report, err := toolOutput("go", "tool", "cover", "-func="+opts.file)
	if err != nil {
		return fmt.Errorf("go tool cover failed: %w", err)
	}
	total, err := parseCoverageTotal(report)
	if err != nil {
		return err
	}
	printInfo("Total coverage: %.1f%%", total)

	if opts.html {
		html := strings.TrimSuffix(opts.file, filepath.Ext(opts.file)) + ".html"
		if err := runTool(nil, "go", "tool", "cover", "-html="+opts.file, "-o", html); err != nil {
			printWarning("HTML report failed: %v", err)
		} else {
			printSuccess("HTML report: %s", html)
		}
	}

	if total < opts.threshold {
		return fmt.Errorf("coverage %.1f%% is below %.1f%%", total, opts.threshold)
	}
	printSuccess("Coverage meets threshold.")
	return nil
}

func parseCoverageOptions(args []string) (*coverageOptions, error) {
	opts := &coverageOptions{file: defaultCoverageFile, threshold: defaultCoverageThreshold}

	fs := flag.NewFlagSet("check-coverage", flag.ContinueOnError)
	fs.BoolVar(&opts.runTests, "run", false, "Run tests before checking coverage")
	fs.BoolVar(&opts.html, "html", false, "Write an HTML coverage report next to the profile")
	pkgs := fs.String("pkgs", "", "Comma-separated packages to test")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	rest := fs.Args()
	if len(rest) > 0 {
		opts.file = filepath.Clean(rest[0])
	}
	if len(rest) > 1 {
		threshold, err := strconv.ParseFloat(rest[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid threshold '%s'", rest[1])
		}
		opts.threshold = threshold
		opts.packages = append(opts.packages, rest[2:]...)
	}
	for _, p := range strings.Split(*pkgs, ",") {
		if p = strings.TrimSpace(p); p != "" {
			opts.packages = append(opts.packages, p)
		}
	}

	if filepath.IsAbs(opts.file) || strings.HasPrefix(opts.file, "..") {
		return nil, fmt.Errorf("invalid path '%s': must be relative and within project", opts.file)
	}
	return opts, nil
}

// needsRun reports whether the profile must be regenerated. A profile on
// disk can't be trusted to match an explicit package list.
func (o *coverageOptions) needsRun() bool {
	if o.runTests || len(o.packages) > 0 {
		return true
	}
	_, err := os.Stat(o.file)
	return err != nil
}

func runCoverage(opts *coverageOptions) error {
	if err := os.MkdirAll(filepath.Dir(opts.file), 0755); err != nil {
		return fmt.Errorf("failed to create coverage directory: %w", err)
	}

	pkgs := opts.packages
	if len(pkgs) == 0 {
		pkgs = []string{"./..."}
	}
	args := append([]string{"test", "-race", "-covermode=atomic", "-coverprofile=" + opts.file}, pkgs...)

	printInfo("Running tests with coverage...")
	//nolint:forbidigo
	if err := runTool(os.Stdout, "go", args...); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	return nil
}

// parseCoverageTotal reads the percentage from the "total:" line of
// `go tool cover -func` output.
func parseCoverageTotal(report string) (float64, error) {
	for _, line := range strings.Split(report, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != "total:" {
			continue
		}
		pct := strings.TrimSuffix(fields[len(fields)-1], "%")
		total, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse coverage percentage '%s'", pct)
		}
		return total, nil
	}
	return 0, fmt.Errorf("no total line in coverage report")
}
