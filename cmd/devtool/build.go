package main

import (
	"fmt"
	"os"
	"path/filepath"
)

type BuildCommand struct{}

func (c *BuildCommand) Name() string {
	return "build"
}

func (c *BuildCommand) Description() string {
	return "Build every binary target into bin/"
}

func (c *BuildCommand) Run(args []string) error {
	printHeader("Building Binaries")

	if err := os.MkdirAll(binDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", binDir, err)
	}

	version := buildVersion()
	for _, target := range binaries {
		out := filepath.Join(binDir, target.name)
		printInfo("Building %s from %s (%s)...", out, target.pkg, version)
		if err := runTool(nil, "go", buildArgs(target, version)...); err != nil {
			return fmt.Errorf("failed to build %s: %w", target.name, err)
		}
		printSuccess("Built: %s", out)
	}

	return nil
}

// buildVersion describes the working tree for the binary's version string
func buildVersion() string {
	//nolint:forbidigo
	if version, err := toolOutput("git", "describe", "--tags", "--always", "--dirty"); err == nil && version != "" {
		return version
	}
	return "dev"
}

func buildArgs(target binaryTarget, version string) []string {
	return []string{
		"build",
		"-ldflags", "-X main.version=" + version,
		"-o", filepath.Join(binDir, target.name),
		target.pkg,
	}
}
