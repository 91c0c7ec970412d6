package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := NewRegistry(&BuildCommand{}, &BenchCommand{}, &CheckCoverageCommand{})

	if len(os.Args) < 2 {
		registry.WriteUsage(os.Stdout)
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		printFail("Unknown command: %s", os.Args[1])
		registry.WriteUsage(os.Stdout)
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		printFail("%s: %v", cmd.Name(), err)
		os.Exit(1)
	}
}
