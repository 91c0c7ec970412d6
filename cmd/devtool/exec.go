package main

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
)

const (
	ansiGreen  = "\033[0;32m"
	ansiRed    = "\033[0;31m"
	ansiYellow = "\033[1;33m"
	ansiBlue   = "\033[0;34m"
	ansiReset  = "\033[0m"
)

func printColored(color, symbol, format string, a ...any) {
	fmt.Printf("%s%s %s%s\n", color, symbol, fmt.Sprintf(format, a...), ansiReset)
}

func printInfo(format string, a ...any)    { printColored(ansiBlue, "ℹ", format, a...) }
func printSuccess(format string, a ...any) { printColored(ansiGreen, "✓", format, a...) }
func printWarning(format string, a ...any) { printColored(ansiYellow, "⚠", format, a...) }
func printFail(format string, a ...any)    { printColored(ansiRed, "✗", format, a...) }

func printHeader(title string) {
	fmt.Printf("\n%s=== %s ===%s\n", ansiYellow, title, ansiReset)
}

// unsafeArgFragments are rejected in any argument handed to exec.Command
var unsafeArgFragments = []string{"\n", "\r", "\x00", "|", "`", "$(", "&&", "||", ">", "<"}

func validateArgs(args ...string) error {
	for _, arg := range args {
		for _, frag := range unsafeArgFragments {
			if strings.Contains(arg, frag) {
				return fmt.Errorf("refusing argument %q: contains %q", arg, frag)
			}
		}
	}
	return nil
}

// runTool runs name with args, sending output to out (discarded when nil)
func runTool(out io.Writer, name string, args ...string) error {
	if err := validateArgs(append([]string{name}, args...)...); err != nil {
		return err
	}
	// #nosec G204 - arguments are validated above
	cmd := exec.Command(name, args...)
	if out != nil {
		cmd.Stdout = out
		cmd.Stderr = out
	}
	return cmd.Run()
}

// toolOutput runs name with args and returns its trimmed stdout
func toolOutput(name string, args ...string) (string, error) {
	if err := validateArgs(append([]string{name}, args...)...); err != nil {
		return "", err
	}
	// #nosec G204 - arguments are validated above
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
