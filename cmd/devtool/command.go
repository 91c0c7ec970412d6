package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Command is one devtool subcommand
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Registry maps subcommand names to commands
type Registry struct {
	byName map[string]Command
}

// NewRegistry creates a registry holding cmds
func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{byName: make(map[string]Command, len(cmds))}
	for _, cmd := range cmds {
		r.byName[cmd.Name()] = cmd
	}
	return r
}

// Get returns the command registered under name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.byName[name]
	return cmd, ok
}

// Names returns the registered command names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteUsage writes the command list, descriptions aligned in one column
func (r *Registry) WriteUsage(w io.Writer) {
	names := r.Names()
	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Usage: devtool <command> [args...]\n\nCommands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, name, r.byName[name].Description())
	}
	io.WriteString(w, b.String())
}
