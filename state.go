package cmdline

import (
	"io"

	"github.com/mfridman/cmdline/pkg/logging"
)

// State is passed to a command's Exec function. Values are looked up in the root command, so a
// subcommand sees options given to any of its ancestors as well as its own.
type State struct {
	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Logger is [RunOptions.Logger], or the root command's logger, named after the running command.
	Logger *logging.Logger

	root *CommandLine
	cmd  *CommandLine
}

// Command returns the command being run.
func (s *State) Command() *CommandLine {
	return s.cmd
}

// Get returns every value captured under name anywhere on the command line, in order.
func (s *State) Get(name string) []string {
	return s.root.Get(name)
}

// Has reports whether name was given anywhere on the command line.
func (s *State) Has(name string) bool {
	return s.root.Has(name)
}

// Value returns the last value captured under name, or def if there is none. Later occurrences of
// an option override earlier ones.
func (s *State) Value(name, def string) string {
	values := s.root.values[name]
	if len(values) == 0 {
		return def
	}
	return values[len(values)-1]
}
