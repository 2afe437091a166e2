package cmdline

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mfridman/cmdline/pkg/logging"
)

// ParseAndRun parses args and runs the selected command. A convenience function that combines
// [CommandLine.Parse] and [Run] into a single call. See [Run] for details.
func ParseAndRun(
	ctx context.Context,
	root *CommandLine,
	args []string,
	options *RunOptions,
) error {
	if err := root.Parse(args); err != nil {
		return err
	}
	return Run(ctx, root, options)
}

// RunOptions specifies options for running a command.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error streams for the command.
	// If any of these are nil, the command will use the default streams ([os.Stdin], [os.Stdout],
	// and [os.Stderr], respectively).
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Logger is passed to the command as [State.Logger]. If nil, the root command's logger is used.
	Logger *logging.Logger
}

// Run calls the Exec function of the command selected by the last successful parse of root: the
// deepest subcommand named on the command line, or root itself.
//
// If root is selected and has no Exec function, its usage text is written to Stdout and Run
// returns [flag.ErrHelp]. A selected subcommand without an Exec function is a [*NoExecError].
//
// The options parameter may be nil, in which case default values are used.
func Run(ctx context.Context, root *CommandLine, options *RunOptions) error {
	if root == nil {
		return errors.New("failed to run: root command is nil")
	}
	if !root.parsed {
		return errors.New("command has not been parsed")
	}
	options = checkAndSetRunOptions(root, options)

	selected := root.Selected()
	if selected.Exec == nil {
		if selected == root {
			fmt.Fprintln(options.Stdout, root.Usage())
			return flag.ErrHelp
		}
		return &NoExecError{Command: selected}
	}
	state := &State{
		Stdin:  options.Stdin,
		Stdout: options.Stdout,
		Stderr: options.Stderr,
		Logger: options.Logger.Named(selected.Name()),
		root:   root,
		cmd:    selected,
	}
	return selected.Exec(ctx, state)
}

func checkAndSetRunOptions(root *CommandLine, opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Logger == nil {
		opt.Logger = root.log()
	}
	return opt
}
