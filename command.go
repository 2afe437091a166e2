package cmdline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/mfridman/cmdline/pkg/logging"
)

// NoFlag is the flag argument to [CommandLine.Opt] for an option that only has a long name.
const NoFlag rune = 0

// Options configures a [CommandLine]. Subcommands inherit every setting from their parent.
type Options struct {
	// Strict makes unknown options and leftover positional arguments parse errors. Otherwise they
	// are ignored.
	Strict bool

	// NoHelp disables the built-in -h/--help option.
	NoHelp bool

	// Output receives the usage text when help is requested. Defaults to os.Stdout.
	Output io.Writer

	// Logger receives debug diagnostics about ignored arguments and subcommand dispatch. Defaults
	// to a logger that discards everything.
	Logger *logging.Logger
}

// CommandLine parses POSIX-style arguments for one command. Subcommands are themselves
// CommandLines owned by their parent; see [CommandLine.Sub].
//
// The zero value is a non-strict command without the built-in help option that writes usage to
// os.Stdout. Use [New] for any other configuration.
type CommandLine struct {
	// ShortHelp is a brief description shown at the top of the usage text and next to the command
	// name in its parent's command list.
	ShortHelp string

	// Exec runs the command when it is the one selected by [Parse]. See [Run].
	Exec func(ctx context.Context, s *State) error

	name   string
	path   string
	strict bool
	help   bool
	output io.Writer
	logger *logging.Logger

	opts     []optArg
	pos      []posArg // order determines which arguments each group receives
	subs     map[string]*CommandLine
	subNames []string

	values   map[string][]string
	keys     []string // first-insertion order of values
	selected *CommandLine
	parsed   bool
}

type optArg struct {
	name   string
	flag   rune
	hasVal bool
	usage  string
}

type posArg struct {
	name  string
	count int
	usage string
}

// New returns a root command. A nil opts is equivalent to &Options{}: non-strict, with a built-in
// help option.
func New(opts *Options) *CommandLine {
	if opts == nil {
		opts = &Options{}
	}
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return newCommandLine("", opts.Strict, !opts.NoHelp, output, logger)
}

func newCommandLine(name string, strict, help bool, output io.Writer, logger *logging.Logger) *CommandLine {
	c := &CommandLine{
		name:   name,
		strict: strict,
		help:   help,
		output: output,
		logger: logger,
		subs:   make(map[string]*CommandLine),
	}
	if help {
		c.Opt("help", 'h', false, "show this help and exit")
	}
	return c
}

// Opt adds an option with a long name and an optional single-character flag. Pass [NoFlag] for
// an option without a short form.
//
// An option that takes a value accepts it as "-fVAL", "-f VAL", "--name=VAL", or "--name VAL". An
// option that takes no value is a boolean whose value, when present, is its own long name.
//
// Opt panics if the name or flag is invalid or already in use. These are programming errors.
func (c *CommandLine) Opt(name string, flag rune, hasValue bool, usage string) {
	if name == "" || name[0] == optDelim || strings.Contains(name, valueSep) ||
		strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		panic(fmt.Sprintf("cmdline: invalid option name %q", name))
	}
	if flag != NoFlag && (flag == optDelim || string(flag) == valueSep || !unicode.IsPrint(flag) ||
		unicode.IsSpace(flag)) {
		panic(fmt.Sprintf("cmdline: invalid flag %q for option %q", flag, name))
	}
	for _, o := range c.opts {
		if o.name == name {
			panic(fmt.Sprintf("cmdline: duplicate option %q", name))
		}
		if flag != NoFlag && o.flag == flag {
			panic(fmt.Sprintf("cmdline: flag %q for option %q already used by option %q", flag, name, o.name))
		}
	}
	if _, ok := c.subs[name]; ok {
		panic(fmt.Sprintf("cmdline: option %q collides with a subcommand", name))
	}
	c.opts = append(c.opts, optArg{name: name, flag: flag, hasVal: hasValue, usage: usage})
}

// Pos adds a group of positional arguments. Groups receive arguments in the order they were added;
// a count of zero takes every remaining argument, so it can only be used for the last group.
//
// Pos panics on a negative count or on a group added after an unbounded one.
func (c *CommandLine) Pos(name string, count int, usage string) {
	if name == "" {
		panic("cmdline: positional group has no name")
	}
	if count < 0 {
		panic(fmt.Sprintf("cmdline: negative count %d for positional group %q", count, name))
	}
	if n := len(c.pos); n > 0 && c.pos[n-1].count == 0 {
		panic(fmt.Sprintf("cmdline: positional group %q follows unbounded group %q", name, c.pos[n-1].name))
	}
	c.pos = append(c.pos, posArg{name: name, count: count, usage: usage})
}

// Sub returns the subcommand with the given name, creating it on first use. The subcommand
// inherits this command's [Options].
//
// Sub panics if name is not a single word or collides with an option name.
func (c *CommandLine) Sub(name string) *CommandLine {
	if sub, ok := c.subs[name]; ok {
		return sub
	}
	if name == "" || name[0] == optDelim || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		panic(fmt.Sprintf("cmdline: invalid subcommand name %q", name))
	}
	if c.findOpt(name) != nil {
		panic(fmt.Sprintf("cmdline: subcommand %q collides with an option", name))
	}
	if c.subs == nil {
		c.subs = make(map[string]*CommandLine)
	}
	sub := newCommandLine(name, c.strict, c.help, c.output, c.logger)
	c.subs[name] = sub
	c.subNames = append(c.subNames, name)
	return sub
}

// Name returns the command name. For the root this is the first argument passed to [Parse].
func (c *CommandLine) Name() string {
	return c.name
}

// Get returns every value captured under name, in command-line order. The values of a subcommand
// are visible through its ancestors. Get returns nil if nothing was captured.
func (c *CommandLine) Get(name string) []string {
	return slices.Clone(c.values[name])
}

// Has reports whether any value was captured under name. Use it to test boolean options and
// subcommands.
func (c *CommandLine) Has(name string) bool {
	return len(c.values[name]) > 0
}

// Selected returns the deepest subcommand chosen by the last [Parse], or c if no subcommand was
// chosen.
func (c *CommandLine) Selected() *CommandLine {
	cmd := c
	for cmd.selected != nil {
		cmd = cmd.selected
	}
	return cmd
}

func (c *CommandLine) add(name, value string) {
	if c.values == nil {
		c.values = make(map[string][]string)
	}
	if _, ok := c.values[name]; !ok {
		c.keys = append(c.keys, name)
	}
	c.values[name] = append(c.values[name], value)
}

func (c *CommandLine) reset() {
	c.values = nil
	c.keys = nil
	c.selected = nil
	c.parsed = false
	for _, sub := range c.subs {
		sub.reset()
	}
}

func (c *CommandLine) findOpt(name string) *optArg {
	for i := range c.opts {
		if c.opts[i].name == name {
			return &c.opts[i]
		}
	}
	return nil
}

func (c *CommandLine) lookup(t optToken) *optArg {
	if t.long {
		return c.findOpt(t.name)
	}
	for i := range c.opts {
		if c.opts[i].flag != NoFlag && c.opts[i].flag == t.flag {
			return &c.opts[i]
		}
	}
	return nil
}

func (c *CommandLine) out() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

func (c *CommandLine) log() *logging.Logger {
	if c.logger == nil {
		return logging.Discard()
	}
	return c.logger
}

func (c *CommandLine) displayName() string {
	switch {
	case c.path != "":
		return c.path
	case c.name != "":
		return c.name
	default:
		return filepath.Base(os.Args[0])
	}
}
