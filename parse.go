package cmdline

import (
	"errors"
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/mfridman/cmdline/pkg/suggest"
)

// Parse parses an argument vector as passed to the program, typically os.Args. The first argument
// is the command name; options follow, then either a subcommand name or positional arguments.
//
// Options must come before positional arguments. Once a subcommand name is seen, the subcommand
// parses everything after it and its captured values are copied into this command, so the root
// sees every value captured anywhere in the tree.
//
// If the built-in help option is given, the usage text of the command it was given to is written
// to the configured output and Parse returns [flag.ErrHelp]. An empty args is a plain error; every
// other failure is an [*Error].
//
// Parse discards the values captured by any previous call.
func (c *CommandLine) Parse(args []string) error {
	if len(args) == 0 {
		return errors.New("failed to parse: empty argument list, expected a command name")
	}
	c.reset()
	cur := &cursor{args: args}
	if err := c.parseArgv(cur, ""); err != nil {
		return err
	}
	c.parsed = true
	return nil
}

// parseArgv runs the full parse sequence for this command. The first argument is this command's
// name: the program name for the root, or the name that selected a subcommand.
func (c *CommandLine) parseArgv(cur *cursor, parent string) error {
	c.name = cur.next()
	c.path = c.name
	if parent != "" {
		c.path = parent + " " + c.name
	}
	if err := c.parseOpts(cur); err != nil {
		return err
	}
	if c.help && c.Has("help") {
		fmt.Fprintln(c.out(), c.Usage())
		return flag.ErrHelp
	}
	dispatched, err := c.parseSubs(cur)
	if dispatched || err != nil {
		return err
	}
	return c.parseArgs(cur)
}

func (c *CommandLine) parseOpts(cur *cursor) error {
	for cur.isOpt() {
		tok := cur.readOpt()
		opt := c.lookup(tok)
		if opt == nil {
			if c.strict {
				return c.unknownOption(tok)
			}
			c.log().Debug("command %q: ignoring unknown option %q", c.path, tok)
			continue
		}
		value := tok.value
		if opt.hasVal {
			if value == "" {
				if cur.done() {
					return c.newError(ErrMissingValue, opt.name)
				}
				value = cur.next()
			}
		} else {
			if value != "" {
				return c.newError(ErrUnexpectedValue, opt.name)
			}
			// Booleans are recorded once no matter how often they are repeated.
			if c.Has(opt.name) {
				continue
			}
			value = opt.name
		}
		c.add(opt.name, value)
	}
	return nil
}

// parseSubs hands the remaining arguments to the subcommand named by the next argument, if there
// is one. It reports whether a subcommand took over.
func (c *CommandLine) parseSubs(cur *cursor) (bool, error) {
	if cur.done() {
		return false, nil
	}
	name := cur.peek()
	sub, ok := c.subs[name]
	if !ok {
		return false, nil
	}
	if !c.Has(name) {
		c.add(name, name)
	}
	c.log().Debug("command %q: dispatching to subcommand %q", c.path, name)
	if err := sub.parseArgv(cur, c.path); err != nil {
		return true, err
	}
	for _, key := range sub.keys {
		for _, value := range sub.values[key] {
			c.add(key, value)
		}
	}
	c.selected = sub
	return true, nil
}

func (c *CommandLine) parseArgs(cur *cursor) error {
	for _, p := range c.pos {
		n := p.count
		if n == 0 {
			n = cur.remaining()
		} else if cur.remaining() < n {
			return c.newError(ErrMissingArgs, p.name)
		}
		for i := 0; i < n; i++ {
			c.add(p.name, cur.next())
		}
	}
	if !cur.done() {
		if c.strict {
			err := c.newError(ErrUnexpectedArgs, "")
			err.args = slices.Clone(cur.rest())
			return err
		}
		c.log().Debug("command %q: ignoring unexpected arguments %q", c.path, cur.rest())
		cur.pos = len(cur.args)
	}
	return nil
}

func (c *CommandLine) newError(code ErrorCode, name string) *Error {
	return &Error{code: code, command: c.path, name: name}
}

func (c *CommandLine) unknownOption(tok optToken) *Error {
	err := c.newError(ErrUnknownOption, tok.String())
	if tok.long {
		names := make([]string, 0, len(c.opts))
		for _, o := range c.opts {
			names = append(names, o.name)
		}
		for _, s := range suggest.FindSimilar(tok.name, names, 3) {
			err.suggestions = append(err.suggestions, "--"+s)
		}
	}
	return err
}

// String returns the command path and captured values, mostly useful for debugging.
func (c *CommandLine) String() string {
	var b strings.Builder
	b.WriteString(c.displayName())
	for _, key := range c.keys {
		fmt.Fprintf(&b, " %s=%q", key, c.values[key])
	}
	return b.String()
}
