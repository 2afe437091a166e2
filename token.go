package cmdline

import (
	"strings"
	"unicode/utf8"
)

const (
	optDelim = '-'
	valueSep = "="
)

// cursor walks the argument vector. It is shared by a command and every subcommand it dispatches
// to, so the position and the end-of-options state carry across the whole tree.
type cursor struct {
	args      []string
	pos       int
	endOfOpts bool
}

func (c *cursor) done() bool {
	return c.pos >= len(c.args)
}

func (c *cursor) remaining() int {
	return len(c.args) - c.pos
}

func (c *cursor) peek() string {
	return c.args[c.pos]
}

func (c *cursor) next() string {
	arg := c.args[c.pos]
	c.pos++
	return arg
}

func (c *cursor) rest() []string {
	return c.args[c.pos:]
}

// isOpt reports whether the next argument is an option.
//
// A lone "-" is a positional argument. Two or more hyphens with nothing else end option processing:
// that argument is consumed and isOpt is false for every argument after it.
func (c *cursor) isOpt() bool {
	if c.endOfOpts || c.done() {
		return false
	}
	arg := c.peek()
	if arg == "" || arg[0] != optDelim {
		return false
	}
	if strings.Trim(arg, string(optDelim)) == "" {
		if len(arg) > 1 {
			c.pos++
			c.endOfOpts = true
		}
		return false
	}
	return true
}

// optToken is a split option argument: "-sabc" is flag 's' with value "abc", and "--str=abc" is
// name "str" with value "abc". An empty value means none was given inline.
type optToken struct {
	long  bool
	name  string
	flag  rune
	value string
}

func (t optToken) String() string {
	if t.long {
		return "--" + t.name
	}
	return string(optDelim) + string(t.flag)
}

// readOpt consumes the next argument, which must satisfy isOpt, and splits it. One leading hyphen
// means a short flag and two or more mean a long name.
func (c *cursor) readOpt() optToken {
	arg := c.next()
	body := strings.TrimLeft(arg, string(optDelim))
	if len(arg)-len(body) > 1 {
		name, value, _ := strings.Cut(body, valueSep)
		return optToken{long: true, name: name, value: value}
	}
	flag, size := utf8.DecodeRuneInString(body)
	return optToken{flag: flag, value: body[size:]}
}
