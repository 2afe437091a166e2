package cmdline

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/mfridman/cmdline/pkg/textutil"
)

const usageWidth = 80

// Usage returns the help text for this command: its synopsis, subcommands, positional arguments,
// and options.
func (c *CommandLine) Usage() string {
	var b strings.Builder

	if c.ShortHelp != "" {
		for _, line := range textutil.Wrap(c.ShortHelp, usageWidth) {
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Usage:\n  " + c.synopsis() + "\n\n")

	if len(c.subNames) > 0 {
		names := slices.Clone(c.subNames)
		slices.Sort(names)
		rows := make([][2]string, 0, len(names))
		for _, name := range names {
			rows = append(rows, [2]string{name, c.subs[name].ShortHelp})
		}
		b.WriteString("Available Commands:\n")
		b.WriteString(textutil.Columns(rows, usageWidth))
		b.WriteString("\n")
	}

	if len(c.pos) > 0 {
		rows := make([][2]string, 0, len(c.pos))
		for _, p := range c.pos {
			rows = append(rows, [2]string{p.name, p.usage})
		}
		b.WriteString("Arguments:\n")
		b.WriteString(textutil.Columns(rows, usageWidth))
		b.WriteString("\n")
	}

	if len(c.opts) > 0 {
		opts := slices.Clone(c.opts)
		slices.SortFunc(opts, func(a, b optArg) int {
			return cmp.Compare(a.name, b.name)
		})
		rows := make([][2]string, 0, len(opts))
		for _, o := range opts {
			rows = append(rows, [2]string{formatOptName(o), o.usage})
		}
		b.WriteString("Flags:\n")
		b.WriteString(textutil.Columns(rows, usageWidth))
		b.WriteString("\n")
	}

	if len(c.subNames) > 0 && c.help {
		fmt.Fprintf(&b, "Use \"%s [command] --help\" for more information about a command.\n", c.displayName())
	}

	return strings.TrimRight(b.String(), "\n")
}

func (c *CommandLine) synopsis() string {
	parts := []string{c.displayName()}
	if len(c.opts) > 0 {
		parts = append(parts, "[flags]")
	}
	if len(c.subNames) > 0 {
		parts = append(parts, "<command>")
	}
	for _, p := range c.pos {
		switch p.count {
		case 0:
			parts = append(parts, "["+p.name+"...]")
		default:
			for i := 0; i < p.count; i++ {
				parts = append(parts, "<"+p.name+">")
			}
		}
	}
	return strings.Join(parts, " ")
}

// formatOptName renders an option as "-s, --str=VALUE", aligning long-only options under the
// long names of options that have a flag.
func formatOptName(o optArg) string {
	name := "    --" + o.name
	if o.flag != NoFlag {
		name = string(optDelim) + string(o.flag) + ", --" + o.name
	}
	if o.hasVal {
		name += "=VALUE"
	}
	return name
}
