package cmdline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsage(t *testing.T) {
	t.Parallel()

	t.Run("full", func(t *testing.T) {
		t.Parallel()
		cmdl := New(nil)
		cmdl.ShortHelp = "todo manages a list of things to do"
		cmdl.Opt("verbose", 'v', false, "enable verbose output")
		cmdl.Opt("config", NoFlag, true, "config file path")
		cmdl.Sub("list").ShortHelp = "list items"
		cmdl.Sub("add").ShortHelp = "add an item"
		require.NoError(t, cmdl.Parse([]string{"todo"}))

		expected := `todo manages a list of things to do

Usage:
  todo [flags] <command>

Available Commands:
  add     add an item
  list    list items

Flags:
      --config=VALUE    config file path
  -h, --help            show this help and exit
  -v, --verbose         enable verbose output

Use "todo [command] --help" for more information about a command.`
		assert.Equal(t, expected, cmdl.Usage())
	})
	t.Run("positional groups", func(t *testing.T) {
		t.Parallel()
		cmdl := New(&Options{NoHelp: true})
		cmdl.Pos("src", 2, "source files")
		cmdl.Pos("dst", 1, "")
		cmdl.Pos("extra", 0, "anything else")
		require.NoError(t, cmdl.Parse([]string{"cp", "a", "b", "c"}))

		expected := `Usage:
  cp <src> <src> <dst> [extra...]

Arguments:
  src      source files
  dst
  extra    anything else`
		assert.Equal(t, expected, cmdl.Usage())
	})
	t.Run("subcommand before parse uses its own name", func(t *testing.T) {
		t.Parallel()
		cmdl := New(nil)
		sub := cmdl.Sub("remote")
		assert.Contains(t, sub.Usage(), "  remote [flags]\n")
	})
}
