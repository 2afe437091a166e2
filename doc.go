// Package cmdline parses POSIX-style command lines with long and short options, grouped positional
// arguments, and nested subcommands.
//
// A command line is the command name followed by options, then either a subcommand or positional
// arguments:
//
//	cmd [-f] [-oVALUE | -o VALUE] [--opt=VALUE | --opt VALUE] [--] [args... | sub ...]
//
// Every option has a long name and may have a single-character flag. Short flags do not bundle:
// "-abc" is flag 'a' with the value "bc". An option without a value is a boolean whose value is its
// own name. A lone "-" is an ordinary positional argument, and "--" ends option processing.
//
// Options must precede positional arguments. Positional arguments are assigned to named groups in
// the order the groups were registered. A subcommand takes over parsing when its name is seen, and
// everything it captures is visible through its parent.
//
//	root := cmdline.New(&cmdline.Options{Strict: true})
//	root.Opt("verbose", 'v', false, "enable verbose output")
//	add := root.Sub("add")
//	add.Opt("tag", 't', true, "tag the new item")
//	add.Pos("text", 0, "item text")
//	if err := root.Parse(os.Args); err != nil {
//	    ...
//	}
//	tags := root.Get("tag")
package cmdline
