package cmdline

import (
	"fmt"
	"strings"
)

// ErrorCode classifies a parse failure. ErrorCode values are errors themselves, so callers can
// test for a class of failure with errors.Is:
//
//	if errors.Is(err, cmdline.ErrMissingValue) { ... }
type ErrorCode int

const (
	// ErrUnknownOption is an option the command does not define. Strict commands only.
	ErrUnknownOption ErrorCode = iota + 1
	// ErrUnexpectedValue is a value given to an option that does not take one.
	ErrUnexpectedValue
	// ErrMissingValue is an option that takes a value with none left to take.
	ErrMissingValue
	// ErrMissingArgs is a positional group with fewer arguments left than it requires.
	ErrMissingArgs
	// ErrUnexpectedArgs is arguments left over after every positional group is filled. Strict
	// commands only.
	ErrUnexpectedArgs
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

func (c ErrorCode) Error() string {
	return convertErrorCode(c)
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case ErrUnknownOption:
		return "unknown option"
	case ErrUnexpectedValue:
		return "unexpected value"
	case ErrMissingValue:
		return "missing value"
	case ErrMissingArgs:
		return "missing arguments"
	case ErrUnexpectedArgs:
		return "unexpected positional arguments"
	default:
		return "unknown error"
	}
}

// Error is a parse failure. It records the command path where parsing stopped and the option or
// positional group involved.
type Error struct {
	code        ErrorCode
	command     string
	name        string
	args        []string
	suggestions []string
}

// Code returns the failure class.
func (e *Error) Code() ErrorCode { return e.code }

// Command returns the space-separated path of the command that failed, e.g. "git remote add".
func (e *Error) Command() string { return e.command }

// Name returns the option or positional group name involved, if any.
func (e *Error) Name() string { return e.name }

// Is reports whether target is the ErrorCode of e.
func (e *Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.code
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var detail string
	switch e.code {
	case ErrUnknownOption:
		detail = fmt.Sprintf("unknown option %q", e.name)
		if len(e.suggestions) > 0 {
			detail += ". Did you mean one of these?\n\t" + strings.Join(e.suggestions, "\n\t")
		}
	case ErrUnexpectedValue:
		detail = fmt.Sprintf("unexpected value for option %q", e.name)
	case ErrMissingValue:
		detail = fmt.Sprintf("missing value for option %q", e.name)
	case ErrMissingArgs:
		detail = fmt.Sprintf("missing argument(s) for %q", e.name)
	case ErrUnexpectedArgs:
		detail = fmt.Sprintf("unexpected positional arguments %q", e.args)
	default:
		detail = convertErrorCode(e.code)
	}
	return fmt.Sprintf("command %q: %s", e.command, detail)
}

// NoExecError is returned by [Run] when the selected subcommand has no execution function.
type NoExecError struct {
	Command *CommandLine
}

func (e *NoExecError) Error() string {
	return fmt.Sprintf("command %q has no execution function", e.Command.displayName())
}
