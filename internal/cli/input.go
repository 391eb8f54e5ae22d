// Package cli turns command-line arguments into password generation runs.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"pwgen/internal/domain"
)

const defaultLength = 20

// Invocation is the validated set of options for one run.
type Invocation struct {
	Count         int
	Length        int
	NoPunctuation bool
	Exclude       string
	Target        string
	Pwned         bool
	ListTargets   bool
	Verbose       bool
	ShowVersion   bool
	ShowHelp      bool
}

// InvocationError reports unusable command-line arguments.
type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func usageErrorf(format string, args ...any) error {
	return &InvocationError{ExitCode: domain.ExitUsage, Message: fmt.Sprintf(format, args...)}
}

func newFlagSet(inv *Invocation) *flag.FlagSet {
	fs := flag.NewFlagSet("pwgen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&inv.Count, "count", 1, "Number of passwords to generate")
	fs.IntVar(&inv.Count, "n", 1, "Number of passwords (shorthand)")
	fs.IntVar(&inv.Length, "length", defaultLength, "Password length, at least 12")
	fs.IntVar(&inv.Length, "l", defaultLength, "Password length (shorthand)")
	fs.BoolVar(&inv.NoPunctuation, "no-punctuation", false, "Leave punctuation out of the default alphabet")
	fs.StringVar(&inv.Exclude, "exclude", "", "Characters to remove from the alphabet")
	fs.StringVar(&inv.Exclude, "x", "", "Characters to remove (shorthand)")
	fs.StringVar(&inv.Target, "target", "", "Named alphabet preset, see -list-targets")
	fs.StringVar(&inv.Target, "t", "", "Named alphabet preset (shorthand)")
	fs.BoolVar(&inv.Pwned, "pwned", false, "Reject passwords found in the Pwned Passwords corpus (network)")
	fs.BoolVar(&inv.ListTargets, "list-targets", false, "List named alphabet presets and exit")
	fs.BoolVar(&inv.Verbose, "verbose", false, "Log rejected candidates and request timings to stderr")
	fs.BoolVar(&inv.Verbose, "v", false, "Verbose logging (shorthand)")
	fs.BoolVar(&inv.ShowVersion, "version", false, "Print version and exit")

	return fs
}

// ParseInvocation parses args into an Invocation. Policy checks that need
// the core, such as the length floor, are left to Run.
func ParseInvocation(args []string) (Invocation, error) {
	var inv Invocation
	fs := newFlagSet(&inv)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Invocation{ShowHelp: true}, nil
		}
		return Invocation{}, usageErrorf("%v", err)
	}
	if fs.NArg() != 0 {
		return Invocation{}, usageErrorf("unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}
	if inv.Count < 1 {
		return Invocation{}, usageErrorf("-count must be at least 1 (got %d)", inv.Count)
	}

	return inv, nil
}

// Usage writes the flag summary to w.
func Usage(w io.Writer) {
	fs := newFlagSet(&Invocation{})
	fs.SetOutput(w)
	fmt.Fprintln(w, "Usage: pwgen [flags]")
	fmt.Fprintln(w)
	fs.PrintDefaults()
}
