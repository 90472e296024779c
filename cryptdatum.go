package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

// options holds the settings shared by every subcommand.
type options struct {
	verbose bool
	stdout  io.Writer
	stderr  io.Writer
}

// fail prints err if always is set or -v was given.
func (o *options) fail(err error, always bool) {
	if always || o.verbose {
		fmt.Fprintln(o.stderr, err)
	}
}

var errUsage = errors.New("usage error")

type usageError string

func (e usageError) Error() string      { return "cryptdatum: " + string(e) }
func (usageError) Is(target error) bool { return target == errUsage }

func usageErr(msg string) error {
	return usageError(msg)
}

// exitStatus maps the result of a subcommand to its exit status and prints
// err when appropriate. Usage errors are always printed.
func exitStatus(o *options, err error, always bool) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	if errors.Is(err, errUsage) {
		o.fail(err, true)
		return subcommands.ExitUsageError
	}
	o.fail(err, always)
	return subcommands.ExitFailure
}

func newCommander(fs *flag.FlagSet, o *options) *subcommands.Commander {
	fs.BoolVar(&o.verbose, "v", false, "print why a check failed")
	cdr := subcommands.NewCommander(fs, "cryptdatum")
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.FlagsCommand(), "")
	cdr.Register(cdr.CommandsCommand(), "")
	cdr.Register(&checkCmd{mode: checkHasHeader, opts: o}, "checks")
	cdr.Register(&checkCmd{mode: checkHasValidHeader, opts: o}, "checks")
	cdr.Register(&checkCmd{mode: checkHasInvalidHeader, opts: o}, "checks")
	cdr.Register(&infoCmd{opts: o, format: "table"}, "")
	return cdr
}

func main() {
	o := &options{stdout: os.Stdout, stderr: os.Stderr}
	fs := flag.NewFlagSet("cryptdatum", flag.ExitOnError)
	cdr := newCommander(fs, o)
	cdr.Explain = func(w io.Writer) {
		fmt.Fprint(w, `usage: cryptdatum [-v] <subcommand> FILE...
Inspect Cryptdatum headers.

`)
	}
	fs.Parse(os.Args[1:])
	os.Exit(int(cdr.Execute(context.Background())))
}
