package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/howijd/cryptdatum/internal/cryptdatum"
)

type checkMode int

const (
	checkHasHeader checkMode = iota
	checkHasValidHeader
	checkHasInvalidHeader
)

var errValidHeader = errors.New("header is valid")

// checkCmd answers a yes/no question about each file through its exit
// status. Nothing is printed on success.
type checkCmd struct {
	mode checkMode
	opts *options
}

func (c *checkCmd) Name() string {
	switch c.mode {
	case checkHasValidHeader:
		return "file-has-valid-header"
	case checkHasInvalidHeader:
		return "file-has-invalid-header"
	default:
		return "file-has-header"
	}
}

func (c *checkCmd) Synopsis() string {
	switch c.mode {
	case checkHasValidHeader:
		return "exit 0 if every file starts with a valid header"
	case checkHasInvalidHeader:
		return "exit 0 if no file starts with a valid header"
	default:
		return "exit 0 if every file starts with a header"
	}
}

func (c *checkCmd) Usage() string {
	return fmt.Sprintf(`usage: cryptdatum [-v] %s FILE...
%s.

Only the first 64 bytes of each file are read. Use -v to print
why a check failed.

`, c.Name(), c.Synopsis())
}

func (c *checkCmd) SetFlags(*flag.FlagSet) {}

// readHeader returns up to HeaderSize bytes from the start of fileName. A file
// shorter than a header is not an error; the checks reject it.
func readHeader(fileName string) ([]byte, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, &cryptdatum.Error{Kind: cryptdatum.KindIO, Op: "open", Err: err}
	}
	defer f.Close()
	buf := make([]byte, cryptdatum.HeaderSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, &cryptdatum.Error{Kind: cryptdatum.KindIO, Op: "read", Err: err}
	}
	return buf[:n], nil
}

func (c *checkCmd) check(fileName string) error {
	buf, err := readHeader(fileName)
	if err != nil {
		// An unreadable header is not a valid one.
		var cerr *cryptdatum.Error
		if c.mode == checkHasInvalidHeader && errors.As(err, &cerr) && cerr.Op == "read" {
			return nil
		}
		return err
	}
	switch c.mode {
	case checkHasHeader:
		if !cryptdatum.HasHeader(buf) {
			return cryptdatum.ErrUnsupportedFormat
		}
	case checkHasValidHeader:
		return cryptdatum.Validate(buf)
	case checkHasInvalidHeader:
		if cryptdatum.HasValidHeader(buf) {
			return errValidHeader
		}
	}
	return nil
}

func (c *checkCmd) run(args ...string) error {
	if len(args) == 0 {
		return usageErr(c.Name() + " requires at least one FILE")
	}
	for _, fileName := range args {
		if err := c.check(fileName); err != nil {
			return fmt.Errorf("%s: %w", fileName, err)
		}
	}
	return nil
}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	err := c.run(f.Args()...)
	// Files that cannot be opened are reported even without -v.
	var cerr *cryptdatum.Error
	always := errors.As(err, &cerr) && cerr.Op == "open"
	return exitStatus(c.opts, err, always)
}
