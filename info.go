package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/howijd/cryptdatum/internal/cryptdatum"
	"github.com/howijd/cryptdatum/internal/report"
)

type infoCmd struct {
	format report.Format
	opts   *options
}

func (*infoCmd) Name() string     { return "file-info" }
func (*infoCmd) Synopsis() string { return "print the decoded header" }
func (*infoCmd) Usage() string {
	return `usage: cryptdatum file-info [-o FORMAT] FILE...
Decode the header of each file and print its fields and flags.

The header must be valid. For example,
  cryptdatum file-info -o json datum.cdt
prints the header of datum.cdt as JSON.

`
}

func (c *infoCmd) SetFlags(fs *flag.FlagSet) {
	fs.Var(&c.format, "o", "output format: table, json or yaml")
}

func (c *infoCmd) info(p *report.Printer, fileName string) error {
	f, err := os.Open(fileName)
	if err != nil {
		return &cryptdatum.Error{Kind: cryptdatum.KindIO, Op: "open", Err: err}
	}
	defer f.Close()
	h, err := cryptdatum.DecodeHeader(f)
	if err != nil {
		return err
	}
	return p.Print(report.NewHeaderReport(fileName, h))
}

func (c *infoCmd) run(args ...string) error {
	if len(args) == 0 {
		return usageErr("file-info requires at least one FILE")
	}
	color := c.format == report.FormatTable && colorEnabled(c.opts.stdout)
	p := report.NewPrinter(c.opts.stdout, c.format, color)
	for i, fileName := range args {
		if i > 0 && c.format == report.FormatTable {
			fmt.Fprintln(c.opts.stdout)
		}
		if err := c.info(p, fileName); err != nil {
			return fmt.Errorf("%s: %w", fileName, err)
		}
	}
	return nil
}

func (c *infoCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return exitStatus(c.opts, c.run(f.Args()...), true)
}
