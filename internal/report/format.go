// Package report renders decoded Cryptdatum headers for the command line.
package report

import (
	"fmt"
	"io"
	"strings"
)

// Format is an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat parses s, accepting "" as table.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid output format %q (valid: table, json, yaml)", s)
	}
}

func (f Format) String() string {
	return string(f)
}

// Set implements flag.Value.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Printer writes reports to out in one format.
type Printer struct {
	out    io.Writer
	format Format
	color  bool
}

func NewPrinter(out io.Writer, format Format, color bool) *Printer {
	return &Printer{
		out:    out,
		format: format,
		color:  color,
	}
}

// Print writes data in the printer's format. Table output requires data to
// implement Sectioned or TableRenderer; anything else falls back to JSON.
func (p *Printer) Print(data any) error {
	switch p.format {
	case FormatTable:
		switch d := data.(type) {
		case Sectioned:
			return p.printSections(d.Sections(p.color))
		case TableRenderer:
			return PrintTable(p.out, d)
		}
		return PrintJSON(p.out, data)
	case FormatJSON:
		return PrintJSON(p.out, data)
	case FormatYAML:
		return PrintYAML(p.out, data)
	default:
		return fmt.Errorf("unknown format %q", p.format)
	}
}

func (p *Printer) printSections(sections []Section) error {
	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(p.out); err != nil {
				return err
			}
		}
		if s.Title != "" {
			if _, err := fmt.Fprintln(p.out, s.Title); err != nil {
				return err
			}
		}
		var err error
		if s.Pairs != nil {
			err = SimpleTable(p.out, s.Pairs)
		} else {
			err = PrintTable(p.out, s.Table)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func colorize(on bool, code, s string) string {
	if !on {
		return s
	}
	return code + s + "\033[0m"
}
