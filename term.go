package main

import (
	"io"
	"os"

	"golang.org/x/term"
)

// colorEnabled reports whether w is a terminal that should get ANSI color.
func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
