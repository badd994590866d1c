package ui

import (
	"io"
	"os"
)

// fileDescriptor is implemented by *os.File.
type fileDescriptor interface {
	Fd() uintptr
}

// ColorEnabled reports whether styled output should be written to w.
// Color is off when NO_COLOR is set, when TERM is "dumb", or when w is
// not a terminal.
func ColorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(fileDescriptor)
	if !ok {
		return false
	}
	return isTerminal(f.Fd())
}
