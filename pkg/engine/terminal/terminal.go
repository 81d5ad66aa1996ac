// Package terminal answers questions about the output stream: whether it is
// an interactive terminal and how wide it is.
package terminal

import (
	"io"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w writes to an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}

// GetSize returns the width and height of the terminal behind w.
// Falls back to defaults if w is not a terminal.
func GetSize(w io.Writer) (width, height int) {
	f, ok := w.(fder)
	if !ok {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}
