package logger

import (
	"os"

	"golang.org/x/term"
)

// isTerminal reports whether f is attached to a terminal. Colors are only
// emitted for terminals.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
