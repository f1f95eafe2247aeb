// Package termio adapts the width-probing half of the teacher's
// interactive terminal package (pkg/util/termio/terminal.go in
// go-corset) for this project's much simpler need: picking the width of
// the per-node header rules in the CLI's analyze report. The raw-mode, widget-based
// terminal window itself has no use here, since intervalctl only ever
// prints a static report.
package termio

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when stdout is not a terminal (e.g. piped output
// or CI logs) and no explicit --textwidth flag was given.
const DefaultWidth = 80

// Width returns the current terminal width, or DefaultWidth if stdout is
// not a terminal or its size cannot be determined.
func Width() uint {
	fd := int(os.Stdout.Fd())

	if !term.IsTerminal(fd) {
		return DefaultWidth
	}

	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}

	return uint(w)
}
