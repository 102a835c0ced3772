package render

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ShouldColorize reports whether w is a terminal that can take the ANSI
// color sequences of the renderer. Buffers and pipes never colorize.
func ShouldColorize(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
