package terminal

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether writer is an interactive terminal.
// Anything that is not an *os.File (buffers in tests, pipes) is not.
func IsTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorEnabled reports whether styled output should be written to writer
func ColorEnabled(writer io.Writer) bool {
	return IsTerminal(writer) && os.Getenv("NO_COLOR") == ""
}
