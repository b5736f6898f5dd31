package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const starterArt = `       _     _ ____                 _
__   _(_) __| |___ \ __ _ _   _  __| |
\ \ / / |/ _` + "`" + ` | __) / _` + "`" + ` | | | |/ _` + "`" + ` |
 \ V /| | (_| |/ __/ (_| | |_| | (_| |
  \_/ |_|\__,_|_____\__,_|\__,_|\__,_|`

// Banner writes styled panels to an output stream
type Banner struct {
	out   io.Writer
	color bool
}

// NewBanner creates a Banner; color controls ANSI styling
func NewBanner(out io.Writer, color bool) *Banner {
	return &Banner{out: out, color: color}
}

// Starter announces the start of a run
func (b *Banner) Starter(fileCount int) {
	b.panel(starterArt+"\n\n"+fmt.Sprintf("Found %d video file(s). Choose the output format.", fileCount), text.FgHiGreen)
}

// Success reports a finished run
func (b *Banner) Success(converted, total int) {
	b.panel(fmt.Sprintf("Success\n\nConverted %d of %d file(s).", converted, total), text.FgHiGreen)
}

// NoFiles reports an empty input directory
func (b *Banner) NoFiles(inputDir string) {
	b.panel(fmt.Sprintf("There are no video files in the %q folder.\nStopping.", inputDir), text.FgHiRed)
}

// MissingFFmpeg reports that no ffmpeg executable could be found
func (b *Banner) MissingFFmpeg() {
	b.panel("FFmpeg executable not found next to vid2aud or on the system PATH.\nPlease ensure ffmpeg is available.\nStopping.", text.FgHiRed)
}

// Fatal reports any other error that stops a run before conversion
func (b *Banner) Fatal(err error) {
	b.panel(fmt.Sprintf("Error: %v\nStopping.", err), text.FgHiRed)
}

func (b *Banner) panel(message string, fg text.Color) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendRow(table.Row{strings.TrimRight(message, "\n")})

	rendered := tw.Render()
	if b.color {
		rendered = text.Colors{fg, text.Bold}.Sprint(rendered)
	}
	fmt.Fprintln(b.out, rendered)
}
