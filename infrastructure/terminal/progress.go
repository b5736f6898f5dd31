package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"vid2aud/application/conversion"
	"vid2aud/domain/audio"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Progress renders batch progress. On a terminal it draws an animated
// go-pretty tracker; elsewhere it prints one line per completed job.
type Progress struct {
	out         io.Writer
	interactive bool
	total       int
	completed   atomic.Int64

	writer   progress.Writer
	tracker  *progress.Tracker
	rendered chan struct{}
}

// NewProgress creates a Progress writing to out
func NewProgress(out io.Writer, interactive bool) *Progress {
	return &Progress{out: out, interactive: interactive}
}

// Completed returns the number of jobs reported so far
func (p *Progress) Completed() int {
	return int(p.completed.Load())
}

// Start implements conversion.Reporter
func (p *Progress) Start(total int) {
	p.total = total
	p.completed.Store(0)
	if !p.interactive {
		fmt.Fprintf(p.out, "Converting %d file(s)...\n", total)
		return
	}

	pw := progress.NewWriter()
	pw.SetOutputWriter(p.out)
	pw.SetAutoStop(true)
	pw.SetTrackerLength(40)
	pw.SetNumTrackersExpected(1)
	pw.SetStyle(progress.StyleDefault)
	pw.SetUpdateFrequency(100 * time.Millisecond)
	pw.Style().Colors = progress.StyleColorsExample
	pw.Style().Visibility.ETA = true
	pw.Style().Visibility.Percentage = true
	pw.Style().Visibility.Value = true

	p.tracker = &progress.Tracker{
		Message: "Converting files...",
		Total:   int64(total),
		Units:   progress.UnitsDefault,
	}
	pw.AppendTracker(p.tracker)
	p.writer = pw
	p.rendered = make(chan struct{})
	go func() {
		pw.Render()
		close(p.rendered)
	}()
}

// Report implements conversion.Reporter
func (p *Progress) Report(result audio.ConversionResult) {
	n := p.completed.Add(1)

	if !p.interactive {
		status := "done"
		if !result.Success {
			status = "FAILED"
		}
		fmt.Fprintf(p.out, "[%d/%d] %s %s\n", n, p.total, result.Job.SourceName(), status)
		if !result.Success {
			fmt.Fprintln(p.out, FailureLine(result, false))
		}
		return
	}

	if !result.Success {
		p.writer.Log("%s", FailureLine(result, true))
	}
	p.tracker.Increment(1)
}

// Finish implements conversion.Reporter. It returns once the tracker has
// drawn its final state, so nothing renders over the summary.
func (p *Progress) Finish(summary *conversion.Summary) {
	if !p.interactive || p.writer == nil {
		return
	}

	// Render auto-stops once the only tracker is done, even when the
	// render goroutine has not started yet.
	p.tracker.MarkAsDone()
	<-p.rendered
}

// FailureLine formats the inline error for a failed job
func FailureLine(result audio.ConversionResult, color bool) string {
	line := fmt.Sprintf("Error processing file %s: %s", result.Job.SourceName(), strings.TrimSpace(result.Diagnostic))
	if color {
		return text.FgRed.Sprint(line)
	}
	return line
}

// Ensure Progress implements conversion.Reporter
var _ conversion.Reporter = (*Progress)(nil)
