package terminal

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"vid2aud/application/conversion"
	"vid2aud/domain/audio"

	"github.com/jedib0t/go-pretty/v6/text"
)

func TestProgress_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, false)

	ok := &audio.ConversionJob{SourcePath: "videoInput/a.mp4"}
	bad := &audio.ConversionJob{SourcePath: "videoInput/b.mkv"}

	p.Start(2)
	p.Report(audio.ConversionResult{Job: ok, Success: true})
	p.Report(audio.ConversionResult{Job: bad, Diagnostic: "moov atom not found\n"})
	p.Finish(&conversion.Summary{Total: 2, Completed: 2, Succeeded: 1})

	if p.Completed() != 2 {
		t.Errorf("Completed() = %d, want 2", p.Completed())
	}

	out := buf.String()
	for _, want := range []string{
		"Converting 2 file(s)...",
		"[1/2] a.mp4 done",
		"[2/2] b.mkv FAILED",
		"Error processing file b.mkv: moov atom not found",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFailureLine(t *testing.T) {
	r := audio.ConversionResult{
		Job:        &audio.ConversionJob{SourcePath: "in/clip.mov"},
		Diagnostic: "  Unknown encoder\n",
	}
	if got := FailureLine(r, false); got != "Error processing file clip.mov: Unknown encoder" {
		t.Errorf("FailureLine() = %q", got)
	}
	text.EnableColors()
	if got := FailureLine(r, true); !strings.Contains(got, "\x1b[") {
		t.Errorf("FailureLine(color) = %q, want ANSI escape", got)
	}
}

// lockedBuffer serializes writes from the render goroutine and reads from the test
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestProgress_InteractiveStopsRenderingOnFinish(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		failed int
	}{
		{name: "single success", total: 1},
		{name: "mixed results", total: 3, failed: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &lockedBuffer{}
			p := NewProgress(out, true)

			// Reporting right after Start finishes the batch before the
			// render goroutine has had a chance to begin.
			p.Start(tt.total)
			for i := 0; i < tt.total; i++ {
				job := &audio.ConversionJob{SourcePath: "videoInput/clip.mp4"}
				result := audio.ConversionResult{Job: job, Success: true}
				if i < tt.failed {
					job.SourcePath = "videoInput/broken.mkv"
					result = audio.ConversionResult{Job: job, Diagnostic: "Invalid data found\n"}
				}
				p.Report(result)
			}
			p.Finish(&conversion.Summary{Total: tt.total, Completed: tt.total, Succeeded: tt.total - tt.failed})

			if p.writer.IsRenderInProgress() {
				t.Fatal("render still in progress after Finish returned")
			}
			if got := p.tracker.Value(); got != int64(tt.total) {
				t.Errorf("tracker value = %d, want %d", got, tt.total)
			}
			if !p.tracker.IsDone() {
				t.Error("tracker not marked done")
			}
			if p.Completed() != tt.total {
				t.Errorf("Completed() = %d, want %d", p.Completed(), tt.total)
			}

			rendered := out.String()
			if tt.failed > 0 && !strings.Contains(rendered, "Error processing file broken.mkv: Invalid data found") {
				t.Errorf("output missing failure line:\n%s", rendered)
			}

			// Nothing may be drawn once Finish has returned.
			before := len(rendered)
			time.Sleep(250 * time.Millisecond)
			if after := len(out.String()); after != before {
				t.Errorf("output grew from %d to %d bytes after Finish", before, after)
			}
		})
	}
}
