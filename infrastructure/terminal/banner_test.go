package terminal

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
)

func TestBanner_Messages(t *testing.T) {
	tests := []struct {
		name  string
		write func(b *Banner)
		want  string
	}{
		{name: "no files", write: func(b *Banner) { b.NoFiles("videoInput") }, want: `no video files in the "videoInput" folder`},
		{name: "missing ffmpeg", write: func(b *Banner) { b.MissingFFmpeg() }, want: "FFmpeg executable not found"},
		{name: "success", write: func(b *Banner) { b.Success(3, 4) }, want: "Converted 3 of 4 file(s)."},
		{name: "starter", write: func(b *Banner) { b.Starter(2) }, want: "Found 2 video file(s)."},
		{name: "fatal", write: func(b *Banner) { b.Fatal(errors.New("disk full")) }, want: "Error: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.write(NewBanner(&buf, false))
			out := buf.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("banner missing %q:\n%s", tt.want, out)
			}
			if strings.Contains(out, "\x1b[") {
				t.Error("uncolored banner should not contain ANSI escapes")
			}
		})
	}
}

func TestBanner_Color(t *testing.T) {
	text.EnableColors()
	var buf bytes.Buffer
	NewBanner(&buf, true).Success(1, 1)
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Error("colored banner should contain ANSI escapes")
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable([]string{"format", "encoder"}, [][]string{{"mp3", "libmp3lame"}, {"wav"}})
	for _, want := range []string{"FORMAT", "ENCODER", "mp3", "libmp3lame", "wav"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if RenderTable(nil, nil) != "" {
		t.Error("RenderTable with no headers should be empty")
	}
}

func TestIsTerminal_NonFile(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}
