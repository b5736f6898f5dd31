package video

import "testing"

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		name string
		file string
		want bool
	}{
		{name: "mp4", file: "clip.mp4", want: true},
		{name: "mov", file: "clip.mov", want: true},
		{name: "transport stream", file: "broadcast.ts", want: true},
		{name: "m2ts matches", file: "disc.m2ts", want: true},
		{name: "uppercase is not recognized", file: "CLIP.MP4", want: false},
		{name: "audio file", file: "song.mp3", want: false},
		{name: "text file", file: "notes.txt", want: false},
		{name: "no extension", file: "README", want: false},
		{name: "extension only in middle", file: "clip.mp4.part", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsVideoFile(tt.file, Extensions); got != tt.want {
				t.Errorf("IsVideoFile(%q) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}

func TestExtensions_Count(t *testing.T) {
	if len(Extensions) != 43 {
		t.Errorf("len(Extensions) = %d, want 43", len(Extensions))
	}

	seen := make(map[string]bool)
	for _, ext := range Extensions {
		if seen[ext] {
			t.Errorf("duplicate extension %q", ext)
		}
		seen[ext] = true
	}
}
