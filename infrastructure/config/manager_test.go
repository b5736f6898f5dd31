package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestConfigManager_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		want    string
		wantErr error
	}{
		{name: "workers", key: "conversion.workers", value: "4", want: "4"},
		{name: "format normalized", key: "conversion.default_format", value: "FLAC", want: "flac"},
		{name: "verify output", key: "conversion.verify_output", value: "true", want: "true"},
		{name: "input dir", key: "paths.input_directory", value: "/in", want: "/in"},
		{name: "ffmpeg path", key: "ffmpeg.path", value: "/bin/ffmpeg", want: "/bin/ffmpeg"},
		{name: "key is case-insensitive", key: "Conversion.Workers", value: "2", want: "2"},
		{name: "unknown key", key: "audio.bitrate", value: "192k", wantErr: ErrUnknownKey},
		{name: "bad workers", key: "conversion.workers", value: "-2", wantErr: ErrInvalidValue},
		{name: "bad format", key: "conversion.default_format", value: "mp4", wantErr: ErrInvalidValue},
		{name: "bad bool", key: "conversion.verify_output", value: "maybe", wantErr: ErrInvalidValue},
		{name: "empty output dir", key: "paths.output_directory", value: "", wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config", "config.yaml")
			mgr := NewConfigManager(Default(), path)

			err := mgr.Set(tt.key, tt.value)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Set() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set() unexpected error: %v", err)
			}

			got, err := mgr.Get(tt.key)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Get() = %q, want %q", got, tt.want)
			}

			// persisted
			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Load() after Set: %v", err)
			}
			if v, _ := NewConfigManager(loaded, path).Get(tt.key); v != tt.want {
				t.Errorf("persisted value = %q, want %q", v, tt.want)
			}
		})
	}
}

func TestConfigManager_List(t *testing.T) {
	entries := NewConfigManager(Default(), "unused").List()
	if len(entries) != len(Keys()) {
		t.Fatalf("len(List()) = %d, want %d", len(entries), len(Keys()))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Key > entries[i].Key {
			t.Errorf("entries not sorted: %s before %s", entries[i-1].Key, entries[i].Key)
		}
	}
}
