package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
paths:
  input_directory: /media/in
  output_directory: /media/out
ffmpeg:
  path: /opt/ffmpeg/bin/ffmpeg
conversion:
  workers: 3
  default_format: flac
  verify_output: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Paths.InputDirectory != "/media/in" {
		t.Errorf("InputDirectory = %q", cfg.Paths.InputDirectory)
	}
	if cfg.Paths.OutputDirectory != "/media/out" {
		t.Errorf("OutputDirectory = %q", cfg.Paths.OutputDirectory)
	}
	if cfg.FFmpeg.Path != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("FFmpeg.Path = %q", cfg.FFmpeg.Path)
	}
	if cfg.Conversion.Workers != 3 || cfg.Conversion.DefaultFormat != "flac" || !cfg.Conversion.VerifyOutput {
		t.Errorf("Conversion = %+v", cfg.Conversion)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "conversion:\n  workers: 2\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Paths.InputDirectory != "videoInput" || cfg.Paths.OutputDirectory != "audioOutput" {
		t.Errorf("Paths = %+v, want defaults", cfg.Paths)
	}
	if cfg.Conversion.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Conversion.Workers)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{name: "bad yaml", content: "paths: [", errContains: "failed to parse config file"},
		{name: "negative workers", content: "conversion:\n  workers: -1\n", errContains: "must not be negative"},
		{name: "empty input dir", content: "paths:\n  input_directory: \"\"\n", errContains: "input_directory is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Load() error = %v, want error containing %q", err, tt.errContains)
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() unexpected error: %v", err)
	}
	if cfg.Paths.InputDirectory != "videoInput" {
		t.Errorf("InputDirectory = %q, want default", cfg.Paths.InputDirectory)
	}

	if _, err := LoadOrDefault(writeConfig(t, "paths: [")); err == nil {
		t.Error("LoadOrDefault() should surface parse errors")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.Conversion.Workers = 6
	cfg.FFmpeg.Path = "/usr/local/bin/ffmpeg"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if loaded.Conversion.Workers != 6 || loaded.FFmpeg.Path != "/usr/local/bin/ffmpeg" {
		t.Errorf("loaded = %+v", loaded)
	}
}
