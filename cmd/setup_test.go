package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vid2aud/infrastructure/config"
)

func TestRunSetupWithPrompter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "config.yaml")
	prompter := &mockPrompter{
		inputs:    []string{"/media/in", "/media/out", "", "4"},
		selection: "ogg",
		confirms:  []bool{true},
	}
	var out bytes.Buffer

	if err := RunSetupWithPrompter(prompter, path, &out); err != nil {
		t.Fatalf("RunSetupWithPrompter() unexpected error: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Paths.InputDirectory != "/media/in" || cfg.Paths.OutputDirectory != "/media/out" {
		t.Errorf("Paths = %+v", cfg.Paths)
	}
	if cfg.FFmpeg.Path != "" {
		t.Errorf("FFmpeg.Path = %q, want empty", cfg.FFmpeg.Path)
	}
	if cfg.Conversion.Workers != 4 || cfg.Conversion.DefaultFormat != "ogg" || !cfg.Conversion.VerifyOutput {
		t.Errorf("Conversion = %+v", cfg.Conversion)
	}
	if !strings.Contains(out.String(), "Configuration saved to") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunSetupWithPrompter_ExistingNotOverwritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	original := "paths:\n  input_directory: keep\n"
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := RunSetupWithPrompter(&mockPrompter{confirms: []bool{false}}, path, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != original {
		t.Errorf("config changed to %q", string(data))
	}
	if !strings.Contains(out.String(), "Setup cancelled.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunSetupWithPrompter_InvalidWorkers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	prompter := &mockPrompter{inputs: []string{"in", "out", "", "many"}}

	err := RunSetupWithPrompter(prompter, path, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "non-negative number") {
		t.Errorf("error = %v, want workers validation error", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("config must not be written on invalid input")
	}
}
