package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the config file is looked for when --config is not set
const DefaultPath = "config/config.yaml"

// Config represents the complete application configuration
type Config struct {
	Paths      PathsConfig      `yaml:"paths"`
	FFmpeg     FFmpegConfig     `yaml:"ffmpeg"`
	Conversion ConversionConfig `yaml:"conversion"`
}

// PathsConfig contains the input and output directories
type PathsConfig struct {
	InputDirectory  string `yaml:"input_directory"`
	OutputDirectory string `yaml:"output_directory"`
}

// FFmpegConfig contains settings for the external ffmpeg executable
type FFmpegConfig struct {
	// Path is an explicit executable; empty means look next to the tool, then PATH
	Path string `yaml:"path"`
}

// ConversionConfig contains batch conversion settings
type ConversionConfig struct {
	// Workers is the worker pool size; 0 means one per CPU
	Workers       int    `yaml:"workers"`
	DefaultFormat string `yaml:"default_format"`
	VerifyOutput  bool   `yaml:"verify_output"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			InputDirectory:  "videoInput",
			OutputDirectory: "audioOutput",
		},
		Conversion: ConversionConfig{
			DefaultFormat: "mp3",
		},
	}
}

// Load reads and parses the configuration from the specified YAML file.
// Fields missing from the file keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault loads path, falling back to Default when the file does not exist
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks values that would otherwise fail later in a run
func (c *Config) Validate() error {
	if c.Paths.InputDirectory == "" {
		return fmt.Errorf("paths.input_directory is required")
	}
	if c.Paths.OutputDirectory == "" {
		return fmt.Errorf("paths.output_directory is required")
	}
	if c.Conversion.Workers < 0 {
		return fmt.Errorf("conversion.workers must not be negative, got %d", c.Conversion.Workers)
	}
	return nil
}

// Save writes the configuration to the specified YAML file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
