package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"vid2aud/domain/audio"
)

// Errors for config management
var (
	ErrUnknownKey   = errors.New("unknown config key")
	ErrInvalidValue = errors.New("invalid config value")
)

// ConfigManager reads and updates individual config values by dotted key
type ConfigManager struct {
	config     *Config
	configPath string
}

// NewConfigManager creates a new config manager
func NewConfigManager(cfg *Config, configPath string) *ConfigManager {
	return &ConfigManager{
		config:     cfg,
		configPath: configPath,
	}
}

// Entry is one key/value pair of the configuration
type Entry struct {
	Key   string
	Value string
}

type field struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

var fields = map[string]field{
	"paths.input_directory": {
		get: func(c *Config) string { return c.Paths.InputDirectory },
		set: func(c *Config, v string) error {
			if v == "" {
				return fmt.Errorf("%w: input directory must not be empty", ErrInvalidValue)
			}
			c.Paths.InputDirectory = v
			return nil
		},
	},
	"paths.output_directory": {
		get: func(c *Config) string { return c.Paths.OutputDirectory },
		set: func(c *Config, v string) error {
			if v == "" {
				return fmt.Errorf("%w: output directory must not be empty", ErrInvalidValue)
			}
			c.Paths.OutputDirectory = v
			return nil
		},
	},
	"ffmpeg.path": {
		get: func(c *Config) string { return c.FFmpeg.Path },
		set: func(c *Config, v string) error {
			c.FFmpeg.Path = v
			return nil
		},
	},
	"conversion.workers": {
		get: func(c *Config) string { return strconv.Itoa(c.Conversion.Workers) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return fmt.Errorf("%w: workers must be a non-negative integer, got %q", ErrInvalidValue, v)
			}
			c.Conversion.Workers = n
			return nil
		},
	},
	"conversion.default_format": {
		get: func(c *Config) string { return c.Conversion.DefaultFormat },
		set: func(c *Config, v string) error {
			f, err := audio.ParseFormat(v)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidValue, err)
			}
			c.Conversion.DefaultFormat = f.String()
			return nil
		},
	},
	"conversion.verify_output": {
		get: func(c *Config) string { return strconv.FormatBool(c.Conversion.VerifyOutput) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: verify_output must be true or false, got %q", ErrInvalidValue, v)
			}
			c.Conversion.VerifyOutput = b
			return nil
		},
	},
}

// Keys returns all settable keys in sorted order
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the current value for key
func (m *ConfigManager) Get(key string) (string, error) {
	f, ok := fields[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	return f.get(m.config), nil
}

// List returns every key with its current value
func (m *ConfigManager) List() []Entry {
	keys := Keys()
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k, Value: fields[k].get(m.config)})
	}
	return entries
}

// Set validates and applies value for key, then saves the config file
func (m *ConfigManager) Set(key, value string) error {
	f, ok := fields[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	if err := f.set(m.config, strings.TrimSpace(value)); err != nil {
		return err
	}
	return m.save()
}

func (m *ConfigManager) save() error {
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return Save(m.config, m.configPath)
}
