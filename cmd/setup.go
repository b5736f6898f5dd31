package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"vid2aud/domain/audio"
	"vid2aud/infrastructure/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create configuration file interactively",
	Long: `Prompts for configuration values and creates config.yaml.

The configuration is optional: without it vid2aud reads ./videoInput,
writes ./audioOutput and runs one ffmpeg process per CPU.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	return RunSetupWithPrompter(DefaultPrompter, cfgFile, os.Stdout)
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter Prompter, configPath string, out OutputWriter) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm("config.yaml already exists. Overwrite?", false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Fprintln(out, "Setup cancelled.")
			return nil
		}
	}

	fmt.Fprintln(out, "Welcome to vid2aud setup!")
	fmt.Fprintln(out)

	cfg := config.Default()

	if err := promptPaths(prompter, cfg); err != nil {
		return err
	}

	if err := promptFFmpeg(prompter, cfg); err != nil {
		return err
	}

	if err := promptConversion(prompter, cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Configuration saved to %s\n", configPath)
	return nil
}

func promptPaths(prompter Prompter, cfg *config.Config) error {
	input, err := prompter.Input("Where are the videos to convert?", cfg.Paths.InputDirectory)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if input == "" {
		return fmt.Errorf("input directory is required")
	}
	cfg.Paths.InputDirectory = input

	output, err := prompter.Input("Where should audio files go?", cfg.Paths.OutputDirectory)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if output == "" {
		return fmt.Errorf("output directory is required")
	}
	cfg.Paths.OutputDirectory = output

	return nil
}

func promptFFmpeg(prompter Prompter, cfg *config.Config) error {
	path, err := prompter.Input("Path to ffmpeg (leave empty to search next to vid2aud and on PATH)?", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.FFmpeg.Path = path
	return nil
}

func promptConversion(prompter Prompter, cfg *config.Config) error {
	workers, err := prompter.Input("Parallel conversions (0 = one per CPU)?", "0")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if workers == "" {
		workers = "0"
	}
	n, err := strconv.Atoi(workers)
	if err != nil || n < 0 {
		return fmt.Errorf("parallel conversions must be a non-negative number, got %q", workers)
	}
	cfg.Conversion.Workers = n

	choice, err := prompter.Select("Default audio format?", audio.Labels(), cfg.Conversion.DefaultFormat)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	format, err := audio.ParseFormat(choice)
	if err != nil {
		return err
	}
	cfg.Conversion.DefaultFormat = format.String()

	verify, err := prompter.Confirm("Treat a missing or empty output file as a failure?", false)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Conversion.VerifyOutput = verify

	return nil
}
