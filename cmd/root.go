package cmd

import (
	"errors"
	"fmt"
	"os"

	"vid2aud/infrastructure/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
	cfgErr  error
)

var rootCmd = &cobra.Command{
	Use:   "vid2aud",
	Short: "Batch-convert video files into audio files",
	Long: `vid2aud converts every video file in the input directory into an audio
file of the chosen format, running one ffmpeg process per file in parallel.

  - Videos are read from ./videoInput (created if missing)
  - Audio is written to ./audioOutput (created if missing)
  - The output format is chosen from an interactive list

ffmpeg must be next to the vid2aud executable or on the system PATH.

Example:
  vid2aud
  vid2aud --format flac --workers 4`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

// Execute runs the root command and exits with status 1 on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = config.DefaultPath
	}

	// A missing file is fine: every command can run on defaults
	cfg, cfgErr = config.LoadOrDefault(cfgFile)
}

// GetConfig returns the loaded configuration
func GetConfig() (*config.Config, error) {
	if cfgErr != nil {
		return nil, cfgErr
	}
	if cfg == nil {
		return config.Default(), nil
	}
	return cfg, nil
}

// reportedError marks an error whose message was already shown to the
// operator, so Execute only sets the exit status
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}
