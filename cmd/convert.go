package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"vid2aud/application/conversion"
	"vid2aud/application/discovery"
	"vid2aud/domain/audio"
	"vid2aud/domain/video"
	"vid2aud/infrastructure/config"
	"vid2aud/infrastructure/ffmpeg"
	"vid2aud/infrastructure/filesystem"
	"vid2aud/infrastructure/terminal"

	"github.com/spf13/cobra"
)

var (
	convertWorkers int
	convertFormat  string
)

func init() {
	rootCmd.Flags().IntVar(&convertWorkers, "workers", 0, "Parallel ffmpeg processes (default from config, or one per CPU)")
	rootCmd.Flags().StringVar(&convertFormat, "format", "", "Audio format to convert to; skips the interactive prompt")
}

// OutputWriter allows capturing output in tests
type OutputWriter interface {
	Write(p []byte) (n int, err error)
}

// ExecutableLocator finds the ffmpeg executable
type ExecutableLocator interface {
	Locate() (string, error)
}

// DirectoryStore lists and creates directories
type DirectoryStore interface {
	video.DirectoryLister
	video.DirectoryEnsurer
}

// ConvertOptions holds per-run overrides from the command line
type ConvertOptions struct {
	Workers int
	Format  string
}

// ConvertDependencies holds everything a conversion run talks to
type ConvertDependencies struct {
	Locator      ExecutableLocator
	NewConverter func(ffmpegPath string) audio.Converter
	Directories  DirectoryStore
	Verifier     audio.OutputVerifier
	Prompter     Prompter
	Reporter     conversion.Reporter
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := GetConfig()
	if err != nil {
		return err
	}

	checker := filesystem.NewChecker()
	deps := ConvertDependencies{
		Locator: ffmpeg.NewLocator(cfg.FFmpeg.Path, ffmpeg.ToolDir()),
		NewConverter: func(path string) audio.Converter {
			return ffmpeg.NewConverter(ffmpeg.WithFFmpegPath(path))
		},
		Directories: filesystem.NewLister(),
		Verifier:    checker,
		Prompter:    DefaultPrompter,
		Reporter:    terminal.NewProgress(os.Stdout, terminal.IsTerminal(os.Stdout)),
	}

	opts := ConvertOptions{
		Workers: convertWorkers,
		Format:  convertFormat,
	}

	return RunConvertWithDependencies(cmd.Context(), cfg, opts, deps, os.Stdout)
}

// RunConvertWithDependencies runs a full batch with injected dependencies (for testing).
// Per-file failures are reported but do not make it return an error.
func RunConvertWithDependencies(
	ctx context.Context,
	cfg *config.Config,
	opts ConvertOptions,
	deps ConvertDependencies,
	output OutputWriter,
) error {
	banner := terminal.NewBanner(output, terminal.ColorEnabled(output))
	inputDir := cfg.Paths.InputDirectory
	outputDir := cfg.Paths.OutputDirectory

	for _, dir := range []string{inputDir, outputDir} {
		if err := deps.Directories.EnsureDir(dir); err != nil {
			banner.Fatal(err)
			return &reportedError{err: err}
		}
	}

	ffmpegPath, err := deps.Locator.Locate()
	if err != nil {
		banner.MissingFFmpeg()
		return &reportedError{err: err}
	}

	converter := deps.NewConverter(ffmpegPath)
	if verifiable, ok := converter.(interface{ VerifyInstalled(context.Context) error }); ok {
		verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := verifiable.VerifyInstalled(verifyCtx); err != nil {
			banner.MissingFFmpeg()
			return &reportedError{err: err}
		}
	}

	files, err := discovery.NewService(deps.Directories, nil).Discover(inputDir)
	if err != nil {
		banner.Fatal(err)
		return &reportedError{err: err}
	}
	if len(files) == 0 {
		banner.NoFiles(inputDir)
		return &reportedError{err: fmt.Errorf("%w in %s", audio.ErrNoInputFiles, inputDir)}
	}

	banner.Starter(len(files))

	format, err := chooseFormat(deps.Prompter, opts.Format, cfg.Conversion.DefaultFormat)
	if err != nil {
		banner.Fatal(err)
		return &reportedError{err: err}
	}

	jobs, err := conversion.BuildJobs(inputDir, outputDir, files, format)
	if err != nil {
		return err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = cfg.Conversion.Workers
	}
	serviceOpts := []conversion.ServiceOption{conversion.WithWorkers(workers)}
	if cfg.Conversion.VerifyOutput && deps.Verifier != nil {
		serviceOpts = append(serviceOpts, conversion.WithOutputVerifier(deps.Verifier))
	}
	svc := conversion.NewService(converter, serviceOpts...)

	fmt.Fprintf(output, "Converting to %s with %s using %d worker(s)...\n", format, format.Encoder(), svc.Workers())

	summary := svc.Run(ctx, jobs, deps.Reporter)

	banner.Success(summary.Succeeded, summary.Total)
	if len(summary.Failed) > 0 {
		rows := make([][]string, 0, len(summary.Failed))
		for _, f := range summary.Failed {
			rows = append(rows, []string{f.Job.SourceName(), lastLine(f.Diagnostic)})
		}
		fmt.Fprintln(output, terminal.RenderTable([]string{"Failed file", "Reason"}, rows))
	}

	return nil
}

// chooseFormat resolves the format from the flag, or asks the operator
func chooseFormat(prompter Prompter, flagValue, defaultFormat string) (audio.Format, error) {
	if flagValue != "" {
		return audio.ParseFormat(flagValue)
	}

	choice, err := prompter.Select("Choose the audio format", audio.Labels(), defaultFormat)
	if err != nil {
		return "", errors.New("prompt cancelled")
	}
	return audio.ParseFormat(choice)
}

// lastLine returns the final non-empty line of ffmpeg output
func lastLine(diagnostic string) string {
	lines := strings.Split(strings.TrimSpace(diagnostic), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
