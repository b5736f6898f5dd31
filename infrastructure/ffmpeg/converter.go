package ffmpeg

import (
	"context"
	"fmt"

	"vid2aud/domain/audio"
)

// Converter implements audio.Converter using ffmpeg
type Converter struct {
	ffmpegPath string
	runner     CommandRunner
}

// ConverterOption is a functional option for configuring Converter
type ConverterOption func(*Converter)

// WithFFmpegPath sets a custom ffmpeg executable path
func WithFFmpegPath(path string) ConverterOption {
	return func(c *Converter) {
		c.ffmpegPath = path
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) ConverterOption {
	return func(c *Converter) {
		c.runner = runner
	}
}

// NewConverter creates a new FFmpeg-based converter
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		ffmpegPath: "ffmpeg",
		runner:     &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BuildArgs returns the ffmpeg arguments for a job:
// -i <input> -vn -acodec <encoder> [-strict -2] <output>
func BuildArgs(job *audio.ConversionJob) []string {
	args := []string{
		"-i", job.SourcePath,
		"-vn", // No video
		"-acodec", job.EncoderID,
	}
	if job.RequiresStrict() {
		args = append(args, "-strict", "-2")
	}
	return append(args, job.DestinationPath)
}

// Convert implements audio.Converter
func (c *Converter) Convert(ctx context.Context, job *audio.ConversionJob) error {
	out, err := c.runner.CombinedOutput(ctx, c.ffmpegPath, BuildArgs(job)...)
	if err != nil {
		return &audio.ConversionError{
			Job:        job,
			ExitCode:   ExitCode(err),
			Diagnostic: string(out),
			Err:        err,
		}
	}
	return nil
}

// VerifyInstalled checks that ffmpeg is available
func (c *Converter) VerifyInstalled(ctx context.Context) error {
	_, err := c.runner.Output(ctx, c.ffmpegPath, "-version")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", audio.ErrMissingExecutable, c.ffmpegPath, err)
	}
	return nil
}

// Ensure Converter implements audio.Converter
var _ audio.Converter = (*Converter)(nil)
