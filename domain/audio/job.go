package audio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ConversionJob is one source-file-to-destination-file unit of work
type ConversionJob struct {
	SourcePath      string
	DestinationPath string
	EncoderID       string
	OutputExtension string
}

// NewConversionJob creates a job converting sourcePath into outputDir using format
func NewConversionJob(sourcePath, outputDir string, format Format) (*ConversionJob, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("%w: source path is required", ErrInvalidJob)
	}

	encoder := format.Encoder()
	if encoder == "" {
		return nil, fmt.Errorf("%w: %w %q", ErrInvalidJob, ErrUnknownFormat, format)
	}

	return &ConversionJob{
		SourcePath:      sourcePath,
		DestinationPath: DestinationPath(sourcePath, outputDir, format.Extension()),
		EncoderID:       encoder,
		OutputExtension: format.Extension(),
	}, nil
}

// DestinationPath returns outputDir/<source stem>.<extension>
func DestinationPath(sourcePath, outputDir, extension string) string {
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, stem+"."+extension)
}

// SourceName returns the file name of the source without its directory
func (j *ConversionJob) SourceName() string {
	return filepath.Base(j.SourcePath)
}

// RequiresStrict reports whether the job's encoder needs the compatibility flag
func (j *ConversionJob) RequiresStrict() bool {
	return RequiresStrict(j.EncoderID)
}

// ConversionResult is the outcome of running one job
type ConversionResult struct {
	Job        *ConversionJob
	Success    bool
	Diagnostic string
}

// NewConversionResult builds a result from the error returned by a Converter.
// A nil error is a success.
func NewConversionResult(job *ConversionJob, err error) ConversionResult {
	if err == nil {
		return ConversionResult{Job: job, Success: true}
	}

	diagnostic := err.Error()
	var convErr *ConversionError
	if errors.As(err, &convErr) && strings.TrimSpace(convErr.Diagnostic) != "" {
		diagnostic = strings.TrimSpace(convErr.Diagnostic)
	}

	return ConversionResult{Job: job, Success: false, Diagnostic: diagnostic}
}
