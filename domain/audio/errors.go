package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingExecutable is returned when no ffmpeg executable can be found
	ErrMissingExecutable = errors.New("ffmpeg executable not found")

	// ErrNoInputFiles is returned when the input directory holds no video files
	ErrNoInputFiles = errors.New("no video files found")

	// ErrDirectoryUnavailable is returned when a directory cannot be listed
	ErrDirectoryUnavailable = errors.New("directory unavailable")

	// ErrUnknownFormat is returned when a format label is not in the format table
	ErrUnknownFormat = errors.New("unknown audio format")

	// ErrInvalidJob is returned when a conversion job is missing required fields
	ErrInvalidJob = errors.New("invalid conversion job")
)

// ConversionError describes a single failed conversion.
// Diagnostic holds whatever the external process wrote to stdout/stderr.
type ConversionError struct {
	Job        *ConversionJob
	ExitCode   int
	Diagnostic string
	Err        error
}

func (e *ConversionError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("converting %s failed with exit code %d", e.Job.SourceName(), e.ExitCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("converting %s failed: %v", e.Job.SourceName(), e.Err)
	}
	return fmt.Sprintf("converting %s failed", e.Job.SourceName())
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
