package audio

import "context"

// Converter defines the interface for converting one job
// This is a port that can be implemented by different infrastructure adapters
type Converter interface {
	// Convert runs the job to completion and returns a *ConversionError on failure
	Convert(ctx context.Context, job *ConversionJob) error
}

// OutputVerifier checks that a conversion actually produced output
type OutputVerifier interface {
	// NonEmpty returns true if the file exists and has content
	NonEmpty(path string) bool
}
