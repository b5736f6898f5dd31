package filesystem

import (
	"os"

	"vid2aud/domain/audio"
)

// Checker implements audio.OutputVerifier using the os package
type Checker struct{}

// NewChecker creates a new filesystem checker
func NewChecker() *Checker {
	return &Checker{}
}

// NonEmpty returns true if path is a regular file with at least one byte
func (c *Checker) NonEmpty(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Size() > 0
}

// Ensure Checker implements audio.OutputVerifier
var _ audio.OutputVerifier = (*Checker)(nil)
