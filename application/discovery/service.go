package discovery

import (
	"fmt"

	"vid2aud/domain/video"
)

// Service finds the video files waiting in an input directory
type Service struct {
	lister     video.DirectoryLister
	extensions []string
}

// NewService creates a discovery service matching the given extensions.
// A nil extensions slice means video.Extensions.
func NewService(lister video.DirectoryLister, extensions []string) *Service {
	if extensions == nil {
		extensions = video.Extensions
	}
	return &Service{
		lister:     lister,
		extensions: extensions,
	}
}

// Discover returns the names of recognized video files in dir, keeping the
// lister's order. An empty result is not an error.
func (s *Service) Discover(dir string) ([]string, error) {
	names, err := s.lister.List(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list input directory: %w", err)
	}

	var files []string
	for _, name := range names {
		if video.IsVideoFile(name, s.extensions) {
			files = append(files, name)
		}
	}
	return files, nil
}
