package filesystem

import (
	"fmt"
	"os"

	"vid2aud/domain/audio"
	"vid2aud/domain/video"
)

// Lister implements video.DirectoryLister and video.DirectoryEnsurer
type Lister struct{}

// NewLister creates a new directory lister
func NewLister() *Lister {
	return &Lister{}
}

// List returns the names of non-directory entries in dir.
// os.ReadDir yields entries sorted by name, which is the listing order.
func (l *Lister) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", audio.ErrDirectoryUnavailable, dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// EnsureDir creates dir if it does not exist
func (l *Lister) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

var (
	_ video.DirectoryLister  = (*Lister)(nil)
	_ video.DirectoryEnsurer = (*Lister)(nil)
)
