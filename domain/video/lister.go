package video

// DirectoryLister defines the interface for listing a directory
// This is a port that can be implemented by different infrastructure adapters
type DirectoryLister interface {
	// List returns the names of regular files in dir, in listing order
	List(dir string) ([]string, error)
}

// DirectoryEnsurer creates directories that must exist before a run
type DirectoryEnsurer interface {
	// EnsureDir creates dir and any parents if they do not exist
	EnsureDir(dir string) error
}
