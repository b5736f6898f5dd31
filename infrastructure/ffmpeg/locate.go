package ffmpeg

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"vid2aud/domain/audio"
)

// Locator resolves the ffmpeg executable. A copy shipped next to the tool
// wins over one found on PATH.
type Locator struct {
	// Configured is an explicit path from config; it is used as-is when set
	Configured string
	// ToolDir is the directory of the running executable
	ToolDir  string
	lookPath func(string) (string, error)
	stat     func(string) (os.FileInfo, error)
}

// NewLocator creates a locator that checks configured, then toolDir, then PATH
func NewLocator(configured, toolDir string) *Locator {
	return &Locator{
		Configured: configured,
		ToolDir:    toolDir,
		lookPath:   exec.LookPath,
		stat:       os.Stat,
	}
}

// ExecutableName returns the platform file name of ffmpeg
func ExecutableName() string {
	if runtime.GOOS == "windows" {
		return "ffmpeg.exe"
	}
	return "ffmpeg"
}

// Locate returns the path of a usable ffmpeg executable
func (l *Locator) Locate() (string, error) {
	if l.Configured != "" {
		if _, err := l.stat(l.Configured); err != nil {
			return "", fmt.Errorf("%w: configured path %s: %v", audio.ErrMissingExecutable, l.Configured, err)
		}
		return l.Configured, nil
	}

	if l.ToolDir != "" {
		local := filepath.Join(l.ToolDir, ExecutableName())
		if info, err := l.stat(local); err == nil && !info.IsDir() {
			return local, nil
		}
	}

	path, err := l.lookPath(ExecutableName())
	if err != nil {
		return "", fmt.Errorf("%w in %s or on PATH", audio.ErrMissingExecutable, l.ToolDir)
	}
	return path, nil
}

// ToolDir returns the directory holding the running executable, or "" if
// it cannot be determined
func ToolDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(exe)
}
