//go:build integration

package steps

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"vid2aud/cmd"
	"vid2aud/domain/audio"
	"vid2aud/infrastructure/config"
	"vid2aud/infrastructure/ffmpeg"
	"vid2aud/infrastructure/filesystem"
	"vid2aud/infrastructure/terminal"

	"github.com/cucumber/godog"
)

// recordingRunner implements ffmpeg.CommandRunner without spawning processes.
// It writes a small file at the output path unless told otherwise.
type recordingRunner struct {
	mu        sync.Mutex
	calls     [][]string
	failures  map[string]string
	noOutput  map[string]bool
	available bool
}

func (r *recordingRunner) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.mu.Lock()
	r.calls = append(r.calls, append([]string{name}, args...))
	r.mu.Unlock()

	input := filepath.Base(args[1])
	output := args[len(args)-1]
	if diag, ok := r.failures[input]; ok {
		return []byte(diag + "\n"), &exitError{code: 1}
	}
	if r.noOutput[filepath.Base(output)] {
		return nil, nil
	}
	return nil, os.WriteFile(output, []byte("audio"), 0644)
}

func (r *recordingRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if !r.available {
		return nil, errors.New("exec: not found")
	}
	return []byte("ffmpeg version 7.1"), nil
}

type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
func (e *exitError) ExitCode() int { return e.code }

type staticLocator struct {
	path string
	err  error
}

func (l *staticLocator) Locate() (string, error) {
	return l.path, l.err
}

// fixedPrompter answers every Select with a fixed choice
type fixedPrompter struct {
	choice string
}

func (p *fixedPrompter) Input(message string, defaultValue string) (string, error) {
	return defaultValue, nil
}

func (p *fixedPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	return defaultValue, nil
}

func (p *fixedPrompter) Select(message string, options []string, defaultValue string) (string, error) {
	return p.choice, nil
}

type convertContext struct {
	tempDir  string
	cfg      *config.Config
	runner   *recordingRunner
	locator  *staticLocator
	progress *terminal.Progress
	output   *bytes.Buffer
	err      error
}

// SharedConvertContext is reset before each scenario via Before hook
var SharedConvertContext *convertContext

func InitializeConvertScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		tempDir, err := os.MkdirTemp("", "convert-test-*")
		if err != nil {
			return c, err
		}
		cfg := config.Default()
		cfg.Paths.InputDirectory = filepath.Join(tempDir, "videoInput")
		cfg.Paths.OutputDirectory = filepath.Join(tempDir, "audioOutput")

		SharedConvertContext = &convertContext{
			tempDir: tempDir,
			cfg:     cfg,
			runner: &recordingRunner{
				failures: make(map[string]string),
				noOutput: make(map[string]bool),
			},
			locator: &staticLocator{},
			output:  &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if SharedConvertContext != nil && SharedConvertContext.tempDir != "" {
			os.RemoveAll(SharedConvertContext.tempDir)
		}
		SharedConvertContext = nil
		return c, nil
	})

	ctx.Step(`^ffmpeg is available$`, ffmpegIsAvailable)
	ctx.Step(`^ffmpeg is not available$`, ffmpegIsNotAvailable)
	ctx.Step(`^the input directory contains:$`, theInputDirectoryContains)
	ctx.Step(`^ffmpeg fails for "([^"]*)" with "([^"]*)"$`, ffmpegFailsForWith)
	ctx.Step(`^ffmpeg exits cleanly without writing "([^"]*)"$`, ffmpegExitsCleanlyWithoutWriting)
	ctx.Step(`^output verification is enabled$`, outputVerificationIsEnabled)
	ctx.Step(`^I run the conversion choosing "([^"]*)"$`, iRunTheConversionChoosing)
	ctx.Step(`^the run should succeed$`, theRunShouldSucceed)
	ctx.Step(`^the run should fail because there are no input files$`, theRunShouldFailBecauseThereAreNoInputFiles)
	ctx.Step(`^the run should fail because ffmpeg is missing$`, theRunShouldFailBecauseFFmpegIsMissing)
	ctx.Step(`^(\d+) conversions? should have run$`, conversionsShouldHaveRun)
	ctx.Step(`^progress should have advanced (\d+) times$`, progressShouldHaveAdvanced)
	ctx.Step(`^"([^"]*)" should have been converted to "([^"]*)" with encoder "([^"]*)"$`, shouldHaveBeenConvertedToWithEncoder)
	ctx.Step(`^the output directory should contain "([^"]*)"$`, theOutputDirectoryShouldContain)
	ctx.Step(`^the output should mention "([^"]*)"$`, theOutputShouldMention)
}

func ffmpegIsAvailable() error {
	c := SharedConvertContext
	c.runner.available = true
	c.locator.path = "/usr/bin/ffmpeg"
	c.locator.err = nil
	return nil
}

func ffmpegIsNotAvailable() error {
	c := SharedConvertContext
	c.runner.available = false
	c.locator.path = ""
	c.locator.err = fmt.Errorf("%w on PATH", audio.ErrMissingExecutable)
	return nil
}

func theInputDirectoryContains(table *godog.Table) error {
	c := SharedConvertContext
	if err := os.MkdirAll(c.cfg.Paths.InputDirectory, 0755); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		name := row.Cells[0].Value
		if err := os.WriteFile(filepath.Join(c.cfg.Paths.InputDirectory, name), []byte("video"), 0644); err != nil {
			return err
		}
	}
	return nil
}

func ffmpegFailsForWith(name, diagnostic string) error {
	SharedConvertContext.runner.failures[name] = diagnostic
	return nil
}

func ffmpegExitsCleanlyWithoutWriting(name string) error {
	SharedConvertContext.runner.noOutput[name] = true
	return nil
}

func outputVerificationIsEnabled() error {
	SharedConvertContext.cfg.Conversion.VerifyOutput = true
	return nil
}

func iRunTheConversionChoosing(format string) error {
	c := SharedConvertContext
	c.progress = terminal.NewProgress(c.output, false)

	deps := cmd.ConvertDependencies{
		Locator: c.locator,
		NewConverter: func(path string) audio.Converter {
			return ffmpeg.NewConverter(ffmpeg.WithFFmpegPath(path), ffmpeg.WithCommandRunner(c.runner))
		},
		Directories: filesystem.NewLister(),
		Verifier:    filesystem.NewChecker(),
		Prompter:    &fixedPrompter{choice: format},
		Reporter:    c.progress,
	}

	c.err = cmd.RunConvertWithDependencies(context.Background(), c.cfg, cmd.ConvertOptions{Workers: 2}, deps, c.output)
	return nil
}

func theRunShouldSucceed() error {
	if err := SharedConvertContext.err; err != nil {
		return fmt.Errorf("expected success, got error: %v", err)
	}
	return nil
}

func theRunShouldFailBecauseThereAreNoInputFiles() error {
	if !errors.Is(SharedConvertContext.err, audio.ErrNoInputFiles) {
		return fmt.Errorf("expected ErrNoInputFiles, got %v", SharedConvertContext.err)
	}
	return nil
}

func theRunShouldFailBecauseFFmpegIsMissing() error {
	if !errors.Is(SharedConvertContext.err, audio.ErrMissingExecutable) {
		return fmt.Errorf("expected ErrMissingExecutable, got %v", SharedConvertContext.err)
	}
	return nil
}

func conversionsShouldHaveRun(expected int) error {
	c := SharedConvertContext
	if len(c.runner.calls) != expected {
		return fmt.Errorf("expected %d conversions, got %d", expected, len(c.runner.calls))
	}
	return nil
}

func progressShouldHaveAdvanced(expected int) error {
	c := SharedConvertContext
	got := 0
	if c.progress != nil {
		got = c.progress.Completed()
	}
	if got != expected {
		return fmt.Errorf("expected progress %d, got %d", expected, got)
	}
	return nil
}

func shouldHaveBeenConvertedToWithEncoder(source, destination, encoder string) error {
	c := SharedConvertContext
	want := []string{
		"/usr/bin/ffmpeg",
		"-i", filepath.Join(c.cfg.Paths.InputDirectory, source),
		"-vn",
		"-acodec", encoder,
		filepath.Join(c.cfg.Paths.OutputDirectory, destination),
	}
	for _, call := range c.runner.calls {
		if strings.Join(call, " ") == strings.Join(want, " ") {
			return nil
		}
	}
	return fmt.Errorf("no ffmpeg call matched %v; calls: %v", want, c.runner.calls)
}

func theOutputDirectoryShouldContain(name string) error {
	path := filepath.Join(SharedConvertContext.cfg.Paths.OutputDirectory, name)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("expected %s to exist: %v", path, err)
	}
	return nil
}

func theOutputShouldMention(text string) error {
	out := SharedConvertContext.output.String()
	if !strings.Contains(out, text) {
		return fmt.Errorf("expected output to contain %q, got:\n%s", text, out)
	}
	return nil
}
