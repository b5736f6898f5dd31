//go:build integration

package steps

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vid2aud/cmd"
	"vid2aud/infrastructure/config"

	"github.com/cucumber/godog"
)

type setupContext struct {
	tempDir         string
	configPath      string
	originalContent string
	formatChoice    string
	output          *bytes.Buffer
	err             error
}

var SharedSetupContext = &setupContext{}

// MockPrompter implements cmd.Prompter for testing
type MockPrompter struct {
	inputResponses   []string
	confirmResponses []bool
	selectResponse   string
	inputIndex       int
	confirmIndex     int
}

func NewMockPrompter(inputs []string, confirms []bool, selection string) *MockPrompter {
	return &MockPrompter{
		inputResponses:   inputs,
		confirmResponses: confirms,
		selectResponse:   selection,
	}
}

func (m *MockPrompter) Input(message string, defaultValue string) (string, error) {
	if m.inputIndex >= len(m.inputResponses) {
		if defaultValue != "" {
			return defaultValue, nil
		}
		return "", fmt.Errorf("no more input responses available for message: %s", message)
	}
	response := m.inputResponses[m.inputIndex]
	m.inputIndex++
	return response, nil
}

func (m *MockPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	if m.confirmIndex >= len(m.confirmResponses) {
		return defaultValue, nil
	}
	response := m.confirmResponses[m.confirmIndex]
	m.confirmIndex++
	return response, nil
}

func (m *MockPrompter) Select(message string, options []string, defaultValue string) (string, error) {
	if m.selectResponse == "" {
		return defaultValue, nil
	}
	return m.selectResponse, nil
}

func InitializeSetupScenario(ctx *godog.ScenarioContext) {
	testCtx := SharedSetupContext

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		// Create temp directory for each scenario
		tempDir, err := os.MkdirTemp("", "setup-test-*")
		if err != nil {
			return c, err
		}
		testCtx.tempDir = tempDir
		testCtx.configPath = filepath.Join(tempDir, "config", "config.yaml")
		testCtx.originalContent = ""
		testCtx.formatChoice = ""
		testCtx.output = &bytes.Buffer{}
		testCtx.err = nil
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if testCtx.tempDir != "" {
			os.RemoveAll(testCtx.tempDir)
		}
		return c, nil
	})

	ctx.Step(`^no config file exists for setup$`, testCtx.noConfigFileExistsForSetup)
	ctx.Step(`^a config file already exists for setup$`, testCtx.aConfigFileAlreadyExistsForSetup)
	ctx.Step(`^I will choose the default format "([^"]*)"$`, testCtx.iWillChooseTheDefaultFormat)
	ctx.Step(`^I run the setup command with inputs:$`, testCtx.iRunTheSetupCommandWithInputs)
	ctx.Step(`^I run the setup command with confirmation "([^"]*)"$`, testCtx.iRunTheSetupCommandWithConfirmation)
	ctx.Step(`^a config file should exist$`, testCtx.aConfigFileShouldExist)
	ctx.Step(`^the config should have input_directory "([^"]*)"$`, testCtx.theConfigShouldHaveInputDirectory)
	ctx.Step(`^the config should have output_directory "([^"]*)"$`, testCtx.theConfigShouldHaveOutputDirectory)
	ctx.Step(`^the config should have (\d+) workers$`, testCtx.theConfigShouldHaveWorkers)
	ctx.Step(`^the config should have default_format "([^"]*)"$`, testCtx.theConfigShouldHaveDefaultFormat)
	ctx.Step(`^the setup should be cancelled$`, testCtx.theSetupShouldBeCancelled)
	ctx.Step(`^the existing config should be unchanged$`, testCtx.theExistingConfigShouldBeUnchanged)
}

func (s *setupContext) noConfigFileExistsForSetup() error {
	return os.MkdirAll(filepath.Dir(s.configPath), 0755)
}

func (s *setupContext) aConfigFileAlreadyExistsForSetup() error {
	if err := os.MkdirAll(filepath.Dir(s.configPath), 0755); err != nil {
		return err
	}
	s.originalContent = "paths:\n  input_directory: existing\n"
	return os.WriteFile(s.configPath, []byte(s.originalContent), 0644)
}

func (s *setupContext) iWillChooseTheDefaultFormat(format string) error {
	s.formatChoice = format
	return nil
}

func (s *setupContext) iRunTheSetupCommandWithInputs(table *godog.Table) error {
	var inputs []string
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		inputs = append(inputs, row.Cells[1].Value)
	}

	prompter := NewMockPrompter(inputs, []bool{false}, s.formatChoice)
	s.err = cmd.RunSetupWithPrompter(prompter, s.configPath, s.output)
	if s.err != nil {
		return fmt.Errorf("setup failed: %v", s.err)
	}
	return nil
}

func (s *setupContext) iRunTheSetupCommandWithConfirmation(answer string) error {
	prompter := NewMockPrompter(nil, []bool{strings.EqualFold(answer, "yes")}, "")
	s.err = cmd.RunSetupWithPrompter(prompter, s.configPath, s.output)
	return nil
}

func (s *setupContext) loadConfig() (*config.Config, error) {
	return config.Load(s.configPath)
}

func (s *setupContext) aConfigFileShouldExist() error {
	if _, err := os.Stat(s.configPath); err != nil {
		return fmt.Errorf("config file should exist at %s: %v", s.configPath, err)
	}
	return nil
}

func (s *setupContext) theConfigShouldHaveInputDirectory(expected string) error {
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}
	if cfg.Paths.InputDirectory != expected {
		return fmt.Errorf("expected input_directory %q, got %q", expected, cfg.Paths.InputDirectory)
	}
	return nil
}

func (s *setupContext) theConfigShouldHaveOutputDirectory(expected string) error {
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}
	if cfg.Paths.OutputDirectory != expected {
		return fmt.Errorf("expected output_directory %q, got %q", expected, cfg.Paths.OutputDirectory)
	}
	return nil
}

func (s *setupContext) theConfigShouldHaveWorkers(expected int) error {
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}
	if cfg.Conversion.Workers != expected {
		return fmt.Errorf("expected %d workers, got %d", expected, cfg.Conversion.Workers)
	}
	return nil
}

func (s *setupContext) theConfigShouldHaveDefaultFormat(expected string) error {
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}
	if cfg.Conversion.DefaultFormat != expected {
		return fmt.Errorf("expected default_format %q, got %q", expected, cfg.Conversion.DefaultFormat)
	}
	return nil
}

func (s *setupContext) theSetupShouldBeCancelled() error {
	if s.err != nil {
		return fmt.Errorf("expected clean cancellation, got error: %v", s.err)
	}
	if !strings.Contains(s.output.String(), "Setup cancelled.") {
		return fmt.Errorf("expected cancellation message, got %q", s.output.String())
	}
	return nil
}

func (s *setupContext) theExistingConfigShouldBeUnchanged() error {
	data, err := os.ReadFile(s.configPath)
	if err != nil {
		return err
	}
	if string(data) != s.originalContent {
		return fmt.Errorf("config changed: %q", string(data))
	}
	return nil
}
