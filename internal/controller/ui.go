// Package controller provides output adapters for displaying type assertion results.
package controller

import (
	"context"

	m "typest.dev/pkg/typest/internal/model"
)

// AssertionCount holds the expectation counts declared in one file.
type AssertionCount struct {
	Path         m.Path
	RevealedType int
	Flaw         int
	Mismatch     int
	// Err is set when the file could not be scanned.
	Err error
}

// Total returns the number of expectations.
func (c AssertionCount) Total() int {
	return c.RevealedType + c.Flaw + c.Mismatch
}

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeList
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// Mode returns the configured mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// NewStartConfig applies options over the default run mode.
func NewStartConfig(options ...StartOption) StartConfig {
	config := StartConfig{mode: ModeRun}
	for _, option := range options {
		option(&config)
	}

	return config
}

// WithRunMode sets the UI to checker run mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithListMode sets the UI to assertion listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithViewMode sets the UI to stored report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// UI defines the interface for displaying run progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayConcurrencyInfo(ctx context.Context, threads int, files int, checkers []string)
	DisplayFileReport(ctx context.Context, report m.FileReport)
	DisplaySummary(ctx context.Context, report m.RunReport)
	DisplayAssertionCounts(ctx context.Context, counts []AssertionCount) error
	DisplayStoredReport(ctx context.Context, report m.RunReport) error
}
