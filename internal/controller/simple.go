package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	m "typest.dev/pkg/typest/internal/model"
)

// SimpleUI implements UI by printing to the command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	styles styles
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, styles: newStyles(cmd.OutOrStdout())}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(ctx context.Context, threads int, files int, checkers []string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Checking %d file(s) with %s using %d worker(s)\n", files, strings.Join(checkers, ", "), threads)
}

// DisplayFileReport prints the markers of one (file, checker) pair and, on
// failure, its discrepancies.
func (s *SimpleUI) DisplayFileReport(ctx context.Context, report m.FileReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", s.styles.renderFileReport(report))
}

// DisplaySummary prints the per-checker summary table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.RunReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s%s", renderSummaryTable(report), s.styles.renderVerdictLine(report))
}

// DisplayAssertionCounts prints the assertions declared per file.
func (s *SimpleUI) DisplayAssertionCounts(ctx context.Context, counts []AssertionCount) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(counts) == 0 {
		s.printf("No source files found\n")
		return nil
	}

	s.printf("\n%s", renderAssertionTable(counts))

	return nil
}

// DisplayStoredReport prints a previously saved run.
func (s *SimpleUI) DisplayStoredReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", s.styles.renderStoredReport(report))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
