package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	m "typest.dev/pkg/typest/internal/model"
)

const (
	// Header (title + blank) and footer (blank + help) lines around the pager.
	pagerReservedLines = 4

	defaultPagerWidth  = 80
	defaultPagerHeight = 24
)

// TUI implements UI for interactive terminals. Run output streams like
// SimpleUI; lists and stored reports open in a scrollable pager.
type TUI struct {
	*SimpleUI
	input  io.Reader
	output io.Writer
	mode   StartMode

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		input:    cmd.InOrStdin(),
		output:   cmd.OutOrStdout(),
	}
}

// Start initializes the UI.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mode = NewStartConfig(options...).Mode()

	return nil
}

// Close stops the pager if it is still running.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Quit()
	}
}

// Wait blocks until the user closes the pager.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-ctx.Done():
	case <-done:
	}
}

// DisplayAssertionCounts opens the assertion table in the pager.
func (t *TUI) DisplayAssertionCounts(ctx context.Context, counts []AssertionCount) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(counts) == 0 {
		return t.SimpleUI.DisplayAssertionCounts(ctx, counts)
	}

	return t.page("typest - assertions", renderAssertionTable(counts))
}

// DisplayStoredReport opens a previously saved run in the pager.
func (t *TUI) DisplayStoredReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.mode != ModeView {
		return t.SimpleUI.DisplayStoredReport(ctx, report)
	}

	return t.page("typest - run "+report.ID, t.styles.renderStoredReport(report))
}

func (t *TUI) page(title, content string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	model := newPagerModel(title, content, newStyles(t.output))

	program := tea.NewProgram(model,
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)

	done := make(chan struct{})

	t.program = program
	t.done = done

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("Pager failed", "error", err)
		}
	}()

	return nil
}

// pagerModel is the Bubble Tea model of a read-only scrollable document.
type pagerModel struct {
	title    string
	content  string
	styles   styles
	viewport viewport.Model
	quitting bool
}

func newPagerModel(title, content string, s styles) pagerModel {
	vp := viewport.New(defaultPagerWidth, defaultPagerHeight-pagerReservedLines)
	vp.SetContent(content)

	return pagerModel{
		title:    title,
		content:  content,
		styles:   s,
		viewport: vp,
	}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - pagerReservedLines
		if height < 1 {
			height = 1
		}

		pm.viewport.Width = msg.Width
		pm.viewport.Height = height
		pm.viewport.SetContent(pm.content)

		return pm, nil

	case tea.KeyMsg:
		//nolint:exhaustive // Only quit keys are handled here; scrolling is delegated to the viewport.
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			pm.quitting = true
			return pm, tea.Quit
		default:
		}

		switch msg.String() {
		case "q":
			pm.quitting = true
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(pm.styles.faint.Render(pm.title))
	b.WriteString("\n\n")
	b.WriteString(pm.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(pm.styles.faint.Render(fmt.Sprintf("%3.f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit",
		pm.viewport.ScrollPercent()*100)))

	return b.String()
}
