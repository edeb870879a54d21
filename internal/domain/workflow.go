package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"typest.dev/pkg/typest/internal/adapter"
	"typest.dev/pkg/typest/internal/controller"
	m "typest.dev/pkg/typest/internal/model"
)

// ErrAssertionsFailed is returned by Run when at least one (file, checker)
// pair failed or errored.
var ErrAssertionsFailed = errors.New("type assertions failed")

// RunArgs contains the arguments for checking files.
type RunArgs struct {
	Paths    []m.Path
	Exclude  []string
	Checkers []string
	Threads  uint
	Reports  m.Path
}

// ListArgs contains the arguments for listing assertions.
type ListArgs struct {
	Paths   []m.Path
	Exclude []string
}

// ViewArgs contains the arguments for viewing a stored report.
type ViewArgs struct {
	Reports m.Path
}

// Workflow drives the commands over discovered sources.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.ReportStore
	adapter.SourceFSAdapter
	controller.UI
	Orchestrator
	registry *adapter.CheckerRegistry
	now      func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	orchestrator Orchestrator,
	registry *adapter.CheckerRegistry,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		Orchestrator:    orchestrator,
		registry:        registry,
		now:             time.Now,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	checkers, err := w.registry.Select(args.Checkers)
	if err != nil {
		return err
	}

	sources, err := w.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		slog.Error("Failed to get sources", "error", err)
		return fmt.Errorf("get sources: %w", err)
	}

	if err := w.Start(ctx, controller.WithRunMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	names := make([]string, 0, len(checkers))
	for _, checker := range checkers {
		names = append(names, checker.Name())
	}

	threads := int(args.Threads)
	if threads < 1 {
		threads = 1
	}

	w.DisplayConcurrencyInfo(ctx, threads, len(sources), names)

	report := m.RunReport{
		ID:       uuid.NewString(),
		Started:  w.now(),
		Checkers: names,
	}

	files, err := w.checkSources(ctx, sources, checkers, threads)
	if err != nil {
		return fmt.Errorf("check sources: %w", err)
	}

	report.Files = files

	w.DisplaySummary(ctx, report)

	if args.Reports != "" {
		if err := w.SaveReport(ctx, args.Reports, report); err != nil {
			slog.Error("Failed to save report", "dir", args.Reports, "error", err)
			return fmt.Errorf("save report: %w", err)
		}
	}

	w.Wait(ctx)

	if !report.Successful() {
		return ErrAssertionsFailed
	}

	return nil
}

// checkSources fans (file, checker) pairs out over threads workers. The
// result keeps source order, then checker order.
func (w *workflow) checkSources(ctx context.Context, sources []m.Source, checkers []adapter.Checker, threads int) ([]m.FileReport, error) {
	results := make([][]m.FileReport, len(sources))

	var uiMutex sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, source := range sources {
		index, currentSource := i, source

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			expected, expectErr := w.Expectations(groupCtx, currentSource)

			reports := make([]m.FileReport, 0, len(checkers))

			for _, checker := range checkers {
				var report m.FileReport
				if expectErr != nil {
					report = ReportForError(m.FileReport{Source: currentSource, Checker: checker.Name()}, expectErr)
				} else {
					report = w.CheckFile(groupCtx, currentSource, expected, checker)
				}

				uiMutex.Lock()
				w.DisplayFileReport(groupCtx, report)
				uiMutex.Unlock()

				reports = append(reports, report)
			}

			results[index] = reports

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var files []m.FileReport
	for _, reports := range results {
		files = append(files, reports...)
	}

	return files, nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	sources, err := w.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		slog.Error("Failed to get sources", "error", err)
		return fmt.Errorf("get sources: %w", err)
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	counts := make([]controller.AssertionCount, 0, len(sources))

	for _, source := range sources {
		count := controller.AssertionCount{Path: source.Origin.ShortPath}

		expected, err := w.Expectations(ctx, source)
		if err != nil && !errors.Is(err, ErrNoAssertionsFound) {
			count.Err = err
		}

		for _, outcome := range expected {
			switch outcome.Kind() {
			case m.KindRevealedType:
				count.RevealedType++
			case m.KindFlaw:
				count.Flaw++
			case m.KindMismatch:
				count.Mismatch++
			}
		}

		counts = append(counts, count)
	}

	if err := w.DisplayAssertionCounts(ctx, counts); err != nil {
		slog.Error("Failed to display assertion counts", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(ctx, args.Reports)
	if err != nil {
		slog.Error("Failed to load report", "dir", args.Reports, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	if err := w.DisplayStoredReport(ctx, report); err != nil {
		slog.Error("Failed to display report", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}
