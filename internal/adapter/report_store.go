package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	m "typest.dev/pkg/typest/internal/model"
	"typest.dev/pkg/typest/internal/typexpr"
)

// ReportFileName is the file a run report is stored under inside the
// reports directory.
const ReportFileName = "report.yaml"

// ErrReportNotFound is returned when no report was saved in a directory.
var ErrReportNotFound = errors.New("report not found")

// ReportStore persists run reports.
type ReportStore interface {
	SaveReport(ctx context.Context, dir m.Path, report m.RunReport) error
	LoadReport(ctx context.Context, dir m.Path) (m.RunReport, error)
}

// LocalReportStore keeps reports as YAML on the local filesystem.
type LocalReportStore struct{}

// NewLocalReportStore constructs a LocalReportStore.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

type runRecord struct {
	ID       string       `yaml:"id"`
	Started  time.Time    `yaml:"started"`
	Checkers []string     `yaml:"checkers"`
	Files    []fileRecord `yaml:"files"`
}

type fileRecord struct {
	Path     string          `yaml:"path"`
	FullPath string          `yaml:"full_path,omitempty"`
	Hash     string          `yaml:"hash,omitempty"`
	Checker  string          `yaml:"checker"`
	Status   string          `yaml:"status"`
	Error    string          `yaml:"error,omitempty"`
	Verdicts []verdictRecord `yaml:"verdicts,omitempty"`
}

type verdictRecord struct {
	Passed   bool           `yaml:"passed"`
	Expected outcomeRecord  `yaml:"expected"`
	Found    *outcomeRecord `yaml:"found,omitempty"`
}

type outcomeRecord struct {
	Kind     m.OutcomeKind `yaml:"kind"`
	Line     int           `yaml:"line"`
	Type     string        `yaml:"type,omitempty"`
	Assigned string        `yaml:"assigned,omitempty"`
	Declared string        `yaml:"declared,omitempty"`
	Message  string        `yaml:"message,omitempty"`
}

// SaveReport writes report to <dir>/report.yaml, creating dir when needed.
func (s *LocalReportStore) SaveReport(ctx context.Context, dir m.Path, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}

	data, err := yaml.Marshal(toRunRecord(report))
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(string(dir), ReportFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	slog.Debug("Saved report", "path", path, "files", len(report.Files))

	return nil
}

// LoadReport reads the report previously saved in dir.
func (s *LocalReportStore) LoadReport(ctx context.Context, dir m.Path) (m.RunReport, error) {
	if err := ctx.Err(); err != nil {
		return m.RunReport{}, err
	}

	path := filepath.Join(string(dir), ReportFileName)

	// #nosec G304 - path is the configured reports directory
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return m.RunReport{}, fmt.Errorf("%w in %s", ErrReportNotFound, dir)
	}

	if err != nil {
		return m.RunReport{}, fmt.Errorf("read report: %w", err)
	}

	var record runRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return m.RunReport{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return fromRunRecord(record)
}

func toRunRecord(report m.RunReport) runRecord {
	record := runRecord{
		ID:       report.ID,
		Started:  report.Started.UTC(),
		Checkers: report.Checkers,
		Files:    make([]fileRecord, 0, len(report.Files)),
	}

	for _, file := range report.Files {
		fr := fileRecord{
			Checker: file.Checker,
			Status:  file.Status.String(),
		}

		if file.Source.Origin != nil {
			fr.Path = string(file.Source.Origin.ShortPath)
			fr.FullPath = string(file.Source.Origin.FullPath)
			fr.Hash = file.Source.Origin.Hash
		}

		if file.Err != nil {
			fr.Error = file.Err.Error()
		}

		for _, verdict := range file.Verdicts {
			vr := verdictRecord{
				Passed:   verdict.Passed,
				Expected: toOutcomeRecord(verdict.Expected),
			}

			if verdict.Found != nil {
				found := toOutcomeRecord(verdict.Found)
				vr.Found = &found
			}

			fr.Verdicts = append(fr.Verdicts, vr)
		}

		record.Files = append(record.Files, fr)
	}

	return record
}

func toOutcomeRecord(outcome m.Outcome) outcomeRecord {
	record := outcomeRecord{Kind: outcome.Kind(), Line: outcome.Line()}

	switch o := outcome.(type) {
	case m.RevealedType:
		record.Type = typeText(o.Type)
	case m.Flaw:
		record.Message = o.Message
	case m.Mismatch:
		record.Assigned = typeText(o.Assigned)
		record.Declared = typeText(o.Declared)
	}

	return record
}

func typeText(t m.Type) string {
	if t == nil {
		return ""
	}

	return t.String()
}

func fromRunRecord(record runRecord) (m.RunReport, error) {
	report := m.RunReport{
		ID:       record.ID,
		Started:  record.Started,
		Checkers: record.Checkers,
		Files:    make([]m.FileReport, 0, len(record.Files)),
	}

	for _, fr := range record.Files {
		status, err := m.ParseFileStatus(fr.Status)
		if err != nil {
			return m.RunReport{}, fmt.Errorf("file %s: %w", fr.Path, err)
		}

		file := m.FileReport{
			Source: m.Source{Origin: &m.File{
				FullPath:  m.Path(fr.FullPath),
				ShortPath: m.Path(fr.Path),
				Hash:      fr.Hash,
			}},
			Checker: fr.Checker,
			Status:  status,
		}

		if fr.Error != "" {
			file.Err = errors.New(fr.Error)
		}

		for _, vr := range fr.Verdicts {
			expected, err := fromOutcomeRecord(vr.Expected)
			if err != nil {
				return m.RunReport{}, fmt.Errorf("file %s: %w", fr.Path, err)
			}

			verdict := m.Verdict{Expected: expected, Passed: vr.Passed}

			if vr.Found != nil {
				verdict.Found, err = fromOutcomeRecord(*vr.Found)
				if err != nil {
					return m.RunReport{}, fmt.Errorf("file %s: %w", fr.Path, err)
				}
			}

			file.Verdicts = append(file.Verdicts, verdict)
		}

		report.Files = append(report.Files, file)
	}

	return report, nil
}

func fromOutcomeRecord(record outcomeRecord) (m.Outcome, error) {
	switch record.Kind {
	case m.KindRevealedType:
		return m.RevealedType{LineNumber: record.Line, Type: typexpr.ParseLenient(record.Type)}, nil
	case m.KindFlaw:
		return m.Flaw{LineNumber: record.Line, Message: record.Message}, nil
	case m.KindMismatch:
		return m.Mismatch{
			LineNumber: record.Line,
			Assigned:   typexpr.ParseLenient(record.Assigned),
			Declared:   typexpr.ParseLenient(record.Declared),
		}, nil
	default:
		return nil, fmt.Errorf("unknown outcome kind %q", record.Kind)
	}
}
