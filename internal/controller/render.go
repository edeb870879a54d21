package controller

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"

	m "typest.dev/pkg/typest/internal/model"
)

const (
	labelWidth = 20

	passMarker = "."
	failMarker = "F"

	noTypeNoteMessage = "No type note found. Did you forget to call `reveal_type`?"
)

// styles holds the lipgloss styles bound to one output.
type styles struct {
	ok    lipgloss.Style
	alert lipgloss.Style
	warn  lipgloss.Style
	faint lipgloss.Style
}

// newStyles binds styles to w, so colors are dropped when w is not a terminal.
func newStyles(w io.Writer) styles {
	renderer := lipgloss.NewRenderer(w)

	return styles{
		ok:    renderer.NewStyle().Foreground(lipgloss.Color("10")),
		alert: renderer.NewStyle().Foreground(lipgloss.Color("9")),
		warn:  renderer.NewStyle().Foreground(lipgloss.Color("11")),
		faint: renderer.NewStyle().Faint(true),
	}
}

func pad(label string) string {
	return fmt.Sprintf("%-*s", labelWidth, label)
}

// renderMarkers returns one marker per verdict.
func (s styles) renderMarkers(verdicts []m.Verdict) string {
	var b strings.Builder

	for _, verdict := range verdicts {
		if verdict.Passed {
			b.WriteString(s.ok.Render(passMarker))
		} else {
			b.WriteString(s.alert.Render(failMarker))
		}
	}

	return b.String()
}

// renderFileReport renders the status line of a file report followed by its
// discrepancies.
func (s styles) renderFileReport(report m.FileReport) string {
	var b strings.Builder

	path := ""
	if report.Source.Origin != nil {
		path = string(report.Source.Origin.ShortPath)
	}

	checker := s.faint.Render("(" + report.Checker + ")")

	switch report.Status {
	case m.Passed:
		fmt.Fprintf(&b, "%s %s %s\n", s.ok.Render(path), checker, s.renderMarkers(report.Verdicts))
	case m.Failed:
		fmt.Fprintf(&b, "%s %s %s\n", s.alert.Render(path), checker, s.renderMarkers(report.Verdicts))

		for _, discrepancy := range report.Discrepancies() {
			b.WriteString(s.renderDiscrepancy(discrepancy))
		}
	case m.NoAssertions:
		fmt.Fprintf(&b, "%s %s no tests found\n", s.warn.Render(path), checker)
	case m.Unsupported:
		fmt.Fprintf(&b, "%s %s file format not supported or file empty\n", s.warn.Render(path), checker)
	case m.Error:
		fmt.Fprintf(&b, "%s %s error: %v\n", s.alert.Render(path), checker, report.Err)
	}

	return b.String()
}

// renderDiscrepancy renders the expected and found sides of one discrepancy.
func (s styles) renderDiscrepancy(d m.Discrepancy) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== LINE %d ===\n", d.Line())

	switch expected := d.Expected.(type) {
	case m.RevealedType:
		b.WriteString(pad("Expected type") + s.alert.Render(expected.Type.String()) + "\n")

		if found, ok := d.Found.(m.RevealedType); ok {
			b.WriteString(pad("Found type") + s.ok.Render(found.Type.String()) + "\n")
			b.WriteString(renderTypeDiff(expected.Type, found.Type))
		} else {
			b.WriteString(noTypeNoteMessage + "\n")
			b.WriteString(s.renderOther(d.Found))
		}
	case m.Flaw:
		if expected.Message == "" {
			b.WriteString("Expected error.\n")
		} else {
			b.WriteString(pad("Expected error") + s.alert.Render(expected.Message) + "\n")
		}

		if found, ok := d.Found.(m.Flaw); ok {
			b.WriteString(pad("Found error") + s.ok.Render(found.Message) + "\n")
		} else {
			b.WriteString("No error found.\n")
			b.WriteString(s.renderOther(d.Found))
		}
	case m.Mismatch:
		b.WriteString(pad("Expected mismatch") + s.alert.Render(mismatchText(expected)) + "\n")

		if found, ok := d.Found.(m.Mismatch); ok {
			b.WriteString(pad("Found mismatch") + s.ok.Render(mismatchText(found)) + "\n")
		} else {
			b.WriteString("No mismatch found.\n")
			b.WriteString(s.renderOther(d.Found))
		}
	}

	return b.String()
}

// renderOther shows a finding of another kind reported on the same line.
func (s styles) renderOther(found m.Outcome) string {
	if found == nil {
		return ""
	}

	return pad("Found instead") + s.faint.Render(found.String()) + "\n"
}

func mismatchText(mismatch m.Mismatch) string {
	return fmt.Sprintf("%s <> %s", mismatch.Assigned, mismatch.Declared)
}

// renderTypeDiff returns a unified diff of the members of two union-like
// types, or "" when neither side is a union.
func renderTypeDiff(expected, found m.Type) string {
	expectedMembers := m.TypeMembers(expected)
	foundMembers := m.TypeMembers(found)

	if len(expectedMembers) < 2 && len(foundMembers) < 2 {
		return ""
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(memberLines(expectedMembers)),
		B:        difflib.SplitLines(memberLines(foundMembers)),
		FromFile: "expected",
		ToFile:   "found",
		Context:  1,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}

	return text
}

func memberLines(members []m.Type) string {
	names := make([]string, 0, len(members))
	for _, member := range members {
		names = append(names, member.String())
	}

	return strings.Join(names, "\n")
}

// checkerTally counts file reports of one checker by status.
type checkerTally struct {
	checker string
	files   int
	passed  int
	failed  int
	skipped int
	errors  int
}

func tallyByChecker(report m.RunReport) []checkerTally {
	index := make(map[string]int, len(report.Checkers))
	tallies := make([]checkerTally, 0, len(report.Checkers))

	for _, checker := range report.Checkers {
		index[checker] = len(tallies)
		tallies = append(tallies, checkerTally{checker: checker})
	}

	for _, file := range report.Files {
		i, ok := index[file.Checker]
		if !ok {
			index[file.Checker] = len(tallies)
			i = len(tallies)
			tallies = append(tallies, checkerTally{checker: file.Checker})
		}

		tally := &tallies[i]
		tally.files++

		switch file.Status {
		case m.Passed:
			tally.passed++
		case m.Failed:
			tally.failed++
		case m.NoAssertions, m.Unsupported:
			tally.skipped++
		case m.Error:
			tally.errors++
		}
	}

	return tallies
}

func renderSummaryTable(report m.RunReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Checker", "Files", "Passed", "Failed", "Skipped", "Errors"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	var total checkerTally

	for _, tally := range tallyByChecker(report) {
		table.Append([]string{
			tally.checker,
			fmt.Sprintf("%d", tally.files),
			fmt.Sprintf("%d", tally.passed),
			fmt.Sprintf("%d", tally.failed),
			fmt.Sprintf("%d", tally.skipped),
			fmt.Sprintf("%d", tally.errors),
		})

		total.files += tally.files
		total.passed += tally.passed
		total.failed += tally.failed
		total.skipped += tally.skipped
		total.errors += tally.errors
	}

	table.SetFooter([]string{
		"Total",
		fmt.Sprintf("%d", total.files),
		fmt.Sprintf("%d", total.passed),
		fmt.Sprintf("%d", total.failed),
		fmt.Sprintf("%d", total.skipped),
		fmt.Sprintf("%d", total.errors),
	})

	table.Render()

	return tableBuffer.String()
}

func (s styles) renderVerdictLine(report m.RunReport) string {
	if report.Successful() {
		return s.ok.Render("All type assertions passed.") + "\n"
	}

	failed := 0

	for _, file := range report.Files {
		if !file.Status.Successful() {
			failed++
		}
	}

	return s.alert.Render(fmt.Sprintf("%d file check(s) failed.", failed)) + "\n"
}

func renderAssertionTable(counts []AssertionCount) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "expect-type", "expect-error", "expect-mismatch", "Total"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	var total AssertionCount

	for _, count := range counts {
		if count.Err != nil {
			table.Append([]string{string(count.Path), "-", "-", "-", "error: " + count.Err.Error()})
			continue
		}

		table.Append([]string{
			string(count.Path),
			fmt.Sprintf("%d", count.RevealedType),
			fmt.Sprintf("%d", count.Flaw),
			fmt.Sprintf("%d", count.Mismatch),
			fmt.Sprintf("%d", count.Total()),
		})

		total.RevealedType += count.RevealedType
		total.Flaw += count.Flaw
		total.Mismatch += count.Mismatch
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(counts)),
		fmt.Sprintf("%d", total.RevealedType),
		fmt.Sprintf("%d", total.Flaw),
		fmt.Sprintf("%d", total.Mismatch),
		fmt.Sprintf("%d", total.Total()),
	})

	table.Render()

	return tableBuffer.String()
}

// renderStoredReport renders a complete stored run.
func (s styles) renderStoredReport(report m.RunReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Run %s\n", report.ID)
	fmt.Fprintf(&b, "Started %s\n", report.Started.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "Checkers %s\n\n", strings.Join(report.Checkers, ", "))

	for _, file := range report.Files {
		b.WriteString(s.renderFileReport(file))
	}

	b.WriteString("\n")
	b.WriteString(renderSummaryTable(report))
	b.WriteString(s.renderVerdictLine(report))

	return b.String()
}
