package restructure

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/reflow/indent"

	"github.com/galaxysprawl/devtools/internal"
)

var (
	reportTitleStyle = lipgloss.NewStyle().Bold(true)
	reportLabelStyle = lipgloss.NewStyle().Width(22)
)

// Tracker accumulates planned and completed operation counts plus the
// warnings and errors raised by every phase of a run. It renders a single
// overwriting progress line while moves happen and a final multi-section
// report when the run ends. One Tracker belongs to exactly one run.
type Tracker struct {
	out                 io.Writer
	totalOperations     int
	completedOperations int
	warnings            []string
	errors              []string
}

// NewTracker returns a Tracker that writes its progress line to out.
func NewTracker(out io.Writer) *Tracker {
	return &Tracker{out: out}
}

// AddWarning records and logs a warning.
func (t *Tracker) AddWarning(message string) {
	t.warnings = append(t.warnings, message)
	log.Warn(message)
}

// AddError records and logs an error. Recorded errors do not stop the run;
// they are surfaced in the final report.
func (t *Tracker) AddError(message string) {
	t.errors = append(t.errors, message)
	log.Error(message)
}

// AddTotal raises the expected operation count by n.
func (t *Tracker) AddTotal(n int) {
	t.totalOperations += n
}

// Increment marks one operation as completed and refreshes the progress line.
func (t *Tracker) Increment() {
	t.completedOperations++
	t.updateProgress()
}

func (t *Tracker) Total() int {
	return t.totalOperations
}

func (t *Tracker) Completed() int {
	return t.completedOperations
}

func (t *Tracker) Warnings() []string {
	return t.warnings
}

func (t *Tracker) Errors() []string {
	return t.errors
}

func (t *Tracker) updateProgress() {
	if t.totalOperations <= 0 {
		return
	}

	percentage := float64(t.completedOperations) / float64(t.totalOperations) * 100

	fmt.Fprintf(t.out, "\rProgress: [%d/%d] %s%%",
		t.completedOperations, t.totalOperations, internal.PrettyPrintFloat(percentage, 1))
}

// Report renders the final human-readable summary. It is printed at the end
// of every run regardless of outcome.
func (t *Tracker) Report() string {
	var output strings.Builder

	output.WriteString("\n")
	output.WriteString(reportTitleStyle.Render("=== Restructuring Report ==="))
	output.WriteString("\n")

	writeStatLine := func(label string, value string) {
		output.WriteString(fmt.Sprintf("%s %s\n", reportLabelStyle.Render(label+":"), value))
	}

	writeStatLine("Total operations", internal.PrettyPrintInt(int64(t.totalOperations)))
	writeStatLine("Completed operations", internal.PrettyPrintInt(int64(t.completedOperations)))

	if t.totalOperations > 0 {
		rate := float64(t.completedOperations) / float64(t.totalOperations) * 100
		writeStatLine("Success rate", internal.PrettyPrintFloat(rate, 1)+"%")
	} else {
		writeStatLine("Success rate", "n/a")
	}

	if len(t.errors) > 0 {
		output.WriteString("\nErrors:\n")
		output.WriteString(indent.String(itemList(t.errors), 2))
	}

	if len(t.warnings) > 0 {
		output.WriteString("\nWarnings:\n")
		output.WriteString(indent.String(itemList(t.warnings), 2))
	}

	output.WriteString("\n")
	output.WriteString(reportTitleStyle.Render("==========================="))

	return output.String()
}

func itemList(items []string) string {
	var output strings.Builder

	for _, item := range items {
		output.WriteString("- " + item + "\n")
	}

	return output.String()
}
