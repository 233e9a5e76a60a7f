package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"exr/internal/config"
	"exr/internal/domain"
)

// Viewer displays a persisted run report in an interactive TUI
type Viewer struct {
	config *config.Config
}

// NewViewer creates a new Viewer
func NewViewer(cfg *config.Config) *Viewer {
	return &Viewer{config: cfg}
}

// View opens the two-pane viewer: runs on the left, captured output and
// parsed failure details on the right.
func (v *Viewer) View(doc *domain.ReportDocument) error {
	runs := v.collectRuns(doc)
	if len(runs) == 0 {
		color.Yellow("No runs recorded for %s", doc.Meta.Exercise)
		return nil
	}
	if doc.Report.Success() {
		color.Green("✓ Last run of %s passed all %d task(s)", doc.Meta.Exercise, doc.Meta.TotalTags)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, run := range runs {
		list.AddItem(v.listItemText(i, run), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		" %s — run of %s | Use ↑↓ to navigate, → to view output, ← to go back, Ctrl+C to exit ",
		doc.Meta.Exercise, doc.Meta.Timestamp,
	))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(runs) {
			run := runs[index]
			statsView.SetText(v.formatRunStats(run))
			detailsView.SetText(v.formatRunDetails(run))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// collectRuns flattens the report into list entries: tag runs in execution
// order, then the suite run if it happened.
func (v *Viewer) collectRuns(doc *domain.ReportDocument) []domain.TagRun {
	runs := make([]domain.TagRun, 0, len(doc.Report.Runs)+1)
	runs = append(runs, doc.Report.Runs...)
	if doc.Report.SuiteRan && doc.Report.Suite != nil {
		runs = append(runs, *doc.Report.Suite)
	}
	return runs
}

func (v *Viewer) listItemText(index int, run domain.TagRun) string {
	name := run.Tag
	if name == "" {
		name = "full suite"
	}
	if run.Passed {
		return fmt.Sprintf("[green]✓ [yellow]%d.[white] %s", index+1, name)
	}
	return fmt.Sprintf("[red]✗ [yellow]%d.[white] %s", index+1, name)
}

func (v *Viewer) formatRunStats(run domain.TagRun) string {
	name := run.Tag
	if name == "" {
		name = "full suite"
	}
	status := "[green]passed[white]"
	if !run.Passed {
		status = fmt.Sprintf("[red]failed (%s)[white]", run.FailureKind())
	}
	return fmt.Sprintf("[cyan]run:[white] [yellow]%s[white] | %s | exit %d | %d assertions in %d test case(s)\n",
		name, status, run.ExitCode, run.Assertions, run.TestCases)
}

func (v *Viewer) formatRunDetails(run domain.TagRun) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	if len(run.Failures) > 0 {
		fmt.Fprintf(w, "[yellow]Failed assertions:[white]\n")
		for _, failure := range run.Failures {
			if failure.TestName != "" {
				fmt.Fprintf(w, "[red]✗ %s[white]\n", failure.TestName)
			}
			fmt.Fprintf(w, "  [yellow]%s:%d[white]\n", failure.File, failure.Line)
			if failure.Expression != "" {
				fmt.Fprintf(w, "  %s\n", failure.Expression)
			}
			if failure.Expansion != "" {
				fmt.Fprintf(w, "  [yellow]evaluated as:[white] %s\n", failure.Expansion)
			}
			fmt.Fprintf(w, "\n")
		}
	}

	if run.Output != "" {
		fmt.Fprintf(w, "[yellow]Output:[white]\n%s\n", tview.Escape(run.Output))
	}

	w.Flush()
	return builder.String()
}
