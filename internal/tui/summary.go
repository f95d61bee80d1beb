package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"filecredit/internal/domain"
	"filecredit/internal/report"
)

type SummaryRow struct {
	Label string
	Value string
}

// ResultRows turns a scan result into summary rows: one per document type,
// the grand total and the number of skipped paths.
func ResultRows(res domain.ScanResult) []SummaryRow {
	rows := make([]SummaryRow, 0, len(res.ByKind)+2)
	for _, kind := range res.Kinds() {
		t := res.ByKind[kind]
		rows = append(rows, SummaryRow{
			Label: kind.String() + " files",
			Value: fmt.Sprintf("%d (%s, %d A4 pages, %d credits)", t.Count, report.HumanSize(t.Size), t.A4Pages, t.Score),
		})
	}
	rows = append(rows,
		SummaryRow{Label: "Total credits", Value: fmt.Sprintf("%d", res.Total.Score)},
		SummaryRow{Label: "Skipped", Value: fmt.Sprintf("%d", len(res.Skipped))},
	)
	return rows
}

func RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
	}

	hline := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := []string{hline}

	for _, row := range rows {
		label := padRight(row.Label, labelWidth)
		value := padRight(row.Value, valueWidth)
		line := fmt.Sprintf("%s | %s", labelStyle.Render(label), valueStyle.Render(value))
		lines = append(lines, line)
	}

	lines = append(lines, hline)
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

var (
	valueStyle = lipgloss.NewStyle().Foreground(ColorInk).Bold(true)
)
