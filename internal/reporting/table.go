package reporting

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/canopyux/canopy/internal/models"
)

// RenderTable formats rows as an aligned text table with a header rule.
// Column widths are measured with runewidth so wide glyphs in node names
// do not break the alignment.
func RenderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	total := 0
	for _, w := range widths {
		total += w
	}
	total += 2 * (len(widths) - 1)

	var b strings.Builder
	writeRow(&b, headers, widths)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("─", total))
	for _, row := range rows {
		writeRow(&b, row, widths)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i == len(widths)-1 {
			parts[i] = cell
			continue
		}
		parts[i] = padRight(cell, widths[i])
	}
	fmt.Fprintf(b, "%s\n", strings.TrimRight(strings.Join(parts, "  "), " "))
}

func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// TaskSummaryTable renders the per-task stats table printed by the
// analyze command.
func TaskSummaryTable(taskStats []models.TaskStatistics) string {
	headers := []string{"Task", "Score", "Success", "Directness", "Median time", "Results"}
	rows := make([][]string, 0, len(taskStats))
	for _, ts := range taskStats {
		rows = append(rows, []string{
			fmt.Sprintf("%d", ts.TaskIndex),
			fmt.Sprintf("%d", ts.Score),
			fmt.Sprintf("%d%% ±%d", roundPct(ts.SuccessRate), roundPct(ts.SuccessMargin)),
			fmt.Sprintf("%d%% ±%d", roundPct(ts.DirectnessRate), roundPct(ts.DirectnessMargin)),
			formatSeconds(ts.Time.Median),
			fmt.Sprintf("%d", ts.Breakdown.Total),
		})
	}
	return RenderTable(headers, rows)
}
