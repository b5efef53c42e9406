// bin_formatters.go
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pivolan/binning_analyzer/binning"
	"github.com/pivolan/binning_analyzer/domain/models"
)

// BinRows собирает строки отчета из результата разбиения.
func BinRows(result *binning.Result) []models.BinRow {
	counts := result.Counts()
	total := 0
	for _, c := range counts {
		total += c
	}

	rows := make([]models.BinRow, len(counts))
	for i, c := range counts {
		percent := 0.0
		if total > 0 {
			percent = float64(c) * 100 / float64(total)
		}
		rows[i] = models.BinRow{
			Index:    i,
			Interval: result.Intervals[i],
			Label:    result.Labels[i],
			Count:    c,
			Percent:  percent,
		}
	}
	return rows
}

// GenerateBinTable рендерит результат разбиения в текстовую таблицу.
func GenerateBinTable(result *binning.Result) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Bin", "Interval", "Label", "Count", "Percent"})

	for _, row := range BinRows(result) {
		t.AppendRows([]table.Row{
			{row.Index, row.Interval, row.Label, row.Count, strconv.FormatFloat(row.Percent, 'f', 1, 64) + "%"},
		})
	}

	t.SetStyle(table.StyleDefault)
	return t.Render()
}

// GenerateBoundariesLine форматирует границы одной строкой.
func GenerateBoundariesLine(boundaries []float64) string {
	parts := make([]string, len(boundaries))
	for i, b := range boundaries {
		parts[i] = strconv.FormatFloat(b, 'f', 3, 64)
	}
	return strings.Join(parts, ", ")
}

// GenerateBinSummaryMsg форматирует итог разбиения для отправки в Telegram.
func GenerateBinSummaryMsg(result *binning.Result) string {
	buf := &strings.Builder{}
	buf.WriteString(fmt.Sprintf("📊 Разбиение: корзин %d, наблюдений %d, пропущено %d\n",
		result.Bins(), len(result.Assignments), result.Missing))
	buf.WriteString("Границы: " + GenerateBoundariesLine(result.Boundaries) + "\n\n")
	buf.WriteString(GenerateBinTable(result))
	buf.WriteString("\n")

	slugs := SlugifyLabels(result.Labels)
	buf.WriteString("\nСостав корзин:\n")
	for _, slug := range slugs {
		buf.WriteString(fmt.Sprintf("/dist_%s\n", slug))
	}
	return buf.String()
}
