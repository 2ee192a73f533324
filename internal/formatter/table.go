// Package formatter renders human-readable previews of normalized movies.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// minColumnWidth keeps the separator row at least "---".
const minColumnWidth = 3

// FormatTable renders rows as a Markdown table. The first row is the header;
// a separator line is inserted after it. Cells are padded by display width so
// wide characters line up.
func FormatTable(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}

	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	// Calculate max widths (using display width)
	colWidths := make([]int, colCount)

	for _, row := range rows {
		for i, cell := range row {
			width := runewidth.StringWidth(cleanCell(cell))
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	for i := range colWidths {
		if colWidths[i] < minColumnWidth {
			colWidths[i] = minColumnWidth
		}
	}

	result := make([]string, 0, len(rows)+1)
	result = append(result, renderRow(rows[0], colWidths))
	result = append(result, renderSeparator(colWidths))

	for _, row := range rows[1:] {
		result = append(result, renderRow(row, colWidths))
	}

	return result
}

func renderRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		sb.WriteString(" ")

		content := ""
		if j < len(row) {
			content = cleanCell(row[j])
		}

		sb.WriteString(content)

		// Pad with spaces based on display width
		if padding := width - runewidth.StringWidth(content); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}

func renderSeparator(colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for _, width := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}

	return sb.String()
}

// cleanCell keeps a cell on one line and escapes pipes.
func cleanCell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
