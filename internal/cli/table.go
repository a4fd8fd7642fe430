package cli

import (
	"regexp"
	"strings"
)

// ansiPattern matches SGR escape sequences, which take no space on screen.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Table represents a simple table formatter with dynamic column widths.
// Cells may contain ANSI colour sequences; they are ignored when measuring.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row to the table.
// Rows shorter than the header are padded, longer rows are truncated.
func (t *Table) AddRow(row []string) {
	newRow := make([]string, len(t.headers))
	copy(newRow, row)
	t.rows = append(t.rows, newRow)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = visibleLen(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := visibleLen(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var result strings.Builder

	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = padRight(cell, colWidths[i])
		}
		result.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		result.WriteString("\n")
	}

	writeRow(t.headers)

	sepParts := make([]string, len(t.headers))
	for i, w := range colWidths {
		sepParts[i] = strings.Repeat("-", w)
	}
	writeRow(sepParts)

	for _, row := range t.rows {
		writeRow(row)
	}

	return result.String()
}

// visibleLen returns the printed width of s, ignoring ANSI sequences.
func visibleLen(s string) int {
	return len(ansiPattern.ReplaceAllString(s, ""))
}

// padRight pads a string with spaces on the right to reach the desired visible width.
func padRight(s string, width int) string {
	n := visibleLen(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
