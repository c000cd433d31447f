package db

import (
	"fmt"
	"io"
	"strings"
)

// TextTable renders rows as a bordered text table.
type TextTable struct {
	writer  io.Writer
	headers []string
	rows    [][]string
}

func NewTable(w io.Writer) *TextTable {
	return &TextTable{writer: w}
}

func (t *TextTable) Header(headers []string) {
	t.headers = headers
}

func (t *TextTable) Row(row []string) {
	t.rows = append(t.rows, row)
}

// Render writes the table, sizing each column to its widest cell.
func (t *TextTable) Render() {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for i, w := range widths {
		if w < 1 {
			widths[i] = 1
		}
	}

	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	separator := "+" + strings.Join(parts, "+") + "+"

	fmt.Fprintln(t.writer, separator)
	fmt.Fprintln(t.writer, t.formatRow(t.headers, widths))
	fmt.Fprintln(t.writer, separator)
	for _, row := range t.rows {
		fmt.Fprintln(t.writer, t.formatRow(row, widths))
	}
	fmt.Fprintln(t.writer, separator)
}

func (t *TextTable) formatRow(row []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		parts[i] = " " + cell + strings.Repeat(" ", w-len(cell)+1)
	}
	return "|" + strings.Join(parts, "|") + "|"
}
