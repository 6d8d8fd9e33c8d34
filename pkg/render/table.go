package render

import (
	"strings"
	"unicode/utf8"
)

// Table is a markdown table with left-aligned cells. Column widths are
// the max of header and cell widths measured in runes.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable creates a table with given headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// Add appends a row to the table. Missing cells are rendered empty,
// extra cells are ignored.
func (t *Table) Add(row ...string) {
	t.Rows = append(t.Rows, row)
}

// String renders the table. Every line, including the last one, ends
// with a newline.
func (t *Table) String() string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = utf8.RuneCountInString(h)
		for _, row := range t.Rows {
			if i < len(row) {
				widths[i] = max(widths[i], utf8.RuneCountInString(row[i]))
			}
		}
	}

	var sb strings.Builder
	t.writeRow(&sb, t.Headers, widths)

	sb.WriteString("|")
	for _, w := range widths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", w))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		t.writeRow(&sb, row, widths)
	}
	return sb.String()
}

func (t *Table) writeRow(sb *strings.Builder, row []string, widths []int) {
	sb.WriteString("|")
	for i, w := range widths {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		sb.WriteString(" ")
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", w-utf8.RuneCountInString(cell)))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}
