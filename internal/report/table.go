// Package report renders aligned text tables and section headers for terminal output.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Align selects how a column's cells are padded.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column describes one table column.
type Column struct {
	Title    string
	Align    Align
	MaxWidth int // 0 = unbounded; longer cells are cut with "…"
}

// Table collects rows and writes them with columns padded to their
// display width, so wide (East Asian) characters line up.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Missing cells are blank and extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(cells) {
			row[i] = t.clip(i, cells[i])
		}
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of rows added.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) clip(col int, s string) string {
	if limit := t.columns[col].MaxWidth; limit > 0 && runewidth.StringWidth(s) > limit {
		return runewidth.Truncate(s, limit, "…")
	}
	return s
}

// widths returns the display width of each column.
func (t *Table) widths() []int {
	widths := make([]int, len(t.columns))
	for i, c := range t.columns {
		widths[i] = runewidth.StringWidth(c.Title)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// Render writes the header, a rule and every row to w.
func (t *Table) Render(w io.Writer) error {
	widths := t.widths()

	titles := make([]string, len(t.columns))
	rules := make([]string, len(t.columns))
	for i, c := range t.columns {
		titles[i] = c.Title
		rules[i] = strings.Repeat("-", widths[i])
	}

	if err := t.writeLine(w, widths, titles); err != nil {
		return err
	}
	if err := t.writeLine(w, widths, rules); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := t.writeLine(w, widths, row); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) writeLine(w io.Writer, widths []int, cells []string) error {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if t.columns[i].Align == AlignRight {
			parts[i] = runewidth.FillLeft(cell, widths[i])
		} else {
			parts[i] = runewidth.FillRight(cell, widths[i])
		}
	}
	_, err := fmt.Fprintf(w, "  %s\n", strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}

// Header writes a title framed by "=" rules.
func Header(w io.Writer, format string, args ...interface{}) {
	title := fmt.Sprintf(format, args...)
	width := runewidth.StringWidth(title) + 4
	fmt.Fprintln(w, strings.Repeat("=", width))
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintln(w, strings.Repeat("=", width))
}

// Section writes a bracketed section title with a "-" underline.
func Section(w io.Writer, title string) {
	fmt.Fprintf(w, "[%s]\n", title)
	fmt.Fprintln(w, strings.Repeat("-", runewidth.StringWidth(title)+2))
}

// FormatNumber renders v with the given number of decimal places.
func FormatNumber(v float64, precision int) string {
	return fmt.Sprintf("%.*f", precision, v)
}
