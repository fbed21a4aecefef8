// Package table renders listings as terminal tables backed by lipgloss, or
// as Markdown. Consumers supply data via the TableData interface rather
// than building lipgloss tables directly.
package table

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TableData is the interface that data sources implement to be rendered
// as a table.
type TableData interface {
	// Header returns the column header labels.
	Header() []string

	// Len returns the number of rows.
	Len() int

	// Row returns the cell values for row i. Return nil to skip a row.
	// Wrap a value in Bold{} to highlight it.
	Row(i int) []any
}

// Bold wraps a cell value so that it is highlighted
type Bold struct{ Value any }

// Size is a number of bytes, rendered with a binary unit
type Size int64

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cellStyle   = lipgloss.NewStyle()
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Write renders the table to w, as Markdown or for a terminal
func Write(w io.Writer, data TableData, markdown bool) error {
	var result string
	if markdown {
		result = RenderMarkdown(data)
	} else {
		result = Render(data)
	}
	_, err := fmt.Fprintln(w, result)
	return err
}

// Render renders the table data as a string suitable for terminal output.
// The table is narrowed to the terminal width only when it would not fit.
func Render(data TableData) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = FormatCell(v)
		}
		t.Row(cells...)
	}

	result := t.Render()
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && widest(result) > w {
		t.Width(w)
		result = t.Render()
	}
	return result
}

// RenderMarkdown renders the table data as a Markdown table, for rendering
// with glamour
func RenderMarkdown(data TableData) string {
	header := data.Header()
	if len(header) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("| " + strings.Join(header, " | ") + " |\n|")
	buf.WriteString(strings.Repeat("---|", len(header)))
	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, len(header))
		for j := range header {
			if j < len(row) {
				cells[j] = strings.ReplaceAll(format(row[j], true), "|", `\|`)
			} else {
				cells[j] = "-"
			}
		}
		buf.WriteString("\n| " + strings.Join(cells, " | ") + " |")
	}
	return buf.String()
}

// FormatCell converts a value to a display string for a terminal cell.
// Empty and zero values are shown as "-".
func FormatCell(v any) string {
	return format(v, false)
}

// Truncate shortens s to max runes, collapsing newlines and appending "…"
// if truncated
func Truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func (s Size) String() string {
	const unit = 1024
	if s < unit {
		return fmt.Sprintf("%d B", int64(s))
	}
	div, exp := int64(unit), 0
	for n := int64(s) / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(s)/float64(div), "KMGTPE"[exp])
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func format(v any, markdown bool) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case Bold:
		inner := format(val.Value, markdown)
		switch {
		case inner == "-":
			return inner
		case markdown:
			return "**" + inner + "**"
		default:
			return boldStyle.Render(inner)
		}
	case string:
		if val == "" {
			return "-"
		}
		return val
	case time.Time:
		if val.IsZero() || val.Unix() == 0 {
			return "-"
		}
		return val.Format("2006-01-02 15:04")
	case bool:
		if val {
			return "yes"
		}
		return "no"
	case Size:
		if val == 0 {
			return "-"
		}
		return val.String()
	case int, int64, uint, uint64:
		s := fmt.Sprint(val)
		if s == "0" {
			return "-"
		}
		return s
	default:
		s := fmt.Sprint(val)
		if s == "" {
			return "-"
		}
		return s
	}
}

// widest returns the width in runes of the longest line
func widest(s string) int {
	result := 0
	for _, line := range strings.Split(s, "\n") {
		if n := len([]rune(line)); n > result {
			result = n
		}
	}
	return result
}
