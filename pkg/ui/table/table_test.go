package table_test

import (
	"bytes"
	"testing"
	"time"

	// Packages
	table "github.com/mutablelogic/go-openai/pkg/ui/table"
	assert "github.com/stretchr/testify/assert"
)

type rows [][]any

func (r rows) Header() []string { return []string{"NAME", "VALUE"} }
func (r rows) Len() int         { return len(r) }
func (r rows) Row(i int) []any  { return r[i] }

func Test_table_001(t *testing.T) {
	// Empty and zero values are shown as a dash
	assert := assert.New(t)

	assert.Equal("-", table.FormatCell(nil))
	assert.Equal("-", table.FormatCell(""))
	assert.Equal("-", table.FormatCell(0))
	assert.Equal("-", table.FormatCell(int64(0)))
	assert.Equal("-", table.FormatCell(time.Time{}))
	assert.Equal("-", table.FormatCell(time.Unix(0, 0)))
	assert.Equal("42", table.FormatCell(int64(42)))
	assert.Equal("yes", table.FormatCell(true))
	assert.Equal("no", table.FormatCell(false))
}

func Test_table_002(t *testing.T) {
	// Sizes use binary units
	assert := assert.New(t)

	assert.Equal("512 B", table.Size(512).String())
	assert.Equal("1.0 KiB", table.Size(1024).String())
	assert.Equal("1.5 MiB", table.Size(3<<19).String())
	assert.Equal("-", table.FormatCell(table.Size(0)))
}

func Test_table_003(t *testing.T) {
	// Markdown output has a header, a separator and one line per row
	assert := assert.New(t)

	data := rows{
		{"gpt-4o", table.Bold{Value: "current"}},
		nil,
		{"a|b", ""},
	}
	assert.Equal("| NAME | VALUE |\n|---|---|\n| gpt-4o | **current** |\n| a\\|b | - |", table.RenderMarkdown(data))
}

func Test_table_004(t *testing.T) {
	// Terminal output contains every cell
	assert := assert.New(t)

	var buf bytes.Buffer
	assert.NoError(table.Write(&buf, rows{{"whisper-1", int64(3)}}, false))
	assert.Contains(buf.String(), "NAME")
	assert.Contains(buf.String(), "whisper-1")
	assert.Equal("whisper-…", table.Truncate("whisper-1\nlarge", 9))
}
