package schema

import (
	"strings"
	"time"

	// Packages
	uitable "github.com/mutablelogic/go-openai/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ModelTable implements table.TableData for a list of models
type ModelTable struct {
	Models       []Model
	CurrentModel string
}

// FileTable implements table.TableData for a list of files
type FileTable []File

// ModerationTable implements table.TableData for moderation results, with
// one row for each input
type ModerationTable struct {
	Input   []string
	Results []ModerationResult
}

var _ uitable.TableData = ModelTable{}
var _ uitable.TableData = FileTable{}
var _ uitable.TableData = ModerationTable{}

///////////////////////////////////////////////////////////////////////////////
// MODEL TABLE

func (t ModelTable) Header() []string {
	return []string{"MODEL", "OWNED BY", "CREATED"}
}

func (t ModelTable) Len() int {
	return len(t.Models)
}

func (t ModelTable) Row(i int) []any {
	m := t.Models[i]
	var id any = m.ID
	if m.ID == t.CurrentModel {
		id = uitable.Bold{Value: m.ID}
	}
	return []any{id, m.OwnedBy, m.CreatedAt()}
}

///////////////////////////////////////////////////////////////////////////////
// FILE TABLE

func (t FileTable) Header() []string {
	return []string{"FILE", "NAME", "PURPOSE", "BYTES", "CREATED"}
}

func (t FileTable) Len() int {
	return len(t)
}

func (t FileTable) Row(i int) []any {
	f := t[i]
	return []any{f.ID, f.Filename, f.Purpose, uitable.Size(f.Bytes), f.Created().Truncate(time.Second)}
}

///////////////////////////////////////////////////////////////////////////////
// MODERATION TABLE

func (t ModerationTable) Header() []string {
	return []string{"INPUT", "FLAGGED", "CATEGORIES"}
}

func (t ModerationTable) Len() int {
	return len(t.Results)
}

func (t ModerationTable) Row(i int) []any {
	var input string
	if i < len(t.Input) {
		input = uitable.Truncate(t.Input[i], 40)
	}
	result := t.Results[i]
	var flagged any = result.Flagged
	if result.Flagged {
		flagged = uitable.Bold{Value: true}
	}
	return []any{input, flagged, strings.Join(result.FlaggedCategories(), ", ")}
}
