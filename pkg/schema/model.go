package schema

import (
	"time"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Model describes a model available to the organization
type Model struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

type ModelList struct {
	Object string  `json:"object"`
	Data   []Model `json:"data"`
}

// Deleted is the response when deleting a model, file or response
type Deleted struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	return Stringify(m)
}

func (d Deleted) String() string {
	return Stringify(d)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (m *Model) Validate() error {
	if m.ID == "" {
		return missing("model", "id")
	}
	return nil
}

// CreatedAt returns the creation time of the model
func (m Model) CreatedAt() time.Time {
	return time.Unix(m.Created, 0)
}

func (m *ModelList) Validate() error {
	if m.Data == nil {
		return missing("models", "data")
	}
	return nil
}

func (d *Deleted) Validate() error {
	if d.ID == "" {
		return missing("deleted", "id")
	}
	return nil
}
