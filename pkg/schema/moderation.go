package schema

import (
	"sort"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ModerationRequest is the body of a moderation request, with one result
// for each input
type ModerationRequest struct {
	Model string   `json:"model,omitempty"`
	Input []string `json:"input"`
}

type Moderation struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Results []ModerationResult `json:"results"`
}

type ModerationResult struct {
	Flagged                   bool                `json:"flagged"`
	Categories                map[string]bool     `json:"categories"`
	CategoryScores            map[string]float64  `json:"category_scores"`
	CategoryAppliedInputTypes map[string][]string `json:"category_applied_input_types,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Moderation) String() string {
	return Stringify(m)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (m *Moderation) Validate() error {
	if m.Results == nil {
		return missing("moderation", "results")
	}
	return nil
}

// Flagged reports whether any input was flagged
func (m *Moderation) Flagged() bool {
	for _, result := range m.Results {
		if result.Flagged {
			return true
		}
	}
	return false
}

// FlaggedCategories returns the sorted names of the flagged categories
func (r ModerationResult) FlaggedCategories() []string {
	var result []string
	for category, flagged := range r.Categories {
		if flagged {
			result = append(result, category)
		}
	}
	sort.Strings(result)
	return result
}
