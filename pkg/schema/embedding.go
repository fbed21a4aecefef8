package schema

import (
	// Packages
	openai "github.com/mutablelogic/go-openai"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// EmbeddingRequest is the body of an embeddings request
type EmbeddingRequest struct {
	Model          string   `json:"model"`
	Input          []string `json:"input"`
	EncodingFormat string   `json:"encoding_format,omitempty"` // float only
	Dimensions     *int     `json:"dimensions,omitempty"`
	User           string   `json:"user,omitempty"`
}

// EmbeddingList is the response to an embeddings request, with one
// embedding for each input in the same order
type EmbeddingList struct {
	Object string      `json:"object"`
	Data   []Embedding `json:"data"`
	Model  string      `json:"model"`
	Usage  *Usage      `json:"usage,omitempty"`
}

// Embedding is a single vector
type Embedding struct {
	Object    string    `json:"object"`
	Index     int       `json:"index"`
	Embedding []float64 `json:"embedding"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (e EmbeddingList) String() string {
	return Stringify(e)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate checks that each index names a distinct slot in the list
func (e *EmbeddingList) Validate() error {
	if e.Data == nil {
		return missing("embeddings", "data")
	}
	seen := make([]bool, len(e.Data))
	for _, embedding := range e.Data {
		switch {
		case embedding.Index < 0 || embedding.Index >= len(e.Data):
			return openai.ErrDecode.Withf("embeddings: index %d out of range", embedding.Index)
		case seen[embedding.Index]:
			return openai.ErrDecode.Withf("embeddings: duplicate index %d", embedding.Index)
		}
		seen[embedding.Index] = true
	}
	return nil
}

// Vectors returns the vectors ordered by input index. Embeddings with an
// index outside the list are dropped, leaving their slot empty.
func (e *EmbeddingList) Vectors() [][]float64 {
	result := make([][]float64, len(e.Data))
	for _, embedding := range e.Data {
		if embedding.Index >= 0 && embedding.Index < len(result) {
			result[embedding.Index] = embedding.Embedding
		}
	}
	return result
}
