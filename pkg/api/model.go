package api

import (
	"context"
	"sort"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	transport "github.com/mutablelogic/go-openai/pkg/transport"
)

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// List returns the available models, sorted by id
func (m *Models) List(ctx context.Context) ([]schema.Model, error) {
	response, err := transport.Execute[schema.ModelList](ctx, m.client, transport.Get("models"))
	if err != nil {
		return nil, err
	}
	sort.Slice(response.Data, func(i, j int) bool {
		return response.Data[i].ID < response.Data[j].ID
	})
	return response.Data, nil
}

// Get returns one model
func (m *Models) Get(ctx context.Context, model string) (*schema.Model, error) {
	if err := requireModel(model); err != nil {
		return nil, err
	}
	return transport.Execute[schema.Model](ctx, m.client, transport.Get("models", model))
}

// Delete deletes a fine-tuned model. You must have the Owner role in your
// organization to delete a model.
func (m *Models) Delete(ctx context.Context, model string) (*schema.Deleted, error) {
	if err := requireModel(model); err != nil {
		return nil, err
	}
	return transport.Execute[schema.Deleted](ctx, m.client, transport.Delete("models", model))
}
