package api

import (
	"context"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	transport "github.com/mutablelogic/go-openai/pkg/transport"
)

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// Create returns a model response
func (r *Responses) Create(ctx context.Context, req schema.ResponseRequest) (*schema.Response, error) {
	if err := validateResponse(req); err != nil {
		return nil, err
	}
	req.Stream = false

	payload, err := transport.NewJSONPayload(req)
	if err != nil {
		return nil, err
	}
	return transport.Execute[schema.Response](ctx, r.client, transport.Post(payload, "responses"))
}

// Stream returns the response as a stream of events. The stream ends
// after the response.completed, response.failed or response.incomplete
// event, which carries the final response.
func (r *Responses) Stream(ctx context.Context, req schema.ResponseRequest) (*transport.Stream[schema.ResponseEvent], error) {
	if err := validateResponse(req); err != nil {
		return nil, err
	}
	req.Stream = true

	payload, err := transport.NewJSONPayload(req)
	if err != nil {
		return nil, err
	}
	return transport.NewStream[schema.ResponseEvent](ctx, r.client, transport.Post(payload, "responses"), transport.StreamTerminal(func(event *schema.ResponseEvent) bool {
		return event.Terminal()
	}))
}

// Get returns a stored response
func (r *Responses) Get(ctx context.Context, id string) (*schema.Response, error) {
	if err := requireID("response", id); err != nil {
		return nil, err
	}
	return transport.Execute[schema.Response](ctx, r.client, transport.Get("responses", id))
}

// Delete deletes a stored response
func (r *Responses) Delete(ctx context.Context, id string) (*schema.Deleted, error) {
	if err := requireID("response", id); err != nil {
		return nil, err
	}
	return transport.Execute[schema.Deleted](ctx, r.client, transport.Delete("responses", id))
}

// Cancel cancels a response created in the background
func (r *Responses) Cancel(ctx context.Context, id string) (*schema.Response, error) {
	if err := requireID("response", id); err != nil {
		return nil, err
	}
	return transport.Execute[schema.Response](ctx, r.client, transport.Post(nil, "responses", id, "cancel"))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func validateResponse(req schema.ResponseRequest) error {
	if err := requireModel(req.Model); err != nil {
		return err
	}
	if req.Input.IsNull() && req.PreviousResponseID == "" {
		return openai.ErrEncode.With("missing input")
	}
	for _, tool := range req.Tools {
		if err := tool.Validate(); err != nil {
			return err
		}
	}
	return nil
}
