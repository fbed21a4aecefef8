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

// Create classifies each input as potentially harmful or not
func (m *Moderations) Create(ctx context.Context, req schema.ModerationRequest) (*schema.Moderation, error) {
	if len(req.Input) == 0 {
		return nil, openai.ErrEncode.With("missing input")
	}
	payload, err := transport.NewJSONPayload(req)
	if err != nil {
		return nil, err
	}
	return transport.Execute[schema.Moderation](ctx, m.client, transport.Post(payload, "moderations"))
}
