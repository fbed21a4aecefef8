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

// Create returns one embedding vector for each input
func (e *Embeddings) Create(ctx context.Context, req schema.EmbeddingRequest) (*schema.EmbeddingList, error) {
	if err := requireModel(req.Model); err != nil {
		return nil, err
	}
	if len(req.Input) == 0 {
		return nil, openai.ErrEncode.With("missing input")
	}
	switch req.EncodingFormat {
	case "", "float":
		// Vectors are decoded as numbers
	default:
		return nil, openai.ErrEncode.Withf("unsupported encoding format %q", req.EncodingFormat)
	}

	payload, err := transport.NewJSONPayload(req)
	if err != nil {
		return nil, err
	}
	list, err := transport.Execute[schema.EmbeddingList](ctx, e.client, transport.Post(payload, "embeddings"))
	if err != nil {
		return nil, err
	} else if len(list.Data) != len(req.Input) {
		return nil, openai.ErrDecode.Withf("embeddings: %d vectors returned for %d inputs", len(list.Data), len(req.Input))
	}
	return list, nil
}
