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

// Create returns a chat completion for the conversation
func (c *Chat) Create(ctx context.Context, req schema.ChatRequest) (*schema.ChatCompletion, error) {
	if err := validateChat(req); err != nil {
		return nil, err
	}
	req.Stream = false
	req.StreamOptions = nil

	payload, err := transport.NewJSONPayload(req)
	if err != nil {
		return nil, err
	}
	return transport.Execute[schema.ChatCompletion](ctx, c.client, transport.Post(payload, "chat", "completions"))
}

// Stream returns the completion as a stream of chunks. Token usage is
// requested, so the last chunk before the end of the stream has usage
// and no choices.
func (c *Chat) Stream(ctx context.Context, req schema.ChatRequest) (*transport.Stream[schema.ChatChunk], error) {
	if err := validateChat(req); err != nil {
		return nil, err
	}
	req.Stream = true
	if req.StreamOptions == nil {
		req.StreamOptions = &schema.StreamOptions{IncludeUsage: true}
	}

	payload, err := transport.NewJSONPayload(req)
	if err != nil {
		return nil, err
	}
	return transport.NewStream[schema.ChatChunk](ctx, c.client, transport.Post(payload, "chat", "completions"))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func validateChat(req schema.ChatRequest) error {
	if err := requireModel(req.Model); err != nil {
		return err
	}
	if len(req.Messages) == 0 {
		return openai.ErrEncode.With("missing messages")
	}
	for i, message := range req.Messages {
		if message.Role == "" {
			return openai.ErrEncode.Withf("message %d: missing role", i)
		}
	}
	for _, tool := range req.Tools {
		if err := tool.Validate(); err != nil {
			return err
		}
	}
	return nil
}
