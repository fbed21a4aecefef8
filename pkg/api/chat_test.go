package api_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	transport "github.com/mutablelogic/go-openai/pkg/transport"
	assert "github.com/stretchr/testify/assert"
)

func Test_chat_001(t *testing.T) {
	// A completion returns the assistant message
	assert := assert.New(t)

	var body map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/v1/chat/completions", r.URL.Path)
		body = readJSON(t, r)
		writeJSON(w, `{"choices":[{"message":{"role":"assistant","content":"Hi there"}}]}`)
	}))

	completion, err := client.Chat.Create(context.Background(), schema.ChatRequest{
		Model:    "gpt-4o-mini",
		Messages: []schema.Message{schema.NewUserMessage("Hello")},
		Stream:   true,
	})
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("Hi there", completion.Choices[0].Message.Text())
	assert.Equal("assistant", completion.Choices[0].Message.Role)
	assert.Equal("gpt-4o-mini", body["model"])
	assert.NotContains(body, "stream")
}

func Test_chat_002(t *testing.T) {
	// A streamed completion requests usage and yields the chunks
	assert := assert.New(t)

	var body map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body = readJSON(t, r)
		writeEvents(w,
			"data: {\"id\":\"c1\",\"choices\":[{\"index\":0,\"delta\":{\"role\":\"assistant\",\"content\":\"Hi\"}}]}\n\n",
			"data: {\"id\":\"c1\",\"choices\":[{\"index\":0,\"delta\":{\"content\":\" there\"},\"finish_reason\":\"stop\"}]}\n\n",
			"data: {\"id\":\"c1\",\"choices\":[],\"usage\":{\"prompt_tokens\":1,\"completion_tokens\":2,\"total_tokens\":3}}\n\n",
			"data: [DONE]\n\n",
		)
	}))

	stream, err := client.Chat.Stream(context.Background(), schema.ChatRequest{
		Model:    "gpt-4o-mini",
		Messages: []schema.Message{schema.NewUserMessage("Hello")},
	})
	if !assert.NoError(err) {
		t.FailNow()
	}
	var completion schema.ChatCompletion
	for chunk, err := range stream.All() {
		if !assert.NoError(err) {
			break
		}
		completion.Append(chunk)
	}
	assert.Equal(transport.StateCompleted, stream.State())
	assert.Equal(3, stream.Count())
	assert.Equal("Hi there", completion.Text())
	assert.Equal(3, completion.Usage.TotalTokens)
	assert.Equal(true, body["stream"])
	assert.Equal(map[string]any{"include_usage": true}, body["stream_options"])
}

func Test_chat_003(t *testing.T) {
	// Invalid requests are rejected before anything is sent
	assert := assert.New(t)

	var hits atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	_, err := client.Chat.Create(context.Background(), schema.ChatRequest{Messages: []schema.Message{schema.NewUserMessage("Hi")}})
	assert.ErrorIs(err, openai.ErrEncode)
	_, err = client.Chat.Create(context.Background(), schema.ChatRequest{Model: "gpt-4o"})
	assert.ErrorIs(err, openai.ErrEncode)
	_, err = client.Chat.Stream(context.Background(), schema.ChatRequest{Model: "gpt-4o", Messages: []schema.Message{{}}})
	assert.ErrorIs(err, openai.ErrEncode)
	_, err = client.Chat.Create(context.Background(), schema.ChatRequest{
		Model:    "gpt-4o",
		Messages: []schema.Message{schema.NewUserMessage("Hi")},
		Tools:    []schema.Tool{schema.NewFunctionTool("get weather", "", nil)},
	})
	assert.ErrorIs(err, openai.ErrEncode)
	assert.Equal(int32(0), hits.Load())
}

func Test_chat_004(t *testing.T) {
	// A stream which fails before any chunk returns the API error
	assert := assert.New(t)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"message":"The model does not exist","type":"invalid_request_error","code":"model_not_found"}}`))
	}))

	_, err := client.Chat.Stream(context.Background(), schema.ChatRequest{
		Model:    "gpt-5-nonexistent",
		Messages: []schema.Message{schema.NewUserMessage("Hi")},
	})
	var apiErr *openai.APIError
	if assert.ErrorAs(err, &apiErr) {
		assert.Equal(http.StatusNotFound, apiErr.StatusCode)
		assert.Equal("model_not_found", apiErr.Code)
	}
}
