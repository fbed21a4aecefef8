package api_test

import (
	"context"
	"net/http"
	"testing"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func Test_embedding_001(t *testing.T) {
	// One vector is returned for each input
	assert := assert.New(t)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/v1/embeddings", r.URL.Path)
		body := readJSON(t, r)
		assert.Equal([]any{"a", "b"}, body["input"])
		writeJSON(w, `{"object":"list","model":"text-embedding-3-small","data":[
			{"object":"embedding","index":0,"embedding":[0.1,0.2]},
			{"object":"embedding","index":1,"embedding":[0.3,0.4]}
		],"usage":{"prompt_tokens":2,"total_tokens":2}}`)
	}))

	list, err := client.Embeddings.Create(context.Background(), schema.EmbeddingRequest{
		Model: "text-embedding-3-small",
		Input: []string{"a", "b"},
	})
	if assert.NoError(err) {
		assert.Equal([][]float64{{0.1, 0.2}, {0.3, 0.4}}, list.Vectors())
	}
}

func Test_embedding_002(t *testing.T) {
	// Missing input and base64 vectors are rejected
	assert := assert.New(t)

	client := newTestClient(t, http.NotFoundHandler())
	_, err := client.Embeddings.Create(context.Background(), schema.EmbeddingRequest{Model: "text-embedding-3-small"})
	assert.ErrorIs(err, openai.ErrEncode)
	_, err = client.Embeddings.Create(context.Background(), schema.EmbeddingRequest{Model: "text-embedding-3-small", Input: []string{"a"}, EncodingFormat: "base64"})
	assert.ErrorIs(err, openai.ErrEncode)
}

func Test_embedding_003(t *testing.T) {
	// A response without data is a decode error
	assert := assert.New(t)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"object":"list","model":"text-embedding-3-small"}`)
	}))
	_, err := client.Embeddings.Create(context.Background(), schema.EmbeddingRequest{Model: "text-embedding-3-small", Input: []string{"a"}})
	assert.ErrorIs(err, openai.ErrDecode)
}

func Test_embedding_004(t *testing.T) {
	// Fewer vectors than inputs, or a repeated index, is a decode error
	assert := assert.New(t)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := readJSON(t, r)
		if len(body["input"].([]any)) == 2 {
			writeJSON(w, `{"object":"list","model":"text-embedding-3-small","data":[
				{"object":"embedding","index":0,"embedding":[0.1]}
			]}`)
		} else {
			writeJSON(w, `{"object":"list","model":"text-embedding-3-small","data":[
				{"object":"embedding","index":1,"embedding":[0.1]},
				{"object":"embedding","index":1,"embedding":[0.2]},
				{"object":"embedding","index":0,"embedding":[0.3]}
			]}`)
		}
	}))

	_, err := client.Embeddings.Create(context.Background(), schema.EmbeddingRequest{Model: "text-embedding-3-small", Input: []string{"a", "b"}})
	assert.ErrorIs(err, openai.ErrDecode)
	_, err = client.Embeddings.Create(context.Background(), schema.EmbeddingRequest{Model: "text-embedding-3-small", Input: []string{"a", "b", "c"}})
	assert.ErrorIs(err, openai.ErrDecode)
}
