package api_test

import (
	"context"
	"net/http"
	"testing"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	assert "github.com/stretchr/testify/assert"
)

func Test_model_001(t *testing.T) {
	// Models are listed, fetched and deleted
	assert := assert.New(t)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/models", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"object":"list","data":[
			{"id":"whisper-1","object":"model","created":1677532384,"owned_by":"openai-internal"},
			{"id":"gpt-4o","object":"model","created":1715367049,"owned_by":"system"}
		]}`)
	})
	mux.HandleFunc("GET /v1/models/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"id":"`+r.PathValue("id")+`","object":"model","created":1,"owned_by":"system"}`)
	})
	mux.HandleFunc("DELETE /v1/models/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"id":"`+r.PathValue("id")+`","object":"model","deleted":true}`)
	})
	client := newTestClient(t, mux)

	models, err := client.Models.List(context.Background())
	if assert.NoError(err) && assert.Len(models, 2) {
		assert.Equal("gpt-4o", models[0].ID)
		assert.Equal("whisper-1", models[1].ID)
	}

	model, err := client.Models.Get(context.Background(), "gpt-4o-mini")
	if assert.NoError(err) {
		assert.Equal("gpt-4o-mini", model.ID)
	}

	deleted, err := client.Models.Delete(context.Background(), "ft:gpt-4o-mini:acme::abc123")
	if assert.NoError(err) {
		assert.True(deleted.Deleted)
		assert.Equal("ft:gpt-4o-mini:acme::abc123", deleted.ID)
	}

	_, err = client.Models.Get(context.Background(), "")
	assert.ErrorIs(err, openai.ErrEncode)
}
