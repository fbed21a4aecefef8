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

func Test_moderation_001(t *testing.T) {
	// Each input has a result
	assert := assert.New(t)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/v1/moderations", r.URL.Path)
		writeJSON(w, `{"id":"modr-1","model":"omni-moderation-latest","results":[
			{"flagged":false,"categories":{"violence":false},"category_scores":{"violence":0.01}},
			{"flagged":true,"categories":{"violence":true},"category_scores":{"violence":0.97}}
		]}`)
	}))

	moderation, err := client.Moderations.Create(context.Background(), schema.ModerationRequest{Input: []string{"hello", "threat"}})
	if assert.NoError(err) {
		assert.Len(moderation.Results, 2)
		assert.True(moderation.Flagged())
		assert.Equal([]string{"violence"}, moderation.Results[1].FlaggedCategories())
	}

	_, err = client.Moderations.Create(context.Background(), schema.ModerationRequest{})
	assert.ErrorIs(err, openai.ErrEncode)
}
