package transport_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	transport "github.com/mutablelogic/go-openai/pkg/transport"
	assert "github.com/stretchr/testify/assert"
)

func Test_request_001(t *testing.T) {
	// Path segments are escaped individually
	assert := assert.New(t)

	req := transport.Get("models", "ft:gpt-4o-mini:org/x")
	assert.Equal(http.MethodGet, req.Method)
	assert.Equal("models/ft:gpt-4o-mini:org%2Fx", req.Path)
	assert.NoError(req.Validate())
	assert.Equal("GET /models/ft:gpt-4o-mini:org%2Fx", req.String())

	req = transport.Delete("files", "file-123")
	assert.Equal(http.MethodDelete, req.Method)
	assert.Equal("files/file-123", req.Path)
	assert.NoError(req.Validate())
}

func Test_request_002(t *testing.T) {
	// GET and DELETE requests cannot carry a body
	assert := assert.New(t)

	body, err := transport.NewJSONPayload(map[string]string{"a": "b"})
	if !assert.NoError(err) {
		t.FailNow()
	}
	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		req := transport.Request{Method: method, Path: "models", Body: body}
		assert.ErrorIs(req.Validate(), openai.ErrEncode)
	}

	// POST without a body is allowed
	assert.NoError(transport.Post(nil, "responses", "resp_1", "cancel").Validate())
}

func Test_request_003(t *testing.T) {
	// Paths must be relative to the endpoint
	assert := assert.New(t)

	for _, path := range []string{"", "/", "//evil.com/x", "https://evil.com/x", "models?x=1", "models#x", "../models", "files/./x"} {
		req := transport.Request{Method: http.MethodGet, Path: path}
		assert.ErrorIs(req.Validate(), openai.ErrEncode, "path %q", path)
	}
	for _, method := range []string{http.MethodPut, http.MethodPatch, ""} {
		req := transport.Request{Method: method, Path: "models"}
		assert.ErrorIs(req.Validate(), openai.ErrEncode, "method %q", method)
	}
}

func Test_request_004(t *testing.T) {
	// URL joins the endpoint, path and query
	assert := assert.New(t)

	req := transport.Get("files").WithQuery(url.Values{"purpose": {"batch"}, "limit": {"10"}})
	u, err := req.URL("https://api.openai.com/v1/")
	assert.NoError(err)
	assert.Equal("https://api.openai.com/v1/files?limit=10&purpose=batch", u)

	// WithQuery does not modify the original
	base := transport.Get("files")
	_ = base.WithQuery(url.Values{"a": {"b"}})
	assert.Nil(base.Query)

	// WithStream returns a copy
	stream := base.WithStream()
	assert.True(stream.Stream)
	assert.False(base.Stream)
}

func Test_request_005(t *testing.T) {
	// A JSON payload decodes to the value it encoded
	assert := assert.New(t)

	type message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	type request struct {
		Model       string    `json:"model"`
		Messages    []message `json:"messages"`
		Temperature *float64  `json:"temperature,omitempty"`
		Stream      bool      `json:"stream,omitempty"`
	}
	temperature := 0.5
	values := []request{
		{Model: "gpt-4o-mini"},
		{Model: "gpt-4o-mini", Messages: []message{{"user", "Hi"}, {"assistant", "Hello \"there\" ☃"}}},
		{Model: "o3", Temperature: &temperature, Stream: true},
	}
	for _, value := range values {
		payload, err := transport.NewJSONPayload(value)
		if !assert.NoError(err) {
			continue
		}
		assert.Equal(transport.ContentTypeJSON, payload.ContentType())
		var decoded request
		assert.NoError(json.Unmarshal(payload.Bytes(), &decoded))
		assert.Equal(value, decoded)
	}
}

func Test_request_006(t *testing.T) {
	// Values which cannot be encoded fail before any call
	assert := assert.New(t)

	_, err := transport.NewJSONPayload(map[string]any{"fn": func() {}})
	assert.ErrorIs(err, openai.ErrEncode)

	_, err = transport.NewJSONPayload(make(chan int))
	assert.ErrorIs(err, openai.ErrEncode)
}
