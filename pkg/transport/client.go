/*
transport executes requests against the OpenAI HTTP API. It builds the wire
request from a Request and the client configuration, decodes JSON responses
into typed values, maps failures into the error kinds of the root package,
and decodes Server-Sent-Events responses into a stream of typed chunks.
*/
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	// Packages
	uuid "github.com/google/uuid"
	openai "github.com/mutablelogic/go-openai"
	version "github.com/mutablelogic/go-openai/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client executes requests. It is safe for concurrent use: the only state
// shared between calls is the read-only configuration and the connection
// pool of the underlying HTTP client.
type Client struct {
	config     Config
	client     *http.Client
	headers    http.Header
	middleware middleware
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Limit on error bodies read from the server
	maxErrorBody = 1 << 20

	// Error messages taken from a raw body are truncated to this many bytes
	maxErrorMessage = 4096
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client with the given API key. It returns ErrConfig when the
// key is empty or an option is invalid.
func New(apiKey string, opts ...Opt) (*Client, error) {
	c := &Client{
		config: Config{
			APIKey:        strings.TrimSpace(apiKey),
			BaseURL:       DefaultEndpoint,
			Timeout:       DefaultTimeout,
			UploadTimeout: DefaultUploadTimeout,
			UserAgent:     version.UserAgent(),
		},
		headers: make(http.Header),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Check configuration
	if err := c.config.Validate(); err != nil {
		return nil, err
	}

	// Set defaults. Timeouts are applied per call through the context, so
	// the default HTTP client has none of its own.
	if c.client == nil {
		c.client = &http.Client{}
	}
	c.client = c.wrap(c.client)

	// Return success
	return c, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Config returns a copy of the client configuration
func (c *Client) Config() Config {
	return c.config
}

// Do executes a request and decodes the response into out. When out is nil
// the body is discarded; *[]byte and io.Writer receive the raw body; any
// other value is decoded from JSON and, if it implements Validator,
// validated.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	if err := req.Validate(); err != nil {
		return err
	} else if req.Stream {
		return openai.ErrEncode.With("streaming request requires NewStream")
	}

	// Bound the whole exchange, including reading the body
	if timeout := c.timeout(req); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	// Send the request
	httpreq, err := c.newRequest(ctx, req)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(httpreq)
	if err != nil {
		return transportErr(ctx, err)
	}
	defer resp.Body.Close()

	// Map non-2xx responses
	if !isSuccess(resp.StatusCode) {
		return apiError(resp)
	}

	// Read the body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportErr(ctx, err)
	}

	// Decode the body
	return decodeBody(body, out)
}

// Execute executes a request and returns the decoded response
func Execute[T any](ctx context.Context, c *Client, req Request) (*T, error) {
	var out T
	if err := c.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// newRequest builds the wire request with its content headers. The
// credentials and fixed headers are added by the transport.
func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	url, err := req.URL(c.config.BaseURL)
	if err != nil {
		return nil, err
	}

	// Body
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body.Bytes())
	}

	httpreq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, openai.ErrEncode.Wrap(err)
	}

	// Headers
	httpreq.Header.Set("X-Client-Request-Id", uuid.NewString())
	if req.Body != nil {
		httpreq.Header.Set("Content-Type", req.Body.ContentType())
	}
	if req.Stream {
		httpreq.Header.Set("Accept", ContentTypeTextStream)
		httpreq.Header.Set("Cache-Control", "no-cache")
	} else {
		httpreq.Header.Set("Accept", ContentTypeJSON)
	}

	return httpreq, nil
}

// timeout returns the bound for a call: uploads get the transfer timeout
func (c *Client) timeout(req Request) time.Duration {
	if req.Body != nil && strings.HasPrefix(req.Body.ContentType(), "multipart/") {
		return c.config.UploadTimeout
	}
	return c.config.Timeout
}

// apiError reads an error body and returns the API error it describes
func apiError(resp *http.Response) *openai.APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := parseAPIError(body)
	apiErr.StatusCode = resp.StatusCode
	apiErr.RequestID = resp.Header.Get("X-Request-Id")
	return apiErr
}

// transportErr wraps a network fault. When the context has ended, its cause
// (cancellation or deadline) is reported instead of the fault it provoked.
func transportErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		if cause := context.Cause(ctx); cause != nil {
			err = cause
		}
	}
	return openai.ErrTransport.Wrap(err)
}

// parseAPIError decodes the error envelope, falling back to the raw body.
// The code and param fields are strings, numbers or null depending on
// the endpoint.
func parseAPIError(body []byte) *openai.APIError {
	var envelope struct {
		Error *struct {
			Message string `json:"message"`
			Type    string `json:"type"`
			Param   any    `json:"param"`
			Code    any    `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		return &openai.APIError{
			Message: envelope.Error.Message,
			Type:    envelope.Error.Type,
			Param:   scalar(envelope.Error.Param),
			Code:    scalar(envelope.Error.Code),
		}
	}

	// Flat error objects, as sent in "error" stream events
	var flat struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Param   any    `json:"param"`
		Code    any    `json:"code"`
	}
	if err := json.Unmarshal(body, &flat); err == nil && flat.Message != "" {
		return &openai.APIError{
			Message: flat.Message,
			Type:    flat.Type,
			Param:   scalar(flat.Param),
			Code:    scalar(flat.Code),
		}
	}

	return &openai.APIError{Message: truncate(strings.TrimSpace(string(body)))}
}

// truncate shortens a message to at most maxErrorMessage bytes, cutting
// on a rune boundary
func truncate(s string) string {
	if len(s) <= maxErrorMessage {
		return s
	}
	n := maxErrorMessage
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "…"
}

func scalar(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		data, _ := json.Marshal(v)
		return string(data)
	}
}

// decodeBody decodes a successful response body into out
func decodeBody(body []byte, out any) error {
	switch out := out.(type) {
	case nil:
		return nil
	case *[]byte:
		*out = body
		return nil
	case io.Writer:
		if _, err := out.Write(body); err != nil {
			return openai.ErrDecode.Wrap(err)
		}
		return nil
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return openai.ErrDecode.With("empty response body")
	}
	if err := json.Unmarshal(body, out); err != nil {
		return openai.ErrDecode.Wrap(err)
	}
	return validate(out)
}

// validate runs the Validator on a decoded value, reporting failure as ErrDecode
func validate(v any) error {
	validator, ok := v.(Validator)
	if !ok {
		return nil
	}
	if err := validator.Validate(); err != nil {
		if errors.Is(err, openai.ErrDecode) {
			return err
		}
		return openai.ErrDecode.Wrap(err)
	}
	return nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
