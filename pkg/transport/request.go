package transport

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	// Packages
	openai "github.com/mutablelogic/go-openai"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Request describes one API call. It is a value: build one per call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   Payload
	Stream bool
}

// Payload is an encoded request body
type Payload interface {
	// ContentType returns the value of the Content-Type header
	ContentType() string

	// Bytes returns the encoded body
	Bytes() []byte
}

// Validator is implemented by responses which have required fields.
// It is called after a response has been decoded.
type Validator interface {
	Validate() error
}

type jsonPayload []byte

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ContentTypeJSON        = "application/json"
	ContentTypeTextStream  = "text/event-stream"
	ContentTypeOctetStream = "application/octet-stream"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewJSONPayload encodes v as JSON. The encoding happens immediately, so a
// value which cannot be encoded fails here with ErrEncode rather than
// during the call.
func NewJSONPayload(v any) (Payload, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, openai.ErrEncode.Wrap(err)
	}
	return jsonPayload(data), nil
}

// Get returns a GET request for the path segments
func Get(path ...string) Request {
	return Request{Method: http.MethodGet, Path: joinPath(path...)}
}

// Post returns a POST request for the path segments. The body may be nil.
func Post(body Payload, path ...string) Request {
	return Request{Method: http.MethodPost, Path: joinPath(path...), Body: body}
}

// Delete returns a DELETE request for the path segments
func Delete(path ...string) Request {
	return Request{Method: http.MethodDelete, Path: joinPath(path...)}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (p jsonPayload) ContentType() string {
	return ContentTypeJSON
}

func (p jsonPayload) Bytes() []byte {
	return p
}

// WithQuery returns a copy of the request with query parameters added
func (r Request) WithQuery(query url.Values) Request {
	if len(query) == 0 {
		return r
	}
	merged := make(url.Values, len(r.Query)+len(query))
	for k, v := range r.Query {
		merged[k] = append([]string(nil), v...)
	}
	for k, v := range query {
		merged[k] = append(merged[k], v...)
	}
	r.Query = merged
	return r
}

// WithStream returns a copy of the request which expects an event stream
func (r Request) WithStream() Request {
	r.Stream = true
	return r
}

// Validate checks the method, the path and that GET and DELETE requests
// carry no body. Failures are reported as ErrEncode.
func (r Request) Validate() error {
	switch r.Method {
	case http.MethodGet, http.MethodDelete:
		if r.Body != nil {
			return openai.ErrEncode.Withf("%s request cannot carry a body", r.Method)
		}
	case http.MethodPost:
		// Body is optional
	default:
		return openai.ErrEncode.Withf("unsupported method %q", r.Method)
	}
	return validatePath(r.Path)
}

// URL returns the absolute URL of the request relative to the endpoint
func (r Request) URL(endpoint string) (string, error) {
	if err := validatePath(r.Path); err != nil {
		return "", err
	}
	u := strings.TrimRight(endpoint, "/") + "/" + strings.TrimLeft(r.Path, "/")
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}
	return u, nil
}

// String returns the method and path of the request
func (r Request) String() string {
	return r.Method + " /" + strings.TrimLeft(r.Path, "/")
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// joinPath escapes each segment, so an identifier containing a slash
// cannot address a different resource
func joinPath(path ...string) string {
	segments := make([]string, 0, len(path))
	for _, segment := range path {
		segments = append(segments, url.PathEscape(segment))
	}
	return strings.Join(segments, "/")
}

func validatePath(path string) error {
	if strings.TrimLeft(path, "/") == "" {
		return openai.ErrEncode.With("empty path")
	}
	if strings.HasPrefix(path, "//") {
		return openai.ErrEncode.Withf("path %q is not relative", path)
	}
	u, err := url.Parse(path)
	if err != nil {
		return openai.ErrEncode.Withf("invalid path %q: %v", path, err)
	}
	if u.Scheme != "" || u.Host != "" || u.RawQuery != "" || u.Fragment != "" {
		return openai.ErrEncode.Withf("path %q is not relative", path)
	}
	for _, segment := range strings.Split(u.Path, "/") {
		if segment == "." || segment == ".." {
			return openai.ErrEncode.Withf("path %q contains a dot segment", path)
		}
	}
	return nil
}
