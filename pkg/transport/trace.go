package transport

import (
	"io"
	"net/http"

	// Packages
	gotransport "github.com/mutablelogic/go-client/pkg/transport"
	otel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// middleware holds the round trippers installed around the HTTP transport
type middleware struct {
	w       io.Writer
	verbose bool
	tracer  trace.Tracer
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	tracerName = "github.com/mutablelogic/go-openai"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// wrap returns a copy of the HTTP client whose transport authenticates,
// sets the fixed headers, records a span and logs each exchange. The
// caller's client is not modified.
func (c *Client) wrap(client *http.Client) *http.Client {
	tracer := c.middleware.tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	// Innermost first: the log shows what is sent on the wire
	rt := client.Transport
	if c.middleware.w != nil {
		rt = gotransport.NewLogging(c.middleware.w, rt, c.middleware.verbose)
	}
	rt = gotransport.NewTransport(tracer, rt)
	rt = gotransport.NewHeaders(rt, c.config.UserAgent, c.fixedHeaders())
	rt = gotransport.NewToken(rt, func() string {
		return "Bearer " + c.config.APIKey
	})

	wrapped := *client
	wrapped.Transport = rt
	return &wrapped
}

// fixedHeaders returns the headers set on every request
func (c *Client) fixedHeaders() map[string]string {
	headers := make(map[string]string, len(c.headers)+2)
	for key := range c.headers {
		headers[key] = c.headers.Get(key)
	}
	if c.config.Organization != "" {
		headers["OpenAI-Organization"] = c.config.Organization
	}
	if c.config.Project != "" {
		headers["OpenAI-Project"] = c.config.Project
	}
	return headers
}
