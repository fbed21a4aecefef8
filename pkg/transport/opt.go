package transport

import (
	"io"
	"net/http"
	"strings"
	"time"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt sets an option on the client at construction time
type Opt func(*Client) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// OptEndpoint sets the base URL, for example "https://api.openai.com/v1"
// or the address of a compatible server.
func OptEndpoint(value string) Opt {
	return func(c *Client) error {
		if _, err := parseEndpoint(value); err != nil {
			return err
		}
		c.config.BaseURL = strings.TrimRight(strings.TrimSpace(value), "/")
		return nil
	}
}

// OptOrganization sets the OpenAI-Organization header on every request
func OptOrganization(value string) Opt {
	return func(c *Client) error {
		c.config.Organization = strings.TrimSpace(value)
		return nil
	}
}

// OptProject sets the OpenAI-Project header on every request
func OptProject(value string) Opt {
	return func(c *Client) error {
		c.config.Project = strings.TrimSpace(value)
		return nil
	}
}

// OptTimeout bounds JSON calls, and the time to first byte of streaming calls.
// Zero disables the timeout.
func OptTimeout(value time.Duration) Opt {
	return func(c *Client) error {
		if value < 0 {
			return openai.ErrConfig.With("negative timeout")
		}
		c.config.Timeout = value
		return nil
	}
}

// OptUploadTimeout bounds multipart uploads. Zero disables the timeout.
func OptUploadTimeout(value time.Duration) Opt {
	return func(c *Client) error {
		if value < 0 {
			return openai.ErrConfig.With("negative upload timeout")
		}
		c.config.UploadTimeout = value
		return nil
	}
}

// OptUserAgent replaces the default User-Agent header
func OptUserAgent(value string) Opt {
	return func(c *Client) error {
		if value = strings.TrimSpace(value); value == "" {
			return openai.ErrConfig.With("empty user agent")
		}
		c.config.UserAgent = value
		return nil
	}
}

// OptHeader adds a header to every request
func OptHeader(key, value string) Opt {
	return func(c *Client) error {
		switch http.CanonicalHeaderKey(key) {
		case "", "Authorization", "Content-Type", "Accept":
			return openai.ErrConfig.Withf("header %q cannot be set", key)
		}
		c.headers.Set(key, value)
		return nil
	}
}

// OptHTTPClient sets the underlying HTTP client, which owns the connection
// pool. Its own Timeout should be zero, or streams will be cut short.
func OptHTTPClient(value *http.Client) Opt {
	return func(c *Client) error {
		if value == nil {
			return openai.ErrConfig.With("nil http client")
		}
		c.client = value
		return nil
	}
}

// OptTrace logs each request and response to w. When verbose is set the
// headers and bodies are included, with credentials redacted.
func OptTrace(w io.Writer, verbose bool) Opt {
	return func(c *Client) error {
		c.middleware.w = w
		c.middleware.verbose = verbose
		return nil
	}
}

// OptTracer records an OpenTelemetry client span for each HTTP exchange.
// Without this option the globally registered tracer provider is used.
func OptTracer(tracer trace.Tracer) Opt {
	return func(c *Client) error {
		c.middleware.tracer = tracer
		return nil
	}
}
