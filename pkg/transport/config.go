package transport

import (
	"net/url"
	"strings"
	"time"

	// Packages
	openai "github.com/mutablelogic/go-openai"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Config holds the connection parameters shared by every call made through
// a client. A client keeps its own copy, so a Config is never mutated after
// the client has been constructed.
type Config struct {
	APIKey        string        `json:"-" yaml:"-"`
	Organization  string        `json:"organization,omitempty" yaml:"organization,omitempty"`
	Project       string        `json:"project,omitempty" yaml:"project,omitempty"`
	BaseURL       string        `json:"base_url" yaml:"base_url"`
	Timeout       time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	UploadTimeout time.Duration `json:"upload_timeout,omitempty" yaml:"upload_timeout,omitempty"`
	UserAgent     string        `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultEndpoint      = "https://api.openai.com/v1"
	DefaultTimeout       = 60 * time.Second
	DefaultUploadTimeout = 5 * time.Minute
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate returns ErrConfig when the API key is empty or the base URL is
// not an absolute http(s) URL.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return openai.ErrConfig.With("missing api key")
	}
	if _, err := parseEndpoint(c.BaseURL); err != nil {
		return err
	}
	if c.Timeout < 0 || c.UploadTimeout < 0 {
		return openai.ErrConfig.With("negative timeout")
	}
	return nil
}

// String returns the configuration with the API key redacted
func (c Config) String() string {
	var b strings.Builder
	b.WriteString("<config base_url=")
	b.WriteString(c.BaseURL)
	if c.Organization != "" {
		b.WriteString(" organization=")
		b.WriteString(c.Organization)
	}
	if c.Project != "" {
		b.WriteString(" project=")
		b.WriteString(c.Project)
	}
	b.WriteString(" api_key=")
	b.WriteString(redact(c.APIKey))
	b.WriteString(">")
	return b.String()
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func parseEndpoint(endpoint string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return nil, openai.ErrConfig.Withf("invalid base url %q: %v", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, openai.ErrConfig.Withf("base url %q is not an absolute http(s) url", endpoint)
	}
	if u.Host == "" {
		return nil, openai.ErrConfig.Withf("base url %q has no host", endpoint)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return nil, openai.ErrConfig.Withf("base url %q cannot carry a query or fragment", endpoint)
	}
	return u, nil
}

// redact keeps the last four characters of a secret
func redact(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}
