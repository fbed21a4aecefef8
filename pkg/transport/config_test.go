package transport_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	transport "github.com/mutablelogic/go-openai/pkg/transport"
	assert "github.com/stretchr/testify/assert"
)

func Test_config_001(t *testing.T) {
	// Defaults are applied when no options are given
	assert := assert.New(t)

	client, err := transport.New("sk-test-0123456789")
	if !assert.NoError(err) {
		t.FailNow()
	}
	config := client.Config()
	assert.Equal(transport.DefaultEndpoint, config.BaseURL)
	assert.Equal(transport.DefaultTimeout, config.Timeout)
	assert.Equal(transport.DefaultUploadTimeout, config.UploadTimeout)
	assert.True(strings.HasPrefix(config.UserAgent, "go-openai/"))
	assert.Empty(config.Organization)
	assert.Empty(config.Project)
}

func Test_config_002(t *testing.T) {
	// A missing API key is a configuration error
	assert := assert.New(t)

	for _, key := range []string{"", "   "} {
		_, err := transport.New(key)
		assert.ErrorIs(err, openai.ErrConfig)
	}
}

func Test_config_003(t *testing.T) {
	// Invalid options are configuration errors
	assert := assert.New(t)

	tests := []transport.Opt{
		transport.OptEndpoint("ftp://example.com"),
		transport.OptEndpoint("/v1"),
		transport.OptEndpoint("https://example.com/v1?x=1"),
		transport.OptTimeout(-time.Second),
		transport.OptUploadTimeout(-time.Second),
		transport.OptUserAgent(""),
		transport.OptHeader("Authorization", "Bearer other"),
		transport.OptHeader("content-type", "text/plain"),
		transport.OptHTTPClient(nil),
	}
	for i, opt := range tests {
		_, err := transport.New("sk-test", opt)
		assert.ErrorIs(err, openai.ErrConfig, "option %d", i)
	}
}

func Test_config_004(t *testing.T) {
	// Options set the configuration
	assert := assert.New(t)

	client, err := transport.New("sk-test",
		transport.OptEndpoint("http://localhost:8080/v1/"),
		transport.OptOrganization("org-1"),
		transport.OptProject("proj-1"),
		transport.OptTimeout(5*time.Second),
		transport.OptUploadTimeout(time.Minute),
		transport.OptUserAgent("test/1.0"),
		transport.OptHTTPClient(http.DefaultClient),
	)
	if !assert.NoError(err) {
		t.FailNow()
	}
	config := client.Config()
	assert.Equal("http://localhost:8080/v1", config.BaseURL)
	assert.Equal("org-1", config.Organization)
	assert.Equal("proj-1", config.Project)
	assert.Equal(5*time.Second, config.Timeout)
	assert.Equal(time.Minute, config.UploadTimeout)
	assert.Equal("test/1.0", config.UserAgent)
}

func Test_config_005(t *testing.T) {
	// The API key is never rendered in full
	assert := assert.New(t)

	client, err := transport.New("sk-secret-key-abcd")
	if !assert.NoError(err) {
		t.FailNow()
	}
	str := client.Config().String()
	assert.NotContains(str, "sk-secret-key")
	assert.Contains(str, "****abcd")
	assert.Contains(str, transport.DefaultEndpoint)
}

func Test_config_006(t *testing.T) {
	// Validate can be called on a configuration directly
	assert := assert.New(t)

	config := transport.Config{APIKey: "sk-test", BaseURL: transport.DefaultEndpoint}
	assert.NoError(config.Validate())

	config.BaseURL = "api.openai.com"
	err := config.Validate()
	assert.ErrorIs(err, openai.ErrConfig)
	assert.False(errors.Is(err, openai.ErrTransport))
}
