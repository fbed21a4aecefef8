/*
api implements the endpoints of the OpenAI API on a shared transport.
https://platform.openai.com/docs/api-reference

Each endpoint group is a facade which holds only a reference to the
transport, so a Client is safe for concurrent use. Invalid arguments are
reported as encode errors before any request is sent.
*/
package api

import (
	"strings"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	transport "github.com/mutablelogic/go-openai/pkg/transport"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*transport.Client

	Chat        *Chat
	Audio       *Audio
	Embeddings  *Embeddings
	Images      *Images
	Models      *Models
	Responses   *Responses
	Files       *Files
	Moderations *Moderations
}

type Chat struct{ client *transport.Client }
type Audio struct{ client *transport.Client }
type Embeddings struct{ client *transport.Client }
type Images struct{ client *transport.Client }
type Models struct{ client *transport.Client }
type Responses struct{ client *transport.Client }
type Files struct{ client *transport.Client }
type Moderations struct{ client *transport.Client }

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client with an API key and transport options
func New(apiKey string, opts ...transport.Opt) (*Client, error) {
	client, err := transport.New(apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return NewWithTransport(client), nil
}

// NewWithTransport creates a client which uses an existing transport
func NewWithTransport(client *transport.Client) *Client {
	return &Client{
		Client:      client,
		Chat:        &Chat{client},
		Audio:       &Audio{client},
		Embeddings:  &Embeddings{client},
		Images:      &Images{client},
		Models:      &Models{client},
		Responses:   &Responses{client},
		Files:       &Files{client},
		Moderations: &Moderations{client},
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func requireModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return openai.ErrEncode.With("missing model")
	}
	return nil
}

func requireID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return openai.ErrEncode.Withf("missing %s id", kind)
	}
	return nil
}
