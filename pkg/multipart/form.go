/*
multipart encodes upload requests as multipart/form-data bodies. A form is
a struct whose exported fields become parts in field order, named by their
json tag. Fields tagged omitempty are left out when they have no value, and
File fields are written as file parts.
*/
package multipart

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	// Packages
	gomultipart "github.com/mutablelogic/go-client/pkg/multipart"
	openai "github.com/mutablelogic/go-openai"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// File is a file part of a form
type File = gomultipart.File

// Payload is an encoded form body
type Payload struct {
	contentType string
	data        []byte
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewFile returns a file part with the content type derived from the
// filename. An empty filename or empty data is an encode error.
func NewFile(filename string, data []byte) (File, error) {
	return NewFileType(filename, ContentType(filename), data)
}

// NewFileType returns a file part with an explicit content type
func NewFileType(filename, contentType string, data []byte) (File, error) {
	filename = filepath.Base(strings.TrimSpace(filename))
	switch {
	case filename == "." || filename == string(filepath.Separator):
		return File{}, openai.ErrEncode.With("missing file name")
	case len(data) == 0:
		return File{}, openai.ErrEncode.Withf("%q is empty", filename)
	}
	if contentType == "" {
		contentType = DefaultContentType
	}
	return File{
		Path:        filename,
		Body:        io.NopCloser(bytes.NewReader(data)),
		ContentType: contentType,
	}, nil
}

// Encode returns the body for a form. It is an encode error when the form
// is not a struct, a file part has no body, or no part is written.
func Encode(form any) (*Payload, error) {
	var buf bytes.Buffer
	enc := gomultipart.NewMultipartEncoder(&buf)
	if err := enc.Encode(form); err != nil {
		return nil, openai.ErrEncode.Wrap(err)
	} else if buf.Len() == 0 {
		return nil, openai.ErrEncode.With("empty form")
	}
	if err := enc.Close(); err != nil {
		return nil, openai.ErrEncode.Wrap(err)
	}
	return &Payload{
		contentType: enc.ContentType(),
		data:        buf.Bytes(),
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ContentType returns the multipart/form-data content type with the boundary
func (p *Payload) ContentType() string {
	return p.contentType
}

// Bytes returns the encoded body
func (p *Payload) Bytes() []byte {
	return p.data
}

func (p *Payload) String() string {
	return fmt.Sprintf("<multipart %d bytes>", len(p.data))
}
