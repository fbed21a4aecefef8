package api

import (
	"context"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	multipart "github.com/mutablelogic/go-openai/pkg/multipart"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	transport "github.com/mutablelogic/go-openai/pkg/transport"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type uploadForm struct {
	Purpose string         `json:"purpose"`
	File    multipart.File `json:"file"`
}

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// Upload uploads a file for use with other endpoints
func (f *Files) Upload(ctx context.Context, req schema.FileUploadRequest) (*schema.File, error) {
	if req.Purpose == "" {
		return nil, openai.ErrEncode.With("missing purpose")
	}

	file, err := multipart.NewFile(req.Filename, req.File)
	if err != nil {
		return nil, err
	}
	payload, err := multipart.Encode(uploadForm{
		Purpose: req.Purpose,
		File:    file,
	})
	if err != nil {
		return nil, err
	}
	return transport.Execute[schema.File](ctx, f.client, transport.Post(payload, "files"))
}

// List returns uploaded files, optionally filtered by purpose
func (f *Files) List(ctx context.Context, req schema.FileListRequest) (*schema.FileList, error) {
	return transport.Execute[schema.FileList](ctx, f.client, transport.Get("files").WithQuery(req.Query()))
}

// Get returns the metadata of a file
func (f *Files) Get(ctx context.Context, id string) (*schema.File, error) {
	if err := requireID("file", id); err != nil {
		return nil, err
	}
	return transport.Execute[schema.File](ctx, f.client, transport.Get("files", id))
}

// Delete deletes a file
func (f *Files) Delete(ctx context.Context, id string) (*schema.Deleted, error) {
	if err := requireID("file", id); err != nil {
		return nil, err
	}
	return transport.Execute[schema.Deleted](ctx, f.client, transport.Delete("files", id))
}

// Content returns the contents of a file
func (f *Files) Content(ctx context.Context, id string) ([]byte, error) {
	if err := requireID("file", id); err != nil {
		return nil, err
	}
	var data []byte
	if err := f.client.Do(ctx, transport.Get("files", id, "content"), &data); err != nil {
		return nil, err
	}
	return data, nil
}
