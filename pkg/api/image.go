package api

import (
	"context"
	"strings"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	multipart "github.com/mutablelogic/go-openai/pkg/multipart"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	transport "github.com/mutablelogic/go-openai/pkg/transport"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type imageEditForm struct {
	Image          multipart.File  `json:"image"`
	Mask           *multipart.File `json:"mask,omitempty"`
	Prompt         string          `json:"prompt"`
	Model          string          `json:"model,omitempty"`
	N              *int            `json:"n,omitempty"`
	Quality        string          `json:"quality,omitempty"`
	ResponseFormat string          `json:"response_format,omitempty"`
	Size           string          `json:"size,omitempty"`
	User           string          `json:"user,omitempty"`
}

type imageVariationForm struct {
	Image          multipart.File `json:"image"`
	Model          string         `json:"model,omitempty"`
	N              *int           `json:"n,omitempty"`
	ResponseFormat string         `json:"response_format,omitempty"`
	Size           string         `json:"size,omitempty"`
	User           string         `json:"user,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// Generate returns images created from a prompt
func (i *Images) Generate(ctx context.Context, req schema.ImageRequest) (*schema.ImageList, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, openai.ErrEncode.With("missing prompt")
	}
	payload, err := transport.NewJSONPayload(req)
	if err != nil {
		return nil, err
	}
	return transport.Execute[schema.ImageList](ctx, i.client, transport.Post(payload, "images", "generations"))
}

// Edit returns images edited from an image and a prompt
func (i *Images) Edit(ctx context.Context, req schema.ImageEditRequest) (*schema.ImageList, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, openai.ErrEncode.With("missing prompt")
	}

	image, err := multipart.NewFile(req.Filename, req.Image)
	if err != nil {
		return nil, err
	}
	form := imageEditForm{
		Image:          image,
		Prompt:         req.Prompt,
		Model:          req.Model,
		N:              req.N,
		Quality:        req.Quality,
		ResponseFormat: req.ResponseFormat,
		Size:           req.Size,
		User:           req.User,
	}
	if len(req.Mask) > 0 {
		mask, err := multipart.NewFile(req.MaskFilename, req.Mask)
		if err != nil {
			return nil, err
		}
		form.Mask = &mask
	}

	return i.upload(ctx, form, "edits")
}

// Variation returns variations of an image
func (i *Images) Variation(ctx context.Context, req schema.ImageVariationRequest) (*schema.ImageList, error) {
	image, err := multipart.NewFile(req.Filename, req.Image)
	if err != nil {
		return nil, err
	}
	return i.upload(ctx, imageVariationForm{
		Image:          image,
		Model:          req.Model,
		N:              req.N,
		ResponseFormat: req.ResponseFormat,
		Size:           req.Size,
		User:           req.User,
	}, "variations")
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (i *Images) upload(ctx context.Context, form any, path string) (*schema.ImageList, error) {
	payload, err := multipart.Encode(form)
	if err != nil {
		return nil, err
	}
	return transport.Execute[schema.ImageList](ctx, i.client, transport.Post(payload, "images", path))
}
