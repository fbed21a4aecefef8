package schema

import (
	"encoding/base64"
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ImageRequest is the body of an image generation request
type ImageRequest struct {
	Model          string `json:"model,omitempty"`
	Prompt         string `json:"prompt"`
	N              *int   `json:"n,omitempty"`
	Quality        string `json:"quality,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"` // url or b64_json
	Size           string `json:"size,omitempty"`
	Style          string `json:"style,omitempty"`
	Background     string `json:"background,omitempty"`
	OutputFormat   string `json:"output_format,omitempty"`
	User           string `json:"user,omitempty"`
}

// ImageEditRequest is the form of an image edit request. The optional mask
// marks with transparency the areas of the image to edit.
type ImageEditRequest struct {
	Image          []byte `json:"-"`
	Filename       string `json:"-"`
	Mask           []byte `json:"-"`
	MaskFilename   string `json:"-"`
	Prompt         string `json:"prompt"`
	Model          string `json:"model,omitempty"`
	N              *int   `json:"n,omitempty"`
	Quality        string `json:"quality,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
	Size           string `json:"size,omitempty"`
	User           string `json:"user,omitempty"`
}

// ImageVariationRequest is the form of an image variation request
type ImageVariationRequest struct {
	Image          []byte `json:"-"`
	Filename       string `json:"-"`
	Model          string `json:"model,omitempty"`
	N              *int   `json:"n,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
	Size           string `json:"size,omitempty"`
	User           string `json:"user,omitempty"`
}

// ImageList is the response to image requests
type ImageList struct {
	Created int64   `json:"created"`
	Data    []Image `json:"data"`
}

// Image is either a URL or base64 encoded data, depending on the
// requested response format
type Image struct {
	URL           string `json:"url,omitempty"`
	B64JSON       string `json:"b64_json,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (i ImageList) String() string {
	return Stringify(i)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (i *ImageList) Validate() error {
	if i.Data == nil {
		return missing("images", "data")
	}
	return nil
}

// Bytes decodes the image data. It fails when the image was returned as a URL.
func (i Image) Bytes() ([]byte, error) {
	if i.B64JSON == "" {
		return nil, fmt.Errorf("image has no data")
	}
	return base64.StdEncoding.DecodeString(i.B64JSON)
}
