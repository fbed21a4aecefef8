package schema

import (
	"net/url"
	"strconv"
	"time"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// File is an uploaded file
type File struct {
	ID            string `json:"id"`
	Object        string `json:"object"`
	Bytes         int64  `json:"bytes"`
	CreatedAt     int64  `json:"created_at"`
	ExpiresAt     *int64 `json:"expires_at,omitempty"`
	Filename      string `json:"filename"`
	Purpose       string `json:"purpose"`
	Status        string `json:"status,omitempty"`
	StatusDetails string `json:"status_details,omitempty"`
}

type FileList struct {
	Object  string `json:"object"`
	Data    []File `json:"data"`
	FirstID string `json:"first_id,omitempty"`
	LastID  string `json:"last_id,omitempty"`
	HasMore bool   `json:"has_more"`
}

// FileUploadRequest is the form of a file upload
type FileUploadRequest struct {
	File     []byte `json:"-"`
	Filename string `json:"-"`
	Purpose  string `json:"purpose"` // assistants, batch, fine-tune, vision, user_data or evals
}

// FileListRequest filters and pages a file listing
type FileListRequest struct {
	Purpose string
	Limit   *int
	After   string
	Order   string // asc or desc
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (f File) String() string {
	return Stringify(f)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (f *File) Validate() error {
	if f.ID == "" {
		return missing("file", "id")
	}
	return nil
}

func (f File) Created() time.Time {
	return time.Unix(f.CreatedAt, 0)
}

func (f *FileList) Validate() error {
	if f.Data == nil {
		return missing("files", "data")
	}
	return nil
}

// Query returns the request as query parameters
func (r FileListRequest) Query() url.Values {
	query := url.Values{}
	if r.Purpose != "" {
		query.Set("purpose", r.Purpose)
	}
	if r.Limit != nil {
		query.Set("limit", strconv.Itoa(*r.Limit))
	}
	if r.After != "" {
		query.Set("after", r.After)
	}
	if r.Order != "" {
		query.Set("order", r.Order)
	}
	return query
}
