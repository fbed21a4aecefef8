package multipart

import (
	"path/filepath"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Content type of file parts with an unrecognised extension
	DefaultContentType = "application/octet-stream"
)

// Content types by file extension, without the leading dot
var mimetypes = map[string]string{
	// Audio
	"flac": "audio/flac",
	"mp3":  "audio/mpeg",
	"mp4":  "audio/mp4",
	"mpeg": "audio/mpeg",
	"mpga": "audio/mpeg",
	"m4a":  "audio/mp4",
	"ogg":  "audio/ogg",
	"wav":  "audio/wav",
	"webm": "audio/webm",

	// Images
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"webp": "image/webp",
	"gif":  "image/gif",

	// Documents
	"json":  "application/json",
	"jsonl": "application/jsonl",
	"pdf":   "application/pdf",
	"txt":   "text/plain",
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ContentType returns the content type for a file name from its extension,
// ignoring case. It returns DefaultContentType when the extension is unknown.
func ContentType(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if mimetype, exists := mimetypes[ext]; exists {
		return mimetype
	}
	return DefaultContentType
}

// Extensions returns the known file extensions for a content type
func Extensions(contentType string) []string {
	var result []string
	for ext, mimetype := range mimetypes {
		if mimetype == contentType {
			result = append(result, ext)
		}
	}
	return result
}
