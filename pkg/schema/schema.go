/*
schema contains the request and response types of the OpenAI API. Response
types with required fields implement Validate, which the transport calls
after decoding so that a response missing a required field is reported as
a decode error rather than returned half-empty.
*/
package schema

import (
	"encoding/json"

	// Packages
	openai "github.com/mutablelogic/go-openai"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Longest name of a function tool
	maxFunctionName = 64
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// IsFunctionName returns true if the string can name a function tool: ASCII
// letters, digits, underscores and dashes, at most 64 characters
func IsFunctionName(s string) bool {
	if s == "" || len(s) > maxFunctionName {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			continue
		default:
			return false
		}
	}
	return true
}

// Stringify returns the indented JSON encoding of v
func Stringify[T any](v T) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func missing(object, field string) error {
	return openai.ErrDecode.Withf("%s: missing required field %q", object, field)
}

func validateFunctionName(name string) error {
	if !IsFunctionName(name) {
		return openai.ErrEncode.Withf("invalid function name %q", name)
	}
	return nil
}
