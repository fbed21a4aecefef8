package schema

import (
	"encoding/json"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// TranscriptionRequest is the form of a transcription request. File holds
// the audio, and Filename its name, from which the content type is derived.
type TranscriptionRequest struct {
	File                   []byte   `json:"-"`
	Filename               string   `json:"-"`
	Model                  string   `json:"model"`
	Language               string   `json:"language,omitempty"`
	Prompt                 string   `json:"prompt,omitempty"`
	ResponseFormat         string   `json:"response_format,omitempty"` // json, text, srt, verbose_json or vtt
	Temperature            *float64 `json:"temperature,omitempty"`
	TimestampGranularities []string `json:"timestamp_granularities,omitempty"` // word, segment
	Include                []string `json:"include,omitempty"`
}

// TranslationRequest is the form of a translation request. The audio is
// translated into English.
type TranslationRequest struct {
	File           []byte   `json:"-"`
	Filename       string   `json:"-"`
	Model          string   `json:"model"`
	Prompt         string   `json:"prompt,omitempty"`
	ResponseFormat string   `json:"response_format,omitempty"`
	Temperature    *float64 `json:"temperature,omitempty"`
}

// Transcription is the response to a transcription or translation request
type Transcription struct {
	Task     string    `json:"task,omitempty"`
	Language string    `json:"language,omitempty"`
	Duration float64   `json:"duration,omitempty"`
	Text     string    `json:"text"`
	Words    []Word    `json:"words,omitempty"`
	Segments []Segment `json:"segments,omitempty"`

	// Set when the text field was present
	text bool
}

type Word struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type Segment struct {
	ID               int     `json:"id"`
	Seek             int     `json:"seek"`
	Start            float64 `json:"start"`
	End              float64 `json:"end"`
	Text             string  `json:"text"`
	Tokens           []int   `json:"tokens,omitempty"`
	Temperature      float64 `json:"temperature"`
	AvgLogprob       float64 `json:"avg_logprob"`
	CompressionRatio float64 `json:"compression_ratio"`
	NoSpeechProb     float64 `json:"no_speech_prob"`
}

// SpeechRequest is the body of a text-to-speech request. The response is
// the audio in the requested format.
type SpeechRequest struct {
	Model          string   `json:"model"`
	Input          string   `json:"input"`
	Voice          string   `json:"voice"`
	Instructions   string   `json:"instructions,omitempty"`
	ResponseFormat string   `json:"response_format,omitempty"` // mp3, opus, aac, flac, wav or pcm
	Speed          *float64 `json:"speed,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTranscription returns a transcription from plain text, as returned
// by the text, srt and vtt response formats
func NewTranscription(text string) *Transcription {
	return &Transcription{Text: text, text: true}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t Transcription) String() string {
	return Stringify(t)
}

////////////////////////////////////////////////////////////////////////////////
// JSON

func (t *Transcription) UnmarshalJSON(data []byte) error {
	type alias Transcription
	var v struct {
		alias
		Text *string `json:"text"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*t = Transcription(v.alias)
	if v.Text != nil {
		t.Text, t.text = *v.Text, true
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate checks the text field was present. The text itself may be
// empty when there was no speech.
func (t *Transcription) Validate() error {
	if !t.text {
		return missing("transcription", "text")
	}
	return nil
}

// IsPlainText reports whether a response format returns plain text
// rather than JSON
func IsPlainText(format string) bool {
	switch format {
	case "text", "srt", "vtt":
		return true
	}
	return false
}
