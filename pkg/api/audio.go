package api

import (
	"context"
	"io"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	multipart "github.com/mutablelogic/go-openai/pkg/multipart"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	transport "github.com/mutablelogic/go-openai/pkg/transport"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type transcriptionForm struct {
	File                   multipart.File `json:"file"`
	Model                  string         `json:"model"`
	Language               string         `json:"language,omitempty"`
	Prompt                 string         `json:"prompt,omitempty"`
	ResponseFormat         string         `json:"response_format,omitempty"`
	Temperature            *float64       `json:"temperature,omitempty"`
	TimestampGranularities []string       `json:"timestamp_granularities[],omitempty"`
	Include                []string       `json:"include[],omitempty"`
}

type translationForm struct {
	File           multipart.File `json:"file"`
	Model          string         `json:"model"`
	Prompt         string         `json:"prompt,omitempty"`
	ResponseFormat string         `json:"response_format,omitempty"`
	Temperature    *float64       `json:"temperature,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// Transcribe returns the text of the audio in its own language. The text,
// srt and vtt response formats are returned as the transcription text.
func (a *Audio) Transcribe(ctx context.Context, req schema.TranscriptionRequest) (*schema.Transcription, error) {
	if err := requireModel(req.Model); err != nil {
		return nil, err
	}

	file, err := multipart.NewFile(req.Filename, req.File)
	if err != nil {
		return nil, err
	}
	return a.transcribe(ctx, transcriptionForm{
		File:                   file,
		Model:                  req.Model,
		Language:               req.Language,
		Prompt:                 req.Prompt,
		ResponseFormat:         req.ResponseFormat,
		Temperature:            req.Temperature,
		TimestampGranularities: req.TimestampGranularities,
		Include:                req.Include,
	}, req.ResponseFormat, "transcriptions")
}

// Translate returns the text of the audio translated into English
func (a *Audio) Translate(ctx context.Context, req schema.TranslationRequest) (*schema.Transcription, error) {
	if err := requireModel(req.Model); err != nil {
		return nil, err
	}

	file, err := multipart.NewFile(req.Filename, req.File)
	if err != nil {
		return nil, err
	}
	return a.transcribe(ctx, translationForm{
		File:           file,
		Model:          req.Model,
		Prompt:         req.Prompt,
		ResponseFormat: req.ResponseFormat,
		Temperature:    req.Temperature,
	}, req.ResponseFormat, "translations")
}

// Speech returns the input spoken as audio in the requested format
func (a *Audio) Speech(ctx context.Context, req schema.SpeechRequest) ([]byte, error) {
	var data []byte
	if request, err := speechRequest(req); err != nil {
		return nil, err
	} else if err := a.client.Do(ctx, request, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// SpeechTo writes the input spoken as audio to w
func (a *Audio) SpeechTo(ctx context.Context, req schema.SpeechRequest, w io.Writer) error {
	request, err := speechRequest(req)
	if err != nil {
		return err
	}
	return a.client.Do(ctx, request, w)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (a *Audio) transcribe(ctx context.Context, form any, format, path string) (*schema.Transcription, error) {
	payload, err := multipart.Encode(form)
	if err != nil {
		return nil, err
	}
	req := transport.Post(payload, "audio", path)

	// Plain text formats are not JSON
	if schema.IsPlainText(format) {
		var data []byte
		if err := a.client.Do(ctx, req, &data); err != nil {
			return nil, err
		}
		return schema.NewTranscription(string(data)), nil
	}
	return transport.Execute[schema.Transcription](ctx, a.client, req)
}

func speechRequest(req schema.SpeechRequest) (transport.Request, error) {
	if err := requireModel(req.Model); err != nil {
		return transport.Request{}, err
	}
	if req.Input == "" {
		return transport.Request{}, openai.ErrEncode.With("missing input")
	}
	if req.Voice == "" {
		return transport.Request{}, openai.ErrEncode.With("missing voice")
	}
	payload, err := transport.NewJSONPayload(req)
	if err != nil {
		return transport.Request{}, err
	}
	return transport.Post(payload, "audio", "speech"), nil
}
