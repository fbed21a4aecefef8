package main

import (
	"fmt"
	"os"
	"path/filepath"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type TranscribeCmd struct {
	Path        string   `arg:"" type:"existingfile" help:"Audio file"`
	Model       string   `name:"model" help:"Model name (defaults to the saved audio model)" optional:""`
	Language    string   `name:"language" help:"Language of the audio, as an ISO-639-1 code" optional:""`
	Prompt      string   `name:"prompt" help:"Text to guide the style of the transcription" optional:""`
	Format      string   `name:"format" help:"Response format (json, text, srt, verbose_json, vtt)" optional:""`
	Temperature *float64 `name:"temperature" help:"Sampling temperature" optional:""`
	Segments    bool     `name:"segments" help:"Print timestamped segments" optional:""`
}

type TranslateCmd struct {
	Path   string `arg:"" type:"existingfile" help:"Audio file"`
	Model  string `name:"model" help:"Model name (defaults to the saved audio model)" optional:""`
	Prompt string `name:"prompt" help:"Text in English to guide the style of the translation" optional:""`
	Format string `name:"format" help:"Response format (json, text, srt, verbose_json, vtt)" optional:""`
}

type SpeakCmd struct {
	Text         string   `arg:"" help:"Text to speak"`
	Model        string   `name:"model" help:"Model name (defaults to the saved speech model)" optional:""`
	Voice        string   `name:"voice" help:"Voice" default:"alloy"`
	Instructions string   `name:"instructions" help:"Tone or style of the voice" optional:""`
	Format       string   `name:"format" help:"Audio format (mp3, opus, aac, flac, wav, pcm)" default:"mp3"`
	Speed        *float64 `name:"speed" help:"Speed, from 0.25 to 4.0" optional:""`
	Output       string   `name:"output" short:"o" help:"Output file, or - for stdout (defaults to speech.<format>)" optional:""`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *TranscribeCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "TranscribeCommand")
	defer func() { endSpan(err) }()
	data, err := os.ReadFile(cmd.Path)
	if err != nil {
		return err
	}

	// Segments need the verbose format
	req := schema.TranscriptionRequest{
		File:           data,
		Filename:       filepath.Base(cmd.Path),
		Model:          ctx.config.ModelFor(AudioType, cmd.Model),
		Language:       cmd.Language,
		Prompt:         cmd.Prompt,
		ResponseFormat: cmd.Format,
		Temperature:    cmd.Temperature,
	}
	if cmd.Segments {
		req.ResponseFormat = "verbose_json"
		req.TimestampGranularities = []string{"segment"}
	}

	transcription, err := client.Audio.Transcribe(parent, req)
	if err != nil {
		return err
	}
	return printTranscription(transcription, cmd.Segments)
}

func (cmd *TranslateCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "TranslateCommand")
	defer func() { endSpan(err) }()
	data, err := os.ReadFile(cmd.Path)
	if err != nil {
		return err
	}

	translation, err := client.Audio.Translate(parent, schema.TranslationRequest{
		File:           data,
		Filename:       filepath.Base(cmd.Path),
		Model:          ctx.config.ModelFor(AudioType, cmd.Model),
		Prompt:         cmd.Prompt,
		ResponseFormat: cmd.Format,
	})
	if err != nil {
		return err
	}
	return printTranscription(translation, false)
}

func (cmd *SpeakCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "SpeakCommand")
	defer func() { endSpan(err) }()

	// Open the output
	output := cmd.Output
	if output == "" {
		output = "speech." + cmd.Format
	}
	w, err := createFile(output)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := w.Close(); err == nil {
			err = closeErr
		}
	}()

	// Write the audio
	return client.Audio.SpeechTo(parent, schema.SpeechRequest{
		Model:          ctx.config.ModelFor(SpeechType, cmd.Model),
		Input:          cmd.Text,
		Voice:          cmd.Voice,
		Instructions:   cmd.Instructions,
		ResponseFormat: cmd.Format,
		Speed:          cmd.Speed,
	}, w)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func printTranscription(transcription *schema.Transcription, segments bool) error {
	if !segments || len(transcription.Segments) == 0 {
		fmt.Println(transcription.Text)
		return nil
	}
	for _, segment := range transcription.Segments {
		fmt.Printf("[%s -> %s] %s\n", timestamp(segment.Start), timestamp(segment.End), segment.Text)
	}
	return nil
}

// timestamp formats seconds as mm:ss.sss
func timestamp(seconds float64) string {
	minutes := int(seconds) / 60
	return fmt.Sprintf("%02d:%06.3f", minutes, seconds-float64(minutes*60))
}
