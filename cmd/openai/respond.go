package main

import (
	"errors"
	"fmt"
	"os"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type RespondCmd struct {
	Text         string   `arg:"" help:"User input text"`
	Model        string   `name:"model" help:"Model name (defaults to the saved response model)" optional:""`
	Instructions string   `name:"instructions" help:"System instructions" optional:""`
	Previous     string   `name:"previous" help:"Continue from a previous response" optional:""`
	Temperature  *float64 `name:"temperature" help:"Sampling temperature" optional:""`
	Effort       string   `name:"effort" help:"Reasoning effort for reasoning models (minimal, low, medium, high)" optional:""`
	WebSearch    bool     `name:"web-search" help:"Allow the model to search the web" optional:""`
	Stream       bool     `name:"stream" help:"Print the response as it is generated" optional:""`
	Markdown     bool     `name:"markdown" help:"Render the response as markdown" optional:""`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *RespondCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "RespondCommand")
	defer func() { endSpan(err) }()

	// Build the request
	req := schema.ResponseRequest{
		Model:              ctx.config.ModelFor(ResponseType, cmd.Model),
		Input:              schema.InputText(cmd.Text),
		Instructions:       cmd.Instructions,
		PreviousResponseID: cmd.Previous,
		Temperature:        cmd.Temperature,
	}
	if cmd.Effort != "" {
		req.Reasoning = &schema.Reasoning{Effort: cmd.Effort}
	}
	if cmd.WebSearch {
		req.Tools = append(req.Tools, schema.ResponseTool{Type: "web_search_preview"})
	}

	// Without streaming, print the response
	if !cmd.Stream {
		response, err := client.Responses.Create(parent, req)
		if err != nil {
			return err
		}
		return cmd.print(ctx, response, true)
	}

	// Print text deltas as they arrive
	stream, err := client.Responses.Stream(parent, req)
	if err != nil {
		return err
	}
	defer stream.Close()

	var response *schema.Response
	for event, err := range stream.All() {
		if err != nil {
			return err
		}
		switch event.Type {
		case schema.EventOutputTextDelta:
			if !cmd.Markdown {
				fmt.Print(event.Delta)
			}
		case schema.EventResponseCompleted, schema.EventResponseFailed, schema.EventResponseIncomplete:
			response = event.Response
		}
	}
	if response == nil {
		return errors.New("response ended without a result")
	}
	if !cmd.Markdown {
		fmt.Println()
	}
	return cmd.print(ctx, response, cmd.Markdown)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *RespondCmd) print(ctx *Globals, response *schema.Response, text bool) error {
	switch {
	case response.Error != nil:
		return fmt.Errorf("response %s: %s (%s)", response.Status, response.Error.Message, response.Error.Code)
	case response.IncompleteDetails != nil:
		fmt.Fprintf(os.Stderr, "response incomplete: %s\n", response.IncompleteDetails.Reason)
	}
	if text {
		if err := printText(response.OutputText(), cmd.Markdown); err != nil {
			return err
		}
	}

	// The id continues the conversation with --previous
	if ctx.Verbose {
		fmt.Fprintln(os.Stderr, "response:", response.ID)
		if usage := response.Usage; usage != nil {
			fmt.Fprintf(os.Stderr, "tokens: input=%d output=%d total=%d\n", usage.InputTokens, usage.OutputTokens, usage.TotalTokens)
		}
	}
	return nil
}
