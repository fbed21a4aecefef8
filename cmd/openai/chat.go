package main

import (
	"fmt"
	"os"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCmd struct {
	Text        string   `arg:"" help:"User input text"`
	Model       string   `name:"model" help:"Model name (defaults to the saved chat model)" optional:""`
	System      string   `name:"system" help:"System prompt" optional:""`
	Image       []string `name:"image" help:"Image URL to attach (may be repeated)" optional:""`
	Temperature *float64 `name:"temperature" help:"Sampling temperature" optional:""`
	MaxTokens   *int     `name:"max-tokens" help:"Maximum number of completion tokens" optional:""`
	JSON        bool     `name:"json" help:"Respond with a JSON object" optional:""`
	Stream      bool     `name:"stream" help:"Print the completion as it is generated" optional:""`
	Markdown    bool     `name:"markdown" help:"Render the completion as markdown" optional:""`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ChatCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ChatCommand")
	defer func() { endSpan(err) }()

	// Build the request
	req := schema.ChatRequest{
		Model:               ctx.config.ModelFor(ChatType, cmd.Model),
		Temperature:         cmd.Temperature,
		MaxCompletionTokens: cmd.MaxTokens,
	}
	if cmd.System != "" {
		req.Messages = append(req.Messages, schema.NewSystemMessage(cmd.System))
	}
	parts := make([]schema.ContentPart, 0, len(cmd.Image))
	for _, url := range cmd.Image {
		parts = append(parts, schema.ImageURLPart(url, ""))
	}
	req.Messages = append(req.Messages, schema.NewUserMessage(cmd.Text, parts...))
	if cmd.JSON {
		req.ResponseFormat = schema.JSONObjectFormat()
	}

	// Without streaming, print the completion
	if !cmd.Stream {
		completion, err := client.Chat.Create(parent, req)
		if err != nil {
			return err
		}
		ctx.usage(completion.Usage)
		return printText(completion.Text(), cmd.Markdown)
	}

	// Print the chunks as they arrive, unless rendering markdown, which
	// needs the whole completion
	stream, err := client.Chat.Stream(parent, req)
	if err != nil {
		return err
	}
	defer stream.Close()

	var completion schema.ChatCompletion
	for chunk, err := range stream.All() {
		if err != nil {
			return err
		}
		completion.Append(chunk)
		if !cmd.Markdown {
			fmt.Print(chunk.Text())
		}
	}
	ctx.usage(completion.Usage)
	if cmd.Markdown {
		return printText(completion.Text(), true)
	}
	fmt.Println()
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// usage prints token usage to stderr in verbose mode
func (g *Globals) usage(usage *schema.Usage) {
	if usage == nil || !g.Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, "tokens: prompt=%d completion=%d total=%d\n", usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens)
}
