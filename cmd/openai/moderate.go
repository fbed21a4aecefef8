package main

import (
	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ModerateCmd struct {
	Text  []string `arg:"" help:"Text to classify"`
	Model string   `name:"model" help:"Model name (defaults to the saved moderation model)" optional:""`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ModerateCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ModerateCommand")
	defer func() { endSpan(err) }()

	moderation, err := client.Moderations.Create(parent, schema.ModerationRequest{
		Model: ctx.config.ModelFor(ModerationType, cmd.Model),
		Input: cmd.Text,
	})
	if err != nil {
		return err
	}
	return printTable(schema.ModerationTable{Input: cmd.Text, Results: moderation.Results})
}
