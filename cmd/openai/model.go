package main

import (
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ListModelsCmd struct {
	Type string `name:"type" help:"Highlight the default model for a type (chat, response, embedding, image, audio, speech, moderation)" default:"chat"`
}

type GetModelCmd struct {
	Name    string `arg:"" name:"name" help:"Model name"`
	Default string `name:"default" help:"Save as the default model for a type (chat, response, embedding, image, audio, speech, moderation)" optional:""`
}

type DeleteModelCmd struct {
	Name string `arg:"" name:"name" help:"Fine-tuned model name"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListModelsCmd) Run(ctx *Globals) (err error) {
	typ, err := ParseType(cmd.Type)
	if err != nil {
		return err
	}
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListModelsCommand")
	defer func() { endSpan(err) }()

	// List models
	models, err := client.Models.List(parent)
	if err != nil {
		return err
	}

	// Print
	return printTable(schema.ModelTable{
		Models:       models,
		CurrentModel: ctx.config.ModelFor(typ, ""),
	})
}

func (cmd *GetModelCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "GetModelCommand")
	defer func() { endSpan(err) }()

	// Get model
	model, err := client.Models.Get(parent, cmd.Name)
	if err != nil {
		return err
	}

	// Print
	fmt.Println(model)

	// Save as default if requested
	if cmd.Default != "" {
		typ, err := ParseType(cmd.Default)
		if err != nil {
			return err
		}
		ctx.config.SetModelFor(typ, model.ID)
	}
	return nil
}

func (cmd *DeleteModelCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "DeleteModelCommand")
	defer func() { endSpan(err) }()

	// Delete model
	deleted, err := client.Models.Delete(parent, cmd.Name)
	if err != nil {
		return err
	}

	// Print
	fmt.Println(deleted)
	return nil
}
