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

type ListFilesCmd struct {
	Purpose string `name:"purpose" help:"Filter by purpose" optional:""`
	Limit   *int   `name:"limit" help:"Maximum number of files to return" optional:""`
}

type UploadFileCmd struct {
	Path    string `arg:"" type:"existingfile" help:"File to upload"`
	Purpose string `name:"purpose" help:"Purpose (assistants, batch, fine-tune, vision, user_data, evals)" default:"user_data"`
}

type GetFileCmd struct {
	ID      string `arg:"" name:"id" help:"File id"`
	Content bool   `name:"content" help:"Download the file contents" optional:""`
	Output  string `name:"output" short:"o" help:"Output file for the contents, or - for stdout" default:"-"`
}

type DeleteFileCmd struct {
	ID string `arg:"" name:"id" help:"File id"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListFilesCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListFilesCommand")
	defer func() { endSpan(err) }()

	files, err := client.Files.List(parent, schema.FileListRequest{
		Purpose: cmd.Purpose,
		Limit:   cmd.Limit,
	})
	if err != nil {
		return err
	}
	return printTable(schema.FileTable(files.Data))
}

func (cmd *UploadFileCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "UploadFileCommand")
	defer func() { endSpan(err) }()
	data, err := os.ReadFile(cmd.Path)
	if err != nil {
		return err
	}

	file, err := client.Files.Upload(parent, schema.FileUploadRequest{
		File:     data,
		Filename: filepath.Base(cmd.Path),
		Purpose:  cmd.Purpose,
	})
	if err != nil {
		return err
	}
	fmt.Println(file)
	return nil
}

func (cmd *GetFileCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "GetFileCommand")
	defer func() { endSpan(err) }()

	// Metadata
	if !cmd.Content {
		file, err := client.Files.Get(parent, cmd.ID)
		if err != nil {
			return err
		}
		fmt.Println(file)
		return nil
	}

	// Contents
	data, err := client.Files.Content(parent, cmd.ID)
	if err != nil {
		return err
	}
	return writeFile(cmd.Output, data)
}

func (cmd *DeleteFileCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "DeleteFileCommand")
	defer func() { endSpan(err) }()

	deleted, err := client.Files.Delete(parent, cmd.ID)
	if err != nil {
		return err
	}
	fmt.Println(deleted)
	return nil
}
