package main

import (
	"fmt"
	"path/filepath"
	"strings"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ImageCmd struct {
	Prompt  string `arg:"" help:"Description of the image"`
	Model   string `name:"model" help:"Model name (defaults to the saved image model)" optional:""`
	Size    string `name:"size" help:"Image size, for example 1024x1024" optional:""`
	Quality string `name:"quality" help:"Image quality" optional:""`
	N       *int   `name:"n" help:"Number of images" optional:""`
	Output  string `name:"output" short:"o" help:"Output file; further images are numbered" default:"image.png"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ImageCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ImageCommand")
	defer func() { endSpan(err) }()

	// DALL-E models return a URL unless data is requested
	req := schema.ImageRequest{
		Model:   ctx.config.ModelFor(ImageType, cmd.Model),
		Prompt:  cmd.Prompt,
		Size:    cmd.Size,
		Quality: cmd.Quality,
		N:       cmd.N,
	}
	if strings.HasPrefix(req.Model, "dall-e") {
		req.ResponseFormat = "b64_json"
	}

	images, err := client.Images.Generate(parent, req)
	if err != nil {
		return err
	}

	// Write each image, or print its URL
	for i, image := range images.Data {
		if image.URL != "" && image.B64JSON == "" {
			fmt.Println(image.URL)
			continue
		}
		data, err := image.Bytes()
		if err != nil {
			return err
		}
		path := numbered(cmd.Output, i)
		if err := writeFile(path, data); err != nil {
			return err
		}
		if path != "-" {
			fmt.Println(path)
		}
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// numbered returns the path for the nth image: image.png, image-2.png...
func numbered(path string, n int) string {
	if n == 0 || path == "-" {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), n+1, ext)
}
