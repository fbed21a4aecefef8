package main

import (
	"context"
	"encoding/json"
	"os"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	openai "github.com/mutablelogic/go-openai"
	api "github.com/mutablelogic/go-openai/pkg/api"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type EmbedCmd struct {
	Text       []string `arg:"" help:"Text to embed"`
	Model      string   `name:"model" help:"Model name (defaults to the saved embedding model)" optional:""`
	Dimensions *int     `name:"dimensions" help:"Number of dimensions of each vector" optional:""`
	Batch      int      `name:"batch" help:"Number of inputs in each request" default:"16"`
	Parallel   int      `name:"parallel" help:"Number of concurrent requests" default:"4"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *EmbedCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "EmbedCommand")
	defer func() { endSpan(err) }()
	model := ctx.config.ModelFor(EmbeddingType, cmd.Model)
	batch := max(cmd.Batch, 1)

	// Send one request for each batch of inputs. The first failure
	// cancels the other requests.
	vectors := make([][]float64, len(cmd.Text))
	g, child := errgroup.WithContext(parent)
	g.SetLimit(max(cmd.Parallel, 1))
	for start := 0; start < len(cmd.Text); start += batch {
		end := min(start+batch, len(cmd.Text))
		g.Go(func() error {
			return cmd.embed(child, client, model, cmd.Text[start:end], vectors[start:end])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Print one vector per line, in the order of the inputs
	encoder := json.NewEncoder(os.Stdout)
	for _, vector := range vectors {
		if err := encoder.Encode(vector); err != nil {
			return err
		}
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *EmbedCmd) embed(ctx context.Context, client *api.Client, model string, input []string, result [][]float64) error {
	response, err := client.Embeddings.Create(ctx, schema.EmbeddingRequest{
		Model:      model,
		Input:      input,
		Dimensions: cmd.Dimensions,
	})
	if err != nil {
		return err
	}
	vectors := response.Vectors()
	if len(vectors) != len(result) {
		return openai.ErrDecode.Withf("%d vectors returned for %d inputs", len(vectors), len(result))
	}
	copy(result, vectors)
	return nil
}
