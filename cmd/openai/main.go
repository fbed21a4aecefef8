package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	api "github.com/mutablelogic/go-openai/pkg/api"
	transport "github.com/mutablelogic/go-openai/pkg/transport"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool          `name:"debug" help:"Trace requests and responses to stderr"`
	Verbose bool          `name:"verbose" help:"Include headers and bodies in the trace"`
	Timeout time.Duration `name:"timeout" help:"Timeout for each request" default:"2m"`

	// OpenAI
	OpenAI `embed:"" help:"OpenAI configuration"`

	// Tracing
	OTel `embed:"" prefix:"otel." help:"OpenTelemetry configuration"`

	// Context
	ctx    context.Context
	config *Config
	client *api.Client
	tracer trace.Tracer
}

type OpenAI struct {
	APIKey   string `name:"api-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	Org      string `name:"org" env:"OPENAI_ORG_ID" help:"OpenAI organization"`
	Project  string `name:"project" env:"OPENAI_PROJECT_ID" help:"OpenAI project"`
	Endpoint string `name:"endpoint" env:"OPENAI_BASE_URL" help:"API endpoint"`
}

type OTel struct {
	Endpoint string `name:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" help:"OTLP endpoint for traces, as host:port or a http, https, grpc or grpcs URL"`
	Header   string `name:"header" env:"OTEL_EXPORTER_OTLP_HEADERS" help:"OTLP headers, as comma-separated key=value pairs"`
	Name     string `name:"name" env:"OTEL_SERVICE_NAME" help:"Service name reported with each trace"`
}

type CLI struct {
	Globals

	// Version
	Version VersionCmd `cmd:"" help:"Print the version"`

	// Models
	Models      ListModelsCmd  `cmd:"" help:"List models" group:"MODEL"`
	Model       GetModelCmd    `cmd:"" help:"Get a model, optionally setting it as a default" group:"MODEL"`
	DeleteModel DeleteModelCmd `cmd:"" name:"delete-model" help:"Delete a fine-tuned model" group:"MODEL"`

	// Generation
	Chat     ChatCmd     `cmd:"" help:"Complete a chat" group:"GENERATE"`
	Respond  RespondCmd  `cmd:"" help:"Create a model response" group:"GENERATE"`
	Embed    EmbedCmd    `cmd:"" help:"Embed text" group:"GENERATE"`
	Image    ImageCmd    `cmd:"" help:"Generate an image" group:"GENERATE"`
	Moderate ModerateCmd `cmd:"" help:"Classify text for harmful content" group:"GENERATE"`

	// Audio
	Transcribe TranscribeCmd `cmd:"" help:"Transcribe audio" group:"AUDIO"`
	Translate  TranslateCmd  `cmd:"" help:"Translate audio into English" group:"AUDIO"`
	Speak      SpeakCmd      `cmd:"" help:"Speak text" group:"AUDIO"`

	// Files
	Files      ListFilesCmd  `cmd:"" help:"List files" group:"FILE"`
	Upload     UploadFileCmd `cmd:"" help:"Upload a file" group:"FILE"`
	File       GetFileCmd    `cmd:"" help:"Get a file, or its contents" group:"FILE"`
	DeleteFile DeleteFileCmd `cmd:"" name:"delete-file" help:"Delete a file" group:"FILE"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("OpenAI command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context, cancelled on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Load the default models
	config, err := NewConfig(execName())
	if err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
	cli.Globals.config = config

	// Export traces when an endpoint is set
	if cli.OTel.Endpoint != "" {
		name := cli.OTel.Name
		if name == "" {
			name = execName()
		}
		provider, err := otel.NewProvider(cli.OTel.Endpoint, cli.OTel.Header, name)
		if err != nil {
			cmd.FatalIfErrorf(err)
			return
		}
		cli.Globals.tracer = provider.Tracer(name)
	}

	// Run the command
	err = cmd.Run(&cli.Globals)
	if err := otel.ShutdownProvider(context.Background()); err != nil {
		cmd.FatalIfErrorf(err)
	}
	if err := config.Close(); err != nil {
		cmd.FatalIfErrorf(err)
	}
	cmd.FatalIfErrorf(err)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns the API client, created on first use from the global flags
func (g *Globals) Client() (*api.Client, error) {
	if g.client != nil {
		return g.client, nil
	}

	// Client options
	opts := []transport.Opt{}
	if g.Debug || g.Verbose {
		opts = append(opts, transport.OptTrace(os.Stderr, g.Verbose))
	}
	if g.Timeout > 0 {
		opts = append(opts, transport.OptTimeout(g.Timeout))
	}
	if g.OpenAI.Endpoint != "" {
		opts = append(opts, transport.OptEndpoint(g.OpenAI.Endpoint))
	}
	if g.Org != "" {
		opts = append(opts, transport.OptOrganization(g.Org))
	}
	if g.Project != "" {
		opts = append(opts, transport.OptProject(g.Project))
	}
	if g.tracer != nil {
		opts = append(opts, transport.OptTracer(g.tracer))
	}

	// Create the client
	client, err := api.New(g.APIKey, opts...)
	if err != nil {
		return nil, err
	}
	g.client = client
	return client, nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
