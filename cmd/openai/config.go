package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	// Packages
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Config holds the default model for each kind of request, persisted as
// YAML in the user configuration directory
type Config struct {
	ChatModel       string `yaml:"chat_model,omitempty"`
	ResponseModel   string `yaml:"response_model,omitempty"`
	EmbeddingModel  string `yaml:"embedding_model,omitempty"`
	ImageModel      string `yaml:"image_model,omitempty"`
	AudioModel      string `yaml:"audio_model,omitempty"`
	SpeechModel     string `yaml:"speech_model,omitempty"`
	ModerationModel string `yaml:"moderation_model,omitempty"`

	// Path to the config file, and whether it needs saving
	path     string
	modified bool
}

type Type int

//////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// The name of the config file
	configFile = "config.yaml"
)

const (
	ChatType Type = iota
	ResponseType
	EmbeddingType
	ImageType
	AudioType
	SpeechType
	ModerationType
)

var (
	typeNames = map[Type]string{
		ChatType:       "chat",
		ResponseType:   "response",
		EmbeddingType:  "embedding",
		ImageType:      "image",
		AudioType:      "audio",
		SpeechType:     "speech",
		ModerationType: "moderation",
	}

	// Models used when no default has been set
	defaultModels = map[Type]string{
		ChatType:       "gpt-4o-mini",
		ResponseType:   "gpt-4.1-mini",
		EmbeddingType:  "text-embedding-3-small",
		ImageType:      "gpt-image-1",
		AudioType:      "whisper-1",
		SpeechType:     "gpt-4o-mini-tts",
		ModerationType: "omni-moderation-latest",
	}
)

//////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewConfig loads the configuration for the named application. A missing
// file is not an error.
func NewConfig(name string) (*Config, error) {
	path, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}

	// Append the name of the application to the path
	if name != "" {
		path = filepath.Join(path, name)
	}

	return LoadConfig(filepath.Join(path, configFile))
}

// LoadConfig loads the configuration from a file. A missing file is not
// an error.
func LoadConfig(path string) (*Config, error) {
	config := &Config{path: path}
	if err := config.load(); err != nil {
		return nil, err
	}
	return config, nil
}

// Close saves the configuration if it was modified
func (c *Config) Close() error {
	if !c.modified {
		return nil
	}
	return c.save()
}

//////////////////////////////////////////////////////////////////
// STRINGIFY

func (t Type) String() string {
	if name, exists := typeNames[t]; exists {
		return name
	}
	return "unknown"
}

//////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ParseType returns the type with the given name
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for typ, value := range typeNames {
		if value == name {
			return typ, nil
		}
	}
	return 0, fmt.Errorf("unknown model type %q", name)
}

// ModelFor returns the model to use for a kind of request: the model
// named on the command line, the saved default or the built-in default
func (c *Config) ModelFor(typ Type, model string) string {
	if model != "" {
		return model
	}
	if model := *c.field(typ); model != "" {
		return model
	}
	return defaultModels[typ]
}

// SetModelFor sets the saved default for a kind of request
func (c *Config) SetModelFor(typ Type, model string) {
	if field := c.field(typ); *field != model {
		*field = model
		c.modified = true
	}
}

//////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Config) field(typ Type) *string {
	switch typ {
	case ResponseType:
		return &c.ResponseModel
	case EmbeddingType:
		return &c.EmbeddingModel
	case ImageType:
		return &c.ImageModel
	case AudioType:
		return &c.AudioModel
	case SpeechType:
		return &c.SpeechModel
	case ModerationType:
		return &c.ModerationModel
	default:
		return &c.ChatModel
	}
}

func (c *Config) load() error {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%s: %w", c.path, err)
	}
	return nil
}

func (c *Config) save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.path, data, 0600); err != nil {
		return err
	}
	c.modified = false
	return nil
}
