package main

import (
	"os"
	"path/filepath"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
)

func Test_config_001(t *testing.T) {
	// A missing file gives the built-in defaults
	assert := assert.New(t)

	config, err := LoadConfig(filepath.Join(t.TempDir(), "openai", configFile))
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("gpt-4o-mini", config.ModelFor(ChatType, ""))
	assert.Equal("whisper-1", config.ModelFor(AudioType, ""))
	assert.Equal("o3", config.ModelFor(ChatType, "o3"))

	// Nothing is written when nothing changed
	assert.NoError(config.Close())
	_, err = os.Stat(config.path)
	assert.True(os.IsNotExist(err))
}

func Test_config_002(t *testing.T) {
	// Defaults are saved and loaded
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "openai", configFile)
	config, err := LoadConfig(path)
	if !assert.NoError(err) {
		t.FailNow()
	}
	config.SetModelFor(EmbeddingType, "text-embedding-3-large")
	config.SetModelFor(SpeechType, "tts-1")
	assert.NoError(config.Close())

	data, err := os.ReadFile(path)
	if assert.NoError(err) {
		assert.Contains(string(data), "embedding_model: text-embedding-3-large")
	}

	config, err = LoadConfig(path)
	if assert.NoError(err) {
		assert.Equal("text-embedding-3-large", config.ModelFor(EmbeddingType, ""))
		assert.Equal("tts-1", config.ModelFor(SpeechType, ""))
		assert.Equal("gpt-4o-mini", config.ModelFor(ChatType, ""))
	}
}

func Test_config_003(t *testing.T) {
	// Types are parsed by name
	assert := assert.New(t)

	for typ, name := range typeNames {
		parsed, err := ParseType(name)
		assert.NoError(err)
		assert.Equal(typ, parsed)
		assert.Equal(name, typ.String())
	}
	typ, err := ParseType(" Speech ")
	assert.NoError(err)
	assert.Equal(SpeechType, typ)
	_, err = ParseType("video")
	assert.Error(err)
}

func Test_config_004(t *testing.T) {
	// An unreadable file is an error
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), configFile)
	assert.NoError(os.WriteFile(path, []byte("chat_model: [unterminated"), 0600))
	_, err := LoadConfig(path)
	assert.Error(err)
}
