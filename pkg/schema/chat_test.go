package schema_test

import (
	"encoding/json"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	openai "github.com/mutablelogic/go-openai"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
	assert "github.com/stretchr/testify/assert"
)

func Test_chat_001(t *testing.T) {
	// A completion decodes, and the first choice has the content
	assert := assert.New(t)

	var completion schema.ChatCompletion
	if assert.NoError(json.Unmarshal([]byte(`{"choices":[{"message":{"role":"assistant","content":"Hi there"}}]}`), &completion)) {
		assert.NoError(completion.Validate())
		assert.Equal("Hi there", completion.Text())
		assert.Equal("assistant", completion.Choices[0].Message.Role)
	}
}

func Test_chat_002(t *testing.T) {
	// A completion without choices fails validation
	assert := assert.New(t)

	var completion schema.ChatCompletion
	if assert.NoError(json.Unmarshal([]byte(`{"id":"chatcmpl-1","object":"chat.completion"}`), &completion)) {
		assert.ErrorIs(completion.Validate(), openai.ErrDecode)
	}
}

func Test_chat_003(t *testing.T) {
	// Content encodes as a string, or as parts
	assert := assert.New(t)

	data, err := json.Marshal(schema.NewUserMessage("Hello"))
	assert.NoError(err)
	assert.JSONEq(`{"role":"user","content":"Hello"}`, string(data))

	data, err = json.Marshal(schema.NewUserMessage("What is this?", schema.ImageURLPart("https://example.com/a.png", "low")))
	assert.NoError(err)
	assert.JSONEq(`{"role":"user","content":[{"type":"text","text":"What is this?"},{"type":"image_url","image_url":{"url":"https://example.com/a.png","detail":"low"}}]}`, string(data))

	var message schema.Message
	if assert.NoError(json.Unmarshal(data, &message)) {
		assert.Len(message.Content.Parts, 2)
		assert.Equal("What is this?", message.Text())
	}

	if assert.NoError(json.Unmarshal([]byte(`{"role":"assistant","content":null,"tool_calls":[{"id":"call_1","type":"function","function":{"name":"f","arguments":"{}"}}]}`), &message)) {
		assert.Nil(message.Content)
		assert.Equal("", message.Text())
		assert.Len(message.ToolCalls, 1)
	}
}

func Test_chat_004(t *testing.T) {
	// A request with tools and a schema format encodes its schemas
	assert := assert.New(t)

	params := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"city": {Type: "string", Description: "City name"},
		},
		Required: []string{"city"},
	}
	req := schema.ChatRequest{
		Model:          "gpt-4o-mini",
		Messages:       []schema.Message{schema.NewSystemMessage("Be brief"), schema.NewUserMessage("Weather?")},
		Tools:          []schema.Tool{schema.NewFunctionTool("get_weather", "Get the weather", params)},
		ToolChoice:     schema.StringValue("auto"),
		ResponseFormat: schema.JSONSchemaFormat("weather", params, true),
		Temperature:    types.Ptr(0.2),
	}
	data, err := json.Marshal(req)
	if !assert.NoError(err) {
		t.FailNow()
	}

	var decoded map[string]any
	assert.NoError(json.Unmarshal(data, &decoded))
	assert.Equal("auto", decoded["tool_choice"])
	assert.Equal(0.2, decoded["temperature"])
	assert.NotContains(decoded, "stream")
	assert.NotContains(decoded, "top_p")
	tools := decoded["tools"].([]any)
	function := tools[0].(map[string]any)["function"].(map[string]any)
	assert.Equal("get_weather", function["name"])
	assert.Equal("object", function["parameters"].(map[string]any)["type"])
	format := decoded["response_format"].(map[string]any)
	assert.Equal("json_schema", format["type"])
	assert.Equal(true, format["json_schema"].(map[string]any)["strict"])
}

func Test_chat_005(t *testing.T) {
	// Appending chunks rebuilds the completion
	assert := assert.New(t)

	chunks := []string{
		`{"id":"c1","object":"chat.completion.chunk","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"delta":{"role":"assistant","content":""}}]}`,
		`{"id":"c1","object":"chat.completion.chunk","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"delta":{"content":"Hel"}}]}`,
		`{"id":"c1","object":"chat.completion.chunk","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"delta":{"content":"lo"}}]}`,
		`{"id":"c1","object":"chat.completion.chunk","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"id":"call_1","type":"function","function":{"name":"get_weather","arguments":"{\"ci"}}]}}]}`,
		`{"id":"c1","object":"chat.completion.chunk","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"function":{"arguments":"ty\":\"Paris\"}"}}]},"finish_reason":"tool_calls"}]}`,
		`{"id":"c1","object":"chat.completion.chunk","created":1,"model":"gpt-4o-mini","choices":[],"usage":{"prompt_tokens":5,"completion_tokens":7,"total_tokens":12}}`,
	}
	var completion schema.ChatCompletion
	for _, data := range chunks {
		var chunk schema.ChatChunk
		if !assert.NoError(json.Unmarshal([]byte(data), &chunk)) {
			t.FailNow()
		}
		completion.Append(&chunk)
	}

	assert.NoError(completion.Validate())
	assert.Equal("c1", completion.ID)
	assert.Equal("Hello", completion.Text())
	assert.Equal("tool_calls", completion.Choices[0].FinishReason)
	if assert.Len(completion.Choices[0].Message.ToolCalls, 1) {
		call := completion.Choices[0].Message.ToolCalls[0]
		assert.Equal("call_1", call.ID)
		assert.Equal("get_weather", call.Function.Name)
		args, err := call.Function.Args()
		if assert.NoError(err) {
			city, _ := args.Get("city")
			value, _ := city.AsString()
			assert.Equal("Paris", value)
		}
	}
	if assert.NotNil(completion.Usage) {
		assert.Equal(12, completion.Usage.TotalTokens)
	}
}

func Test_chat_006(t *testing.T) {
	// Text output formats encode for both chat and response requests
	assert := assert.New(t)

	chat, err := json.Marshal(schema.ChatRequest{Model: "gpt-4o-mini", ResponseFormat: schema.TextResponseFormat()})
	if assert.NoError(err) {
		assert.JSONEq(`{"model":"gpt-4o-mini","messages":null,"response_format":{"type":"text"}}`, string(chat))
	}

	response, err := json.Marshal(schema.ResponseRequest{Model: "gpt-4o-mini", Text: &schema.ResponseText{Format: &schema.TextFormat{Type: "text"}}})
	if assert.NoError(err) {
		assert.JSONEq(`{"model":"gpt-4o-mini","text":{"format":{"type":"text"}}}`, string(response))
	}
}
