package schema

import (
	"encoding/json"
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ChatRequest is the body of a chat completion request
type ChatRequest struct {
	Model               string            `json:"model"`
	Messages            []Message         `json:"messages"`
	FrequencyPenalty    *float64          `json:"frequency_penalty,omitempty"`
	LogitBias           map[string]int    `json:"logit_bias,omitempty"`
	Logprobs            *bool             `json:"logprobs,omitempty"`
	TopLogprobs         *int              `json:"top_logprobs,omitempty"`
	MaxCompletionTokens *int              `json:"max_completion_tokens,omitempty"`
	N                   *int              `json:"n,omitempty"`
	Modalities          []string          `json:"modalities,omitempty"`
	PresencePenalty     *float64          `json:"presence_penalty,omitempty"`
	ReasoningEffort     string            `json:"reasoning_effort,omitempty"`
	ResponseFormat      *ResponseFormat   `json:"response_format,omitempty"`
	Seed                *int64            `json:"seed,omitempty"`
	ServiceTier         string            `json:"service_tier,omitempty"`
	Stop                []string          `json:"stop,omitempty"`
	Store               *bool             `json:"store,omitempty"`
	Metadata            map[string]string `json:"metadata,omitempty"`
	Stream              bool              `json:"stream,omitempty"`
	StreamOptions       *StreamOptions    `json:"stream_options,omitempty"`
	Temperature         *float64          `json:"temperature,omitempty"`
	TopP                *float64          `json:"top_p,omitempty"`
	Tools               []Tool            `json:"tools,omitempty"`
	ToolChoice          Value             `json:"tool_choice,omitzero"`
	ParallelToolCalls   *bool             `json:"parallel_tool_calls,omitempty"`
	User                string            `json:"user,omitempty"`
}

// Message is one turn of a conversation. Content is nil for assistant
// messages which only carry tool calls.
type Message struct {
	Role       string     `json:"role"` // system, developer, user, assistant or tool
	Content    *Content   `json:"content,omitempty"`
	Name       string     `json:"name,omitempty"`
	Refusal    string     `json:"refusal,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// Content is either plain text or a list of parts. It encodes as a JSON
// string when there are no parts.
type Content struct {
	Text  string
	Parts []ContentPart
}

// ContentPart is one part of a multi-part message
type ContentPart struct {
	Type       string      `json:"type"` // text, image_url, input_audio or file
	Text       string      `json:"text,omitempty"`
	ImageURL   *ImageURL   `json:"image_url,omitempty"`
	InputAudio *InputAudio `json:"input_audio,omitempty"`
	File       *FileInput  `json:"file,omitempty"`
}

type ImageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"` // auto, low or high
}

type InputAudio struct {
	Data   string `json:"data"`   // base64 encoded
	Format string `json:"format"` // wav or mp3
}

type FileInput struct {
	FileID   string `json:"file_id,omitempty"`
	Filename string `json:"filename,omitempty"`
	FileData string `json:"file_data,omitempty"`
}

// Tool is a function the model may call
type Tool struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

type ToolFunction struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
	Strict      *bool              `json:"strict,omitempty"`
}

// ToolCall is a call to a function requested by the model. In stream
// chunks, Index identifies which call a fragment belongs to.
type ToolCall struct {
	Index    *int         `json:"index,omitempty"`
	ID       string       `json:"id,omitempty"`
	Type     string       `json:"type,omitempty"`
	Function FunctionCall `json:"function"`
}

type FunctionCall struct {
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"` // JSON encoded
}

// ResponseFormat constrains the output of the model
type ResponseFormat struct {
	Type       string          `json:"type"` // text, json_object or json_schema
	JSONSchema *ResponseSchema `json:"json_schema,omitempty"`
}

type ResponseSchema struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Schema      *jsonschema.Schema `json:"schema,omitempty"`
	Strict      *bool              `json:"strict,omitempty"`
}

type StreamOptions struct {
	IncludeUsage bool `json:"include_usage"`
}

// ChatCompletion is the response to a chat completion request
type ChatCompletion struct {
	ID                string       `json:"id"`
	Object            string       `json:"object"`
	Created           int64        `json:"created"`
	Model             string       `json:"model"`
	SystemFingerprint string       `json:"system_fingerprint,omitempty"`
	ServiceTier       string       `json:"service_tier,omitempty"`
	Choices           []ChatChoice `json:"choices"`
	Usage             *Usage       `json:"usage,omitempty"`
}

type ChatChoice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason,omitempty"`
}

// ChatChunk is one event of a streamed chat completion. The final chunk
// has no choices when usage was requested.
type ChatChunk struct {
	ID                string        `json:"id"`
	Object            string        `json:"object"`
	Created           int64         `json:"created"`
	Model             string        `json:"model"`
	SystemFingerprint string        `json:"system_fingerprint,omitempty"`
	ServiceTier       string        `json:"service_tier,omitempty"`
	Choices           []ChunkChoice `json:"choices"`
	Usage             *Usage        `json:"usage,omitempty"`
}

type ChunkChoice struct {
	Index        int       `json:"index"`
	Delta        ChatDelta `json:"delta"`
	FinishReason string    `json:"finish_reason,omitempty"`
}

type ChatDelta struct {
	Role      string     `json:"role,omitempty"`
	Content   string     `json:"content,omitempty"`
	Refusal   string     `json:"refusal,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// Usage counts the tokens of a completion
type Usage struct {
	PromptTokens            int                      `json:"prompt_tokens"`
	CompletionTokens        int                      `json:"completion_tokens"`
	TotalTokens             int                      `json:"total_tokens"`
	PromptTokensDetails     *PromptTokensDetails     `json:"prompt_tokens_details,omitempty"`
	CompletionTokensDetails *CompletionTokensDetails `json:"completion_tokens_details,omitempty"`
}

type PromptTokensDetails struct {
	CachedTokens int `json:"cached_tokens,omitempty"`
	AudioTokens  int `json:"audio_tokens,omitempty"`
}

type CompletionTokensDetails struct {
	ReasoningTokens          int `json:"reasoning_tokens,omitempty"`
	AudioTokens              int `json:"audio_tokens,omitempty"`
	AcceptedPredictionTokens int `json:"accepted_prediction_tokens,omitempty"`
	RejectedPredictionTokens int `json:"rejected_prediction_tokens,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	RoleSystem    = "system"
	RoleDeveloper = "developer"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewSystemMessage(text string) Message {
	return Message{Role: RoleSystem, Content: &Content{Text: text}}
}

func NewDeveloperMessage(text string) Message {
	return Message{Role: RoleDeveloper, Content: &Content{Text: text}}
}

// NewUserMessage returns a user message. With parts the text, if any,
// becomes the first part.
func NewUserMessage(text string, parts ...ContentPart) Message {
	if len(parts) == 0 {
		return Message{Role: RoleUser, Content: &Content{Text: text}}
	}
	if text != "" {
		parts = append([]ContentPart{TextPart(text)}, parts...)
	}
	return Message{Role: RoleUser, Content: &Content{Parts: parts}}
}

func NewAssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Content: &Content{Text: text}}
}

// NewToolMessage returns the result of a tool call
func NewToolMessage(callID, text string) Message {
	return Message{Role: RoleTool, ToolCallID: callID, Content: &Content{Text: text}}
}

func TextPart(text string) ContentPart {
	return ContentPart{Type: "text", Text: text}
}

func ImageURLPart(url, detail string) ContentPart {
	return ContentPart{Type: "image_url", ImageURL: &ImageURL{URL: url, Detail: detail}}
}

func InputAudioPart(data, format string) ContentPart {
	return ContentPart{Type: "input_audio", InputAudio: &InputAudio{Data: data, Format: format}}
}

func FilePart(fileID string) ContentPart {
	return ContentPart{Type: "file", File: &FileInput{FileID: fileID}}
}

// NewFunctionTool returns a tool which calls a function with parameters
// described by a JSON schema
func NewFunctionTool(name, description string, parameters *jsonschema.Schema) Tool {
	return Tool{
		Type: "function",
		Function: ToolFunction{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}

// TextResponseFormat requests plain text output
func TextResponseFormat() *ResponseFormat {
	return &ResponseFormat{Type: "text"}
}

func JSONObjectFormat() *ResponseFormat {
	return &ResponseFormat{Type: "json_object"}
}

// JSONSchemaFormat constrains the output to a JSON schema
func JSONSchemaFormat(name string, schema *jsonschema.Schema, strict bool) *ResponseFormat {
	return &ResponseFormat{
		Type: "json_schema",
		JSONSchema: &ResponseSchema{
			Name:   name,
			Schema: schema,
			Strict: &strict,
		},
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r ChatRequest) String() string {
	return Stringify(r)
}

func (m Message) String() string {
	return Stringify(m)
}

func (c ChatCompletion) String() string {
	return Stringify(c)
}

func (c ChatChunk) String() string {
	return Stringify(c)
}

////////////////////////////////////////////////////////////////////////////////
// JSON

func (c Content) MarshalJSON() ([]byte, error) {
	if len(c.Parts) == 0 {
		return json.Marshal(c.Text)
	}
	return json.Marshal(c.Parts)
}

func (c *Content) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*c = Content{Text: text}
		return nil
	}
	var parts []ContentPart
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	*c = Content{Parts: parts}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate checks the name of a function tool
func (t Tool) Validate() error {
	if t.Type != "function" {
		return nil
	}
	return validateFunctionName(t.Function.Name)
}

// Validate checks that the completion has at least one choice
func (c *ChatCompletion) Validate() error {
	if c.Choices == nil {
		return missing("chat.completion", "choices")
	}
	return nil
}

// Text returns the content of the first choice
func (c *ChatCompletion) Text() string {
	if len(c.Choices) == 0 {
		return ""
	}
	return c.Choices[0].Message.Text()
}

// Append merges a stream chunk into the completion, so that once every
// chunk has been appended the completion is the one which would have been
// returned without streaming
func (c *ChatCompletion) Append(chunk *ChatChunk) {
	if c.ID == "" {
		c.ID = chunk.ID
		c.Object = "chat.completion"
		c.Created = chunk.Created
		c.Model = chunk.Model
	}
	if chunk.SystemFingerprint != "" {
		c.SystemFingerprint = chunk.SystemFingerprint
	}
	if chunk.ServiceTier != "" {
		c.ServiceTier = chunk.ServiceTier
	}
	if chunk.Usage != nil {
		c.Usage = chunk.Usage
	}
	for _, delta := range chunk.Choices {
		choice := c.choice(delta.Index)
		if delta.Delta.Role != "" {
			choice.Message.Role = delta.Delta.Role
		}
		if delta.Delta.Content != "" {
			if choice.Message.Content == nil {
				choice.Message.Content = &Content{}
			}
			choice.Message.Content.Text += delta.Delta.Content
		}
		choice.Message.Refusal += delta.Delta.Refusal
		for _, call := range delta.Delta.ToolCalls {
			choice.Message.appendToolCall(call)
		}
		if delta.FinishReason != "" {
			choice.FinishReason = delta.FinishReason
		}
	}
}

// Text returns the text of the message, joining text parts with newlines
func (m Message) Text() string {
	if m.Content == nil {
		return ""
	}
	return m.Content.String()
}

func (c Content) String() string {
	if len(c.Parts) == 0 {
		return c.Text
	}
	var parts []string
	for _, part := range c.Parts {
		if part.Type == "text" {
			parts = append(parts, part.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// Text returns the content of the first choice
func (c *ChatChunk) Text() string {
	if len(c.Choices) == 0 {
		return ""
	}
	return c.Choices[0].Delta.Content
}

// Args decodes the arguments of a function call
func (f FunctionCall) Args() (Value, error) {
	var args Value
	if strings.TrimSpace(f.Arguments) == "" {
		return ObjectValue(nil), nil
	}
	if err := json.Unmarshal([]byte(f.Arguments), &args); err != nil {
		return Value{}, err
	}
	return args, nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *ChatCompletion) choice(index int) *ChatChoice {
	for i := range c.Choices {
		if c.Choices[i].Index == index {
			return &c.Choices[i]
		}
	}
	c.Choices = append(c.Choices, ChatChoice{Index: index, Message: Message{Role: RoleAssistant}})
	return &c.Choices[len(c.Choices)-1]
}

func (m *Message) appendToolCall(fragment ToolCall) {
	index := len(m.ToolCalls)
	if fragment.Index != nil {
		index = *fragment.Index
	}
	for i := range m.ToolCalls {
		call := &m.ToolCalls[i]
		if call.Index != nil && *call.Index == index {
			if fragment.ID != "" {
				call.ID = fragment.ID
			}
			if fragment.Type != "" {
				call.Type = fragment.Type
			}
			call.Function.Name += fragment.Function.Name
			call.Function.Arguments += fragment.Function.Arguments
			return
		}
	}
	fragment.Index = &index
	m.ToolCalls = append(m.ToolCalls, fragment)
}
