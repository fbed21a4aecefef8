package schema

import (
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ResponseRequest is the body of a request to create a model response.
// Input is either a string or an array of input items.
type ResponseRequest struct {
	Model              string            `json:"model"`
	Input              Value             `json:"input,omitzero"`
	Instructions       string            `json:"instructions,omitempty"`
	MaxOutputTokens    *int              `json:"max_output_tokens,omitempty"`
	Temperature        *float64          `json:"temperature,omitempty"`
	TopP               *float64          `json:"top_p,omitempty"`
	Tools              []ResponseTool    `json:"tools,omitempty"`
	ToolChoice         Value             `json:"tool_choice,omitzero"`
	ParallelToolCalls  *bool             `json:"parallel_tool_calls,omitempty"`
	PreviousResponseID string            `json:"previous_response_id,omitempty"`
	Reasoning          *Reasoning        `json:"reasoning,omitempty"`
	Text               *ResponseText     `json:"text,omitempty"`
	Truncation         string            `json:"truncation,omitempty"`
	Include            []string          `json:"include,omitempty"`
	Store              *bool             `json:"store,omitempty"`
	Background         *bool             `json:"background,omitempty"`
	Metadata           map[string]string `json:"metadata,omitempty"`
	User               string            `json:"user,omitempty"`
	Stream             bool              `json:"stream,omitempty"`
}

// ResponseTool is a function, or a built-in tool such as web_search_preview
// which has only a type
type ResponseTool struct {
	Type        string             `json:"type"`
	Name        string             `json:"name,omitempty"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
	Strict      *bool              `json:"strict,omitempty"`
}

type Reasoning struct {
	Effort  string `json:"effort,omitempty"`  // minimal, low, medium or high
	Summary string `json:"summary,omitempty"` // auto, concise or detailed
}

type ResponseText struct {
	Format *TextFormat `json:"format,omitempty"`
}

// TextFormat constrains the text output of a response
type TextFormat struct {
	Type        string             `json:"type"` // text, json_object or json_schema
	Name        string             `json:"name,omitempty"`
	Description string             `json:"description,omitempty"`
	Schema      *jsonschema.Schema `json:"schema,omitempty"`
	Strict      *bool              `json:"strict,omitempty"`
}

// Response is a model response
type Response struct {
	ID                 string             `json:"id"`
	Object             string             `json:"object"`
	CreatedAt          int64              `json:"created_at"`
	Status             string             `json:"status,omitempty"` // completed, failed, in_progress, cancelled, queued or incomplete
	Error              *ResponseError     `json:"error,omitempty"`
	IncompleteDetails  *IncompleteDetails `json:"incomplete_details,omitempty"`
	Instructions       Value              `json:"instructions,omitzero"`
	Model              string             `json:"model"`
	Output             []OutputItem       `json:"output"`
	PreviousResponseID string             `json:"previous_response_id,omitempty"`
	Usage              *ResponseUsage     `json:"usage,omitempty"`
	Metadata           map[string]string  `json:"metadata,omitempty"`
}

type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type IncompleteDetails struct {
	Reason string `json:"reason"`
}

// OutputItem is a message, function call, reasoning summary or the call of
// a built-in tool
type OutputItem struct {
	Type      string          `json:"type"`
	ID        string          `json:"id,omitempty"`
	Status    string          `json:"status,omitempty"`
	Role      string          `json:"role,omitempty"`
	Content   []OutputContent `json:"content,omitempty"`
	Name      string          `json:"name,omitempty"`
	CallID    string          `json:"call_id,omitempty"`
	Arguments string          `json:"arguments,omitempty"`
	Summary   []OutputContent `json:"summary,omitempty"`
}

type OutputContent struct {
	Type        string  `json:"type"` // output_text, refusal or summary_text
	Text        string  `json:"text,omitempty"`
	Refusal     string  `json:"refusal,omitempty"`
	Annotations []Value `json:"annotations,omitempty"`
}

type ResponseUsage struct {
	InputTokens         int `json:"input_tokens"`
	OutputTokens        int `json:"output_tokens"`
	TotalTokens         int `json:"total_tokens"`
	InputTokensDetails  struct {
		CachedTokens int `json:"cached_tokens,omitempty"`
	} `json:"input_tokens_details"`
	OutputTokensDetails struct {
		ReasoningTokens int `json:"reasoning_tokens,omitempty"`
	} `json:"output_tokens_details"`
}

// ResponseEvent is one event of a streamed response, tagged by type.
// Which fields are set depends on the type.
type ResponseEvent struct {
	Type           string      `json:"type"`
	SequenceNumber int         `json:"sequence_number"`
	Response       *Response   `json:"response,omitempty"`
	OutputIndex    *int        `json:"output_index,omitempty"`
	ContentIndex   *int        `json:"content_index,omitempty"`
	ItemID         string      `json:"item_id,omitempty"`
	Item           *OutputItem `json:"item,omitempty"`
	Delta          string      `json:"delta,omitempty"`
	Text           string      `json:"text,omitempty"`
	Arguments      string      `json:"arguments,omitempty"`
	Code           string      `json:"code,omitempty"`
	Message        string      `json:"message,omitempty"`
	Param          string      `json:"param,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	EventResponseCreated    = "response.created"
	EventResponseInProgress = "response.in_progress"
	EventResponseCompleted  = "response.completed"
	EventResponseFailed     = "response.failed"
	EventResponseIncomplete = "response.incomplete"
	EventOutputTextDelta    = "response.output_text.delta"
	EventOutputTextDone     = "response.output_text.done"
	EventFunctionArgsDelta  = "response.function_call_arguments.delta"
	EventOutputItemAdded    = "response.output_item.added"
	EventOutputItemDone     = "response.output_item.done"
	EventError              = "error"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// InputText returns a response input which is a single user prompt
func InputText(text string) Value {
	return StringValue(text)
}

// InputMessage returns an input item with a role and text content
func InputMessage(role, text string) Value {
	return ObjectValue(map[string]Value{
		"role":    StringValue(role),
		"content": StringValue(text),
	})
}

// InputFunctionOutput returns an input item with the result of a function call
func InputFunctionOutput(callID, output string) Value {
	return ObjectValue(map[string]Value{
		"type":    StringValue("function_call_output"),
		"call_id": StringValue(callID),
		"output":  StringValue(output),
	})
}

// InputItems returns a response input which is a list of items
func InputItems(items ...Value) Value {
	return ArrayValue(items...)
}

// NewResponseFunctionTool returns a tool which calls a function
func NewResponseFunctionTool(name, description string, parameters *jsonschema.Schema) ResponseTool {
	return ResponseTool{
		Type:        "function",
		Name:        name,
		Description: description,
		Parameters:  parameters,
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r ResponseRequest) String() string {
	return Stringify(r)
}

func (r Response) String() string {
	return Stringify(r)
}

func (e ResponseEvent) String() string {
	return Stringify(e)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate checks the name of a function tool. Built-in tools have no name.
func (t ResponseTool) Validate() error {
	if t.Type != "function" {
		return nil
	}
	return validateFunctionName(t.Name)
}

func (r *Response) Validate() error {
	if r.ID == "" {
		return missing("response", "id")
	}
	return nil
}

// OutputText returns the text of every output_text part of every message,
// concatenated
func (r *Response) OutputText() string {
	var b strings.Builder
	for _, item := range r.Output {
		if item.Type != "message" {
			continue
		}
		for _, content := range item.Content {
			if content.Type == "output_text" {
				b.WriteString(content.Text)
			}
		}
	}
	return b.String()
}

// FunctionCalls returns the function call items of the output
func (r *Response) FunctionCalls() []OutputItem {
	var result []OutputItem
	for _, item := range r.Output {
		if item.Type == "function_call" {
			result = append(result, item)
		}
	}
	return result
}

// Terminal reports whether the event is the last of a stream
func (e *ResponseEvent) Terminal() bool {
	switch e.Type {
	case EventResponseCompleted, EventResponseFailed, EventResponseIncomplete:
		return true
	}
	return false
}
