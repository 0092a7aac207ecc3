package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Provider is the core abstraction for LLM interaction. The engine
// consumes it for avatar replies, branch resolution, and fact checking.
type Provider interface {
	// Generate sends a prompt to the LLM and returns the response.
	// When the request's Schema is set, the provider uses its native
	// structured-output mechanism and Content is the validated JSON.
	// When Schema is nil, Content is the raw text of the reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt: the avatar persona, case context,
	// and guardrail constraints.
	System string

	// Messages is the conversation history in transcript order.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to
	// (used for branch resolution and fact-check verdicts).
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Avatar dialogue runs
	// warm; structured calls run at 0.
	Temperature float64
}

// Message is a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema, kebab-case, e.g. "branch-choice".
	Name string

	// Description tells the LLM what this schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output: validated JSON when a Schema was
	// requested, raw reply text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Text returns the response content as plain text, stripping a JSON
// string wrapper if the provider returned one.
func (r *Response) Text() string {
	s := string(r.Content)
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(r.Content, &unquoted); err == nil {
			return unquoted
		}
	}
	return s
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
