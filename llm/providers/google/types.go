package google

import "github.com/deepnoodle-ai/askagent/llm"

// Request is the provider-level view of a generation request. It is
// marshaled for hooks and debug logging only; the API is called through
// genai types.
type Request struct {
	Model       string         `json:"model"`
	Messages    []*llm.Message `json:"messages"`
	MaxTokens   int            `json:"max_tokens,omitempty"`
	Temperature *float64       `json:"temperature,omitempty"`
	System      string         `json:"system,omitempty"`
}
