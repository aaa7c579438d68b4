package llm

import "context"

// LLM is a language model that generates one response per call.
type LLM interface {
	// Name of the LLM provider, e.g. "google".
	Name() string

	// Generate a response from the LLM. The request is described entirely by
	// the given options.
	Generate(ctx context.Context, opts ...Option) (*Response, error)
}
