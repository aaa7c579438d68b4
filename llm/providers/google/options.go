package google

import "github.com/deepnoodle-ai/askagent/log"

// Option is a function that configures the Google provider.
type Option func(*Provider)

// WithAPIKey sets the API key for the provider.
func WithAPIKey(apiKey string) Option {
	return func(p *Provider) {
		p.apiKey = apiKey
	}
}

// WithModel sets the default model.
func WithModel(model string) Option {
	return func(p *Provider) {
		p.model = model
	}
}

// WithMaxTokens sets the default maximum tokens.
func WithMaxTokens(maxTokens int) Option {
	return func(p *Provider) {
		p.maxTokens = maxTokens
	}
}

// WithClient sets the generator used to call the API. When unset, a
// genai.Client is created on first use.
func WithClient(client ContentGenerator) Option {
	return func(p *Provider) {
		p.client = client
	}
}

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}
