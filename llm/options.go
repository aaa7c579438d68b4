package llm

// Option is a function that configures LLM calls.
type Option func(*Config)

// Config holds the parameters of a single LLM request.
type Config struct {
	Model        string
	SystemPrompt string
	Messages     []*Message
	MaxTokens    *int
	Temperature  *float64
	Hooks        Hooks
}

// Apply applies the given options to the config.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// WithModel sets the LLM model for the generation.
func WithModel(model string) Option {
	return func(config *Config) {
		config.Model = model
	}
}

// WithSystemPrompt sets the system prompt.
func WithSystemPrompt(systemPrompt string) Option {
	return func(config *Config) {
		config.SystemPrompt = systemPrompt
	}
}

// WithMessages sets the messages for the interaction.
func WithMessages(messages ...*Message) Option {
	return func(config *Config) {
		config.Messages = messages
	}
}

// WithMaxTokens sets the max tokens.
func WithMaxTokens(maxTokens int) Option {
	return func(config *Config) {
		config.MaxTokens = &maxTokens
	}
}

// WithTemperature sets the temperature.
func WithTemperature(temperature float64) Option {
	return func(config *Config) {
		config.Temperature = &temperature
	}
}

// WithHook adds a hook for the specified event type
func WithHook(hookType HookType, hook Hook) Option {
	return func(config *Config) {
		if config.Hooks == nil {
			config.Hooks = make(Hooks)
		}
		config.Hooks[hookType] = append(config.Hooks[hookType], hook)
	}
}
