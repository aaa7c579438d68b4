package config

import (
	"github.com/deepnoodle-ai/askagent/llm"
	"github.com/deepnoodle-ai/askagent/llm/providers/google"
	"github.com/deepnoodle-ai/askagent/log"
)

// GetModel returns the Gemini provider configured with the loaded API key.
func GetModel(cfg *Config, logger log.Logger) llm.LLM {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return google.New(
		google.WithAPIKey(cfg.APIKey),
		google.WithLogger(logger),
	)
}
