package google

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/deepnoodle-ai/askagent/llm"
	"github.com/deepnoodle-ai/askagent/log"
	"google.golang.org/genai"
)

const ProviderName = "google"

var (
	DefaultModel     = ModelGemini20Flash001
	DefaultMaxTokens = 0 // service default
)

var _ llm.LLM = &Provider{}

// ContentGenerator is the subset of *genai.Models used by the provider.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Provider struct {
	client    ContentGenerator
	apiKey    string
	model     string
	maxTokens int
	logger    log.Logger
	mutex     sync.Mutex
}

// New returns a Gemini provider. The API key must be supplied with
// WithAPIKey unless a client is injected with WithClient.
func New(opts ...Option) *Provider {
	p := &Provider{
		model:     DefaultModel,
		maxTokens: DefaultMaxTokens,
		logger:    log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) initClient(ctx context.Context) (ContentGenerator, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.client != nil {
		return p.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create google genai client: %w", err)
	}
	p.client = client.Models
	return p.client, nil
}

func (p *Provider) Name() string {
	return ProviderName
}

func (p *Provider) Generate(ctx context.Context, opts ...llm.Option) (*llm.Response, error) {
	client, err := p.initClient(ctx)
	if err != nil {
		return nil, err
	}

	config := &llm.Config{}
	config.Apply(opts...)

	var request Request
	p.applyRequestConfig(&request, config)

	contents, err := messagesToContents(config.Messages)
	if err != nil {
		return nil, err
	}
	genConfig := buildGenerateConfig(&request)

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %w", err)
	}
	hookRequest := &llm.HookRequestContext{
		Messages: config.Messages,
		Config:   config,
		Body:     body,
	}

	if err := config.FireHooks(ctx, &llm.HookContext{
		Type:    llm.BeforeGenerate,
		Request: hookRequest,
	}); err != nil {
		return nil, err
	}

	logger := p.logger.With("provider", ProviderName, "model", request.Model)
	logger.Debug("generating content", "messages", len(contents))

	resp, err := client.GenerateContent(ctx, request.Model, contents, genConfig)
	if err == nil {
		var result *llm.Response
		result, err = convertResponse(resp, request.Model)
		if err == nil {
			logger.Debug("generated content",
				"input_tokens", result.Usage.InputTokens,
				"output_tokens", result.Usage.OutputTokens,
				"stop_reason", result.StopReason)
			if err := config.FireHooks(ctx, &llm.HookContext{
				Type:     llm.AfterGenerate,
				Request:  hookRequest,
				Response: &llm.HookResponseContext{Response: result},
			}); err != nil {
				return nil, err
			}
			return result, nil
		}
	} else {
		err = fmt.Errorf("error generating content: %w", convertError(err))
	}

	logger.Debug("generate failed", "error", err)
	if hookErr := config.FireHooks(ctx, &llm.HookContext{
		Type:     llm.OnError,
		Request:  hookRequest,
		Response: &llm.HookResponseContext{Error: err},
	}); hookErr != nil {
		return nil, hookErr
	}
	return nil, err
}

func (p *Provider) applyRequestConfig(req *Request, config *llm.Config) {
	req.Model = config.Model
	if req.Model == "" {
		req.Model = p.model
	}
	if config.MaxTokens != nil {
		req.MaxTokens = *config.MaxTokens
	} else {
		req.MaxTokens = p.maxTokens
	}
	req.Messages = config.Messages
	req.Temperature = config.Temperature
	req.System = config.SystemPrompt
}
