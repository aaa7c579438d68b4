package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/deepnoodle-ai/askagent/llm"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type generateCall struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

// fakeGenerator records calls and returns a canned response or error.
type fakeGenerator struct {
	calls    []generateCall
	response *genai.GenerateContentResponse
	err      error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls = append(f.calls, generateCall{model: model, contents: contents, config: config})
	return f.response, f.err
}

func robotResponse() *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		ResponseID:   "resp-123",
		ModelVersion: ModelGemini20Flash001,
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Role:  string(genai.RoleModel),
				Parts: []*genai.Part{genai.NewPartFromText("I'M JUST A ROBOT")},
			},
			FinishReason: genai.FinishReasonStop,
		}},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     5,
			CandidatesTokenCount: 4,
		},
	}
}

func TestProviderName(t *testing.T) {
	provider := New()
	require.Equal(t, "google", provider.Name())
}

func TestProviderGenerate(t *testing.T) {
	fake := &fakeGenerator{response: robotResponse()}
	provider := New(WithClient(fake))

	response, err := provider.Generate(context.Background(),
		llm.WithModel(ModelGemini20Flash001),
		llm.WithSystemPrompt("shout"),
		llm.WithMessages(llm.NewUserTextMessage("What is 2+2?")),
	)
	require.NoError(t, err)
	require.Equal(t, "I'M JUST A ROBOT", response.Text())
	require.Equal(t, llm.Assistant, response.Role)
	require.Equal(t, "resp-123", response.ID)
	require.Equal(t, ModelGemini20Flash001, response.Model)
	require.Equal(t, "stop", response.StopReason)
	require.Equal(t, llm.Usage{InputTokens: 5, OutputTokens: 4}, response.Usage)

	require.Len(t, fake.calls, 1)
	call := fake.calls[0]
	require.Equal(t, ModelGemini20Flash001, call.model)
	require.Len(t, call.contents, 1)
	require.Equal(t, "user", call.contents[0].Role)
	require.Len(t, call.contents[0].Parts, 1)
	require.Equal(t, "What is 2+2?", call.contents[0].Parts[0].Text)
	require.NotNil(t, call.config.SystemInstruction)
	require.Len(t, call.config.SystemInstruction.Parts, 1)
	require.Equal(t, "shout", call.config.SystemInstruction.Parts[0].Text)
	require.Zero(t, call.config.MaxOutputTokens)
	require.Nil(t, call.config.Temperature)
}

func TestProviderDefaults(t *testing.T) {
	fake := &fakeGenerator{response: robotResponse()}
	provider := New(WithClient(fake), WithMaxTokens(128))

	_, err := provider.Generate(context.Background(),
		llm.WithMessages(llm.NewUserTextMessage("hi")),
		llm.WithTemperature(0.2),
	)
	require.NoError(t, err)
	require.Len(t, fake.calls, 1)
	call := fake.calls[0]
	require.Equal(t, DefaultModel, call.model)
	require.Nil(t, call.config.SystemInstruction)
	require.Equal(t, int32(128), call.config.MaxOutputTokens)
	require.NotNil(t, call.config.Temperature)
	require.InDelta(t, 0.2, *call.config.Temperature, 0.0001)
}

func TestProviderGenerateNoMessages(t *testing.T) {
	fake := &fakeGenerator{response: robotResponse()}
	provider := New(WithClient(fake))

	_, err := provider.Generate(context.Background())
	require.Error(t, err)
	require.Empty(t, fake.calls)
}

func TestProviderGenerateAPIError(t *testing.T) {
	fake := &fakeGenerator{err: genai.APIError{
		Code:    429,
		Status:  "RESOURCE_EXHAUSTED",
		Message: "quota exceeded",
	}}
	provider := New(WithClient(fake))

	var hookErr error
	_, err := provider.Generate(context.Background(),
		llm.WithMessages(llm.NewUserTextMessage("hi")),
		llm.WithHook(llm.OnError, func(ctx context.Context, hookCtx *llm.HookContext) error {
			hookErr = hookCtx.Response.Error
			return nil
		}),
	)
	require.Error(t, err)
	require.Equal(t, err, hookErr)

	var providerErr *llm.ProviderError
	require.True(t, errors.As(err, &providerErr))
	require.Equal(t, 429, providerErr.StatusCode())
	require.True(t, providerErr.IsQuota())
	require.False(t, providerErr.IsAuthentication())
}

func TestProviderGenerateTransportError(t *testing.T) {
	transportErr := errors.New("dial tcp: connection refused")
	fake := &fakeGenerator{err: transportErr}
	provider := New(WithClient(fake))

	_, err := provider.Generate(context.Background(),
		llm.WithMessages(llm.NewUserTextMessage("hi")),
	)
	require.ErrorIs(t, err, transportErr)

	var providerErr *llm.ProviderError
	require.False(t, errors.As(err, &providerErr))
}

func TestProviderGenerateEmptyCandidates(t *testing.T) {
	fake := &fakeGenerator{response: &genai.GenerateContentResponse{
		PromptFeedback: &genai.GenerateContentResponsePromptFeedback{
			BlockReason: genai.BlockedReasonSafety,
		},
	}}
	provider := New(WithClient(fake))

	_, err := provider.Generate(context.Background(),
		llm.WithMessages(llm.NewUserTextMessage("hi")),
	)
	require.ErrorContains(t, err, "prompt blocked")
}

func TestProviderHooks(t *testing.T) {
	fake := &fakeGenerator{response: robotResponse()}
	provider := New(WithClient(fake))

	var events []llm.HookType
	var body []byte
	record := func(ctx context.Context, hookCtx *llm.HookContext) error {
		events = append(events, hookCtx.Type)
		body = hookCtx.Request.Body
		return nil
	}

	_, err := provider.Generate(context.Background(),
		llm.WithSystemPrompt("shout"),
		llm.WithMessages(llm.NewUserTextMessage("hi")),
		llm.WithHook(llm.BeforeGenerate, record),
		llm.WithHook(llm.AfterGenerate, record),
	)
	require.NoError(t, err)
	require.Equal(t, []llm.HookType{llm.BeforeGenerate, llm.AfterGenerate}, events)

	var request Request
	require.NoError(t, json.Unmarshal(body, &request))
	require.Equal(t, DefaultModel, request.Model)
	require.Equal(t, "shout", request.System)
}

func TestProviderBeforeHookAborts(t *testing.T) {
	fake := &fakeGenerator{response: robotResponse()}
	provider := New(WithClient(fake))

	_, err := provider.Generate(context.Background(),
		llm.WithMessages(llm.NewUserTextMessage("hi")),
		llm.WithHook(llm.BeforeGenerate, func(ctx context.Context, hookCtx *llm.HookContext) error {
			return fmt.Errorf("not allowed")
		}),
	)
	require.ErrorContains(t, err, "not allowed")
	require.Empty(t, fake.calls)
}

func TestMessagesToContents(t *testing.T) {
	contents, err := messagesToContents([]*llm.Message{
		llm.NewUserTextMessage("question"),
		llm.NewAssistantTextMessage("answer"),
	})
	require.NoError(t, err)
	require.Len(t, contents, 2)
	require.Equal(t, "user", contents[0].Role)
	require.Equal(t, "model", contents[1].Role)
	require.Equal(t, "answer", contents[1].Parts[0].Text)

	_, err = messagesToContents([]*llm.Message{{Role: llm.User}})
	require.Error(t, err)
}

func TestConvertResponseSkipsThoughts(t *testing.T) {
	resp := robotResponse()
	resp.Candidates[0].Content.Parts = append([]*genai.Part{
		{Text: "thinking...", Thought: true},
	}, resp.Candidates[0].Content.Parts...)

	response, err := convertResponse(resp, DefaultModel)
	require.NoError(t, err)
	require.Equal(t, "I'M JUST A ROBOT", response.Text())
}

// requireGeminiAPIKey skips the test if no API key is available
func requireGeminiAPIKey(t *testing.T) string {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping test: GEMINI_API_KEY not set")
	}
	return apiKey
}

func TestProviderBasicGenerate(t *testing.T) {
	apiKey := requireGeminiAPIKey(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	provider := New(WithAPIKey(apiKey))
	response, err := provider.Generate(ctx, llm.WithMessages(
		llm.NewUserTextMessage("respond with \"hello\""),
	))
	require.NoError(t, err)
	require.Equal(t, llm.Assistant, response.Role)
	require.NotEmpty(t, response.Text())
	require.Greater(t, response.Usage.InputTokens, 0)
}
