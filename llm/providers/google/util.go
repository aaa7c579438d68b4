package google

import (
	"errors"
	"fmt"

	"github.com/deepnoodle-ai/askagent/llm"
	"google.golang.org/genai"
)

// messagesToContents converts llm messages to genai contents. Assistant
// messages map to the "model" role and everything else to "user".
func messagesToContents(messages []*llm.Message) ([]*genai.Content, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}
	contents := make([]*genai.Content, 0, len(messages))
	for i, message := range messages {
		if message == nil {
			return nil, fmt.Errorf("message %d is nil", i)
		}
		role := string(genai.RoleUser)
		if message.Role == llm.Assistant {
			role = string(genai.RoleModel)
		}
		var parts []*genai.Part
		for _, content := range message.Content {
			if content == nil || content.Type != llm.ContentTypeText {
				continue
			}
			parts = append(parts, genai.NewPartFromText(content.Text))
		}
		if len(parts) == 0 {
			return nil, fmt.Errorf("message %d has no text content", i)
		}
		contents = append(contents, &genai.Content{Role: role, Parts: parts})
	}
	return contents, nil
}

// buildGenerateConfig creates genai.GenerateContentConfig from Request
func buildGenerateConfig(request *Request) *genai.GenerateContentConfig {
	genConfig := &genai.GenerateContentConfig{}
	if request.Temperature != nil {
		temp := float32(*request.Temperature)
		genConfig.Temperature = &temp
	}
	if request.MaxTokens > 0 {
		genConfig.MaxOutputTokens = int32(request.MaxTokens)
	}
	if request.System != "" {
		genConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(request.System)},
		}
	}
	return genConfig
}

// convertResponse converts a genai response to an llm response
func convertResponse(resp *genai.GenerateContentResponse, model string) (*llm.Response, error) {
	if resp == nil {
		return nil, fmt.Errorf("empty response from google genai")
	}
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return nil, fmt.Errorf("prompt blocked by google genai: %s", resp.PromptFeedback.BlockReason)
		}
		return nil, fmt.Errorf("no candidates in google genai response")
	}

	candidate := resp.Candidates[0]
	var content []*llm.Content
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Thought || part.Text == "" {
				continue
			}
			content = append(content, llm.NewTextContent(part.Text))
		}
	}

	var usage llm.Usage
	if resp.UsageMetadata != nil {
		usage = llm.Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}

	if resp.ModelVersion != "" {
		model = resp.ModelVersion
	}
	id := resp.ResponseID
	if id == "" {
		id = fmt.Sprintf("google_%d", candidate.Index)
	}

	return &llm.Response{
		ID:         id,
		Model:      model,
		Role:       llm.Assistant,
		Content:    content,
		StopReason: convertFinishReason(candidate.FinishReason),
		Usage:      usage,
	}, nil
}

func convertFinishReason(reason genai.FinishReason) string {
	switch reason {
	case genai.FinishReasonStop:
		return "stop"
	case genai.FinishReasonMaxTokens:
		return "max_tokens"
	case "":
		return ""
	default:
		return "other"
	}
}

// convertError maps genai API errors to llm.ProviderError. Other errors,
// such as transport failures, are returned unchanged.
func convertError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return llm.NewProviderError(ProviderName, apiErr.Code, apiErr.Status, apiErr.Message)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return llm.NewProviderError(ProviderName, apiErrPtr.Code, apiErrPtr.Status, apiErrPtr.Message)
	}
	return err
}
