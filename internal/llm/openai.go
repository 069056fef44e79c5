package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIClient wraps an OpenAI-compatible chat endpoint. With the
// DeepSeek base URL it targets the deepseek-chat model the assistant
// runs against in production.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient returns a client for the given endpoint. baseURL may
// be empty to use the official OpenAI API.
func NewOpenAIClient(apiKey, baseURL, model string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)

	return &OpenAIClient{
		client: &client,
		model:  model,
	}, nil
}

// Complete sends one chat completion request and returns the reply
// text.
func (c *OpenAIClient) Complete(ctx context.Context, req PromptRequest) (string, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.User))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.MaxTokens)
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		slog.Error("failed to call completion API", "model", c.model, "error", err.Error())
		return "", fmt.Errorf("%w: %v", ErrCompletion, err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrCompletion)
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", fmt.Errorf("%w: empty reply content", ErrCompletion)
	}
	return reply, nil
}
