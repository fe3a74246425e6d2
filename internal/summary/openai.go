package summary

import (
	"context"

	"github.com/InQaaaaGit/yt_summary/internal/config"
	"github.com/sashabaranov/go-openai"
)

// OpenAI реализует Backend для любого OpenAI-совместимого chat completions API.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI создает Backend. Пустой baseURL означает api.openai.com.
func NewOpenAI(apiKey, baseURL, model string) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = config.DefaultOpenAIModel
	}

	return &OpenAI{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Name возвращает имя backend для логов
func (o *OpenAI) Name() string {
	return "openai"
}

// Generate отправляет запрос одним сообщением пользователя и возвращает ответ модели.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptySummary
	}
	return resp.Choices[0].Message.Content, nil
}
