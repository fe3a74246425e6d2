package summary

import (
	"context"
	"fmt"

	"github.com/InQaaaaGit/yt_summary/internal/config"
	"google.golang.org/genai"
)

// Gemini реализует Backend через Google Gen AI SDK.
type Gemini struct {
	client  *genai.Client
	model   string
	initErr error
}

// NewGemini создает Backend для Gemini API.
// Ошибка создания клиента (например, пустой ключ) не возвращается сразу,
// а проявляется при каждом вызове Generate.
func NewGemini(ctx context.Context, apiKey, model, baseURL string) *Gemini {
	if model == "" {
		model = config.DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: baseURL,
		},
	})

	return &Gemini{
		client:  client,
		model:   model,
		initErr: err,
	}
}

// Name возвращает имя backend для логов
func (g *Gemini) Name() string {
	return "gemini"
}

// Generate отправляет запрос в модель и возвращает сгенерированный текст.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	if g.initErr != nil {
		return "", fmt.Errorf("gemini client unavailable: %w", g.initErr)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
