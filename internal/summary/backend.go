package summary

import (
	"context"
	"fmt"

	"github.com/InQaaaaGit/yt_summary/internal/config"
)

// NewBackend выбирает Backend по настройке SUMMARY_PROVIDER.
func NewBackend(ctx context.Context, cfg *config.Config) (Backend, error) {
	switch cfg.SummaryProvider {
	case config.ProviderGemini, "":
		return NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL), nil
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unknown summary provider %q", cfg.SummaryProvider)
	}
}
