// Package summary формирует запрос к генеративной модели и возвращает
// текстовое резюме видео. Конкретная модель подключается через Backend.
package summary

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrEmptySummary возвращается, когда модель не вернула текста
var ErrEmptySummary = errors.New("generation returned empty text")

const promptTemplate = `Please provide a comprehensive summary of the following YouTube video:

Title: %s

Description: %s

Please structure the summary with an introduction, main points, and a conclusion.`

// Backend генерирует текст по одному текстовому запросу.
type Backend interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// Generator строит запрос по метаданным видео и передает его в Backend.
type Generator struct {
	backend Backend
	logger  *zap.Logger
}

// NewGenerator создает генератор резюме поверх заданного Backend.
func NewGenerator(backend Backend, logger *zap.Logger) *Generator {
	return &Generator{
		backend: backend,
		logger:  logger,
	}
}

// BuildPrompt возвращает запрос фиксированной структуры для названия и описания видео.
func BuildPrompt(title, description string) string {
	return fmt.Sprintf(promptTemplate, title, description)
}

// Summarize возвращает текст модели без изменений.
// Любая ошибка модели возвращается вызывающему как есть, без повторов.
func (g *Generator) Summarize(ctx context.Context, title, description string) (string, error) {
	prompt := BuildPrompt(title, description)

	g.logger.Debug("Sending prompt to model",
		zap.String("backend", g.backend.Name()),
		zap.Int("prompt_len", len(prompt)))

	text, err := g.backend.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%s generation failed: %w", g.backend.Name(), err)
	}
	if text == "" {
		return "", ErrEmptySummary
	}
	return text, nil
}
