// Package service реализует конвейер получения резюме видео:
// разбор ссылки, запрос метаданных, проверку длительности и генерацию текста.
package service

import (
	"context"
	"fmt"

	"github.com/InQaaaaGit/yt_summary/internal/config"
	"github.com/InQaaaaGit/yt_summary/internal/models"
	"github.com/InQaaaaGit/yt_summary/internal/youtube"
	"go.uber.org/zap"
)

// MetadataFetcher получает метаданные видео по идентификатору
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, id string) (*models.VideoMetadata, error)
}

// SummaryGenerator генерирует резюме по названию и описанию видео
type SummaryGenerator interface {
	Summarize(ctx context.Context, title, description string) (string, error)
}

// SummaryService выполняет конвейер для одного запроса.
// Состояние между запросами не хранится.
type SummaryService struct {
	metadata    MetadataFetcher
	generator   SummaryGenerator
	maxDuration int
	logger      *zap.Logger
}

// NewSummaryService создает сервис.
// Максимальная длительность берется из cfg.MaxVideoDuration, при нулевом значении используется один час.
func NewSummaryService(cfg *config.Config, metadata MetadataFetcher, generator SummaryGenerator, logger *zap.Logger) *SummaryService {
	maxDuration := cfg.MaxVideoDuration
	if maxDuration <= 0 {
		maxDuration = config.DefaultMaxVideoDuration
	}

	return &SummaryService{
		metadata:    metadata,
		generator:   generator,
		maxDuration: maxDuration,
		logger:      logger,
	}
}

// Summarize возвращает резюме видео по ссылке.
// Каждый этап при ошибке прерывает конвейер и возвращает *Error с видом и этапом.
func (s *SummaryService) Summarize(ctx context.Context, rawURL string) (string, error) {
	if rawURL == "" {
		return "", newError(KindMissingURL, StageInput, ErrEmptyURL)
	}

	s.logger.Info("Processing video URL", zap.String("url", rawURL))

	videoID, ok := youtube.ExtractVideoID(rawURL)
	if !ok {
		return "", newError(KindInvalidURL, StageParse, ErrInvalidURL)
	}

	s.logger.Info("Fetching video info", zap.String("video_id", videoID))

	md, err := s.metadata.FetchMetadata(ctx, videoID)
	if err != nil {
		s.logger.Warn("Error fetching video info", zap.String("video_id", videoID), zap.Error(err))
		return "", newError(KindMetadataUnavailable, StageMetadata, err)
	}

	md.DurationSeconds = youtube.ParseDuration(md.RawDuration)
	if md.DurationSeconds > s.maxDuration {
		return "", newError(KindVideoTooLong, StageDuration,
			fmt.Errorf("%w: %d > %d seconds", ErrVideoTooLong, md.DurationSeconds, s.maxDuration))
	}

	s.logger.Info("Generating summary",
		zap.String("video_id", videoID),
		zap.String("title", md.Title),
		zap.Int("duration_seconds", md.DurationSeconds))

	text, err := s.generator.Summarize(ctx, md.Title, md.Description)
	if err != nil {
		return "", newError(KindUnexpected, StageGenerate, err)
	}

	s.logger.Info("Summary generated", zap.String("video_id", videoID), zap.Int("summary_len", len(text)))
	return text, nil
}
