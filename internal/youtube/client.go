package youtube

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/InQaaaaGit/yt_summary/internal/models"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// Ошибки клиента метаданных
var (
	// ErrUpstreamFetch возвращается, когда запрос к YouTube Data API завершился неудачей
	ErrUpstreamFetch = errors.New("failed to fetch video information from YouTube API")
	// ErrVideoNotFound возвращается, когда API не вернул ни одного видео
	ErrVideoNotFound = errors.New("video not found")
	// ErrMalformedResponse возвращается, когда в ответе нет snippet или contentDetails
	ErrMalformedResponse = errors.New("malformed YouTube API response")
)

var videoParts = []string{"snippet", "contentDetails"}

// Client получает метаданные видео через YouTube Data API v3.
type Client struct {
	service *yt.Service
	logger  *zap.Logger
}

// NewClient создает клиент YouTube Data API.
//
// Параметры:
//   - apiKey: серверный ключ API; пустой ключ не проверяется, ошибка проявится при запросе
//   - endpoint: базовый адрес API, пустая строка означает адрес по умолчанию
func NewClient(ctx context.Context, apiKey, endpoint string, logger *zap.Logger) (*Client, error) {
	var opts []option.ClientOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	} else {
		opts = append(opts, option.WithoutAuthentication())
	}
	if endpoint != "" {
		if !strings.HasSuffix(endpoint, "/") {
			endpoint += "/"
		}
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	service, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating youtube service: %w", err)
	}

	return &Client{
		service: service,
		logger:  logger,
	}, nil
}

// FetchMetadata запрашивает snippet и contentDetails для видео с идентификатором id
// и возвращает метаданные первого элемента ответа.
func (c *Client) FetchMetadata(ctx context.Context, id string) (*models.VideoMetadata, error) {
	resp, err := c.service.Videos.
		List(videoParts).
		Id(id).
		Context(ctx).
		Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			c.logger.Warn("YouTube API returned error status",
				zap.String("video_id", id),
				zap.Int("status", apiErr.Code),
				zap.String("message", apiErr.Message))
		}
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFetch, err)
	}

	if len(resp.Items) == 0 {
		return nil, ErrVideoNotFound
	}

	item := resp.Items[0]
	if item.Snippet == nil || item.ContentDetails == nil {
		return nil, ErrMalformedResponse
	}

	return &models.VideoMetadata{
		ID:          id,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		RawDuration: item.ContentDetails.Duration,
	}, nil
}
