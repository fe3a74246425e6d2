// Package app содержит основную структуру приложения и логику инициализации.
// Связывает клиентов внешних API, сервис резюме и HTTP-обработчики в один роутер.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/InQaaaaGit/yt_summary/internal/config"
	"github.com/InQaaaaGit/yt_summary/internal/handler"
	"github.com/InQaaaaGit/yt_summary/internal/middleware"
	"github.com/InQaaaaGit/yt_summary/internal/server"
	"github.com/InQaaaaGit/yt_summary/internal/service"
	"github.com/InQaaaaGit/yt_summary/internal/summary"
	"github.com/InQaaaaGit/yt_summary/internal/ui"
	"github.com/InQaaaaGit/yt_summary/internal/youtube"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Таймауты HTTP-сервера. Запись ответа ждет генерацию текста моделью, поэтому она дольше чтения.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 120 * time.Second
	idleTimeout  = 120 * time.Second
)

// App представляет приложение сервиса резюме видео.
// Инкапсулирует конфигурацию, HTTP роутер, логгер и обработчики запросов.
type App struct {
	config  *config.Config   // Конфигурация приложения
	router  *chi.Mux         // HTTP роутер для обработки запросов
	logger  *zap.Logger      // Логгер для записи событий приложения
	handler *handler.Handler // Обработчики HTTP запросов
}

// NewApp создает приложение и все его зависимости.
//
// Параметры:
//   - ctx: контекст для создания клиентов внешних API
//   - cfg: конфигурация приложения
//   - logger: логгер приложения
//
// Отсутствие API-ключей не считается ошибкой: запросы к соответствующим API
// будут завершаться ошибкой во время обработки.
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	videos, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey, cfg.YouTubeAPIEndpoint, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating youtube client: %w", err)
	}

	backend, err := summary.NewBackend(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating summary backend: %w", err)
	}

	page, err := ui.NewPage()
	if err != nil {
		return nil, fmt.Errorf("error creating page: %w", err)
	}

	svc := service.NewSummaryService(cfg, videos, summary.NewGenerator(backend, logger), logger)

	return newApp(cfg, handler.NewHandler(svc, logger, page), logger), nil
}

func newApp(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *App {
	a := &App{
		config:  cfg,
		router:  chi.NewRouter(),
		logger:  logger,
		handler: h,
	}
	a.setupRoutes()
	return a
}

// setupRoutes регистрирует middleware и маршруты.
// Recoverer стоит после логирования, чтобы восстановленная паника попала в журнал как 500.
func (a *App) setupRoutes() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.LoggerMiddleware(a.logger))
	a.router.Use(middleware.Recoverer(a.logger, handler.MessageUnexpected))
	a.router.Use(middleware.GzipMiddleware)

	a.router.Get("/", a.handler.HandleIndex)
	a.router.Post(handler.SummarizeEndpoint, a.handler.HandleSummarize)
	a.router.Get("/ping", a.handler.HandlePing)
}

// Router возвращает настроенный роутер
func (a *App) Router() http.Handler {
	return a.router
}

// GetServer создает и возвращает настроенный HTTP сервер.
func (a *App) GetServer() *http.Server {
	return &http.Server{
		Addr:         a.config.ServerAddress,
		Handler:      a.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
}

// Run запускает HTTP или HTTPS сервер и блокируется до отмены ctx.
// После отмены сервер корректно завершает активные запросы.
func (a *App) Run(ctx context.Context) error {
	return server.NewHTTPServer(a.GetServer(), a.config, a.logger).Run(ctx)
}
