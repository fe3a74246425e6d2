// Command summarizer запускает веб-сервис, который по ссылке на YouTube-видео
// возвращает краткое резюме, сгенерированное языковой моделью.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/InQaaaaGit/yt_summary/internal/app"
	"github.com/InQaaaaGit/yt_summary/internal/buildinfo"
	"github.com/InQaaaaGit/yt_summary/internal/config"
	"github.com/InQaaaaGit/yt_summary/internal/server"
	"go.uber.org/zap"
)

// Заполняются при сборке: go build -ldflags "-X main.buildVersion=v1.0.0 ..."
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const envFile = ".env"

func main() {
	info := buildinfo.Resolve(buildVersion, buildDate, buildCommit)
	info.Print(os.Stdout)

	if _, err := config.LoadEnvFile(envFile); err != nil {
		log.Fatalf("Error loading %s: %v", envFile, err)
	}

	logger, cleanup := server.InitLogger()
	defer cleanup()

	logger.Info("Starting summarizer", info.Fields()...)

	cfg := server.InitConfig(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return
	}
}

// run создает приложение и обслуживает запросы до отмены ctx
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	application, err := app.NewApp(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("error creating application: %w", err)
	}
	return application.Run(ctx)
}
