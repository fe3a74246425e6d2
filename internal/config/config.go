// Package config собирает конфигурацию сервиса из значений по умолчанию,
// JSON-файла, флагов командной строки и переменных окружения.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Поддерживаемые генеративные API
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Значения по умолчанию
const (
	DefaultServerAddress    = ":8080"
	DefaultTLSCertFile      = "server.crt"
	DefaultTLSKeyFile       = "server.key"
	DefaultGeminiModel      = "gemini-2.0-flash"
	DefaultOpenAIModel      = "gpt-4o-mini"
	DefaultMaxVideoDuration = 3600
	DefaultShutdownTimeout  = 30 * time.Second
)

// Config хранит конфигурацию приложения.
type Config struct {
	ServerAddress string `env:"SERVER_ADDRESS"` // Адрес для запуска HTTP-сервера
	ConfigFile    string `env:"CONFIG"`         // Путь к JSON-файлу конфигурации
	EnableHTTPS   string `env:"ENABLE_HTTPS"`   // Любое непустое значение включает HTTPS
	TLSCertFile   string `env:"TLS_CERT_FILE"`
	TLSKeyFile    string `env:"TLS_KEY_FILE"`

	YouTubeAPIKey      string `env:"YOUTUBE_API_KEY"`
	YouTubeAPIEndpoint string `env:"YOUTUBE_API_ENDPOINT"` // Пустое значение - адрес Google по умолчанию

	SummaryProvider string `env:"SUMMARY_PROVIDER"` // gemini или openai
	GeminiAPIKey    string `env:"GOOGLE_AI_API_KEY"`
	GeminiModel     string `env:"GEMINI_MODEL"`
	GeminiBaseURL   string `env:"GEMINI_BASE_URL"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL   string `env:"OPENAI_BASE_URL"`
	OpenAIModel     string `env:"OPENAI_MODEL"`

	MaxVideoDuration int           `env:"MAX_VIDEO_DURATION"` // Максимальная длительность видео в секундах
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// defaultConfig возвращает конфигурацию со значениями по умолчанию.
func defaultConfig() *Config {
	return &Config{
		ServerAddress:    DefaultServerAddress,
		TLSCertFile:      DefaultTLSCertFile,
		TLSKeyFile:       DefaultTLSKeyFile,
		SummaryProvider:  ProviderGemini,
		GeminiModel:      DefaultGeminiModel,
		OpenAIModel:      DefaultOpenAIModel,
		MaxVideoDuration: DefaultMaxVideoDuration,
		ShutdownTimeout:  DefaultShutdownTimeout,
	}
}

// NewConfig инициализирует конфигурацию.
// Приоритет (от низшего к высшему): значения по умолчанию, JSON-файл,
// флаги командной строки, переменные окружения.
func NewConfig() (*Config, error) {
	cfg := defaultConfig()

	// 1. Флаги пишем во временную копию, чтобы применить их поверх JSON-файла
	flags := *cfg
	flag.StringVar(&flags.ServerAddress, "a", flags.ServerAddress, "Адрес запуска HTTP-сервера (env: SERVER_ADDRESS)")
	flag.StringVar(&flags.ConfigFile, "c", flags.ConfigFile, "Путь к JSON-файлу конфигурации (env: CONFIG)")
	flag.StringVar(&flags.EnableHTTPS, "s", flags.EnableHTTPS, "Включить HTTPS (env: ENABLE_HTTPS)")
	flag.StringVar(&flags.TLSCertFile, "cert", flags.TLSCertFile, "Файл TLS-сертификата (env: TLS_CERT_FILE)")
	flag.StringVar(&flags.TLSKeyFile, "key", flags.TLSKeyFile, "Файл TLS-ключа (env: TLS_KEY_FILE)")
	flag.StringVar(&flags.SummaryProvider, "provider", flags.SummaryProvider, "Генеративный API: gemini или openai (env: SUMMARY_PROVIDER)")
	flag.StringVar(&flags.GeminiModel, "model", flags.GeminiModel, "Модель Gemini (env: GEMINI_MODEL)")
	flag.IntVar(&flags.MaxVideoDuration, "max-duration", flags.MaxVideoDuration, "Максимальная длительность видео в секундах (env: MAX_VIDEO_DURATION)")

	// 2. Парсинг флагов командной строки
	flag.Parse()

	// 3. JSON-файл: путь берем из флага или переменной окружения
	configFile := flags.ConfigFile
	if path, ok := lookupConfigFileEnv(); ok {
		configFile = path
	}
	jsonConfig, err := loadJSONConfig(configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyJSONConfig(jsonConfig); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configFile, err)
	}
	cfg.ConfigFile = configFile

	// 4. Явно заданные флаги перекрывают JSON
	flag.Visit(func(f *flag.Flag) {
		cfg.applyFlag(f.Name, &flags)
	})

	// 5. Парсинг переменных окружения (имеет наивысший приоритет)
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyFlag копирует значение флага name из src в c.
func (c *Config) applyFlag(name string, src *Config) {
	switch name {
	case "a":
		c.ServerAddress = src.ServerAddress
	case "s":
		c.EnableHTTPS = src.EnableHTTPS
	case "cert":
		c.TLSCertFile = src.TLSCertFile
	case "key":
		c.TLSKeyFile = src.TLSKeyFile
	case "provider":
		c.SummaryProvider = src.SummaryProvider
	case "model":
		c.GeminiModel = src.GeminiModel
	case "max-duration":
		c.MaxVideoDuration = src.MaxVideoDuration
	}
}

// IsHTTPSEnabled сообщает, включен ли HTTPS
func (c *Config) IsHTTPSEnabled() bool {
	return c.EnableHTTPS != ""
}

// Validate проверяет настройки, без которых сервис не может стартовать.
// Отсутствие ключей API сюда не входит, см. MissingKeys.
func (c *Config) Validate() error {
	var errs []error
	if c.SummaryProvider != ProviderGemini && c.SummaryProvider != ProviderOpenAI {
		errs = append(errs, fmt.Errorf("unknown summary provider %q", c.SummaryProvider))
	}
	if c.MaxVideoDuration <= 0 {
		errs = append(errs, fmt.Errorf("max video duration must be positive, got %d", c.MaxVideoDuration))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout))
	}
	return errors.Join(errs...)
}

// MissingKeys возвращает имена переменных окружения с ключами API,
// которые нужны выбранной конфигурации, но не заданы.
func (c *Config) MissingKeys() []string {
	var missing []string
	if c.YouTubeAPIKey == "" {
		missing = append(missing, "YOUTUBE_API_KEY")
	}
	switch c.SummaryProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			missing = append(missing, "GOOGLE_AI_API_KEY")
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			missing = append(missing, "OPENAI_API_KEY")
		}
	}
	return missing
}
