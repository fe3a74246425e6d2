package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"
)

// JSONConfig описывает JSON-файл конфигурации.
// Указатели позволяют отличить отсутствующее поле от нулевого значения.
// Ключи API задаются только через окружение.
type JSONConfig struct {
	ServerAddress      *string `json:"server_address,omitempty"`
	EnableHTTPS        *bool   `json:"enable_https,omitempty"`
	TLSCertFile        *string `json:"tls_cert_file,omitempty"`
	TLSKeyFile         *string `json:"tls_key_file,omitempty"`
	YouTubeAPIEndpoint *string `json:"youtube_api_endpoint,omitempty"`
	SummaryProvider    *string `json:"summary_provider,omitempty"`
	GeminiModel        *string `json:"gemini_model,omitempty"`
	OpenAIBaseURL      *string `json:"openai_base_url,omitempty"`
	OpenAIModel        *string `json:"openai_model,omitempty"`
	MaxVideoDuration   *int    `json:"max_video_duration,omitempty"`
	ShutdownTimeout    *string `json:"shutdown_timeout,omitempty"` // Строка для time.ParseDuration, например "30s"
}

func lookupConfigFileEnv() (string, bool) {
	path, ok := os.LookupEnv("CONFIG")
	return path, ok && path != ""
}

// loadJSONConfig читает JSON-файл конфигурации.
// Пустое имя или отсутствующий файл дают пустую конфигурацию без ошибки.
func loadJSONConfig(filename string) (*JSONConfig, error) {
	cfg := &JSONConfig{}
	if filename == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file %s: %w", filename, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", filename, err)
	}
	return cfg, nil
}

// applyJSONConfig переносит заданные в файле значения в конфигурацию.
// Некорректный shutdown_timeout считается ошибкой файла.
func (c *Config) applyJSONConfig(jc *JSONConfig) error {
	if jc == nil {
		return nil
	}
	if jc.ServerAddress != nil {
		c.ServerAddress = *jc.ServerAddress
	}
	if jc.EnableHTTPS != nil {
		if *jc.EnableHTTPS {
			c.EnableHTTPS = strconv.FormatBool(true)
		} else {
			c.EnableHTTPS = ""
		}
	}
	if jc.TLSCertFile != nil {
		c.TLSCertFile = *jc.TLSCertFile
	}
	if jc.TLSKeyFile != nil {
		c.TLSKeyFile = *jc.TLSKeyFile
	}
	if jc.YouTubeAPIEndpoint != nil {
		c.YouTubeAPIEndpoint = *jc.YouTubeAPIEndpoint
	}
	if jc.SummaryProvider != nil {
		c.SummaryProvider = *jc.SummaryProvider
	}
	if jc.GeminiModel != nil {
		c.GeminiModel = *jc.GeminiModel
	}
	if jc.OpenAIBaseURL != nil {
		c.OpenAIBaseURL = *jc.OpenAIBaseURL
	}
	if jc.OpenAIModel != nil {
		c.OpenAIModel = *jc.OpenAIModel
	}
	if jc.MaxVideoDuration != nil {
		c.MaxVideoDuration = *jc.MaxVideoDuration
	}
	if jc.ShutdownTimeout != nil {
		d, err := time.ParseDuration(*jc.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("error parsing shutdown_timeout %q: %w", *jc.ShutdownTimeout, err)
		}
		c.ShutdownTimeout = d
	}
	return nil
}
