package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/marksalpeter/visionocr/internal/ocr/client"
	"google.golang.org/api/option"
)

// ErrInvalidConfig is returned when an environment value cannot be used
var ErrInvalidConfig = fmt.Errorf("invalid configuration")

// Config is read from the environment. Credentials for the remote service are
// never part of it: Vision uses Application Default Credentials.
type Config struct {
	BaseDir    string
	OutputDir  string
	ListenAddr string

	Backend      client.Backend
	Endpoint     string
	QuotaProject string
	OpenAIAPIKey string
	OpenAIModel  string

	LogLevel log.Level
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads .env (outside production) and the process environment
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := &Config{
		BaseDir:      os.Getenv("OCR_BASE_DIR"),
		OutputDir:    os.Getenv("OCR_OUTPUT_DIR"),
		ListenAddr:   getEnv("OCR_LISTEN_ADDR", ":8501"),
		Backend:      client.Backend(strings.ToLower(getEnv("OCR_BACKEND", string(client.BackendVision)))),
		Endpoint:     os.Getenv("VISION_ENDPOINT"),
		QuotaProject: os.Getenv("GOOGLE_CLOUD_QUOTA_PROJECT"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnv("OPENAI_MODEL", client.DefaultOpenAIModel),
	}

	switch cfg.Backend {
	case client.BackendVision, client.BackendOpenAI:
	default:
		return nil, fmt.Errorf("%w: OCR_BACKEND must be %q or %q, got %q", ErrInvalidConfig, client.BackendVision, client.BackendOpenAI, cfg.Backend)
	}

	level, err := log.ParseLevel(getEnv("OCR_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("%w: OCR_LOG_LEVEL: %v", ErrInvalidConfig, err)
	}
	cfg.LogLevel = level

	return cfg, nil
}

// VisionOptions returns the client options for the Vision API
func (c *Config) VisionOptions() []option.ClientOption {
	var opts []option.ClientOption
	if c.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.Endpoint))
	}
	if c.QuotaProject != "" {
		opts = append(opts, option.WithQuotaProject(c.QuotaProject))
	}
	return opts
}

// ClientOptions returns the factory options for the configured backend
func (c *Config) ClientOptions() client.Options {
	return client.Options{
		Backend:      c.Backend,
		Vision:       c.VisionOptions(),
		OpenAIAPIKey: c.OpenAIAPIKey,
		OpenAIModel:  c.OpenAIModel,
	}
}

// NewLogger builds the process logger
func (c *Config) NewLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           c.LogLevel,
	})
}
