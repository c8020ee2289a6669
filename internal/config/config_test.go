package config

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/marksalpeter/visionocr/internal/ocr/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "production")
	for _, k := range []string{
		"OCR_BASE_DIR", "OCR_OUTPUT_DIR", "OCR_LISTEN_ADDR", "OCR_BACKEND",
		"VISION_ENDPOINT", "GOOGLE_CLOUD_QUOTA_PROJECT", "OPENAI_API_KEY",
		"OPENAI_MODEL", "OCR_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8501", cfg.ListenAddr)
	assert.Equal(t, client.BackendVision, cfg.Backend)
	assert.Equal(t, client.DefaultOpenAIModel, cfg.OpenAIModel)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel)
	assert.Empty(t, cfg.BaseDir)
	assert.Empty(t, cfg.VisionOptions())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OCR_BASE_DIR", "/srv/ocr")
	t.Setenv("OCR_OUTPUT_DIR", "/tmp/out")
	t.Setenv("OCR_LISTEN_ADDR", ":9000")
	t.Setenv("OCR_BACKEND", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("VISION_ENDPOINT", "eu-vision.googleapis.com:443")
	t.Setenv("GOOGLE_CLOUD_QUOTA_PROJECT", "my-project")
	t.Setenv("OCR_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/ocr", cfg.BaseDir)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, client.BackendOpenAI, cfg.Backend)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel)
	assert.Len(t, cfg.VisionOptions(), 2)

	opts := cfg.ClientOptions()
	assert.Equal(t, client.BackendOpenAI, opts.Backend)
	assert.Equal(t, "sk-test", opts.OpenAIAPIKey)
	assert.Len(t, opts.Vision, 2)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("backend", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("OCR_BACKEND", "tesseract")
		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("log level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("OCR_LOG_LEVEL", "loud")
		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{LogLevel: log.WarnLevel}
	logger := cfg.NewLogger("ocr")
	require.NotNil(t, logger)
	assert.Equal(t, log.WarnLevel, logger.GetLevel())
	assert.Equal(t, "ocr", logger.GetPrefix())
}
