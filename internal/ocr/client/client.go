package client

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/marksalpeter/visionocr/internal/ocr"
	"google.golang.org/api/option"
)

// Backend names a remote text detection service
type Backend string

const (
	// BackendVision is Google Cloud Vision document text detection
	BackendVision Backend = "vision"
	// BackendOpenAI transcribes images with an OpenAI vision model
	BackendOpenAI Backend = "openai"
)

var (
	// ErrUnknownBackend is returned for a backend name the factory cannot build
	ErrUnknownBackend = fmt.Errorf("unknown OCR backend")
	// ErrMissingAPIKey is returned when the OpenAI backend has no API key
	ErrMissingAPIKey = fmt.Errorf("missing API key")
)

// Options selects and configures the backend built by the factory
type Options struct {
	Backend      Backend
	Vision       []option.ClientOption
	OpenAIAPIKey string
	OpenAIModel  string
}

type connectFunc func(ctx context.Context) (ocr.TextDetector, error)

// Factory implements ocr.DetectorFactory. The first successful construction
// is cached for the life of the factory; a failed one is retried on the next call.
type Factory struct {
	mu       sync.Mutex
	connect  connectFunc
	logger   *log.Logger
	detector ocr.TextDetector
}

// NewFactory creates a factory for the configured backend. No connection is made until Detector is called.
func NewFactory(opts Options, logger *log.Logger) (*Factory, error) {
	if logger == nil {
		logger = log.Default()
	}

	var connect connectFunc
	switch opts.Backend {
	case BackendVision, "":
		connect = func(ctx context.Context) (ocr.TextDetector, error) {
			return DialVision(ctx, logger, opts.Vision...)
		}
	case BackendOpenAI:
		connect = func(ctx context.Context) (ocr.TextDetector, error) {
			return DialOpenAI(ctx, opts.OpenAIAPIKey, opts.OpenAIModel, logger)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}

	return newFactory(connect, logger), nil
}

func newFactory(connect connectFunc, logger *log.Logger) *Factory {
	return &Factory{
		connect: connect,
		logger:  logger,
	}
}

// Detector returns the cached detector, constructing it on first use
func (f *Factory) Detector(ctx context.Context) (ocr.TextDetector, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.detector != nil {
		return f.detector, nil
	}

	detector, err := f.connect(ctx)
	if err != nil {
		f.logger.Error("Error initializing OCR client", "err", err)
		return nil, fmt.Errorf("%w: %v", ocr.ErrClientInit, err)
	}
	if detector == nil {
		return nil, fmt.Errorf("%w: %v", ocr.ErrClientInit, ocr.ErrClientUnavailable)
	}

	f.logger.Debug("OCR client initialized")
	f.detector = detector
	return detector, nil
}

// Close releases the cached detector, if any
func (f *Factory) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.detector == nil {
		return nil
	}
	detector := f.detector
	f.detector = nil
	if closer, ok := detector.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
