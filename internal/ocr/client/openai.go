package client

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/marksalpeter/visionocr/internal/ocr"
	"github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel supports image input
const DefaultOpenAIModel = "gpt-4o"

// APIError represents an error from the API with status code
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.Status, e.Message)
}

var (
	// ErrAPIRequestFailed is returned when an API request fails
	ErrAPIRequestFailed = fmt.Errorf("API request failed")
	// ErrRefusalResponse is returned when the model refuses to process an image
	ErrRefusalResponse = fmt.Errorf("model refused to process image")
)

// chatAPI is the subset of openai.Client used by OpenAI
type chatAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// OpenAI implements ocr.TextDetector by asking a vision model for a verbatim transcription
type OpenAI struct {
	api    chatAPI
	model  string
	logger *log.Logger
}

// DialOpenAI creates an OpenAI detector and validates the API key against the models endpoint
func DialOpenAI(ctx context.Context, apiKey, model string, logger *log.Logger) (*OpenAI, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	c := newOpenAI(openai.NewClient(apiKey), model, logger)
	if err := c.ValidateAPIKey(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func newOpenAI(api chatAPI, model string, logger *log.Logger) *OpenAI {
	if model == "" {
		model = DefaultOpenAIModel
	}
	if logger == nil {
		logger = log.Default()
	}
	return &OpenAI{
		api:    api,
		model:  model,
		logger: logger,
	}
}

// ValidateAPIKey lists models to check that the key is accepted
func (c *OpenAI) ValidateAPIKey(ctx context.Context) error {
	if _, err := c.api.ListModels(ctx); err != nil {
		return toAPIError(err)
	}
	return nil
}

// DetectDocumentText performs a single transcription request. There are no retries.
func (c *OpenAI) DetectDocumentText(ctx context.Context, image []byte) ocr.Outcome {
	if c == nil || c.api == nil {
		return ocr.ServiceError{Message: ocr.ErrClientUnavailable.Error()}
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: `
You are a professional OCR (Optical Character Recognition) transcription service.
Your sole purpose is to convert images of text into machine-readable text format.

Transcribe ALL visible text exactly as it appears, including:
- Handwritten text
- Printed text
- Numbers, dates and amounts
- Preserving line breaks
- Preserving spacing
- Preserving punctuation

Do not summarize, interpret, or modify the text, simply transcribe what you see.
If the image contains no text at all, respond with an empty message.
`,
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: "Transcribe all text visible in this image exactly as it appears. Do not include any other text in your response.",
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: fmt.Sprintf("data:%s;base64,%s", http.DetectContentType(image), base64.StdEncoding.EncodeToString(image)),
						},
					},
				},
			},
		},
		MaxTokens:   4096,
		Temperature: 0.1,
	}

	c.logger.Debug("Sending image to OpenAI", "model", c.model, "bytes", len(image))
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		c.logger.Error("OpenAI request failed", "err", err)
		return ocr.ServiceError{Message: toAPIError(err).Error()}
	}

	if len(resp.Choices) == 0 {
		return ocr.ServiceError{Message: fmt.Sprintf("%v: no choices in response", ErrAPIRequestFailed)}
	}

	text := resp.Choices[0].Message.Content
	if isRefusalResponse(text) {
		return ocr.ServiceError{Message: fmt.Sprintf("%v: %s", ErrRefusalResponse, text)}
	}

	return ocr.Classify("", text)
}

func toAPIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Status:  apiErr.HTTPStatusCode,
			Message: apiErr.Message,
		}
	}
	return fmt.Errorf("%w: %v", ErrAPIRequestFailed, err)
}

// isRefusalResponse checks if the response indicates the model refused to process the image
func isRefusalResponse(text string) bool {
	if text == "" {
		return false
	}

	textLower := strings.ToLower(strings.TrimSpace(text))

	// "sorry" + "can't/cannot/unable" + "transcribe"
	if strings.Contains(textLower, "sorry") && strings.Contains(textLower, "transcribe") {
		if strings.Contains(textLower, "can't") || strings.Contains(textLower, "cannot") || strings.Contains(textLower, "unable") {
			return true
		}
	}

	// Short responses are almost never a real page
	if len(text) < 100 {
		shortRefusalPatterns := []string{
			"i'm sorry",
			"i can't",
			"i cannot",
			"unable to",
			"can't assist",
			"can't help",
			"i'm unable",
		}
		for _, pattern := range shortRefusalPatterns {
			if strings.Contains(textLower, pattern) {
				return true
			}
		}
	}

	refusalPatterns := []string{
		"i'm sorry, i can't",
		"i'm sorry, i cannot",
		"i can't assist",
		"i cannot assist",
		"i'm unable to assist",
		"unable to transcribe",
		"can't transcribe",
		"cannot transcribe",
		"content policy",
		"against my usage policies",
		"against my guidelines",
		"not able to transcribe",
	}
	for _, pattern := range refusalPatterns {
		if strings.Contains(textLower, pattern) {
			return true
		}
	}

	return false
}
