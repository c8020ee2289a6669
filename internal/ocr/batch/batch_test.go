package batch

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/marksalpeter/visionocr/internal/ocr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRunner(t *testing.T) (*Runner, *ocr.MockRepository, *ocr.MockDetectorFactory, *ocr.MockTextDetector, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	repo := ocr.NewMockRepository(t)
	factory := ocr.NewMockDetectorFactory(t)
	detector := ocr.NewMockTextDetector(t)

	var out, logs bytes.Buffer
	logger := log.New(&logs)
	return New(ocr.NewApp(factory, repo), &out, logger), repo, factory, detector, &out, &logs
}

func TestRunner_ExtractTextFromImage(t *testing.T) {
	t.Run("text found", func(t *testing.T) {
		r, repo, factory, detector, out, _ := newRunner(t)
		repo.On("LoadImage", "sample_images/receipt1.jpg").Return([]byte("jpg"), nil)
		factory.On("Detector", mock.Anything).Return(detector, nil)
		detector.On("DetectDocumentText", mock.Anything, []byte("jpg")).Return(ocr.TextFound{Text: "  Total: $42.00\n"})

		text, ok := r.ExtractTextFromImage(context.Background(), "sample_images/receipt1.jpg")
		assert.True(t, ok)
		assert.Equal(t, "  Total: $42.00\n", text, "returned text is not trimmed")
		assert.Contains(t, out.String(), "Attempting to process image: sample_images/receipt1.jpg")
	})

	t.Run("missing file", func(t *testing.T) {
		r, repo, factory, detector, _, logs := newRunner(t)
		repo.On("LoadImage", "sample_images/missing.jpg").
			Return(nil, fmt.Errorf("%w: /base/sample_images/missing.jpg", ocr.ErrFileNotFound))

		text, ok := r.ExtractTextFromImage(context.Background(), "sample_images/missing.jpg")
		assert.False(t, ok)
		assert.Empty(t, text)
		assert.Contains(t, logs.String(), "Image file not found")

		factory.AssertNotCalled(t, "Detector", mock.Anything)
		detector.AssertNotCalled(t, "DetectDocumentText", mock.Anything, mock.Anything)
	})

	t.Run("client init failure", func(t *testing.T) {
		r, repo, factory, _, _, logs := newRunner(t)
		repo.On("LoadImage", "a.jpg").Return([]byte("jpg"), nil)
		factory.On("Detector", mock.Anything).Return(nil, fmt.Errorf("%w: no credentials", ocr.ErrClientInit))

		_, ok := r.ExtractTextFromImage(context.Background(), "a.jpg")
		assert.False(t, ok)
		assert.Contains(t, logs.String(), "Error creating OCR client")
	})

	t.Run("service error", func(t *testing.T) {
		r, repo, factory, detector, _, logs := newRunner(t)
		repo.On("LoadImage", "a.jpg").Return([]byte("jpg"), nil)
		factory.On("Detector", mock.Anything).Return(detector, nil)
		detector.On("DetectDocumentText", mock.Anything, mock.Anything).Return(ocr.ServiceError{Message: "Bad image data."})

		_, ok := r.ExtractTextFromImage(context.Background(), "a.jpg")
		assert.False(t, ok)
		assert.Contains(t, logs.String(), "Vision API Error: Bad image data.")
	})

	t.Run("no text", func(t *testing.T) {
		r, repo, factory, detector, _, logs := newRunner(t)
		repo.On("LoadImage", "a.jpg").Return([]byte("jpg"), nil)
		factory.On("Detector", mock.Anything).Return(detector, nil)
		detector.On("DetectDocumentText", mock.Anything, mock.Anything).Return(ocr.NoTextFound{})

		_, ok := r.ExtractTextFromImage(context.Background(), "a.jpg")
		assert.False(t, ok)
		assert.Contains(t, logs.String(), "No text found in the image by the API.")
	})
}

func TestRunner_Run(t *testing.T) {
	r, repo, factory, detector, out, _ := newRunner(t)
	repo.On("LoadImage", "one.jpg").Return([]byte("1"), nil)
	repo.On("LoadImage", "missing.jpg").Return(nil, fmt.Errorf("%w: missing.jpg", ocr.ErrFileNotFound))
	repo.On("LoadImage", "doc.pdf").Return([]byte("pdf"), nil)
	factory.On("Detector", mock.Anything).Return(detector, nil)
	detector.On("DetectDocumentText", mock.Anything, []byte("1")).Return(ocr.TextFound{Text: "\nReceipt one\n"})
	detector.On("DetectDocumentText", mock.Anything, []byte("pdf")).Return(ocr.ServiceError{Message: "Bad image data."})

	r.Run(context.Background(), []string{"one.jpg", "missing.jpg", "doc.pdf"})

	output := out.String()
	assert.True(t, strings.HasPrefix(output, "--- GCP OCR Text Extractor ---\n"))
	assert.Contains(t, output, "----- Extracted Text (one.jpg) -----\nReceipt one\n")
	assert.Contains(t, output, "Could not extract text from missing.jpg")
	assert.Contains(t, output, "Could not extract text from doc.pdf")

	// each path is loaded from its own location
	repo.AssertCalled(t, "LoadImage", "doc.pdf")
	detector.AssertCalled(t, "DetectDocumentText", mock.Anything, []byte("pdf"))
}

func TestRunner_Run_Cancelled(t *testing.T) {
	r, _, _, _, out, _ := newRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r.Run(ctx, SamplePaths)
	assert.Equal(t, "--- GCP OCR Text Extractor ---\n", out.String())
}

func TestSamplePaths_Distinct(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range SamplePaths {
		assert.False(t, seen[p], "duplicate sample path %s", p)
		seen[p] = true
	}
	assert.Contains(t, SamplePaths, "sample_images/malaysia on china open source ai revolution.pdf")
}
