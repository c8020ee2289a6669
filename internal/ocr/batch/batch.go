package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/marksalpeter/visionocr/internal/ocr"
)

// SamplePaths are processed by the batch command, relative to the base directory
var SamplePaths = []string{
	"sample_images/receipt1.jpg",
	"sample_images/receipt2.jpg",
	"sample_images/malaysia on china open source ai revolution.pdf",
}

// Extractor runs one extraction against a local path
type Extractor interface {
	ExtractFile(ctx context.Context, path string) (ocr.Outcome, error)
}

// Runner prints extraction results for a fixed list of files.
// Results go to out; diagnostics go to the logger.
type Runner struct {
	extractor Extractor
	out       io.Writer
	logger    *log.Logger
}

// New creates a new Runner instance
func New(extractor Extractor, out io.Writer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		extractor: extractor,
		out:       out,
		logger:    logger,
	}
}

// ExtractTextFromImage returns the text found in the image at path.
// ok is false when the file is missing, the client cannot be built, the service
// reports an error or the image has no text; each case is logged.
func (r *Runner) ExtractTextFromImage(ctx context.Context, path string) (text string, ok bool) {
	fmt.Fprintf(r.out, "Attempting to process image: %s\n", path)

	outcome, err := r.extractor.ExtractFile(ctx, path)
	switch {
	case errors.Is(err, ocr.ErrFileNotFound):
		r.logger.Error("Image file not found", "path", path, "err", err)
		return "", false
	case errors.Is(err, ocr.ErrClientInit):
		r.logger.Error("Error creating OCR client", "err", err)
		r.logger.Info("Ensure you have authenticated with `gcloud auth application-default login` and the Vision API is enabled in your GCP project.")
		return "", false
	case err != nil:
		r.logger.Error("Error loading image file", "path", path, "err", err)
		return "", false
	}

	res := ocr.Match(outcome,
		func(e ocr.ServiceError) extraction {
			r.logger.Error(ocr.Diagnostic(e), "path", path)
			r.logger.Info("For more info on error messages, check: https://cloud.google.com/apis/design/errors")
			return extraction{}
		},
		func(t ocr.TextFound) extraction {
			r.logger.Info(ocr.Diagnostic(t), "path", path)
			return extraction{text: t.Text, ok: true}
		},
		func(n ocr.NoTextFound) extraction {
			r.logger.Warn(ocr.Diagnostic(n), "path", path)
			return extraction{}
		},
	)
	return res.text, res.ok
}

type extraction struct {
	text string
	ok   bool
}

// Run processes every path in order. It always completes.
func (r *Runner) Run(ctx context.Context, paths []string) {
	fmt.Fprintln(r.out, "--- GCP OCR Text Extractor ---")

	for i, path := range paths {
		if ctx.Err() != nil {
			r.logger.Warn("Batch interrupted", "remaining", len(paths)-i)
			return
		}
		if i > 0 {
			fmt.Fprintf(r.out, "\n--- Processing %s ---\n", path)
		}

		text, ok := r.ExtractTextFromImage(ctx, path)
		if !ok {
			fmt.Fprintf(r.out, "Could not extract text from %s\n", path)
			continue
		}

		header := fmt.Sprintf("----- Extracted Text (%s) -----", path)
		fmt.Fprintf(r.out, "\n%s\n", header)
		// trimmed for display only
		fmt.Fprintln(r.out, strings.TrimSpace(text))
		fmt.Fprintln(r.out, strings.Repeat("-", len(header)))
	}
}
