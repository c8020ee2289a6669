package client

import (
	"context"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/charmbracelet/log"
	gax "github.com/googleapis/gax-go/v2"
	"github.com/marksalpeter/visionocr/internal/ocr"
	"google.golang.org/api/option"
	"google.golang.org/grpc/status"
)

// Annotator is the subset of vision.ImageAnnotatorClient used by Vision.
// Ref: https://pkg.go.dev/cloud.google.com/go/vision/v2/apiv1
type Annotator interface {
	BatchAnnotateImages(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest, opts ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error)
	Close() error
}

// Vision implements ocr.TextDetector with Google Cloud Vision document text detection
type Vision struct {
	annotator Annotator
	logger    *log.Logger
}

// NewVision wraps an existing annotator. A nil client, including a typed nil
// *vision.ImageAnnotatorClient, yields a Vision that reports the client as unavailable.
func NewVision(annotator Annotator, logger *log.Logger) *Vision {
	if c, ok := annotator.(*vision.ImageAnnotatorClient); ok && c == nil {
		annotator = nil
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Vision{
		annotator: annotator,
		logger:    logger,
	}
}

// DialVision builds a Vision client. Credentials come from the environment (Application Default Credentials).
func DialVision(ctx context.Context, logger *log.Logger, opts ...option.ClientOption) (*Vision, error) {
	annotator, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return NewVision(annotator, logger), nil
}

// DetectDocumentText issues one synchronous DOCUMENT_TEXT_DETECTION request
func (v *Vision) DetectDocumentText(ctx context.Context, image []byte) ocr.Outcome {
	if v == nil || v.annotator == nil {
		return ocr.ServiceError{Message: ocr.ErrClientUnavailable.Error()}
	}

	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: image},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION},
				},
			},
		},
	}

	v.logger.Debug("Sending image to Google Cloud Vision API", "bytes", len(image))
	resp, err := v.annotator.BatchAnnotateImages(ctx, req)
	if err != nil {
		v.logger.Error("Vision API request failed", "code", status.Code(err), "err", err)
		return ocr.ServiceError{Message: err.Error()}
	}

	responses := resp.GetResponses()
	if len(responses) == 0 {
		return ocr.NoTextFound{}
	}
	res := responses[0]
	return ocr.Classify(res.GetError().GetMessage(), res.GetFullTextAnnotation().GetText())
}

// Close releases the underlying connection
func (v *Vision) Close() error {
	if v == nil || v.annotator == nil {
		return nil
	}
	return v.annotator.Close()
}
