package ocr

import (
	"context"
)

// TextDetector defines the interface for document text detection.
// Implementations never return a Go error: failures are reported as ServiceError.
//
//go:generate go run github.com/vektra/mockery/v2 --name TextDetector --inpackage
type TextDetector interface {
	// DetectDocumentText sends one image to the remote service and classifies the response
	DetectDocumentText(ctx context.Context, image []byte) Outcome
}

// DetectorFactory hands out the process-wide TextDetector
//
//go:generate go run github.com/vektra/mockery/v2 --name DetectorFactory --inpackage
type DetectorFactory interface {
	// Detector returns the cached detector, constructing it on first use
	Detector(ctx context.Context) (TextDetector, error)
}

// Repository defines the interface for file operations
//
//go:generate go run github.com/vektra/mockery/v2 --name Repository --inpackage
type Repository interface {
	// LoadImage reads a whole image file, resolving relative paths against the base directory
	LoadImage(path string) ([]byte, error)
	// SaveArtifact writes an export artifact to the output directory and returns its path
	SaveArtifact(artifact Artifact) (string, error)
}

// Exporter renders extracted text into a downloadable artifact
//
//go:generate go run github.com/vektra/mockery/v2 --name Exporter --inpackage
type Exporter interface {
	// Kind is the short export name, e.g. "txt"
	Kind() string
	// Export builds the artifact. sourceName is the uploaded filename and may be empty.
	Export(text, sourceName string) (Artifact, error)
}

// Upload is an image supplied interactively together with its declared metadata.
// Everything except Data is for display only.
type Upload struct {
	Name        string
	ContentType string
	Format      string
	Size        int64
	Width       int
	Height      int
	Data        []byte
}

// Artifact is a rendered export ready to be saved or downloaded
type Artifact struct {
	Kind        string
	Name        string
	ContentType string
	Data        []byte
}

// ExportResult is the result of one export path. Exactly one of Artifact and Err is meaningful.
type ExportResult struct {
	Kind     string
	Artifact Artifact
	Err      error
}
