package ocr

import (
	"context"
	"fmt"
)

// App wires the loader, the client factory and the exporters together
type App struct {
	factory   DetectorFactory
	repo      Repository
	exporters []Exporter
}

// NewApp creates a new App instance
func NewApp(factory DetectorFactory, repo Repository, exporters ...Exporter) *App {
	return &App{
		factory:   factory,
		repo:      repo,
		exporters: exporters,
	}
}

// ExtractFile loads a local image and runs one extraction on it.
// A missing file is reported before the client is built or the service is called.
func (a *App) ExtractFile(ctx context.Context, path string) (Outcome, error) {
	image, err := a.repo.LoadImage(path)
	if err != nil {
		return nil, err
	}

	detector, err := a.factory.Detector(ctx)
	if err != nil {
		return nil, err
	}

	return detector.DetectDocumentText(ctx, image), nil
}

// NewSession starts an interactive session bound to this app's factory and exporters
func (a *App) NewSession() *Session {
	return NewSession(a.factory, a.exporters...)
}

// CanExport reports whether an exporter of the given kind is configured
func (a *App) CanExport(kind string) bool {
	for _, exporter := range a.exporters {
		if kind != "" && kindOf(exporter) == kind {
			return true
		}
	}
	return false
}

// SaveExport writes the export of the given kind
func (a *App) SaveExport(s *Session, kind string) (string, error) {
	result, ok := s.Export(kind)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoExport, kind)
	}
	if result.Err != nil {
		return "", fmt.Errorf("error preparing %s export: %w", kind, result.Err)
	}
	path, err := a.repo.SaveArtifact(result.Artifact)
	if err != nil {
		return "", fmt.Errorf("error saving %s export: %w", kind, err)
	}
	return path, nil
}
