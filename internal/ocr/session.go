package ocr

import (
	"context"
	"fmt"
)

// State is the position of an interactive session in its lifecycle
type State int

const (
	StateNoFile State = iota
	StateFileChosen
	StateExtracting
	StateResultAvailable
	StateExtractionFailed
)

func (s State) String() string {
	switch s {
	case StateNoFile:
		return "no_file"
	case StateFileChosen:
		return "file_chosen"
	case StateExtracting:
		return "extracting"
	case StateResultAvailable:
		return "result_available"
	case StateExtractionFailed:
		return "extraction_failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session holds the state of one interactive user: the chosen upload and the
// most recent outcome. It is owned by a single caller and is not safe for
// concurrent use.
type Session struct {
	factory   DetectorFactory
	exporters []Exporter

	state   State
	upload  *Upload
	outcome Outcome
	err     error
}

// NewSession creates a session in the NoFile state
func NewSession(factory DetectorFactory, exporters ...Exporter) *Session {
	return &Session{
		factory:   factory,
		exporters: exporters,
	}
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// Upload returns the chosen upload, or nil in the NoFile state
func (s *Session) Upload() *Upload {
	return s.upload
}

// Outcome returns the most recent outcome, or nil if there is none
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Err returns the setup error of the last failed extraction
func (s *Session) Err() error {
	return s.err
}

// Choose replaces the current file and discards any previous result
func (s *Session) Choose(upload Upload) {
	s.upload = &upload
	s.outcome = nil
	s.err = nil
	s.state = StateFileChosen
}

// Extract runs one extraction on the chosen file.
// It returns an error only for setup failures; service failures are part of the Outcome.
func (s *Session) Extract(ctx context.Context) (Outcome, error) {
	if s.upload == nil {
		return nil, ErrNoFileChosen
	}

	s.state = StateExtracting
	s.outcome = nil
	s.err = nil

	detector, err := s.factory.Detector(ctx)
	if err != nil {
		s.err = err
		s.state = StateExtractionFailed
		return nil, err
	}

	s.outcome = detector.DetectDocumentText(ctx, s.upload.Data)
	s.state = Match(s.outcome,
		func(ServiceError) State { return StateExtractionFailed },
		func(TextFound) State { return StateResultAvailable },
		func(NoTextFound) State { return StateExtractionFailed },
	)
	return s.outcome, nil
}

// Exports renders every export of the current result.
// It returns nil unless the last outcome is TextFound.
func (s *Session) Exports() []ExportResult {
	text, ok := ExtractedText(s.outcome)
	if !ok {
		return nil
	}

	results := make([]ExportResult, 0, len(s.exporters))
	for _, exporter := range s.exporters {
		results = append(results, runExporter(exporter, text, s.upload.Name))
	}
	return results
}

// Export renders the export of the given kind
func (s *Session) Export(kind string) (ExportResult, bool) {
	text, ok := ExtractedText(s.outcome)
	if !ok {
		return ExportResult{}, false
	}
	for _, exporter := range s.exporters {
		if kind != "" && kindOf(exporter) == kind {
			return runExporter(exporter, text, s.upload.Name), true
		}
	}
	return ExportResult{}, false
}

// kindOf returns the exporter's kind, or "" if asking for it panics
func kindOf(exporter Exporter) (kind string) {
	defer func() {
		if recover() != nil {
			kind = ""
		}
	}()
	return exporter.Kind()
}

// runExporter isolates one export path so that a panic in it is reported as its error
func runExporter(exporter Exporter, text, sourceName string) (result ExportResult) {
	defer func() {
		if r := recover(); r != nil {
			result.Artifact = Artifact{}
			result.Err = fmt.Errorf("export %q panicked: %v", result.Kind, r)
		}
	}()
	result.Kind = exporter.Kind()
	result.Artifact, result.Err = exporter.Export(text, sourceName)
	return result
}
