package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/marksalpeter/visionocr/internal/ocr"
)

const (
	// KindText is the plain-text export
	KindText = "txt"
	// KindCSV is the row-per-line tabular export
	KindCSV = "csv"

	// DefaultBaseName is used when the source file name is unknown
	DefaultBaseName = "ocr_output"
	// CSVHeader is the single column of the tabular export
	CSVHeader = "LineText"
)

var (
	// ErrInvalidEncoding is returned when the text is not valid UTF-8
	ErrInvalidEncoding = fmt.Errorf("text is not valid UTF-8")
)

// BaseName strips the directory and the last extension from a source file name
func BaseName(sourceName string) string {
	if sourceName == "" {
		return DefaultBaseName
	}
	base := filepath.Base(sourceName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return DefaultBaseName
	}
	return base
}

// Text implements ocr.Exporter for the raw text file
type Text struct{}

// Kind returns "txt"
func (Text) Kind() string { return KindText }

// Export returns the exact UTF-8 bytes of the text
func (Text) Export(text, sourceName string) (ocr.Artifact, error) {
	if !utf8.ValidString(text) {
		return ocr.Artifact{}, ErrInvalidEncoding
	}
	return ocr.Artifact{
		Kind:        KindText,
		Name:        BaseName(sourceName) + "_extracted_text.txt",
		ContentType: "text/plain; charset=utf-8",
		Data:        []byte(text),
	}, nil
}

// CSV implements ocr.Exporter for the one-column, row-per-line table
type CSV struct{}

// Kind returns "csv"
func (CSV) Kind() string { return KindCSV }

// Export writes a LineText header and one row per line of text
func (CSV) Export(text, sourceName string) (ocr.Artifact, error) {
	if !utf8.ValidString(text) {
		return ocr.Artifact{}, ErrInvalidEncoding
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{CSVHeader}); err != nil {
		return ocr.Artifact{}, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, line := range ocr.Lines(text) {
		if line == "" {
			// A bare empty record would be an empty line, which CSV readers skip.
			w.Flush()
			buf.WriteString("\"\"\n")
			continue
		}
		if err := w.Write([]string{line}); err != nil {
			return ocr.Artifact{}, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return ocr.Artifact{}, fmt.Errorf("failed to write CSV: %w", err)
	}

	return ocr.Artifact{
		Kind:        KindCSV,
		Name:        BaseName(sourceName) + "_extracted_lines.csv",
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

// Defaults returns the exporters offered for every TextFound outcome
func Defaults() []ocr.Exporter {
	return []ocr.Exporter{Text{}, CSV{}}
}
