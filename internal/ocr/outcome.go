package ocr

import (
	"fmt"
	"strings"
)

// Outcome is the result of one extraction attempt. It is exactly one of
// ServiceError, TextFound or NoTextFound.
type Outcome interface {
	isOutcome()
}

// ServiceError is reported by the remote service or raised by the transport
type ServiceError struct {
	Message string
}

// TextFound carries the full document text exactly as the service returned it
type TextFound struct {
	Text string
}

// NoTextFound means the service answered without an error and without text
type NoTextFound struct{}

func (ServiceError) isOutcome() {}
func (TextFound) isOutcome()    {}
func (NoTextFound) isOutcome()  {}

// Classify maps the two response fields onto an Outcome.
// An error message always wins over any text that came with it.
func Classify(errorMessage, fullText string) Outcome {
	if errorMessage != "" {
		return ServiceError{Message: errorMessage}
	}
	if fullText != "" {
		return TextFound{Text: fullText}
	}
	return NoTextFound{}
}

// Match calls exactly one of the handlers depending on the outcome variant.
// A nil outcome is treated as NoTextFound.
func Match[T any](o Outcome, onError func(ServiceError) T, onText func(TextFound) T, onNone func(NoTextFound) T) T {
	switch v := o.(type) {
	case ServiceError:
		return onError(v)
	case TextFound:
		return onText(v)
	case NoTextFound:
		return onNone(v)
	case nil:
		return onNone(NoTextFound{})
	default:
		panic(fmt.Sprintf("ocr: unknown outcome %T", o))
	}
}

// Diagnostic returns the user-facing message for an outcome
func Diagnostic(o Outcome) string {
	return Match(o,
		func(e ServiceError) string { return "Vision API Error: " + e.Message },
		func(TextFound) string { return "Text extraction successful!" },
		func(NoTextFound) string { return "No text found in the image by the API." },
	)
}

// Kind returns a stable machine-readable name for the outcome variant
func Kind(o Outcome) string {
	return Match(o,
		func(ServiceError) string { return "service_error" },
		func(TextFound) string { return "text_found" },
		func(NoTextFound) string { return "no_text_found" },
	)
}

// ExtractedText returns the text of a TextFound outcome
func ExtractedText(o Outcome) (string, bool) {
	t, ok := o.(TextFound)
	return t.Text, ok
}

// Lines splits text into the rows used by the tabular export.
// JoinLines(Lines(t)) == t for every t.
func Lines(text string) []string {
	return strings.Split(text, "\n")
}

// JoinLines is the inverse of Lines
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
