package server

import (
	"github.com/dustin/go-humanize"
	"github.com/marksalpeter/visionocr/internal/ocr"
)

type fileJSON struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Format        string `json:"format"`
	Size          int64  `json:"size"`
	SizeFormatted string `json:"size_formatted"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
}

type outcomeJSON struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Text    string `json:"text,omitempty"`
}

type exportJSON struct {
	Kind        string `json:"kind"`
	Name        string `json:"name,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Data        []byte `json:"data,omitempty"`
	Error       string `json:"error,omitempty"`
}

type extractResponse struct {
	RequestID string       `json:"request_id"`
	State     string       `json:"state"`
	File      fileJSON     `json:"file"`
	Outcome   outcomeJSON  `json:"outcome"`
	Exports   []exportJSON `json:"exports"`
}

func newOutcomeJSON(o ocr.Outcome) outcomeJSON {
	text, _ := ocr.ExtractedText(o)
	return outcomeJSON{
		Kind:    ocr.Kind(o),
		Message: ocr.Diagnostic(o),
		Text:    text,
	}
}

func newExtractResponse(requestID string, s *ocr.Session) extractResponse {
	upload := s.Upload()
	resp := extractResponse{
		RequestID: requestID,
		State:     s.State().String(),
		File: fileJSON{
			Name:          upload.Name,
			Type:          upload.ContentType,
			Format:        upload.Format,
			Size:          upload.Size,
			SizeFormatted: humanize.Bytes(uint64(upload.Size)),
			Width:         upload.Width,
			Height:        upload.Height,
		},
		Outcome: newOutcomeJSON(s.Outcome()),
		Exports: []exportJSON{},
	}

	for _, result := range s.Exports() {
		e := exportJSON{Kind: result.Kind}
		if result.Err != nil {
			e.Error = "Error preparing " + result.Kind + " for download: " + result.Err.Error()
		} else {
			e.Name = result.Artifact.Name
			e.ContentType = result.Artifact.ContentType
			e.Data = result.Artifact.Data
		}
		resp.Exports = append(resp.Exports, e)
	}
	return resp
}
