package ocr

import "errors"

// Application-level errors
var (
	ErrFileNotFound      = errors.New("image file not found")
	ErrClientInit        = errors.New("error initializing OCR client")
	ErrClientUnavailable = errors.New("client not available")
	ErrNoFileChosen      = errors.New("no file chosen")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrUploadTooLarge    = errors.New("upload exceeds maximum size")
	ErrNoExport          = errors.New("no export available")
)
