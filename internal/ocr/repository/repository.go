package repository

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/marksalpeter/visionocr/internal/ocr"
	"github.com/marksalpeter/visionocr/internal/ocr/imageinfo"
)

// MaxUploadSize is the largest image accepted from an interactive upload
const MaxUploadSize = 20 << 20

// uploadFormats are the formats accepted from interactive uploads
var uploadFormats = map[string]bool{
	"png":  true,
	"jpeg": true,
}

var (
	// ErrFailedToSave is returned when saving an export fails
	ErrFailedToSave = fmt.Errorf("failed to save output")
	// ErrFailedToRead is returned when an existing image cannot be read
	ErrFailedToRead = fmt.Errorf("failed to read image")
)

// Repository implements the ocr.Repository interface for file operations
type Repository struct {
	baseDir   string
	outputDir string
	inspector *imageinfo.Inspector
}

// New creates a new Repository instance.
// If baseDir is empty, it defaults to the directory of the running executable.
// If outputDir is empty, it defaults to the current working directory.
func New(baseDir, outputDir string) *Repository {
	if baseDir == "" {
		baseDir = DefaultBaseDir()
	}
	if outputDir == "" {
		wd, _ := os.Getwd()
		outputDir = wd
	}
	return &Repository{
		baseDir:   baseDir,
		outputDir: outputDir,
		inspector: imageinfo.New(),
	}
}

// DefaultBaseDir returns the directory containing the running executable,
// falling back to the working directory when it cannot be determined.
func DefaultBaseDir() string {
	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	wd, _ := os.Getwd()
	return wd
}

// BaseDir returns the directory relative paths are resolved against
func (r *Repository) BaseDir() string {
	return r.baseDir
}

// OutputDir returns the directory exports are written to
func (r *Repository) OutputDir() string {
	return r.outputDir
}

// Resolve returns the absolute location of path, relative to the base directory
func (r *Repository) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(r.baseDir, path)
}

// LoadImage reads the whole file at path into memory
func (r *Repository) LoadImage(path string) ([]byte, error) {
	resolved := r.Resolve(path)
	info, err := os.Stat(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ocr.ErrFileNotFound, resolved)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToRead, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ocr.ErrFileNotFound, resolved)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToRead, err)
	}
	return data, nil
}

// OpenUpload loads a picked file as an interactive upload
func (r *Repository) OpenUpload(path string) (ocr.Upload, error) {
	data, err := r.LoadImage(path)
	if err != nil {
		return ocr.Upload{}, err
	}
	if len(data) > MaxUploadSize {
		return ocr.Upload{}, fmt.Errorf("%w: %d bytes", ocr.ErrUploadTooLarge, len(data))
	}
	return r.newUpload(filepath.Base(path), "", data)
}

// ReadUpload materializes an upload stream, capped at MaxUploadSize
func (r *Repository) ReadUpload(src io.Reader, name, contentType string) (ocr.Upload, error) {
	data, err := io.ReadAll(io.LimitReader(src, MaxUploadSize+1))
	if err != nil {
		return ocr.Upload{}, fmt.Errorf("%w: %v", ErrFailedToRead, err)
	}
	if len(data) > MaxUploadSize {
		return ocr.Upload{}, fmt.Errorf("%w: more than %d bytes", ocr.ErrUploadTooLarge, MaxUploadSize)
	}
	return r.newUpload(name, contentType, data)
}

func (r *Repository) newUpload(name, contentType string, data []byte) (ocr.Upload, error) {
	info, err := r.inspector.Inspect(data)
	if err != nil {
		return ocr.Upload{}, fmt.Errorf("%w: %v", ocr.ErrUnsupportedFormat, err)
	}
	if !uploadFormats[info.Format] {
		return ocr.Upload{}, fmt.Errorf("%w: %s", ocr.ErrUnsupportedFormat, info.Format)
	}
	if contentType == "" {
		contentType = info.MIMEType()
	}
	return ocr.Upload{
		Name:        name,
		ContentType: contentType,
		Format:      info.Format,
		Size:        int64(len(data)),
		Width:       info.Width,
		Height:      info.Height,
		Data:        data,
	}, nil
}

// SaveArtifact writes the artifact into the output directory
func (r *Repository) SaveArtifact(artifact ocr.Artifact) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToSave, err)
	}
	path := filepath.Join(r.outputDir, filepath.Base(artifact.Name))
	if err := os.WriteFile(path, artifact.Data, 0644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToSave, err)
	}
	return path, nil
}
