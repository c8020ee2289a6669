package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/marksalpeter/visionocr/internal/ocr"
	"github.com/marksalpeter/visionocr/internal/ocr/repository"
)

const (
	// FormField is the multipart field carrying the image
	FormField = "image"
	// RequestIDHeader echoes the request ID back to the caller
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
)

var errNoUpload = errors.New("no upload in request")

// Server exposes the upload-and-extract flow over HTTP. Every request gets its
// own ocr.Session; only the client factory is shared between requests.
type Server struct {
	app    *ocr.App
	repo   *repository.Repository
	logger *log.Logger
}

// New creates a new Server instance
func New(app *ocr.App, repo *repository.Repository, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		app:    app,
		repo:   repo,
		logger: logger,
	}
}

// Router builds the gin engine
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = repository.MaxUploadSize
	r.Use(gin.Recovery(), s.requestID(), s.requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	{
		v1.POST("/extract", s.extract)
		v1.POST("/extract/:kind", s.download)
	}
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("error serving HTTP: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down HTTP server: %w", err)
	}
	return nil
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"id", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// extract answers with the outcome and every export inline
func (s *Server) extract(c *gin.Context) {
	session, ok := s.runSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newExtractResponse(c.GetString(requestIDKey), session))
}

// download answers with a single export as an attachment
func (s *Server) download(c *gin.Context) {
	kind := c.Param("kind")
	if !s.app.CanExport(kind) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown export %q", kind)})
		return
	}

	session, ok := s.runSession(c)
	if !ok {
		return
	}

	outcome := session.Outcome()
	result, ok := session.Export(kind)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   ocr.Diagnostic(outcome),
			"outcome": newOutcomeJSON(outcome),
		})
		return
	}
	if result.Err != nil {
		s.logger.Error("Error preparing export", "id", c.GetString(requestIDKey), "kind", kind, "err", result.Err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error preparing %s for download: %v", kind, result.Err)})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Artifact.Name))
	c.Data(http.StatusOK, result.Artifact.ContentType, result.Artifact.Data)
}

// runSession reads the upload and runs one extraction. On a setup failure it
// writes the error response and returns false.
func (s *Server) runSession(c *gin.Context) (*ocr.Session, bool) {
	upload, err := s.readUpload(c)
	if errors.Is(err, errNoUpload) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s file is required", FormField)})
		return nil, false
	}
	if err != nil {
		c.JSON(uploadErrorStatus(err), gin.H{"error": err.Error()})
		return nil, false
	}

	s.logger.Debug("Upload received",
		"id", c.GetString(requestIDKey),
		"name", upload.Name,
		"type", upload.ContentType,
		"size", humanize.Bytes(uint64(upload.Size)),
	)

	session := s.app.NewSession()
	session.Choose(upload)
	if _, err := session.Extract(c.Request.Context()); err != nil {
		s.logger.Error("Extraction failed", "id", c.GetString(requestIDKey), "err", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Vision API client is not initialized. Cannot extract text.",
			"cause": err.Error(),
		})
		return nil, false
	}
	return session, true
}

// readUpload reads the image part. A part sent without a filename arrives as a
// plain form value and is read as an upload with no declared name.
func (s *Server) readUpload(c *gin.Context) (ocr.Upload, error) {
	header, err := c.FormFile(FormField)
	if errors.Is(err, http.ErrMissingFile) {
		if value := c.PostForm(FormField); value != "" {
			return s.repo.ReadUpload(strings.NewReader(value), "", "")
		}
	}
	if err != nil {
		return ocr.Upload{}, fmt.Errorf("%w: %v", errNoUpload, err)
	}

	file, err := header.Open()
	if err != nil {
		return ocr.Upload{}, fmt.Errorf("%w: %v", repository.ErrFailedToRead, err)
	}
	defer file.Close()

	return s.repo.ReadUpload(file, header.Filename, header.Header.Get("Content-Type"))
}

func uploadErrorStatus(err error) int {
	switch {
	case errors.Is(err, ocr.ErrUploadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ocr.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusBadRequest
	}
}
