package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/marksalpeter/visionocr/internal/config"
	"github.com/marksalpeter/visionocr/internal/ocr"
	"github.com/marksalpeter/visionocr/internal/ocr/client"
	"github.com/marksalpeter/visionocr/internal/ocr/export"
	"github.com/marksalpeter/visionocr/internal/ocr/repository"
)

// Command represents the interactive adapter: pick a file, extract, review, export
type Command struct {
	cfg             *config.Config
	logger          *log.Logger
	configCollector *configCollector
}

// New creates a new Command instance
func New(cfg *config.Config, logger *log.Logger) *Command {
	baseDir := cfg.BaseDir
	if baseDir == "" {
		baseDir = repository.DefaultBaseDir()
	}
	return &Command{
		cfg:             cfg,
		logger:          logger,
		configCollector: newConfigCollector(baseDir, cfg.OutputDir),
	}
}

// Run executes the interactive workflow until the user quits.
// The OCR client is built once and shared by every extraction in the run.
func (c *Command) Run(ctx context.Context) error {
	factory, err := client.NewFactory(c.cfg.ClientOptions(), c.logger)
	if err != nil {
		return fmt.Errorf("error creating OCR client factory: %w", err)
	}
	defer factory.Close()

	exporters := export.Defaults()
	session := ocr.NewSession(factory, exporters...)

	for {
		sel, err := c.configCollector.Collect()
		if errors.Is(err, ErrConfigCancelled) {
			return nil
		}
		if err != nil {
			return err
		}

		repo := repository.New(c.cfg.BaseDir, sel.OutputDir)
		app := ocr.NewApp(factory, repo, exporters...)

		upload, err := repo.OpenUpload(sel.ImagePath)
		if err != nil {
			c.logger.Error("Error loading image", "path", sel.ImagePath, "err", err)
			continue
		}
		session.Choose(upload)

		err = withSpinner(ctx, "Processing image and extracting text... Please wait.", func() {
			_, _ = session.Extract(ctx)
		})
		if err != nil {
			return fmt.Errorf("error running spinner: %w", err)
		}
		if session.Err() != nil {
			c.logger.Error("Vision API client is not initialized. Cannot extract text.", "err", session.Err())
		}

		action, err := runResultModel(ctx, app, session)
		if err != nil {
			return err
		}
		if action != actionChooseAnother {
			return nil
		}
	}
}
