package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/marksalpeter/visionocr/internal/config"
	"github.com/marksalpeter/visionocr/internal/ocr"
	"github.com/marksalpeter/visionocr/internal/ocr/batch"
	"github.com/marksalpeter/visionocr/internal/ocr/client"
	"github.com/marksalpeter/visionocr/internal/ocr/export"
	"github.com/marksalpeter/visionocr/internal/ocr/repository"
)

// Per-file failures are reported on the console; the process always exits 0
// once it has started processing.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Error("Error loading configuration", "err", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger("ocr-batch")

	factory, err := client.NewFactory(cfg.ClientOptions(), logger)
	if err != nil {
		logger.Error("Error creating OCR client factory", "err", err)
		os.Exit(1)
	}
	defer factory.Close()

	repo := repository.New(cfg.BaseDir, cfg.OutputDir)
	app := ocr.NewApp(factory, repo, export.Defaults()...)

	batch.New(app, os.Stdout, logger).Run(ctx, batch.SamplePaths)
}
