package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/marksalpeter/visionocr/internal/config"
	"github.com/marksalpeter/visionocr/internal/ocr/command"
)

func main() {
	// Create a context that cancels on interrupt or terminate signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Error("Error loading configuration", "err", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger("ocr")

	// Run the interactive workflow
	if err := command.New(cfg, logger).Run(ctx); err != nil {
		logger.Error("Error running command", "err", err)
		os.Exit(1)
	}
}
