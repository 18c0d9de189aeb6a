package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cbruhn/drawing-archive/internal/common"
	"github.com/cbruhn/drawing-archive/internal/export"
	"github.com/cbruhn/drawing-archive/internal/ingest"
	"github.com/cbruhn/drawing-archive/internal/pages"
	"github.com/cbruhn/drawing-archive/internal/raster"
	"github.com/cbruhn/drawing-archive/internal/repository"
	"github.com/cbruhn/drawing-archive/internal/search"
	"github.com/cbruhn/drawing-archive/internal/server"
	"github.com/cbruhn/drawing-archive/internal/slicer"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, db, err := repository.Open(repository.Config{
		Path:        cfg.Database.Path,
		BusyTimeout: cfg.Database.BusyTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, db, logger)

	if err := repository.EnsureSchema(ctx, entc, db, logger); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	docsRepo := repository.NewDocumentRepository(entc, logger)
	pagesRepo := repository.NewPageRepository(entc, logger)
	indexRepo := repository.NewIndexRepository(db, logger)

	sl := slicer.NewSlicer(logger)
	renderer := raster.NewRenderer(raster.Config{Pdftoppm: cfg.Raster.Pdftoppm}, logger)

	engine := search.NewEngine(indexRepo, pagesRepo, logger)
	pageSvc := pages.NewService(pagesRepo, indexRepo, sl, logger)
	ingestSvc := ingest.NewService(ingest.Config{
		PDFDir:   cfg.Archive.PDFDir,
		ThumbDir: cfg.Archive.ThumbDir,
	}, docsRepo, pagesRepo, sl, renderer, logger)
	exportSvc := export.NewService(engine, logger)

	srv := server.New(cfg.Server.HTTPAddr, server.Deps{
		Engine:   engine,
		Pages:    pageSvc,
		Ingest:   ingestSvc,
		Export:   exportSvc,
		ThumbDir: cfg.Archive.ThumbDir,
	}, logger)

	if err := srv.Run(ctx); err != nil {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}
