package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/cbruhn/drawing-archive/internal/common"
	"github.com/cbruhn/drawing-archive/internal/repository"
)

func main() {
	doc := flag.Int("doc", 0, "rebuild only this document's pages (default: full rebuild)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	entc, db, err := repository.Open(repository.Config{
		Path:        cfg.Database.Path,
		BusyTimeout: cfg.Database.BusyTimeout,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: open database: %v\n", err)
		os.Exit(1)
	}
	defer repository.Close(entc, db, logger)

	if err := repository.EnsureSchema(ctx, entc, db, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: migrate schema: %v\n", err)
		os.Exit(1)
	}

	indexRepo := repository.NewIndexRepository(db, logger)

	var indexed int
	if *doc > 0 {
		indexed, err = indexRepo.UpdateDocument(ctx, *doc)
	} else {
		indexed, err = indexRepo.RebuildAll(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: rebuild index: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("INDEXED=%d\n", indexed)
}
