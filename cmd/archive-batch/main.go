package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/cbruhn/drawing-archive/internal/common"
	"github.com/cbruhn/drawing-archive/internal/enrich"
	"github.com/cbruhn/drawing-archive/internal/extract"
	"github.com/cbruhn/drawing-archive/internal/ingest"
	"github.com/cbruhn/drawing-archive/internal/llm/openai"
	"github.com/cbruhn/drawing-archive/internal/ocr"
	"github.com/cbruhn/drawing-archive/internal/progress"
	"github.com/cbruhn/drawing-archive/internal/raster"
	"github.com/cbruhn/drawing-archive/internal/repository"
	"github.com/cbruhn/drawing-archive/internal/slicer"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		pdf         = flag.String("pdf", "", "source PDF to ingest")
		doc         = flag.String("doc", "", "document id to process (default: the ingested document, or all)")
		retryErrors = flag.Bool("retry-errors", false, "clear error tags before extraction so failed pages are retried")
		keyText     = flag.Bool("keytext", false, "run the OCR key-text pass and title enrichment after extraction")
		skipLLM     = flag.Bool("skip-llm", false, "ingest only, skip the extraction stage")
	)
	flag.Parse()

	// progress lines go to stdout for the calling process; logs go to stderr
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		printError("Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	entc, db, err := repository.Open(repository.Config{
		Path:        cfg.Database.Path,
		BusyTimeout: cfg.Database.BusyTimeout,
	}, logger)
	if err != nil {
		printError("Error: open database: %v\n", err)
		os.Exit(1)
	}
	defer repository.Close(entc, db, logger)

	if err := repository.EnsureSchema(ctx, entc, db, logger); err != nil {
		printError("Error: migrate schema: %v\n", err)
		os.Exit(1)
	}

	docsRepo := repository.NewDocumentRepository(entc, logger)
	pagesRepo := repository.NewPageRepository(entc, logger)
	indexRepo := repository.NewIndexRepository(db, logger)

	sink := func(ev progress.Event) { fmt.Println(progress.Line(ev)) }

	documentID := 0
	if *doc != "" {
		if _, err := fmt.Sscanf(*doc, "%d", &documentID); err != nil || documentID < 1 {
			printError("Error: --doc must be a positive document id\n")
			os.Exit(1)
		}
	}

	if *pdf != "" {
		sl := slicer.NewSlicer(logger)
		renderer := raster.NewRenderer(raster.Config{Pdftoppm: cfg.Raster.Pdftoppm}, logger)
		ingestSvc := ingest.NewService(ingest.Config{
			PDFDir:   cfg.Archive.PDFDir,
			ThumbDir: cfg.Archive.ThumbDir,
		}, docsRepo, pagesRepo, sl, renderer, logger)

		created, err := ingestSvc.Ingest(ctx, *pdf, sink)
		if err != nil {
			printError("Error: ingest %s: %v\n", *pdf, err)
			os.Exit(1)
		}
		if documentID == 0 {
			documentID = created.ID
		}
	}

	if *retryErrors {
		n, err := pagesRepo.ResetErrors(ctx, documentID)
		if err != nil {
			printError("Error: reset error tags: %v\n", err)
			os.Exit(1)
		}
		logger.Info("error tags cleared", "document_id", documentID, "pages", n)
	}

	if !*skipLLM {
		if cfg.LLM.APIKey == "" {
			printError("Error: OPENAI_API_KEY is required for extraction, use --skip-llm to ingest only\n")
			os.Exit(1)
		}
		extractor := openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)

		worker := extract.NewWorker(pagesRepo, indexRepo, extractor, cfg.Archive.ThumbDir, logger)
		stats, err := worker.Run(ctx, documentID, sink)
		if err != nil {
			printError("Error: extraction: %v\n", err)
			os.Exit(1)
		}
		logger.Info("extraction finished",
			"total", stats.Total,
			"succeeded", stats.Succeeded,
			"failed", stats.Failed,
			"missing_thumb", stats.MissingThumb,
		)

		// keep index rows for this run's scope consistent with the blobs
		if documentID > 0 {
			if _, err := indexRepo.UpdateDocument(ctx, documentID); err != nil {
				printError("Error: index update: %v\n", err)
				os.Exit(1)
			}
		}
	}

	if *keyText {
		kt := ocr.NewKeyTextExtractor(ocr.Config{
			Tesseract:     cfg.Raster.Tesseract,
			TesseractLang: cfg.Raster.TesseractLang,
			Pdftoppm:      cfg.Raster.Pdftoppm,
		}, logger)
		if err := runKeyText(ctx, kt, docsRepo, pagesRepo, documentID, logger); err != nil {
			printError("Error: key-text pass: %v\n", err)
			os.Exit(1)
		}

		enricher := enrich.NewService(docsRepo, pagesRepo, logger)
		updated, err := enricher.Run(ctx)
		if err != nil {
			printError("Error: title enrichment: %v\n", err)
			os.Exit(1)
		}
		logger.Info("title enrichment finished", "documents_updated", updated)
	}
}

// runKeyText OCRs the left heading area of every page in scope that has no
// key text yet.
func runKeyText(ctx context.Context, kt *ocr.KeyTextExtractor,
	docs repository.DocumentRepository, pages repository.PageRepository,
	documentID int, logger *slog.Logger) error {

	docPaths := map[int]string{}
	if documentID > 0 {
		doc, err := docs.GetByID(ctx, documentID)
		if err != nil {
			return err
		}
		docPaths[doc.ID] = doc.Path
	} else {
		all, err := docs.ListAll(ctx)
		if err != nil {
			return err
		}
		for _, d := range all {
			docPaths[d.ID] = d.Path
		}
	}

	pageList, err := pages.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, p := range pageList {
		path, inScope := docPaths[p.DocumentID]
		if !inScope || p.KeyText != "" {
			continue
		}
		text, err := kt.ExtractKeyText(ctx, path, p.PageNo)
		if err != nil {
			logger.Warn("key-text extraction failed", "page_id", p.ID, "error", err)
			continue
		}
		if err := pages.UpdateKeyText(ctx, p.ID, text); err != nil {
			return err
		}
	}
	return nil
}
