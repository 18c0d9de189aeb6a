// Package ingest brings a source PDF into the archive: the file is copied
// under the archive's pdf directory, one page row is created per physical
// page, and thumbnails are rendered page by page with a commit after each so
// an interrupted run leaves a usable partial document.
package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cbruhn/drawing-archive/internal/common"
	"github.com/cbruhn/drawing-archive/internal/entity"
	"github.com/cbruhn/drawing-archive/internal/progress"
	"github.com/cbruhn/drawing-archive/internal/raster"
	"github.com/cbruhn/drawing-archive/internal/repository"
	"github.com/cbruhn/drawing-archive/internal/slicer"
)

type Config struct {
	PDFDir   string
	ThumbDir string
}

type Service struct {
	cfg      Config
	docs     repository.DocumentRepository
	pages    repository.PageRepository
	slicer   *slicer.Slicer
	renderer *raster.Renderer
	logger   *slog.Logger
}

func NewService(cfg Config, docs repository.DocumentRepository, pages repository.PageRepository,
	sl *slicer.Slicer, renderer *raster.Renderer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:      cfg,
		docs:     docs,
		pages:    pages,
		slicer:   sl,
		renderer: renderer,
		logger:   logger,
	}
}

// Ingest copies srcPath into the archive and returns the created document.
// Progress is reported through sink; pass nil when no listener cares.
// A thumbnail render failure aborts the run, leaving the document and the
// already-rendered thumbnails in place.
func (s *Service) Ingest(ctx context.Context, srcPath string, sink progress.Sink) (*entity.Document, error) {
	start := time.Now()

	if err := os.MkdirAll(s.cfg.PDFDir, 0o755); err != nil {
		return nil, common.WrapError(common.ErrInternal, "create pdf dir", err)
	}
	if err := os.MkdirAll(s.cfg.ThumbDir, 0o755); err != nil {
		return nil, common.WrapError(common.ErrInternal, "create thumb dir", err)
	}

	stem := safeStem(filepath.Base(srcPath))
	destPath := uniquePDFPath(s.cfg.PDFDir, stem)
	if err := copyFile(srcPath, destPath); err != nil {
		progress.Emit(sink, progress.Failed{Stage: progress.StageIngest, Err: err.Error()})
		return nil, err
	}

	pageCount, err := s.slicer.PageCount(destPath)
	if err != nil {
		progress.Emit(sink, progress.Failed{Stage: progress.StageIngest, Err: err.Error()})
		return nil, err
	}
	if pageCount < 1 {
		err := common.NewAppError("EMPTY_PDF", "pdf has no pages", common.ErrInvalidInput)
		progress.Emit(sink, progress.Failed{Stage: progress.StageIngest, Err: err.Error()})
		return nil, err
	}

	doc, pageIDs, err := s.docs.CreateWithPages(ctx, &entity.Document{
		Path:     destPath,
		Filename: filepath.Base(destPath),
	}, pageCount)
	if err != nil {
		progress.Emit(sink, progress.Failed{Stage: progress.StageIngest, Err: err.Error()})
		return nil, err
	}

	s.logger.Info("ingest.document.created", "document_id", doc.ID, "path", destPath, "pages", pageCount)
	progress.Emit(sink, progress.DocumentCreated{DocumentID: doc.ID})
	progress.Emit(sink, progress.PageCount{Total: pageCount})

	for i, pageID := range pageIDs {
		pageNo := i + 1
		thumbPath := filepath.Join(s.cfg.ThumbDir, fmt.Sprintf("%d_%d.png", doc.ID, pageNo))
		if err := s.renderer.RenderPage(ctx, destPath, pageNo, thumbPath); err != nil {
			s.logger.Error("ingest.thumb.failed", "document_id", doc.ID, "page_no", pageNo, "error", err)
			progress.Emit(sink, progress.Failed{Stage: progress.StageIngest, Err: err.Error()})
			return nil, err
		}
		// commit per page so a crash keeps everything rendered so far
		if err := s.pages.SetThumbPath(ctx, pageID, thumbPath); err != nil {
			progress.Emit(sink, progress.Failed{Stage: progress.StageIngest, Err: err.Error()})
			return nil, err
		}
		progress.Emit(sink, progress.Thumbnail{Page: pageNo, Total: pageCount})
	}

	progress.Emit(sink, progress.Completed{Stage: progress.StageIngest, Elapsed: time.Since(start)})
	s.logger.Info("ingest.done", "document_id", doc.ID, "pages", pageCount, "elapsed", time.Since(start))
	return doc, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return common.ErrNotFound
		}
		return common.WrapError(common.ErrInternal, "open source pdf", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return common.WrapError(common.ErrInternal, "create archive pdf", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return common.WrapError(common.ErrInternal, "copy pdf", err)
	}
	return out.Close()
}
