// Package extract runs the vision-model labeling stage over archived pages.
// The worker is resumable: page selection is driven purely by the status tag
// in the store, so a rerun picks up exactly the pages no earlier run settled.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cbruhn/drawing-archive/constants"
	"github.com/cbruhn/drawing-archive/internal/entity"
	"github.com/cbruhn/drawing-archive/internal/imaging"
	"github.com/cbruhn/drawing-archive/internal/labels"
	"github.com/cbruhn/drawing-archive/internal/llm"
	"github.com/cbruhn/drawing-archive/internal/progress"
	"github.com/cbruhn/drawing-archive/internal/repository"
	"github.com/cbruhn/drawing-archive/internal/retry"
)

// Stats summarizes one worker run.
type Stats struct {
	Total        int
	Succeeded    int
	Failed       int
	MissingThumb int
}

type Worker struct {
	pages     repository.PageRepository
	index     repository.IndexRepository
	extractor llm.LabelExtractor
	thumbDir  string
	policy    retry.Policy
	logger    *slog.Logger
}

func NewWorker(pages repository.PageRepository, index repository.IndexRepository,
	extractor llm.LabelExtractor, thumbDir string, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{
		pages:     pages,
		index:     index,
		extractor: extractor,
		thumbDir:  thumbDir,
		policy: retry.Policy{
			MaxAttempts: constants.MaxExtractAttempts,
			BaseDelay:   constants.ExtractBaseDelay,
		},
		logger: logger,
	}
}

// WithPolicy overrides the retry policy; used by tests.
func (w *Worker) WithPolicy(p retry.Policy) *Worker {
	w.policy = p
	return w
}

// Run processes every unprocessed page, scoped to documentID when non-zero.
// A page failure never aborts the run: terminal failures are tagged in the
// store and the worker moves on. Only a storage error stops the loop.
func (w *Worker) Run(ctx context.Context, documentID int, sink progress.Sink) (Stats, error) {
	start := time.Now()

	pending, err := w.pages.ListUnprocessed(ctx, documentID)
	if err != nil {
		progress.Emit(sink, progress.Failed{Stage: progress.StageExtract, Err: err.Error()})
		return Stats{}, err
	}

	stats := Stats{Total: len(pending)}
	w.logger.Info("extract.run.start", "document_id", documentID, "pending", len(pending))

	for i, page := range pending {
		if err := ctx.Err(); err != nil {
			progress.Emit(sink, progress.Failed{Stage: progress.StageExtract, Err: err.Error()})
			return stats, err
		}
		if err := w.processPage(ctx, i+1, page, &stats, sink); err != nil {
			progress.Emit(sink, progress.Failed{Stage: progress.StageExtract, Err: err.Error()})
			return stats, err
		}
	}

	progress.Emit(sink, progress.Completed{Stage: progress.StageExtract, Elapsed: time.Since(start)})
	w.logger.Info("extract.run.done", "document_id", documentID,
		"succeeded", stats.Succeeded, "failed", stats.Failed, "missing_thumb", stats.MissingThumb)
	return stats, nil
}

// processPage settles one page; its error return is reserved for storage
// failures, everything else is recorded as the page's outcome.
func (w *Worker) processPage(ctx context.Context, index int, page *entity.Page, stats *Stats, sink progress.Sink) error {
	raw, ok := w.readThumb(page, index, stats, sink)
	if !ok {
		return nil
	}

	dataURL, err := imaging.DataURL(raw)
	if err != nil {
		// unreadable image, retrying cannot help
		return w.fail(ctx, index, page, stats, sink, constants.ErrorTag("image"), err)
	}

	fields, err := retry.Do(ctx, w.policy, func(ctx context.Context) (llm.LabelFields, error) {
		f, _, err := w.extractor.ExtractLabels(ctx, llm.ExtractRequest{
			ImageDataURL: dataURL,
			PageNo:       page.PageNo,
		})
		return f, err
	})
	if err != nil {
		return w.fail(ctx, index, page, stats, sink, constants.ErrorTag(llm.FailureKind(err)), err)
	}

	titles := labels.CleanTitles(fields.Titles)
	nr := strings.TrimSpace(fields.Nr)
	scale := strings.TrimSpace(fields.Scale)
	blob := labels.SearchBlob(titles, labels.CanonicalNr(nr), scale)

	gen := entity.LabelGen{
		TitlesJSON: labels.TitlesJSON(titles),
		Nr:         nr,
		Scale:      scale,
		Confidence: fields.Confidence,
	}
	if err := w.pages.SaveExtraction(ctx, page.ID, gen, blob, constants.SuccessTag(w.extractor.Model())); err != nil {
		return err
	}
	if err := w.index.Replace(ctx, page.ID, blob); err != nil {
		return err
	}

	stats.Succeeded++
	w.logger.Info("extract.page.ok", "page_id", page.ID, "confidence", fields.Confidence)
	progress.Emit(sink, progress.Extraction{
		Index: index, Total: stats.Total, PageID: page.ID,
		Status: progress.StatusOK, Confidence: fields.Confidence,
	})
	return nil
}

// readThumb locates and reads the page's thumbnail. A missing thumbnail is
// reported but leaves the page untagged so a later ingest repair rerun can
// still process it.
func (w *Worker) readThumb(page *entity.Page, index int, stats *Stats, sink progress.Sink) ([]byte, bool) {
	thumbPath := page.ThumbPath
	if thumbPath == "" {
		thumbPath = filepath.Join(w.thumbDir, fmt.Sprintf("%d_%d.png", page.DocumentID, page.PageNo))
	}

	raw, err := os.ReadFile(thumbPath)
	if err != nil {
		stats.MissingThumb++
		w.logger.Warn("extract.thumb.missing", "page_id", page.ID, "thumb_path", thumbPath)
		progress.Emit(sink, progress.Diagnostic{
			Message: fmt.Sprintf("missing thumbnail for page %d: %s", page.ID, thumbPath),
		})
		progress.Emit(sink, progress.Extraction{
			Index: index, Total: stats.Total, PageID: page.ID,
			Status: progress.StatusMissingThumb,
		})
		return nil, false
	}
	return raw, true
}

func (w *Worker) fail(ctx context.Context, index int, page *entity.Page, stats *Stats, sink progress.Sink, tag string, cause error) error {
	if err := w.pages.MarkExtractionError(ctx, page.ID, tag); err != nil {
		return err
	}
	stats.Failed++
	w.logger.Warn("extract.page.failed", "page_id", page.ID, "tag", tag, "error", cause)
	progress.Emit(sink, progress.Extraction{
		Index: index, Total: stats.Total, PageID: page.ID,
		Status: progress.StatusError, Err: cause.Error(),
	})
	return nil
}
