// Package pages is the read-and-maintain surface for individual archive
// pages: metadata lookups, on-demand single-page PDF slices and deletion.
package pages

import (
	"context"
	"log/slog"
	"os"

	"github.com/cbruhn/drawing-archive/internal/entity"
	"github.com/cbruhn/drawing-archive/internal/labels"
	"github.com/cbruhn/drawing-archive/internal/repository"
	"github.com/cbruhn/drawing-archive/internal/slicer"
)

type Service struct {
	pages  repository.PageRepository
	index  repository.IndexRepository
	slicer *slicer.Slicer
	logger *slog.Logger
}

func NewService(pages repository.PageRepository, index repository.IndexRepository,
	sl *slicer.Slicer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		pages:  pages,
		index:  index,
		slicer: sl,
		logger: logger,
	}
}

// Info returns the page with its document fields and resolved label.
func (s *Service) Info(ctx context.Context, id int) (*entity.Page, labels.Label, error) {
	p, err := s.pages.GetInfo(ctx, id)
	if err != nil {
		return nil, labels.Label{}, err
	}
	return p, labels.Resolve(p.Gen1, p.Gen2), nil
}

// Slice builds the single-page PDF for the page and the filename to offer
// for it.
func (s *Service) Slice(ctx context.Context, id int) ([]byte, string, error) {
	p, label, err := s.Info(ctx, id)
	if err != nil {
		return nil, "", err
	}
	data, err := s.slicer.ExtractPage(p.DocPath, p.PageNo)
	if err != nil {
		return nil, "", err
	}
	return data, slicer.DownloadName(label.Title, p.Filename, p.PageNo), nil
}

// Delete removes the page row, its index entry and its thumbnail file. A
// thumbnail already gone on disk is not an error.
func (s *Service) Delete(ctx context.Context, id int) error {
	p, err := s.pages.GetInfo(ctx, id)
	if err != nil {
		return err
	}
	if err := s.pages.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.index.Remove(ctx, id); err != nil {
		return err
	}
	if p.ThumbPath != "" {
		if err := os.Remove(p.ThumbPath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("page.thumb.remove_failed", "page_id", id, "thumb_path", p.ThumbPath, "error", err)
		}
	}
	s.logger.Info("page.deleted", "page_id", id, "document_id", p.DocumentID, "page_no", p.PageNo)
	return nil
}
