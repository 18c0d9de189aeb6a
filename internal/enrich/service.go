package enrich

import (
	"context"
	"log/slog"

	"github.com/cbruhn/drawing-archive/internal/entity"
)

// DocumentStore is the slice of the repository layer the enricher needs.
type DocumentStore interface {
	ListWithoutTitle(ctx context.Context) ([]*entity.Document, error)
	SetTitle(ctx context.Context, id int, title string) error
}

type KeyTextStore interface {
	KeyTextByDocument(ctx context.Context, documentID int) ([]string, error)
}

type Service struct {
	docs   DocumentStore
	pages  KeyTextStore
	logger *slog.Logger
}

func NewService(docs DocumentStore, pages KeyTextStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, pages: pages, logger: logger}
}

// Run fills in missing document titles from page key text. Documents whose
// pages yield no candidate are left untouched. Returns the number updated.
func (s *Service) Run(ctx context.Context) (int, error) {
	docs, err := s.docs.ListWithoutTitle(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, doc := range docs {
		texts, err := s.pages.KeyTextByDocument(ctx, doc.ID)
		if err != nil {
			return updated, err
		}
		title := ""
		for _, kt := range texts {
			if t := GuessTitle(kt); t != "" {
				title = t
				break
			}
		}
		if title == "" {
			continue
		}
		if err := s.docs.SetTitle(ctx, doc.ID, title); err != nil {
			return updated, err
		}
		s.logger.Info("enrich.title.set", "document_id", doc.ID, "title", title)
		updated++
	}
	return updated, nil
}
