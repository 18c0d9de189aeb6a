package repository

import (
	"context"
	"log/slog"

	"github.com/cbruhn/drawing-archive/constants"
	"github.com/cbruhn/drawing-archive/gen/ent"
	"github.com/cbruhn/drawing-archive/gen/ent/page"
	"github.com/cbruhn/drawing-archive/internal/common"
	"github.com/cbruhn/drawing-archive/internal/entity"
	"github.com/cbruhn/drawing-archive/internal/utils"
)

type PageRepository interface {
	// GetInfo loads the page with its owning document.
	GetInfo(ctx context.Context, id int) (*entity.Page, error)
	ListAll(ctx context.Context) ([]*entity.Page, error)
	// ListUnprocessed returns pages with no extraction status yet, oldest
	// first. documentID 0 means all documents.
	ListUnprocessed(ctx context.Context, documentID int) ([]*entity.Page, error)
	KeyTextByDocument(ctx context.Context, documentID int) ([]string, error)
	SetThumbPath(ctx context.Context, id int, thumbPath string) error
	UpdateKeyText(ctx context.Context, id int, keyText string) error
	// SaveExtraction writes all generation-2 fields, the search blob and the
	// success tag in one statement so a crash never leaves a half-written page.
	SaveExtraction(ctx context.Context, id int, gen entity.LabelGen, searchBlob, sourceTag string) error
	MarkExtractionError(ctx context.Context, id int, errorTag string) error
	// ResetErrors clears error tags so the extraction worker retries those
	// pages. documentID 0 means all documents. Returns the number cleared.
	ResetErrors(ctx context.Context, documentID int) (int, error)
	Delete(ctx context.Context, id int) error
}

type pageRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPageRepository(client *ent.Client, logger *slog.Logger) PageRepository {
	return &pageRepository{
		client: client,
		logger: logger,
	}
}

func (r *pageRepository) GetInfo(ctx context.Context, id int) (*entity.Page, error) {
	p, err := r.client.Page.Query().
		Where(page.ID(id)).
		WithDocument().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(common.ErrDatabase, "get page", err)
	}
	return utils.ToPageWithDocument(p), nil
}

func (r *pageRepository) ListAll(ctx context.Context) ([]*entity.Page, error) {
	pages, err := r.client.Page.Query().
		WithDocument().
		Order(page.ByID()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list pages", "error", err)
		return nil, common.WrapError(common.ErrDatabase, "list pages", err)
	}
	result := make([]*entity.Page, len(pages))
	for i, p := range pages {
		result[i] = utils.ToPageWithDocument(p)
	}
	return result, nil
}

func (r *pageRepository) ListUnprocessed(ctx context.Context, documentID int) ([]*entity.Page, error) {
	q := r.client.Page.Query().Where(page.LeftSourceV2IsNil())
	if documentID > 0 {
		q = q.Where(page.DocumentID(documentID))
	}
	pages, err := q.WithDocument().Order(page.ByID()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list unprocessed pages", "document_id", documentID, "error", err)
		return nil, common.WrapError(common.ErrDatabase, "list unprocessed pages", err)
	}
	result := make([]*entity.Page, len(pages))
	for i, p := range pages {
		result[i] = utils.ToPageWithDocument(p)
	}
	return result, nil
}

func (r *pageRepository) KeyTextByDocument(ctx context.Context, documentID int) ([]string, error) {
	pages, err := r.client.Page.Query().
		Where(page.DocumentID(documentID), page.KeyTextNotNil()).
		Order(page.ByPageNo()).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "list page key text", err)
	}
	out := make([]string, 0, len(pages))
	for _, p := range pages {
		if p.KeyText != nil && *p.KeyText != "" {
			out = append(out, *p.KeyText)
		}
	}
	return out, nil
}

func (r *pageRepository) SetThumbPath(ctx context.Context, id int, thumbPath string) error {
	err := r.client.Page.UpdateOneID(id).SetThumbPath(thumbPath).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return common.WrapError(common.ErrDatabase, "set thumb path", err)
	}
	return nil
}

func (r *pageRepository) UpdateKeyText(ctx context.Context, id int, keyText string) error {
	err := r.client.Page.UpdateOneID(id).SetKeyText(keyText).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return common.WrapError(common.ErrDatabase, "update key text", err)
	}
	return nil
}

func (r *pageRepository) SaveExtraction(ctx context.Context, id int, gen entity.LabelGen, searchBlob, sourceTag string) error {
	err := r.client.Page.UpdateOneID(id).
		SetLeftTitlesJSONV2(gen.TitlesJSON).
		SetLeftNrV2(gen.Nr).
		SetLeftScaleV2(gen.Scale).
		SetLeftConfidenceV2(gen.Confidence).
		SetLeftSearchTextV2(searchBlob).
		SetLeftSourceV2(sourceTag).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to save extraction", "page_id", id, "error", err)
		return common.WrapError(common.ErrDatabase, "save extraction", err)
	}
	return nil
}

func (r *pageRepository) MarkExtractionError(ctx context.Context, id int, errorTag string) error {
	err := r.client.Page.UpdateOneID(id).SetLeftSourceV2(errorTag).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return common.WrapError(common.ErrDatabase, "mark extraction error", err)
	}
	return nil
}

func (r *pageRepository) ResetErrors(ctx context.Context, documentID int) (int, error) {
	q := r.client.Page.Update().
		Where(page.LeftSourceV2HasPrefix(constants.ErrorTagPrefix))
	if documentID > 0 {
		q = q.Where(page.DocumentID(documentID))
	}
	n, err := q.ClearLeftSourceV2().Save(ctx)
	if err != nil {
		r.logger.Error("failed to reset extraction errors", "document_id", documentID, "error", err)
		return 0, common.WrapError(common.ErrDatabase, "reset extraction errors", err)
	}
	return n, nil
}

func (r *pageRepository) Delete(ctx context.Context, id int) error {
	err := r.client.Page.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return common.WrapError(common.ErrDatabase, "delete page", err)
	}
	return nil
}
