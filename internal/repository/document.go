package repository

import (
	"context"
	"log/slog"

	"github.com/cbruhn/drawing-archive/gen/ent"
	"github.com/cbruhn/drawing-archive/gen/ent/document"
	"github.com/cbruhn/drawing-archive/internal/common"
	"github.com/cbruhn/drawing-archive/internal/entity"
	"github.com/cbruhn/drawing-archive/internal/utils"
)

type DocumentRepository interface {
	// CreateWithPages inserts the document and one row per page in a single
	// transaction. Pages have no thumbnails yet.
	CreateWithPages(ctx context.Context, doc *entity.Document, pageCount int) (*entity.Document, []int, error)
	GetByID(ctx context.Context, id int) (*entity.Document, error)
	ListAll(ctx context.Context) ([]*entity.Document, error)
	ListWithoutTitle(ctx context.Context) ([]*entity.Document, error)
	SetTitle(ctx context.Context, id int, title string) error
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

func (r *documentRepository) CreateWithPages(ctx context.Context, doc *entity.Document, pageCount int) (*entity.Document, []int, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, nil, common.WrapError(common.ErrDatabase, "begin ingest transaction", err)
	}

	created, err := tx.Document.Create().
		SetPath(doc.Path).
		SetFilename(doc.Filename).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to create document", "path", doc.Path, "error", err)
		return nil, nil, common.WrapError(common.ErrDatabase, "create document", err)
	}

	builders := make([]*ent.PageCreate, pageCount)
	for i := range builders {
		builders[i] = tx.Page.Create().
			SetDocumentID(created.ID).
			SetPageNo(i + 1)
	}
	pages, err := tx.Page.CreateBulk(builders...).Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to create pages", "document_id", created.ID, "error", err)
		return nil, nil, common.WrapError(common.ErrDatabase, "create pages", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, common.WrapError(common.ErrDatabase, "commit ingest transaction", err)
	}

	ids := make([]int, len(pages))
	for i, p := range pages {
		ids[i] = p.ID
	}
	return utils.ToDocument(created), ids, nil
}

func (r *documentRepository) GetByID(ctx context.Context, id int) (*entity.Document, error) {
	d, err := r.client.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(common.ErrDatabase, "get document", err)
	}
	return utils.ToDocument(d), nil
}

func (r *documentRepository) ListAll(ctx context.Context) ([]*entity.Document, error) {
	docs, err := r.client.Document.Query().Order(document.ByID()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "error", err)
		return nil, common.WrapError(common.ErrDatabase, "list documents", err)
	}
	result := make([]*entity.Document, len(docs))
	for i, d := range docs {
		result[i] = utils.ToDocument(d)
	}
	return result, nil
}

func (r *documentRepository) ListWithoutTitle(ctx context.Context) ([]*entity.Document, error) {
	docs, err := r.client.Document.Query().
		Where(document.Or(document.TitleIsNil(), document.TitleEQ(""))).
		Order(document.ByID()).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "list untitled documents", err)
	}
	result := make([]*entity.Document, len(docs))
	for i, d := range docs {
		result[i] = utils.ToDocument(d)
	}
	return result, nil
}

func (r *documentRepository) SetTitle(ctx context.Context, id int, title string) error {
	err := r.client.Document.UpdateOneID(id).SetTitle(title).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return common.WrapError(common.ErrDatabase, "set document title", err)
	}
	return nil
}
