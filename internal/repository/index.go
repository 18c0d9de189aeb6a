package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/cbruhn/drawing-archive/internal/common"
	"github.com/cbruhn/drawing-archive/internal/entity"
	"github.com/cbruhn/drawing-archive/internal/labels"
)

// IndexRepository maintains the left_fts virtual table. Ent does not model
// FTS5 tables, so this layer speaks SQL directly against the shared handle.
//
// Invariant: left_fts holds a row for a page exactly when that page's
// left_search_text_v2 is non-empty.
type IndexRepository interface {
	EnsureIndex(ctx context.Context) error
	// Replace makes the index row for pageID match searchBlob: the old row is
	// removed and a new one inserted only when the blob is non-empty.
	Replace(ctx context.Context, pageID int, searchBlob string) error
	Remove(ctx context.Context, pageID int) error
	// RebuildAll recomputes every page's search blob from its stored label
	// fields and rebuilds the index from scratch. Returns pages indexed.
	RebuildAll(ctx context.Context) (int, error)
	// UpdateDocument re-derives and re-indexes only the given document's pages.
	UpdateDocument(ctx context.Context, documentID int) (int, error)
	Match(ctx context.Context, ftsQuery string, limit int) ([]*entity.Page, error)
}

type indexRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewIndexRepository(db *sql.DB, logger *slog.Logger) IndexRepository {
	return &indexRepository{
		db:     db,
		logger: logger,
	}
}

func (r *indexRepository) EnsureIndex(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, ftsDDL); err != nil {
		return common.WrapError(common.ErrDatabase, "create fts table", err)
	}
	return nil
}

func (r *indexRepository) Replace(ctx context.Context, pageID int, searchBlob string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return common.WrapError(common.ErrDatabase, "begin index update", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM left_fts WHERE rowid = ?`, pageID); err != nil {
		return common.WrapError(common.ErrDatabase, "remove index row", err)
	}
	if searchBlob != "" {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO left_fts(rowid, left_search_text) VALUES (?, ?)`,
			pageID, searchBlob); err != nil {
			return common.WrapError(common.ErrDatabase, "insert index row", err)
		}
	}
	return tx.Commit()
}

func (r *indexRepository) Remove(ctx context.Context, pageID int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM left_fts WHERE rowid = ?`, pageID); err != nil {
		return common.WrapError(common.ErrDatabase, "remove index row", err)
	}
	return nil
}

func (r *indexRepository) RebuildAll(ctx context.Context) (int, error) {
	return r.rebuild(ctx, 0)
}

func (r *indexRepository) UpdateDocument(ctx context.Context, documentID int) (int, error) {
	return r.rebuild(ctx, documentID)
}

// rebuild recomputes search blobs for the selected pages, writes them back to
// pages.left_search_text_v2 and replaces the matching index rows. A full
// rebuild (documentID 0) drops the whole index first.
func (r *indexRepository) rebuild(ctx context.Context, documentID int) (int, error) {
	rows, err := r.selectLabelRows(ctx, documentID)
	if err != nil {
		return 0, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, common.WrapError(common.ErrDatabase, "begin index rebuild", err)
	}
	defer func() { _ = tx.Rollback() }()

	if documentID > 0 {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM left_fts WHERE rowid IN (SELECT id FROM pages WHERE document_id = ?)`,
			documentID); err != nil {
			return 0, common.WrapError(common.ErrDatabase, "clear document index rows", err)
		}
	} else {
		if _, err := tx.ExecContext(ctx, `DELETE FROM left_fts`); err != nil {
			return 0, common.WrapError(common.ErrDatabase, "clear index", err)
		}
	}

	indexed := 0
	for _, row := range rows {
		// The placeholder title is a read-time substitution; blobs are built
		// from stored fields only so unlabeled pages stay out of the index.
		titles := labels.ParseTitles(row.gen2.TitlesJSON)
		if len(titles) == 0 {
			titles = labels.ParseTitles(row.gen1.TitlesJSON)
		}
		nr := row.gen2.Nr
		if nr == "" {
			nr = row.gen1.Nr
		}
		scale := row.gen2.Scale
		if scale == "" {
			scale = row.gen1.Scale
		}
		blob := labels.SearchBlob(titles, labels.CanonicalNr(nr), scale)
		if _, err := tx.ExecContext(ctx,
			`UPDATE pages SET left_search_text_v2 = ? WHERE id = ?`, blob, row.id); err != nil {
			return 0, common.WrapError(common.ErrDatabase, "write search blob", err)
		}
		if blob == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO left_fts(rowid, left_search_text) VALUES (?, ?)`, row.id, blob); err != nil {
			return 0, common.WrapError(common.ErrDatabase, "insert index row", err)
		}
		indexed++
	}

	if err := tx.Commit(); err != nil {
		return 0, common.WrapError(common.ErrDatabase, "commit index rebuild", err)
	}
	r.logger.Info("index.rebuild.done", "document_id", documentID, "pages", len(rows), "indexed", indexed)
	return indexed, nil
}

type labelRow struct {
	id   int
	gen1 entity.LabelGen
	gen2 entity.LabelGen
}

func (r *indexRepository) selectLabelRows(ctx context.Context, documentID int) ([]labelRow, error) {
	query := `SELECT id,
		COALESCE(left_titles_json, ''), COALESCE(left_nr, ''), COALESCE(left_scale, ''), COALESCE(left_confidence, 0),
		COALESCE(left_titles_json_v2, ''), COALESCE(left_nr_v2, ''), COALESCE(left_scale_v2, ''), COALESCE(left_confidence_v2, 0)
		FROM pages`
	args := []any{}
	if documentID > 0 {
		query += ` WHERE document_id = ?`
		args = append(args, documentID)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "select label rows", err)
	}
	defer rows.Close()

	var out []labelRow
	for rows.Next() {
		var lr labelRow
		if err := rows.Scan(&lr.id,
			&lr.gen1.TitlesJSON, &lr.gen1.Nr, &lr.gen1.Scale, &lr.gen1.Confidence,
			&lr.gen2.TitlesJSON, &lr.gen2.Nr, &lr.gen2.Scale, &lr.gen2.Confidence); err != nil {
			return nil, common.WrapError(common.ErrDatabase, "scan label row", err)
		}
		out = append(out, lr)
	}
	return out, rows.Err()
}

const pageSelect = `SELECT p.id, p.document_id, p.page_no,
	COALESCE(p.thumb_path, ''), COALESCE(p.left_search_text_v2, ''), COALESCE(p.left_source_v2, ''),
	COALESCE(p.left_titles_json, ''), COALESCE(p.left_nr, ''), COALESCE(p.left_scale, ''), COALESCE(p.left_confidence, 0),
	COALESCE(p.left_titles_json_v2, ''), COALESCE(p.left_nr_v2, ''), COALESCE(p.left_scale_v2, ''), COALESCE(p.left_confidence_v2, 0),
	d.filename, d.path, COALESCE(d.title, '')
	FROM pages p JOIN documents d ON d.id = p.document_id`

func (r *indexRepository) Match(ctx context.Context, ftsQuery string, limit int) ([]*entity.Page, error) {
	query := pageSelect + `
	JOIN left_fts f ON f.rowid = p.id
	WHERE left_fts MATCH ?
	ORDER BY p.id
	LIMIT ?`
	return r.queryPages(ctx, query, ftsQuery, limit)
}

func (r *indexRepository) queryPages(ctx context.Context, query string, args ...any) ([]*entity.Page, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("page query failed", "error", err)
		return nil, common.WrapError(common.ErrDatabase, "query pages", err)
	}
	defer rows.Close()

	var out []*entity.Page
	for rows.Next() {
		p := &entity.Page{}
		if err := rows.Scan(&p.ID, &p.DocumentID, &p.PageNo,
			&p.ThumbPath, &p.SearchBlob, &p.StatusV2,
			&p.Gen1.TitlesJSON, &p.Gen1.Nr, &p.Gen1.Scale, &p.Gen1.Confidence,
			&p.Gen2.TitlesJSON, &p.Gen2.Nr, &p.Gen2.Scale, &p.Gen2.Confidence,
			&p.Filename, &p.DocPath, &p.DocTitle); err != nil {
			return nil, common.WrapError(common.ErrDatabase, "scan page row", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
