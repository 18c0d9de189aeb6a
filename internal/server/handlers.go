package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cbruhn/drawing-archive/internal/common"
	"github.com/cbruhn/drawing-archive/internal/progress"
	"github.com/cbruhn/drawing-archive/internal/search"
)

const maxUploadSize = 512 << 20 // scanned drawing sets run large

type handlers struct {
	deps   Deps
	logger *slog.Logger
}

// pageJSON is the wire shape of one search or browse hit.
type pageJSON struct {
	PageID     int      `json:"page_id"`
	DocumentID int      `json:"document_id"`
	PageNo     int      `json:"page_no"`
	Title      string   `json:"title"`
	Extras     []string `json:"extras,omitempty"`
	Nr         string   `json:"nr,omitempty"`
	Scale      string   `json:"scale,omitempty"`
	Filename   string   `json:"filename"`
	Thumb      string   `json:"thumb,omitempty"`
}

func toPageJSON(h search.Hit) pageJSON {
	thumb := ""
	if h.Page.ThumbPath != "" {
		thumb = "/thumb/" + filepath.Base(h.Page.ThumbPath)
	}
	return pageJSON{
		PageID:     h.Page.ID,
		DocumentID: h.Page.DocumentID,
		PageNo:     h.Page.PageNo,
		Title:      h.Label.Title,
		Extras:     h.Label.Extras,
		Nr:         h.Label.Nr,
		Scale:      h.Label.Scale,
		Filename:   h.Page.Filename,
		Thumb:      thumb,
	}
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// search serves both the query and the browse view: a q that is empty after
// trimming lists the whole catalog in browse order.
func (h *handlers) search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))

	var (
		hits []search.Hit
		err  error
	)
	if q == "" {
		hits, err = h.deps.Engine.Browse(r.Context())
	} else {
		hits, err = h.deps.Engine.Search(r.Context(), q)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]pageJSON, len(hits))
	for i, hit := range hits {
		out[i] = toPageJSON(hit)
	}
	writeJSON(w, http.StatusOK, map[string]any{"query": q, "hits": out})
}

func (h *handlers) pageInfo(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pageID(w, r)
	if !ok {
		return
	}
	p, label, err := h.deps.Pages.Info(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageJSON(search.Hit{Page: p, Label: label}))
}

// thumb serves a thumbnail by basename. The name is flattened to its base so
// the thumb directory is the only thing reachable here.
func (h *handlers) thumb(w http.ResponseWriter, r *http.Request) {
	name := filepath.Base(chi.URLParam(r, "name"))
	path := filepath.Join(h.deps.ThumbDir, name)
	if _, err := os.Stat(path); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

func (h *handlers) pageView(w http.ResponseWriter, r *http.Request) {
	h.servePageSlice(w, r, "inline")
}

func (h *handlers) pageDownload(w http.ResponseWriter, r *http.Request) {
	h.servePageSlice(w, r, "attachment")
}

func (h *handlers) servePageSlice(w http.ResponseWriter, r *http.Request, disposition string) {
	id, ok := h.pageID(w, r)
	if !ok {
		return
	}
	data, name, err := h.deps.Pages.Slice(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

func (h *handlers) pageDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pageID(w, r)
	if !ok {
		return
	}
	if err := h.deps.Pages.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

func (h *handlers) exportXLSX(w http.ResponseWriter, r *http.Request) {
	data, err := h.deps.Export.ExportCatalogXLSX(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="katalog.xlsx"`)
	_, _ = w.Write(data)
}

// importPDF accepts a multipart upload and streams the ingest progress back
// as the line protocol, one line per event.
func (h *handlers) importPDF(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, common.WrapError(common.ErrInvalidInput, "missing file field", err))
		return
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "da-upload-*.pdf")
	if err != nil {
		h.writeError(w, common.WrapError(common.ErrInternal, "spool upload", err))
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		h.writeError(w, common.WrapError(common.ErrInternal, "spool upload", err))
		return
	}
	if err := tmp.Close(); err != nil {
		h.writeError(w, common.WrapError(common.ErrInternal, "spool upload", err))
		return
	}

	// rename the spool file so the archive keeps the client's stem
	namedPath := filepath.Join(filepath.Dir(tmpPath), filepath.Base(header.Filename))
	if header.Filename != "" && filepath.Base(header.Filename) != "." {
		if err := os.Rename(tmpPath, namedPath); err == nil {
			tmpPath = namedPath
			defer os.Remove(namedPath)
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	sink := func(ev progress.Event) {
		fmt.Fprintln(w, progress.Line(ev))
		if flusher != nil {
			flusher.Flush()
		}
	}

	if _, err := h.deps.Ingest.Ingest(r.Context(), tmpPath, sink); err != nil {
		// the failure line already went out through the sink
		h.logger.Error("import failed", "filename", header.Filename, "error", err)
	}
}

func (h *handlers) pageID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		h.writeError(w, common.NewAppError("INVALID_PAGE_ID", "invalid page id", common.ErrInvalidInput))
		return 0, false
	}
	return id, true
}

func (h *handlers) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrInvalidPage), errors.Is(err, common.ErrInvalidInput):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
