package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbruhn/drawing-archive/internal/entity"
	"github.com/cbruhn/drawing-archive/internal/search"
)

type fakeMatcher struct {
	calls int
	pages []*entity.Page
}

func (f *fakeMatcher) Match(context.Context, string, int) ([]*entity.Page, error) {
	f.calls++
	return f.pages, nil
}

type fakeLister struct {
	pages []*entity.Page
}

func (f *fakeLister) ListAll(context.Context) ([]*entity.Page, error) { return f.pages, nil }

func catalogPages() []*entity.Page {
	return []*entity.Page{
		{ID: 1, DocumentID: 1, PageNo: 1, Filename: "scan_001.pdf", Gen2: entity.LabelGen{TitlesJSON: `["Facadeopstalt"]`}, SearchBlob: "facadeopstalt"},
		{ID: 2, DocumentID: 1, PageNo: 2, Filename: "scan_001.pdf", Gen2: entity.LabelGen{TitlesJSON: `["Snit A-A"]`, Nr: "Nr. 135"}, SearchBlob: "snit a-a · nr. 135"},
	}
}

func searchHandlers(matcher *fakeMatcher, lister *fakeLister) *handlers {
	return &handlers{deps: Deps{Engine: search.NewEngine(matcher, lister, nil)}, logger: slog.Default()}
}

func decodeHits(t *testing.T, body []byte) []pageJSON {
	t.Helper()
	var out struct {
		Hits []pageJSON `json:"hits"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	return out.Hits
}

func TestSearchHandlerEmptyQueryBrowses(t *testing.T) {
	matcher := &fakeMatcher{}
	h := searchHandlers(matcher, &fakeLister{pages: catalogPages()})

	rec := httptest.NewRecorder()
	h.search(rec, httptest.NewRequest("GET", "/api/search", nil))

	require.Equal(t, 200, rec.Code)
	assert.Len(t, decodeHits(t, rec.Body.Bytes()), 2)
	assert.Equal(t, 0, matcher.calls)
}

func TestSearchHandlerWhitespaceQueryBrowses(t *testing.T) {
	matcher := &fakeMatcher{}
	h := searchHandlers(matcher, &fakeLister{pages: catalogPages()})

	rec := httptest.NewRecorder()
	h.search(rec, httptest.NewRequest("GET", "/api/search?q=%20%0A%20", nil))

	require.Equal(t, 200, rec.Code)
	assert.Len(t, decodeHits(t, rec.Body.Bytes()), 2)
	assert.Equal(t, 0, matcher.calls)
}

func TestSearchHandlerQueryHitsIndex(t *testing.T) {
	matcher := &fakeMatcher{pages: catalogPages()[1:]}
	h := searchHandlers(matcher, &fakeLister{pages: catalogPages()})

	rec := httptest.NewRecorder()
	h.search(rec, httptest.NewRequest("GET", "/api/search?q=snit", nil))

	require.Equal(t, 200, rec.Code)
	hits := decodeHits(t, rec.Body.Bytes())
	require.NotEmpty(t, hits)
	assert.Equal(t, "Snit A-A", hits[0].Title)
	assert.Equal(t, 1, matcher.calls)
}
