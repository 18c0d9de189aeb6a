package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbruhn/drawing-archive/internal/entity"
	"github.com/cbruhn/drawing-archive/internal/labels"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Nr. 135", "nr 135"},
		{"  Rumopdeling   VED skranke ", "rumopdeling ved skranke"},
		{"1:2", "1 2"},
		{"søjle/væg (A)", "søjle væg a"},
		{"???", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestBuildFTSQuery(t *testing.T) {
	assert.Equal(t, "nr* AND 135*", BuildFTSQuery("nr 135"))
	assert.Equal(t, "rumopdeling* AND ved* AND skranke*", BuildFTSQuery("rumopdeling ved skranke"))
	assert.Equal(t, "", BuildFTSQuery(""))
}

type fakeStore struct {
	matched    []*entity.Page
	matchErr   error
	all        []*entity.Page
	matchCalls int
	listCalls  int
	lastFTS    string
}

func (f *fakeStore) Match(_ context.Context, ftsQuery string, _ int) ([]*entity.Page, error) {
	f.matchCalls++
	f.lastFTS = ftsQuery
	return f.matched, f.matchErr
}

func (f *fakeStore) ListAll(context.Context) ([]*entity.Page, error) {
	f.listCalls++
	return f.all, nil
}

func page(id int, title string) *entity.Page {
	return &entity.Page{
		ID:         id,
		Gen2:       entity.LabelGen{TitlesJSON: fmt.Sprintf("[%q]", title)},
		SearchBlob: title,
	}
}

func TestSearchPrimaryPath(t *testing.T) {
	store := &fakeStore{matched: []*entity.Page{page(1, "Nr. 135 plan")}}
	e := NewEngine(store, store, nil)

	hits, err := e.Search(context.Background(), "Nr. 135")
	require.NoError(t, err)

	assert.Equal(t, "nr* AND 135*", store.lastFTS)
	require.Len(t, hits, 1)
	assert.Equal(t, 1, hits[0].Page.ID)
	assert.Equal(t, "Nr. 135 plan", hits[0].Label.Title)
	// thin primary result triggers the fallback scan
	assert.Equal(t, 1, store.listCalls)
}

func TestSearchSkipsFallbackWhenPrimaryIsWide(t *testing.T) {
	var matched []*entity.Page
	for i := 1; i <= 30; i++ {
		matched = append(matched, page(i, fmt.Sprintf("Plan %d", i)))
	}
	store := &fakeStore{matched: matched}
	e := NewEngine(store, store, nil)

	hits, err := e.Search(context.Background(), "plan")
	require.NoError(t, err)
	assert.Len(t, hits, 30)
	assert.Zero(t, store.listCalls)
}

func TestSearchMergesFallbackFirstWins(t *testing.T) {
	store := &fakeStore{
		matched: []*entity.Page{page(1, "Snit A plan"), page(2, "Snit B plan")},
		all: []*entity.Page{
			{ID: 2, Gen2: entity.LabelGen{TitlesJSON: `["Snit B stale copy"]`}, SearchBlob: "Snit B plan"},
			page(3, "Tegning (plan)"),
			page(4, "Facade mod syd"),
		},
	}
	e := NewEngine(store, store, nil)

	hits, err := e.Search(context.Background(), "plan")
	require.NoError(t, err)

	require.Len(t, hits, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{hits[0].Page.ID, hits[1].Page.ID, hits[2].Page.ID})
	// the indexed copy of page 2 wins over the fallback row
	assert.Equal(t, "Snit B plan", hits[1].Label.Title)
}

func TestSearchFallbackFoldsBlobPunctuation(t *testing.T) {
	store := &fakeStore{
		all: []*entity.Page{page(7, "Rumopdeling ved skranke · Nr. 135 · 1:2")},
	}
	e := NewEngine(store, store, nil)

	hits, err := e.Search(context.Background(), "nr 135")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, 7, hits[0].Page.ID)
}

func TestSearchFallbackSkipsEmptyBlobs(t *testing.T) {
	store := &fakeStore{
		all: []*entity.Page{{ID: 8, Gen2: entity.LabelGen{TitlesJSON: `["plan"]`}}},
	}
	e := NewEngine(store, store, nil)

	hits, err := e.Search(context.Background(), "plan")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearchDegradesWhenIndexErrors(t *testing.T) {
	store := &fakeStore{
		matchErr: errors.New(`malformed MATCH expression`),
		all:      []*entity.Page{page(9, "Facade")},
	}
	e := NewEngine(store, store, nil)

	hits, err := e.Search(context.Background(), "facade")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, 9, hits[0].Page.ID)
}

func TestSearchEmptyQuery(t *testing.T) {
	store := &fakeStore{}
	e := NewEngine(store, store, nil)

	hits, err := e.Search(context.Background(), "  ??? ")
	require.NoError(t, err)
	assert.Empty(t, hits)
	assert.Zero(t, store.matchCalls)
	assert.Zero(t, store.listCalls)
}

func TestSearchCapsCombinedResult(t *testing.T) {
	var matched, all []*entity.Page
	for i := 1; i <= 20; i++ {
		matched = append(matched, page(i, fmt.Sprintf("Plan %d", i)))
	}
	for i := 100; i < 400; i++ {
		all = append(all, page(i, fmt.Sprintf("Plan detalje %d", i)))
	}
	store := &fakeStore{matched: matched, all: all}
	e := NewEngine(store, store, nil)

	hits, err := e.Search(context.Background(), "plan")
	require.NoError(t, err)
	assert.Len(t, hits, 200)
	// primary hits stay in front
	assert.Equal(t, 1, hits[0].Page.ID)
	assert.Equal(t, 100, hits[20].Page.ID)
}

func TestBrowseOrdering(t *testing.T) {
	untitled := &entity.Page{ID: 4, PageNo: 1, Filename: "scan_b.pdf"}
	store := &fakeStore{all: []*entity.Page{
		{ID: 1, PageNo: 2, Filename: "scan_b.pdf", Gen2: entity.LabelGen{TitlesJSON: `["Facade"]`}},
		{ID: 2, PageNo: 1, Filename: "scan_b.pdf", Gen2: entity.LabelGen{TitlesJSON: `["facade"]`}},
		{ID: 3, PageNo: 1, Filename: "scan_a.pdf", Gen2: entity.LabelGen{TitlesJSON: `["Facade"]`}},
		untitled,
	}}
	e := NewEngine(store, store, nil)

	hits, err := e.Browse(context.Background())
	require.NoError(t, err)
	require.Len(t, hits, 4)

	// titled pages sort by normalized title, filename, page number; the
	// placeholder title sorts the untitled page last here
	assert.Equal(t, []int{3, 2, 1, 4}, []int{hits[0].Page.ID, hits[1].Page.ID, hits[2].Page.ID, hits[3].Page.ID})
	assert.Equal(t, labels.Placeholder, hits[3].Label.Title)
}
