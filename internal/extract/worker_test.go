package extract

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbruhn/drawing-archive/internal/entity"
	"github.com/cbruhn/drawing-archive/internal/llm"
	"github.com/cbruhn/drawing-archive/internal/progress"
	"github.com/cbruhn/drawing-archive/internal/retry"
)

type fakePages struct {
	pending []*entity.Page

	saved     map[int]savedExtraction
	errorTags map[int]string
}

type savedExtraction struct {
	gen  entity.LabelGen
	blob string
	tag  string
}

func newFakePages(pending ...*entity.Page) *fakePages {
	return &fakePages{
		pending:   pending,
		saved:     map[int]savedExtraction{},
		errorTags: map[int]string{},
	}
}

func (f *fakePages) GetInfo(context.Context, int) (*entity.Page, error) { return nil, nil }

func (f *fakePages) ListAll(context.Context) ([]*entity.Page, error) { return nil, nil }

func (f *fakePages) KeyTextByDocument(context.Context, int) ([]string, error) { return nil, nil }

func (f *fakePages) SetThumbPath(context.Context, int, string) error { return nil }

func (f *fakePages) UpdateKeyText(context.Context, int, string) error { return nil }

func (f *fakePages) Delete(context.Context, int) error { return nil }

func (f *fakePages) ResetErrors(context.Context, int) (int, error) { return 0, nil }

func (f *fakePages) ListUnprocessed(_ context.Context, documentID int) ([]*entity.Page, error) {
	if documentID == 0 {
		return f.pending, nil
	}
	var out []*entity.Page
	for _, p := range f.pending {
		if p.DocumentID == documentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePages) SaveExtraction(_ context.Context, id int, gen entity.LabelGen, blob, tag string) error {
	f.saved[id] = savedExtraction{gen: gen, blob: blob, tag: tag}
	return nil
}

func (f *fakePages) MarkExtractionError(_ context.Context, id int, tag string) error {
	f.errorTags[id] = tag
	return nil
}

type fakeIndex struct {
	replaced map[int]string
}

func newFakeIndex() *fakeIndex { return &fakeIndex{replaced: map[int]string{}} }

func (f *fakeIndex) EnsureIndex(context.Context) error { return nil }

func (f *fakeIndex) Remove(context.Context, int) error { return nil }

func (f *fakeIndex) RebuildAll(context.Context) (int, error) { return 0, nil }

func (f *fakeIndex) UpdateDocument(context.Context, int) (int, error) { return 0, nil }

func (f *fakeIndex) Match(context.Context, string, int) ([]*entity.Page, error) { return nil, nil }

func (f *fakeIndex) Replace(_ context.Context, pageID int, blob string) error {
	f.replaced[pageID] = blob
	return nil
}

type fakeExtractor struct {
	fields llm.LabelFields
	err    error
	calls  int
}

func (f *fakeExtractor) ExtractLabels(context.Context, llm.ExtractRequest) (llm.LabelFields, []byte, error) {
	f.calls++
	return f.fields, nil, f.err
}

func (f *fakeExtractor) Model() string { return "test-model" }

func writeThumb(t *testing.T, dir string, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(2, 2, color.RGBA{R: 0x20, A: 0xff})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func fastPolicy() retry.Policy {
	return retry.Policy{MaxAttempts: 3, BaseDelay: 0}
}

func TestRunSuccessNormalizesAndIndexes(t *testing.T) {
	dir := t.TempDir()
	thumb := writeThumb(t, dir, "1_1.png")

	pages := newFakePages(&entity.Page{ID: 11, DocumentID: 1, PageNo: 1, ThumbPath: thumb})
	index := newFakeIndex()
	ext := &fakeExtractor{fields: llm.LabelFields{
		Titles:     []string{"  Rumopdeling ved skranke  ", "rumopdeling ved skranke", "Snit A-A"},
		Nr:         " 135 ",
		Scale:      " 1:2 ",
		Confidence: 0.91,
	}}

	w := NewWorker(pages, index, ext, dir, nil).WithPolicy(fastPolicy())
	stats, err := w.Run(context.Background(), 0, nil)
	require.NoError(t, err)

	assert.Equal(t, Stats{Total: 1, Succeeded: 1}, stats)
	saved := pages.saved[11]
	assert.Equal(t, `["Rumopdeling ved skranke","Snit A-A"]`, saved.gen.TitlesJSON)
	assert.Equal(t, "135", saved.gen.Nr)
	assert.Equal(t, "1:2", saved.gen.Scale)
	assert.InDelta(t, 0.91, saved.gen.Confidence, 1e-6)
	assert.Equal(t, "llm:v2:test-model", saved.tag)
	assert.Equal(t, "Rumopdeling ved skranke · Snit A-A · Nr. 135 · 1:2", saved.blob)
	assert.Equal(t, saved.blob, index.replaced[11])
}

func TestRunExhaustedRetriesTagsAndContinues(t *testing.T) {
	dir := t.TempDir()
	t1 := writeThumb(t, dir, "1_1.png")
	t2 := writeThumb(t, dir, "1_2.png")

	pages := newFakePages(
		&entity.Page{ID: 21, DocumentID: 1, PageNo: 1, ThumbPath: t1},
		&entity.Page{ID: 22, DocumentID: 1, PageNo: 2, ThumbPath: t2},
	)
	index := newFakeIndex()
	ext := &fakeExtractor{err: &llm.StatusError{Code: 500, Body: "boom"}}

	w := NewWorker(pages, index, ext, dir, nil).WithPolicy(fastPolicy())
	stats, err := w.Run(context.Background(), 0, nil)
	require.NoError(t, err)

	assert.Equal(t, Stats{Total: 2, Failed: 2}, stats)
	assert.Equal(t, "llm_error_v2:http_500", pages.errorTags[21])
	assert.Equal(t, "llm_error_v2:http_500", pages.errorTags[22])
	assert.Empty(t, pages.saved)
	assert.Empty(t, index.replaced)
	// both pages got the full attempt budget
	assert.Equal(t, 6, ext.calls)
}

func TestRunMissingThumbLeavesPageUntouched(t *testing.T) {
	dir := t.TempDir()
	pages := newFakePages(&entity.Page{ID: 31, DocumentID: 2, PageNo: 1})
	index := newFakeIndex()
	ext := &fakeExtractor{}

	var events []progress.Event
	w := NewWorker(pages, index, ext, dir, nil).WithPolicy(fastPolicy())
	stats, err := w.Run(context.Background(), 0, func(ev progress.Event) { events = append(events, ev) })
	require.NoError(t, err)

	assert.Equal(t, Stats{Total: 1, MissingThumb: 1}, stats)
	assert.Empty(t, pages.saved)
	assert.Empty(t, pages.errorTags)
	assert.Zero(t, ext.calls)

	var sawMissing bool
	for _, ev := range events {
		if e, ok := ev.(progress.Extraction); ok && e.Status == progress.StatusMissingThumb {
			sawMissing = true
			assert.Equal(t, 31, e.PageID)
		}
	}
	assert.True(t, sawMissing)
}

func TestRunUnreadableImageIsTerminal(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "1_1.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not a png"), 0o644))

	pages := newFakePages(&entity.Page{ID: 41, DocumentID: 1, PageNo: 1, ThumbPath: garbage})
	ext := &fakeExtractor{}

	w := NewWorker(pages, newFakeIndex(), ext, dir, nil).WithPolicy(fastPolicy())
	stats, err := w.Run(context.Background(), 0, nil)
	require.NoError(t, err)

	assert.Equal(t, Stats{Total: 1, Failed: 1}, stats)
	assert.Equal(t, "llm_error_v2:image", pages.errorTags[41])
	assert.Zero(t, ext.calls)
}

func TestRunScopedToDocument(t *testing.T) {
	dir := t.TempDir()
	t1 := writeThumb(t, dir, "1_1.png")
	t2 := writeThumb(t, dir, "2_1.png")

	pages := newFakePages(
		&entity.Page{ID: 51, DocumentID: 1, PageNo: 1, ThumbPath: t1},
		&entity.Page{ID: 52, DocumentID: 2, PageNo: 1, ThumbPath: t2},
	)
	ext := &fakeExtractor{fields: llm.LabelFields{Titles: []string{"Plan"}, Confidence: 0.5}}

	w := NewWorker(pages, newFakeIndex(), ext, dir, nil).WithPolicy(fastPolicy())
	stats, err := w.Run(context.Background(), 2, nil)
	require.NoError(t, err)

	assert.Equal(t, Stats{Total: 1, Succeeded: 1}, stats)
	assert.Contains(t, pages.saved, 52)
	assert.NotContains(t, pages.saved, 51)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	dir := t.TempDir()
	t1 := writeThumb(t, dir, "1_1.png")
	pages := newFakePages(&entity.Page{ID: 61, DocumentID: 1, PageNo: 1, ThumbPath: t1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewWorker(pages, newFakeIndex(), &fakeExtractor{}, dir, nil).WithPolicy(fastPolicy())
	_, err := w.Run(ctx, 0, nil)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, pages.saved)
	assert.Empty(t, pages.errorTags)
}
