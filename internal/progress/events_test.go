package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLine(t *testing.T) {
	cases := []struct {
		ev   Event
		want string
	}{
		{DocumentCreated{DocumentID: 5}, "DOCUMENT_ID=5"},
		{PageCount{Total: 65}, "PAGES=65"},
		{Thumbnail{Page: 3, Total: 65}, "THUMB 3/65"},
		{Extraction{Index: 3, Total: 65, PageID: 12, Status: StatusOK, Confidence: 0.88}, "[3/65] page_id=12 OK conf=0.88"},
		{Extraction{Index: 4, Total: 65, PageID: 13, Status: StatusMissingThumb}, "[4/65] page_id=13 MISSING_THUMB"},
		{Extraction{Index: 5, Total: 65, PageID: 14, Status: StatusError, Err: "timeout"}, "[5/65] page_id=14 ERROR: timeout"},
		{Diagnostic{Message: "Pages to enrich (missing): 12"}, "Pages to enrich (missing): 12"},
		{Completed{Stage: StageIngest, Elapsed: time.Second}, "INGEST_DONE=1"},
		{Failed{Stage: StageExtract, Err: "boom"}, "EXTRACT_FAILED=1 boom"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Line(c.ev))
	}
}

func TestEmitNilSink(t *testing.T) {
	// must not panic
	Emit(nil, PageCount{Total: 1})

	var got []Event
	Emit(func(e Event) { got = append(got, e) }, Thumbnail{Page: 1, Total: 2})
	assert.Len(t, got, 1)
}
