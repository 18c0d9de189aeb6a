// Package progress carries structured progress events from the long-running
// batch stages to their caller. Consumers receive typed events instead of
// scraping log text; the legacy line protocol is produced by Line for
// external processes that still follow it.
package progress

import (
	"fmt"
	"time"
)

// Event is one progress signal from an ingestion or extraction run.
type Event interface{ isEvent() }

// DocumentCreated is emitted once the document row exists.
type DocumentCreated struct {
	DocumentID int `json:"document_id"`
}

// PageCount reports the total page count, known before rendering starts.
type PageCount struct {
	Total int `json:"total"`
}

// Thumbnail is emitted after each rendered page thumbnail.
type Thumbnail struct {
	Page  int `json:"page"`
	Total int `json:"total"`
}

// Extraction is emitted once per page attempt in the extraction stage.
type Extraction struct {
	Index      int     `json:"index"`
	Total      int     `json:"total"`
	PageID     int     `json:"page_id"`
	Status     string  `json:"status"` // OK | ERROR | MISSING_THUMB
	Confidence float32 `json:"confidence,omitempty"`
	Err        string  `json:"err,omitempty"`
}

// Diagnostic is an opaque informational line; consumers may surface it on
// failure but must not depend on it for success-path parsing.
type Diagnostic struct {
	Message string `json:"message"`
}

// Completed terminates a successful run of the named stage.
type Completed struct {
	Stage   string        `json:"stage"`
	Elapsed time.Duration `json:"elapsed"`
}

// Failed terminates an aborted run.
type Failed struct {
	Stage string `json:"stage"`
	Err   string `json:"err"`
}

func (DocumentCreated) isEvent() {}
func (PageCount) isEvent()       {}
func (Thumbnail) isEvent()       {}
func (Extraction) isEvent()      {}
func (Diagnostic) isEvent()      {}
func (Completed) isEvent()       {}
func (Failed) isEvent()          {}

// Sink receives events. Services accept a nil Sink; use Emit to send.
type Sink func(Event)

// Emit sends ev to sink if one is attached.
func Emit(sink Sink, ev Event) {
	if sink != nil {
		sink(ev)
	}
}

// Extraction statuses.
const (
	StatusOK           = "OK"
	StatusError        = "ERROR"
	StatusMissingThumb = "MISSING_THUMB"
)

// Line renders ev in the line-oriented wire protocol consumed by external
// callers: prefix-tagged markers for the success path, free-form diagnostics
// otherwise.
func Line(ev Event) string {
	switch e := ev.(type) {
	case DocumentCreated:
		return fmt.Sprintf("DOCUMENT_ID=%d", e.DocumentID)
	case PageCount:
		return fmt.Sprintf("PAGES=%d", e.Total)
	case Thumbnail:
		return fmt.Sprintf("THUMB %d/%d", e.Page, e.Total)
	case Extraction:
		switch e.Status {
		case StatusOK:
			return fmt.Sprintf("[%d/%d] page_id=%d OK conf=%.2f", e.Index, e.Total, e.PageID, e.Confidence)
		case StatusMissingThumb:
			return fmt.Sprintf("[%d/%d] page_id=%d MISSING_THUMB", e.Index, e.Total, e.PageID)
		default:
			return fmt.Sprintf("[%d/%d] page_id=%d ERROR: %s", e.Index, e.Total, e.PageID, e.Err)
		}
	case Diagnostic:
		return e.Message
	case Completed:
		return fmt.Sprintf("%s_DONE=1", stageTag(e.Stage))
	case Failed:
		return fmt.Sprintf("%s_FAILED=1 %s", stageTag(e.Stage), e.Err)
	}
	return ""
}

func stageTag(stage string) string {
	switch stage {
	case StageIngest:
		return "INGEST"
	case StageExtract:
		return "EXTRACT"
	case StageIndex:
		return "INDEX"
	}
	return "RUN"
}

// Stage names used in Completed/Failed events.
const (
	StageIngest  = "ingest"
	StageExtract = "extract"
	StageIndex   = "index"
)
