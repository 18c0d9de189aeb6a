// Package search answers label queries over the archive: a normalized
// prefix-AND pass against the FTS index first, widened by a raw substring
// scan only when the index pass comes back thin.
package search

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/cbruhn/drawing-archive/constants"
	"github.com/cbruhn/drawing-archive/internal/entity"
	"github.com/cbruhn/drawing-archive/internal/labels"
)

// Matcher is the index-side query surface.
type Matcher interface {
	Match(ctx context.Context, ftsQuery string, limit int) ([]*entity.Page, error)
}

// Lister enumerates every page with its document loaded.
type Lister interface {
	ListAll(ctx context.Context) ([]*entity.Page, error)
}

// Hit pairs a page with its resolved display label.
type Hit struct {
	Page  *entity.Page
	Label labels.Label
}

type Engine struct {
	index  Matcher
	pages  Lister
	logger *slog.Logger
}

func NewEngine(index Matcher, pages Lister, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{index: index, pages: pages, logger: logger}
}

var (
	reNonSearchRune = regexp.MustCompile(`[^a-zæøå0-9\s]`)
	reTokenStrip    = regexp.MustCompile(`[^a-zæøå0-9]`)
)

// Normalize reduces a query or blob to the comparable form: lowercased,
// runes outside the Danish alphanumerics replaced by spaces, whitespace
// collapsed.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = reNonSearchRune.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// BuildFTSQuery turns a normalized query into the index query: each token is
// stripped to its alphanumerics and matched as a prefix, all tokens required.
// Empty when no token survives.
func BuildFTSQuery(normalized string) string {
	var terms []string
	for _, tok := range strings.Fields(normalized) {
		tok = reTokenStrip.ReplaceAllString(tok, "")
		if tok != "" {
			terms = append(terms, tok+"*")
		}
	}
	return strings.Join(terms, " AND ")
}

// Search runs the hybrid query. The index pass is primary; when it yields
// fewer distinct pages than the fallback threshold, a substring scan over the
// stored blobs widens the result. First occurrence of a page wins; the
// combined result is capped at the search limit.
func (e *Engine) Search(ctx context.Context, query string) ([]Hit, error) {
	qn := Normalize(query)
	if qn == "" {
		return []Hit{}, nil
	}

	var primary []*entity.Page
	if fts := BuildFTSQuery(qn); fts != "" {
		var err error
		primary, err = e.index.Match(ctx, fts, constants.SearchLimit)
		if err != nil {
			// a malformed MATCH never takes search down, the fallback still runs
			e.logger.Warn("search.fts.failed", "query", fts, "error", err)
			primary = nil
		}
	}

	combined := primary
	if len(dedup(primary)) < constants.FallbackThreshold {
		fallback, err := e.substringScan(ctx, qn)
		if err != nil {
			e.logger.Warn("search.substring.failed", "query", qn, "error", err)
		} else {
			combined = append(combined, fallback...)
		}
	}

	pages := dedup(combined)
	if len(pages) > constants.SearchLimit {
		pages = pages[:constants.SearchLimit]
	}

	e.logger.Debug("search.done", "query", query, "hits", len(pages))
	return toHits(pages), nil
}

// Browse lists the whole archive ordered for the catalog view: resolved
// title, then document filename, then page number, compared in normalized
// form.
func (e *Engine) Browse(ctx context.Context) ([]Hit, error) {
	pages, err := e.pages.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	hits := toHits(pages)
	sort.SliceStable(hits, func(i, j int) bool {
		ti, tj := Normalize(hits[i].Label.Title), Normalize(hits[j].Label.Title)
		if ti != tj {
			return ti < tj
		}
		fi, fj := Normalize(hits[i].Page.Filename), Normalize(hits[j].Page.Filename)
		if fi != fj {
			return fi < fj
		}
		return hits[i].Page.PageNo < hits[j].Page.PageNo
	})
	return hits, nil
}

// substringScan is the fallback pass: every stored blob is folded through
// Normalize and checked for the normalized query as a substring, so
// punctuation in the blob ("Nr. 135") still matches a bare query ("nr 135").
func (e *Engine) substringScan(ctx context.Context, qn string) ([]*entity.Page, error) {
	all, err := e.pages.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []*entity.Page
	for _, p := range all {
		if p.SearchBlob == "" {
			continue
		}
		if strings.Contains(Normalize(p.SearchBlob), qn) {
			out = append(out, p)
			if len(out) == constants.SearchLimit {
				break
			}
		}
	}
	return out, nil
}

func dedup(pages []*entity.Page) []*entity.Page {
	seen := make(map[int]struct{}, len(pages))
	var out []*entity.Page
	for _, p := range pages {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

func toHits(pages []*entity.Page) []Hit {
	hits := make([]Hit, len(pages))
	for i, p := range pages {
		hits[i] = Hit{Page: p, Label: labels.Resolve(p.Gen1, p.Gen2)}
	}
	return hits
}
