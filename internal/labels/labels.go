// Package labels resolves the current-schema view of a page's extracted
// metadata. Two generations of label fields coexist in the store; every read
// path goes through Resolve so the preference order (generation 2 first,
// field by field) lives in exactly one place.
package labels

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/cbruhn/drawing-archive/constants"
	"github.com/cbruhn/drawing-archive/internal/entity"
)

// Placeholder is shown when a page has no resolved title. It is substituted
// at read time only; an empty title list is never persisted as this value.
const Placeholder = "(mangler titel)"

// SearchSep joins the parts of a page's search blob.
const SearchSep = " · "

// Label is the normalized display form of a page's metadata.
type Label struct {
	Title  string
	Extras []string
	Nr     string
	Scale  string
}

var (
	reNrPrefix     = regexp.MustCompile(`(?i)^nr\.?\s*`)
	reUnsafeRune   = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	reMultiSpace   = regexp.MustCompile(`\s+`)
)

// ParseTitles decodes a stored JSON title list, dropping blanks. Malformed
// input yields nil rather than an error: legacy rows may hold garbage.
func ParseTitles(s string) []string {
	if s == "" {
		return nil
	}
	var raw []any
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil
	}
	var out []string
	for _, v := range raw {
		t, ok := v.(string)
		if !ok {
			continue
		}
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Resolve prefers generation 2 per field, falls back to generation 1, and
// substitutes the placeholder title when neither generation has one.
func Resolve(gen1, gen2 entity.LabelGen) Label {
	titles := ParseTitles(gen2.TitlesJSON)
	if len(titles) == 0 {
		titles = ParseTitles(gen1.TitlesJSON)
	}
	nr := gen2.Nr
	if nr == "" {
		nr = gen1.Nr
	}
	scale := gen2.Scale
	if scale == "" {
		scale = gen1.Scale
	}

	if len(titles) == 0 {
		titles = []string{Placeholder}
	}

	return Label{
		Title:  titles[0],
		Extras: titles[1:],
		Nr:     CanonicalNr(nr),
		Scale:  strings.TrimSpace(scale),
	}
}

// CanonicalNr normalizes a catalog number to the "Nr. <value>" form. Input
// already carrying a case-insensitive "Nr" prefix is kept as-is (trimmed) so
// round-tripping never double-prefixes. Leading stray punctuation is dropped
// first, avoiding artifacts like "Nr. .104".
func CanonicalNr(nr string) string {
	nr = strings.TrimSpace(nr)
	if nr == "" {
		return ""
	}
	if reNrPrefix.MatchString(nr) {
		return nr
	}
	nr = strings.TrimLeft(nr, " .-")
	if nr == "" {
		return ""
	}
	return "Nr. " + nr
}

// CleanTitles trims, caps and de-duplicates a raw extracted title list:
// each title is cut at MaxTitleLen runes, duplicates are dropped
// case-insensitively keeping first-seen order, and the list is capped at
// MaxTitles entries.
func CleanTitles(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	var out []string
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if r := []rune(t); len(r) > constants.MaxTitleLen {
			t = string(r[:constants.MaxTitleLen])
		}
		key := strings.ToLower(t)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
		if len(out) == constants.MaxTitles {
			break
		}
	}
	return out
}

// SearchBlob joins titles, catalog number and scale into the text that gets
// indexed, skipping empty parts.
func SearchBlob(titles []string, nr, scale string) string {
	parts := make([]string, 0, len(titles)+2)
	for _, t := range titles {
		if t = strings.TrimSpace(t); t != "" {
			parts = append(parts, t)
		}
	}
	if nr = strings.TrimSpace(nr); nr != "" {
		parts = append(parts, nr)
	}
	if scale = strings.TrimSpace(scale); scale != "" {
		parts = append(parts, scale)
	}
	return strings.Join(parts, SearchSep)
}

// TitlesJSON encodes a cleaned title list for storage.
func TitlesJSON(titles []string) string {
	if titles == nil {
		titles = []string{}
	}
	b, _ := json.Marshal(titles)
	return string(b)
}

// SafeFilename reduces s to a form safe for a Content-Disposition filename:
// letters, digits, underscore, dash and single spaces, capped at 120 runes.
// Empty input falls back to "side".
func SafeFilename(s string) string {
	s = reUnsafeRune.ReplaceAllString(strings.TrimSpace(s), "")
	s = strings.TrimSpace(reMultiSpace.ReplaceAllString(s, " "))
	r := []rune(s)
	if len(r) > 120 {
		s = string(r[:120])
	}
	if s == "" {
		return "side"
	}
	return s
}
