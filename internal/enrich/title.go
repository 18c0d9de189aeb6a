// Package enrich derives document-level metadata from the OCR key text of a
// document's pages. The heuristics are tuned for Danish drawing registers
// where sheet headings often read like "Rumopdeling ved skranke".
package enrich

import (
	"strings"
	"unicode"
)

const (
	minPieceLen   = 6
	maxCandidates = 40
)

// GuessTitle picks the most title-like fragment of a page's key text, or ""
// when nothing qualifies.
func GuessTitle(keyText string) string {
	pieces := splitPieces(keyText)
	if len(pieces) == 0 {
		return ""
	}

	// Headings like "Rumopdeling ved skranke" name a location; prefer those.
	for _, p := range pieces {
		if strings.Contains(strings.ToLower(p), " ved ") || strings.HasSuffix(strings.ToLower(p), " ved") || strings.HasPrefix(strings.ToLower(p), "ved ") {
			return p
		}
	}

	if len(pieces) > maxCandidates {
		pieces = pieces[:maxCandidates]
	}

	best := ""
	bestScore := 0
	for _, p := range pieces {
		s := score(p)
		if s > bestScore {
			best = p
			bestScore = s
		}
	}
	return best
}

func splitPieces(keyText string) []string {
	raw := strings.ReplaceAll(keyText, "|", "\n")
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		p := strings.Trim(line, " .,_-:;|")
		p = strings.Join(strings.Fields(p), " ")
		if len([]rune(p)) >= minPieceLen {
			out = append(out, p)
		}
	}
	return out
}

// score rewards letters and penalizes digits so measurement rows and sheet
// numbers lose to prose headings.
func score(piece string) int {
	letters, digits := 0, 0
	for _, r := range piece {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		}
	}
	return letters - 3*digits
}
