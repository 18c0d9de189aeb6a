package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var reStemRune = regexp.MustCompile(`[^\wæøåÆØÅ0-9\- ]`)

// safeStem reduces a source filename to an archive-friendly stem: the .pdf
// suffix is dropped, runes outside letters, digits, dash and space are
// removed, runs of whitespace become single underscores and the result is
// capped at 80 runes. Empty input falls back to "doc".
func safeStem(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	stem = reStemRune.ReplaceAllString(stem, "")
	stem = strings.Join(strings.Fields(stem), "_")
	if r := []rune(stem); len(r) > 80 {
		stem = string(r[:80])
	}
	if stem == "" {
		return "doc"
	}
	return stem
}

// uniquePDFPath returns dir/<stem>.pdf, appending _2, _3, ... while the name
// is already taken.
func uniquePDFPath(dir, stem string) string {
	path := filepath.Join(dir, stem+".pdf")
	for n := 2; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%d.pdf", stem, n))
	}
}
