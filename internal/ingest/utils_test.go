package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeStem(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tegning 104.pdf", "Tegning_104"},
		{"løsninger ved skranke.PDF", "løsninger_ved_skranke"},
		{"a/b\\c:d.pdf", "abcd"},
		{"  spaced   out .pdf", "spaced_out"},
		{"???.pdf", "doc"},
		{"", "doc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, safeStem(tt.in), "safeStem(%q)", tt.in)
	}
}

func TestSafeStemCapsLength(t *testing.T) {
	long := strings.Repeat("a", 200) + ".pdf"
	assert.Len(t, []rune(safeStem(long)), 80)
}

func TestUniquePDFPath(t *testing.T) {
	dir := t.TempDir()

	p1 := uniquePDFPath(dir, "scan")
	assert.Equal(t, filepath.Join(dir, "scan.pdf"), p1)
	require.NoError(t, os.WriteFile(p1, []byte("x"), 0o644))

	p2 := uniquePDFPath(dir, "scan")
	assert.Equal(t, filepath.Join(dir, "scan_2.pdf"), p2)
	require.NoError(t, os.WriteFile(p2, []byte("x"), 0o644))

	p3 := uniquePDFPath(dir, "scan")
	assert.Equal(t, filepath.Join(dir, "scan_3.pdf"), p3)
}
