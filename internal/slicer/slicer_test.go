package slicer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbruhn/drawing-archive/internal/common"
)

// fixturePDF assembles a minimal classic-layout PDF with the given number of
// empty pages, tracking byte offsets while writing so the xref table is
// correct by construction.
func fixturePDF(pageCount int) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := []int{0}
	addObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets)-1, body)
	}

	kids := make([]string, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 3+i))
	}

	addObj("<< /Type /Catalog /Pages 2 0 R >>")
	addObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pageCount))
	for i := 0; i < pageCount; i++ {
		addObj("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] >>")
	}

	start := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets))
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets), start)

	return buf.Bytes()
}

func writeFixture(t *testing.T, pageCount int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.pdf")
	require.NoError(t, os.WriteFile(path, fixturePDF(pageCount), 0o644))
	return path
}

func TestDownloadNameFromTitle(t *testing.T) {
	assert.Equal(t, "Rumopdeling ved skranke.pdf", DownloadName("Rumopdeling ved skranke", "scan_001.pdf", 3))
}

func TestDownloadNameStripsUnsafeRunes(t *testing.T) {
	assert.Equal(t, "Snit A-A 12.pdf", DownloadName(`Snit A-A: 1/2?`, "scan.pdf", 1))
}

func TestDownloadNameFallsBackToSourceStem(t *testing.T) {
	assert.Equal(t, "scan_001.pdf", DownloadName("", "scan_001.pdf", 3))
	assert.Equal(t, "scan_001.pdf", DownloadName("(mangler titel)", "scan_001.pdf", 3))
}

func TestDownloadNameLastResortUsesPageNo(t *testing.T) {
	assert.Equal(t, "side_7.pdf", DownloadName("", "???.pdf", 7))
}

func TestExtractPageRejectsNonPositivePage(t *testing.T) {
	s := NewSlicer(nil)
	_, err := s.ExtractPage("irrelevant.pdf", 0)
	assert.True(t, errors.Is(err, common.ErrInvalidPage))
	_, err = s.ExtractPage("irrelevant.pdf", -3)
	assert.True(t, errors.Is(err, common.ErrInvalidPage))
}

func TestExtractPageBeyondLastPageIsInvalid(t *testing.T) {
	s := NewSlicer(nil)
	path := writeFixture(t, 2)

	_, err := s.ExtractPage(path, 3)
	assert.True(t, errors.Is(err, common.ErrInvalidPage))
	assert.False(t, errors.Is(err, common.ErrNotFound))
}

func TestExtractPageIsByteDeterministic(t *testing.T) {
	s := NewSlicer(nil)
	path := writeFixture(t, 2)

	first, err := s.ExtractPage(path, 1)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(first, []byte("%PDF-")))

	// Cross a wall-clock second so stamped metadata would differ.
	time.Sleep(1100 * time.Millisecond)

	second, err := s.ExtractPage(path, 1)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first, second))
}

func TestPageCountOfFixture(t *testing.T) {
	s := NewSlicer(nil)
	n, err := s.PageCount(writeFixture(t, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestExtractPageMissingFileIsNotFound(t *testing.T) {
	s := NewSlicer(nil)
	_, err := s.ExtractPage(filepath.Join(t.TempDir(), "gone.pdf"), 1)
	assert.True(t, errors.Is(err, common.ErrNotFound))
	assert.False(t, errors.Is(err, common.ErrInvalidPage))
}
