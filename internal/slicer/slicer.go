// Package slicer derives single-page PDF downloads from the archived source
// documents. Slices are built from the stored bytes on demand and never
// persisted.
package slicer

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/cbruhn/drawing-archive/internal/common"
	"github.com/cbruhn/drawing-archive/internal/labels"
)

type Slicer struct {
	logger *slog.Logger
}

func NewSlicer(logger *slog.Logger) *Slicer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slicer{logger: logger}
}

// PageCount returns the number of pages in the PDF at path.
func (s *Slicer) PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, common.WrapError(common.ErrInternal, fmt.Sprintf("page count of %s", filepath.Base(path)), err)
	}
	return n, nil
}

// ExtractPage returns pageNo (1-based) of the PDF at path as a standalone
// single-page PDF. Page numbers outside the document yield ErrInvalidPage;
// a missing source file yields ErrNotFound.
func (s *Slicer) ExtractPage(path string, pageNo int) ([]byte, error) {
	if pageNo < 1 {
		return nil, common.ErrInvalidPage
	}

	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(common.ErrInternal, "read source pdf", err)
	}

	total, err := api.PageCount(bytes.NewReader(src), nil)
	if err != nil {
		return nil, common.WrapError(common.ErrInternal, "parse source pdf", err)
	}
	if pageNo > total {
		return nil, common.ErrInvalidPage
	}

	var out bytes.Buffer
	if err := api.Trim(bytes.NewReader(src), &out, []string{strconv.Itoa(pageNo)}, trimConfiguration()); err != nil {
		return nil, common.WrapError(common.ErrInternal, fmt.Sprintf("slice page %d", pageNo), err)
	}

	slice := pinVolatileMetadata(out.Bytes())

	s.logger.Debug("slicer.page.extracted", "path", path, "page_no", pageNo, "bytes", len(slice))
	return slice, nil
}

// trimConfiguration disables object and xref streams so the document info
// dictionary and trailer land in the output as cleartext, where
// pinVolatileMetadata can reach them.
func trimConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.WriteObjectStream = false
	conf.WriteXRefStream = false
	return conf
}

var (
	reInfoDate  = regexp.MustCompile(`/(?:CreationDate|ModDate)\s*\((D:[^)]*)\)`)
	reTrailerID = regexp.MustCompile(`/ID\s*\[\s*<([0-9a-fA-F]*)>\s*<([0-9a-fA-F]*)>\s*\]`)
)

const pinnedDate = "D:20000101000000+00'00'"

// pinVolatileMetadata rewrites the wall-clock metadata pdfcpu stamps on every
// write (info dict CreationDate/ModDate, trailer file ID) to fixed values, so
// slicing the same page always yields the same bytes. All rewrites preserve
// byte length; the xref offsets stay valid.
func pinVolatileMetadata(b []byte) []byte {
	for _, loc := range reInfoDate.FindAllSubmatchIndex(b, -1) {
		overwrite(b[loc[2]:loc[3]], pinnedDate)
	}
	for _, loc := range reTrailerID.FindAllSubmatchIndex(b, -1) {
		for _, id := range [][]byte{b[loc[2]:loc[3]], b[loc[4]:loc[5]]} {
			for i := range id {
				id[i] = '0'
			}
		}
	}
	return b
}

func overwrite(dst []byte, s string) {
	for i := range dst {
		if i < len(s) {
			dst[i] = s[i]
		} else {
			dst[i] = ' '
		}
	}
}

// DownloadName builds the filename offered for a page download: the resolved
// title when one exists, otherwise the source document's stem, sanitized.
func DownloadName(title, sourceFilename string, pageNo int) string {
	base := title
	if base == "" || base == labels.Placeholder {
		base = strings.TrimSuffix(sourceFilename, filepath.Ext(sourceFilename))
	}
	name := labels.SafeFilename(base)
	if name == "side" {
		name = "side_" + strconv.Itoa(pageNo)
	}
	return name + ".pdf"
}
