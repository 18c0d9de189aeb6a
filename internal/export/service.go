package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cbruhn/drawing-archive/internal/search"
)

// Service is a tiny façade over the search engine that produces XLSX bytes
// for the catalog export.
type Service struct {
	engine *search.Engine
	logger *slog.Logger
}

func NewService(engine *search.Engine, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{engine: engine, logger: logger}
}

// ExportCatalogXLSX returns an XLSX workbook (as bytes) listing every page in
// the browse order, one row per page.
func (s *Service) ExportCatalogXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	hits, err := s.engine.Browse(ctx)
	if err != nil {
		return nil, fmt.Errorf("browse pages: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Katalog"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet excelize creates
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Titel",
		"Øvrige titler",
		"Nr",
		"Mål",
		"Fil",
		"Side",
		"Status",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, hit := range hits {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, hit.Label.Title)
		write(2, truncate(strings.Join(hit.Label.Extras, "; "), 140))
		write(3, hit.Label.Nr)
		write(4, hit.Label.Scale)
		write(5, hit.Page.Filename)
		write(6, hit.Page.PageNo)
		write(7, hit.Page.StatusV2)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 40) // title
	_ = f.SetColWidth(sheet, "B", "B", 48) // extra titles
	_ = f.SetColWidth(sheet, "C", "D", 14) // nr, scale
	_ = f.SetColWidth(sheet, "E", "E", 36) // filename
	_ = f.SetColWidth(sheet, "F", "F", 8)  // page number
	_ = f.SetColWidth(sheet, "G", "G", 24) // status tag

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(hits),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
