// Package ocr extracts the "key text" of a page: a plain-text OCR pass over
// the left heading area of the scanned spread, stored alongside the page and
// mined later for document-level titles.
package ocr

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cbruhn/drawing-archive/internal/raster"
)

type Config struct {
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string // default "dan+eng"; Danish helps with æøå
	PSM           int    // default 6, uniform block of text
	DPI           int    // render DPI for the OCR pass, default 200
	Pdftoppm      string // passed through to the page renderer
}

// KeyTextExtractor renders a page, crops the left half and OCRs it.
type KeyTextExtractor struct {
	cfg      Config
	runner   raster.Runner
	renderer *raster.Renderer
	logger   *slog.Logger
}

func NewKeyTextExtractor(cfg Config, logger *slog.Logger) *KeyTextExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "dan+eng"
	}
	if cfg.PSM <= 0 {
		cfg.PSM = 6
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 200
	}
	return &KeyTextExtractor{
		cfg:      cfg,
		runner:   raster.ExecRunner{},
		renderer: raster.NewRenderer(raster.Config{Pdftoppm: cfg.Pdftoppm, DPI: cfg.DPI}, logger),
		logger:   logger,
	}
}

// WithRunner swaps the command runner; used by tests.
func (e *KeyTextExtractor) WithRunner(r raster.Runner) *KeyTextExtractor {
	e.runner = r
	e.renderer.WithRunner(r)
	return e
}

// ExtractKeyText OCRs the left half of pageNo (1-based) of pdfPath and
// returns the whitespace-collapsed text.
func (e *KeyTextExtractor) ExtractKeyText(ctx context.Context, pdfPath string, pageNo int) (string, error) {
	tmpDir, err := os.MkdirTemp("", "da-keytext-*")
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			e.logger.Warn("keytext temp dir cleanup failed", "dir", tmpDir, "error", err)
		}
	}()

	fullPNG := filepath.Join(tmpDir, "p"+strconv.Itoa(pageNo)+"_full.png")
	if err := e.renderer.RenderPage(ctx, pdfPath, pageNo, fullPNG); err != nil {
		return "", err
	}

	cropPNG := filepath.Join(tmpDir, "p"+strconv.Itoa(pageNo)+"_left.png")
	if err := cropLeftHalf(fullPNG, cropPNG); err != nil {
		return "", err
	}

	args := []string{cropPNG, "stdout", "-l", e.cfg.TesseractLang, "--psm", strconv.Itoa(e.cfg.PSM)}
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract page %d: %w (%s)", pageNo, err, strings.TrimSpace(string(errb)))
	}

	return strings.Join(strings.Fields(string(out)), " "), nil
}

func cropLeftHalf(inPath, outPath string) error {
	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("decode rendered page: %w", err)
	}

	b := src.Bounds()
	crop := image.NewRGBA(image.Rect(0, 0, b.Dx()/2, b.Dy()))
	draw.Draw(crop, crop.Bounds(), src, b.Min, draw.Src)

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()
	return png.Encode(out, crop)
}
