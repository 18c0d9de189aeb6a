// Package raster renders single PDF pages to PNG via poppler's pdftoppm,
// behind a Runner so tests never need the binary.
package raster

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cbruhn/drawing-archive/constants"
)

type Config struct {
	Pdftoppm string // binary name or absolute path; if empty -> "pdftoppm"
	DPI      int    // rasterization DPI; if 0 -> constants.ThumbDPI
}

// Renderer rasterizes one page at a time at a fixed DPI.
type Renderer struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewRenderer(cfg Config, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = constants.ThumbDPI
	}
	return &Renderer{cfg: cfg, runner: ExecRunner{}, logger: logger}
}

// WithRunner swaps the command runner; used by tests.
func (r *Renderer) WithRunner(runner Runner) *Renderer {
	r.runner = runner
	return r
}

// RenderPage rasterizes pageNo (1-based) of pdfPath into outPath, which must
// end in ".png". pdftoppm writes "<prefix>.png" in -singlefile mode, so the
// prefix is derived by stripping the suffix.
func (r *Renderer) RenderPage(ctx context.Context, pdfPath string, pageNo int, outPath string) error {
	prefix := strings.TrimSuffix(outPath, ".png")
	if prefix == outPath {
		return fmt.Errorf("thumb path must end in .png: %q", outPath)
	}

	no := strconv.Itoa(pageNo)
	_, errb, err := r.runner.Run(ctx, r.cfg.Pdftoppm,
		"-png",
		"-r", strconv.Itoa(r.cfg.DPI),
		"-f", no,
		"-l", no,
		"-singlefile",
		pdfPath,
		prefix,
	)
	if err != nil {
		return fmt.Errorf("pdftoppm page %d: %w (%s)", pageNo, err, truncate(string(errb), 512))
	}
	if _, statErr := os.Stat(outPath); statErr != nil {
		return fmt.Errorf("pdftoppm produced no output for page %d: %w", pageNo, statErr)
	}
	return nil
}
