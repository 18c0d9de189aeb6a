// Package server exposes the archive over HTTP: search and browse, thumbnail
// and page-slice delivery, uploads and the catalog export.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cbruhn/drawing-archive/internal/export"
	"github.com/cbruhn/drawing-archive/internal/ingest"
	"github.com/cbruhn/drawing-archive/internal/pages"
	"github.com/cbruhn/drawing-archive/internal/search"
)

type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

type Deps struct {
	Engine   *search.Engine
	Pages    *pages.Service
	Ingest   *ingest.Service
	Export   *export.Service
	ThumbDir string
}

func New(addr string, deps Deps, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	h := &handlers{deps: deps, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", h.health)
	r.Get("/api/search", h.search)
	r.Get("/api/page/{id}", h.pageInfo)
	r.Get("/thumb/{name}", h.thumb)
	r.Get("/page/{id}/view", h.pageView)
	r.Get("/page/{id}/download", h.pageDownload)
	r.Delete("/page/{id}", h.pageDelete)
	r.Get("/export.xlsx", h.exportXLSX)
	r.Post("/api/import", h.importPDF)

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	s.logger.Info("http server shutting down")
	return s.httpServer.Shutdown(shutdownCtx)
}
