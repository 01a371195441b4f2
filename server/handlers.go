package server

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/YongjaeKwon0629/first-deploy/internal/models"
)

func (s *Server) renderError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmplFunc(w, "error.html", nil); err != nil {
		slog.Error("Failed to render error template", "error", err)
	}
}

// HandleIndex fetches the profile and the portfolio concurrently and renders
// the page only when both succeed.
func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	var (
		profile  models.Profile
		projects []models.Project
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		p, err := s.source.GetProfile(ctx)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		p, err := s.source.GetPortfolio(ctx)
		if err != nil {
			return err
		}
		projects = p
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("Failed to load resume", "error", err)
		s.renderError(w, http.StatusInternalServerError)
		return
	}

	data := models.IndexPageData{
		Profile:  profile,
		Projects: projects,
		Year:     s.now().Year(),
		Version:  s.version,
	}

	// Render into a buffer so a template failure never leaves half a page.
	var buf bytes.Buffer
	if err := s.tmplFunc(&buf, s.page, data); err != nil {
		slog.Error("Failed to render page template", "template", s.page, "error", err)
		s.renderError(w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write page", "error", err)
	}
}

func (s *Server) serveFile(path string, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := s.assets.Open(path)
		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		defer func() { _ = file.Close() }()
		w.Header().Set("Content-Type", contentType)
		_, _ = io.Copy(w, file)
	}
}

func (s *Server) cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		next.ServeHTTP(w, r)
	})
}
