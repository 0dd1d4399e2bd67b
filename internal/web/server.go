// Package web serves the leaderboard page. Read-only: it never writes
// to the store and assumes imports run offline.
package web

import (
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hward/gamenight/internal/store"
)

//go:embed templates/index.html
var indexHTML string

// Server renders the leaderboard from a results database.
type Server struct {
	store *store.Store
	tmpl  *template.Template
}

// NewServer builds a Server over an open store.
func NewServer(st *store.Store) (*Server, error) {
	tmpl, err := template.New("index").Parse(indexHTML)
	if err != nil {
		return nil, err
	}
	return &Server{store: st, tmpl: tmpl}, nil
}

// Handler returns the HTTP routes for the leaderboard site.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, req *http.Request) {
	standings, err := s.store.Leaderboard(req.Context())
	if err != nil {
		slog.Error("leaderboard query failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, map[string]any{"Standings": standings}); err != nil {
		slog.Error("template render failed", "error", err)
	}
}
