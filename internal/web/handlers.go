package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"helpdock/internal/content"
	"helpdock/internal/search"
	"helpdock/internal/tracker"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "pages": len(s.lib.Pages())})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderHome(w); err != nil {
		s.log.Error("render home", "error", err)
	}
}

// handlePage renders a topic page. ?section=i redirects to the section's
// anchor, the server side counterpart of a sidebar click.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	p, err := s.lib.Page(chi.URLParam(r, "slug"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	if q := r.URL.Query().Get("section"); q != "" {
		i, err := strconv.Atoi(q)
		if err != nil {
			http.Error(w, "section must be an integer", http.StatusBadRequest)
			return
		}
		if _, err := tracker.RequestScrollTo(pageSections(p), i); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Redirect(w, r, fmt.Sprintf("/main/%s#section-%d", p.Slug, i), http.StatusFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderPage(w, p); err != nil {
		s.log.Error("render page", "slug", p.Slug, "error", err)
	}
}

type pageSummary struct {
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Order      int      `json:"order"`
	Categories []string `json:"categories"`
	Items      int      `json:"items"`
}

func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	pages := s.lib.Pages()
	out := make([]pageSummary, 0, len(pages))
	for _, p := range pages {
		sum := pageSummary{Slug: p.Slug, Title: p.Title, Order: p.Order, Items: p.ItemCount()}
		for _, c := range p.Categories {
			sum.Categories = append(sum.Categories, c.Name)
		}
		out = append(out, sum)
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"pages": out})
}

func (s *Server) handleGetPage(w http.ResponseWriter, r *http.Request) {
	p, err := s.lib.Page(chi.URLParam(r, "slug"))
	if errors.Is(err, content.ErrPageNotFound) {
		s.jsonError(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		s.jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"page":     p,
		"sections": pageSections(p),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		s.jsonError(w, "q query parameter is required", http.StatusBadRequest)
		return
	}
	limit := defaultSearchLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 {
			s.jsonError(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = min(n, maxSearchLimit)
	}
	results := s.idx.Search(q, limit)
	if results == nil {
		results = []search.Result{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"query":   q,
		"count":   len(results),
		"results": results,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", "status", code, "error", err)
	}
}

func (s *Server) jsonError(w http.ResponseWriter, msg string, code int) {
	s.writeJSON(w, code, map[string]string{"error": msg})
}
