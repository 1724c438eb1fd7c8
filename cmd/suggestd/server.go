package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"

	"typeahead/internal/domain"
	"typeahead/internal/logging"
	"typeahead/internal/source"
)

// record is the wire shape of one suggestion
type record struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Metadata any    `json:"metadata,omitempty"`
}

type server struct {
	items *source.Static
}

func newServer(items []domain.Item) *server {
	return &server{items: source.NewStaticItems(items)}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/suggest", s.handleSuggest)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return withRequestLog(mux)
}

// handleSuggest answers ?term= with the matching items, optionally capped
// by ?limit=
func (s *server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	matches := s.items.Resolve(r.Context(), q.Get(source.TermParam))

	if raw := q.Get("limit"); raw != "" {
		limit, err := cast.ToIntE(raw)
		if err != nil || limit < 0 {
			http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		if limit < len(matches) {
			matches = matches[:limit]
		}
	}

	out := make([]record, len(matches))
	for i, it := range matches {
		out[i] = record{Value: it.Value, Label: it.Label, Metadata: it.Metadata}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		logging.Warn("failed to write response", "error", err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func withRequestLog(next http.Handler) http.Handler {
	logger := logging.WithPrefix("http")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if logger == nil {
			return
		}
		logger.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"term", r.URL.Query().Get(source.TermParam),
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
