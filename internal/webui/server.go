// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package webui serves the search page. Each browser tab gets its own search
// view, driven over a WebSocket; a plain form post drives a one-off view
// when scripts are unavailable.
package webui

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/pdiddy/moment-search/internal/logger"
	"github.com/pdiddy/moment-search/internal/view"
	"github.com/pdiddy/moment-search/pkg/types"
)

const (
	defaultTitle       = "Video Moment Search"
	defaultPlaceholder = "Search Query for Video Moment..."
)

// Server renders the search page and hosts live sessions.
type Server struct {
	searcher view.Searcher
	backend  string
	embed    types.EmbedConfig
	ui       types.UIConfig

	upgrader  websocket.Upgrader
	startedAt time.Time
	sessions  atomic.Int64
}

// NewServer returns a Server whose views query searcher. backend is the
// endpoint reported by the status API.
func NewServer(searcher view.Searcher, backend string, embed types.EmbedConfig, ui types.UIConfig) *Server {
	if ui.Title == "" {
		ui.Title = defaultTitle
	}
	if ui.Placeholder == "" {
		ui.Placeholder = defaultPlaceholder
	}
	return &Server{
		searcher:  searcher,
		backend:   backend,
		embed:     embed,
		ui:        ui,
		upgrader:  websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 4096},
		startedAt: time.Now().UTC(),
	}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(logRequests)

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/", s.handleSubmit).Methods(http.MethodPost)
	r.HandleFunc("/ws", s.handleLive).Methods(http.MethodGet)
	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)

	return r
}

func (s *Server) newView(sessionID string) *view.View {
	return view.New(s.searcher, view.Options{
		EmbedHost: s.embed.Host,
		DropStale: s.ui.DropStaleResponses,
		SessionID: sessionID,
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.renderPage(w, view.State{})
}

// handleSubmit is the form fallback: one view, one submission, full page.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	v := s.newView(uuid.NewString())
	v.SetQuery(r.PostFormValue("query"))
	v.Submit(r.Context())
	s.renderPage(w, v.State())
}

func (s *Server) renderPage(w http.ResponseWriter, st view.State) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := pageTemplate.Execute(w, pageData{
		Title:       s.ui.Title,
		Placeholder: s.ui.Placeholder,
		IdleLabel:   idleLabel,
		BusyLabel:   busyLabel,
		State:       st,
	})
	if err != nil {
		logger.Error("rendering page: %v", err)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"started_at": s.startedAt.Format(time.RFC3339),
		"uptime_sec": int(time.Since(s.startedAt).Seconds()),
		"backend":    s.backend,
		"sessions":   s.sessions.Load(),
	})
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("%s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}
