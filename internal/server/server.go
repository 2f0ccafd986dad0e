// Package server exposes the conversation over HTTP: commands, session
// history, and a live state stream over WebSocket.
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/lealimarco/the-psychologist-dog/internal/dialogue"
	"github.com/lealimarco/the-psychologist-dog/internal/session"
)

// #region server-struct

// Server serves the control surface for one running controller.
type Server struct {
	ctrl  *dialogue.Controller
	store *session.Store // nil disables history routes
}

// NewServer wires the HTTP surface to a controller.
func NewServer(ctrl *dialogue.Controller, store *session.Store) *Server {
	return &Server{ctrl: ctrl, store: store}
}

// #endregion server-struct

// #region router

// Router builds the chi router with all routes registered.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Post("/api/start", s.handleStart)
	r.Get("/api/state", s.handleState)
	if s.store != nil {
		r.Get("/api/sessions", s.handleListSessions)
		r.Get("/api/sessions/{id}", s.handleGetSession)
		r.Get("/api/sessions/{id}/turns", s.handleListTurns)
	}
	r.Get("/ws/state", s.handleStateStream)

	return r
}

// #endregion router

// #region command-handlers

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	s.ctrl.Submit(dialogue.Start{})
	w.WriteHeader(http.StatusAccepted)
	writeJSON(w, map[string]string{"status": "started"})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.ctrl.Snapshot())
}

// #endregion command-handlers

// #region history-handlers

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.ListSessions(50)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, recs)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.GetSession(chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, rec)
}

func (s *Server) handleListTurns(w http.ResponseWriter, r *http.Request) {
	turns, err := s.store.ListTurns(chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, turns)
}

// #endregion history-handlers

// #region helpers

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] encode response: %v", err)
	}
}

func httpError(w http.ResponseWriter, code int, err error) {
	log.Printf("[HTTP] %d: %v", code, err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// #endregion helpers
