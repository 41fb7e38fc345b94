package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heatgrid/heatgrid/pkg/frame"
	"github.com/heatgrid/heatgrid/pkg/heatmap"
)

// TableLoader supplies the current table for a render. It is called on
// every panel request so new data is picked up without a restart.
type TableLoader func() (*frame.Table, error)

// service represents the HTTP panel service.
type service struct {
	Host   string
	Port   int
	server *http.Server

	loader TableLoader
	opts   heatmap.Options
	width  int
	height int
}

// New creates a new service instance. opts, width and height are the
// render defaults; requests may override dimensions, direction and
// toggling per call.
func New(host string, port int, loader TableLoader, opts heatmap.Options, width, height int) *service {
	return &service{
		Host:   host,
		Port:   port,
		loader: loader,
		opts:   opts,
		width:  width,
		height: height,
	}
}

// Start runs the HTTP server.
func (s *service) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /panel", s.handlePanel)

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	slog.Info("Starting HTTP service", "address", addr)

	s.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *service) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *service) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePanel renders a fresh panel per request. Every request is a
// full render: table load, pruning, scales and colors are rebuilt from
// scratch, and the color mode starts at its initial state.
func (s *service) handlePanel(w http.ResponseWriter, r *http.Request) {
	opts := s.opts
	width, height := s.width, s.height

	q := r.URL.Query()
	if v := q.Get("width"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.respond(w, http.StatusBadRequest, map[string]string{"error": "Invalid width"})
			return
		}
		width = n
	}
	if v := q.Get("height"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.respond(w, http.StatusBadRequest, map[string]string{"error": "Invalid height"})
			return
		}
		height = n
	}
	if v := q.Get("direction"); v != "" {
		dir, err := heatmap.ParseDirection(v)
		if err != nil {
			s.respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		opts.Direction = dir
	}
	if v := q.Get("toggle"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			s.respond(w, http.StatusBadRequest, map[string]string{"error": "Invalid toggle flag"})
			return
		}
		opts.ToggleColor = b
	}

	table, err := s.loader()
	if err != nil {
		s.respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	panel, err := heatmap.New(table, opts, width, height)
	if err != nil {
		s.respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	svg, err := panel.Generate()
	if err != nil {
		s.respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(svg)); err != nil {
		slog.Error("Failed to write panel response", "error", err)
	}
}

func (s *service) respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
