// Package server implements the HTTP API for the activities signup service.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/registry"
	"github.com/mergington/activities/internal/server/web"
)

// SignupResponse confirms a successful signup.
type SignupResponse struct {
	Message string `json:"message"`
}

// DetailResponse carries a human-readable error detail.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// Server is the activities API server. It translates HTTP requests into
// registry calls and maps outcomes to status codes.
type Server struct {
	cfg        *config.ServerConfig
	mux        *http.ServeMux
	reg        *registry.Registry
	metrics    *Metrics
	httpServer *http.Server
}

// NewServer creates a new activities server around the given registry.
func NewServer(cfg *config.ServerConfig, reg *registry.Registry) *Server {
	s := &Server{
		cfg: cfg,
		mux: http.NewServeMux(),
		reg: reg,
	}

	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		s.metrics = initMetrics(metricsRegistry)
		s.metrics.seed(reg)
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/activities", s.handleActivities)
	s.mux.HandleFunc("/activities/", s.handleSignup)

	// Serve the embedded signup frontend
	staticFS, _ := fs.Sub(web.Assets, ".")
	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	if s.metrics != nil {
		s.mux.Handle("/metrics", metricsHandler())
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	s.mux.ServeHTTP(rec, r)

	log.Debug().
		Str("request_id", uuid.New().String()).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", rec.status).
		Dur("duration", time.Since(start)).
		Msg("request")
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// handleRoot redirects the site root to the static frontend. The catch-all
// pattern also sees every otherwise-unmatched path, which gets a JSON 404.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.jsonError(w, "Not Found", http.StatusNotFound)
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleActivities returns the full activity registry as a name-keyed map.
func (s *Server) handleActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.reg.List())
}

// handleSignup registers an email for an activity.
// Path shape: /activities/{name}/signup?email={email}. Activity names may
// contain spaces; net/http decodes the path before we see it.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	name, ok := strings.CutSuffix(rest, "/signup")
	if !ok || name == "" || strings.Contains(name, "/") {
		s.jsonError(w, "Not Found", http.StatusNotFound)
		return
	}

	if r.Method != http.MethodPost {
		s.jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		s.jsonError(w, "email is required", http.StatusBadRequest)
		return
	}

	rosterSize, err := s.reg.Signup(name, email)
	switch {
	case errors.Is(err, registry.ErrActivityNotFound):
		if s.metrics != nil {
			s.metrics.SignupsRejected.WithLabelValues("not_found").Inc()
		}
		s.jsonError(w, "Activity not found", http.StatusNotFound)
		return
	case errors.Is(err, registry.ErrAlreadySignedUp):
		if s.metrics != nil {
			s.metrics.SignupsRejected.WithLabelValues("duplicate").Inc()
		}
		s.jsonError(w, "Student is already signed up", http.StatusBadRequest)
		return
	case err != nil:
		s.jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if s.metrics != nil {
		s.metrics.SignupsTotal.Inc()
		s.metrics.Participants.WithLabelValues(name).Set(float64(rosterSize))
	}

	log.Info().
		Str("activity", name).
		Str("email", email).
		Msg("student signed up")

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(SignupResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (s *Server) jsonError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(DetailResponse{Detail: message})
}

// ListenAndServe starts the activities server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	log.Info().Str("listen", s.cfg.Listen).Msg("starting activities server")

	s.httpServer = &http.Server{
		Addr:         s.cfg.Listen,
		Handler:      s,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}
