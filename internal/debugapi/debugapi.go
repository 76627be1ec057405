// Package debugapi serves the navigation state over HTTP for scripted
// play and inspection during development. The API binds to localhost
// and only runs when explicitly enabled; it is no part of normal play.
package debugapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.uber.org/atomic"

	"github.com/endo5501/DungeonMirundal-sub002/internal/session"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/constants"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

// DefaultAddr is where the API listens unless configured otherwise.
const DefaultAddr = "127.0.0.1:8765"

// Config configures a Server.
type Config struct {
	// Addr is the listen address. Defaults to DefaultAddr.
	Addr    string
	Session *session.Session
	Logger  *slog.Logger
}

// Server exposes a running session over HTTP.
type Server struct {
	addr    string
	sess    *session.Session
	log     *slog.Logger
	httpSrv *http.Server
	started atomic.Bool
}

// New creates a Server. Start binds the listener.
func New(cfg Config) (*Server, error) {
	if cfg.Session == nil {
		return nil, fmt.Errorf("debugapi: config missing session")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("debugapi: config missing logger")
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	return &Server{addr: cfg.Addr, sess: cfg.Session, log: cfg.Logger}, nil
}

// Routes returns the API handler, one route per operation.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /debug/ui/tree", s.handleTree)
	mux.HandleFunc("GET /debug/ui/current", s.handleCurrent)
	mux.HandleFunc("POST /debug/input", s.handleInput)
	mux.HandleFunc("GET /debug/stats", s.handleStats)
	return mux
}

// Start serves the API on its own goroutine until Shutdown.
func (s *Server) Start() error {
	if !s.started.CompareAndSwap(false, true) {
		return fmt.Errorf("debugapi: already started")
	}
	s.httpSrv = &http.Server{
		Addr:              s.addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		s.log.Info("debug api listening", "addr", s.addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("debug api server failed", "error", err)
		}
	}()
	return nil
}

// Shutdown stops the listener. Safe to call without Start.
func (s *Server) Shutdown(ctx context.Context) error {
	if !s.started.Load() || s.httpSrv == nil {
		return nil
	}
	s.log.Info("debug api shutting down")
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleTree(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.sess.Snapshot())
}

// currentView is the /debug/ui/current response.
type currentView struct {
	Depth  int            `json:"depth"`
	Screen nav.ScreenNode `json:"screen"`
}

func (s *Server) handleCurrent(w http.ResponseWriter, _ *http.Request) {
	snap := s.sess.Snapshot()
	writeJSON(w, http.StatusOK, currentView{
		Depth:  snap.Depth,
		Screen: snap.Screens[len(snap.Screens)-1],
	})
}

// inputRequest is the /debug/input body. Text lands before the signal
// fires, so one request can fill a prompt and confirm it.
type inputRequest struct {
	Signal string `json:"signal,omitempty"`
	Text   string `json:"text,omitempty"`
}

// inputResult reports where the session ended up after an injection.
type inputResult struct {
	Success bool   `json:"success"`
	Screen  string `json:"screen"`
	Depth   int    `json:"depth"`
}

func (s *Server) handleInput(w http.ResponseWriter, r *http.Request) {
	var req inputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Signal == "" && req.Text == "" {
		writeError(w, http.StatusBadRequest, "request needs a signal or text")
		return
	}

	// Validate everything before touching the session, so a rejected
	// request has no effect at all.
	var sig constants.Signal
	if req.Signal != "" {
		var ok bool
		if sig, ok = constants.ParseSignal(req.Signal); !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown signal %q", req.Signal))
			return
		}
	}

	if req.Text != "" {
		if !s.sess.InjectText(req.Text) {
			writeError(w, http.StatusConflict, "active screen accepts no text")
			return
		}
		s.log.Debug("debug text injected", "len", len(req.Text))
	}
	if req.Signal != "" {
		s.sess.Step(sig)
		s.log.Debug("debug signal injected", "signal", sig.GetName())
	}

	st := s.sess.Stats()
	writeJSON(w, http.StatusOK, inputResult{Success: true, Screen: st.Screen, Depth: st.Depth})
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.sess.Stats())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
