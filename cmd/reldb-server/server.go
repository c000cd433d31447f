package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"github.com/reldb/reldb"
	"github.com/reldb/reldb/core"
	"github.com/reldb/reldb/ps"
)

// Server exposes one RelDB instance over HTTP. The engine itself is not
// safe for concurrent use, so every handler that touches it holds mu.
type Server struct {
	instance *reldb.Instance
	identity core.Identity
	auth     *AuthConfig
	mu       sync.Mutex
	listener net.Listener
	httpSrv  *http.Server
}

// NewServer creates a server around the instance. A nil auth config
// leaves every endpoint open.
func NewServer(instance *reldb.Instance, identity core.Identity, auth *AuthConfig) *Server {
	return &Server{
		instance: instance,
		identity: identity,
		auth:     auth,
	}
}

// Handler builds the route table. Split out from Start so tests can
// drive it through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleConsole)
	mux.HandleFunc("POST /api/query", s.requireAuth(s.handleQuery))
	mux.HandleFunc("GET /api/history", s.requireAuth(s.handleHistory))
	mux.HandleFunc("GET /api/snapshot", s.requireAuth(s.handleGetSnapshot))
	mux.HandleFunc("POST /api/snapshot", s.requireAuth(s.handlePutSnapshot))
	mux.HandleFunc("POST /api/save", s.requireAuth(s.handleSave))
	mux.HandleFunc("GET /api/versions", s.requireAuth(s.handleVersions))

	return mux
}

// Start begins serving on the specified address.
func (s *Server) Start(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	s.listener = listener
	s.httpSrv = &http.Server{Handler: s.Handler()}

	log.Printf("Server listening on %s", addr)

	go func() {
		if err := s.httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Serve error: %v", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.httpSrv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}

// Addr returns the server's listening address.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "empty query")
		return
	}

	s.mu.Lock()
	result := s.instance.Engine().Execute(req.Query)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	history := s.instance.Engine().History()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, HistoryResponse{History: history})
}

func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snapshot := s.instance.Engine().Snapshot()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handlePutSnapshot(w http.ResponseWriter, r *http.Request) {
	var snapshot ps.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid snapshot: %v", err))
		return
	}

	s.mu.Lock()
	s.instance.Engine().Restore(snapshot)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"message": "snapshot restored"})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if req.Message == "" {
		req.Message = "snapshot"
	}

	s.mu.Lock()
	version, err := s.instance.Save(s.identity, req.Message)
	s.mu.Unlock()

	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, version)
}

func (s *Server) handleVersions(w http.ResponseWriter, r *http.Request) {
	store := s.instance.Store()
	if store == nil {
		writeError(w, http.StatusInternalServerError, "no store configured")
		return
	}

	s.mu.Lock()
	versions, err := store.Versions()
	s.mu.Unlock()

	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, VersionsResponse{Versions: versions})
}

func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, consoleHTML)
}
