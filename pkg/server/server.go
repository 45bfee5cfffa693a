package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/Grodondo/aitutor/pkg/config"
	"github.com/Grodondo/aitutor/pkg/suggestions"
	"github.com/Grodondo/aitutor/pkg/tutor"
	"github.com/Grodondo/aitutor/pkg/utils"
	"github.com/gorilla/websocket"
)

// Analyzer is the analysis surface the bridge exposes over the wire. It is
// satisfied by *tutor.Service and stubbed in tests.
type Analyzer interface {
	Analyze(req tutor.AnalysisRequest) (suggestions.SuggestionSet, error)
}

// Server bridges an editor plugin to the tutor: JSON analysis requests over
// HTTP, suggestion-set events pushed over a websocket.
type Server struct {
	config   *config.Config
	logger   *utils.Logger
	analyzer Analyzer
	upgrader websocket.Upgrader

	clientsMu sync.Mutex
	clients   map[*SafeConn]bool

	httpServer *http.Server
}

// New creates a bridge server around an analyzer.
func New(cfg *config.Config, logger *utils.Logger, analyzer Analyzer) *Server {
	return &Server{
		config:   cfg,
		logger:   logger,
		analyzer: analyzer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The bridge binds to loopback; editor plugins connect locally.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*SafeConn]bool),
	}
}

// Handler returns the HTTP routes, separated out so tests can drive them
// without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// Start blocks serving on addr until the listener fails or Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute, // analysis requests wait on the model
	}
	s.logger.LogProcessStep("Editor bridge listening on " + addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server and closes all websocket clients.
func (s *Server) Shutdown(ctx context.Context) error {
	s.clientsMu.Lock()
	for conn := range s.clients {
		conn.Close()
	}
	s.clients = make(map[*SafeConn]bool)
	s.clientsMu.Unlock()

	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
