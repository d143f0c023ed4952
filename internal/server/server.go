package server

import (
	"context"
	"embed"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/lox/klondike/internal/game"
	"golang.org/x/sync/errgroup"
)

//go:embed web/index.html
var webFS embed.FS

// Server serves the game page over HTTP and runs one game session per
// WebSocket connection.
type Server struct {
	addr     string
	logger   *log.Logger
	upgrader websocket.Upgrader
	clock    quartz.Clock
	rules    game.Rules
	seed     *int64
	httpSrv  *http.Server
}

// ServerOption configures the server
type ServerOption func(*Server)

// WithRules overrides the default game rules for new sessions
func WithRules(rules game.Rules) ServerOption {
	return func(s *Server) {
		s.rules = rules
	}
}

// WithSeed pins every session to a deterministic shuffle seed
func WithSeed(seed int64) ServerOption {
	return func(s *Server) {
		s.seed = &seed
	}
}

// WithClock injects the clock used for elapsed-time tracking
func WithClock(clock quartz.Clock) ServerOption {
	return func(s *Server) {
		s.clock = clock
	}
}

// NewServer creates a server listening on addr
func NewServer(addr string, logger *log.Logger, opts ...ServerOption) *Server {
	s := &Server{
		addr:   addr,
		logger: logger.WithPrefix("server"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// The page and the socket are served from the same origin;
				// anything goes for local play.
				return true
			},
		},
		clock: quartz.NewReal(),
		rules: game.DefaultRules(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run serves until the context is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	s.httpSrv = &http.Server{Addr: s.addr, Handler: mux}

	s.logger.Info("starting klondike server", "addr", s.addr)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	opts := []game.Option{game.WithRules(s.rules)}
	if s.seed != nil {
		opts = append(opts, game.WithSeed(*s.seed))
	}
	session := game.NewSession(s.clock, opts...)

	s.logger.Info("client connected", "remote", conn.RemoteAddr().String())
	NewConnection(conn, session, s.logger).Serve()
	s.logger.Info("client disconnected", "remote", conn.RemoteAddr().String())
}
