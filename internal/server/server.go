package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/colorpick/internal/color"
	"github.com/muurk/colorpick/internal/logging"
	"github.com/muurk/colorpick/internal/metrics"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Config holds the server configuration
type Config struct {
	Addr      string
	Initial   color.DynamicColor
	Precision int
	// RateLimit is the number of messages per second accepted from one
	// client. Zero disables throttling.
	RateLimit int
	// TLS, when set, wraps the listener so clients connect with wss://.
	TLS *tls.Config
}

// Server serves the shared color over WebSocket.
type Server struct {
	config   Config
	session  *Session
	metrics  *metrics.Manager
	upgrader websocket.Upgrader

	mu         sync.Mutex
	httpServer *http.Server
	wg         sync.WaitGroup
}

// New creates a server. A nil metrics manager gets a private one.
func New(config Config, m *metrics.Manager) *Server {
	if m == nil {
		m = metrics.NewManager()
	}
	return &Server{
		config:  config,
		session: NewSession(config.Initial, config.Precision, m),
		metrics: m,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Session returns the shared session.
func (s *Server) Session() *Session {
	return s.session
}

// Handler returns the HTTP handler serving /ws, /metrics and /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.Handle("/metrics", s.metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if s.config.TLS != nil {
		ln = tls.NewListener(ln, s.config.TLS)
	}

	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	s.mu.Lock()
	s.httpServer = httpServer
	s.mu.Unlock()

	logging.Info("Colorpick sync server listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("space", s.config.Initial.Space().String()),
		zap.Int("rate_limit", s.config.RateLimit),
		zap.Bool("tls", s.config.TLS != nil),
	)

	errChan := make(chan error, 1)
	go func() {
		errChan <- httpServer.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		logging.Info("Shutdown requested, stopping server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Shutdown stops accepting connections, closes every WebSocket client and
// waits for their goroutines until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	s.mu.Lock()
	httpServer := s.httpServer
	s.mu.Unlock()

	var err error
	if httpServer != nil {
		if err = httpServer.Shutdown(ctx); err != nil {
			logging.Error("Error shutting down HTTP server", zap.Error(err))
		}
	}

	// Hijacked WebSocket connections are not tracked by http.Server.
	s.session.closeAll()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logging.Info("All connections closed gracefully")
	case <-ctx.Done():
		logging.Warn("Shutdown timeout, forcing close")
	}

	logging.Sync()
	return err
}

// ActiveClients returns the number of connected WebSocket clients.
func (s *Server) ActiveClients() int {
	return s.session.ClientCount()
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error.
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	s.wg.Add(1)
	defer s.wg.Done()

	c := newClient(uuid.NewString(), r.RemoteAddr, s.config.RateLimit)
	s.session.join(c)
	logging.LogConnection(c.remoteAddr, "websocket_connected")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.writePump(conn, c)
	}()

	s.readPump(conn, c)

	s.session.leave(c)
	logging.LogConnection(c.remoteAddr, "websocket_closed")
}
