package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/cdterm/internal/discovery"
	"github.com/muurk/cdterm/internal/logging"
	"github.com/muurk/cdterm/internal/nav"
	"github.com/muurk/cdterm/internal/version"
)

// TerminalPath is the WebSocket endpoint pages connect to
const TerminalPath = "/terminal"

// Config holds the server configuration
type Config struct {
	Host      string
	Port      int
	SiteDir   string // Directory holding the static pages
	Advertise bool   // Register the server via mDNS
	Instance  string // mDNS instance name
	Timing    Timing
	LogLevel  string
}

// Server serves the static site and one terminal session per page
type Server struct {
	config     *Config
	httpServer *http.Server
	listener   net.Listener
	upgrader   websocket.Upgrader
	ad         *discovery.Advertisement

	ctx    context.Context
	cancel context.CancelFunc

	wg       sync.WaitGroup
	mu       sync.Mutex
	sessions map[string]*websocket.Conn
}

// New creates a new Server instance
func New(config *Config) (*Server, error) {
	if config.LogLevel != "" {
		if err := logging.Initialize(config.LogLevel); err != nil {
			return nil, fmt.Errorf("failed to initialize logging: %w", err)
		}
	}

	info, err := os.Stat(config.SiteDir)
	if err != nil {
		return nil, fmt.Errorf("site directory %q: %w", config.SiteDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("site directory %q is not a directory", config.SiteDir)
	}

	for _, d := range nav.Destinations() {
		if _, err := os.Stat(filepath.Join(config.SiteDir, d.Href)); err != nil {
			logging.Warn("Destination page missing from site directory",
				zap.String("destination", d.Name),
				zap.String("href", d.Href),
			)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		ctx:      ctx,
		cancel:   cancel,
		sessions: make(map[string]*websocket.Conn),
	}
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Handler returns the HTTP handler serving the site and the terminal endpoint
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(TerminalPath, s.handleTerminal)
	mux.Handle("/", siteHandler(s.config.SiteDir))
	return mux
}

// Start starts the server and blocks until shutdown
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))

	logging.Info("Starting cdterm server",
		zap.String("addr", addr),
		zap.String("site_dir", s.config.SiteDir),
		zap.String("log_level", s.config.LogLevel),
	)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	logging.Info("Server listening for connections",
		zap.String("addr", listener.Addr().String()),
	)

	if s.config.Advertise {
		port := listener.Addr().(*net.TCPAddr).Port
		ad, err := discovery.Advertise(s.config.Instance, port, discovery.TXTRecords(version.Version, nav.Names()))
		if err != nil {
			// The site still works without mDNS
			logging.Warn("mDNS advertisement failed", zap.Error(err))
		} else {
			s.ad = ad
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(listener)
	}()

	select {
	case <-sigChan:
		logging.Info("Shutdown signal received, stopping server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.Shutdown(ctx)
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}

// Addr returns the listening address, or "" before Start
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// handleTerminal upgrades the request and runs a terminal session on it
func (s *Server) handleTerminal(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}
	conn.SetReadLimit(maxMessageSize)

	remoteAddr := r.RemoteAddr
	s.mu.Lock()
	s.sessions[remoteAddr] = conn
	s.mu.Unlock()
	s.wg.Add(1)

	defer func() {
		_ = conn.Close()
		s.mu.Lock()
		delete(s.sessions, remoteAddr)
		s.mu.Unlock()
		s.wg.Done()
		logging.LogSession(remoteAddr, "session_closed")
	}()

	logging.LogSession(remoteAddr, "session_opened")

	sess := newSession(conn, remoteAddr, s.config.Timing)
	if err := sess.run(s.ctx); err != nil && !isClosed(err) {
		logging.Info("Session ended with error",
			zap.String("remote_addr", remoteAddr),
			zap.Error(err),
		)
	}
}

// isClosed reports whether err is a normal end of a session
func isClosed(err error) bool {
	return errors.Is(err, context.Canceled) ||
		websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...", zap.Int("active_sessions", s.GetActiveSessions()))

	s.ad.Shutdown()
	s.cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		logging.Error("Error shutting down HTTP server", zap.Error(err))
	}

	// Hijacked WebSocket connections are not closed by http.Server
	s.mu.Lock()
	for addr, conn := range s.sessions {
		logging.Info("Closing active session", zap.String("remote_addr", addr))
		_ = conn.Close()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logging.Info("All sessions closed gracefully")
	case <-ctx.Done():
		logging.Warn("Shutdown timeout, forcing close")
	}

	logging.Sync()

	return nil
}

// GetActiveSessions returns the number of open terminal sessions
func (s *Server) GetActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
