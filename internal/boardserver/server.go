package boardserver

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/thenoetrevino/todoboard/internal/gateway"
	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/types"
)

const (
	DefaultTokenTTL  = 24 * time.Hour
	shutdownTimeout  = 5 * time.Second
	maxLoginBodySize = 64 << 10
)

type ctxKey struct{}

// Server serves the board API for the users of a fixture
type Server struct {
	byUsername map[string]*FixtureUser
	byID       map[types.UserID]*FixtureUser
	secret     []byte
	tokenTTL   time.Duration
	logger     *slog.Logger
}

// Option configures a Server
type Option func(*Server)

// WithSecret sets the token signing key. Without it a random key is used
// and tokens do not survive a restart.
func WithSecret(secret []byte) Option {
	return func(s *Server) {
		s.secret = secret
	}
}

// WithTokenTTL sets how long issued tokens stay valid
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Server) {
		s.tokenTTL = ttl
	}
}

// WithLogger sets the server logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New prepares fixture and creates a server for it
func New(fixture *Fixture, opts ...Option) (*Server, error) {
	if fixture == nil {
		fixture = DefaultFixture()
	}
	if err := fixture.prepare(); err != nil {
		return nil, err
	}

	s := &Server{
		byUsername: make(map[string]*FixtureUser, len(fixture.Users)),
		byID:       make(map[types.UserID]*FixtureUser, len(fixture.Users)),
		tokenTTL:   DefaultTokenTTL,
		logger:     slog.Default(),
	}
	for i := range fixture.Users {
		u := &fixture.Users[i]
		s.byUsername[u.Username] = u
		s.byID[u.ID] = u
	}
	for _, opt := range opts {
		opt(s)
	}

	if len(s.secret) == 0 {
		s.secret = make([]byte, 32)
		if _, err := rand.Read(s.secret); err != nil {
			return nil, fmt.Errorf("generating token secret: %w", err)
		}
	}
	return s, nil
}

// Handler returns the API router
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.HandleFunc(gateway.PathLogin, s.handleLogin).Methods(http.MethodPost)

	api := r.NewRoute().Subrouter()
	api.Use(s.requireAuth)
	api.HandleFunc(gateway.PathUserInfo, s.handleUserInfo).Methods(http.MethodGet)
	api.HandleFunc(gateway.PathColumns, s.handleColumns).Methods(http.MethodGet)

	r.Use(s.logRequests)
	return r
}

// Run serves on addr until ctx is canceled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves on listener until ctx is canceled
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(listener)
	}()
	s.logger.Info("board server listening", "addr", listener.Addr().String(), "users", len(s.byID))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down board server: %w", err)
	}
	s.logger.Info("board server stopped")
	return nil
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req gateway.LoginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLoginBodySize)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, ok := s.byUsername[req.Username]
	if !ok || !user.checkPassword(req.Password) {
		s.logger.Info("login rejected", "username", req.Username)
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := issueToken(user.ID.String(), s.secret, s.tokenTTL)
	if err != nil {
		s.logger.Error("issuing token", "error", err)
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	writeJSON(w, http.StatusOK, gateway.LoginResponse{Token: token})
}

func (s *Server) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(ctxKey{}).(*FixtureUser)
	writeJSON(w, http.StatusOK, user.Info())
}

func (s *Server) handleColumns(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(ctxKey{}).(*FixtureUser)

	columns := user.Columns
	if columns == nil {
		columns = []models.Column{}
	}
	writeJSON(w, http.StatusOK, models.UserData{
		Columns:  columns,
		UserInfo: user.Info(),
	})
}

// requireAuth resolves the bearer token to a fixture user
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		subject, err := subjectFromToken(token, s.secret)
		if err != nil {
			s.logger.Debug("token rejected", "error", err)
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		user, ok := s.byID[types.UserID(subject)]
		if !ok {
			writeError(w, http.StatusUnauthorized, "unknown user")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, user)))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
