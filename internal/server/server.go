package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/hongminglow/library-be/internal/auth"
	"github.com/hongminglow/library-be/internal/config"
	"github.com/hongminglow/library-be/internal/http/handlers"
	"github.com/hongminglow/library-be/internal/http/respond"
	"github.com/hongminglow/library-be/internal/library"
	"github.com/hongminglow/library-be/internal/middleware"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// NewHandler registers every route and wraps the mux with the shared middleware.
func NewHandler(cfg config.Config, svc *library.Service, tokens *auth.TokenManager, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	authn := middleware.Authenticate(tokens)

	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAuthHandler(svc, logger).Register(mux)
	handlers.NewUserHandler(svc, authn, logger).Register(mux)
	handlers.NewBookHandler(svc, authn, logger).Register(mux)
	handlers.NewReservationHandler(svc, authn, logger).Register(mux)

	return middleware.Chain(jsonFallback(mux), middleware.Logging(logger), middleware.CORS(cfg.CORSOrigins))
}

// jsonFallback keeps the mux's own 404/405 decisions but renders them as {"error": ...}.
func jsonFallback(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, pattern := mux.Handler(r); pattern != "" {
			mux.ServeHTTP(w, r)
			return
		}
		mux.ServeHTTP(&fallbackWriter{ResponseWriter: w}, r)
	})
}

// fallbackWriter replaces the mux's plain-text body with a JSON error.
type fallbackWriter struct {
	http.ResponseWriter
	wrote bool
}

func (w *fallbackWriter) WriteHeader(status int) {
	if w.wrote {
		return
	}
	w.wrote = true
	w.Header().Del("X-Content-Type-Options")
	message := http.StatusText(status)
	switch status {
	case http.StatusNotFound:
		message = "Not found"
	case http.StatusMethodNotAllowed:
		message = "Method not allowed"
	}
	respond.Error(w.ResponseWriter, status, message)
}

func (w *fallbackWriter) Write(p []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}
	return len(p), nil
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, svc *library.Service, tokens *auth.TokenManager, logger *slog.Logger) *Server {
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           NewHandler(cfg, svc, tokens, logger),
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
