package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/okbaghel/devfolio/db"
	"github.com/okbaghel/devfolio/logging"
	"github.com/okbaghel/devfolio/web/routes"
	"github.com/okbaghel/devfolio/web/session"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Minute
)

// Config holds server configuration.
type Config struct {
	Port int
	// Dev disables asset caching.
	Dev bool
	// TypingDelay overrides the profile's typing delay when positive.
	TypingDelay time.Duration
	RateLimit   float64
	RateBurst   int
	SessionTTL  time.Duration
	VisitSalt   string
}

func DefaultConfig() Config {
	return Config{
		Port:       8080,
		RateLimit:  20,
		RateBurst:  40,
		SessionTTL: 24 * time.Hour,
	}
}

// Server is the portfolio HTTP handler together with its background sweepers.
type Server struct {
	cfg      Config
	router   chi.Router
	sessions *session.Store
	limiter  *rateLimiter
}

// BuildServer wires every route. Visits are recorded into storage; pass
// db.NopStorage{} to disable tracking.
func BuildServer(cfg Config, profiles routes.ProfileSource, storage db.Storage) *Server {
	s := &Server{
		cfg:      cfg,
		sessions: session.NewStore(cfg.SessionTTL),
		limiter:  newRateLimiter(cfg.RateLimit, cfg.RateBurst),
	}

	handler := routes.ServerHandler{
		Content:     profiles,
		Sessions:    s.sessions,
		TypingDelay: cfg.TypingDelay,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)
	r.Use(s.limiter.middleware)
	r.Use(trackVisits(storage, cfg.VisitSalt))

	r.Handle("/assets/*",
		disableCacheInDevMode(cfg.Dev,
			http.StripPrefix("/assets",
				http.FileServerFS(Assets()))))

	r.Get("/", handler.HomeHandle)
	r.Post("/nav/toggle", handler.ToggleHandle)
	r.Get("/nav/{section}", handler.NavigateHandle)
	r.Get(routes.TerminalPath, handler.TerminalSocket)

	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", handler.ListProjects)
		r.Get("/projects/{id}", handler.GetProject)
		r.Get("/skills", handler.ListSkills)
		r.Get("/health", handler.Health)
	})

	s.router = r

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// sweep drops idle sessions and rate-limit buckets until ctx is done.
func (s *Server) sweep(ctx context.Context) {
	go s.sessions.Run(ctx, sweepInterval)
	go s.limiter.run(ctx, sweepInterval)
}

// StartServer serves until ctx is cancelled, then shuts down gracefully.
func StartServer(ctx context.Context, cfg Config, profiles routes.ProfileSource, storage db.Storage) error {
	logCtx := logging.PackageCtx("web")
	server := BuildServer(cfg, profiles, storage)
	server.sweep(ctx)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		slog.InfoContext(logCtx, "Running interface", "port", cfg.Port, "dev", cfg.Dev)

		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return fmt.Errorf("could not run server: %w", err)
	case <-ctx.Done():
	}

	slog.InfoContext(logCtx, "Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("could not shut down server: %w", err)
	}

	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not run server: %w", err)
	}

	return nil
}
