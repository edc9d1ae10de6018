package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"github.com/sellora/storefront-manager/internal/apisrv/admin"
	"github.com/sellora/storefront-manager/internal/apisrv/auth"
	"github.com/sellora/storefront-manager/internal/dependency"
	"github.com/sellora/storefront-manager/internal/middleware/requestid"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	done chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) setupRouter(adminServer *admin.Server, authServer *auth.Server, rep dependency.Repository) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(requestid.Middleware)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", s.handleHealth(rep))
	r.Post("/api/auth/login", s.handleLogin(authServer))

	r.Group(func(r chi.Router) {
		r.Use(authServer.WithAuth)
		r.Get("/api/admin/analytics", s.handleAnalytics(adminServer))
		r.Get("/api/admin/analytics/export", s.handleAnalyticsExport(adminServer))
	})

	return r
}

func (s *Server) handleHealth(rep dependency.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := rep.Ping(r.Context()); err != nil {
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, map[string]string{"status": "unavailable"})
			return
		}
		render.JSON(w, r, map[string]string{"status": "ok"})
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	AuthToken string `json:"auth_token"`
}

func (s *Server) handleLogin(authServer *auth.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "invalid request body"})
			return
		}

		token, err := authServer.Login(req.Password)
		if err != nil {
			slog.Default().WarnContext(r.Context(), "login rejected",
				slog.String("request_id", requestid.FromContext(r.Context())),
			)
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, map[string]string{"error": "not authenticated"})
			return
		}

		render.JSON(w, r, loginResponse{AuthToken: token})
	}
}

func (s *Server) handleAnalytics(adminServer *admin.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := adminServer.GetAnalytics(r.Context())
		if err != nil {
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": "can't build analytics report"})
			return
		}
		render.JSON(w, r, report)
	}
}

func (s *Server) handleAnalyticsExport(adminServer *admin.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, filename, err := adminServer.ExportAnalytics(r.Context())
		if err != nil {
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": "can't build analytics workbook"})
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(raw)
	}
}

// Start starts the server
func (s *Server) Start(ctx context.Context,
	adminServer *admin.Server,
	authServer *auth.Server,
	rep dependency.Repository,
) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:    listenerAddr,
		Handler: s.setupRouter(adminServer, authServer, rep),
	}

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		slog.Default().InfoContext(ctx, fmt.Sprintf("storefront-manager new listener on: http://%v", listenerAddr))
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
		} else if err != nil {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		cancel()
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}
