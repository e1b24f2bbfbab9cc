package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/biztime-dev/biztime/internal/api"
	"github.com/biztime-dev/biztime/internal/config"
	"github.com/biztime-dev/biztime/internal/database"
	"github.com/biztime-dev/biztime/internal/logger"
	"github.com/biztime-dev/biztime/internal/server/handlers"
	"github.com/biztime-dev/biztime/internal/server/middleware"
	"github.com/biztime-dev/biztime/internal/version"
)

type Server struct {
	pool   *pgxpool.Pool
	store  database.Store
	config *config.ServerEnvironment
	logger *slog.Logger
	router *chi.Mux
}

// NewServer creates the HTTP server.
// pool may be nil (e.g when store is a test double); it is only used to close the connections on shutdown.
func NewServer(
	pool *pgxpool.Pool,
	store database.Store,
	cfg *config.ServerEnvironment,
	logger *slog.Logger,
) *Server {
	server := &Server{
		pool:   pool,
		store:  store,
		config: cfg,
		logger: logger,
		router: chi.NewRouter(),
	}

	server.setupMiddleware()
	server.registerRoutes()

	return server
}

// Handler returns the router with all middleware applied
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	allowedOrigins := s.config.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.SecurityHeaders(s.config.Environment))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "X-Max-Request-Size"},
		MaxAge:         300,
	}))
	s.router.Use(middleware.RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))
	s.router.Use(chimiddleware.Timeout(s.config.RequestTimeout))
	s.router.Use(middleware.RequestSizeLimit(s.config.MaxRequestSize))
}

func (s *Server) registerRoutes() {
	companyHandler := handlers.NewCompanyHandler(s.store, s.config.DeletePolicy())
	invoiceHandler := handlers.NewInvoiceHandler(s.store)

	s.router.Get("/health/live", handlers.HandleHealth)
	s.router.Get("/health/ready", handlers.HandleReadiness(s.store))
	s.router.Get("/version", handlers.HandleVersion(version.Get()))

	s.router.Route("/companies", func(r chi.Router) {
		r.Get("/", companyHandler.HandleListCompanies)
		r.Post("/", companyHandler.HandleCreateCompany)
		r.Get("/{code}", companyHandler.HandleGetCompany)
		r.Put("/{code}", companyHandler.HandleUpdateCompany)
		r.Delete("/{code}", companyHandler.HandleDeleteCompany)
	})

	s.router.Route("/invoices", func(r chi.Router) {
		r.Get("/", invoiceHandler.HandleListInvoices)
		r.Post("/", invoiceHandler.HandleCreateInvoice)
		r.Get("/{id}", invoiceHandler.HandleGetInvoice)
		r.Put("/{id}", invoiceHandler.HandleUpdateInvoice)
		r.Delete("/{id}", invoiceHandler.HandleDeleteInvoice)
	})

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.RespondWithError(w, r, api.NewNotFoundError(fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path)))
	})
}

// Start serves requests until ctx is cancelled and then shuts the HTTP server down gracefully.
func (s *Server) Start(ctx context.Context) error {
	serverAddr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	httpServer := &http.Server{
		Addr:         serverAddr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("service listening",
			slog.String("environment", s.config.Environment),
			slog.String("address", serverAddr),
			slog.String("company_delete_policy", string(s.config.DeletePolicy())),
		)

		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.config.ServerShutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("shutting down HTTP server")

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		s.logger.Warn("HTTP server shutdown error",
			slog.String("error", err.Error()))
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}

func (s *Server) DatabaseShutdown() {
	if s.pool != nil {
		s.pool.Close()
		s.logger.Info("database connection closed")
	}
}
