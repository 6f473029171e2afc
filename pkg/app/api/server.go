// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/fxatlas/countryfx/pkg/app/http"
	"github.com/fxatlas/countryfx/pkg/artifact"
	"github.com/fxatlas/countryfx/pkg/config"
	countryservice "github.com/fxatlas/countryfx/pkg/country/service"
	"github.com/fxatlas/countryfx/pkg/countrystore"
	"github.com/fxatlas/countryfx/pkg/dbutil"
	"github.com/fxatlas/countryfx/pkg/estimate"
	"github.com/fxatlas/countryfx/pkg/migrations/countrydb"
	"github.com/fxatlas/countryfx/pkg/refresh"
	"github.com/fxatlas/countryfx/pkg/sources"
)

const defaultRequestTimeout = 60

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := dbutil.ConnectDB(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	// Migrations run on every start so a fresh database file is usable
	// without a manual step.
	if err := countrydb.Migrate(ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	store := countrystore.NewStore(db)

	renderer, err := artifact.NewRenderer()
	if err != nil {
		return fmt.Errorf("create summary renderer: %w", err)
	}
	writer := artifact.NewWriter(cfg.Artifact.Path)

	httpClient := sources.NewHTTPClient(cfg.Sources.Timeout)
	catalog := sources.NewCountriesClient(cfg.Sources.CountriesURL, httpClient, logger)
	rates := sources.NewRatesClient(cfg.Sources.RatesURL, httpClient, logger)

	refreshService := refresh.NewService(catalog, rates, store, estimate.New(), renderer, writer, logger)
	queryService := countryservice.NewService(store, cfg.Artifact.Path, logger)

	router := s.setupRouter(refreshService, queryService, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

func (s *Server) setupRouter(
	refreshService refresh.Service,
	queryService countryservice.Service,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Second * defaultRequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Prometheus exposition (if enabled)
	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	refresh.RegisterRoutes(r, refreshService, logger)
	countryservice.RegisterRoutes(r, queryService, logger)

	return r
}
