// Package refresh orchestrates the country data pipeline: fetch both
// external sources, validate, estimate GDP, persist atomically, and
// render the summary artifact.
package refresh

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fxatlas/countryfx/internal/metrics"
	apperrors "github.com/fxatlas/countryfx/pkg/app/errors"
	"github.com/fxatlas/countryfx/pkg/artifact"
	"github.com/fxatlas/countryfx/pkg/country"
	"github.com/fxatlas/countryfx/pkg/estimate"
	"github.com/fxatlas/countryfx/pkg/sources"
)

// topCountriesCount is the number of ranked entries on the summary image.
const topCountriesCount = 5

// Store is the narrow data-access interface for the refresh service.
// Defined here to keep the refresh service decoupled from countrystore
// implementation details.
type Store interface {
	ApplyRefresh(ctx context.Context, countries []*country.Country, refreshedAt time.Time) error
	Count(ctx context.Context) (int, error)
	TopByEstimatedGDP(ctx context.Context, limit int) ([]*country.Country, error)
}

// Renderer produces the summary image bytes.
type Renderer interface {
	Render(s artifact.Summary) ([]byte, error)
}

// ArtifactWriter persists the summary image bytes.
type ArtifactWriter interface {
	Write(data []byte) error
}

// Service defines the interface for the refresh business logic
type Service interface {
	Refresh(ctx context.Context) error
}

type refreshService struct {
	catalog   sources.CatalogFetcher
	rates     sources.RateFetcher
	store     Store
	estimator *estimate.Estimator
	renderer  Renderer
	writer    ArtifactWriter
	logger    *zap.Logger

	// mu serializes refresh runs so at most one mutates the store.
	mu sync.Mutex
}

// NewService creates a new refresh service
func NewService(
	catalog sources.CatalogFetcher,
	rates sources.RateFetcher,
	store Store,
	estimator *estimate.Estimator,
	renderer Renderer,
	writer ArtifactWriter,
	logger *zap.Logger,
) Service {
	return &refreshService{
		catalog:   catalog,
		rates:     rates,
		store:     store,
		estimator: estimator,
		renderer:  renderer,
		writer:    writer,
		logger:    logger,
	}
}

// Refresh runs one full refresh. Concurrent calls are serialized.
//
// The pipeline:
//  1. Fetches the country catalog and exchange rates concurrently
//  2. Validates the catalog before anything touches the store
//  3. Builds one row per record, estimating GDP with a fresh multiplier
//  4. Upserts every row in a single transaction
//  5. Renders the summary image; failures here are logged and swallowed
func (s *refreshService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := s.logger.With(zap.String("refresh_id", uuid.NewString()))
	start := time.Now()
	logger.Info("Starting refresh")

	result, err := sources.FetchBoth(ctx, s.catalog, s.rates)
	if err != nil {
		metrics.RefreshTotal.WithLabelValues("source_failure").Inc()
		var srcErr *sources.Error
		if errors.As(err, &srcErr) {
			logger.Error("External source unavailable",
				zap.String("source", srcErr.Source),
				zap.String("url", srcErr.URL),
				zap.Error(srcErr.Err))
			return apperrors.DependencyError(err,
				fmt.Sprintf("could not fetch data from %s source", srcErr.Source))
		}
		logger.Error("External fetch failed", zap.Error(err))
		return apperrors.DependencyError(err, "could not fetch external data")
	}

	if err := validateCatalog(result.Countries); err != nil {
		metrics.RefreshTotal.WithLabelValues("validation_failure").Inc()
		logger.Warn("Catalog validation failed", zap.Error(err))
		return err
	}

	refreshedAt := time.Now().UTC()
	rows := s.buildRows(result, refreshedAt)

	if err := s.store.ApplyRefresh(ctx, rows, refreshedAt); err != nil {
		metrics.RefreshTotal.WithLabelValues("persistence_failure").Inc()
		logger.Error("Failed to persist refresh", zap.Error(err))
		return apperrors.GeneralError(fmt.Errorf("failed to persist refresh: %w", err))
	}

	metrics.RefreshTotal.WithLabelValues("success").Inc()
	metrics.RefreshDuration.Observe(time.Since(start).Seconds())
	logger.Info("Refresh persisted",
		zap.Int("countries", len(rows)),
		zap.Duration("duration", time.Since(start)))

	// Best effort: a summary image failure never fails the refresh that
	// produced the data.
	s.renderArtifact(ctx, logger, refreshedAt)

	return nil
}

// buildRows converts every fetched record into a storable country in
// arrival order.
func (s *refreshService) buildRows(result *sources.FetchResult, refreshedAt time.Time) []*country.Country {
	rows := make([]*country.Country, 0, len(result.Countries))
	for _, rec := range result.Countries {
		est := s.estimator.Estimate(rec.Population.Value, rec.Currencies, result.Rates)
		rows = append(rows, &country.Country{
			Name:            rec.Name,
			Capital:         optional(rec.Capital),
			Region:          optional(rec.Region),
			Population:      rec.Population.Value,
			CurrencyCode:    est.CurrencyCode,
			ExchangeRate:    est.ExchangeRate,
			EstimatedGDP:    est.EstimatedGDP,
			FlagURL:         optional(rec.Flag),
			LastRefreshedAt: refreshedAt,
		})
	}
	return rows
}

func (s *refreshService) renderArtifact(ctx context.Context, logger *zap.Logger, generatedAt time.Time) {
	total, err := s.store.Count(ctx)
	if err != nil {
		metrics.ArtifactRenderFailures.Inc()
		logger.Warn("Skipping summary image, count query failed", zap.Error(err))
		return
	}
	metrics.CountriesStored.Set(float64(total))

	top, err := s.store.TopByEstimatedGDP(ctx, topCountriesCount)
	if err != nil {
		metrics.ArtifactRenderFailures.Inc()
		logger.Warn("Skipping summary image, top query failed", zap.Error(err))
		return
	}

	ranked := make([]artifact.Ranked, len(top))
	for i, c := range top {
		ranked[i] = artifact.Ranked{Name: c.Name, EstimatedGDP: c.EstimatedGDP}
	}

	data, err := s.renderer.Render(artifact.Summary{
		Total:       total,
		Top:         ranked,
		GeneratedAt: generatedAt,
	})
	if err != nil {
		metrics.ArtifactRenderFailures.Inc()
		logger.Error("Failed to render summary image", zap.Error(err))
		return
	}
	if err := s.writer.Write(data); err != nil {
		metrics.ArtifactRenderFailures.Inc()
		logger.Error("Failed to write summary image", zap.Error(err))
		return
	}

	logger.Info("Summary image updated", zap.Int("top_entries", len(ranked)))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
