// Package service implements read and delete operations over the stored
// country dataset, plus status and summary image retrieval.
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/fxatlas/countryfx/pkg/app/errors"
	"github.com/fxatlas/countryfx/pkg/country"
	"github.com/fxatlas/countryfx/pkg/countrystore"
)

// Store is the narrow data-access interface for the country query service.
type Store interface {
	List(ctx context.Context, opts ...countrystore.QueryOption) ([]*country.Country, error)
	GetByName(ctx context.Context, name string) (*country.Country, error)
	DeleteByName(ctx context.Context, name string) error
	Count(ctx context.Context) (int, error)
	LastRefreshedAt(ctx context.Context) (*time.Time, error)
}

// ListFilter carries the optional query parameters of a list request.
// Empty strings mean no filtering.
type ListFilter struct {
	Region   string
	Currency string
	Sort     country.Sort
}

// Service defines the interface for country lookups
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]*country.Country, error)
	Get(ctx context.Context, name string) (*country.Country, error)
	Delete(ctx context.Context, name string) error
	Status(ctx context.Context) (*country.Status, error)
	Artifact() ([]byte, error)
}

type countryService struct {
	store        Store
	artifactPath string
	logger       *zap.Logger
}

// NewService creates a new country query service
func NewService(store Store, artifactPath string, logger *zap.Logger) Service {
	return &countryService{
		store:        store,
		artifactPath: artifactPath,
		logger:       logger,
	}
}

func (s *countryService) List(ctx context.Context, filter ListFilter) ([]*country.Country, error) {
	opts := []countrystore.QueryOption{countrystore.WithSort(filter.Sort)}
	if filter.Region != "" {
		opts = append(opts, countrystore.WithRegion(filter.Region))
	}
	if filter.Currency != "" {
		opts = append(opts, countrystore.WithCurrency(filter.Currency))
	}

	countries, err := s.store.List(ctx, opts...)
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to list countries: %w", err))
	}
	return countries, nil
}

func (s *countryService) Get(ctx context.Context, name string) (*country.Country, error) {
	c, err := s.store.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, countrystore.ErrCountryNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "Country not found")
		}
		return nil, apperrors.GeneralError(fmt.Errorf("failed to get country %s: %w", name, err))
	}
	return c, nil
}

func (s *countryService) Delete(ctx context.Context, name string) error {
	if err := s.store.DeleteByName(ctx, name); err != nil {
		if errors.Is(err, countrystore.ErrCountryNotFound) {
			return apperrors.ResourceNotFoundError(err, "Country not found")
		}
		return apperrors.GeneralError(fmt.Errorf("failed to delete country %s: %w", name, err))
	}

	s.logger.Info("Deleted country", zap.String("name", name))
	return nil
}

func (s *countryService) Status(ctx context.Context) (*country.Status, error) {
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to count countries: %w", err))
	}

	last, err := s.store.LastRefreshedAt(ctx)
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to read last refresh time: %w", err))
	}

	return &country.Status{
		TotalCountries:  total,
		LastRefreshedAt: last,
	}, nil
}

// Artifact returns the bytes of the most recently rendered summary image.
func (s *countryService) Artifact() ([]byte, error) {
	data, err := os.ReadFile(s.artifactPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ResourceNotFoundError(err, "Summary image has not been generated yet")
		}
		return nil, apperrors.GeneralError(fmt.Errorf("failed to read summary image: %w", err))
	}
	return data, nil
}
