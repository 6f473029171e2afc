package countrystore

import (
	"context"
	"errors"
	"time"

	"github.com/fxatlas/countryfx/pkg/country"
)

// ErrCountryNotFound is returned when a country lookup finds no matching record.
var ErrCountryNotFound = errors.New("country not found")

// Store defines the interface for country data persistence
type Store interface {
	// ApplyRefresh upserts the given countries in arrival order inside a
	// single transaction. Name matching is case-insensitive. Any failure
	// rolls back the whole batch.
	ApplyRefresh(ctx context.Context, countries []*country.Country, refreshedAt time.Time) error
	List(ctx context.Context, opts ...QueryOption) ([]*country.Country, error)
	GetByName(ctx context.Context, name string) (*country.Country, error)
	DeleteByName(ctx context.Context, name string) error
	Count(ctx context.Context) (int, error)
	TopByEstimatedGDP(ctx context.Context, limit int) ([]*country.Country, error)
	LastRefreshedAt(ctx context.Context) (*time.Time, error)
}

// QueryOptions defines options for querying countries
type QueryOptions struct {
	Region   *string
	Currency *string
	Sort     country.Sort
}

// QueryOption is a functional option for querying countries
type QueryOption func(*QueryOptions)

// WithRegion filters countries by exact region match
func WithRegion(region string) QueryOption {
	return func(opts *QueryOptions) {
		opts.Region = &region
	}
}

// WithCurrency filters countries by exact currency code match
func WithCurrency(code string) QueryOption {
	return func(opts *QueryOptions) {
		opts.Currency = &code
	}
}

// WithSort sets the result ordering
func WithSort(sort country.Sort) QueryOption {
	return func(opts *QueryOptions) {
		opts.Sort = sort
	}
}
