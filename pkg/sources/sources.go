// Package sources contains clients for the external providers feeding the
// refresh pipeline: the country catalog and the USD exchange rate table.
package sources

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

const (
	// SourceCountries identifies the country catalog provider.
	SourceCountries = "countries"
	// SourceRates identifies the exchange rate provider.
	SourceRates = "rates"
)

// Error tags a fetch failure with the source that produced it.
type Error struct {
	Source string
	URL    string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s source %s: %v", e.Source, e.URL, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error { return e.Err }

// NewHTTPClient returns the HTTP client shared by the source adapters.
// The timeout bounds the whole request including body read.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// CatalogFetcher fetches the raw country catalog.
type CatalogFetcher interface {
	Fetch(ctx context.Context) ([]CountryRecord, error)
}

// RateFetcher fetches the USD exchange rate table.
type RateFetcher interface {
	Fetch(ctx context.Context) (map[string]float64, error)
}

// FetchResult carries the outcome of one combined fetch.
type FetchResult struct {
	Countries []CountryRecord
	Rates     map[string]float64
}

// FetchBoth fetches the country catalog and exchange rates concurrently.
// If either fetch fails the result is discarded and the catalog error, when
// present, wins over the rates error.
func FetchBoth(ctx context.Context, catalog CatalogFetcher, rates RateFetcher) (*FetchResult, error) {
	var (
		wg         sync.WaitGroup
		records    []CountryRecord
		rateTable  map[string]float64
		catalogErr error
		rateErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		records, catalogErr = catalog.Fetch(ctx)
	}()
	go func() {
		defer wg.Done()
		rateTable, rateErr = rates.Fetch(ctx)
	}()
	wg.Wait()

	if catalogErr != nil {
		return nil, catalogErr
	}
	if rateErr != nil {
		return nil, rateErr
	}
	return &FetchResult{Countries: records, Rates: rateTable}, nil
}
