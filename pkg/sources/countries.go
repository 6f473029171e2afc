package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/fxatlas/countryfx/internal/metrics"
)

// Currency is one currency attached to a country record.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Population distinguishes a missing population from a present zero.
// A present but unparseable value coerces to zero instead of failing the
// whole payload; absence is left for the validator to reject.
type Population struct {
	Value   int64
	Present bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Population) UnmarshalJSON(data []byte) error {
	p.Value = 0
	p.Present = false

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	p.Present = true
	switch v := raw.(type) {
	case float64:
		if v > 0 {
			p.Value = int64(v)
		}
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			p.Value = int64(f)
		}
	}
	return nil
}

// CountryRecord is the raw country catalog entry as served by the provider.
type CountryRecord struct {
	Name       string     `json:"name"`
	Capital    string     `json:"capital"`
	Region     string     `json:"region"`
	Population Population `json:"population"`
	Flag       string     `json:"flag"`
	Currencies []Currency `json:"currencies"`
}

// CountriesClient fetches the country catalog over HTTP.
type CountriesClient struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewCountriesClient creates a catalog client for the configured URL.
func NewCountriesClient(url string, client *http.Client, logger *zap.Logger) *CountriesClient {
	return &CountriesClient{url: url, client: client, logger: logger}
}

// Fetch retrieves and decodes the full country catalog.
func (c *CountriesClient) Fetch(ctx context.Context) ([]CountryRecord, error) {
	start := time.Now()
	records, err := c.fetch(ctx)
	metrics.SourceFetchDuration.WithLabelValues(SourceCountries).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SourceErrorsTotal.WithLabelValues(SourceCountries).Inc()
		return nil, err
	}
	return records, nil
}

func (c *CountriesClient) fetch(ctx context.Context) ([]CountryRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &Error{Source: SourceCountries, URL: c.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{Source: SourceCountries, URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &Error{
			Source: SourceCountries,
			URL:    c.url,
			Err:    fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var records []CountryRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &Error{
			Source: SourceCountries,
			URL:    c.url,
			Err:    fmt.Errorf("malformed payload: %w", err),
		}
	}

	c.logger.Debug("Fetched country catalog", zap.Int("records", len(records)))
	return records, nil
}
