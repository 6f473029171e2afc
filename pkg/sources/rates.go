package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/fxatlas/countryfx/internal/metrics"
)

// RatesClient fetches the USD exchange rate table over HTTP.
type RatesClient struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewRatesClient creates a rates client for the configured URL.
func NewRatesClient(url string, client *http.Client, logger *zap.Logger) *RatesClient {
	return &RatesClient{url: url, client: client, logger: logger}
}

type ratesPayload struct {
	Rates map[string]float64 `json:"rates"`
}

// Fetch retrieves the exchange rate table. A payload without a rates
// mapping counts as malformed.
func (c *RatesClient) Fetch(ctx context.Context) (map[string]float64, error) {
	start := time.Now()
	rates, err := c.fetch(ctx)
	metrics.SourceFetchDuration.WithLabelValues(SourceRates).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SourceErrorsTotal.WithLabelValues(SourceRates).Inc()
		return nil, err
	}
	return rates, nil
}

func (c *RatesClient) fetch(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &Error{Source: SourceRates, URL: c.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{Source: SourceRates, URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &Error{
			Source: SourceRates,
			URL:    c.url,
			Err:    fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var payload ratesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &Error{
			Source: SourceRates,
			URL:    c.url,
			Err:    fmt.Errorf("malformed payload: %w", err),
		}
	}
	if payload.Rates == nil {
		return nil, &Error{
			Source: SourceRates,
			URL:    c.url,
			Err:    errors.New("payload missing rates mapping"),
		}
	}

	c.logger.Debug("Fetched exchange rates", zap.Int("currencies", len(payload.Rates)))
	return payload.Rates, nil
}
