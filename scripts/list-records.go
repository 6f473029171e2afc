//go:build ignore

// list-records.go - Display stored country records in a table
//
// Usage:
//   go run scripts/list-records.go -url http://localhost:8080
//   go run scripts/list-records.go -region Africa -currency NGN
//   go run scripts/list-records.go -sort gdp_desc -limit 10

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
)

var (
	baseURL  = flag.String("url", "http://localhost:8080", "Base URL of a running countryfx server")
	region   = flag.String("region", "", "Filter by region (e.g. Africa)")
	currency = flag.String("currency", "", "Filter by currency code (e.g. NGN)")
	sortBy   = flag.String("sort", "", "Sort order: name_asc, gdp_desc or gdp_asc")
	limit    = flag.Int("limit", 0, "Show at most N records (0 = all)")
)

type record struct {
	Name          string   `json:"name"`
	Capital       *string  `json:"capital"`
	Region        *string  `json:"region"`
	Population    int64    `json:"population"`
	CurrencyCode  *string  `json:"currency_code"`
	ExchangeRate  *float64 `json:"exchange_rate"`
	EstimatedGDP  *float64 `json:"estimated_gdp"`
	LastRefreshed string   `json:"last_refreshed_at"`
}

func main() {
	flag.Parse()

	query := url.Values{}
	if *region != "" {
		query.Set("region", *region)
	}
	if *currency != "" {
		query.Set("currency", *currency)
	}
	if *sortBy != "" {
		query.Set("sort", *sortBy)
	}

	endpoint := *baseURL + "/records"
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	resp, err := http.Get(endpoint)
	if err != nil {
		fmt.Printf("✗ Request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("✗ Server returned HTTP %d: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var records []record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		fmt.Printf("✗ Failed to decode response: %v\n", err)
		os.Exit(1)
	}

	if *limit > 0 && len(records) > *limit {
		records = records[:*limit]
	}

	fmt.Printf("%-30s %-12s %-8s %14s %18s\n", "NAME", "REGION", "CCY", "POPULATION", "ESTIMATED GDP")
	for _, r := range records {
		fmt.Printf("%-30s %-12s %-8s %14d %18s\n",
			truncate(r.Name, 30), deref(r.Region), deref(r.CurrencyCode), r.Population, gdp(r.EstimatedGDP))
	}
	fmt.Printf("\n%d record(s)\n", len(records))
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func gdp(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
