//go:build ignore

// trigger-refresh.go - Trigger a country data refresh against a running server
//
// Usage:
//   go run scripts/trigger-refresh.go -url http://localhost:8080
//
// The script calls POST /refresh, waits for completion, then prints the
// resulting dataset status from GET /status.

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

var baseURL = flag.String("url", "http://localhost:8080", "Base URL of a running countryfx server")

func main() {
	flag.Parse()

	fmt.Println("======================================================================")
	fmt.Println("TRIGGER REFRESH - Fetch countries and exchange rates")
	fmt.Println("======================================================================")
	fmt.Printf("Server:      %s\n", *baseURL)
	fmt.Println()

	start := time.Now()
	resp, err := http.Post(*baseURL+"/refresh", "application/json", nil)
	if err != nil {
		fmt.Printf("✗ Refresh request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("✗ Refresh failed (HTTP %d): %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}
	fmt.Printf("✓ Refresh completed in %s\n", time.Since(start).Round(time.Millisecond))
	fmt.Println()

	statusResp, err := http.Get(*baseURL + "/status")
	if err != nil {
		fmt.Printf("✗ Status request failed: %v\n", err)
		os.Exit(1)
	}
	defer statusResp.Body.Close()

	var status struct {
		TotalCountries  int     `json:"total_countries"`
		LastRefreshedAt *string `json:"last_refreshed_at"`
	}
	if err := json.NewDecoder(statusResp.Body).Decode(&status); err != nil {
		fmt.Printf("✗ Failed to decode status: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Dataset Status ===")
	fmt.Printf("Total countries:   %d\n", status.TotalCountries)
	if status.LastRefreshedAt != nil {
		fmt.Printf("Last refreshed at: %s\n", *status.LastRefreshedAt)
	} else {
		fmt.Println("Last refreshed at: never")
	}
}
