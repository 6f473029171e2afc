package country

import "time"

// Country represents the domain model for one country produced by a refresh.
// Optional source fields and unresolvable estimates are nil.
type Country struct {
	ID              int64
	Name            string
	Capital         *string
	Region          *string
	Population      int64
	CurrencyCode    *string
	ExchangeRate    *float64
	EstimatedGDP    *float64
	FlagURL         *string
	LastRefreshedAt time.Time
}

// Sort determines the ordering of listed countries.
type Sort string

const (
	// SortNameAsc orders by country name, case-insensitive ascending. Default.
	SortNameAsc Sort = "name_asc"
	// SortGDPDesc orders by estimated GDP, highest first.
	SortGDPDesc Sort = "gdp_desc"
	// SortGDPAsc orders by estimated GDP, lowest first.
	SortGDPAsc Sort = "gdp_asc"
)

// ParseSort maps a query parameter value to a Sort.
// Unknown values fall back to name ordering.
func ParseSort(s string) Sort {
	switch s {
	case string(SortGDPDesc):
		return SortGDPDesc
	case string(SortGDPAsc):
		return SortGDPAsc
	default:
		return SortNameAsc
	}
}

// Status reports aggregate information about the stored dataset.
type Status struct {
	TotalCountries  int
	LastRefreshedAt *time.Time
}
