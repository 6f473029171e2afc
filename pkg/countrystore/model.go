package countrystore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/fxatlas/countryfx/pkg/country"
)

// CountryDao is a data access object that maps directly to the 'countries' table.
type CountryDao struct {
	bun.BaseModel   `bun:"table:countries,alias:c"`
	ID              int64     `bun:"id,pk,autoincrement"`
	Name            string    `bun:"name,notnull"`
	Capital         *string   `bun:"capital"`
	Region          *string   `bun:"region"`
	Population      int64     `bun:"population,notnull"`
	CurrencyCode    *string   `bun:"currency_code"`
	ExchangeRate    *float64  `bun:"exchange_rate"`
	EstimatedGDP    *float64  `bun:"estimated_gdp"`
	FlagURL         *string   `bun:"flag_url"`
	LastRefreshedAt time.Time `bun:"last_refreshed_at,notnull"`
}

// toCountryDao converts a country.Country to CountryDao.
func toCountryDao(c *country.Country) *CountryDao {
	return &CountryDao{
		ID:              c.ID,
		Name:            c.Name,
		Capital:         c.Capital,
		Region:          c.Region,
		Population:      c.Population,
		CurrencyCode:    c.CurrencyCode,
		ExchangeRate:    c.ExchangeRate,
		EstimatedGDP:    c.EstimatedGDP,
		FlagURL:         c.FlagURL,
		LastRefreshedAt: c.LastRefreshedAt,
	}
}

// toCountry converts a CountryDao to country.Country.
func toCountry(dao *CountryDao) *country.Country {
	return &country.Country{
		ID:              dao.ID,
		Name:            dao.Name,
		Capital:         dao.Capital,
		Region:          dao.Region,
		Population:      dao.Population,
		CurrencyCode:    dao.CurrencyCode,
		ExchangeRate:    dao.ExchangeRate,
		EstimatedGDP:    dao.EstimatedGDP,
		FlagURL:         dao.FlagURL,
		LastRefreshedAt: dao.LastRefreshedAt,
	}
}
