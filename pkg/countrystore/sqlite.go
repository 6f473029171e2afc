package countrystore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/fxatlas/countryfx/pkg/country"
)

type sqliteStore struct {
	db *bun.DB
}

var _ Store = (*sqliteStore)(nil)

// NewStore creates a new SQLite implementation of the country store
func NewStore(db *bun.DB) *sqliteStore {
	return &sqliteStore{db: db}
}

func (s *sqliteStore) ApplyRefresh(ctx context.Context, countries []*country.Country, refreshedAt time.Time) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, c := range countries {
			dao := toCountryDao(c)
			dao.LastRefreshedAt = refreshedAt

			var existingID int64
			err := tx.NewSelect().
				Model((*CountryDao)(nil)).
				Column("id").
				Where("name = ? COLLATE NOCASE", c.Name).
				Scan(ctx, &existingID)
			switch {
			case errors.Is(err, sql.ErrNoRows):
				dao.ID = 0
				if _, err := tx.NewInsert().
					Model(dao).
					Exec(ctx); err != nil {
					return fmt.Errorf("failed to insert country %q: %w", c.Name, err)
				}
			case err != nil:
				return fmt.Errorf("failed to resolve country %q: %w", c.Name, err)
			default:
				dao.ID = existingID
				if _, err := tx.NewUpdate().
					Model(dao).
					Column("name", "capital", "region", "population", "currency_code",
						"exchange_rate", "estimated_gdp", "flag_url", "last_refreshed_at").
					WherePK().
					Exec(ctx); err != nil {
					return fmt.Errorf("failed to update country %q: %w", c.Name, err)
				}
			}
		}
		return nil
	})
}

func (s *sqliteStore) List(ctx context.Context, opts ...QueryOption) ([]*country.Country, error) {
	options := &QueryOptions{Sort: country.SortNameAsc}
	for _, opt := range opts {
		opt(options)
	}

	var daos []CountryDao
	query := s.db.NewSelect().Model(&daos)

	if options.Region != nil {
		query = query.Where("region = ?", *options.Region)
	}
	if options.Currency != nil {
		query = query.Where("currency_code = ?", *options.Currency)
	}

	switch options.Sort {
	case country.SortGDPDesc:
		query = query.OrderExpr("estimated_gdp DESC")
	case country.SortGDPAsc:
		query = query.OrderExpr("estimated_gdp ASC")
	default:
		query = query.OrderExpr("name COLLATE NOCASE ASC")
	}

	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	countries := make([]*country.Country, len(daos))
	for i := range daos {
		countries[i] = toCountry(&daos[i])
	}
	return countries, nil
}

func (s *sqliteStore) GetByName(ctx context.Context, name string) (*country.Country, error) {
	dao := new(CountryDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("name = ? COLLATE NOCASE", name).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCountryNotFound
		}
		return nil, fmt.Errorf("failed to get country: %w", err)
	}
	return toCountry(dao), nil
}

func (s *sqliteStore) DeleteByName(ctx context.Context, name string) error {
	res, err := s.db.NewDelete().
		Model((*CountryDao)(nil)).
		Where("name = ? COLLATE NOCASE", name).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete country: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrCountryNotFound
	}
	return nil
}

func (s *sqliteStore) Count(ctx context.Context) (int, error) {
	count, err := s.db.NewSelect().
		Model((*CountryDao)(nil)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count countries: %w", err)
	}
	return count, nil
}

func (s *sqliteStore) TopByEstimatedGDP(ctx context.Context, limit int) ([]*country.Country, error) {
	var daos []CountryDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("estimated_gdp IS NOT NULL").
		OrderExpr("estimated_gdp DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query top countries: %w", err)
	}
	countries := make([]*country.Country, len(daos))
	for i := range daos {
		countries[i] = toCountry(&daos[i])
	}
	return countries, nil
}

func (s *sqliteStore) LastRefreshedAt(ctx context.Context) (*time.Time, error) {
	dao := new(CountryDao)
	err := s.db.NewSelect().
		Model(dao).
		Column("last_refreshed_at").
		OrderExpr("last_refreshed_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last refresh time: %w", err)
	}
	ts := dao.LastRefreshedAt.UTC()
	return &ts, nil
}
