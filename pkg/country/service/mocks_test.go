package service

import (
	"context"
	"time"

	"github.com/fxatlas/countryfx/pkg/country"
	"github.com/fxatlas/countryfx/pkg/countrystore"
)

// MockStore is a mock implementation of Store
type MockStore struct {
	ListFunc            func(ctx context.Context, opts ...countrystore.QueryOption) ([]*country.Country, error)
	GetByNameFunc       func(ctx context.Context, name string) (*country.Country, error)
	DeleteByNameFunc    func(ctx context.Context, name string) error
	CountFunc           func(ctx context.Context) (int, error)
	LastRefreshedAtFunc func(ctx context.Context) (*time.Time, error)
}

func (m *MockStore) List(ctx context.Context, opts ...countrystore.QueryOption) ([]*country.Country, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, opts...)
	}
	return nil, nil
}

func (m *MockStore) GetByName(ctx context.Context, name string) (*country.Country, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, countrystore.ErrCountryNotFound
}

func (m *MockStore) DeleteByName(ctx context.Context, name string) error {
	if m.DeleteByNameFunc != nil {
		return m.DeleteByNameFunc(ctx, name)
	}
	return nil
}

func (m *MockStore) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockStore) LastRefreshedAt(ctx context.Context) (*time.Time, error) {
	if m.LastRefreshedAtFunc != nil {
		return m.LastRefreshedAtFunc(ctx)
	}
	return nil, nil
}

// MockService is a mock implementation of Service
type MockService struct {
	ListFunc     func(ctx context.Context, filter ListFilter) ([]*country.Country, error)
	GetFunc      func(ctx context.Context, name string) (*country.Country, error)
	DeleteFunc   func(ctx context.Context, name string) error
	StatusFunc   func(ctx context.Context) (*country.Status, error)
	ArtifactFunc func() ([]byte, error)
}

func (m *MockService) List(ctx context.Context, filter ListFilter) ([]*country.Country, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockService) Get(ctx context.Context, name string) (*country.Country, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockService) Delete(ctx context.Context, name string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, name)
	}
	return nil
}

func (m *MockService) Status(ctx context.Context) (*country.Status, error) {
	if m.StatusFunc != nil {
		return m.StatusFunc(ctx)
	}
	return &country.Status{}, nil
}

func (m *MockService) Artifact() ([]byte, error) {
	if m.ArtifactFunc != nil {
		return m.ArtifactFunc()
	}
	return nil, nil
}
