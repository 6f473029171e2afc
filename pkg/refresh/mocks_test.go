package refresh

import (
	"context"
	"time"

	"github.com/fxatlas/countryfx/pkg/artifact"
	"github.com/fxatlas/countryfx/pkg/country"
	"github.com/fxatlas/countryfx/pkg/sources"
)

// MockCatalogFetcher is a mock implementation of sources.CatalogFetcher
type MockCatalogFetcher struct {
	FetchFunc func(ctx context.Context) ([]sources.CountryRecord, error)
}

func (m *MockCatalogFetcher) Fetch(ctx context.Context) ([]sources.CountryRecord, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return nil, nil
}

// MockRateFetcher is a mock implementation of sources.RateFetcher
type MockRateFetcher struct {
	FetchFunc func(ctx context.Context) (map[string]float64, error)
}

func (m *MockRateFetcher) Fetch(ctx context.Context) (map[string]float64, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return map[string]float64{}, nil
}

// MockStore is a mock implementation of Store
type MockStore struct {
	ApplyRefreshFunc      func(ctx context.Context, countries []*country.Country, refreshedAt time.Time) error
	CountFunc             func(ctx context.Context) (int, error)
	TopByEstimatedGDPFunc func(ctx context.Context, limit int) ([]*country.Country, error)
}

func (m *MockStore) ApplyRefresh(ctx context.Context, countries []*country.Country, refreshedAt time.Time) error {
	if m.ApplyRefreshFunc != nil {
		return m.ApplyRefreshFunc(ctx, countries, refreshedAt)
	}
	return nil
}

func (m *MockStore) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockStore) TopByEstimatedGDP(ctx context.Context, limit int) ([]*country.Country, error) {
	if m.TopByEstimatedGDPFunc != nil {
		return m.TopByEstimatedGDPFunc(ctx, limit)
	}
	return nil, nil
}

// MockRenderer is a mock implementation of Renderer
type MockRenderer struct {
	RenderFunc func(s artifact.Summary) ([]byte, error)
}

func (m *MockRenderer) Render(s artifact.Summary) ([]byte, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(s)
	}
	return []byte("png"), nil
}

// MockWriter is a mock implementation of ArtifactWriter
type MockWriter struct {
	WriteFunc func(data []byte) error
}

func (m *MockWriter) Write(data []byte) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(data)
	}
	return nil
}

// MockService is a mock implementation of Service
type MockService struct {
	RefreshFunc func(ctx context.Context) error
}

func (m *MockService) Refresh(ctx context.Context) error {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx)
	}
	return nil
}
