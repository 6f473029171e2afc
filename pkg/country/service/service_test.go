package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/fxatlas/countryfx/pkg/app/errors"
	"github.com/fxatlas/countryfx/pkg/country"
	"github.com/fxatlas/countryfx/pkg/countrystore"
)

func TestCountryService_List_TranslatesFilter(t *testing.T) {
	ctx := context.Background()

	var captured countrystore.QueryOptions
	store := &MockStore{ListFunc: func(ctx context.Context, opts ...countrystore.QueryOption) ([]*country.Country, error) {
		for _, opt := range opts {
			opt(&captured)
		}
		return []*country.Country{{Name: "Nigeria"}}, nil
	}}

	svc := NewService(store, "unused.png", zap.NewNop())

	got, err := svc.List(ctx, ListFilter{Region: "Africa", Currency: "NGN", Sort: country.SortGDPDesc})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Nigeria" {
		t.Fatalf("unexpected result %+v", got)
	}

	if captured.Region == nil || *captured.Region != "Africa" {
		t.Fatalf("expected region filter Africa, got %v", captured.Region)
	}
	if captured.Currency == nil || *captured.Currency != "NGN" {
		t.Fatalf("expected currency filter NGN, got %v", captured.Currency)
	}
	if captured.Sort != country.SortGDPDesc {
		t.Fatalf("expected gdp_desc sort, got %q", captured.Sort)
	}
}

func TestCountryService_List_NoFiltersMeansNoWhere(t *testing.T) {
	ctx := context.Background()

	var captured countrystore.QueryOptions
	store := &MockStore{ListFunc: func(ctx context.Context, opts ...countrystore.QueryOption) ([]*country.Country, error) {
		for _, opt := range opts {
			opt(&captured)
		}
		return nil, nil
	}}

	svc := NewService(store, "unused.png", zap.NewNop())

	if _, err := svc.List(ctx, ListFilter{Sort: country.SortNameAsc}); err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if captured.Region != nil {
		t.Fatalf("expected no region filter, got %q", *captured.Region)
	}
	if captured.Currency != nil {
		t.Fatalf("expected no currency filter, got %q", *captured.Currency)
	}
}

func TestCountryService_List_StoreError(t *testing.T) {
	store := &MockStore{ListFunc: func(ctx context.Context, opts ...countrystore.QueryOption) ([]*country.Country, error) {
		return nil, errors.New("db broke")
	}}
	svc := NewService(store, "unused.png", zap.NewNop())

	_, err := svc.List(context.Background(), ListFilter{})
	if !apperrors.Is(err, apperrors.CategoryGeneralError) {
		t.Fatalf("expected CategoryGeneralError, got %v", err)
	}
}

func TestCountryService_Get(t *testing.T) {
	store := &MockStore{GetByNameFunc: func(ctx context.Context, name string) (*country.Country, error) {
		if name != "Nigeria" {
			return nil, countrystore.ErrCountryNotFound
		}
		return &country.Country{Name: "Nigeria"}, nil
	}}
	svc := NewService(store, "unused.png", zap.NewNop())

	got, err := svc.Get(context.Background(), "Nigeria")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Name != "Nigeria" {
		t.Fatalf("expected Nigeria, got %q", got.Name)
	}

	_, err = svc.Get(context.Background(), "Wakanda")
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected CategoryResourceNotFound, got %v", err)
	}
}

func TestCountryService_Delete(t *testing.T) {
	deleted := ""
	store := &MockStore{DeleteByNameFunc: func(ctx context.Context, name string) error {
		if name == "Wakanda" {
			return countrystore.ErrCountryNotFound
		}
		deleted = name
		return nil
	}}
	svc := NewService(store, "unused.png", zap.NewNop())

	if err := svc.Delete(context.Background(), "Nigeria"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if deleted != "Nigeria" {
		t.Fatalf("expected delete of Nigeria, got %q", deleted)
	}

	err := svc.Delete(context.Background(), "Wakanda")
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected CategoryResourceNotFound, got %v", err)
	}
}

func TestCountryService_Status(t *testing.T) {
	last := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := &MockStore{
		CountFunc:           func(ctx context.Context) (int, error) { return 42, nil },
		LastRefreshedAtFunc: func(ctx context.Context) (*time.Time, error) { return &last, nil },
	}
	svc := NewService(store, "unused.png", zap.NewNop())

	st, err := svc.Status(context.Background())
	if err != nil {
		t.Fatalf("Status() failed: %v", err)
	}
	if st.TotalCountries != 42 {
		t.Fatalf("expected 42 countries, got %d", st.TotalCountries)
	}
	if st.LastRefreshedAt == nil || !st.LastRefreshedAt.Equal(last) {
		t.Fatalf("expected last refresh %v, got %v", last, st.LastRefreshedAt)
	}
}

func TestCountryService_Status_EmptyDataset(t *testing.T) {
	svc := NewService(&MockStore{}, "unused.png", zap.NewNop())

	st, err := svc.Status(context.Background())
	if err != nil {
		t.Fatalf("Status() failed: %v", err)
	}
	if st.TotalCountries != 0 {
		t.Fatalf("expected 0 countries, got %d", st.TotalCountries)
	}
	if st.LastRefreshedAt != nil {
		t.Fatalf("expected nil last refresh, got %v", st.LastRefreshedAt)
	}
}

func TestCountryService_Artifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.png")
	if err := os.WriteFile(path, []byte("png-bytes"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	svc := NewService(&MockStore{}, path, zap.NewNop())

	data, err := svc.Artifact()
	if err != nil {
		t.Fatalf("Artifact() failed: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("expected artifact bytes, got %q", data)
	}
}

func TestCountryService_Artifact_Missing(t *testing.T) {
	svc := NewService(&MockStore{}, filepath.Join(t.TempDir(), "absent.png"), zap.NewNop())

	_, err := svc.Artifact()
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected CategoryResourceNotFound, got %v", err)
	}
}
