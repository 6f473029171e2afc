package refresh

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/fxatlas/countryfx/pkg/app/errors"
)

func newRefreshTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func TestRefreshHTTP_Success(t *testing.T) {
	svc := &MockService{}
	handler := newRefreshTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %q", ct)
	}

	var got struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if !got.Success {
		t.Fatal("expected success true")
	}
}

func TestRefreshHTTP_ValidationFailure(t *testing.T) {
	svc := &MockService{RefreshFunc: func(ctx context.Context) error {
		return apperrors.ValidationError(errors.New("invalid catalog entry Atlantis"),
			"Validation failed", map[string]string{"population": "is required"})
	}}
	handler := newRefreshTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var got struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Error != "Validation failed" {
		t.Fatalf("expected error %q, got %q", "Validation failed", got.Error)
	}
	if got.Details["population"] != "is required" {
		t.Fatalf("expected population detail, got %v", got.Details)
	}
}

func TestRefreshHTTP_SourceUnavailable(t *testing.T) {
	svc := &MockService{RefreshFunc: func(ctx context.Context) error {
		return apperrors.DependencyError(errors.New("connect timeout"),
			"could not fetch data from rates source")
	}}
	handler := newRefreshTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}

	var got struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Error != "could not fetch data from rates source" {
		t.Fatalf("unexpected error %q", got.Error)
	}
}

func TestRefreshHTTP_PersistenceFailure(t *testing.T) {
	svc := &MockService{RefreshFunc: func(ctx context.Context) error {
		return apperrors.GeneralError(errors.New("disk full"))
	}}
	handler := newRefreshTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}

	var got struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Error != "Internal Server Error" {
		t.Fatalf("expected sanitized message, got %q", got.Error)
	}
}
