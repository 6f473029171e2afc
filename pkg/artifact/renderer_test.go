package artifact

import (
	"bytes"
	"image/png"
	"testing"
	"time"
)

func float64Ptr(v float64) *float64 { return &v }

func TestRenderer_Render_ProducesFixedSizePNG(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() failed: %v", err)
	}

	data, err := r.Render(Summary{
		Total: 250,
		Top: []Ranked{
			{Name: "Nigeria", EstimatedGDP: float64Ptr(1_234_567.891)},
			{Name: "Ghana", EstimatedGDP: float64Ptr(987_654.3)},
			{Name: "Atlantis", EstimatedGDP: nil},
		},
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output does not decode as PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != Width || bounds.Dy() != Height {
		t.Fatalf("expected %dx%d image, got %dx%d", Width, Height, bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_Render_EmptyTop(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() failed: %v", err)
	}

	data, err := r.Render(Summary{Total: 0, GeneratedAt: time.Now()})
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("output does not decode as PNG: %v", err)
	}
}

func TestRenderer_FormatGDP(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() failed: %v", err)
	}

	if got := r.formatGDP(nil); got != "null" {
		t.Fatalf("expected null for nil estimate, got %q", got)
	}
	if got := r.formatGDP(float64Ptr(1_234_567.891)); got != "1,234,567.89" {
		t.Fatalf("expected grouped two-decimal rendering, got %q", got)
	}
	if got := r.formatGDP(float64Ptr(5000)); got != "5,000" {
		t.Fatalf("expected 5,000, got %q", got)
	}
	if got := r.formatGDP(float64Ptr(0)); got != "0" {
		t.Fatalf("expected 0, got %q", got)
	}
}
