package service

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/fxatlas/countryfx/pkg/app/http"
	"github.com/fxatlas/countryfx/pkg/country"
)

// HTTP handles HTTP requests for country lookups
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the country endpoints with the router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/records", apphttp.HandleError(h.list))
	r.Get("/records/{name}", apphttp.HandleError(h.get))
	r.Delete("/records/{name}", apphttp.HandleError(h.delete))
	r.Get("/status", apphttp.HandleError(h.status))
	r.Get("/artifact", apphttp.HandleError(h.artifact))
}

// countryResponse is the JSON wire shape of one stored country.
// Nullable fields marshal as JSON null rather than being omitted.
type countryResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Capital         *string   `json:"capital"`
	Region          *string   `json:"region"`
	Population      int64     `json:"population"`
	CurrencyCode    *string   `json:"currency_code"`
	ExchangeRate    *float64  `json:"exchange_rate"`
	EstimatedGDP    *float64  `json:"estimated_gdp"`
	FlagURL         *string   `json:"flag_url"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}

type statusResponse struct {
	TotalCountries  int        `json:"total_countries"`
	LastRefreshedAt *time.Time `json:"last_refreshed_at"`
}

func toCountryResponse(c *country.Country) countryResponse {
	return countryResponse{
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

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()
	filter := ListFilter{
		Region:   query.Get("region"),
		Currency: query.Get("currency"),
		Sort:     country.ParseSort(query.Get("sort")),
	}

	countries, err := h.service.List(r.Context(), filter)
	if err != nil {
		return err
	}

	resp := make([]countryResponse, 0, len(countries))
	for _, c := range countries {
		resp = append(resp, toCountryResponse(c))
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	name := chi.URLParam(r, "name")

	c, err := h.service.Get(r.Context(), name)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, toCountryResponse(c))
	return nil
}

func (h *HTTP) delete(w http.ResponseWriter, r *http.Request) error {
	name := chi.URLParam(r, "name")

	if err := h.service.Delete(r.Context(), name); err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	return nil
}

func (h *HTTP) status(w http.ResponseWriter, r *http.Request) error {
	st, err := h.service.Status(r.Context())
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, statusResponse{
		TotalCountries:  st.TotalCountries,
		LastRefreshedAt: st.LastRefreshedAt,
	})
	return nil
}

func (h *HTTP) artifact(w http.ResponseWriter, r *http.Request) error {
	data, err := h.service.Artifact()
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("Failed to write summary image response", zap.Error(err))
	}
	return nil
}
