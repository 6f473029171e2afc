package refresh

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/fxatlas/countryfx/pkg/app/http"
)

// HTTP handles HTTP requests for refresh runs
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the refresh endpoint with the router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/refresh", apphttp.HandleError(h.refresh))
}

func (h *HTTP) refresh(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Refresh(r.Context()); err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	return nil
}
