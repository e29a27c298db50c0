package rest

import (
	"net/http"

	"github.com/heartmarshall/scanreview-backend/internal/service/status"
)

// PollingHandler publishes the polling cadence clients must follow.
type PollingHandler struct {
	contract status.Contract
}

func NewPollingHandler(c status.Contract) *PollingHandler {
	return &PollingHandler{contract: c}
}

// Get handles GET /api/v1/polling.
func (h *PollingHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "max-age=300")
	writeJSON(w, http.StatusOK, h.contract)
}
