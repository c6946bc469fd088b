package http

import (
	"net/http"

	"github.com/MKhiriev/go-fakts/internal/utils"
)

func (h *Handler) wellKnown(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.endpoint, http.StatusOK)
}
