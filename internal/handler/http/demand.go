package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fakts/internal/logger"
	"github.com/MKhiriev/go-fakts/internal/service"
	"github.com/MKhiriev/go-fakts/internal/utils"
	"github.com/MKhiriev/go-fakts/models"
)

func (h *Handler) demand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DemandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.TokenService.IssueToken(ctx, req.ClientID, req.ClientSecret)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid demand data provided")
			http.Error(w, "invalid demand data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUnknownClient) || errors.Is(err, service.ErrWrongSecret):
			// uniform answer to avoid telling client ids apart from secrets
			log.Err(err).Msg("demand rejected")
			http.Error(w, "invalid client credentials", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during demand")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.DemandResponse{Token: token.SignedString}, http.StatusOK)
}
