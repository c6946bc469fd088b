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

func (h *Handler) claim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ClaimBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.TokenService.ParseToken(ctx, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenIsExpired):
			log.Err(err).Msg("claim with expired token")
			http.Error(w, "token is expired", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("claim with invalid token")
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
	}

	mapping, err := h.services.GroupService.ClaimGroups(ctx, token.ClientID, req.Scopes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownGroup):
			log.Err(err).Msg("claim for unknown configuration group")
			http.Error(w, "unknown configuration group", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during claim")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, mapping, http.StatusOK)
}
