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

func (h *Handler) startChallenge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	challenge, err := h.services.ChallengeService.StartChallenge(ctx, req.ClientID, req.Scopes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid challenge data provided")
			http.Error(w, "invalid challenge data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during challenge start")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, challenge, http.StatusOK)
}

func (h *Handler) approveChallenge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ChallengeApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ChallengeService.ApproveChallenge(ctx, req.UserCode); err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownChallenge):
			log.Err(err).Msg("approval for unknown challenge")
			http.Error(w, "unknown challenge", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrChallengeExpired):
			log.Err(err).Msg("approval for expired challenge")
			http.Error(w, "challenge is expired", http.StatusGone)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during challenge approval")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) pollChallenge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ChallengePollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	poll, err := h.services.ChallengeService.PollChallenge(ctx, req.DeviceCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownChallenge):
			log.Err(err).Msg("poll for unknown challenge")
			http.Error(w, "unknown challenge", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrChallengeExpired):
			log.Err(err).Msg("poll for expired challenge")
			http.Error(w, "challenge is expired", http.StatusGone)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during challenge poll")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, poll, http.StatusOK)
}
