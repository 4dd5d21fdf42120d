package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MrK0xGT/insurance-crm/internal/logger"
	"github.com/MrK0xGT/insurance-crm/internal/service"
	"github.com/MrK0xGT/insurance-crm/internal/store"
	"github.com/MrK0xGT/insurance-crm/internal/utils"
	"github.com/MrK0xGT/insurance-crm/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// Registration preconditions belong to this boundary, not the service:
	// confirmation match and minimum password length.
	if req.Password != req.PasswordConfirm {
		log.Error().Str("username", req.Username).Msg("password confirmation does not match")
		http.Error(w, "passwords do not match", http.StatusBadRequest)
		return
	}
	if len(req.Password) < minPasswordLength {
		log.Error().Str("username", req.Username).Msg("password is too short")
		http.Error(w, "password must be at least 6 characters", http.StatusBadRequest)
		return
	}

	registeredAgent, err := h.services.AuthService.RegisterAgent(ctx, req.Username, req.FullName, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameTaken):
			log.Err(err).Msg("username already exists")
			http.Error(w, "username already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during agent registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredAgent)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		Username: registeredAgent.Username,
		FullName: registeredAgent.FullName,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundAgent, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid username/password")
			http.Error(w, "invalid username/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during agent login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("username", foundAgent.Username).Msg("agent successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundAgent)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		Username: foundAgent.Username,
		FullName: foundAgent.FullName,
	}, http.StatusOK)
}
