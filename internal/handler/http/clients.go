package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MrK0xGT/insurance-crm/internal/logger"
	"github.com/MrK0xGT/insurance-crm/internal/service"
	"github.com/MrK0xGT/insurance-crm/internal/store"
	"github.com/MrK0xGT/insurance-crm/internal/utils"
	"github.com/MrK0xGT/insurance-crm/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated agent in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	id, err := h.services.ClientService.CreateClient(ctx, owner, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid client record data")
			http.Error(w, "client name and plate are required", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during client record creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.CreateClientResponse{ID: id}, http.StatusCreated)
}

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated agent in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	searchTerm := r.URL.Query().Get("q")

	response, err := h.services.ClientService.ListClients(ctx, owner, searchTerm)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			log.Err(err).Msg("invalid listing request")
			http.Error(w, "invalid listing request", http.StatusBadRequest)
			return
		}

		// A store read failure degrades to an empty listing with a warning
		// instead of failing the whole page.
		log.Err(err).Str("owner", owner).Msg("client record listing degraded to empty result")
		response.Warning = "client records are temporarily unavailable"
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated agent in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid client record id")
		http.Error(w, "invalid client record id", http.StatusBadRequest)
		return
	}

	if err := h.services.ClientService.DeleteClient(ctx, owner, id); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid delete request")
			http.Error(w, "invalid delete request", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrClientNotFound):
			log.Err(err).Int64("id", id).Msg("client record not found")
			http.Error(w, "client record not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during client record deletion")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
