package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kevradan/homestead-be/internal/apperror"
	"github.com/kevradan/homestead-be/internal/auth"
	"github.com/kevradan/homestead-be/internal/models"
	"github.com/kevradan/homestead-be/internal/services"
	"github.com/rs/zerolog/log"
)

// ResidencyHandler handles HTTP requests for property listings.
type ResidencyHandler struct {
	service services.ResidencyServiceProvider
}

// NewResidencyHandler creates a new ResidencyHandler.
func NewResidencyHandler(service services.ResidencyServiceProvider) *ResidencyHandler {
	return &ResidencyHandler{service: service}
}

// Create handles the request to create a new residency.
func (h *ResidencyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateResidencyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, apperror.Validation("invalid request body"))
		return
	}

	residency, err := h.service.CreateResidency(r.Context(), input)
	if err != nil {
		log.Warn().Err(err).Str("address", input.Address).Msg("Failed to create residency")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, residency)
}

// GetAll handles the request to list all residencies, newest first.
func (h *ResidencyHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	residencies, err := h.service.GetAllResidencies(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list residencies")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, residencies)
}

// Get handles the request to fetch a single residency by its id.
func (h *ResidencyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	residency, err := h.service.GetResidencyByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, residency)
}

// Update handles the request to apply a partial update to a residency.
func (h *ResidencyHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("missing caller identity"))
		return
	}

	var update models.ResidencyUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, apperror.Validation("invalid request body"))
		return
	}

	id := chi.URLParam(r, "id")
	residency, err := h.service.UpdateResidency(r.Context(), id, update, identity.Email)
	if err != nil {
		log.Warn().Err(err).Str("residency_id", id).Msg("Failed to update residency")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, residency)
}

// Delete handles the request to remove a residency.
func (h *ResidencyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("missing caller identity"))
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.DeleteResidency(r.Context(), id, identity.Email); err != nil {
		log.Warn().Err(err).Str("residency_id", id).Msg("Failed to delete residency")
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
