package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kevradan/homestead-be/internal/apperror"
	"github.com/kevradan/homestead-be/internal/services"
	"github.com/rs/zerolog/log"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service services.UserServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterPayload defines the structure for user creation requests.
type RegisterPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Create handles new user registration.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperror.Validation("invalid request body"))
		return
	}

	user, err := h.service.CreateUser(r.Context(), payload.Email, payload.Password, payload.Name)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed to create user")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// GetAll handles the request to list all users.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}
