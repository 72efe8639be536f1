package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"imageshare/internal/models"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=creator consumer"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Invalid registration data", http.StatusBadRequest)
		return
	}

	serviceReq := models.CreateUserRequest{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	}

	_, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			writeServiceError(w, err, "User already exists")
		} else {
			writeServiceError(w, err, "Invalid registration data")
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "User registered successfully"}, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	accessToken, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		// generic message, no user enumeration
		writeServiceError(w, err, "Invalid credentials")
		return
	}

	WriteJSON(w, LoginResponse{AccessToken: accessToken}, http.StatusOK)
}
