package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/k12345663/Shop-Mauli/internal/apperrors"
	"github.com/k12345663/Shop-Mauli/internal/models"
	"github.com/k12345663/Shop-Mauli/internal/services"
	"github.com/k12345663/Shop-Mauli/pkg/utils"
)

type AuthHandler struct {
	Users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperrors.Validation("invalid request body"))
		return
	}

	user, err := h.Users.Signup(r.Context(), req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperrors.Validation("invalid request body"))
		return
	}

	resp, err := h.Users.Login(r.Context(), req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}
