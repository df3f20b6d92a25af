package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/k12345663/Shop-Mauli/internal/apperrors"
	"github.com/k12345663/Shop-Mauli/internal/models"
	"github.com/k12345663/Shop-Mauli/internal/services"
	"github.com/k12345663/Shop-Mauli/pkg/utils"
)

// RegistryHandler exposes the admin CRUD over renters, shops, complexes and
// shop assignments.
type RegistryHandler struct {
	Service *services.RegistryService
}

func NewRegistryHandler(service *services.RegistryService) *RegistryHandler {
	return &RegistryHandler{Service: service}
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

// --- renters ---

func (h *RegistryHandler) CreateRenter(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperrors.Validation("invalid request body"))
		return
	}

	renter, err := h.Service.CreateRenter(r.Context(), req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, renter)
}

func (h *RegistryHandler) ListRenters(w http.ResponseWriter, r *http.Request) {
	renters, err := h.Service.ListRenters(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, renters)
}

func (h *RegistryHandler) UpdateRenter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, apperrors.Validation("invalid renter ID"))
		return
	}

	var renter models.Renter
	if err := json.NewDecoder(r.Body).Decode(&renter); err != nil {
		utils.Error(w, apperrors.Validation("invalid request body"))
		return
	}
	renter.ID = id

	if err := h.Service.UpdateRenter(r.Context(), &renter); err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, renter)
}

func (h *RegistryHandler) DeleteRenter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, apperrors.Validation("invalid renter ID"))
		return
	}

	if err := h.Service.DeleteRenter(r.Context(), id); err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// --- shops ---

func (h *RegistryHandler) CreateShop(w http.ResponseWriter, r *http.Request) {
	var req models.CreateShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperrors.Validation("invalid request body"))
		return
	}

	shop, err := h.Service.CreateShop(r.Context(), req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, shop)
}

func (h *RegistryHandler) ListShops(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	shops, err := h.Service.ListShops(r.Context(), activeOnly)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, shops)
}

func (h *RegistryHandler) UpdateShop(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, apperrors.Validation("invalid shop ID"))
		return
	}

	var shop models.Shop
	if err := json.NewDecoder(r.Body).Decode(&shop); err != nil {
		utils.Error(w, apperrors.Validation("invalid request body"))
		return
	}
	shop.ID = id

	if err := h.Service.UpdateShop(r.Context(), &shop); err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, shop)
}

func (h *RegistryHandler) DeleteShop(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, apperrors.Validation("invalid shop ID"))
		return
	}

	if err := h.Service.DeleteShop(r.Context(), id); err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// --- complexes ---

func (h *RegistryHandler) CreateComplex(w http.ResponseWriter, r *http.Request) {
	var req models.Complex
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperrors.Validation("invalid request body"))
		return
	}

	c, err := h.Service.CreateComplex(r.Context(), req.Name)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, c)
}

func (h *RegistryHandler) ListComplexes(w http.ResponseWriter, r *http.Request) {
	complexes, err := h.Service.ListComplexes(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, complexes)
}

func (h *RegistryHandler) DeleteComplex(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, apperrors.Validation("invalid complex ID"))
		return
	}

	if err := h.Service.DeleteComplex(r.Context(), id); err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// --- assignments ---

func (h *RegistryHandler) AssignShop(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperrors.Validation("invalid request body"))
		return
	}

	rs, err := h.Service.AssignShop(r.Context(), req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, rs)
}

func (h *RegistryHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	views, err := h.Service.ListAssignments(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, views)
}

func (h *RegistryHandler) UnassignShop(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, apperrors.Validation("invalid assignment ID"))
		return
	}

	if err := h.Service.UnassignShop(r.Context(), id); err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
